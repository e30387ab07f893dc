// Copyright 2025-2026, Offchain Labs, Inc.
// For license information, see https://github.com/OffchainLabs/checkadd/blob/master/LICENSE.md

package confighelpers

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/mitchellh/mapstructure"
	flag "github.com/spf13/pflag"
)

func BeginCommonParse(f *flag.FlagSet, args []string) (*koanf.Koanf, error) {
	if err := f.Parse(args); err != nil {
		return nil, err
	}
	if f.NArg() != 0 {
		return nil, fmt.Errorf("unexpected argument: %s", f.Arg(0))
	}

	k := koanf.New(".")
	if err := k.Load(posflag.Provider(f, ".", k), nil); err != nil {
		return nil, fmt.Errorf("error loading command line flags: %w", err)
	}
	return k, applyOverrides(f, k)
}

func applyOverrides(f *flag.FlagSet, k *koanf.Koanf) error {
	prefix := k.String("conf.env-prefix")
	if prefix != "" {
		if err := loadEnvironmentVariables(k, prefix); err != nil {
			return fmt.Errorf("error loading environment variables: %w", err)
		}
	}

	confString := k.String("conf.string")
	if confString != "" {
		if err := k.Load(rawbytes.Provider([]byte(confString)), json.Parser()); err != nil {
			return fmt.Errorf("error loading config string: %w", err)
		}
	}

	// flags trump environment and config-string values
	if err := k.Load(posflag.Provider(f, ".", k), nil); err != nil {
		return fmt.Errorf("error loading command line flags: %w", err)
	}
	return nil
}

// loadEnvironmentVariables translates variables such as PREFIX_CONF__ENV_PREFIX
// into the dotted, dashed keys flags produce (conf.env-prefix).
func loadEnvironmentVariables(k *koanf.Koanf, prefix string) error {
	return k.Load(env.Provider(prefix+"_", ".", func(key string) string {
		key = strings.ToLower(strings.TrimPrefix(key, prefix+"_"))
		key = strings.ReplaceAll(key, "__", ".")
		return strings.ReplaceAll(key, "_", "-")
	}), nil)
}

func EndCommonParse(k *koanf.Koanf, config interface{}) error {
	decoderConfig := mapstructure.DecoderConfig{
		ErrorUnused: true,

		// Default values
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc()),
		Metadata:         nil,
		Result:           config,
		WeaklyTypedInput: true,
	}
	err := k.UnmarshalWithConf("", config, koanf.UnmarshalConf{DecoderConfig: &decoderConfig})
	if err != nil {
		return fmt.Errorf("error parsing config: %w", err)
	}
	return nil
}
