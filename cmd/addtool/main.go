// Copyright 2026, Offchain Labs, Inc.
// For license information, see https://github.com/OffchainLabs/checkadd/blob/master/LICENSE.md

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/log"
	flag "github.com/spf13/pflag"

	"github.com/offchainlabs/checkadd"
	"github.com/offchainlabs/checkadd/cmd/genericconf"
	"github.com/offchainlabs/checkadd/cmd/util/confighelpers"
	"github.com/offchainlabs/checkadd/util/colors"
)

func main() {
	args := os.Args
	if len(args) < 2 {
		panic("Usage: addtool [sum] ...")
	}

	var err error
	switch strings.ToLower(args[1]) {
	case "sum":
		err = startSum(args[2:])
	default:
		panic(fmt.Sprintf("Unknown tool '%s' specified, the only valid tool is 'sum'", args[1]))
	}
	if err != nil {
		colors.PrintRed("addtool error: ", err)
		os.Exit(1)
	}
}

// addtool sum

type SumConfig struct {
	Augend      uint64                        `koanf:"augend"`
	Addend      uint64                        `koanf:"addend"`
	Hex         bool                          `koanf:"hex"`
	LogLevel    string                        `koanf:"log-level"`
	LogType     string                        `koanf:"log-type"`
	FileLogging genericconf.FileLoggingConfig `koanf:"file-logging"`
	Conf        genericconf.ConfConfig        `koanf:"conf"`
}

func parseSumConfig(args []string) (*SumConfig, error) {
	f := flag.NewFlagSet("sum", flag.ContinueOnError)
	f.Uint64("augend", 0, "left operand of the checked addition")
	f.Uint64("addend", 0, "right operand of the checked addition")
	f.Bool("hex", false, "print the sum in hexadecimal")
	f.String("log-level", "info", "log level, valid values are 'trace', 'debug', 'info', 'warn', 'error', 'crit'")
	f.String("log-type", "plaintext", "log type, valid values are 'plaintext' and 'json'")
	genericconf.FileLoggingConfigAddOptions("file-logging", f)
	genericconf.ConfConfigAddOptions("conf", f)

	k, err := confighelpers.BeginCommonParse(f, args)
	if err != nil {
		return nil, err
	}

	var config SumConfig
	if err := confighelpers.EndCommonParse(k, &config); err != nil {
		return nil, err
	}
	return &config, nil
}

func startSum(args []string) error {
	config, err := parseSumConfig(args)
	if err != nil {
		return err
	}
	if err := genericconf.InitLog(config.LogType, config.LogLevel, &config.FileLogging); err != nil {
		return err
	}

	// an overflow panics out of performSum and takes the process down
	sum := performSum(config.Augend, config.Addend)

	if config.Hex {
		colors.PrintMint(fmt.Sprintf("Sum: %#x", sum))
	} else {
		colors.PrintMint(fmt.Sprintf("Sum: %v", sum))
	}
	return nil
}

func performSum(augend uint64, addend uint64) uint64 {
	log.Info("computing checked sum", "augend", augend, "addend", addend)
	return checkadd.Add(augend, addend)
}
