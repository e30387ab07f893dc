// Copyright 2025-2026, Offchain Labs, Inc.
// For license information, see https://github.com/OffchainLabs/checkadd/blob/master/LICENSE.md

package genericconf

import (
	"fmt"
	"io"
	"os"

	"github.com/ethereum/go-ethereum/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// InitLog installs the process-wide root handler. Not threadsafe.
func InitLog(logType string, logLevel string, fileLoggingConfig *FileLoggingConfig) error {
	format, err := ParseLogType(logType)
	if err != nil {
		return fmt.Errorf("error parsing log type: %w", err)
	}
	level, err := log.LvlFromString(logLevel)
	if err != nil {
		return fmt.Errorf("error parsing log level: %w", err)
	}

	var output io.Writer = os.Stderr
	if fileLoggingConfig.Enable {
		output = io.MultiWriter(
			io.Writer(os.Stderr),
			&lumberjack.Logger{
				Filename:   fileLoggingConfig.File,
				MaxSize:    fileLoggingConfig.MaxSize,
				MaxAge:     fileLoggingConfig.MaxAge,
				MaxBackups: fileLoggingConfig.MaxBackups,
				LocalTime:  fileLoggingConfig.LocalTime,
				Compress:   fileLoggingConfig.Compress,
			},
		)
	}

	glogger := log.NewGlogHandler(log.StreamHandler(output, format))
	glogger.Verbosity(level)
	log.Root().SetHandler(glogger)
	return nil
}
