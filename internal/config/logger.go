package config

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LoggerConfig describes the file logger. The terminal belongs to the UI, so
// there is no console logger.
type LoggerConfig struct {
	Level       string `yaml:"level"`                 // none | normal | debug
	Destination string `yaml:"destination,omitempty"` // defaults to <tmp>/pxrem.log
	Mode        string `yaml:"mode,omitempty"`        // append | overwrite
}

func (conf *LoggerConfig) validate() error {
	switch conf.Level {
	case "", "none", "normal", "debug":
	default:
		return fmt.Errorf("logging.level: %q (want none, normal or debug)", conf.Level)
	}
	switch conf.Mode {
	case "", "append", "overwrite":
	default:
		return fmt.Errorf("logging.mode: %q (want append or overwrite)", conf.Mode)
	}
	return nil
}

// Prepare returns the program logger and a function that flushes and closes
// it. Level "none" gives a no-op logger.
func (conf *LoggerConfig) Prepare() (*zap.Logger, func() error, error) {
	var level zapcore.Level
	switch conf.Level {
	case "debug":
		level = zap.DebugLevel
	case "normal":
		level = zap.InfoLevel
	default:
		return zap.NewNop(), func() error { return nil }, nil
	}

	dest := conf.Destination
	if dest == "" {
		dest = filepath.Join(os.TempDir(), "pxrem.log")
	}
	flags := os.O_CREATE | os.O_WRONLY
	if conf.Mode == "overwrite" {
		flags |= os.O_TRUNC
	} else {
		flags |= os.O_APPEND
	}
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return nil, nil, fmt.Errorf("unable to create log directory: %w", err)
	}
	f, err := os.OpenFile(dest, flags, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("unable to access file log destination (%s): %w", dest, err)
	}

	ec := zap.NewDevelopmentEncoderConfig()
	ec.EncodeCaller = nil
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(ec), zapcore.Lock(f), zap.NewAtomicLevelAt(level))
	log := zap.New(core)
	closeLog := func() error {
		return multierr.Combine(log.Sync(), f.Close())
	}
	return log, closeLog, nil
}
