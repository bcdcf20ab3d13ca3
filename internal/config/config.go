// Package config loads the optional YAML configuration and prepares the logger.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/goccy/go-yaml"
	"go.uber.org/multierr"

	"github.com/Makepad-fr/pxrem/internal/units"
)

// EnvConfigPath names the environment variable that overrides the config location.
const EnvConfigPath = "PXREM_CONFIG"

// MaxInputSize limits configuration files, they are tiny.
const MaxInputSize = 1 << 16

var (
	ErrConfigNotFound = errors.New("config file not found")
	ErrConfigParse    = errors.New("failed to parse config")
	ErrConfigInvalid  = errors.New("invalid config")
)

// Config holds everything that can be tuned without recompiling.
type Config struct {
	BaseSize         float64       `yaml:"base_size"`
	Direction        string        `yaml:"direction"`         // px2rem | rem2px
	Presets          []float64     `yaml:"presets"`           // quick values offered by the UI
	AutoCopy         bool          `yaml:"auto_copy"`         // copy after typing pauses
	CopyDelay        time.Duration `yaml:"copy_delay"`        // pause before auto-copy
	FeedbackDuration time.Duration `yaml:"feedback_duration"` // how long "Copied!" stays
	Logging          LoggerConfig  `yaml:"logging"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		BaseSize:         units.DefaultBaseSize,
		Direction:        units.PxToRemDir.String(),
		Presets:          []float64{8, 16, 24, 32, 48, 64},
		AutoCopy:         true,
		CopyDelay:        800 * time.Millisecond,
		FeedbackDuration: 2 * time.Second,
		Logging: LoggerConfig{
			Level: "none",
			Mode:  "append",
		},
	}
}

// Resolve picks the configuration path: explicit flag, then $PXREM_CONFIG,
// then the per-user default if such a file exists. Empty means defaults only.
func Resolve(flagPath string) string {
	if flagPath != "" {
		return flagPath
	}
	if env := os.Getenv(EnvConfigPath); env != "" {
		return env
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	p := filepath.Join(base, "pxrem", "config.yaml")
	if _, err := os.Stat(p); err != nil {
		return ""
	}
	return p
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := readLimited(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.UnmarshalWithOptions(data, cfg, yaml.Strict()); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrConfigParse, path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// readLimited reads at most MaxInputSize bytes of path; anything larger is rejected.
func readLimited(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	defer f.Close()
	data, err := io.ReadAll(io.LimitReader(f, MaxInputSize+1))
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > MaxInputSize {
		return nil, fmt.Errorf("%w: %s exceeds %d bytes", ErrConfigParse, path, MaxInputSize)
	}
	return data, nil
}

// Validate reports every problem at once.
func (c *Config) Validate() (err error) {
	if _, e := units.SetBaseSize(units.DefaultBaseSize, c.BaseSize); e != nil {
		err = multierr.Append(err, fmt.Errorf("base_size: %w", e))
	}
	if _, e := units.ParseDirection(c.Direction); e != nil {
		err = multierr.Append(err, fmt.Errorf("direction: %w", e))
	}
	for i, p := range c.Presets {
		if p < 0 {
			err = multierr.Append(err, fmt.Errorf("presets[%d]: negative value %v", i, p))
		}
	}
	if len(c.Presets) > 9 {
		err = multierr.Append(err, fmt.Errorf("presets: at most 9 values, got %d", len(c.Presets)))
	}
	if c.CopyDelay < 0 {
		err = multierr.Append(err, fmt.Errorf("copy_delay: negative duration %s", c.CopyDelay))
	}
	if c.FeedbackDuration < 0 {
		err = multierr.Append(err, fmt.Errorf("feedback_duration: negative duration %s", c.FeedbackDuration))
	}
	err = multierr.Append(err, c.Logging.validate())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrConfigInvalid, err)
	}
	return nil
}

// State builds the starting conversion state from the configuration.
func (c *Config) State() units.State {
	st := units.NewState()
	if d, err := units.ParseDirection(c.Direction); err == nil {
		st.Direction = d
	}
	_ = st.SetBaseSize(c.BaseSize)
	return st
}

// Dump renders the configuration as YAML.
func Dump(c *Config) ([]byte, error) {
	b, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("yaml marshal: %w", err)
	}
	return b, nil
}
