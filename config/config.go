// Package config loads runtime settings from the environment
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/lixenwraith/cyber-invaders/constants"
)

// Config holds process-level settings; command-line flags override these values
type Config struct {
	Debug      bool   `env:"CYBER_DEBUG"`
	LogDir     string `env:"CYBER_LOG_DIR"`
	Seed       int64  `env:"CYBER_SEED"`
	Mute       bool   `env:"CYBER_MUTE"`
	ContentDir string `env:"CYBER_CONTENT_DIR"`

	FrameInterval        time.Duration `env:"CYBER_FRAME_INTERVAL"`
	HousekeepingInterval time.Duration `env:"CYBER_HOUSEKEEPING_INTERVAL"`
}

// Default returns the built-in settings
func Default() Config {
	return Config{
		LogDir:               constants.LogDirName,
		FrameInterval:        constants.FrameUpdateInterval,
		HousekeepingInterval: constants.HousekeepingInterval,
	}
}

// Load reads an optional dotenv file, then the environment, over the defaults
// An empty envFile or a missing file is not an error
func Load(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("load env file %s: %w", envFile, err)
		}
	}

	cfg := Default()
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the settings a session cannot run without
func (c Config) Validate() error {
	if c.FrameInterval <= 0 {
		return fmt.Errorf("frame interval must be positive, got %s", c.FrameInterval)
	}
	if c.HousekeepingInterval <= 0 {
		return fmt.Errorf("housekeeping interval must be positive, got %s", c.HousekeepingInterval)
	}
	if c.Debug && c.LogDir == "" {
		return errors.New("log dir is required when debug is enabled")
	}
	return nil
}
