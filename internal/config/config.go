// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/viper"
)

const (
	AppName        = "calc"
	ConfigFileName = "config"
	ConfigFileExt  = "yaml"
	EnvPrefix      = "CALC"
)

// Config holds the calculator settings.
type Config struct {
	Precision int    `mapstructure:"precision"`
	Database  string `mapstructure:"database"`
	LogLevel  string `mapstructure:"log_level"`
	Exact     bool   `mapstructure:"exact"`
}

// Default returns the built-in settings.
func Default() Config {
	db := "calc-units.sqlite3"
	if home, err := os.UserHomeDir(); err == nil {
		db = filepath.Join(home, "data", db)
	}
	return Config{
		Precision: 4,
		Database:  db,
		LogLevel:  "warn",
	}
}

// Dir returns $XDG_CONFIG_HOME/calc, defaulting to ~/.config/calc.
func Dir() (string, error) {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, AppName), nil
}

// Load reads the config file at path, or the default location when path is
// empty. A missing default file is not an error; a missing explicit file is.
// CALC_* environment variables override file values.
func Load(path string) (*Config, error) {
	v := viper.New()

	defaults := Default()
	v.SetDefault("precision", defaults.Precision)
	v.SetDefault("database", defaults.Database)
	v.SetDefault("log_level", defaults.LogLevel)
	v.SetDefault("exact", defaults.Exact)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		dir, err := Dir()
		if err != nil {
			return nil, err
		}
		v.SetConfigName(ConfigFileName)
		v.SetConfigType(ConfigFileExt)
		v.AddConfigPath(dir)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Precision < 0 || c.Precision > 30 {
		return fmt.Errorf("precision must be between 0 and 30, got %d", c.Precision)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}
	return nil
}

// Level returns the configured log level.
func (c *Config) Level() log.Level {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.WarnLevel
	}
	return level
}
