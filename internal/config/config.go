// Package config loads runtime configuration for a truss invocation.
package config

import "github.com/spf13/viper"

// Config holds all runtime configuration.
// Values are populated from .truss.yaml, TRUSS_* env vars, and CLI flags.
type Config struct {
	HistoryPath string `mapstructure:"history_path"`
	NoColor     bool   `mapstructure:"no_color"`
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags.
func Load() Config {
	viper.SetDefault("history_path", ".truss/history.db")
	viper.SetDefault("no_color", false)

	var cfg Config
	_ = viper.Unmarshal(&cfg)
	return cfg
}
