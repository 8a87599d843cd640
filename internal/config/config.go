// Package config handles loading and parsing application configuration.
// It supports three sources (in priority order):
//  1. An environment variable:  CONFIG_PATH=/path/to/config.yaml
//  2. A command-line flag:      --config=/path/to/config.yaml
//  3. Neither: environment variables and the env-default tags below.
//
// Environment variables always override values from the YAML file.
package config

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
)

// Config is the root configuration structure.
// Every field maps to a key in the YAML file AND can be overridden
// by the corresponding environment variable (env:"...").
type Config struct {
	// Env controls log format and verbosity.
	// Valid values: "dev", "staging", "prod"
	Env string `yaml:"env" env:"ENV" env-default:"dev" validate:"oneof=dev staging prod"`

	Storage `yaml:"storage"`
	Log     `yaml:"log"`
}

// Storage selects the record store backend. Both backends are in-memory;
// records never outlive the process.
type Storage struct {
	// Driver is "memory" (ordered slice) or "sqlite" (in-memory SQLite).
	Driver string `yaml:"driver" env:"STORAGE_DRIVER" env-default:"memory" validate:"oneof=memory sqlite"`
}

// Log holds logger settings.
type Log struct {
	// Level overrides the env-derived level when set: debug, info, warn, error.
	Level string `yaml:"level" env:"LOG_LEVEL" validate:"omitempty,oneof=debug info warn error"`

	// Output is a zap sink: "stderr", "stdout" or a file path. Logs default
	// to stderr so they do not interleave with the menu on stdout.
	Output string `yaml:"output" env:"LOG_OUTPUT" env-default:"stderr" validate:"required"`
}

// Load reads the YAML file at path (environment only when path is empty)
// and validates the result.
func Load(path string) (*Config, error) {
	var cfg Config

	if path == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config.Load: read env: %w", err)
		}
	} else {
		// Verify the file exists before trying to read it, for a clearer
		// message than the one from the YAML decoder.
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return nil, fmt.Errorf("config.Load: config file does not exist: %s", path)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config.Load: read %s: %w", path, err)
		}
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config.Load: validate: %w", err)
	}

	return &cfg, nil
}

// MustLoad reads, validates, and returns the application config.
//
// Functions prefixed with "Must" exit on failure, so callers do not need to
// check a returned error — if this returns, the config is valid.
func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")

	if configPath == "" {
		flags := flag.String("config", "", "Path to the configuration YAML file")
		flag.Parse()
		configPath = *flags
	}

	cfg, err := Load(configPath)
	if err != nil {
		log.Fatalf("cannot read config: %s", err.Error())
	}

	return cfg
}
