// Package config handles loading and parsing application configuration.
// It supports two sources (in priority order):
//  1. An environment variable:  CONFIG_PATH=/path/to/config.yaml
//  2. A command-line flag:      --config=/path/to/config.yaml
//
// Unlike a server, the console programs must come up with no flags and
// no environment at all, so the config file is optional: when neither
// source names one, every field falls back to its env-default tag and
// the program starts on the defaults (dev logging, memory backend).
// A file that IS named but is missing or malformed still refuses to
// start the program.
package config

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
)

// Storage backend names accepted in the config.
const (
	// BackendMemory keeps the collection in a Go map/slice.
	BackendMemory = "memory"

	// BackendSQLite keeps the collection in an in-memory SQLite
	// database. Nothing is written to disk with either backend.
	BackendSQLite = "sqlite"
)

// Config is the root configuration structure.
// Every field maps to a key in the YAML file AND can be overridden
// by the corresponding environment variable (env:"...").
//
// The validate tags are checked with go-playground/validator after
// loading, so a typo in the file fails at startup instead of surfacing
// as odd behavior mid-session.
type Config struct {
	// Env controls log format and verbosity.
	// Valid values: "dev", "staging", "prod"
	Env string `yaml:"env" env:"ENV" env-default:"dev" validate:"oneof=dev staging prod"`

	// Storage is embedded (not a pointer) so its fields are accessible
	// directly on Config: cfg.Storage.Backend.
	Storage `yaml:"storage"`
}

// Storage holds settings specific to the collection backend.
// Nested under storage: in the YAML file.
type Storage struct {
	// Backend selects the store implementation.
	// Valid values: "memory" (default), "sqlite"
	Backend string `yaml:"backend" env:"STORAGE_BACKEND" env-default:"memory" validate:"oneof=memory sqlite"`
}

// Load reads the config from the file at path, or from the environment
// and the env-default tags when path is empty, and validates the result.
func Load(path string) (*Config, error) {
	var cfg Config

	if path == "" {
		// No file named anywhere: defaults plus any ENV/STORAGE_BACKEND
		// overrides from the environment.
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config.Load: read env: %w", err)
		}
	} else {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return nil, fmt.Errorf("config.Load: config file does not exist: %s", path)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config.Load: read config: %w", err)
		}
	}

	// validator.New().Struct(v) checks all validate:"..." tags on v,
	// nested structs included. It returns a ValidationErrors slice
	// (which implements the error interface) if any rule fails.
	if err := validator.New().Struct(cfg); err != nil {
		validateErrs := err.(validator.ValidationErrors)
		return nil, fmt.Errorf("config.Load: %s", validationError(validateErrs))
	}

	return &cfg, nil
}

// validationError converts a slice of validator.FieldError values into
// a single human-readable message, one plain English clause per failing
// field:
//
//	field Backend must be one of: memory sqlite
func validationError(errs validator.ValidationErrors) string {
	var errMessages []string

	for _, e := range errs {
		switch e.ActualTag() {
		// "oneof" tag — the value is outside the allowed set
		case "oneof":
			errMessages = append(errMessages,
				fmt.Sprintf("field %s must be one of: %s", e.Field(), e.Param()))
		// Catch-all for any other validation tag
		default:
			errMessages = append(errMessages,
				fmt.Sprintf("field %s is invalid", e.Field()))
		}
	}

	return strings.Join(errMessages, ", ")
}

// MustLoad resolves the config path from CONFIG_PATH or --config and
// returns the loaded config.
//
// The name follows the Go convention: functions prefixed with "Must"
// are allowed to fatal on failure. If this function returns, the config
// is valid.
func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")

	if configPath == "" {
		flags := flag.String("config", "", "Path to the configuration YAML file (optional)")
		flag.Parse()
		configPath = *flags
	}

	cfg, err := Load(configPath)
	if err != nil {
		log.Fatalf("cannot load config: %s", err.Error())
	}

	return cfg
}
