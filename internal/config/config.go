// Package config resolves the tool's configuration from defaults, an
// optional YAML file and the environment, in that order.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	// Database
	DBPath string

	// StrictExit makes failed commands exit non-zero. Off by default:
	// the tool historically printed the error and exited 0, and existing
	// scripts may depend on that.
	StrictExit bool

	// Logging
	LogLevel string
}

// fileConfig is the YAML shape of an optional config file, pointed at by
// EXPENSES_CONFIG_FILE or found at ./expenses.yaml.
type fileConfig struct {
	DBPath     *string `yaml:"db_path"`
	StrictExit *bool   `yaml:"strict_exit"`
	LogLevel   *string `yaml:"log_level"`
}

// Load resolves the configuration. Environment variables win over the
// config file, which wins over defaults.
func Load() (*Config, error) {
	cfg := &Config{
		DBPath:     "./data/expenses.db",
		StrictExit: false,
		LogLevel:   "info",
	}

	if err := cfg.applyFile(); err != nil {
		return nil, err
	}

	cfg.DBPath = getEnv("EXPENSES_DB_PATH", cfg.DBPath)
	cfg.StrictExit = getEnvBool("EXPENSES_STRICT_EXIT", cfg.StrictExit)
	cfg.LogLevel = getEnv("EXPENSES_LOG_LEVEL", cfg.LogLevel)

	return cfg, nil
}

func (c *Config) applyFile() error {
	path := os.Getenv("EXPENSES_CONFIG_FILE")
	explicit := path != ""
	if !explicit {
		path = "./expenses.yaml"
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read config file %s: %w", path, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	if fc.DBPath != nil {
		c.DBPath = *fc.DBPath
	}
	if fc.StrictExit != nil {
		c.StrictExit = *fc.StrictExit
	}
	if fc.LogLevel != nil {
		c.LogLevel = *fc.LogLevel
	}
	return nil
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errs []string

	if c.DBPath == "" {
		errs = append(errs, "database path cannot be empty")
	} else {
		dir := filepath.Dir(c.DBPath)
		if dir != "." && dir != "" {
			if _, err := os.Stat(dir); os.IsNotExist(err) {
				if err := os.MkdirAll(dir, 0755); err != nil {
					errs = append(errs, fmt.Sprintf("cannot create database directory '%s': %v", dir, err))
				}
			}
		}
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Sprintf("invalid log level '%s': must be one of debug, info, warn, error", c.LogLevel))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errs, "\n- "))
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
