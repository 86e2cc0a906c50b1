// Package config loads malla's settings from defaults, an optional YAML file
// and environment variables, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alexanderramin/malla/internal/logger"
	"gopkg.in/yaml.v3"
)

// Config is the application configuration.
type Config struct {
	Database struct {
		Path string `yaml:"path" env:"MALLA_DB"`
	} `yaml:"database"`

	Catalog struct {
		// Path to a curriculum JSON file; empty uses the embedded catalog.
		Path string `yaml:"path" env:"MALLA_CATALOG"`
	} `yaml:"catalog"`

	Server struct {
		Port int    `yaml:"port" env:"PORT"`
		Mode string `yaml:"mode" env:"MALLA_SERVER_MODE"`
	} `yaml:"server"`

	Logging struct {
		Level  string `yaml:"level" env:"MALLA_LOG_LEVEL"`
		Format string `yaml:"format" env:"MALLA_LOG_FORMAT"`
		// UseCases logs one line per service call (approve, set-grade...).
		UseCases bool `yaml:"use_cases" env:"MALLA_LOG_USE_CASES"`
	} `yaml:"logging"`
}

// ConfigPathEnv names the variable that points at the YAML file.
const ConfigPathEnv = "MALLA_CONFIG"

const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

var validModes = map[string]bool{"debug": true, "release": true, "test": true}

// Load builds the configuration. A missing file at path is not an error; a
// file that exists but does not parse is.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := setDefaults(cfg); err != nil {
		return nil, err
	}

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parsing config file %s: %w", path, err)
			}
		case errors.Is(err, os.ErrNotExist):
		default:
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
	}

	if err := processStructFields(cfg); err != nil {
		return nil, fmt.Errorf("loading from environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// DefaultPath returns $MALLA_CONFIG or ~/.malla/config.yaml.
func DefaultPath() string {
	if p := os.Getenv(ConfigPathEnv); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".malla", "config.yaml")
}

func setDefaults(cfg *Config) error {
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("finding home directory: %w", err)
	}
	cfg.Database.Path = filepath.Join(home, ".malla", "malla.db")
	cfg.Server.Port = 3001
	cfg.Server.Mode = "release"
	cfg.Logging.Level = string(logger.InfoLevel)
	cfg.Logging.Format = FormatConsole
	return nil
}

// Validate rejects settings the rest of the program cannot act on.
func (c *Config) Validate() error {
	if c.Database.Path == "" {
		return fmt.Errorf("database path is required")
	}
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server port %d out of range", c.Server.Port)
	}
	if !validModes[c.Server.Mode] {
		return fmt.Errorf("unknown server mode %q", c.Server.Mode)
	}
	if _, ok := logger.ParseLevel(c.Logging.Level); !ok {
		return fmt.Errorf("unknown log level %q", c.Logging.Level)
	}
	if c.Logging.Format != FormatConsole && c.Logging.Format != FormatJSON {
		return fmt.Errorf("unknown log format %q", c.Logging.Format)
	}
	return nil
}

// LoggerConfig maps the logging section onto logger.Config.
func (c *Config) LoggerConfig() logger.Config {
	lvl, _ := logger.ParseLevel(c.Logging.Level)
	return logger.Config{Level: lvl, Pretty: c.Logging.Format == FormatConsole}
}

// Addr is the listen address for the API server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}
