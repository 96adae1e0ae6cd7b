package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// RestConfig bundles the settings the REST API entrypoint needs.
type RestConfig struct {
	Port     string           `yaml:"port" validate:"required"`
	Logger   LoggerSettings   `yaml:"logger"`
	Database DatabaseSettings `yaml:"database"`
}

// Validate checks that all nested settings are valid
func (c *RestConfig) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("port must not be empty")
	}
	if err := c.Logger.Validate(); err != nil {
		return fmt.Errorf("invalid logger settings: %w", err)
	}
	if err := c.Database.Validate(); err != nil {
		return fmt.Errorf("invalid database settings: %w", err)
	}
	return nil
}

// InitializeRestConfig reads the REST API configuration from a YAML file,
// fills in sane defaults for omitted fields and validates the result.
func InitializeRestConfig(path string) (*RestConfig, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg RestConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Sane defaults
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.Logger.LogLevel == "" {
		cfg.Logger.LogLevel = LogLevelInfo
	}
	if cfg.Logger.LogType == "" {
		cfg.Logger.LogType = LogTypeConsole
	}
	if cfg.Database.Type == "" {
		cfg.Database.Type = SqliteDbType
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}
