package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// DatabaseSettings holds the connection settings for the relational store
// backing sessions and messages.
type DatabaseSettings struct {
	Type string `yaml:"type" validate:"required,oneof=postgres sqlite"`
	DSN  string `yaml:"dsn"`
	Name string `yaml:"name"`
}

// Validate checks that all fields in DatabaseSettings are valid
func (s *DatabaseSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for DatabaseSettings: %w", err)
	}

	// SQLite falls back to an in-memory database when no DSN is set;
	// PostgreSQL has no such fallback.
	if s.Type == PostgresDbType && s.DSN == "" {
		return fmt.Errorf("dsn is required for postgres")
	}

	return nil
}
