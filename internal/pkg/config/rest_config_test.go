//go:build unit
// +build unit

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "rest-app.yaml")
	err := os.WriteFile(path, []byte(content), 0600)
	require.NoError(t, err)
	return path
}

func TestInitializeRestConfig(t *testing.T) {
	t.Run("full config", func(t *testing.T) {
		path := writeConfigFile(t, `
port: "9090"
logger:
  log_level: debug
  log_type: console
database:
  type: sqlite
  dsn: rsa-playground.db
`)

		cfg, err := InitializeRestConfig(path)
		require.NoError(t, err)

		assert.Equal(t, "9090", cfg.Port)
		assert.Equal(t, LogLevelDebug, cfg.Logger.LogLevel)
		assert.Equal(t, SqliteDbType, cfg.Database.Type)
		assert.Equal(t, "rsa-playground.db", cfg.Database.DSN)
	})

	t.Run("defaults applied for omitted fields", func(t *testing.T) {
		path := writeConfigFile(t, "{}\n")

		cfg, err := InitializeRestConfig(path)
		require.NoError(t, err)

		assert.Equal(t, "8080", cfg.Port)
		assert.Equal(t, LogLevelInfo, cfg.Logger.LogLevel)
		assert.Equal(t, LogTypeConsole, cfg.Logger.LogType)
		assert.Equal(t, SqliteDbType, cfg.Database.Type)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := InitializeRestConfig(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := writeConfigFile(t, "port: [not, a, string\n")

		_, err := InitializeRestConfig(path)
		require.Error(t, err)
	})

	t.Run("invalid nested settings", func(t *testing.T) {
		path := writeConfigFile(t, `
logger:
  log_level: shout
  log_type: console
`)

		_, err := InitializeRestConfig(path)
		require.Error(t, err)
	})
}
