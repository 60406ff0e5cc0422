package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	t.Run("Reads the yaml file", func(t *testing.T) {
		path := writeConfig(t, `
log-level: debug
http:
  port: "8081"
  shutdown-timeout: 2s
  allowed-origins:
    - http://localhost:5173
    - https://tictactoe.example.com
game:
  default-board-size: 5
storage:
  results: redis
  sessions: redis
redis:
  host: cache
  port: "6380"
  db: 2
`)

		conf, err := Load(path)

		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, "8081", conf.HTTP.Port)
		assert.Equal(t, 2*time.Second, conf.HTTP.ShutdownTimeout)
		assert.Equal(t, 10*time.Second, conf.HTTP.ReadTimeout)
		assert.Equal(t, []string{"http://localhost:5173", "https://tictactoe.example.com"}, conf.HTTP.AllowedOrigins)
		assert.Equal(t, 5, conf.Game.DefaultBoardSize)
		assert.Equal(t, 24*time.Hour, conf.Game.SessionTTL)
		assert.Equal(t, DriverRedis, conf.Storage.Results)
		assert.Equal(t, "cache:6380", conf.Redis.GetRedisAddr())
		assert.Equal(t, 2, conf.Redis.DB)
	})

	t.Run("Environment overrides the file", func(t *testing.T) {
		path := writeConfig(t, "http:\n  port: \"8081\"\n")
		t.Setenv("HTTP_PORT", "7070")
		t.Setenv("HTTP_ALLOWED_ORIGINS", "http://a.test,http://b.test")

		conf, err := Load(path)

		require.NoError(t, err)
		assert.Equal(t, "7070", conf.HTTP.Port)
		assert.Equal(t, []string{"http://a.test", "http://b.test"}, conf.HTTP.AllowedOrigins)
	})

	t.Run("Missing file falls back to the environment", func(t *testing.T) {
		t.Setenv("STORAGE_RESULTS", "sqlite")
		t.Setenv("SQLITE_STORAGE_PATH", "/tmp/stats.db")

		conf, err := Load(filepath.Join(t.TempDir(), "absent.yml"))

		require.NoError(t, err)
		assert.Equal(t, DriverSQLite, conf.Storage.Results)
		assert.Equal(t, DriverMemory, conf.Storage.Sessions)
		assert.Equal(t, "/tmp/stats.db", conf.SQLiteStoragePath)
		assert.Equal(t, "9090", conf.HTTP.Port)
		assert.Equal(t, 3, conf.Game.DefaultBoardSize)
		assert.Equal(t, []string{"*"}, conf.HTTP.AllowedOrigins)
	})

	t.Run("Rejects unknown drivers", func(t *testing.T) {
		path := writeConfig(t, "storage:\n  results: mongo\n")

		_, err := Load(path)

		assert.ErrorIs(t, err, ErrUnknownDriver)
	})

	t.Run("Sessions cannot live in SQL", func(t *testing.T) {
		path := writeConfig(t, "storage:\n  sessions: postgres\n")

		_, err := Load(path)

		assert.ErrorIs(t, err, ErrUnknownDriver)
	})

	t.Run("Postgres needs a dsn", func(t *testing.T) {
		path := writeConfig(t, "storage:\n  results: postgres\n")

		_, err := Load(path)

		require.Error(t, err)
	})

	t.Run("MustLoad panics on a broken file", func(t *testing.T) {
		path := writeConfig(t, "http: [not, a, map\n")

		assert.Panics(t, func() { MustLoad(path) })
	})
}
