package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func setRequiredEnv(t *testing.T) {
	t.Setenv("POSTGRES_USER", "skillswap")
	t.Setenv("POSTGRES_PASSWORD", "p@ss word")
	t.Setenv("POSTGRES_HOST", "db")
	t.Setenv("POSTGRES_PORT", "5432")
	t.Setenv("POSTGRES_DB", "skillswap")
	t.Setenv("JWT_SECRET", "test-secret")
}

func TestLoad(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("CONFIG_PATH", writeConfig(t, `
env: dev
server:
  port: "9090"
  read_timeout: 3s
auth:
  token_ttl: 1h
redis:
  addr: localhost:6379
`))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 3*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 10*time.Second, cfg.Server.WriteTimeout)
	assert.Equal(t, time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, 12, cfg.Auth.BcryptCost)
	assert.Equal(t, "test-secret", cfg.Auth.JWTSecret)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, 10*time.Minute, cfg.Redis.CategoriesTTL)
	assert.Equal(t, "disable", cfg.Postgres.SSLMode)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("no path", func(t *testing.T) {
		t.Setenv("CONFIG_PATH", "")

		_, err := Load()
		assert.ErrorContains(t, err, "CONFIG_PATH is not set")
	})

	t.Run("missing file", func(t *testing.T) {
		t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "absent.yaml"))

		_, err := Load()
		assert.ErrorContains(t, err, "config file does not exist")
	})

	t.Run("missing required env", func(t *testing.T) {
		for _, key := range []string{"POSTGRES_USER", "POSTGRES_PASSWORD", "POSTGRES_HOST", "POSTGRES_PORT", "POSTGRES_DB", "JWT_SECRET"} {
			t.Setenv(key, "")
			os.Unsetenv(key)
		}
		t.Setenv("CONFIG_PATH", writeConfig(t, "env: local\nserver:\n  port: \"8080\"\n"))

		_, err := Load()
		assert.ErrorContains(t, err, "cannot read config")
	})
}

func TestMustLoad_Panics(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")

	assert.Panics(t, func() { MustLoad() })
}

func TestPostgres_DSN(t *testing.T) {
	p := Postgres{
		Username: "skillswap",
		Password: "p@ss word",
		Host:     "db",
		Port:     "5432",
		Database: "skillswap",
		SSLMode:  "disable",
	}

	assert.Equal(t, "postgres://skillswap:p%40ss%20word@db:5432/skillswap?sslmode=disable", p.DSN())
}
