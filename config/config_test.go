package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("POSTGRES_HOST", "")
	t.Setenv("PORT", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "pgx", cfg.DBDriver)
	assert.False(t, cfg.UsesDatabase())
	assert.True(t, cfg.IsDevelopment())
}

func TestLoad_BuildsDSNFromParts(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("POSTGRES_HOST", "db")
	t.Setenv("POSTGRES_PORT", "5433")
	t.Setenv("POSTGRES_USER", "app")
	t.Setenv("POSTGRES_PASSWORD", "p@ss")
	t.Setenv("POSTGRES_DB", "pessoas")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "postgres://app:p%40ss@db:5433/pessoas?sslmode=disable", cfg.DatabaseURL)
}

func TestLoad_DatabaseURLWins(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://u@h/db")
	t.Setenv("POSTGRES_HOST", "ignored")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "postgres://u@h/db", cfg.DatabaseURL)
}

func TestLoad_RejectsBadDriver(t *testing.T) {
	t.Setenv("DB_DRIVER", "mysql")

	_, err := Load()
	assert.ErrorContains(t, err, "DB_DRIVER")
}

func TestLoad_RejectsZeroRateLimit(t *testing.T) {
	t.Setenv("RATE_LIMIT_RPS", "0")
	t.Setenv("RATE_LIMIT_BURST", "0")

	_, err := Load()
	assert.ErrorContains(t, err, "RATE_LIMIT_RPS")
}

func TestGetEnvSlice(t *testing.T) {
	t.Setenv("ALLOWED_ORIGINS", " http://a.test , ,http://b.test")
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, getEnvSlice("ALLOWED_ORIGINS", nil))
}
