package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("DB_DSN", "postgres://app:pw@localhost:5432/accounts?sslmode=disable")
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, 15*time.Minute, cfg.AccessTokenTTL)
	assert.Equal(t, 30*time.Second, cfg.ReportCacheTTL)
	assert.Equal(t, "static", cfg.MetricsMode)
	assert.Equal(t, "accounts.events", cfg.RabbitExchange)
	assert.Empty(t, cfg.RedisAddr)
	assert.Empty(t, cfg.RabbitURL)
}

func TestLoad_MissingJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("DB_DSN", "postgres://app:pw@localhost:5432/accounts")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestLoad_MissingDB(t *testing.T) {
	t.Setenv("JWT_SECRET", "s")
	t.Setenv("DB_DSN", "")
	t.Setenv("DB_HOST", "")
	t.Setenv("DB_USER", "")
	t.Setenv("DB_NAME", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_DSN")
}

func TestLoad_AssemblesDSNFromParts(t *testing.T) {
	t.Setenv("JWT_SECRET", "s")
	t.Setenv("DB_DSN", "")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("DB_USER", "app")
	t.Setenv("DB_PASSWORD", "p@ss")
	t.Setenv("DB_NAME", "accounts")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Contains(t, cfg.DBDSN, "postgres://")
	assert.Contains(t, cfg.DBDSN, "db.internal:5433")
	assert.Contains(t, cfg.DBDSN, "/accounts")
	assert.Contains(t, cfg.DBDSN, "sslmode=disable")
	// password must be URL-escaped, never raw
	assert.NotContains(t, cfg.DBDSN, "p@ss@")
}

func TestLoad_InvalidDuration(t *testing.T) {
	setRequired(t)
	t.Setenv("ACCESS_TOKEN_TTL", "banana")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ACCESS_TOKEN_TTL")
}

func TestLoad_InvalidMetricsMode(t *testing.T) {
	setRequired(t)
	t.Setenv("METRICS_MODE", "prometheus")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "METRICS_MODE")
}

func TestNewDB_EmptyDSN(t *testing.T) {
	_, err := NewDB("")
	require.Error(t, err)
}
