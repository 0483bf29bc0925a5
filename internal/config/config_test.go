package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "FOLIO_STORE", "REDIS_TTL_HOURS", "FOLIO_RETENTION_MONTHS", "FOLIO_CONTENT", "FOLIO_SECURE_COOKIES"} {
		t.Setenv(k, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, StoreCookie, cfg.Store)
	assert.Equal(t, 8760*time.Hour, cfg.RedisTTL)
	assert.Equal(t, 360*24*time.Hour, cfg.Retention)
	assert.Empty(t, cfg.ContentPath)
	assert.False(t, cfg.SecureCookie)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("FOLIO_STORE", "SQLite")
	t.Setenv("FOLIO_DB_PATH", "/tmp/prefs.db")
	t.Setenv("FOLIO_SECURE_COOKIES", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, StoreSQLite, cfg.Store)
	assert.Equal(t, "/tmp/prefs.db", cfg.DBPath)
	assert.True(t, cfg.SecureCookie)
}

func TestLoad_Errors(t *testing.T) {
	t.Setenv("FOLIO_STORE", "etcd")
	_, err := Load()
	assert.ErrorContains(t, err, "unknown store")

	t.Setenv("FOLIO_STORE", "")
	t.Setenv("REDIS_TTL_HOURS", "forever")
	_, err = Load()
	assert.ErrorContains(t, err, "REDIS_TTL_HOURS")
}
