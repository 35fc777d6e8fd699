package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestParseDefaults(t *testing.T) {
	unsetEnv(t, "PORT", "DATABASE_URL", "DATABASE_NAME", "MAX_LIST_LIMIT", "STORE_TIMEOUT")

	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, "8000", cfg.Port)
	assert.Equal(t, 5*time.Second, cfg.StoreTimeout)
	assert.Equal(t, int64(0), cfg.MaxListLimit, "no cap unless configured")
	assert.False(t, cfg.DatabaseURLSet())
	assert.False(t, cfg.DatabaseNameSet())
	assert.False(t, cfg.StoreConfigured())
}

func TestParseTrimsStoreVariables(t *testing.T) {
	t.Setenv("DATABASE_URL", "  mongodb://localhost:27017  ")
	t.Setenv("DATABASE_NAME", "   ")

	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, "mongodb://localhost:27017", cfg.DatabaseURL)
	assert.True(t, cfg.DatabaseURLSet())
	assert.False(t, cfg.DatabaseNameSet(), "whitespace-only name counts as unset")
	assert.False(t, cfg.StoreConfigured())
}

func TestParseRejectsBadDuration(t *testing.T) {
	t.Setenv("STORE_TIMEOUT", "soon")

	_, err := Parse()
	require.Error(t, err)
}

func TestLoadReadsDotenvWithoutOverridingEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("DATABASE_NAME=fromfile\nMAX_LIST_LIMIT=25\n"), 0o600))

	t.Setenv("DATABASE_NAME", "fromenv")
	unsetEnv(t, "MAX_LIST_LIMIT")

	require.NoError(t, Load(path))

	assert.Equal(t, "fromenv", AppEnv.DatabaseName)
	assert.Equal(t, int64(25), AppEnv.MaxListLimit)
}

func TestLoadIgnoresMissingDotenv(t *testing.T) {
	require.NoError(t, Load(filepath.Join(t.TempDir(), "missing.env")))
}
