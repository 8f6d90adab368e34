package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigFileDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := LoadConfigFile(filepath.Join(t.TempDir(), ".env"))
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.App.Port)
	assert.Equal(t, "0.0.0.0", cfg.App.Host)
	assert.Equal(t, "development", cfg.App.Env)
	assert.False(t, cfg.App.IsProduction())
	assert.Equal(t, "dist", cfg.App.StaticDir)
	assert.Equal(t, "sqlite", cfg.DB.Driver)
	assert.Equal(t, "healthcare.db", cfg.DB.Path)
	assert.Equal(t, "disable", cfg.DB.SSLMode)
	assert.Equal(t, "test-secret", cfg.JWT.Secret)
	assert.Zero(t, cfg.JWT.Expiry)
}

func TestLoadConfigFileRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := LoadConfigFile(filepath.Join(t.TempDir(), ".env"))
	assert.ErrorIs(t, err, ErrMissingJWTSecret)
}

func TestLoadConfigFileReadsDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := "JWT_SECRET=from-file\nAPP_PORT=8081\nJWT_EXPIRY=2h\nDB_DRIVER=postgres\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := LoadConfigFile(path)
	require.NoError(t, err)

	assert.Equal(t, "from-file", cfg.JWT.Secret)
	assert.Equal(t, "8081", cfg.App.Port)
	assert.Equal(t, 2*time.Hour, cfg.JWT.Expiry)
	assert.Equal(t, "postgres", cfg.DB.Driver)
}

func TestLoadConfigFileEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("JWT_SECRET=from-file\nAPP_ENV=development\n"), 0o600))
	t.Setenv("APP_ENV", "production")

	cfg, err := LoadConfigFile(path)
	require.NoError(t, err)

	assert.True(t, cfg.App.IsProduction())
}

func TestLoadConfigFileRejectsBadExpiry(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("JWT_EXPIRY", "soon")

	_, err := LoadConfigFile(filepath.Join(t.TempDir(), ".env"))
	assert.Error(t, err)
}
