package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_DefaultsWithoutFile(t *testing.T) {
	LoadConfig(t.TempDir())

	assert.Equal(t, "8080", AppConfig.Server.Port)
	assert.Equal(t, 2*time.Second, AppConfig.Ledger.LockTimeout)
	assert.False(t, AppConfig.Database.Enabled)
	assert.False(t, AppConfig.Redis.Enabled)
	assert.Equal(t, 10*time.Minute, AppConfig.Redis.TTL)
}

func TestLoadConfig_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	content := "server:\n  port: \"9090\"\nledger:\n  lock_timeout: 500ms\njwt:\n  secret_key: segredo\n"
	err := os.WriteFile(filepath.Join(dir, "config.yml"), []byte(content), 0o600)
	assert.NoError(t, err)

	t.Setenv("REDIS_ENABLED", "true")

	LoadConfig(dir)

	assert.Equal(t, "9090", AppConfig.Server.Port)
	assert.Equal(t, 500*time.Millisecond, AppConfig.Ledger.LockTimeout)
	assert.Equal(t, "segredo", AppConfig.JWT.SecretKey)
	assert.True(t, AppConfig.Redis.Enabled)
}

func TestJWTKey(t *testing.T) {
	LoadConfig(t.TempDir())

	_, err := AppConfig.JWTKey()
	assert.ErrorIs(t, err, ErrJWTSecretAusente, "no default secret")

	AppConfig.JWT.SecretKey = "   "
	_, err = AppConfig.JWTKey()
	assert.ErrorIs(t, err, ErrJWTSecretAusente)

	AppConfig.JWT.SecretKey = "segredo"
	key, err := AppConfig.JWTKey()
	require.NoError(t, err)
	assert.Equal(t, []byte("segredo"), key)
}
