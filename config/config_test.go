package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const sampleConfig = `
env:
  env: test
  serviceName: cards
  log:
    level: debug
http:
  port: 8080
secretKey:
  access: file-secret
auth:
  bcryptCost: 4
  tokenTTL: 45m
  adminEmails:
    - Root@Example.com
`

func TestLoadWithEnv_FileAndEnvOverride(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(sampleConfig), 0o600))
	t.Chdir(dir)
	t.Setenv("SECRETKEY_ACCESS", "env-secret")

	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)

	assert.Equal(t, "cards", cfg.Env.ServiceName)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, "env-secret", cfg.SecretKey.Access)
	require.NotNil(t, cfg.Auth)
	assert.Equal(t, 4, cfg.Auth.BcryptCost)
	assert.Equal(t, 45*time.Minute, cfg.Auth.TokenTTL)
	assert.True(t, cfg.Auth.IsAdminEmail("root@example.com"))
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("absent")
	assert.Error(t, err)
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	require.NotNil(t, cfg.Auth)
	assert.Equal(t, defaultTokenTTL, cfg.Auth.TokenTTL)
	assert.Equal(t, bcrypt.DefaultCost, cfg.Auth.BcryptCost)
	assert.Equal(t, RateLimitConfig{PerMinute: 10, Burst: 10, ExpiresIn: time.Hour}, cfg.Auth.LoginRateLimit)
	require.NotNil(t, cfg.Migrations)
	assert.False(t, cfg.Migrations.AutoApply)
}

func TestAuthConfig_IsAdminEmail(t *testing.T) {
	var nilCfg *AuthConfig
	assert.False(t, nilCfg.IsAdminEmail("a@x.com"))

	cfg := &AuthConfig{AdminEmails: []string{"admin@x.com"}}
	assert.True(t, cfg.IsAdminEmail("ADMIN@x.com"))
	assert.False(t, cfg.IsAdminEmail("a@x.com"))
}
