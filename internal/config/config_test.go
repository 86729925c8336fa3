package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"APP_ENV", "SERVER_PORT", "SERVER_READ_TIMEOUT", "SERVER_SHUTDOWN_TIMEOUT",
		"TRUSTED_ORIGINS", "DEV_ROUTES_ENABLED", "REDIS_HOST", "AUTH_TOKEN_FORMAT",
		"PASSWORD_HASHER", "BCRYPT_COST", "RATE_LIMIT_MAX_REQUESTS", "RATE_LIMIT_WINDOW",
		"DEMO_EMAIL",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_MissingSecretIsFatal(t *testing.T) {
	clearEnv(t)
	t.Setenv("AUTH_SECRET", "")

	cfg, err := Load()

	require.ErrorIs(t, err, ErrMissingAuthSecret)
	assert.Nil(t, cfg)
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("AUTH_SECRET", "test-secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.True(t, cfg.Server.IsDevelopment())
	assert.True(t, cfg.Server.DevRoutesEnabled)
	assert.Equal(t, 15*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, []byte("test-secret"), cfg.Auth.Secret)
	assert.Equal(t, "jwt", cfg.Auth.TokenFormat)
	assert.Equal(t, "bcrypt", cfg.Auth.PasswordHasher)
	assert.Equal(t, 10, cfg.Auth.BcryptCost)
	assert.False(t, cfg.Redis.Enabled())
	assert.Equal(t, "demo@example.com", cfg.Demo.Email)
	assert.Equal(t, 10, cfg.RateLimit.MaxRequests)
	assert.Equal(t, time.Minute, cfg.RateLimit.Window)
}

func TestLoad_ProductionDisablesDevRoutes(t *testing.T) {
	clearEnv(t)
	t.Setenv("AUTH_SECRET", "test-secret")
	t.Setenv("APP_ENV", "prod")

	cfg, err := Load()
	require.NoError(t, err)

	assert.False(t, cfg.Server.IsDevelopment())
	assert.False(t, cfg.Server.DevRoutesEnabled)
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("AUTH_SECRET", "test-secret")
	t.Setenv("AUTH_TOKEN_FORMAT", "PASETO")
	t.Setenv("PASSWORD_HASHER", "argon2id")
	t.Setenv("TRUSTED_ORIGINS", "http://a.test, http://b.test ,")
	t.Setenv("SERVER_READ_TIMEOUT", "3")
	t.Setenv("REDIS_HOST", "cache")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "paseto", cfg.Auth.TokenFormat)
	assert.Equal(t, "argon2id", cfg.Auth.PasswordHasher)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.Server.TrustedOrigins)
	assert.Equal(t, 3*time.Second, cfg.Server.ReadTimeout)
	assert.True(t, cfg.Redis.Enabled())
	assert.Equal(t, "cache:6379", cfg.Redis.Address())
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Auth:      AuthConfig{Secret: []byte("s"), TokenFormat: "jwt", PasswordHasher: "bcrypt"},
			RateLimit: RateLimitConfig{MaxRequests: 1},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"missing secret", func(c *Config) { c.Auth.Secret = nil }, true},
		{"unknown token format", func(c *Config) { c.Auth.TokenFormat = "saml" }, true},
		{"unknown hasher", func(c *Config) { c.Auth.PasswordHasher = "md5" }, true},
		{"zero rate limit", func(c *Config) { c.RateLimit.MaxRequests = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(c)
			err := c.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConnectionString(t *testing.T) {
	c := DatabaseConfig{Host: "db", Port: "5432", User: "u", Password: "p", DBName: "n", SSLMode: "disable"}

	assert.Equal(t, "host=db port=5432 user=u password=p dbname=n sslmode=disable", c.ConnectionString())
}
