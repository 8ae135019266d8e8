package cmd

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "flavorverse-orders", cfg.App.Name)
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, "8080", cfg.HTTP.Port)
	assert.Equal(t, "/api", cfg.HTTP.Prefix)
	assert.Equal(t, 10, cfg.Database.MaxOpenConns)
	assert.True(t, cfg.Database.AutoMigrate)
	assert.Empty(t, cfg.Auth.JWTSecret)
	assert.Equal(t, "authenticated", cfg.Auth.JWTAudience)
	assert.Equal(t, slog.LevelInfo, cfg.Log.SlogLevel())
}

func TestLoadConfig_EnvironmentOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("DATABASE_URL", "postgres://orders@db:5432/orders")
	t.Setenv("AUTH_JWT_SECRET", "s3cret")
	t.Setenv("AUTH_JWT_ISSUER", "https://auth.example.com/")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.False(t, cfg.IsDevelopment())
	assert.Equal(t, "9090", cfg.HTTP.Port)
	assert.Equal(t, "postgres://orders@db:5432/orders", cfg.Database.URL)
	assert.Equal(t, "s3cret", cfg.Auth.JWTSecret)
	assert.Equal(t, "https://auth.example.com/", cfg.Auth.JWTIssuer)
	assert.Equal(t, slog.LevelDebug, cfg.Log.SlogLevel())
}

func TestLoadConfig_Rejects(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "unknown environment", env: map[string]string{"APP_ENV": "staging"}},
		{name: "non-numeric port", env: map[string]string{"HTTP_PORT": "http"}},
		{name: "bad ip", env: map[string]string{"HTTP_IP": "localhost"}},
		{name: "secret without issuer", env: map[string]string{"AUTH_JWT_SECRET": "s3cret"}},
		{name: "unknown log level", env: map[string]string{"LOG_LEVEL": "trace"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := LoadConfig()

			assert.Error(t, err)
		})
	}
}

func TestLogSettings_SlogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelWarn, LogSettings{Level: "warn"}.SlogLevel())
	assert.Equal(t, slog.LevelError, LogSettings{Level: "error"}.SlogLevel())
	assert.Equal(t, slog.LevelInfo, LogSettings{Level: "loud"}.SlogLevel())
}
