package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	v := viper.New()
	setDefaults(v)

	cfg := fromViper(v)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Env)
	assert.True(t, cfg.IsDevelopment())
	assert.Empty(t, cfg.Server.AllowedOrigins)
	assert.Equal(t, SourceFixtures, cfg.Catalog.Source)
	assert.Equal(t, "en", cfg.Catalog.Locale)
	assert.True(t, cfg.Catalog.Seed)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.False(t, cfg.RateLimit.Enabled)
	assert.Equal(t, 120, cfg.RateLimit.Requests)
	assert.Equal(t, time.Minute, cfg.RateLimit.Window)
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("SERVER_ENV", "production")
	t.Setenv("CATALOG_SOURCE", "Postgres")
	t.Setenv("CATALOG_LOCALE", "uk")
	t.Setenv("CATALOG_SEED", "false")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example ,")
	t.Setenv("RATE_LIMIT_ENABLED", "true")
	t.Setenv("RATE_LIMIT_WINDOW_SECONDS", "5")
	t.Setenv("DB_USER", "catalog")

	cfg := Load()

	assert.False(t, cfg.IsDevelopment())
	assert.Equal(t, SourcePostgres, cfg.Catalog.Source)
	assert.Equal(t, "uk", cfg.Catalog.Locale)
	assert.False(t, cfg.Catalog.Seed)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.AllowedOrigins)
	assert.True(t, cfg.RateLimit.Enabled)
	assert.Equal(t, 5*time.Second, cfg.RateLimit.Window)
	assert.Equal(t, "catalog", cfg.Database.User)
}
