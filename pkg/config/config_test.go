package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "shared")
	t.Setenv("BOOKING_API_TIMEOUT", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "shared", cfg.JWTSecret)
	assert.Equal(t, 10*time.Second, cfg.BookingApiTimeout)
	assert.Equal(t, 300*time.Second, cfg.NameCacheTTL)
	assert.Equal(t, "hotels", cfg.MongoDbDatabase)
	assert.False(t, cfg.RefreshTitleOnNewData)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "shared")
	t.Setenv("PORT", "9090")
	t.Setenv("BOOKING_API_TIMEOUT", "3")
	t.Setenv("NAME_CACHE_TTL", "60")
	t.Setenv("REFRESH_TITLE_ON_NEW_DATA", "true")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("REDIS_ADDR", "localhost:6379")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 3*time.Second, cfg.BookingApiTimeout)
	assert.Equal(t, time.Minute, cfg.NameCacheTTL)
	assert.True(t, cfg.RefreshTitleOnNewData)
	assert.False(t, cfg.IsDevelopment())
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
}

func TestLoad_RequiresJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	cfg, err := Load()
	assert.ErrorIs(t, err, ErrMissingJWTSecret)
	assert.Nil(t, cfg)
}
