package config

import (
	"errors"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// ErrMissingJWTSecret is returned when JWT_SECRET is unset. Viewer tokens
// are issued by the booking API and cannot be checked without its secret.
var ErrMissingJWTSecret = errors.New("JWT_SECRET is required")

type Config struct {
	Port        string
	Environment string
	CorsOrigin  string

	BookingApiUrl     string
	BookingApiTimeout time.Duration

	JWTSecret string

	MongoDbUri      string
	MongoDbDatabase string

	RedisAddr string
	ServerId  string

	NameCacheTTL          time.Duration
	RefreshTitleOnNewData bool
}

// Load reads .env when present and then the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("port", "8080")
	v.SetDefault("environment", "development")
	v.SetDefault("cors_origin", "http://localhost:3000")
	v.SetDefault("booking_api_url", "http://localhost:10888/api/v1")
	v.SetDefault("mongodb_database", "hotels")
	v.SetDefault("refresh_title_on_new_data", false)

	cfg := &Config{
		Port:        v.GetString("port"),
		Environment: v.GetString("environment"),
		CorsOrigin:  v.GetString("cors_origin"),

		BookingApiUrl:     v.GetString("booking_api_url"),
		BookingApiTimeout: seconds(v, "booking_api_timeout", 10),

		JWTSecret: v.GetString("jwt_secret"),

		MongoDbUri:      v.GetString("mongodb_uri"),
		MongoDbDatabase: v.GetString("mongodb_database"),

		RedisAddr: v.GetString("redis_addr"),
		ServerId:  v.GetString("server_id"),

		NameCacheTTL:          seconds(v, "name_cache_ttl", 300),
		RefreshTitleOnNewData: v.GetBool("refresh_title_on_new_data"),
	}

	if cfg.JWTSecret == "" {
		return nil, ErrMissingJWTSecret
	}

	return cfg, nil
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// seconds reads a whole number of seconds. Values that do not parse to a
// positive number fall back to def.
func seconds(v *viper.Viper, key string, def int64) time.Duration {
	n := v.GetInt64(key)
	if n <= 0 {
		n = def
	}
	return time.Duration(n) * time.Second
}
