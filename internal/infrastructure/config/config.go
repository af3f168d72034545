package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,     default=8080"`
	Env      string `env:"ENV,      default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// TokenKey signs every session token. Startup fails without it; there
	// is no fallback secret.
	TokenKey string        `env:"TOKEN_KEY, required"`
	TokenTTL time.Duration `env:"TOKEN_TTL, default=10h"`

	Mongo    MongoConfig
	Redis    RedisConfig
	Upstream UpstreamConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=geoweather"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type UpstreamConfig struct {
	GeocodeBaseURL string        `env:"GEOCODE_BASE_URL, default=https://nominatim.openstreetmap.org"`
	WeatherBaseURL string        `env:"WEATHER_BASE_URL, default=https://api.openweathermap.org"`
	WeatherAPIKey  string        `env:"OPEN_WEATHER_API_ID"`
	Timeout        time.Duration `env:"UPSTREAM_TIMEOUT, default=10s"`
}

// Load reads configuration from environment variables using go-envconfig.
// Missing required values surface here so the process refuses to start
// half-configured.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
