package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Server      ServerConfig
	OpenAI      OpenAIConfig
	NHTSA       NHTSAConfig
	Valuation   ValuationConfig
	History     HistoryConfig
	RedisConfig RedisConfig
	CacheEnable bool `env:"CACHE_ENABLE"`
}

type ServerConfig struct {
	Port            string        `env:"SERVER_PORT" envDefault:"8080"`
	Timeout         time.Duration `env:"SERVER_TIMEOUT" envDefault:"2m"`
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"10s"`
	ThrottleLimit   int           `env:"SERVER_THROTTLE_LIMIT" envDefault:"50"`
}

type OpenAIConfig struct {
	APIKey    string `env:"OPENAI_API_KEY"`
	BaseURL   string `env:"OPENAI_BASE_URL" envDefault:"https://api.openai.com/v1"`
	Model     string `env:"OPENAI_MODEL" envDefault:"gpt-4o"`
	MaxTokens int    `env:"OPENAI_MAX_TOKENS" envDefault:"500"`
}

type NHTSAConfig struct {
	BaseURL string        `env:"NHTSA_BASE_URL" envDefault:"https://vpic.nhtsa.dot.gov/api"`
	Timeout time.Duration `env:"NHTSA_TIMEOUT" envDefault:"30s"`
}

// ValuationConfig points at the optional paid valuation provider.
// An empty APIKey disables the paid path entirely.
type ValuationConfig struct {
	APIKey  string        `env:"VALUATION_API_KEY"`
	BaseURL string        `env:"VALUATION_BASE_URL" envDefault:"https://api.vehicle-valuation.example.com"`
	Timeout time.Duration `env:"VALUATION_TIMEOUT" envDefault:"15s"`
}

type HistoryConfig struct {
	File  string `env:"HISTORY_FILE" envDefault:"vin_history.json"`
	Limit int    `env:"HISTORY_LIMIT" envDefault:"50"`
}

type RedisConfig struct {
	Addr     string        `env:"REDIS_ADDR" envDefault:"redis:6379"`
	Password string        `env:"REDIS_PASSWORD"`
	DB       int           `env:"REDIS_DB" envDefault:"0"`
	TTL      time.Duration `env:"REDIS_TTL" envDefault:"10m"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
