package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	AppEnv string
	Port   string

	// Optional infrastructure. Empty disables the feature.
	RedisAddr   string
	KafkaBroker string

	RateLimitRPS   float64
	RateLimitBurst int
	IdempotencyTTL time.Duration

	SeedSampleData bool
}

func (c Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// Load reads configuration from the environment. Call godotenv.Load first
// to pick up a .env file.
func Load() (Config, error) {
	cfg := Config{
		AppEnv:         getenv("APP_ENV", "development"),
		Port:           getenv("PORT", "3000"),
		RedisAddr:      strings.TrimSpace(os.Getenv("REDIS_ADDR")),
		KafkaBroker:    strings.TrimSpace(os.Getenv("KAFKA_BROKER")),
		RateLimitRPS:   5,
		RateLimitBurst: 10,
		IdempotencyTTL: 24 * time.Hour,
	}

	var err error
	if v := os.Getenv("RATE_LIMIT_RPS"); v != "" {
		if cfg.RateLimitRPS, err = strconv.ParseFloat(v, 64); err != nil || cfg.RateLimitRPS <= 0 {
			return Config{}, fmt.Errorf("RATE_LIMIT_RPS must be a positive number, got %q", v)
		}
	}
	if v := os.Getenv("RATE_LIMIT_BURST"); v != "" {
		if cfg.RateLimitBurst, err = strconv.Atoi(v); err != nil || cfg.RateLimitBurst < 1 {
			return Config{}, fmt.Errorf("RATE_LIMIT_BURST must be a positive integer, got %q", v)
		}
	}
	if v := os.Getenv("IDEMPOTENCY_TTL"); v != "" {
		if cfg.IdempotencyTTL, err = time.ParseDuration(v); err != nil || cfg.IdempotencyTTL <= 0 {
			return Config{}, fmt.Errorf("IDEMPOTENCY_TTL must be a positive duration, got %q", v)
		}
	}
	if v := os.Getenv("SEED_SAMPLE_DATA"); v != "" {
		if cfg.SeedSampleData, err = strconv.ParseBool(v); err != nil {
			return Config{}, fmt.Errorf("SEED_SAMPLE_DATA must be a boolean, got %q", v)
		}
	}

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
