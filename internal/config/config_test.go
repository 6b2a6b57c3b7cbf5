package config_test

import (
	"testing"
	"time"

	"go-leave/internal/config"

	"github.com/stretchr/testify/assert"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"APP_ENV", "PORT", "REDIS_ADDR", "KAFKA_BROKER", "RATE_LIMIT_RPS", "RATE_LIMIT_BURST", "IDEMPOTENCY_TTL", "SEED_SAMPLE_DATA"} {
		t.Setenv(k, "")
	}
}

func TestLoad(t *testing.T) {
	t.Run("success defaults", func(t *testing.T) {
		clearEnv(t)

		cfg, err := config.Load()

		assert.NoError(t, err)
		assert.Equal(t, "development", cfg.AppEnv)
		assert.Equal(t, "3000", cfg.Port)
		assert.Empty(t, cfg.RedisAddr)
		assert.Empty(t, cfg.KafkaBroker)
		assert.Equal(t, 5.0, cfg.RateLimitRPS)
		assert.Equal(t, 10, cfg.RateLimitBurst)
		assert.Equal(t, 24*time.Hour, cfg.IdempotencyTTL)
		assert.False(t, cfg.SeedSampleData)
		assert.False(t, cfg.IsProduction())
	})

	t.Run("success overrides", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("APP_ENV", "production")
		t.Setenv("PORT", "8080")
		t.Setenv("REDIS_ADDR", "localhost:6379")
		t.Setenv("KAFKA_BROKER", "localhost:9092")
		t.Setenv("RATE_LIMIT_RPS", "2.5")
		t.Setenv("RATE_LIMIT_BURST", "4")
		t.Setenv("IDEMPOTENCY_TTL", "90m")
		t.Setenv("SEED_SAMPLE_DATA", "true")

		cfg, err := config.Load()

		assert.NoError(t, err)
		assert.True(t, cfg.IsProduction())
		assert.Equal(t, "8080", cfg.Port)
		assert.Equal(t, "localhost:6379", cfg.RedisAddr)
		assert.Equal(t, "localhost:9092", cfg.KafkaBroker)
		assert.Equal(t, 2.5, cfg.RateLimitRPS)
		assert.Equal(t, 4, cfg.RateLimitBurst)
		assert.Equal(t, 90*time.Minute, cfg.IdempotencyTTL)
		assert.True(t, cfg.SeedSampleData)
	})

	tests := []struct {
		key, value string
	}{
		{"RATE_LIMIT_RPS", "fast"},
		{"RATE_LIMIT_RPS", "-1"},
		{"RATE_LIMIT_BURST", "0"},
		{"IDEMPOTENCY_TTL", "tomorrow"},
		{"SEED_SAMPLE_DATA", "maybe"},
	}
	for _, tt := range tests {
		t.Run("negative "+tt.key+"="+tt.value, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := config.Load()

			assert.ErrorContains(t, err, tt.key)
		})
	}
}
