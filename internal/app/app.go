package app

import (
	"context"
	"errors"

	"go-leave/internal/config"
	"go-leave/internal/messaging/kafka"
	"go-leave/internal/middleware"
	"go-leave/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const connectRetries = 5

// Runtime owns the core plus whatever infrastructure was connected for it.
type Runtime struct {
	Core    *Core
	closers []func() error
}

// Close releases infrastructure in reverse order of acquisition.
func (r *Runtime) Close() error {
	var errs []error
	for i := len(r.closers) - 1; i >= 0; i-- {
		errs = append(errs, r.closers[i]())
	}
	return errors.Join(errs...)
}

// BuildCore connects the event publisher (Kafka when KAFKA_BROKER is set)
// and builds the core, seeding it when configured.
func BuildCore(ctx context.Context, cfg config.Config, logger *zap.Logger) (*Runtime, error) {
	rt := &Runtime{}

	publisher := kafka.NewNoopEventPublisher()
	if cfg.KafkaBroker != "" {
		writer, err := connection.ConnectKafkaWithRetry(cfg.KafkaBroker, connectRetries)
		if err != nil {
			return nil, err
		}
		rt.closers = append(rt.closers, writer.Close)
		publisher = kafka.NewEventPublisher(writer, logger)
		logger.Info("kafka event publisher enabled", zap.String("broker", cfg.KafkaBroker))
	}

	rt.Core = NewCore(publisher, logger)

	if cfg.SeedSampleData {
		if err := SeedSampleData(ctx, rt.Core.Directory); err != nil {
			_ = rt.Close()
			return nil, err
		}
	}
	return rt, nil
}

// BuildApp wires the HTTP boundary onto router.
func BuildApp(ctx context.Context, router *gin.Engine, cfg config.Config, logger *zap.Logger) (*Runtime, error) {
	rt, err := BuildCore(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	router.Use(middleware.RequestID(), middleware.ContextLogger(logger))

	writeGuards := []gin.HandlerFunc{
		middleware.RateLimitByIP(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst),
	}

	var rdb redis.Cmdable
	if cfg.RedisAddr != "" {
		client, err := connection.ConnectRedisWithRetry(cfg.RedisAddr, connectRetries)
		if err != nil {
			_ = rt.Close()
			return nil, err
		}
		rt.closers = append(rt.closers, client.Close)
		rdb = client
		writeGuards = append(writeGuards, middleware.Idempotency(client, cfg.IdempotencyTTL, logger))
		logger.Info("idempotency enabled", zap.String("redis_addr", cfg.RedisAddr))
	}

	registerModules(router, rt.Core, rdb, logger, writeGuards...)
	return rt, nil
}
