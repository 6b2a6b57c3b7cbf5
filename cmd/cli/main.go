package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go-leave/internal/app"
	"go-leave/internal/config"
	"go-leave/internal/console"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	// The menu owns stdout; logs go to stderr at warn level.
	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	logger, err := zcfg.Build()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rt, err := app.BuildCore(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("build core failed", zap.Error(err))
	}
	defer rt.Close()

	c := console.New(rt.Core.Directory, rt.Core.Ledger, os.Stdin, os.Stdout, logger)
	if err := c.Run(ctx); err != nil && ctx.Err() == nil {
		logger.Error("console stopped with error", zap.Error(err))
	}
}
