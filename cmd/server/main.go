package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"skillmatch/internal/app"
	"skillmatch/internal/config"
	"skillmatch/internal/database/seeder"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	c, err := app.NewContainer(cfg)
	if err != nil {
		log.Fatalf("build container: %v", err)
	}
	defer func() {
		if err := c.Close(); err != nil {
			c.Log.Warn("cleanup failed", zap.Error(err))
		}
	}()

	seedCtx, cancelSeed := context.WithTimeout(context.Background(), 30*time.Second)
	if err := (seeder.Runner{Seeders: seeder.Defaults()}).Run(seedCtx, c.DB); err != nil {
		cancelSeed()
		c.Log.Fatal("seed database", zap.Error(err))
	}
	cancelSeed()

	a := app.New(c)

	addr, err := app.ListenAddr(cfg.App.HTTPPort)
	if err != nil {
		c.Log.Fatal("resolve listen address", zap.Error(err))
	}

	errCh := make(chan error, 1)
	go func() {
		c.Log.Info("http server listening",
			zap.String("addr", addr),
			zap.String("env", cfg.App.Environment),
		)
		errCh <- a.Fiber.Listen(addr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			c.Log.Fatal("http server stopped", zap.Error(err))
		}
	case sig := <-quit:
		c.Log.Info("shutting down", zap.String("signal", sig.String()))
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := a.Fiber.ShutdownWithContext(ctx); err != nil {
			c.Log.Error("graceful shutdown failed", zap.Error(err))
		}
	}
}
