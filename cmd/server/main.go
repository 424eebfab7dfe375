package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Guruprasath-Annadurai/Nexture-sub001/internal/app"
	"github.com/Guruprasath-Annadurai/Nexture-sub001/internal/config"

	"github.com/joho/godotenv"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("failed to read .env: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := log.New(os.Stdout, "", log.LstdFlags)
	if err := run(cfg, logger); err != nil {
		logger.Fatalf("server=exit status=error err=%v", err)
	}
}

// run serves until SIGINT/SIGTERM or a listener failure. The hub and
// scheduler share ctx, so they stop with the server.
func run(cfg config.Config, logger *log.Logger) error {
	addr, err := app.ListenAddr(cfg.App.HTTPPort)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, cleanup, err := app.Bootstrap(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := cleanup(); err != nil {
			logger.Printf("server=cleanup status=error err=%v", err)
		}
	}()

	errCh := make(chan error, 1)
	go func() {
		logger.Printf("server=listen addr=%s env=%s scheduler=%t", addr, cfg.App.Environment, a.Scheduler != nil)
		errCh <- a.Fiber.Listen(addr)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Printf("server=shutdown timeout=%s", shutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return a.Fiber.ShutdownWithContext(shutdownCtx)
}
