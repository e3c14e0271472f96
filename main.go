package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dvrs00/teste-de-software/config"
	"github.com/dvrs00/teste-de-software/internal/bootstrap"
	"github.com/dvrs00/teste-de-software/pkg/logger"

	"github.com/joho/godotenv"
)

func main() {
	// Load .env file if exists (for local development)
	envErr := godotenv.Load()

	mode := flag.String("mode", "api", "Run mode: api, migrate")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("failed to load config: %v", err)
	}

	level := logger.LevelInfo
	if cfg.IsDevelopment() {
		level = logger.LevelDebug
	}
	if cfg.LogLevel != "" {
		level = logger.ParseLevel(cfg.LogLevel)
	}
	logger.Init(logger.Config{
		Level:   level,
		Service: "pessoas-api",
		Pretty:  cfg.IsDevelopment(),
	})

	if envErr != nil {
		logger.Debug("no .env file found, using environment variables")
	}

	switch *mode {
	case "api":
		runAPI(cfg)
	case "migrate":
		runMigrate(cfg)
	default:
		logger.Fatal("unknown mode: %s", *mode)
	}
}

func runAPI(cfg *config.Config) {
	app, cleanup, err := bootstrap.NewAPI(cfg)
	if err != nil {
		logger.Fatal("failed to initialize API: %v", err)
	}
	defer cleanup()

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		logger.Info("shutting down API server (timeout: %v)...", cfg.ShutdownTimeout)
		if err := app.ShutdownWithTimeout(cfg.ShutdownTimeout); err != nil {
			logger.Error("error shutting down: %v", err)
			return
		}
		logger.Info("API server shut down gracefully")
	}()

	addr := ":" + cfg.Port
	logger.Info("starting API server on %s", addr)
	if err := app.Listen(addr); err != nil {
		logger.Error("server stopped: %v", err)
	}
}

func runMigrate(cfg *config.Config) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if err := bootstrap.RunMigrations(ctx, cfg); err != nil {
		logger.Fatal("migration failed: %v", err)
	}
	logger.Info("migration complete")
}
