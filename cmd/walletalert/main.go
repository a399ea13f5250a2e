package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"time"

	"walletalert/internal/alerts"
	"walletalert/internal/backend"
	"walletalert/internal/cli"
	apphttp "walletalert/internal/http"
	"walletalert/internal/log"
)

func main() {
	cli.LoadEnvFile()
	logger := cli.SetupLogger(log.ComponentApp)
	cfg := cli.LoadAndValidateConfig(logger)

	// Backend selection happens exactly once. A process that falls back to
	// memory stays on memory for its whole lifetime.
	factory := backend.NewFactory(logger.Logger)
	result, err := factory.CreateBackend(backend.Config{
		Type:         backend.BackendType(cfg.DataBackend),
		SQLiteDBPath: cfg.SQLiteDBPath,
	})
	if err != nil {
		logger.Error("Failed to create backend", log.FieldError, err, log.FieldBackend, cfg.DataBackend)
		os.Exit(1)
	}
	defer func() {
		if result.Cleanup != nil {
			if err := result.Cleanup(); err != nil {
				logger.Error("Backend cleanup failed", log.FieldError, err)
			}
		}
	}()
	logger.Info("Backend initialized", log.FieldBackend, result.Type.String())

	// Overspend alerts are optional; without a broker URL the server runs
	// with alerts disabled.
	var alertPublisher apphttp.AlertPublisher
	if cfg.AMQPURL != "" {
		client, err := alerts.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
		if err != nil {
			logger.Error("Failed to initialize AMQP client", log.FieldError, err)
			os.Exit(1)
		}
		defer client.Close()
		alertPublisher = client
		logger.Info("Overspend alerts enabled", "exchange", cfg.AMQPExchange, "queue", cfg.AMQPQueue)
	} else {
		logger.Info("Overspend alerts disabled - no AMQP_URL provided")
	}

	srv := apphttp.NewServer(apphttp.Config{
		Addr:               ":" + cfg.Port,
		JWTSecret:          cfg.JWTSecret,
		DevMode:            cfg.DevMode,
		RateLimitPerMinute: cfg.RateLimitPerMinute,
	}, result.Store, alertPublisher, logger.WithComponent(log.ComponentHTTP))

	ctx, done := cli.GracefulShutdown(logger, 30*time.Second, func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Server shutdown error", log.FieldError, err)
		}
	})

	logger.Info("Starting walletalert server",
		"port", cfg.Port,
		log.FieldBackend, result.Type.String(),
		"dev_mode", cfg.DevMode)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("Server error", log.FieldError, err, "port", cfg.Port)
		os.Exit(1)
	}

	cli.WaitForShutdown(ctx, done)
	logger.Info("Server stopped gracefully")
}
