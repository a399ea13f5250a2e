// alert-worker consumes overspend notifications from the broker. This
// reference worker logs each alert; a deployment would swap the handler for
// an email or push delivery.
package main

import (
	"context"
	"errors"
	"os"
	"time"

	"walletalert/internal/alerts"
	"walletalert/internal/cli"
	"walletalert/internal/log"
)

func main() {
	cli.LoadEnvFile()
	logger := cli.SetupLogger(log.ComponentWorker)
	cfg := cli.LoadAndValidateConfig(logger)

	if cfg.AMQPURL == "" {
		logger.Error("AMQP_URL is required for the alert worker")
		os.Exit(1)
	}

	client, err := alerts.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
	if err != nil {
		logger.Error("Failed to initialize AMQP client", log.FieldError, err)
		os.Exit(1)
	}
	defer client.Close()

	ctx, done := cli.GracefulShutdown(logger, 30*time.Second, nil)

	logger.Info("Starting alert-worker", "queue", cfg.AMQPQueue)

	go func() {
		err := client.ConsumeOverspend(ctx, func(msg *alerts.OverspendMessage) error {
			logger.Info("Budget overspent",
				log.FieldOwnerID, msg.OwnerID,
				log.FieldBudgetID, msg.BudgetID,
				log.FieldPeriod, string(msg.Period),
				log.FieldAmount, msg.Limit,
				log.FieldSpent, msg.Spent)
			return nil
		})
		if err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("Message consumption failed", log.FieldError, err)
		}
	}()

	cli.WaitForShutdown(ctx, done)
	logger.Info("Worker stopped gracefully")
}
