// sheets-export is a one-shot command that copies an owner's transactions
// into a Google Sheet.
package main

import (
	"context"
	"flag"
	"os"
	"time"

	"walletalert/internal/backend"
	"walletalert/internal/cli"
	"walletalert/internal/export/sheets"
	"walletalert/internal/log"
	"walletalert/internal/services"
)

func main() {
	owner := flag.String("owner", "", "owner identifier whose transactions are exported")
	flag.Parse()

	cli.LoadEnvFile()
	logger := cli.SetupLogger(log.ComponentExport)
	cfg := cli.LoadAndValidateConfig(logger)

	if *owner == "" {
		logger.Error("the -owner flag is required")
		os.Exit(1)
	}
	if cfg.GoogleSpreadsheetID == "" {
		logger.Error("GOOGLE_SPREADSHEET_ID is required for export")
		os.Exit(1)
	}

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
			_ = result.Cleanup()
		}
	}()

	if result.Type != backend.SQLiteBackend {
		logger.Warn("Exporting from a non-durable backend", log.FieldBackend, result.Type.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	exporter, err := sheets.New(ctx, sheets.Config{
		SpreadsheetID: cfg.GoogleSpreadsheetID,
		SheetName:     cfg.GoogleSheetName,
	})
	if err != nil {
		logger.Error("Failed to initialize Sheets exporter", log.FieldError, err)
		os.Exit(1)
	}

	txs, err := services.NewTransactionService(result.Store).ListTransactions(ctx, *owner)
	if err != nil {
		logger.Error("Failed to list transactions", log.FieldError, err, log.FieldOwnerID, *owner)
		os.Exit(1)
	}

	rows, err := exporter.ExportTransactions(ctx, *owner, txs)
	if err != nil {
		logger.Error("Export failed", log.FieldError, err, log.FieldOwnerID, *owner)
		os.Exit(1)
	}

	logger.Info("Export complete",
		log.FieldOwnerID, *owner,
		"rows", rows,
		"sheet", cfg.GoogleSheetName)
}
