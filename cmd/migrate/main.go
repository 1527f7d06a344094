package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/Apurer/order-entry/internal/platform/migrations"
	platformpostgres "github.com/Apurer/order-entry/internal/platform/postgres"
)

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	err := run(ctx, logger)
	cancel()
	if err != nil {
		logger.Error("order schema migration failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("order schema migration completed")
}

// run migrates the order schema; the connection is closed before it returns.
func run(ctx context.Context, logger *slog.Logger) error {
	db, cleanup := platformpostgres.ConnectFromEnv(ctx, logger)
	defer cleanup()
	if db == nil {
		return errors.New("POSTGRES_DSN not set or connection failed; cannot migrate order schema")
	}
	if err := migrations.Run(db.WithContext(ctx)); err != nil {
		return fmt.Errorf("migrate order schema: %w", err)
	}
	return nil
}
