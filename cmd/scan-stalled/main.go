// Command scan-stalled flags cases whose status has not moved within
// the configured threshold and notifies their active assignees. It is
// intended to be invoked by an external cron job (nightly), not as an
// in-process goroutine.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/mgvaldez/clinicajuridica-backend/internal/adapter/postgres"
	"github.com/mgvaldez/clinicajuridica-backend/internal/adapter/postgres/assignment"
	"github.com/mgvaldez/clinicajuridica-backend/internal/adapter/postgres/notification"
	"github.com/mgvaldez/clinicajuridica-backend/internal/adapter/postgres/statushistory"
	"github.com/mgvaldez/clinicajuridica-backend/internal/app"
	"github.com/mgvaldez/clinicajuridica-backend/internal/config"
	"github.com/mgvaldez/clinicajuridica-backend/internal/service/notifier"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	notificationRepo := notification.New(pool)

	svc := notifier.NewService(logger,
		statushistory.New(pool),
		notificationRepo,
		notificationRepo,
		assignment.New(pool),
		cfg.Notifier.StalledThresholdDays,
		cfg.Notifier.ScanBatchSize,
	)

	result, err := svc.ScanStalledCases(ctx)
	if err != nil {
		logger.Error("stalled scan failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("stalled scan completed",
		slog.Int("scanned", result.Scanned),
		slog.Int("flagged", len(result.FlaggedCases)),
		slog.Int("notified", result.Notified),
	)
}
