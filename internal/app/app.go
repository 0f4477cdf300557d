// Package app wires configuration, storage, services, and transport
// into a running process.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/mgvaldez/clinicajuridica-backend/internal/adapter/postgres"
	"github.com/mgvaldez/clinicajuridica-backend/internal/adapter/postgres/assignment"
	auditrepo "github.com/mgvaldez/clinicajuridica-backend/internal/adapter/postgres/audit"
	"github.com/mgvaldez/clinicajuridica-backend/internal/adapter/postgres/casefile"
	"github.com/mgvaldez/clinicajuridica-backend/internal/adapter/postgres/notification"
	"github.com/mgvaldez/clinicajuridica-backend/internal/adapter/postgres/statuscatalog"
	"github.com/mgvaldez/clinicajuridica-backend/internal/adapter/postgres/statushistory"
	"github.com/mgvaldez/clinicajuridica-backend/internal/auth"
	"github.com/mgvaldez/clinicajuridica-backend/internal/config"
	"github.com/mgvaldez/clinicajuridica-backend/internal/service/audit"
	"github.com/mgvaldez/clinicajuridica-backend/internal/service/authz"
	"github.com/mgvaldez/clinicajuridica-backend/internal/service/lifecycle"
	"github.com/mgvaldez/clinicajuridica-backend/internal/service/notifier"
	"github.com/mgvaldez/clinicajuridica-backend/internal/transport/middleware"
	"github.com/mgvaldez/clinicajuridica-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects
// to the database, wires services and handlers, and serves HTTP until
// ctx is cancelled, then shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	statusRepo := statushistory.New(pool)
	assignmentRepo := assignment.New(pool)
	caseRepo := casefile.New(pool)
	catalogRepo := statuscatalog.New(pool)
	auditRepo := auditrepo.New(pool)
	notificationRepo := notification.New(pool)
	txManager := postgres.NewTxManager(pool)

	authzSvc := authz.NewService(logger, assignmentRepo)
	auditWriter := audit.NewWriter(logger, auditRepo)
	lifecycleSvc := lifecycle.NewService(logger,
		statusRepo, assignmentRepo, caseRepo, catalogRepo,
		authzSvc, auditWriter, txManager,
	)
	notifierSvc := notifier.NewService(logger,
		statusRepo, notificationRepo, notificationRepo, assignmentRepo,
		cfg.Notifier.StalledThresholdDays, cfg.Notifier.ScanBatchSize,
	)

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTTL)

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	router := rest.NewRouter(rest.RouterDeps{
		Cases:       rest.NewCaseHandler(lifecycleSvc, logger),
		Authz:       rest.NewAuthzHandler(authzSvc, logger),
		Maintenance: rest.NewMaintenanceHandler(notifierSvc, auditWriter, logger),
		Health:      rest.NewHealthHandler(pool, BuildVersion()),
		Metrics:     middleware.NewHTTPMetrics(registry),
		Registry:    registry,
		Middleware: []middleware.Middleware{
			middleware.RequestID,
			middleware.Recovery(logger),
			middleware.Logger(logger),
			middleware.Auth(jwtManager),
		},
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	logger.Info("stopped")
	return nil
}
