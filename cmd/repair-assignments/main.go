// Command repair-assignments collapses duplicate ACTIVE assignments
// left over from the period the uniqueness index was dropped. Without
// flags it sweeps every (case, term, kind) group holding more than one
// ACTIVE row and keeps the newest row per kind, so a case with one
// active student and one active professor is left alone. With -case
// and -term it instead collapses that one pair to a single ACTIVE row
// across kinds; use it only on a case known to be broken. It is
// intended to be invoked manually or by an external cron job, not as
// an in-process goroutine.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/mgvaldez/clinicajuridica-backend/internal/adapter/postgres"
	"github.com/mgvaldez/clinicajuridica-backend/internal/adapter/postgres/assignment"
	auditrepo "github.com/mgvaldez/clinicajuridica-backend/internal/adapter/postgres/audit"
	"github.com/mgvaldez/clinicajuridica-backend/internal/adapter/postgres/casefile"
	"github.com/mgvaldez/clinicajuridica-backend/internal/adapter/postgres/statuscatalog"
	"github.com/mgvaldez/clinicajuridica-backend/internal/adapter/postgres/statushistory"
	"github.com/mgvaldez/clinicajuridica-backend/internal/app"
	"github.com/mgvaldez/clinicajuridica-backend/internal/config"
	"github.com/mgvaldez/clinicajuridica-backend/internal/domain"
	"github.com/mgvaldez/clinicajuridica-backend/internal/service/audit"
	"github.com/mgvaldez/clinicajuridica-backend/internal/service/authz"
	"github.com/mgvaldez/clinicajuridica-backend/internal/service/lifecycle"
	"github.com/mgvaldez/clinicajuridica-backend/pkg/ctxutil"
)

func main() {
	caseNumber := flag.Int64("case", 0, "repair only this case number (requires -term)")
	term := flag.String("term", "", "repair only this term (requires -case)")
	flag.Parse()

	if (*caseNumber != 0) != (*term != "") {
		log.Fatal("-case and -term must be given together")
	}

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

	assignmentRepo := assignment.New(pool)

	svc := lifecycle.NewService(logger,
		statushistory.New(pool),
		assignmentRepo,
		casefile.New(pool),
		statuscatalog.New(pool),
		authz.NewService(logger, assignmentRepo),
		audit.NewWriter(logger, auditrepo.New(pool)),
		postgres.NewTxManager(pool),
	)

	// The sweep runs with a synthetic administrator identity so the
	// repairs show up attributed in the audit trail.
	actor := domain.Actor{
		PersonID: uuid.New(),
		Role:     domain.RoleAdministrator,
		Name:     "repair-assignments",
	}
	ctx = ctxutil.WithActor(ctx, actor)

	var results []lifecycle.RepairResult
	if *caseNumber != 0 {
		r, err := svc.RepairDuplicateAssignments(ctx, *caseNumber, *term)
		if err != nil {
			logger.Error("repair failed",
				slog.Int64("case_number", *caseNumber),
				slog.String("term", *term),
				slog.String("error", err.Error()),
			)
			os.Exit(1)
		}
		results = []lifecycle.RepairResult{*r}
	} else {
		results, err = svc.RepairAllDuplicateAssignments(ctx)
		if err != nil {
			logger.Error("repair sweep failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	var total int64
	for _, r := range results {
		total += r.Deactivated
		logger.Info("repaired duplicates",
			slog.Int64("case_number", r.CaseNumber),
			slog.String("term", r.Term),
			slog.String("kind", string(r.Kind)),
			slog.Int64("deactivated", r.Deactivated),
		)
	}

	logger.Info("repair sweep completed",
		slog.Int("groups", len(results)),
		slog.Int64("deactivated", total),
	)
}
