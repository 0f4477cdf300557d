// Package statushistory implements the append-only status ledger
// using PostgreSQL. Entries are only ever inserted; the current status
// of a case is derived, not stored.
package statushistory

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/mgvaldez/clinicajuridica-backend/internal/adapter/postgres"
	"github.com/mgvaldez/clinicajuridica-backend/internal/domain"
)

// Repo provides status history persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new status history repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Insert appends a new status entry and returns it with the assigned
// surrogate id. Prior entries are never touched.
func (r *Repo) Insert(ctx context.Context, entry domain.StatusEntry) (domain.StatusEntry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder.
		Insert("case_status_history").
		Columns("case_number", "status_code", "actor_id", "actor_name", "reason", "recorded_at").
		Values(entry.CaseNumber, entry.StatusCode, entry.ActorID, entry.ActorName, entry.Reason, entry.RecordedAt).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return domain.StatusEntry{}, fmt.Errorf("build insert status entry: %w", err)
	}

	if err := q.QueryRow(ctx, sql, args...).Scan(&entry.ID); err != nil {
		return domain.StatusEntry{}, postgres.MapError(err, "status_entry", entry.CaseNumber)
	}

	return entry, nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// Current returns the entry with the greatest recorded_at for the
// case; ties break by highest id (insertion order).
func (r *Repo) Current(ctx context.Context, caseNumber int64) (*domain.StatusEntry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := entrySelect().
		Where("case_number = ?", caseNumber).
		OrderBy("recorded_at DESC", "id DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build current status: %w", err)
	}

	var entry domain.StatusEntry
	if err := pgxscan.Get(ctx, q, &entry, sql, args...); err != nil {
		return nil, postgres.MapError(err, "status_entry", caseNumber)
	}

	return &entry, nil
}

// History returns all entries for the case, most recent first.
func (r *Repo) History(ctx context.Context, caseNumber int64) ([]domain.StatusEntry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := entrySelect().
		Where("case_number = ?", caseNumber).
		OrderBy("recorded_at DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build history: %w", err)
	}

	var entries []domain.StatusEntry
	if err := pgxscan.Select(ctx, q, &entries, sql, args...); err != nil {
		return nil, postgres.MapError(err, "status_entry", caseNumber)
	}

	return entries, nil
}

// Stalled returns the latest entry of every case whose latest entry is
// older than cutoff and whose status is not excludeStatus. Cases
// already flagged for their current (status, threshold) bucket are
// skipped in the query itself, so a backlog larger than limit cannot
// pin the scan to the same already-flagged batch forever. Read-only;
// safe to run concurrently with live mutations.
func (r *Repo) Stalled(ctx context.Context, cutoff time.Time, excludeStatus string, thresholdDays int, limit int) ([]domain.StatusEntry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	const sql = `
		SELECT id, case_number, status_code, actor_id, actor_name, reason, recorded_at
		FROM (
			SELECT DISTINCT ON (case_number)
				id, case_number, status_code, actor_id, actor_name, reason, recorded_at
			FROM case_status_history
			ORDER BY case_number, recorded_at DESC, id DESC
		) latest
		WHERE status_code <> $1 AND recorded_at < $2
		  AND NOT EXISTS (
			SELECT 1 FROM stalled_case_flags f
			WHERE f.case_number = latest.case_number
			  AND f.status_code = latest.status_code
			  AND f.threshold_days = $3
		  )
		ORDER BY recorded_at ASC
		LIMIT $4`

	var entries []domain.StatusEntry
	if err := pgxscan.Select(ctx, q, &entries, sql, excludeStatus, cutoff, thresholdDays, limit); err != nil {
		return nil, postgres.MapError(err, "status_entry", "stalled-scan")
	}

	return entries, nil
}

func entrySelect() sq.SelectBuilder {
	return postgres.Builder.
		Select("id", "case_number", "status_code", "actor_id", "actor_name", "reason", "recorded_at").
		From("case_status_history")
}
