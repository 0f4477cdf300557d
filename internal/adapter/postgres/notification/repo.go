// Package notification implements the notification sink and the
// stalled-case flag store using PostgreSQL. Delivery UI is external;
// this subsystem only records what must be delivered.
package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/mgvaldez/clinicajuridica-backend/internal/adapter/postgres"
)

// Repo writes notification rows and stalled-case dedup flags.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new notification repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Notify records one notification for the person.
func (r *Repo) Notify(ctx context.Context, personID uuid.UUID, message string, relatedCase int64) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder.
		Insert("notifications").
		Columns("id", "person_id", "message", "related_case", "created_at").
		Values(uuid.New(), personID, message, relatedCase, time.Now().UTC()).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert notification: %w", err)
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "notification", personID)
	}
	return nil
}

// TryFlagStalled records the dedup flag for (case, status, bucket).
// Returns true when this call created the flag; false when the case
// was already flagged for this status and threshold, so repeated
// scans do not re-notify.
func (r *Repo) TryFlagStalled(ctx context.Context, caseNumber int64, statusCode string, thresholdDays int) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx,
		`INSERT INTO stalled_case_flags (case_number, status_code, threshold_days, flagged_at)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (case_number, status_code, threshold_days) DO NOTHING`,
		caseNumber, statusCode, thresholdDays, time.Now().UTC(),
	)
	if err != nil {
		return false, postgres.MapError(err, "stalled_flag", caseNumber)
	}
	return tag.RowsAffected() > 0, nil
}

// Acknowledge clears the flag so a later scan may notify again.
func (r *Repo) Acknowledge(ctx context.Context, caseNumber int64, statusCode string, thresholdDays int) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := q.Exec(ctx,
		`DELETE FROM stalled_case_flags
		 WHERE case_number = $1 AND status_code = $2 AND threshold_days = $3`,
		caseNumber, statusCode, thresholdDays,
	)
	if err != nil {
		return postgres.MapError(err, "stalled_flag", caseNumber)
	}
	return nil
}
