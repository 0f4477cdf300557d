// Package audit implements the audit log repository using PostgreSQL.
// It provides append-only operations for compliance records.
package audit

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/mgvaldez/clinicajuridica-backend/internal/adapter/postgres"
	"github.com/mgvaldez/clinicajuridica-backend/internal/domain"
)

// Repo provides audit record persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new audit repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Insert appends one audit record. Records are never updated or
// deleted.
func (r *Repo) Insert(ctx context.Context, record domain.AuditRecord) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder.
		Insert("audit_log").
		Columns("id", "entity_type", "entity_id", "field", "old_value", "new_value",
			"responsible_id", "responsible_name", "recorded_at").
		Values(record.ID, record.EntityType, record.EntityID, record.Field,
			record.OldValue, record.NewValue,
			record.ResponsibleID, record.ResponsibleName, record.RecordedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert audit record: %w", err)
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "audit_record", record.ID)
	}
	return nil
}

// ListByEntity returns the change history for one entity, most recent
// first, limited to limit records. Used only for compliance review.
func (r *Repo) ListByEntity(ctx context.Context, entityType domain.EntityType, entityID string, limit int) ([]domain.AuditRecord, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder.
		Select("id", "entity_type", "entity_id", "field", "old_value", "new_value",
			"responsible_id", "responsible_name", "recorded_at").
		From("audit_log").
		Where(sq.Eq{"entity_type": entityType, "entity_id": entityID}).
		OrderBy("recorded_at DESC", "id").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list audit records: %w", err)
	}

	var records []domain.AuditRecord
	if err := pgxscan.Select(ctx, q, &records, sql, args...); err != nil {
		return nil, postgres.MapError(err, "audit_record", entityID)
	}
	return records, nil
}
