// Package statuscatalog reads the status reference table. The catalog
// is seeded by migration and treated as read-only reference data.
package statuscatalog

import (
	"context"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/mgvaldez/clinicajuridica-backend/internal/adapter/postgres"
	"github.com/mgvaldez/clinicajuridica-backend/internal/domain"
)

// Repo provides read access to the status catalog.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new status catalog repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// List returns all configured statuses.
func (r *Repo) List(ctx context.Context) ([]domain.Status, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder.
		Select("code", "name").
		From("statuses").
		OrderBy("code").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list statuses: %w", err)
	}

	var statuses []domain.Status
	if err := pgxscan.Select(ctx, q, &statuses, sql, args...); err != nil {
		return nil, postgres.MapError(err, "status", "catalog")
	}
	return statuses, nil
}

// Exists reports whether the status code is part of the catalog.
func (r *Repo) Exists(ctx context.Context, code string) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var exists bool
	err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM statuses WHERE code = $1)`, code).Scan(&exists)
	if err != nil {
		return false, postgres.MapError(err, "status", code)
	}
	return exists, nil
}
