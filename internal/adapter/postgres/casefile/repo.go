// Package casefile implements the Case repository using PostgreSQL.
package casefile

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/mgvaldez/clinicajuridica-backend/internal/adapter/postgres"
	"github.com/mgvaldez/clinicajuridica-backend/internal/domain"
)

// Repo provides case persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new case repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a new case row. The case number is chosen by the
// caller (it comes from the clinic's numbering, not a sequence).
func (r *Repo) Create(ctx context.Context, c domain.Case) (domain.Case, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder.
		Insert("cases").
		Columns("case_number", "applicant_id", "materia", "category", "subcategory",
			"legal_scope", "nucleo", "procedure_type", "created_at").
		Values(c.Number, c.ApplicantID, c.Materia, c.Category, c.Subcategory,
			c.LegalScope, c.Nucleo, c.ProcedureType, c.CreatedAt).
		ToSql()
	if err != nil {
		return domain.Case{}, fmt.Errorf("build insert case: %w", err)
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return domain.Case{}, postgres.MapError(err, "case", c.Number)
	}
	return c, nil
}

// GetByNumber returns a case by its number.
func (r *Repo) GetByNumber(ctx context.Context, number int64) (*domain.Case, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder.
		Select("case_number AS number", "applicant_id", "materia", "category", "subcategory",
			"legal_scope", "nucleo", "procedure_type", "created_at").
		From("cases").
		Where(sq.Eq{"case_number": number}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get case: %w", err)
	}

	var c domain.Case
	if err := pgxscan.Get(ctx, q, &c, sql, args...); err != nil {
		return nil, postgres.MapError(err, "case", number)
	}
	return &c, nil
}

// Exists reports whether a case with the given number exists.
func (r *Repo) Exists(ctx context.Context, number int64) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var exists bool
	err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM cases WHERE case_number = $1)`, number).Scan(&exists)
	if err != nil {
		return false, postgres.MapError(err, "case", number)
	}
	return exists, nil
}
