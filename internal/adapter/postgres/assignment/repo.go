// Package assignment implements the case assignment store using
// PostgreSQL. Rows are deactivated, never deleted; at most one ACTIVE
// row may exist per (case, term, kind), backed by a partial unique
// index.
package assignment

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/mgvaldez/clinicajuridica-backend/internal/adapter/postgres"
	"github.com/mgvaldez/clinicajuridica-backend/internal/domain"
)

// Repo provides assignment persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new assignment repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Assign deactivates any ACTIVE row for (case, term, kind) and inserts
// the replacement in two statements, returning the ids of the rows it
// replaced so the caller can audit their deactivation. Callers MUST
// run it inside RunInTx so the deactivate+insert pair commits
// atomically; the partial unique index turns a concurrent insert into
// ErrConflict instead of a silent duplicate.
func (r *Repo) Assign(ctx context.Context, caseNumber int64, term string, personID uuid.UUID, kind domain.AssigneeKind, now time.Time) (domain.Assignment, []int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	deact, args, err := postgres.Builder.
		Update("case_assignments").
		Set("state", domain.AssignmentInactive).
		Set("deactivated_at", now).
		Where(sq.Eq{
			"case_number": caseNumber,
			"term":        term,
			"person_kind": kind,
			"state":       domain.AssignmentActive,
		}).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return domain.Assignment{}, nil, fmt.Errorf("build deactivate prior: %w", err)
	}
	var replaced []int64
	if err := pgxscan.Select(ctx, q, &replaced, deact, args...); err != nil {
		return domain.Assignment{}, nil, postgres.MapError(err, "assignment", caseNumber)
	}

	assignment := domain.Assignment{
		CaseNumber: caseNumber,
		Term:       term,
		PersonID:   personID,
		Kind:       kind,
		State:      domain.AssignmentActive,
		AssignedAt: now,
	}

	ins, args, err := postgres.Builder.
		Insert("case_assignments").
		Columns("case_number", "term", "person_id", "person_kind", "state", "assigned_at").
		Values(caseNumber, term, personID, kind, domain.AssignmentActive, now).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return domain.Assignment{}, nil, fmt.Errorf("build insert assignment: %w", err)
	}
	if err := q.QueryRow(ctx, ins, args...).Scan(&assignment.ID); err != nil {
		return domain.Assignment{}, nil, postgres.MapError(err, "assignment", caseNumber)
	}

	return assignment, replaced, nil
}

// Deactivate sets the row INACTIVE. No-op if it is already inactive;
// ErrNotFound if the id does not exist.
func (r *Repo) Deactivate(ctx context.Context, id int64, now time.Time) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder.
		Update("case_assignments").
		Set("state", domain.AssignmentInactive).
		Set("deactivated_at", now).
		Where(sq.Eq{"id": id, "state": domain.AssignmentActive}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build deactivate: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "assignment", id)
	}
	if tag.RowsAffected() > 0 {
		return nil
	}

	// Nothing updated: either already inactive (fine) or missing.
	var exists bool
	if err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM case_assignments WHERE id = $1)`, id).Scan(&exists); err != nil {
		return postgres.MapError(err, "assignment", id)
	}
	if !exists {
		return fmt.Errorf("assignment %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

// RepairDuplicates collapses every ACTIVE row for (case, term) down to
// the single highest-id row, regardless of kind, in one statement.
// This is the blunt administrative form: it will deactivate a
// legitimate student+professor pair, so it is only for explicit
// per-case requests. Idempotent: a second run finds nothing to repair.
func (r *Repo) RepairDuplicates(ctx context.Context, caseNumber int64, term string, now time.Time) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	const sql = `
		UPDATE case_assignments
		SET state = 'INACTIVE', deactivated_at = $3
		WHERE case_number = $1 AND term = $2 AND state = 'ACTIVE'
		  AND id <> (
			SELECT MAX(id) FROM case_assignments
			WHERE case_number = $1 AND term = $2 AND state = 'ACTIVE'
		  )`

	tag, err := q.Exec(ctx, sql, caseNumber, term, now)
	if err != nil {
		return 0, postgres.MapError(err, "assignment", caseNumber)
	}
	return tag.RowsAffected(), nil
}

// RepairDuplicatesByKind collapses duplicate ACTIVE rows for
// (case, term, kind), keeping the highest-id row within that kind.
// This mirrors the migration that restored the per-kind unique index
// and never touches the other kind's active row. Idempotent.
func (r *Repo) RepairDuplicatesByKind(ctx context.Context, caseNumber int64, term string, kind domain.AssigneeKind, now time.Time) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	const sql = `
		UPDATE case_assignments
		SET state = 'INACTIVE', deactivated_at = $4
		WHERE case_number = $1 AND term = $2 AND person_kind = $3 AND state = 'ACTIVE'
		  AND id <> (
			SELECT MAX(id) FROM case_assignments
			WHERE case_number = $1 AND term = $2 AND person_kind = $3 AND state = 'ACTIVE'
		  )`

	tag, err := q.Exec(ctx, sql, caseNumber, term, kind, now)
	if err != nil {
		return 0, postgres.MapError(err, "assignment", caseNumber)
	}
	return tag.RowsAffected(), nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns one assignment row by surrogate id.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Assignment, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := assignmentSelect().Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get assignment: %w", err)
	}

	var a domain.Assignment
	if err := pgxscan.Get(ctx, q, &a, sql, args...); err != nil {
		return nil, postgres.MapError(err, "assignment", id)
	}
	return &a, nil
}

// ActiveAssignees returns the person ids with an ACTIVE assignment for
// the case. term and kind narrow the query when non-zero; leaving both
// empty answers "who participates in this case at all".
func (r *Repo) ActiveAssignees(ctx context.Context, caseNumber int64, term string, kind domain.AssigneeKind) ([]uuid.UUID, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	b := postgres.Builder.
		Select("person_id").
		From("case_assignments").
		Where(sq.Eq{"case_number": caseNumber, "state": domain.AssignmentActive})
	if term != "" {
		b = b.Where(sq.Eq{"term": term})
	}
	if kind != "" {
		b = b.Where(sq.Eq{"person_kind": kind})
	}

	sql, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build active assignees: %w", err)
	}

	var ids []uuid.UUID
	if err := pgxscan.Select(ctx, q, &ids, sql, args...); err != nil {
		return nil, postgres.MapError(err, "assignment", caseNumber)
	}
	return ids, nil
}

// Participates reports whether the person holds any ACTIVE assignment
// for the case, regardless of term or kind.
func (r *Repo) Participates(ctx context.Context, caseNumber int64, personID uuid.UUID) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var participates bool
	err := q.QueryRow(ctx,
		`SELECT EXISTS(
			SELECT 1 FROM case_assignments
			WHERE case_number = $1 AND person_id = $2 AND state = 'ACTIVE'
		)`,
		caseNumber, personID,
	).Scan(&participates)
	if err != nil {
		return false, postgres.MapError(err, "assignment", caseNumber)
	}
	return participates, nil
}

// DuplicateCaseTerms lists every (case, term, kind) group holding more
// than one ACTIVE row; input to the administrative repair command.
// Grouping includes the kind so a healthy student+professor pair does
// not register as a duplicate.
func (r *Repo) DuplicateCaseTerms(ctx context.Context) ([]domain.CaseTerm, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	const sql = `
		SELECT case_number, term, person_kind AS kind
		FROM case_assignments
		WHERE state = 'ACTIVE'
		GROUP BY case_number, term, person_kind
		HAVING COUNT(*) > 1
		ORDER BY case_number, term, person_kind`

	var pairs []domain.CaseTerm
	if err := pgxscan.Select(ctx, q, &pairs, sql); err != nil {
		return nil, postgres.MapError(err, "assignment", "duplicate-scan")
	}
	return pairs, nil
}

func assignmentSelect() sq.SelectBuilder {
	return postgres.Builder.
		Select("id", "case_number", "term", "person_id", "person_kind AS kind", "state", "assigned_at", "deactivated_at").
		From("case_assignments")
}
