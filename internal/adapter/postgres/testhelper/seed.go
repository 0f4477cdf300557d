package testhelper

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mgvaldez/clinicajuridica-backend/internal/domain"
)

// caseCounter hands out non-conflicting case numbers across parallel tests.
var caseCounter atomic.Int64

func init() {
	caseCounter.Store(9_000_000)
}

// NextCaseNumber returns a case number no other test in the process has used.
func NextCaseNumber() int64 {
	return caseCounter.Add(1)
}

// SeedCase creates a case row and returns the filled domain.Case.
func SeedCase(t *testing.T, pool *pgxpool.Pool) domain.Case {
	t.Helper()
	ctx := context.Background()

	c := domain.Case{
		Number:        NextCaseNumber(),
		ApplicantID:   uuid.New(),
		Materia:       "civil",
		Category:      "arrendamiento",
		Subcategory:   "",
		LegalScope:    "",
		Nucleo:        "sede central",
		ProcedureType: "",
		CreatedAt:     time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO cases (case_number, applicant_id, materia, category, subcategory, legal_scope, nucleo, procedure_type, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		c.Number, c.ApplicantID, c.Materia, c.Category, c.Subcategory, c.LegalScope, c.Nucleo, c.ProcedureType, c.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCase insert case: %v", err)
	}

	return c
}

// SeedStatusEntry appends a status history entry for the case at the
// given time and returns it with the assigned id.
func SeedStatusEntry(t *testing.T, pool *pgxpool.Pool, caseNumber int64, statusCode string, recordedAt time.Time) domain.StatusEntry {
	t.Helper()
	ctx := context.Background()

	entry := domain.StatusEntry{
		CaseNumber: caseNumber,
		StatusCode: statusCode,
		ActorID:    uuid.New(),
		ActorName:  "Seed Actor",
		Reason:     "seeded",
		RecordedAt: recordedAt.UTC().Truncate(time.Microsecond),
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO case_status_history (case_number, status_code, actor_id, actor_name, reason, recorded_at)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id`,
		entry.CaseNumber, entry.StatusCode, entry.ActorID, entry.ActorName, entry.Reason, entry.RecordedAt,
	).Scan(&entry.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedStatusEntry insert: %v", err)
	}

	return entry
}

// SeedAssignment creates an assignment row in the given state and
// returns it with the assigned id.
func SeedAssignment(t *testing.T, pool *pgxpool.Pool, caseNumber int64, term string, kind domain.AssigneeKind, state domain.AssignmentState) domain.Assignment {
	t.Helper()
	ctx := context.Background()

	a := domain.Assignment{
		CaseNumber: caseNumber,
		Term:       term,
		PersonID:   uuid.New(),
		Kind:       kind,
		State:      state,
		AssignedAt: time.Now().UTC().Truncate(time.Microsecond),
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO case_assignments (case_number, term, person_id, person_kind, state, assigned_at)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id`,
		a.CaseNumber, a.Term, a.PersonID, string(a.Kind), string(a.State), a.AssignedAt,
	).Scan(&a.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedAssignment insert: %v", err)
	}

	return a
}
