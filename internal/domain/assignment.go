package domain

import (
	"time"

	"github.com/google/uuid"
)

// Assignment links a person (student or supervising professor) to a
// case for one academic term. Rows are deactivated on reassignment,
// never deleted, so the table doubles as assignment history.
type Assignment struct {
	ID            int64
	CaseNumber    int64
	Term          string
	PersonID      uuid.UUID
	Kind          AssigneeKind
	State         AssignmentState
	AssignedAt    time.Time
	DeactivatedAt *time.Time
}

// IsActive reports whether the assignment currently confers
// responsibility for the case.
func (a *Assignment) IsActive() bool { return a.State == AssignmentActive }

// CaseTerm identifies one (case, term, kind) assignment scope. The
// kind matters: a case legitimately holds one active STUDENT and one
// active PROFESSOR per term, so duplicates only exist within a kind.
type CaseTerm struct {
	CaseNumber int64
	Term       string
	Kind       AssigneeKind
}
