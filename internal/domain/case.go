package domain

import (
	"time"

	"github.com/google/uuid"
)

// DefaultOpeningStatus is the status recorded when a case is opened.
const DefaultOpeningStatus = "EN_PROCESO"

// Case is a legal matter tracked by its case number. The number is the
// immutable identity; classification fields are rarely mutated and the
// row is never physically deleted (closure happens through status).
type Case struct {
	Number        int64
	ApplicantID   uuid.UUID
	Materia       string
	Category      string
	Subcategory   string
	LegalScope    string
	Nucleo        string
	ProcedureType string
	CreatedAt     time.Time
}

// Status is one entry of the status reference catalog.
type Status struct {
	Code string
	Name string
}

// StatusEntry is one immutable record in a case's status history.
// The entry with the greatest RecordedAt (ties broken by highest ID,
// i.e. insertion order) is the case's current status.
type StatusEntry struct {
	ID         int64
	CaseNumber int64
	StatusCode string
	ActorID    uuid.UUID
	ActorName  string
	Reason     string
	RecordedAt time.Time
}
