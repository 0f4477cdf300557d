package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditRecord describes one changed field of one mutation. Records are
// write-only and retained even if the described entity is later
// removed (weak reference, kept for compliance review).
//
// OldValue and NewValue are pointers because NULL and the empty string
// are distinct values in the audit trail.
type AuditRecord struct {
	ID              uuid.UUID
	EntityType      EntityType
	EntityID        string
	Field           string
	OldValue        *string
	NewValue        *string
	ResponsibleID   uuid.UUID
	ResponsibleName string
	RecordedAt      time.Time
}

// FieldChange holds the before/after values of a single field.
type FieldChange struct {
	Old *string
	New *string
}

// Changed reports whether the old and new values differ. nil vs ""
// counts as a change.
func (c FieldChange) Changed() bool {
	if c.Old == nil && c.New == nil {
		return false
	}
	if c.Old == nil || c.New == nil {
		return true
	}
	return *c.Old != *c.New
}

// StringPtr returns a pointer to s. Audit call sites use it to build
// FieldChange values without intermediate variables.
func StringPtr(s string) *string { return &s }
