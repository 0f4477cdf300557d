package domain

import "github.com/google/uuid"

// Actor is the authenticated identity performing an operation. It is
// supplied by the session collaborator (JWT) and never persisted by
// this subsystem.
type Actor struct {
	PersonID uuid.UUID
	Role     Role
	Name     string
}

// ResourceRef points the authorization evaluator at a concrete
// resource. For case-scoped resources CaseNumber carries the owning
// case; for user resources PersonID carries the target user.
type ResourceRef struct {
	Kind       ResourceKind
	CaseNumber int64
	PersonID   uuid.UUID
}

// Decision is the outcome of an authorization evaluation. Reason is
// human-readable and returned verbatim to the caller on denial.
type Decision struct {
	Allowed bool
	Reason  string
}

// Allow returns a positive decision.
func Allow() Decision { return Decision{Allowed: true} }

// Deny returns a negative decision with the given reason.
func Deny(reason string) Decision { return Decision{Allowed: false, Reason: reason} }
