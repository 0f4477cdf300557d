// Package authz evaluates whether an actor may perform an action on a
// resource. Non-student roles pass unconditionally; students are
// restricted to the cases they are actively assigned to.
package authz

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

type participationRepo interface {
	Participates(ctx context.Context, caseNumber int64, personID uuid.UUID) (bool, error)
}

// Service is the authorization evaluator.
type Service struct {
	assignments participationRepo
	log         *slog.Logger
}

// NewService creates a new authorization service.
func NewService(
	log *slog.Logger,
	assignments participationRepo,
) *Service {
	return &Service{
		assignments: assignments,
		log:         log.With("service", "authz"),
	}
}
