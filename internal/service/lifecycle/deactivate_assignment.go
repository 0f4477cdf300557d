package lifecycle

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/mgvaldez/clinicajuridica-backend/internal/domain"
	"github.com/mgvaldez/clinicajuridica-backend/pkg/ctxutil"
)

// DeactivateAssignment releases the person from the case. The row is
// kept as history. Deactivating an already-inactive assignment is a
// no-op.
func (s *Service) DeactivateAssignment(ctx context.Context, input DeactivateAssignmentInput) error {
	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return err
	}

	current, err := s.assignments.GetByID(ctx, input.AssignmentID)
	if err != nil {
		return fmt.Errorf("load assignment: %w", err)
	}

	if err := s.authz.Authorize(ctx, actor, domain.ActionEdit, domain.ResourceRef{
		Kind:       domain.ResourceAssignment,
		CaseNumber: current.CaseNumber,
	}); err != nil {
		return err
	}

	if err := s.assignments.Deactivate(ctx, input.AssignmentID, time.Now().UTC()); err != nil {
		return fmt.Errorf("deactivate assignment: %w", err)
	}

	if current.IsActive() {
		s.logAudit(ctx, domain.EntityTypeAssignment, fmt.Sprintf("%d", input.AssignmentID), map[string]domain.FieldChange{
			"state": {
				Old: domain.StringPtr(domain.AssignmentActive.String()),
				New: domain.StringPtr(domain.AssignmentInactive.String()),
			},
		}, actor)
	}

	s.log.InfoContext(ctx, "assignment deactivated",
		slog.Int64("assignment_id", input.AssignmentID),
		slog.Int64("case_number", current.CaseNumber),
		slog.String("actor_id", actor.PersonID.String()),
	)

	return nil
}
