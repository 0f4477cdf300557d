package lifecycle

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/mgvaldez/clinicajuridica-backend/internal/domain"
	"github.com/mgvaldez/clinicajuridica-backend/pkg/ctxutil"
)

// AssignPerson makes the person the case's active student or professor
// for the term. Any prior active assignment of the same kind for that
// (case, term) is deactivated in the same transaction, so exactly one
// active row survives.
func (s *Service) AssignPerson(ctx context.Context, input AssignPersonInput) (*domain.Assignment, error) {
	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	if err := s.authz.Authorize(ctx, actor, domain.ActionCreate, domain.ResourceRef{
		Kind:       domain.ResourceAssignment,
		CaseNumber: input.CaseNumber,
	}); err != nil {
		return nil, err
	}

	exists, err := s.cases.Exists(ctx, input.CaseNumber)
	if err != nil {
		return nil, fmt.Errorf("check case exists: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("case %d: %w", input.CaseNumber, domain.ErrNotFound)
	}

	now := time.Now().UTC()
	term := strings.TrimSpace(input.Term)

	var (
		assignment domain.Assignment
		replaced   []int64
	)
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		assignment, replaced, err = s.assignments.Assign(ctx, input.CaseNumber, term, input.PersonID, input.Kind, now)
		if err != nil {
			return fmt.Errorf("assign person: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// The implicit deactivation of the prior assignment is a mutation
	// like any other; it gets its own trail entry per replaced row.
	for _, id := range replaced {
		s.logAudit(ctx, domain.EntityTypeAssignment, fmt.Sprintf("%d", id), map[string]domain.FieldChange{
			"state": {
				Old: domain.StringPtr(domain.AssignmentActive.String()),
				New: domain.StringPtr(domain.AssignmentInactive.String()),
			},
		}, actor)
	}
	s.logAudit(ctx, domain.EntityTypeAssignment, fmt.Sprintf("%d", assignment.ID), map[string]domain.FieldChange{
		"person_id": {Old: nil, New: domain.StringPtr(input.PersonID.String())},
		"state":     {Old: nil, New: domain.StringPtr(domain.AssignmentActive.String())},
	}, actor)

	s.log.InfoContext(ctx, "person assigned",
		slog.Int64("case_number", input.CaseNumber),
		slog.String("term", term),
		slog.String("person_id", input.PersonID.String()),
		slog.String("kind", input.Kind.String()),
	)

	return &assignment, nil
}
