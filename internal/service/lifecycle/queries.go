package lifecycle

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/mgvaldez/clinicajuridica-backend/internal/domain"
	"github.com/mgvaldez/clinicajuridica-backend/pkg/ctxutil"
)

// GetCase returns the case file by number.
func (s *Service) GetCase(ctx context.Context, number int64) (*domain.Case, error) {
	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if number <= 0 {
		return nil, domain.NewValidationError("case_number", "must be positive")
	}

	if err := s.authz.Authorize(ctx, actor, domain.ActionView, domain.ResourceRef{
		Kind:       domain.ResourceCase,
		CaseNumber: number,
	}); err != nil {
		return nil, err
	}

	c, err := s.cases.GetByNumber(ctx, number)
	if err != nil {
		return nil, fmt.Errorf("get case: %w", err)
	}
	return c, nil
}

// CurrentStatus returns the case's current status entry: the history
// entry with the latest RecordedAt, ties broken by insertion order.
func (s *Service) CurrentStatus(ctx context.Context, caseNumber int64) (*domain.StatusEntry, error) {
	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if caseNumber <= 0 {
		return nil, domain.NewValidationError("case_number", "must be positive")
	}

	if err := s.authz.Authorize(ctx, actor, domain.ActionView, domain.ResourceRef{
		Kind:       domain.ResourceCase,
		CaseNumber: caseNumber,
	}); err != nil {
		return nil, err
	}

	entry, err := s.statuses.Current(ctx, caseNumber)
	if err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("case %d has no status history: %w", caseNumber, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get current status: %w", err)
	}
	return entry, nil
}

// StatusHistory returns the full status trail of the case, newest
// first.
func (s *Service) StatusHistory(ctx context.Context, caseNumber int64) ([]domain.StatusEntry, error) {
	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if caseNumber <= 0 {
		return nil, domain.NewValidationError("case_number", "must be positive")
	}

	if err := s.authz.Authorize(ctx, actor, domain.ActionView, domain.ResourceRef{
		Kind:       domain.ResourceCase,
		CaseNumber: caseNumber,
	}); err != nil {
		return nil, err
	}

	exists, err := s.cases.Exists(ctx, caseNumber)
	if err != nil {
		return nil, fmt.Errorf("check case exists: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("case %d: %w", caseNumber, domain.ErrNotFound)
	}

	entries, err := s.statuses.History(ctx, caseNumber)
	if err != nil {
		return nil, fmt.Errorf("get status history: %w", err)
	}
	return entries, nil
}

// ActiveAssignees returns the person ids actively assigned to the
// case. term and kind narrow the answer when non-zero.
func (s *Service) ActiveAssignees(ctx context.Context, caseNumber int64, term string, kind domain.AssigneeKind) ([]uuid.UUID, error) {
	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if caseNumber <= 0 {
		return nil, domain.NewValidationError("case_number", "must be positive")
	}
	if kind != "" && !kind.IsValid() {
		return nil, domain.NewValidationError("kind", "must be STUDENT or PROFESSOR")
	}

	if err := s.authz.Authorize(ctx, actor, domain.ActionView, domain.ResourceRef{
		Kind:       domain.ResourceAssignment,
		CaseNumber: caseNumber,
	}); err != nil {
		return nil, err
	}

	ids, err := s.assignments.ActiveAssignees(ctx, caseNumber, term, kind)
	if err != nil {
		return nil, fmt.Errorf("list active assignees: %w", err)
	}
	return ids, nil
}

// ListStatuses returns the status reference catalog.
func (s *Service) ListStatuses(ctx context.Context) ([]domain.Status, error) {
	statuses, err := s.catalog.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list statuses: %w", err)
	}
	return statuses, nil
}
