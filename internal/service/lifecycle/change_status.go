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

// ChangeStatus appends a new entry to the case's status history. Any
// catalog status may follow any other, including reopening an archived
// case; the history keeps the full trail either way.
func (s *Service) ChangeStatus(ctx context.Context, input ChangeStatusInput) (*domain.StatusEntry, error) {
	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	if err := s.authz.Authorize(ctx, actor, domain.ActionEdit, domain.ResourceRef{
		Kind:       domain.ResourceCase,
		CaseNumber: input.CaseNumber,
	}); err != nil {
		return nil, err
	}

	code := strings.TrimSpace(input.StatusCode)

	known, err := s.catalog.Exists(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("check status code: %w", err)
	}
	if !known {
		return nil, domain.NewValidationError("status_code", "unknown status code")
	}

	exists, err := s.cases.Exists(ctx, input.CaseNumber)
	if err != nil {
		return nil, fmt.Errorf("check case exists: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("case %d: %w", input.CaseNumber, domain.ErrNotFound)
	}

	var (
		entry domain.StatusEntry
		prior *domain.StatusEntry
	)

	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		prior, err = s.statuses.Current(ctx, input.CaseNumber)
		if err != nil && !isNotFound(err) {
			return fmt.Errorf("load current status: %w", err)
		}

		entry, err = s.statuses.Insert(ctx, domain.StatusEntry{
			CaseNumber: input.CaseNumber,
			StatusCode: code,
			ActorID:    actor.PersonID,
			ActorName:  actor.Name,
			Reason:     strings.TrimSpace(input.Reason),
			RecordedAt: time.Now().UTC(),
		})
		if err != nil {
			return fmt.Errorf("insert status entry: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	var oldCode *string
	if prior != nil {
		oldCode = domain.StringPtr(prior.StatusCode)
	}
	s.logAudit(ctx, domain.EntityTypeCase, fmt.Sprintf("%d", input.CaseNumber), map[string]domain.FieldChange{
		"status": {Old: oldCode, New: domain.StringPtr(code)},
	}, actor)

	s.log.InfoContext(ctx, "case status changed",
		slog.Int64("case_number", input.CaseNumber),
		slog.String("status", code),
		slog.String("actor_id", actor.PersonID.String()),
	)

	return &entry, nil
}
