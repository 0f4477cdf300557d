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

// OpenCaseResult is the outcome of opening a case.
type OpenCaseResult struct {
	Case          domain.Case
	OpeningStatus domain.StatusEntry
}

// OpenCase registers a new case and records its opening status entry.
// The case row and the first history entry commit together; a case
// without history never becomes visible.
func (s *Service) OpenCase(ctx context.Context, input OpenCaseInput) (*OpenCaseResult, error) {
	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	if err := s.authz.Authorize(ctx, actor, domain.ActionCreate, domain.ResourceRef{
		Kind:       domain.ResourceCase,
		CaseNumber: input.Number,
	}); err != nil {
		return nil, err
	}

	exists, err := s.cases.Exists(ctx, input.Number)
	if err != nil {
		return nil, fmt.Errorf("check case exists: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("case %d: %w", input.Number, domain.ErrAlreadyExists)
	}

	now := time.Now().UTC()
	var result OpenCaseResult

	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		c, err := s.cases.Create(ctx, domain.Case{
			Number:        input.Number,
			ApplicantID:   input.ApplicantID,
			Materia:       strings.TrimSpace(input.Materia),
			Category:      strings.TrimSpace(input.Category),
			Subcategory:   strings.TrimSpace(input.Subcategory),
			LegalScope:    strings.TrimSpace(input.LegalScope),
			Nucleo:        strings.TrimSpace(input.Nucleo),
			ProcedureType: strings.TrimSpace(input.ProcedureType),
			CreatedAt:     now,
		})
		if err != nil {
			return fmt.Errorf("create case: %w", err)
		}

		entry, err := s.statuses.Insert(ctx, domain.StatusEntry{
			CaseNumber: c.Number,
			StatusCode: domain.DefaultOpeningStatus,
			ActorID:    actor.PersonID,
			ActorName:  actor.Name,
			Reason:     "case opened",
			RecordedAt: now,
		})
		if err != nil {
			return fmt.Errorf("insert opening status: %w", err)
		}

		result = OpenCaseResult{Case: c, OpeningStatus: entry}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logAudit(ctx, domain.EntityTypeCase, fmt.Sprintf("%d", result.Case.Number), map[string]domain.FieldChange{
		"status": {Old: nil, New: domain.StringPtr(domain.DefaultOpeningStatus)},
	}, actor)

	s.log.InfoContext(ctx, "case opened",
		slog.Int64("case_number", result.Case.Number),
		slog.String("actor_id", actor.PersonID.String()),
	)

	return &result, nil
}
