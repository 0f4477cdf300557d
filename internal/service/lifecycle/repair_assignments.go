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

// RepairResult reports the outcome of one repair. Kind is set by the
// sweep, which repairs per (case, term, kind); the explicit per-case
// repair leaves it empty.
type RepairResult struct {
	CaseNumber  int64
	Term        string
	Kind        domain.AssigneeKind
	Deactivated int64
}

// RepairDuplicateAssignments collapses every ACTIVE assignment for one
// (case, term) down to the single highest-id row, regardless of kind.
// This deliberately blunt form exists for explicit administrative
// requests on a known-broken case; the sweep uses the kind-aware
// repair instead. Idempotent: running it again deactivates nothing.
func (s *Service) RepairDuplicateAssignments(ctx context.Context, caseNumber int64, term string) (*RepairResult, error) {
	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if caseNumber <= 0 {
		return nil, domain.NewValidationError("case_number", "must be positive")
	}
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, domain.NewValidationError("term", "required")
	}

	if err := s.authz.Authorize(ctx, actor, domain.ActionEdit, domain.ResourceRef{
		Kind:       domain.ResourceAssignment,
		CaseNumber: caseNumber,
	}); err != nil {
		return nil, err
	}

	n, err := s.assignments.RepairDuplicates(ctx, caseNumber, term, time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("repair duplicates: %w", err)
	}

	if n > 0 {
		s.logAudit(ctx, domain.EntityTypeAssignment, fmt.Sprintf("case-%d-%s", caseNumber, term), map[string]domain.FieldChange{
			"duplicates_deactivated": {Old: nil, New: domain.StringPtr(fmt.Sprintf("%d", n))},
		}, actor)
	}

	s.log.InfoContext(ctx, "duplicate assignments repaired",
		slog.Int64("case_number", caseNumber),
		slog.String("term", term),
		slog.Int64("deactivated", n),
	)

	return &RepairResult{CaseNumber: caseNumber, Term: term, Deactivated: n}, nil
}

// RepairAllDuplicateAssignments sweeps the whole assignment store for
// (case, term, kind) groups with more than one ACTIVE row and repairs
// each within its kind, keeping the highest-id row. A healthy case
// with one active student and one active professor is not a duplicate
// and is never touched. Used by the administrative repair command
// after the unique index was reinstated.
func (s *Service) RepairAllDuplicateAssignments(ctx context.Context) ([]RepairResult, error) {
	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := s.authz.Authorize(ctx, actor, domain.ActionEdit, domain.ResourceRef{
		Kind: domain.ResourceAssignment,
	}); err != nil {
		return nil, err
	}

	groups, err := s.assignments.DuplicateCaseTerms(ctx)
	if err != nil {
		return nil, fmt.Errorf("list duplicate case terms: %w", err)
	}

	results := make([]RepairResult, 0, len(groups))
	for _, g := range groups {
		n, err := s.assignments.RepairDuplicatesByKind(ctx, g.CaseNumber, g.Term, g.Kind, time.Now().UTC())
		if err != nil {
			return results, fmt.Errorf("repair case %d term %s kind %s: %w", g.CaseNumber, g.Term, g.Kind, err)
		}
		results = append(results, RepairResult{CaseNumber: g.CaseNumber, Term: g.Term, Kind: g.Kind, Deactivated: n})
	}

	s.log.InfoContext(ctx, "duplicate assignment sweep finished",
		slog.Int("groups_repaired", len(results)),
	)

	return results, nil
}
