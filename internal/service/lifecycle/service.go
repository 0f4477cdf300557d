// Package lifecycle orchestrates case state: opening cases, recording
// status changes, and managing per-term assignments. It is the only
// writer of the status history and assignment stores; authorization
// and audit are consulted on every mutation.
package lifecycle

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/mgvaldez/clinicajuridica-backend/internal/domain"
)

type statusRepo interface {
	Insert(ctx context.Context, entry domain.StatusEntry) (domain.StatusEntry, error)
	Current(ctx context.Context, caseNumber int64) (*domain.StatusEntry, error)
	History(ctx context.Context, caseNumber int64) ([]domain.StatusEntry, error)
}

type assignmentRepo interface {
	Assign(ctx context.Context, caseNumber int64, term string, personID uuid.UUID, kind domain.AssigneeKind, now time.Time) (domain.Assignment, []int64, error)
	Deactivate(ctx context.Context, id int64, now time.Time) error
	GetByID(ctx context.Context, id int64) (*domain.Assignment, error)
	RepairDuplicates(ctx context.Context, caseNumber int64, term string, now time.Time) (int64, error)
	RepairDuplicatesByKind(ctx context.Context, caseNumber int64, term string, kind domain.AssigneeKind, now time.Time) (int64, error)
	DuplicateCaseTerms(ctx context.Context) ([]domain.CaseTerm, error)
	ActiveAssignees(ctx context.Context, caseNumber int64, term string, kind domain.AssigneeKind) ([]uuid.UUID, error)
}

type caseRepo interface {
	Create(ctx context.Context, c domain.Case) (domain.Case, error)
	GetByNumber(ctx context.Context, number int64) (*domain.Case, error)
	Exists(ctx context.Context, number int64) (bool, error)
}

type statusCatalog interface {
	List(ctx context.Context) ([]domain.Status, error)
	Exists(ctx context.Context, code string) (bool, error)
}

type authorizer interface {
	Authorize(ctx context.Context, actor domain.Actor, action domain.Action, res domain.ResourceRef) error
}

type auditLogger interface {
	LogChange(ctx context.Context, entityType domain.EntityType, entityID string, fields map[string]domain.FieldChange, responsible domain.Actor) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides case lifecycle operations.
type Service struct {
	statuses    statusRepo
	assignments assignmentRepo
	cases       caseRepo
	catalog     statusCatalog
	authz       authorizer
	audit       auditLogger
	tx          txManager
	log         *slog.Logger
}

// NewService creates a new lifecycle service.
func NewService(
	log *slog.Logger,
	statuses statusRepo,
	assignments assignmentRepo,
	cases caseRepo,
	catalog statusCatalog,
	authz authorizer,
	audit auditLogger,
	tx txManager,
) *Service {
	return &Service{
		statuses:    statuses,
		assignments: assignments,
		cases:       cases,
		catalog:     catalog,
		authz:       authz,
		audit:       audit,
		tx:          tx,
		log:         log.With("service", "lifecycle"),
	}
}

func isNotFound(err error) bool { return errors.Is(err, domain.ErrNotFound) }

// logAudit writes the audit trail for a mutation that already
// committed. An audit failure never rolls the mutation back; it is
// logged and dropped.
func (s *Service) logAudit(ctx context.Context, entityType domain.EntityType, entityID string, fields map[string]domain.FieldChange, responsible domain.Actor) {
	if err := s.audit.LogChange(ctx, entityType, entityID, fields, responsible); err != nil {
		s.log.WarnContext(ctx, "audit write failed",
			slog.String("entity_type", entityType.String()),
			slog.String("entity_id", entityID),
			slog.String("error", err.Error()),
		)
	}
}
