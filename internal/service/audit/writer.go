// Package audit writes per-field change records for mutations anywhere
// in the system. The writer never blocks the mutation that triggered
// it: callers log a failed write and move on.
package audit

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/mgvaldez/clinicajuridica-backend/internal/domain"
)

type auditRepo interface {
	Insert(ctx context.Context, rec domain.AuditRecord) error
	ListByEntity(ctx context.Context, entityType domain.EntityType, entityID string, limit int) ([]domain.AuditRecord, error)
}

// Writer records field-level changes in the audit log.
type Writer struct {
	repo auditRepo
	log  *slog.Logger
}

// NewWriter creates a new audit writer.
func NewWriter(
	log *slog.Logger,
	repo auditRepo,
) *Writer {
	return &Writer{
		repo: repo,
		log:  log.With("service", "audit"),
	}
}

// LogChange writes one record per changed field. Fields whose old and
// new values are equal are skipped entirely. Records are written in
// field-name order so a partial failure is reproducible.
func (w *Writer) LogChange(
	ctx context.Context,
	entityType domain.EntityType,
	entityID string,
	fields map[string]domain.FieldChange,
	responsible domain.Actor,
) error {
	if !entityType.IsValid() {
		return domain.NewValidationError("entity_type", "unknown entity type")
	}
	if entityID == "" {
		return domain.NewValidationError("entity_id", "required")
	}

	names := make([]string, 0, len(fields))
	for name, change := range fields {
		if change.Changed() {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	now := time.Now().UTC()
	for _, name := range names {
		change := fields[name]
		rec := domain.AuditRecord{
			ID:              uuid.New(),
			EntityType:      entityType,
			EntityID:        entityID,
			Field:           name,
			OldValue:        change.Old,
			NewValue:        change.New,
			ResponsibleID:   responsible.PersonID,
			ResponsibleName: responsible.Name,
			RecordedAt:      now,
		}
		if err := w.repo.Insert(ctx, rec); err != nil {
			return fmt.Errorf("insert audit record for %s.%s: %w", entityType, name, err)
		}
	}

	return nil
}

// History returns the most recent audit records for one entity, newest
// first.
func (w *Writer) History(ctx context.Context, entityType domain.EntityType, entityID string, limit int) ([]domain.AuditRecord, error) {
	if !entityType.IsValid() {
		return nil, domain.NewValidationError("entity_type", "unknown entity type")
	}
	if entityID == "" {
		return nil, domain.NewValidationError("entity_id", "required")
	}
	if limit <= 0 {
		limit = 100
	}

	recs, err := w.repo.ListByEntity(ctx, entityType, entityID, limit)
	if err != nil {
		return nil, fmt.Errorf("list audit records: %w", err)
	}
	return recs, nil
}
