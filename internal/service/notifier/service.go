// Package notifier flags cases whose status has not moved for too long
// and notifies the people actively assigned to them. A case is flagged
// at most once per (status, threshold) bucket, so nightly scans do not
// spam the same assignees.
package notifier

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/mgvaldez/clinicajuridica-backend/internal/domain"
)

// archived cases are closed work: they never count as stalled.
const excludedStatus = "ARCHIVADO"

type stalledScanner interface {
	Stalled(ctx context.Context, cutoff time.Time, excludeStatus string, thresholdDays int, limit int) ([]domain.StatusEntry, error)
}

type flagStore interface {
	TryFlagStalled(ctx context.Context, caseNumber int64, statusCode string, thresholdDays int) (bool, error)
	Acknowledge(ctx context.Context, caseNumber int64, statusCode string, thresholdDays int) error
}

type notificationSink interface {
	Notify(ctx context.Context, personID uuid.UUID, message string, relatedCase int64) error
}

type assigneeLister interface {
	ActiveAssignees(ctx context.Context, caseNumber int64, term string, kind domain.AssigneeKind) ([]uuid.UUID, error)
}

// Service scans for stalled cases and fans out notifications.
type Service struct {
	statuses      stalledScanner
	flags         flagStore
	notifications notificationSink
	assignments   assigneeLister
	thresholdDays int
	batchSize     int
	log           *slog.Logger
}

// NewService creates a new stalled-case notifier.
func NewService(
	log *slog.Logger,
	statuses stalledScanner,
	flags flagStore,
	notifications notificationSink,
	assignments assigneeLister,
	thresholdDays int,
	batchSize int,
) *Service {
	return &Service{
		statuses:      statuses,
		flags:         flags,
		notifications: notifications,
		assignments:   assignments,
		thresholdDays: thresholdDays,
		batchSize:     batchSize,
		log:           log.With("service", "notifier"),
	}
}
