package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/mgvaldez/clinicajuridica-backend/internal/domain"
	"github.com/mgvaldez/clinicajuridica-backend/internal/service/notifier"
	"github.com/mgvaldez/clinicajuridica-backend/pkg/ctxutil"
)

type stalledScanner interface {
	ScanStalledCases(ctx context.Context) (*notifier.ScanResult, error)
	AcknowledgeStalledFlag(ctx context.Context, caseNumber int64, statusCode string) error
}

type auditReader interface {
	History(ctx context.Context, entityType domain.EntityType, entityID string, limit int) ([]domain.AuditRecord, error)
}

// MaintenanceHandler serves administrative endpoints: the stalled-case
// scan trigger and the audit trail reader.
type MaintenanceHandler struct {
	scanner stalledScanner
	audit   auditReader
	log     *slog.Logger
}

// NewMaintenanceHandler creates a MaintenanceHandler.
func NewMaintenanceHandler(scanner stalledScanner, audit auditReader, logger *slog.Logger) *MaintenanceHandler {
	return &MaintenanceHandler{scanner: scanner, audit: audit, log: logger.With("handler", "maintenance")}
}

type scanResponse struct {
	Scanned      int     `json:"scanned"`
	FlaggedCases []int64 `json:"flagged_cases"`
	Notified     int     `json:"notified"`
}

// StalledScan handles POST /api/v1/maintenance/stalled-scan. Students
// cannot trigger it.
func (h *MaintenanceHandler) StalledScan(w http.ResponseWriter, r *http.Request) {
	actor, ok := ctxutil.ActorFromCtx(r.Context())
	if !ok {
		writeError(h.log, w, r, domain.ErrUnauthorized)
		return
	}
	if actor.Role.IsStudent() {
		writeError(h.log, w, r, domain.NewPermissionError("students may not trigger maintenance scans"))
		return
	}

	result, err := h.scanner.ScanStalledCases(r.Context())
	if err != nil {
		writeError(h.log, w, r, err)
		return
	}

	flagged := result.FlaggedCases
	if flagged == nil {
		flagged = []int64{}
	}
	writeJSON(w, http.StatusOK, scanResponse{
		Scanned:      result.Scanned,
		FlaggedCases: flagged,
		Notified:     result.Notified,
	})
}

// AcknowledgeStalledFlag handles
// DELETE /api/v1/maintenance/stalled-flags/{number}/{status}. Clearing
// the flag lets the next scan notify about the case again.
func (h *MaintenanceHandler) AcknowledgeStalledFlag(w http.ResponseWriter, r *http.Request) {
	actor, ok := ctxutil.ActorFromCtx(r.Context())
	if !ok {
		writeError(h.log, w, r, domain.ErrUnauthorized)
		return
	}
	if actor.Role.IsStudent() {
		writeError(h.log, w, r, domain.NewPermissionError("students may not acknowledge stalled flags"))
		return
	}

	number, err := caseNumberFromPath(r)
	if err != nil {
		writeError(h.log, w, r, err)
		return
	}
	statusCode := r.PathValue("status")

	if err := h.scanner.AcknowledgeStalledFlag(r.Context(), number, statusCode); err != nil {
		writeError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type auditRecordResponse struct {
	ID              string  `json:"id"`
	EntityType      string  `json:"entity_type"`
	EntityID        string  `json:"entity_id"`
	Field           string  `json:"field"`
	OldValue        *string `json:"old_value"`
	NewValue        *string `json:"new_value"`
	ResponsibleID   string  `json:"responsible_id"`
	ResponsibleName string  `json:"responsible_name"`
	RecordedAt      string  `json:"recorded_at"`
}

// AuditTrail handles GET /api/v1/audit/{entity_type}/{entity_id}.
func (h *MaintenanceHandler) AuditTrail(w http.ResponseWriter, r *http.Request) {
	actor, ok := ctxutil.ActorFromCtx(r.Context())
	if !ok {
		writeError(h.log, w, r, domain.ErrUnauthorized)
		return
	}
	if actor.Role.IsStudent() {
		writeError(h.log, w, r, domain.NewPermissionError("students may not read the audit trail"))
		return
	}

	entityType := domain.EntityType(r.PathValue("entity_type"))
	entityID := r.PathValue("entity_id")

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			writeError(h.log, w, r, domain.NewValidationError("limit", "must be a positive integer"))
			return
		}
		limit = n
	}

	recs, err := h.audit.History(r.Context(), entityType, entityID, limit)
	if err != nil {
		writeError(h.log, w, r, err)
		return
	}

	out := make([]auditRecordResponse, 0, len(recs))
	for _, rec := range recs {
		out = append(out, auditRecordResponse{
			ID:              rec.ID.String(),
			EntityType:      rec.EntityType.String(),
			EntityID:        rec.EntityID,
			Field:           rec.Field,
			OldValue:        rec.OldValue,
			NewValue:        rec.NewValue,
			ResponsibleID:   rec.ResponsibleID.String(),
			ResponsibleName: rec.ResponsibleName,
			RecordedAt:      rec.RecordedAt.Format(time.RFC3339),
		})
	}
	writeJSON(w, http.StatusOK, out)
}
