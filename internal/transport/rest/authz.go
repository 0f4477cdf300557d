package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/mgvaldez/clinicajuridica-backend/internal/domain"
	"github.com/mgvaldez/clinicajuridica-backend/pkg/ctxutil"
)

// authzService defines the minimal interface needed by AuthzHandler.
type authzService interface {
	Evaluate(ctx context.Context, actor domain.Actor, action domain.Action, res domain.ResourceRef) (domain.Decision, error)
}

// AuthzHandler lets clients pre-flight an authorization decision, e.g.
// to hide UI actions the actor would be denied anyway.
type AuthzHandler struct {
	svc authzService
	log *slog.Logger
}

// NewAuthzHandler creates an AuthzHandler.
func NewAuthzHandler(svc authzService, logger *slog.Logger) *AuthzHandler {
	return &AuthzHandler{svc: svc, log: logger.With("handler", "authz")}
}

type evaluateRequest struct {
	Action       string `json:"action"`
	ResourceKind string `json:"resource_kind"`
	CaseNumber   int64  `json:"case_number,omitempty"`
	PersonID     string `json:"person_id,omitempty"`
}

type evaluateResponse struct {
	Allowed bool   `json:"allowed"`
	Reason  string `json:"reason,omitempty"`
}

// Evaluate handles POST /api/v1/authz/evaluate.
func (h *AuthzHandler) Evaluate(w http.ResponseWriter, r *http.Request) {
	actor, ok := ctxutil.ActorFromCtx(r.Context())
	if !ok {
		writeError(h.log, w, r, domain.ErrUnauthorized)
		return
	}

	var req evaluateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(h.log, w, r, err)
		return
	}

	ref := domain.ResourceRef{
		Kind:       domain.ResourceKind(req.ResourceKind),
		CaseNumber: req.CaseNumber,
	}
	if req.PersonID != "" {
		personID, err := uuid.Parse(req.PersonID)
		if err != nil {
			writeError(h.log, w, r, domain.NewValidationError("person_id", "must be a UUID"))
			return
		}
		ref.PersonID = personID
	}

	dec, err := h.svc.Evaluate(r.Context(), actor, domain.Action(req.Action), ref)
	if err != nil {
		writeError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, evaluateResponse{Allowed: dec.Allowed, Reason: dec.Reason})
}
