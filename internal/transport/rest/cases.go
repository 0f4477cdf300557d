package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/mgvaldez/clinicajuridica-backend/internal/domain"
	"github.com/mgvaldez/clinicajuridica-backend/internal/service/lifecycle"
)

// lifecycleService defines the minimal interface needed by CaseHandler.
type lifecycleService interface {
	OpenCase(ctx context.Context, input lifecycle.OpenCaseInput) (*lifecycle.OpenCaseResult, error)
	GetCase(ctx context.Context, number int64) (*domain.Case, error)
	ChangeStatus(ctx context.Context, input lifecycle.ChangeStatusInput) (*domain.StatusEntry, error)
	CurrentStatus(ctx context.Context, caseNumber int64) (*domain.StatusEntry, error)
	StatusHistory(ctx context.Context, caseNumber int64) ([]domain.StatusEntry, error)
	AssignPerson(ctx context.Context, input lifecycle.AssignPersonInput) (*domain.Assignment, error)
	DeactivateAssignment(ctx context.Context, input lifecycle.DeactivateAssignmentInput) error
	ActiveAssignees(ctx context.Context, caseNumber int64, term string, kind domain.AssigneeKind) ([]uuid.UUID, error)
	RepairDuplicateAssignments(ctx context.Context, caseNumber int64, term string) (*lifecycle.RepairResult, error)
	ListStatuses(ctx context.Context) ([]domain.Status, error)
}

// CaseHandler serves case lifecycle REST endpoints.
type CaseHandler struct {
	svc lifecycleService
	log *slog.Logger
}

// NewCaseHandler creates a CaseHandler.
func NewCaseHandler(svc lifecycleService, logger *slog.Logger) *CaseHandler {
	return &CaseHandler{svc: svc, log: logger.With("handler", "cases")}
}

type openCaseRequest struct {
	Number        int64  `json:"case_number"`
	ApplicantID   string `json:"applicant_id"`
	Materia       string `json:"materia"`
	Category      string `json:"category"`
	Subcategory   string `json:"subcategory"`
	LegalScope    string `json:"legal_scope"`
	Nucleo        string `json:"nucleo"`
	ProcedureType string `json:"procedure_type"`
}

type caseResponse struct {
	Number        int64     `json:"case_number"`
	ApplicantID   string    `json:"applicant_id"`
	Materia       string    `json:"materia"`
	Category      string    `json:"category"`
	Subcategory   string    `json:"subcategory,omitempty"`
	LegalScope    string    `json:"legal_scope,omitempty"`
	Nucleo        string    `json:"nucleo,omitempty"`
	ProcedureType string    `json:"procedure_type,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

type statusEntryResponse struct {
	ID         int64     `json:"id"`
	CaseNumber int64     `json:"case_number"`
	StatusCode string    `json:"status_code"`
	ActorID    string    `json:"actor_id"`
	ActorName  string    `json:"actor_name"`
	Reason     string    `json:"reason"`
	RecordedAt time.Time `json:"recorded_at"`
}

type openCaseResponse struct {
	Case          caseResponse        `json:"case"`
	OpeningStatus statusEntryResponse `json:"opening_status"`
}

func toCaseResponse(c domain.Case) caseResponse {
	return caseResponse{
		Number:        c.Number,
		ApplicantID:   c.ApplicantID.String(),
		Materia:       c.Materia,
		Category:      c.Category,
		Subcategory:   c.Subcategory,
		LegalScope:    c.LegalScope,
		Nucleo:        c.Nucleo,
		ProcedureType: c.ProcedureType,
		CreatedAt:     c.CreatedAt,
	}
}

func toStatusEntryResponse(e domain.StatusEntry) statusEntryResponse {
	return statusEntryResponse{
		ID:         e.ID,
		CaseNumber: e.CaseNumber,
		StatusCode: e.StatusCode,
		ActorID:    e.ActorID.String(),
		ActorName:  e.ActorName,
		Reason:     e.Reason,
		RecordedAt: e.RecordedAt,
	}
}

// OpenCase handles POST /api/v1/cases.
func (h *CaseHandler) OpenCase(w http.ResponseWriter, r *http.Request) {
	var req openCaseRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(h.log, w, r, err)
		return
	}

	applicantID, err := uuid.Parse(req.ApplicantID)
	if err != nil {
		writeError(h.log, w, r, domain.NewValidationError("applicant_id", "must be a UUID"))
		return
	}

	result, err := h.svc.OpenCase(r.Context(), lifecycle.OpenCaseInput{
		Number:        req.Number,
		ApplicantID:   applicantID,
		Materia:       req.Materia,
		Category:      req.Category,
		Subcategory:   req.Subcategory,
		LegalScope:    req.LegalScope,
		Nucleo:        req.Nucleo,
		ProcedureType: req.ProcedureType,
	})
	if err != nil {
		writeError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, openCaseResponse{
		Case:          toCaseResponse(result.Case),
		OpeningStatus: toStatusEntryResponse(result.OpeningStatus),
	})
}

// GetCase handles GET /api/v1/cases/{number}.
func (h *CaseHandler) GetCase(w http.ResponseWriter, r *http.Request) {
	number, err := caseNumberFromPath(r)
	if err != nil {
		writeError(h.log, w, r, err)
		return
	}

	c, err := h.svc.GetCase(r.Context(), number)
	if err != nil {
		writeError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toCaseResponse(*c))
}

type changeStatusRequest struct {
	StatusCode string `json:"status_code"`
	Reason     string `json:"reason"`
}

// ChangeStatus handles POST /api/v1/cases/{number}/status.
func (h *CaseHandler) ChangeStatus(w http.ResponseWriter, r *http.Request) {
	number, err := caseNumberFromPath(r)
	if err != nil {
		writeError(h.log, w, r, err)
		return
	}

	var req changeStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(h.log, w, r, err)
		return
	}

	entry, err := h.svc.ChangeStatus(r.Context(), lifecycle.ChangeStatusInput{
		CaseNumber: number,
		StatusCode: req.StatusCode,
		Reason:     req.Reason,
	})
	if err != nil {
		writeError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toStatusEntryResponse(*entry))
}

// CurrentStatus handles GET /api/v1/cases/{number}/status.
func (h *CaseHandler) CurrentStatus(w http.ResponseWriter, r *http.Request) {
	number, err := caseNumberFromPath(r)
	if err != nil {
		writeError(h.log, w, r, err)
		return
	}

	entry, err := h.svc.CurrentStatus(r.Context(), number)
	if err != nil {
		writeError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toStatusEntryResponse(*entry))
}

// StatusHistory handles GET /api/v1/cases/{number}/history.
func (h *CaseHandler) StatusHistory(w http.ResponseWriter, r *http.Request) {
	number, err := caseNumberFromPath(r)
	if err != nil {
		writeError(h.log, w, r, err)
		return
	}

	entries, err := h.svc.StatusHistory(r.Context(), number)
	if err != nil {
		writeError(h.log, w, r, err)
		return
	}

	out := make([]statusEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, toStatusEntryResponse(e))
	}
	writeJSON(w, http.StatusOK, out)
}

type statusResponse struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// ListStatuses handles GET /api/v1/statuses.
func (h *CaseHandler) ListStatuses(w http.ResponseWriter, r *http.Request) {
	statuses, err := h.svc.ListStatuses(r.Context())
	if err != nil {
		writeError(h.log, w, r, err)
		return
	}

	out := make([]statusResponse, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, statusResponse{Code: s.Code, Name: s.Name})
	}
	writeJSON(w, http.StatusOK, out)
}

func caseNumberFromPath(r *http.Request) (int64, error) {
	raw := r.PathValue("number")
	number, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || number <= 0 {
		return 0, domain.NewValidationError("case_number", "must be a positive integer")
	}
	return number, nil
}
