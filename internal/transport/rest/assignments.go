package rest

import (
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/mgvaldez/clinicajuridica-backend/internal/domain"
	"github.com/mgvaldez/clinicajuridica-backend/internal/service/lifecycle"
)

type assignPersonRequest struct {
	Term     string `json:"term"`
	PersonID string `json:"person_id"`
	Kind     string `json:"kind"`
}

type assignmentResponse struct {
	ID            int64      `json:"id"`
	CaseNumber    int64      `json:"case_number"`
	Term          string     `json:"term"`
	PersonID      string     `json:"person_id"`
	Kind          string     `json:"kind"`
	State         string     `json:"state"`
	AssignedAt    time.Time  `json:"assigned_at"`
	DeactivatedAt *time.Time `json:"deactivated_at,omitempty"`
}

func toAssignmentResponse(a domain.Assignment) assignmentResponse {
	return assignmentResponse{
		ID:            a.ID,
		CaseNumber:    a.CaseNumber,
		Term:          a.Term,
		PersonID:      a.PersonID.String(),
		Kind:          a.Kind.String(),
		State:         a.State.String(),
		AssignedAt:    a.AssignedAt,
		DeactivatedAt: a.DeactivatedAt,
	}
}

// AssignPerson handles POST /api/v1/cases/{number}/assignments.
func (h *CaseHandler) AssignPerson(w http.ResponseWriter, r *http.Request) {
	number, err := caseNumberFromPath(r)
	if err != nil {
		writeError(h.log, w, r, err)
		return
	}

	var req assignPersonRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(h.log, w, r, err)
		return
	}

	personID, err := uuid.Parse(req.PersonID)
	if err != nil {
		writeError(h.log, w, r, domain.NewValidationError("person_id", "must be a UUID"))
		return
	}

	a, err := h.svc.AssignPerson(r.Context(), lifecycle.AssignPersonInput{
		CaseNumber: number,
		Term:       req.Term,
		PersonID:   personID,
		Kind:       domain.AssigneeKind(req.Kind),
	})
	if err != nil {
		writeError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toAssignmentResponse(*a))
}

type assigneesResponse struct {
	CaseNumber int64    `json:"case_number"`
	PersonIDs  []string `json:"person_ids"`
}

// ActiveAssignees handles GET /api/v1/cases/{number}/assignments.
// Optional query params term and kind narrow the answer.
func (h *CaseHandler) ActiveAssignees(w http.ResponseWriter, r *http.Request) {
	number, err := caseNumberFromPath(r)
	if err != nil {
		writeError(h.log, w, r, err)
		return
	}

	term := r.URL.Query().Get("term")
	kind := domain.AssigneeKind(r.URL.Query().Get("kind"))

	ids, err := h.svc.ActiveAssignees(r.Context(), number, term, kind)
	if err != nil {
		writeError(h.log, w, r, err)
		return
	}

	out := assigneesResponse{CaseNumber: number, PersonIDs: make([]string, 0, len(ids))}
	for _, id := range ids {
		out.PersonIDs = append(out.PersonIDs, id.String())
	}
	writeJSON(w, http.StatusOK, out)
}

// DeactivateAssignment handles DELETE /api/v1/assignments/{id}.
func (h *CaseHandler) DeactivateAssignment(w http.ResponseWriter, r *http.Request) {
	raw := r.PathValue("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		writeError(h.log, w, r, domain.NewValidationError("assignment_id", "must be a positive integer"))
		return
	}

	if err := h.svc.DeactivateAssignment(r.Context(), lifecycle.DeactivateAssignmentInput{AssignmentID: id}); err != nil {
		writeError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type repairRequest struct {
	Term string `json:"term"`
}

type repairResponse struct {
	CaseNumber  int64  `json:"case_number"`
	Term        string `json:"term"`
	Deactivated int64  `json:"deactivated"`
}

// RepairAssignments handles POST /api/v1/cases/{number}/assignments/repair.
func (h *CaseHandler) RepairAssignments(w http.ResponseWriter, r *http.Request) {
	number, err := caseNumberFromPath(r)
	if err != nil {
		writeError(h.log, w, r, err)
		return
	}

	var req repairRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(h.log, w, r, err)
		return
	}

	result, err := h.svc.RepairDuplicateAssignments(r.Context(), number, req.Term)
	if err != nil {
		writeError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, repairResponse{
		CaseNumber:  result.CaseNumber,
		Term:        result.Term,
		Deactivated: result.Deactivated,
	})
}
