package lifecycle

import (
	"strings"

	"github.com/google/uuid"

	"github.com/mgvaldez/clinicajuridica-backend/internal/domain"
)

// OpenCaseInput holds the parameters for opening a new case.
type OpenCaseInput struct {
	Number        int64
	ApplicantID   uuid.UUID
	Materia       string
	Category      string
	Subcategory   string
	LegalScope    string
	Nucleo        string
	ProcedureType string
}

// Validate checks all fields and collects all errors.
func (i OpenCaseInput) Validate() error {
	var errs []domain.FieldError

	if i.Number <= 0 {
		errs = append(errs, domain.FieldError{Field: "case_number", Message: "must be positive"})
	}
	if i.ApplicantID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "applicant_id", Message: "required"})
	}
	if strings.TrimSpace(i.Materia) == "" {
		errs = append(errs, domain.FieldError{Field: "materia", Message: "required"})
	}
	if strings.TrimSpace(i.Category) == "" {
		errs = append(errs, domain.FieldError{Field: "category", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ChangeStatusInput holds the parameters for recording a status change.
type ChangeStatusInput struct {
	CaseNumber int64
	StatusCode string
	Reason     string
}

// Validate checks all fields and collects all errors.
func (i ChangeStatusInput) Validate() error {
	var errs []domain.FieldError

	if i.CaseNumber <= 0 {
		errs = append(errs, domain.FieldError{Field: "case_number", Message: "must be positive"})
	}
	if strings.TrimSpace(i.StatusCode) == "" {
		errs = append(errs, domain.FieldError{Field: "status_code", Message: "required"})
	}
	if strings.TrimSpace(i.Reason) == "" {
		errs = append(errs, domain.FieldError{Field: "reason", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// AssignPersonInput holds the parameters for assigning a person to a
// case for one term.
type AssignPersonInput struct {
	CaseNumber int64
	Term       string
	PersonID   uuid.UUID
	Kind       domain.AssigneeKind
}

// Validate checks all fields and collects all errors.
func (i AssignPersonInput) Validate() error {
	var errs []domain.FieldError

	if i.CaseNumber <= 0 {
		errs = append(errs, domain.FieldError{Field: "case_number", Message: "must be positive"})
	}
	if strings.TrimSpace(i.Term) == "" {
		errs = append(errs, domain.FieldError{Field: "term", Message: "required"})
	}
	if i.PersonID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "person_id", Message: "required"})
	}
	if !i.Kind.IsValid() {
		errs = append(errs, domain.FieldError{Field: "kind", Message: "must be STUDENT or PROFESSOR"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// DeactivateAssignmentInput holds the parameters for deactivating an
// assignment.
type DeactivateAssignmentInput struct {
	AssignmentID int64
}

// Validate checks all fields and collects all errors.
func (i DeactivateAssignmentInput) Validate() error {
	if i.AssignmentID <= 0 {
		return domain.NewValidationError("assignment_id", "must be positive")
	}
	return nil
}
