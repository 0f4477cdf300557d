package authz

import (
	"context"
	"fmt"

	"github.com/mgvaldez/clinicajuridica-backend/internal/domain"
)

// Evaluate decides whether the actor may perform the action on the
// referenced resource. A denial is a normal result, not an error; the
// error return covers lookup failures only.
func (s *Service) Evaluate(ctx context.Context, actor domain.Actor, action domain.Action, res domain.ResourceRef) (domain.Decision, error) {
	if !action.IsValid() {
		return domain.Decision{}, domain.NewValidationError("action", "unknown action")
	}
	if !res.Kind.IsValid() {
		return domain.Decision{}, domain.NewValidationError("resource_kind", "unknown resource kind")
	}

	if !actor.Role.IsStudent() {
		return domain.Allow(), nil
	}

	switch {
	case res.Kind == domain.ResourceCase:
		return s.evaluateCase(ctx, actor, action, res)
	case res.Kind.IsCaseScoped():
		return s.evaluateCaseScoped(ctx, actor, action, res)
	case res.Kind == domain.ResourceApplicant:
		if action == domain.ActionDelete {
			return domain.Deny("students may not delete applicants"), nil
		}
		return domain.Allow(), nil
	case res.Kind == domain.ResourceUser:
		return evaluateUser(actor, action, res), nil
	case res.Kind == domain.ResourceAssignment:
		if action == domain.ActionView {
			return domain.Allow(), nil
		}
		return domain.Deny("assignments are managed by professors and coordinators"), nil
	}

	return domain.Deny(fmt.Sprintf("no rule for resource %s", res.Kind)), nil
}

// Authorize runs Evaluate and converts a denial into a PermissionError
// carrying the decision reason. Convenience for services that do not
// care about the decision itself.
func (s *Service) Authorize(ctx context.Context, actor domain.Actor, action domain.Action, res domain.ResourceRef) error {
	dec, err := s.Evaluate(ctx, actor, action, res)
	if err != nil {
		return err
	}
	if !dec.Allowed {
		return domain.NewPermissionError(dec.Reason)
	}
	return nil
}

// Students may open and browse cases freely; changing one requires an
// active assignment, and deleting is never theirs to do.
func (s *Service) evaluateCase(ctx context.Context, actor domain.Actor, action domain.Action, res domain.ResourceRef) (domain.Decision, error) {
	switch action {
	case domain.ActionCreate, domain.ActionView:
		return domain.Allow(), nil
	case domain.ActionDelete:
		return domain.Deny("students may not delete cases"), nil
	}
	return s.requireParticipation(ctx, actor, res.CaseNumber)
}

// Resources that live inside a case (appointments, supports, actions)
// require participation for every action except delete, which students
// never get.
func (s *Service) evaluateCaseScoped(ctx context.Context, actor domain.Actor, action domain.Action, res domain.ResourceRef) (domain.Decision, error) {
	if action == domain.ActionDelete {
		return domain.Deny(fmt.Sprintf("students may not delete %s records", res.Kind)), nil
	}
	return s.requireParticipation(ctx, actor, res.CaseNumber)
}

func evaluateUser(actor domain.Actor, action domain.Action, res domain.ResourceRef) domain.Decision {
	if action == domain.ActionDelete {
		return domain.Deny("students may not delete users")
	}
	if action == domain.ActionCreate {
		return domain.Deny("students may not create users")
	}
	if res.PersonID != actor.PersonID {
		return domain.Deny("students may only access their own user record")
	}
	return domain.Allow()
}

func (s *Service) requireParticipation(ctx context.Context, actor domain.Actor, caseNumber int64) (domain.Decision, error) {
	if caseNumber <= 0 {
		return domain.Decision{}, domain.NewValidationError("case_number", "required")
	}

	ok, err := s.assignments.Participates(ctx, caseNumber, actor.PersonID)
	if err != nil {
		return domain.Decision{}, fmt.Errorf("check case participation: %w", err)
	}
	if !ok {
		return domain.Deny(fmt.Sprintf("student is not assigned to case %d", caseNumber)), nil
	}
	return domain.Allow(), nil
}
