package domain

// Role represents the authorization level of an actor.
type Role string

const (
	RoleStudent       Role = "STUDENT"
	RoleProfessor     Role = "PROFESSOR"
	RoleCoordinator   Role = "COORDINATOR"
	RoleAdministrator Role = "ADMINISTRATOR"
)

func (r Role) String() string { return string(r) }

func (r Role) IsValid() bool {
	switch r {
	case RoleStudent, RoleProfessor, RoleCoordinator, RoleAdministrator:
		return true
	}
	return false
}

// IsStudent reports whether the role is subject to participation checks.
// All other roles pass authorization unconditionally.
func (r Role) IsStudent() bool { return r == RoleStudent }

// AssigneeKind distinguishes the two kinds of case responsibility.
type AssigneeKind string

const (
	AssigneeStudent   AssigneeKind = "STUDENT"
	AssigneeProfessor AssigneeKind = "PROFESSOR"
)

func (k AssigneeKind) String() string { return string(k) }

func (k AssigneeKind) IsValid() bool {
	switch k {
	case AssigneeStudent, AssigneeProfessor:
		return true
	}
	return false
}

// AssignmentState is the lifecycle state of an assignment row.
// Assignments are deactivated, never deleted.
type AssignmentState string

const (
	AssignmentActive   AssignmentState = "ACTIVE"
	AssignmentInactive AssignmentState = "INACTIVE"
)

func (s AssignmentState) String() string { return string(s) }

func (s AssignmentState) IsValid() bool {
	switch s {
	case AssignmentActive, AssignmentInactive:
		return true
	}
	return false
}

// Action is the verb evaluated by the authorization evaluator.
type Action string

const (
	ActionCreate Action = "CREATE"
	ActionEdit   Action = "EDIT"
	ActionView   Action = "VIEW"
	ActionDelete Action = "DELETE"
)

func (a Action) String() string { return string(a) }

func (a Action) IsValid() bool {
	switch a {
	case ActionCreate, ActionEdit, ActionView, ActionDelete:
		return true
	}
	return false
}

// ResourceKind identifies the kind of resource an action targets.
type ResourceKind string

const (
	ResourceCase        ResourceKind = "CASE"
	ResourceAppointment ResourceKind = "APPOINTMENT"
	ResourceSupport     ResourceKind = "SUPPORT"
	ResourceAction      ResourceKind = "ACTION"
	ResourceApplicant   ResourceKind = "APPLICANT"
	ResourceUser        ResourceKind = "USER"
	ResourceAssignment  ResourceKind = "ASSIGNMENT"
)

func (k ResourceKind) String() string { return string(k) }

func (k ResourceKind) IsValid() bool {
	switch k {
	case ResourceCase, ResourceAppointment, ResourceSupport, ResourceAction,
		ResourceApplicant, ResourceUser, ResourceAssignment:
		return true
	}
	return false
}

// IsCaseScoped reports whether the resource lives inside a case and is
// therefore subject to participation checks for students.
func (k ResourceKind) IsCaseScoped() bool {
	switch k {
	case ResourceAppointment, ResourceSupport, ResourceAction:
		return true
	}
	return false
}

// EntityType identifies the kind of entity described by an audit record.
type EntityType string

const (
	EntityTypeUser        EntityType = "USER"
	EntityTypeApplicant   EntityType = "APPLICANT"
	EntityTypeCase        EntityType = "CASE"
	EntityTypeAction      EntityType = "ACTION"
	EntityTypeAppointment EntityType = "APPOINTMENT"
	EntityTypeSupport     EntityType = "SUPPORT"
	EntityTypeBeneficiary EntityType = "BENEFICIARY"
	EntityTypeAssignment  EntityType = "ASSIGNMENT"
)

func (e EntityType) String() string { return string(e) }

func (e EntityType) IsValid() bool {
	switch e {
	case EntityTypeUser, EntityTypeApplicant, EntityTypeCase, EntityTypeAction,
		EntityTypeAppointment, EntityTypeSupport, EntityTypeBeneficiary, EntityTypeAssignment:
		return true
	}
	return false
}
