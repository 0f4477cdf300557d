package lifecycle

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mgvaldez/clinicajuridica-backend/internal/domain"
)

var (
	_ statusRepo     = &statusRepoMock{}
	_ assignmentRepo = &assignmentRepoMock{}
	_ caseRepo       = &caseRepoMock{}
	_ statusCatalog  = &statusCatalogMock{}
	_ authorizer     = &authorizerMock{}
	_ auditLogger    = &auditLoggerMock{}
	_ txManager      = &txManagerMock{}
)

// ---------------------------------------------------------------------------
// statusRepoMock
// ---------------------------------------------------------------------------

type statusRepoMock struct {
	InsertFunc  func(ctx context.Context, entry domain.StatusEntry) (domain.StatusEntry, error)
	CurrentFunc func(ctx context.Context, caseNumber int64) (*domain.StatusEntry, error)
	HistoryFunc func(ctx context.Context, caseNumber int64) ([]domain.StatusEntry, error)

	calls struct {
		Insert []struct {
			Entry domain.StatusEntry
		}
		Current []struct {
			CaseNumber int64
		}
		History []struct {
			CaseNumber int64
		}
	}
	lockInsert  sync.RWMutex
	lockCurrent sync.RWMutex
	lockHistory sync.RWMutex
}

func (mock *statusRepoMock) Insert(ctx context.Context, entry domain.StatusEntry) (domain.StatusEntry, error) {
	if mock.InsertFunc == nil {
		panic("statusRepoMock.InsertFunc: method is nil but statusRepo.Insert was just called")
	}
	mock.lockInsert.Lock()
	mock.calls.Insert = append(mock.calls.Insert, struct {
		Entry domain.StatusEntry
	}{Entry: entry})
	mock.lockInsert.Unlock()
	return mock.InsertFunc(ctx, entry)
}

func (mock *statusRepoMock) InsertCalls() []struct {
	Entry domain.StatusEntry
} {
	mock.lockInsert.RLock()
	calls := mock.calls.Insert
	mock.lockInsert.RUnlock()
	return calls
}

func (mock *statusRepoMock) Current(ctx context.Context, caseNumber int64) (*domain.StatusEntry, error) {
	if mock.CurrentFunc == nil {
		panic("statusRepoMock.CurrentFunc: method is nil but statusRepo.Current was just called")
	}
	mock.lockCurrent.Lock()
	mock.calls.Current = append(mock.calls.Current, struct {
		CaseNumber int64
	}{CaseNumber: caseNumber})
	mock.lockCurrent.Unlock()
	return mock.CurrentFunc(ctx, caseNumber)
}

func (mock *statusRepoMock) CurrentCalls() []struct {
	CaseNumber int64
} {
	mock.lockCurrent.RLock()
	calls := mock.calls.Current
	mock.lockCurrent.RUnlock()
	return calls
}

func (mock *statusRepoMock) History(ctx context.Context, caseNumber int64) ([]domain.StatusEntry, error) {
	if mock.HistoryFunc == nil {
		panic("statusRepoMock.HistoryFunc: method is nil but statusRepo.History was just called")
	}
	mock.lockHistory.Lock()
	mock.calls.History = append(mock.calls.History, struct {
		CaseNumber int64
	}{CaseNumber: caseNumber})
	mock.lockHistory.Unlock()
	return mock.HistoryFunc(ctx, caseNumber)
}

func (mock *statusRepoMock) HistoryCalls() []struct {
	CaseNumber int64
} {
	mock.lockHistory.RLock()
	calls := mock.calls.History
	mock.lockHistory.RUnlock()
	return calls
}

// ---------------------------------------------------------------------------
// assignmentRepoMock
// ---------------------------------------------------------------------------

type assignmentRepoMock struct {
	AssignFunc                 func(ctx context.Context, caseNumber int64, term string, personID uuid.UUID, kind domain.AssigneeKind, now time.Time) (domain.Assignment, []int64, error)
	DeactivateFunc             func(ctx context.Context, id int64, now time.Time) error
	GetByIDFunc                func(ctx context.Context, id int64) (*domain.Assignment, error)
	RepairDuplicatesFunc       func(ctx context.Context, caseNumber int64, term string, now time.Time) (int64, error)
	RepairDuplicatesByKindFunc func(ctx context.Context, caseNumber int64, term string, kind domain.AssigneeKind, now time.Time) (int64, error)
	DuplicateCaseTermsFunc     func(ctx context.Context) ([]domain.CaseTerm, error)
	ActiveAssigneesFunc        func(ctx context.Context, caseNumber int64, term string, kind domain.AssigneeKind) ([]uuid.UUID, error)

	calls struct {
		Assign []struct {
			CaseNumber int64
			Term       string
			PersonID   uuid.UUID
			Kind       domain.AssigneeKind
		}
		Deactivate []struct {
			ID int64
		}
		GetByID []struct {
			ID int64
		}
		RepairDuplicates []struct {
			CaseNumber int64
			Term       string
		}
		RepairDuplicatesByKind []struct {
			CaseNumber int64
			Term       string
			Kind       domain.AssigneeKind
		}
		DuplicateCaseTerms []struct{}
		ActiveAssignees    []struct {
			CaseNumber int64
			Term       string
			Kind       domain.AssigneeKind
		}
	}
	lockAssign                 sync.RWMutex
	lockDeactivate             sync.RWMutex
	lockGetByID                sync.RWMutex
	lockRepairDuplicates       sync.RWMutex
	lockRepairDuplicatesByKind sync.RWMutex
	lockDuplicateCaseTerms     sync.RWMutex
	lockActiveAssignees        sync.RWMutex
}

func (mock *assignmentRepoMock) Assign(ctx context.Context, caseNumber int64, term string, personID uuid.UUID, kind domain.AssigneeKind, now time.Time) (domain.Assignment, []int64, error) {
	if mock.AssignFunc == nil {
		panic("assignmentRepoMock.AssignFunc: method is nil but assignmentRepo.Assign was just called")
	}
	mock.lockAssign.Lock()
	mock.calls.Assign = append(mock.calls.Assign, struct {
		CaseNumber int64
		Term       string
		PersonID   uuid.UUID
		Kind       domain.AssigneeKind
	}{CaseNumber: caseNumber, Term: term, PersonID: personID, Kind: kind})
	mock.lockAssign.Unlock()
	return mock.AssignFunc(ctx, caseNumber, term, personID, kind, now)
}

func (mock *assignmentRepoMock) AssignCalls() []struct {
	CaseNumber int64
	Term       string
	PersonID   uuid.UUID
	Kind       domain.AssigneeKind
} {
	mock.lockAssign.RLock()
	calls := mock.calls.Assign
	mock.lockAssign.RUnlock()
	return calls
}

func (mock *assignmentRepoMock) Deactivate(ctx context.Context, id int64, now time.Time) error {
	if mock.DeactivateFunc == nil {
		panic("assignmentRepoMock.DeactivateFunc: method is nil but assignmentRepo.Deactivate was just called")
	}
	mock.lockDeactivate.Lock()
	mock.calls.Deactivate = append(mock.calls.Deactivate, struct {
		ID int64
	}{ID: id})
	mock.lockDeactivate.Unlock()
	return mock.DeactivateFunc(ctx, id, now)
}

func (mock *assignmentRepoMock) DeactivateCalls() []struct {
	ID int64
} {
	mock.lockDeactivate.RLock()
	calls := mock.calls.Deactivate
	mock.lockDeactivate.RUnlock()
	return calls
}

func (mock *assignmentRepoMock) GetByID(ctx context.Context, id int64) (*domain.Assignment, error) {
	if mock.GetByIDFunc == nil {
		panic("assignmentRepoMock.GetByIDFunc: method is nil but assignmentRepo.GetByID was just called")
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, struct {
		ID int64
	}{ID: id})
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *assignmentRepoMock) GetByIDCalls() []struct {
	ID int64
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *assignmentRepoMock) RepairDuplicates(ctx context.Context, caseNumber int64, term string, now time.Time) (int64, error) {
	if mock.RepairDuplicatesFunc == nil {
		panic("assignmentRepoMock.RepairDuplicatesFunc: method is nil but assignmentRepo.RepairDuplicates was just called")
	}
	mock.lockRepairDuplicates.Lock()
	mock.calls.RepairDuplicates = append(mock.calls.RepairDuplicates, struct {
		CaseNumber int64
		Term       string
	}{CaseNumber: caseNumber, Term: term})
	mock.lockRepairDuplicates.Unlock()
	return mock.RepairDuplicatesFunc(ctx, caseNumber, term, now)
}

func (mock *assignmentRepoMock) RepairDuplicatesCalls() []struct {
	CaseNumber int64
	Term       string
} {
	mock.lockRepairDuplicates.RLock()
	calls := mock.calls.RepairDuplicates
	mock.lockRepairDuplicates.RUnlock()
	return calls
}

func (mock *assignmentRepoMock) RepairDuplicatesByKind(ctx context.Context, caseNumber int64, term string, kind domain.AssigneeKind, now time.Time) (int64, error) {
	if mock.RepairDuplicatesByKindFunc == nil {
		panic("assignmentRepoMock.RepairDuplicatesByKindFunc: method is nil but assignmentRepo.RepairDuplicatesByKind was just called")
	}
	mock.lockRepairDuplicatesByKind.Lock()
	mock.calls.RepairDuplicatesByKind = append(mock.calls.RepairDuplicatesByKind, struct {
		CaseNumber int64
		Term       string
		Kind       domain.AssigneeKind
	}{CaseNumber: caseNumber, Term: term, Kind: kind})
	mock.lockRepairDuplicatesByKind.Unlock()
	return mock.RepairDuplicatesByKindFunc(ctx, caseNumber, term, kind, now)
}

func (mock *assignmentRepoMock) RepairDuplicatesByKindCalls() []struct {
	CaseNumber int64
	Term       string
	Kind       domain.AssigneeKind
} {
	mock.lockRepairDuplicatesByKind.RLock()
	calls := mock.calls.RepairDuplicatesByKind
	mock.lockRepairDuplicatesByKind.RUnlock()
	return calls
}

func (mock *assignmentRepoMock) DuplicateCaseTerms(ctx context.Context) ([]domain.CaseTerm, error) {
	if mock.DuplicateCaseTermsFunc == nil {
		panic("assignmentRepoMock.DuplicateCaseTermsFunc: method is nil but assignmentRepo.DuplicateCaseTerms was just called")
	}
	mock.lockDuplicateCaseTerms.Lock()
	mock.calls.DuplicateCaseTerms = append(mock.calls.DuplicateCaseTerms, struct{}{})
	mock.lockDuplicateCaseTerms.Unlock()
	return mock.DuplicateCaseTermsFunc(ctx)
}

func (mock *assignmentRepoMock) DuplicateCaseTermsCalls() []struct{} {
	mock.lockDuplicateCaseTerms.RLock()
	calls := mock.calls.DuplicateCaseTerms
	mock.lockDuplicateCaseTerms.RUnlock()
	return calls
}

func (mock *assignmentRepoMock) ActiveAssignees(ctx context.Context, caseNumber int64, term string, kind domain.AssigneeKind) ([]uuid.UUID, error) {
	if mock.ActiveAssigneesFunc == nil {
		panic("assignmentRepoMock.ActiveAssigneesFunc: method is nil but assignmentRepo.ActiveAssignees was just called")
	}
	mock.lockActiveAssignees.Lock()
	mock.calls.ActiveAssignees = append(mock.calls.ActiveAssignees, struct {
		CaseNumber int64
		Term       string
		Kind       domain.AssigneeKind
	}{CaseNumber: caseNumber, Term: term, Kind: kind})
	mock.lockActiveAssignees.Unlock()
	return mock.ActiveAssigneesFunc(ctx, caseNumber, term, kind)
}

func (mock *assignmentRepoMock) ActiveAssigneesCalls() []struct {
	CaseNumber int64
	Term       string
	Kind       domain.AssigneeKind
} {
	mock.lockActiveAssignees.RLock()
	calls := mock.calls.ActiveAssignees
	mock.lockActiveAssignees.RUnlock()
	return calls
}

// ---------------------------------------------------------------------------
// caseRepoMock
// ---------------------------------------------------------------------------

type caseRepoMock struct {
	CreateFunc      func(ctx context.Context, c domain.Case) (domain.Case, error)
	GetByNumberFunc func(ctx context.Context, number int64) (*domain.Case, error)
	ExistsFunc      func(ctx context.Context, number int64) (bool, error)

	calls struct {
		Create []struct {
			Case domain.Case
		}
		GetByNumber []struct {
			Number int64
		}
		Exists []struct {
			Number int64
		}
	}
	lockCreate      sync.RWMutex
	lockGetByNumber sync.RWMutex
	lockExists      sync.RWMutex
}

func (mock *caseRepoMock) Create(ctx context.Context, c domain.Case) (domain.Case, error) {
	if mock.CreateFunc == nil {
		panic("caseRepoMock.CreateFunc: method is nil but caseRepo.Create was just called")
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, struct {
		Case domain.Case
	}{Case: c})
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, c)
}

func (mock *caseRepoMock) CreateCalls() []struct {
	Case domain.Case
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *caseRepoMock) GetByNumber(ctx context.Context, number int64) (*domain.Case, error) {
	if mock.GetByNumberFunc == nil {
		panic("caseRepoMock.GetByNumberFunc: method is nil but caseRepo.GetByNumber was just called")
	}
	mock.lockGetByNumber.Lock()
	mock.calls.GetByNumber = append(mock.calls.GetByNumber, struct {
		Number int64
	}{Number: number})
	mock.lockGetByNumber.Unlock()
	return mock.GetByNumberFunc(ctx, number)
}

func (mock *caseRepoMock) GetByNumberCalls() []struct {
	Number int64
} {
	mock.lockGetByNumber.RLock()
	calls := mock.calls.GetByNumber
	mock.lockGetByNumber.RUnlock()
	return calls
}

func (mock *caseRepoMock) Exists(ctx context.Context, number int64) (bool, error) {
	if mock.ExistsFunc == nil {
		panic("caseRepoMock.ExistsFunc: method is nil but caseRepo.Exists was just called")
	}
	mock.lockExists.Lock()
	mock.calls.Exists = append(mock.calls.Exists, struct {
		Number int64
	}{Number: number})
	mock.lockExists.Unlock()
	return mock.ExistsFunc(ctx, number)
}

func (mock *caseRepoMock) ExistsCalls() []struct {
	Number int64
} {
	mock.lockExists.RLock()
	calls := mock.calls.Exists
	mock.lockExists.RUnlock()
	return calls
}

// ---------------------------------------------------------------------------
// statusCatalogMock
// ---------------------------------------------------------------------------

type statusCatalogMock struct {
	ListFunc   func(ctx context.Context) ([]domain.Status, error)
	ExistsFunc func(ctx context.Context, code string) (bool, error)

	calls struct {
		List   []struct{}
		Exists []struct {
			Code string
		}
	}
	lockList   sync.RWMutex
	lockExists sync.RWMutex
}

func (mock *statusCatalogMock) List(ctx context.Context) ([]domain.Status, error) {
	if mock.ListFunc == nil {
		panic("statusCatalogMock.ListFunc: method is nil but statusCatalog.List was just called")
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, struct{}{})
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *statusCatalogMock) ListCalls() []struct{} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *statusCatalogMock) Exists(ctx context.Context, code string) (bool, error) {
	if mock.ExistsFunc == nil {
		panic("statusCatalogMock.ExistsFunc: method is nil but statusCatalog.Exists was just called")
	}
	mock.lockExists.Lock()
	mock.calls.Exists = append(mock.calls.Exists, struct {
		Code string
	}{Code: code})
	mock.lockExists.Unlock()
	return mock.ExistsFunc(ctx, code)
}

func (mock *statusCatalogMock) ExistsCalls() []struct {
	Code string
} {
	mock.lockExists.RLock()
	calls := mock.calls.Exists
	mock.lockExists.RUnlock()
	return calls
}

// ---------------------------------------------------------------------------
// authorizerMock
// ---------------------------------------------------------------------------

type authorizerMock struct {
	AuthorizeFunc func(ctx context.Context, actor domain.Actor, action domain.Action, res domain.ResourceRef) error

	calls struct {
		Authorize []struct {
			Actor  domain.Actor
			Action domain.Action
			Res    domain.ResourceRef
		}
	}
	lockAuthorize sync.RWMutex
}

func (mock *authorizerMock) Authorize(ctx context.Context, actor domain.Actor, action domain.Action, res domain.ResourceRef) error {
	if mock.AuthorizeFunc == nil {
		panic("authorizerMock.AuthorizeFunc: method is nil but authorizer.Authorize was just called")
	}
	mock.lockAuthorize.Lock()
	mock.calls.Authorize = append(mock.calls.Authorize, struct {
		Actor  domain.Actor
		Action domain.Action
		Res    domain.ResourceRef
	}{Actor: actor, Action: action, Res: res})
	mock.lockAuthorize.Unlock()
	return mock.AuthorizeFunc(ctx, actor, action, res)
}

func (mock *authorizerMock) AuthorizeCalls() []struct {
	Actor  domain.Actor
	Action domain.Action
	Res    domain.ResourceRef
} {
	mock.lockAuthorize.RLock()
	calls := mock.calls.Authorize
	mock.lockAuthorize.RUnlock()
	return calls
}

// ---------------------------------------------------------------------------
// auditLoggerMock
// ---------------------------------------------------------------------------

type auditLoggerMock struct {
	LogChangeFunc func(ctx context.Context, entityType domain.EntityType, entityID string, fields map[string]domain.FieldChange, responsible domain.Actor) error

	calls struct {
		LogChange []struct {
			EntityType  domain.EntityType
			EntityID    string
			Fields      map[string]domain.FieldChange
			Responsible domain.Actor
		}
	}
	lockLogChange sync.RWMutex
}

func (mock *auditLoggerMock) LogChange(ctx context.Context, entityType domain.EntityType, entityID string, fields map[string]domain.FieldChange, responsible domain.Actor) error {
	if mock.LogChangeFunc == nil {
		panic("auditLoggerMock.LogChangeFunc: method is nil but auditLogger.LogChange was just called")
	}
	mock.lockLogChange.Lock()
	mock.calls.LogChange = append(mock.calls.LogChange, struct {
		EntityType  domain.EntityType
		EntityID    string
		Fields      map[string]domain.FieldChange
		Responsible domain.Actor
	}{EntityType: entityType, EntityID: entityID, Fields: fields, Responsible: responsible})
	mock.lockLogChange.Unlock()
	return mock.LogChangeFunc(ctx, entityType, entityID, fields, responsible)
}

func (mock *auditLoggerMock) LogChangeCalls() []struct {
	EntityType  domain.EntityType
	EntityID    string
	Fields      map[string]domain.FieldChange
	Responsible domain.Actor
} {
	mock.lockLogChange.RLock()
	calls := mock.calls.LogChange
	mock.lockLogChange.RUnlock()
	return calls
}

// ---------------------------------------------------------------------------
// txManagerMock
// ---------------------------------------------------------------------------

// txManagerMock runs the callback directly: unit tests exercise the
// orchestration, not transactionality.
type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInTx []struct{}
	}
	lockRunInTx sync.RWMutex
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	mock.lockRunInTx.Lock()
	mock.calls.RunInTx = append(mock.calls.RunInTx, struct{}{})
	mock.lockRunInTx.Unlock()
	if mock.RunInTxFunc != nil {
		return mock.RunInTxFunc(ctx, fn)
	}
	return fn(ctx)
}

func (mock *txManagerMock) RunInTxCalls() []struct{} {
	mock.lockRunInTx.RLock()
	calls := mock.calls.RunInTx
	mock.lockRunInTx.RUnlock()
	return calls
}
