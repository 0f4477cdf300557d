package notifier

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mgvaldez/clinicajuridica-backend/internal/domain"
)

var (
	_ stalledScanner   = &stalledScannerMock{}
	_ flagStore        = &flagStoreMock{}
	_ notificationSink = &notificationSinkMock{}
	_ assigneeLister   = &assigneeListerMock{}
)

type stalledScannerMock struct {
	StalledFunc func(ctx context.Context, cutoff time.Time, excludeStatus string, thresholdDays int, limit int) ([]domain.StatusEntry, error)

	calls struct {
		Stalled []struct {
			Cutoff        time.Time
			ExcludeStatus string
			ThresholdDays int
			Limit         int
		}
	}
	lockStalled sync.RWMutex
}

func (mock *stalledScannerMock) Stalled(ctx context.Context, cutoff time.Time, excludeStatus string, thresholdDays int, limit int) ([]domain.StatusEntry, error) {
	if mock.StalledFunc == nil {
		panic("stalledScannerMock.StalledFunc: method is nil but stalledScanner.Stalled was just called")
	}
	mock.lockStalled.Lock()
	mock.calls.Stalled = append(mock.calls.Stalled, struct {
		Cutoff        time.Time
		ExcludeStatus string
		ThresholdDays int
		Limit         int
	}{Cutoff: cutoff, ExcludeStatus: excludeStatus, ThresholdDays: thresholdDays, Limit: limit})
	mock.lockStalled.Unlock()
	return mock.StalledFunc(ctx, cutoff, excludeStatus, thresholdDays, limit)
}

func (mock *stalledScannerMock) StalledCalls() []struct {
	Cutoff        time.Time
	ExcludeStatus string
	ThresholdDays int
	Limit         int
} {
	mock.lockStalled.RLock()
	calls := mock.calls.Stalled
	mock.lockStalled.RUnlock()
	return calls
}

type flagStoreMock struct {
	TryFlagStalledFunc func(ctx context.Context, caseNumber int64, statusCode string, thresholdDays int) (bool, error)
	AcknowledgeFunc    func(ctx context.Context, caseNumber int64, statusCode string, thresholdDays int) error

	calls struct {
		TryFlagStalled []struct {
			CaseNumber    int64
			StatusCode    string
			ThresholdDays int
		}
		Acknowledge []struct {
			CaseNumber    int64
			StatusCode    string
			ThresholdDays int
		}
	}
	lockTryFlagStalled sync.RWMutex
	lockAcknowledge    sync.RWMutex
}

func (mock *flagStoreMock) TryFlagStalled(ctx context.Context, caseNumber int64, statusCode string, thresholdDays int) (bool, error) {
	if mock.TryFlagStalledFunc == nil {
		panic("flagStoreMock.TryFlagStalledFunc: method is nil but flagStore.TryFlagStalled was just called")
	}
	mock.lockTryFlagStalled.Lock()
	mock.calls.TryFlagStalled = append(mock.calls.TryFlagStalled, struct {
		CaseNumber    int64
		StatusCode    string
		ThresholdDays int
	}{CaseNumber: caseNumber, StatusCode: statusCode, ThresholdDays: thresholdDays})
	mock.lockTryFlagStalled.Unlock()
	return mock.TryFlagStalledFunc(ctx, caseNumber, statusCode, thresholdDays)
}

func (mock *flagStoreMock) TryFlagStalledCalls() []struct {
	CaseNumber    int64
	StatusCode    string
	ThresholdDays int
} {
	mock.lockTryFlagStalled.RLock()
	calls := mock.calls.TryFlagStalled
	mock.lockTryFlagStalled.RUnlock()
	return calls
}

func (mock *flagStoreMock) Acknowledge(ctx context.Context, caseNumber int64, statusCode string, thresholdDays int) error {
	if mock.AcknowledgeFunc == nil {
		panic("flagStoreMock.AcknowledgeFunc: method is nil but flagStore.Acknowledge was just called")
	}
	mock.lockAcknowledge.Lock()
	mock.calls.Acknowledge = append(mock.calls.Acknowledge, struct {
		CaseNumber    int64
		StatusCode    string
		ThresholdDays int
	}{CaseNumber: caseNumber, StatusCode: statusCode, ThresholdDays: thresholdDays})
	mock.lockAcknowledge.Unlock()
	return mock.AcknowledgeFunc(ctx, caseNumber, statusCode, thresholdDays)
}

func (mock *flagStoreMock) AcknowledgeCalls() []struct {
	CaseNumber    int64
	StatusCode    string
	ThresholdDays int
} {
	mock.lockAcknowledge.RLock()
	calls := mock.calls.Acknowledge
	mock.lockAcknowledge.RUnlock()
	return calls
}

type notificationSinkMock struct {
	NotifyFunc func(ctx context.Context, personID uuid.UUID, message string, relatedCase int64) error

	calls struct {
		Notify []struct {
			PersonID    uuid.UUID
			Message     string
			RelatedCase int64
		}
	}
	lockNotify sync.RWMutex
}

func (mock *notificationSinkMock) Notify(ctx context.Context, personID uuid.UUID, message string, relatedCase int64) error {
	if mock.NotifyFunc == nil {
		panic("notificationSinkMock.NotifyFunc: method is nil but notificationSink.Notify was just called")
	}
	mock.lockNotify.Lock()
	mock.calls.Notify = append(mock.calls.Notify, struct {
		PersonID    uuid.UUID
		Message     string
		RelatedCase int64
	}{PersonID: personID, Message: message, RelatedCase: relatedCase})
	mock.lockNotify.Unlock()
	return mock.NotifyFunc(ctx, personID, message, relatedCase)
}

func (mock *notificationSinkMock) NotifyCalls() []struct {
	PersonID    uuid.UUID
	Message     string
	RelatedCase int64
} {
	mock.lockNotify.RLock()
	calls := mock.calls.Notify
	mock.lockNotify.RUnlock()
	return calls
}

type assigneeListerMock struct {
	ActiveAssigneesFunc func(ctx context.Context, caseNumber int64, term string, kind domain.AssigneeKind) ([]uuid.UUID, error)

	calls struct {
		ActiveAssignees []struct {
			CaseNumber int64
			Term       string
			Kind       domain.AssigneeKind
		}
	}
	lockActiveAssignees sync.RWMutex
}

func (mock *assigneeListerMock) ActiveAssignees(ctx context.Context, caseNumber int64, term string, kind domain.AssigneeKind) ([]uuid.UUID, error) {
	if mock.ActiveAssigneesFunc == nil {
		panic("assigneeListerMock.ActiveAssigneesFunc: method is nil but assigneeLister.ActiveAssignees was just called")
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

func (mock *assigneeListerMock) ActiveAssigneesCalls() []struct {
	CaseNumber int64
	Term       string
	Kind       domain.AssigneeKind
} {
	mock.lockActiveAssignees.RLock()
	calls := mock.calls.ActiveAssignees
	mock.lockActiveAssignees.RUnlock()
	return calls
}
