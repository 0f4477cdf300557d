package authz

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

var _ participationRepo = &participationRepoMock{}

type participationRepoMock struct {
	ParticipatesFunc func(ctx context.Context, caseNumber int64, personID uuid.UUID) (bool, error)

	calls struct {
		Participates []struct {
			CaseNumber int64
			PersonID   uuid.UUID
		}
	}
	lockParticipates sync.RWMutex
}

func (mock *participationRepoMock) Participates(ctx context.Context, caseNumber int64, personID uuid.UUID) (bool, error) {
	if mock.ParticipatesFunc == nil {
		panic("participationRepoMock.ParticipatesFunc: method is nil but participationRepo.Participates was just called")
	}
	callInfo := struct {
		CaseNumber int64
		PersonID   uuid.UUID
	}{CaseNumber: caseNumber, PersonID: personID}
	mock.lockParticipates.Lock()
	mock.calls.Participates = append(mock.calls.Participates, callInfo)
	mock.lockParticipates.Unlock()
	return mock.ParticipatesFunc(ctx, caseNumber, personID)
}

func (mock *participationRepoMock) ParticipatesCalls() []struct {
	CaseNumber int64
	PersonID   uuid.UUID
} {
	mock.lockParticipates.RLock()
	calls := mock.calls.Participates
	mock.lockParticipates.RUnlock()
	return calls
}
