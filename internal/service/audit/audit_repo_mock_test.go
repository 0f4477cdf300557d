package audit

import (
	"context"
	"sync"

	"github.com/mgvaldez/clinicajuridica-backend/internal/domain"
)

var _ auditRepo = &auditRepoMock{}

type auditRepoMock struct {
	InsertFunc       func(ctx context.Context, rec domain.AuditRecord) error
	ListByEntityFunc func(ctx context.Context, entityType domain.EntityType, entityID string, limit int) ([]domain.AuditRecord, error)

	calls struct {
		Insert []struct {
			Rec domain.AuditRecord
		}
		ListByEntity []struct {
			EntityType domain.EntityType
			EntityID   string
			Limit      int
		}
	}
	lockInsert       sync.RWMutex
	lockListByEntity sync.RWMutex
}

func (mock *auditRepoMock) Insert(ctx context.Context, rec domain.AuditRecord) error {
	if mock.InsertFunc == nil {
		panic("auditRepoMock.InsertFunc: method is nil but auditRepo.Insert was just called")
	}
	callInfo := struct {
		Rec domain.AuditRecord
	}{Rec: rec}
	mock.lockInsert.Lock()
	mock.calls.Insert = append(mock.calls.Insert, callInfo)
	mock.lockInsert.Unlock()
	return mock.InsertFunc(ctx, rec)
}

func (mock *auditRepoMock) InsertCalls() []struct {
	Rec domain.AuditRecord
} {
	mock.lockInsert.RLock()
	calls := mock.calls.Insert
	mock.lockInsert.RUnlock()
	return calls
}

func (mock *auditRepoMock) ListByEntity(ctx context.Context, entityType domain.EntityType, entityID string, limit int) ([]domain.AuditRecord, error) {
	if mock.ListByEntityFunc == nil {
		panic("auditRepoMock.ListByEntityFunc: method is nil but auditRepo.ListByEntity was just called")
	}
	callInfo := struct {
		EntityType domain.EntityType
		EntityID   string
		Limit      int
	}{EntityType: entityType, EntityID: entityID, Limit: limit}
	mock.lockListByEntity.Lock()
	mock.calls.ListByEntity = append(mock.calls.ListByEntity, callInfo)
	mock.lockListByEntity.Unlock()
	return mock.ListByEntityFunc(ctx, entityType, entityID, limit)
}

func (mock *auditRepoMock) ListByEntityCalls() []struct {
	EntityType domain.EntityType
	EntityID   string
	Limit      int
} {
	mock.lockListByEntity.RLock()
	calls := mock.calls.ListByEntity
	mock.lockListByEntity.RUnlock()
	return calls
}
