package lifecycle

import (
	"context"
	"log/slog"
	"testing"

	"github.com/google/uuid"

	"github.com/mgvaldez/clinicajuridica-backend/internal/domain"
	"github.com/mgvaldez/clinicajuridica-backend/pkg/ctxutil"
)

// testMocks bundles one mock per collaborator. Authorize allows by
// default; tests override what they exercise.
type testMocks struct {
	statuses    *statusRepoMock
	assignments *assignmentRepoMock
	cases       *caseRepoMock
	catalog     *statusCatalogMock
	authz       *authorizerMock
	audit       *auditLoggerMock
	tx          *txManagerMock
}

func newTestMocks() *testMocks {
	return &testMocks{
		statuses:    &statusRepoMock{},
		assignments: &assignmentRepoMock{},
		cases:       &caseRepoMock{},
		catalog:     &statusCatalogMock{},
		authz: &authorizerMock{
			AuthorizeFunc: func(ctx context.Context, actor domain.Actor, action domain.Action, res domain.ResourceRef) error {
				return nil
			},
		},
		audit: &auditLoggerMock{
			LogChangeFunc: func(ctx context.Context, entityType domain.EntityType, entityID string, fields map[string]domain.FieldChange, responsible domain.Actor) error {
				return nil
			},
		},
		tx: &txManagerMock{},
	}
}

func newTestService(t *testing.T, m *testMocks) *Service {
	t.Helper()
	return &Service{
		statuses:    m.statuses,
		assignments: m.assignments,
		cases:       m.cases,
		catalog:     m.catalog,
		authz:       m.authz,
		audit:       m.audit,
		tx:          m.tx,
		log:         slog.Default(),
	}
}

func actorCtx(actor domain.Actor) context.Context {
	return ctxutil.WithActor(context.Background(), actor)
}

func coordinator() domain.Actor {
	return domain.Actor{PersonID: uuid.New(), Role: domain.RoleCoordinator, Name: "Luis Gómez"}
}

func student() domain.Actor {
	return domain.Actor{PersonID: uuid.New(), Role: domain.RoleStudent, Name: "Ana Pérez"}
}
