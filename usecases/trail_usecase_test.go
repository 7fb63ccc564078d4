package usecases

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/naturetrails/trails-backend/models"
	"github.com/naturetrails/trails-backend/repositories"
	"github.com/naturetrails/trails-backend/usecases/executor_factory"
	"github.com/naturetrails/trails-backend/usecases/security"
)

func newTrailUsecaseForTest(role models.Role, stub executor_factory.ExecutorFactoryStub) TrailUsecase {
	credentials := models.Credentials{
		Principal: models.UserPrincipal{User: models.User{Id: uuid.New(), Role: role, Active: true}},
		Role:      role,
	}
	return TrailUsecase{
		enforceSecurity: &security.EnforceSecurityTrailImpl{
			EnforceSecurity: security.NewEnforceSecurity(credentials),
			Credentials:     credentials,
		},
		executorFactory: stub,
		repository:      repositories.NewTrailsDbRepository(),
	}
}

func TestListTrailsEmptyListing(t *testing.T) {
	stub := executor_factory.NewExecutorFactoryStub()
	usecase := newTrailUsecaseForTest(models.USER, stub)

	stub.Mock.ExpectQuery("SELECT count(*) FROM trails").
		WillReturnRows(stub.Mock.NewRows([]string{"count"}).AddRow(0))
	stub.Mock.ExpectQuery("SELECT id, name, slug, length, created_at, updated_at FROM trails ORDER BY name ASC LIMIT 100 OFFSET 0").
		WillReturnRows(stub.Mock.NewRows([]string{"id", "name", "slug", "length", "created_at", "updated_at"}))

	trails, page, err := usecase.ListTrails(context.Background(),
		models.PageRequest{Offset: 0, Limit: 100}, "", models.TrailFilters{})
	require.NoError(t, err)
	require.NoError(t, stub.Mock.ExpectationsWereMet())

	assert.Empty(t, trails)
	assert.Equal(t, 0, page.Total)
	require.NotNil(t, page.FilteredTotal)
	assert.Equal(t, 0, *page.FilteredTotal)
	assert.Equal(t, 0, page.NumberOfPages())
}

func TestListTrailsRequiresPermission(t *testing.T) {
	stub := executor_factory.NewExecutorFactoryStub()
	usecase := newTrailUsecaseForTest(models.NO_ROLE, stub)

	_, _, err := usecase.ListTrails(context.Background(),
		models.PageRequest{Offset: 0, Limit: 100}, "", models.TrailFilters{})
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ForbiddenError)
}
