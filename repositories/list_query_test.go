package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/naturetrails/trails-backend/models"
)

const selectTrailsSql = "SELECT id, name, slug, length, created_at, updated_at FROM trails"

func newListQueryTestMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock
}

func trailRows(mock pgxmock.PgxPoolIface, names ...string) *pgxmock.Rows {
	rows := mock.NewRows([]string{"id", "name", "slug", "length", "created_at", "updated_at"})
	now := time.Now()
	for _, name := range names {
		rows.AddRow(uuid.New(), name, name, 1200, now, now)
	}
	return rows
}

func TestListTrailsWithoutFilter(t *testing.T) {
	mock := newListQueryTestMock(t)
	repo := NewTrailsDbRepository()

	// One count only: with no filter the filtered count equals the total.
	mock.ExpectQuery("SELECT count(*) FROM trails").
		WillReturnRows(mock.NewRows([]string{"count"}).AddRow(57))
	mock.ExpectQuery(selectTrailsSql + " ORDER BY name ASC LIMIT 100 OFFSET 0").
		WillReturnRows(trailRows(mock, "Alpine loop", "Bog walk"))

	trails, page, err := repo.ListTrails(context.Background(), mock,
		models.PageRequest{Offset: 0, Limit: 100}, "", models.TrailFilters{})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())

	assert.Len(t, trails, 2)
	assert.Equal(t, 57, page.Total)
	require.NotNil(t, page.FilteredTotal)
	assert.Equal(t, 57, *page.FilteredTotal)
}

func TestListTrailsWithSearchFilter(t *testing.T) {
	mock := newListQueryTestMock(t)
	repo := NewTrailsDbRepository()

	mock.ExpectQuery("SELECT count(*) FROM trails").
		WillReturnRows(mock.NewRows([]string{"count"}).AddRow(57))
	mock.ExpectQuery("SELECT count(*) FROM trails WHERE name ILIKE $1").
		WithArgs("%alpine%").
		WillReturnRows(mock.NewRows([]string{"count"}).AddRow(3))
	mock.ExpectQuery(selectTrailsSql+" WHERE name ILIKE $1 ORDER BY name ASC LIMIT 100 OFFSET 0").
		WithArgs("%alpine%").
		WillReturnRows(trailRows(mock, "Alpine loop"))

	trails, page, err := repo.ListTrails(context.Background(), mock,
		models.PageRequest{Offset: 0, Limit: 100}, "", models.TrailFilters{Search: "alpine"})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())

	assert.Len(t, trails, 1)
	assert.Equal(t, 57, page.Total)
	require.NotNil(t, page.FilteredTotal)
	assert.Equal(t, 3, *page.FilteredTotal)
}

func TestListTrailsUnknownSortFallsBackToDefault(t *testing.T) {
	mock := newListQueryTestMock(t)
	repo := NewTrailsDbRepository()

	mock.ExpectQuery("SELECT count(*) FROM trails").
		WillReturnRows(mock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(selectTrailsSql + " ORDER BY name ASC LIMIT 100 OFFSET 0").
		WillReturnRows(trailRows(mock, "Alpine loop"))

	_, _, err := repo.ListTrails(context.Background(), mock,
		models.PageRequest{Offset: 0, Limit: 100}, "elevation", models.TrailFilters{})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListTrailsDescendingSort(t *testing.T) {
	mock := newListQueryTestMock(t)
	repo := NewTrailsDbRepository()

	mock.ExpectQuery("SELECT count(*) FROM trails").
		WillReturnRows(mock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectQuery(selectTrailsSql + " ORDER BY created_at DESC LIMIT 100 OFFSET 0").
		WillReturnRows(trailRows(mock, "Bog walk", "Alpine loop"))

	_, _, err := repo.ListTrails(context.Background(), mock,
		models.PageRequest{Offset: 0, Limit: 100}, "createdAt-desc", models.TrailFilters{})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListTrailsOffsetPastTheEnd(t *testing.T) {
	mock := newListQueryTestMock(t)
	repo := NewTrailsDbRepository()

	mock.ExpectQuery("SELECT count(*) FROM trails").
		WillReturnRows(mock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectQuery(selectTrailsSql + " ORDER BY name ASC LIMIT 100 OFFSET 500").
		WillReturnRows(trailRows(mock))

	trails, page, err := repo.ListTrails(context.Background(), mock,
		models.PageRequest{Offset: 500, Limit: 100}, "", models.TrailFilters{})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())

	assert.Empty(t, trails)
	assert.Equal(t, 2, page.Total)
	assert.False(t, page.HasMorePages())
}
