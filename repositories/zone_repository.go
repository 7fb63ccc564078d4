package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/naturetrails/trails-backend/models"
	"github.com/naturetrails/trails-backend/repositories/dbmodels"
)

func (repo *TrailsDbRepository) ListZonesOfTrail(
	ctx context.Context,
	exec Executor,
	trailId uuid.UUID,
	page models.PageRequest,
	sortParam string,
) ([]models.Zone, models.Page, error) {
	query := NewListQuery(dbmodels.SelectZoneColumn, dbmodels.TABLE_ZONES).
		Where(squirrel.Eq{"trail_id": trailId}).
		Paginate(page).
		Sorts("position", "name", "createdAt").
		DefaultSort("position", models.SortingOrderAsc).
		SortParam(sortParam)

	return FetchListPage(ctx, exec, query, dbmodels.AdaptZone)
}

func (repo *TrailsDbRepository) GetZoneById(ctx context.Context, exec Executor, zoneId uuid.UUID) (models.Zone, error) {
	return SqlToModel(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectZoneColumn...).
			From(dbmodels.TABLE_ZONES).
			Where(squirrel.Eq{"id": zoneId}),
		dbmodels.AdaptZone,
	)
}
