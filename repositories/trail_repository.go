package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/naturetrails/trails-backend/models"
	"github.com/naturetrails/trails-backend/repositories/dbmodels"
)

func (repo *TrailsDbRepository) ListTrails(
	ctx context.Context,
	exec Executor,
	page models.PageRequest,
	sortParam string,
	filters models.TrailFilters,
) ([]models.Trail, models.Page, error) {
	query := NewListQuery(dbmodels.SelectTrailColumn, dbmodels.TABLE_TRAILS).
		Paginate(page).
		Sorts("name", "createdAt").
		DefaultSort("name", models.SortingOrderAsc).
		SortParam(sortParam)

	if filters.Search != "" {
		query.Filter(func(q squirrel.SelectBuilder) *squirrel.SelectBuilder {
			filtered := q.Where(squirrel.ILike{"name": "%" + filters.Search + "%"})
			return &filtered
		})
	}

	return FetchListPage(ctx, exec, query, dbmodels.AdaptTrail)
}

func (repo *TrailsDbRepository) GetTrailById(ctx context.Context, exec Executor, trailId uuid.UUID) (models.Trail, error) {
	return SqlToModel(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectTrailColumn...).
			From(dbmodels.TABLE_TRAILS).
			Where(squirrel.Eq{"id": trailId}),
		dbmodels.AdaptTrail,
	)
}

func (repo *TrailsDbRepository) CreateTrail(ctx context.Context, exec Executor,
	attributes models.CreateTrail, newTrailId uuid.UUID,
) error {
	return ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().Insert(dbmodels.TABLE_TRAILS).
			Columns(
				"id",
				"name",
				"slug",
				"length",
			).
			Values(
				newTrailId,
				attributes.Name,
				attributes.Slug,
				attributes.Length,
			),
	)
}

func (repo *TrailsDbRepository) UpdateTrail(ctx context.Context, exec Executor, attributes models.UpdateTrail) error {
	query := NewQueryBuilder().Update(dbmodels.TABLE_TRAILS).
		Where(squirrel.Eq{"id": attributes.Id}).
		Set("updated_at", squirrel.Expr("now()"))

	if attributes.Name != nil {
		query = query.Set("name", *attributes.Name)
	}
	if attributes.Length != nil {
		query = query.Set("length", *attributes.Length)
	}

	return ExecBuilder(ctx, exec, query)
}
