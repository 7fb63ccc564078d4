package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/naturetrails/trails-backend/models"
	"github.com/naturetrails/trails-backend/pure_utils"
	"github.com/naturetrails/trails-backend/repositories/dbmodels"
)

func (repo *TrailsDbRepository) ListExcursions(
	ctx context.Context,
	exec Executor,
	page models.PageRequest,
	sortParam string,
	filters models.ExcursionFilters,
	loaders ...RelationLoader[models.Excursion],
) ([]models.Excursion, models.Page, error) {
	query := NewListQuery(dbmodels.SelectExcursionColumn, dbmodels.TABLE_EXCURSIONS).
		Paginate(page).
		Sorts("name", "plannedAt", "createdAt").
		DefaultSort("plannedAt", models.SortingOrderDesc).
		SortParam(sortParam)

	if filters.TrailId != uuid.Nil {
		query.Where(squirrel.Eq{"trail_id": filters.TrailId})
	}
	if filters.CreatorId != uuid.Nil {
		query.Where(squirrel.Eq{"creator_id": filters.CreatorId})
	}
	if filters.Search != "" {
		query.Filter(func(q squirrel.SelectBuilder) *squirrel.SelectBuilder {
			filtered := q.Where(squirrel.ILike{"name": "%" + filters.Search + "%"})
			return &filtered
		})
	}

	return FetchListPage(ctx, exec, query, dbmodels.AdaptExcursion, loaders...)
}

func (repo *TrailsDbRepository) GetExcursionById(ctx context.Context, exec Executor,
	excursionId uuid.UUID,
) (models.Excursion, error) {
	return SqlToModel(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectExcursionColumn...).
			From(dbmodels.TABLE_EXCURSIONS).
			Where(squirrel.Eq{"id": excursionId}),
		dbmodels.AdaptExcursion,
	)
}

func (repo *TrailsDbRepository) CreateExcursion(ctx context.Context, exec Executor,
	attributes models.CreateExcursion, newExcursionId uuid.UUID,
) error {
	return ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().Insert(dbmodels.TABLE_EXCURSIONS).
			Columns(
				"id",
				"trail_id",
				"creator_id",
				"name",
				"planned_at",
				"themes",
				"zone_ids",
			).
			Values(
				newExcursionId,
				attributes.TrailId,
				attributes.CreatorId,
				attributes.Name,
				attributes.PlannedAt,
				pure_utils.Map(attributes.Themes, func(t models.Theme) string { return string(t) }),
				attributes.ZoneIds,
			),
	)
}

func (repo *TrailsDbRepository) UpdateExcursion(ctx context.Context, exec Executor,
	attributes models.UpdateExcursion,
) error {
	query := NewQueryBuilder().Update(dbmodels.TABLE_EXCURSIONS).
		Where(squirrel.Eq{"id": attributes.Id}).
		Set("updated_at", squirrel.Expr("now()"))

	if attributes.Name != nil {
		query = query.Set("name", *attributes.Name)
	}
	if attributes.PlannedAt != nil {
		query = query.Set("planned_at", *attributes.PlannedAt)
	}
	if attributes.Themes != nil {
		query = query.Set("themes", pure_utils.Map(attributes.Themes,
			func(t models.Theme) string { return string(t) }))
	}
	if attributes.ZoneIds != nil {
		query = query.Set("zone_ids", attributes.ZoneIds)
	}

	return ExecBuilder(ctx, exec, query)
}

// ExcursionParticipants attaches the participant list onto excursions in one
// batched query.
func (repo *TrailsDbRepository) ExcursionParticipants() RelationLoader[models.Excursion] {
	return func(ctx context.Context, exec Executor, records []models.Excursion) ([]models.Excursion, error) {
		if len(records) == 0 {
			return records, nil
		}

		excursionIds := pure_utils.Map(records, func(e models.Excursion) uuid.UUID { return e.Id })
		participants, err := SqlToListOfModels(
			ctx,
			exec,
			NewQueryBuilder().
				Select(dbmodels.SelectParticipantColumn...).
				From(dbmodels.TABLE_PARTICIPANTS).
				Where(squirrel.Eq{"excursion_id": excursionIds}).
				OrderBy("created_at ASC"),
			dbmodels.AdaptParticipant,
		)
		if err != nil {
			return nil, err
		}

		byExcursion := make(map[uuid.UUID][]models.Participant, len(records))
		for _, participant := range participants {
			byExcursion[participant.ExcursionId] = append(byExcursion[participant.ExcursionId], participant)
		}
		for i := range records {
			records[i].Participants = byExcursion[records[i].Id]
		}
		return records, nil
	}
}
