package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/naturetrails/trails-backend/models"
	"github.com/naturetrails/trails-backend/pure_utils"
	"github.com/naturetrails/trails-backend/repositories/dbmodels"
)

func (repo *TrailsDbRepository) ListPointsOfInterest(
	ctx context.Context,
	exec Executor,
	page models.PageRequest,
	sortParam string,
	filters models.PoiFilters,
	loaders ...RelationLoader[models.PointOfInterest],
) ([]models.PointOfInterest, models.Page, error) {
	query := NewListQuery(
		columnsNames("poi", dbmodels.SelectPointOfInterestColumn),
		dbmodels.TABLE_POINTS_OF_INTEREST+" AS poi",
	).
		Paginate(page).
		SortOn("position", "poi.position").
		SortOn("createdAt", "poi.created_at").
		DefaultSort("position", models.SortingOrderAsc).
		SortParam(sortParam)

	if filters.ZoneId != uuid.Nil {
		query.Where(squirrel.Eq{"poi.zone_id": filters.ZoneId})
	}
	if filters.Theme != "" {
		query.Where(squirrel.Eq{"poi.theme": string(filters.Theme)})
	}
	if filters.CommonNameSearch != "" {
		query.Join(fmt.Sprintf("%s AS s ON s.id = poi.species_id", dbmodels.TABLE_SPECIES))
		query.Filter(func(q squirrel.SelectBuilder) *squirrel.SelectBuilder {
			filtered := q.Where(squirrel.ILike{"s.common_name": "%" + filters.CommonNameSearch + "%"})
			return &filtered
		})
	}

	return FetchListPage(ctx, exec, query, dbmodels.AdaptPointOfInterest, loaders...)
}

func (repo *TrailsDbRepository) GetPointOfInterestById(ctx context.Context, exec Executor,
	poiId uuid.UUID,
) (models.PointOfInterest, error) {
	return SqlToModel(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectPointOfInterestColumn...).
			From(dbmodels.TABLE_POINTS_OF_INTEREST).
			Where(squirrel.Eq{"id": poiId}),
		dbmodels.AdaptPointOfInterest,
	)
}

// PoiSpecies attaches the observed species onto points of interest, with the
// full taxonomy chain when withTaxonomy is set.
func (repo *TrailsDbRepository) PoiSpecies(withTaxonomy bool) RelationLoader[models.PointOfInterest] {
	return func(ctx context.Context, exec Executor, records []models.PointOfInterest) ([]models.PointOfInterest, error) {
		if len(records) == 0 {
			return records, nil
		}

		speciesIds := pure_utils.Map(records, func(p models.PointOfInterest) uuid.UUID { return p.SpeciesId })
		species, err := repo.listSpeciesByIds(ctx, exec, speciesIds)
		if err != nil {
			return nil, err
		}
		if withTaxonomy {
			species, err = repo.attachTaxonomy(ctx, exec, species)
			if err != nil {
				return nil, err
			}
		}

		speciesById := pure_utils.IndexBy(species, func(s models.Species) uuid.UUID { return s.Id })
		for i := range records {
			if s, ok := speciesById[records[i].SpeciesId]; ok {
				records[i].Species = &s
			}
		}
		return records, nil
	}
}
