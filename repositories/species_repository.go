package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/naturetrails/trails-backend/models"
	"github.com/naturetrails/trails-backend/pure_utils"
	"github.com/naturetrails/trails-backend/repositories/dbmodels"
)

func (repo *TrailsDbRepository) GetSpeciesById(ctx context.Context, exec Executor, speciesId uuid.UUID) (models.Species, error) {
	return SqlToModel(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectSpeciesColumn...).
			From(dbmodels.TABLE_SPECIES).
			Where(squirrel.Eq{"id": speciesId}),
		dbmodels.AdaptSpecies,
	)
}

func (repo *TrailsDbRepository) ListSpecies(
	ctx context.Context,
	exec Executor,
	page models.PageRequest,
	sortParam string,
	filters models.SpeciesFilters,
) ([]models.Species, models.Page, error) {
	query := NewListQuery(dbmodels.SelectSpeciesColumn, dbmodels.TABLE_SPECIES).
		Paginate(page).
		Sorts("scientificName", "commonName").
		DefaultSort("scientificName", models.SortingOrderAsc).
		SortParam(sortParam)

	if filters.Theme != "" {
		query.Where(squirrel.Eq{"theme": string(filters.Theme)})
	}
	if filters.CommonNameSearch != "" {
		query.Filter(func(q squirrel.SelectBuilder) *squirrel.SelectBuilder {
			filtered := q.Where(squirrel.ILike{"common_name": "%" + filters.CommonNameSearch + "%"})
			return &filtered
		})
	}

	return FetchListPage(ctx, exec, query, dbmodels.AdaptSpecies)
}

func (repo *TrailsDbRepository) listSpeciesByIds(ctx context.Context, exec Executor, ids []uuid.UUID) ([]models.Species, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	return SqlToListOfModels(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectSpeciesColumn...).
			From(dbmodels.TABLE_SPECIES).
			Where(squirrel.Eq{"id": ids}),
		dbmodels.AdaptSpecies,
	)
}

// SpeciesTaxonomy attaches family, class and reign onto species records, one
// batched query per taxonomy level.
func (repo *TrailsDbRepository) SpeciesTaxonomy() RelationLoader[models.Species] {
	return func(ctx context.Context, exec Executor, records []models.Species) ([]models.Species, error) {
		loaded, err := repo.attachTaxonomy(ctx, exec, records)
		if err != nil {
			return nil, err
		}
		return loaded, nil
	}
}

func (repo *TrailsDbRepository) attachTaxonomy(ctx context.Context, exec Executor,
	species []models.Species,
) ([]models.Species, error) {
	if len(species) == 0 {
		return species, nil
	}

	familyIds := pure_utils.Map(species, func(s models.Species) uuid.UUID { return s.FamilyId })
	families, err := SqlToListOfModels(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectFamilyColumn...).
			From(dbmodels.TABLE_FAMILIES).
			Where(squirrel.Eq{"id": familyIds}),
		dbmodels.AdaptFamily,
	)
	if err != nil {
		return nil, err
	}

	classIds := pure_utils.Map(families, func(f models.Family) uuid.UUID { return f.ClassId })
	classes, err := SqlToListOfModels(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectTaxonomyClassColumn...).
			From(dbmodels.TABLE_TAXONOMY_CLASSES).
			Where(squirrel.Eq{"id": classIds}),
		dbmodels.AdaptTaxonomyClass,
	)
	if err != nil {
		return nil, err
	}

	reignIds := pure_utils.Map(classes, func(c models.TaxonomyClass) uuid.UUID { return c.ReignId })
	reigns, err := SqlToListOfModels(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectReignColumn...).
			From(dbmodels.TABLE_REIGNS).
			Where(squirrel.Eq{"id": reignIds}),
		dbmodels.AdaptReign,
	)
	if err != nil {
		return nil, err
	}

	reignsById := pure_utils.IndexBy(reigns, func(r models.Reign) uuid.UUID { return r.Id })
	classesById := pure_utils.IndexBy(classes, func(c models.TaxonomyClass) uuid.UUID { return c.Id })
	familiesById := pure_utils.IndexBy(families, func(f models.Family) uuid.UUID { return f.Id })

	for i := range species {
		family, ok := familiesById[species[i].FamilyId]
		if !ok {
			continue
		}
		if class, ok := classesById[family.ClassId]; ok {
			if reign, ok := reignsById[class.ReignId]; ok {
				class.Reign = &reign
			}
			family.Class = &class
		}
		species[i].Family = &family
	}
	return species, nil
}
