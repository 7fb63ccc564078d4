package usecases

import (
	"context"

	"github.com/google/uuid"

	"github.com/naturetrails/trails-backend/models"
	"github.com/naturetrails/trails-backend/repositories"
	"github.com/naturetrails/trails-backend/usecases/executor_factory"
	"github.com/naturetrails/trails-backend/usecases/security"
)

type SpeciesRepository interface {
	GetSpeciesById(ctx context.Context, exec repositories.Executor, speciesId uuid.UUID) (models.Species, error)
	ListSpecies(ctx context.Context, exec repositories.Executor, page models.PageRequest,
		sortParam string, filters models.SpeciesFilters) ([]models.Species, models.Page, error)
	SpeciesTaxonomy() repositories.RelationLoader[models.Species]
	ListPointsOfInterest(ctx context.Context, exec repositories.Executor, page models.PageRequest,
		sortParam string, filters models.PoiFilters,
		loaders ...repositories.RelationLoader[models.PointOfInterest],
	) ([]models.PointOfInterest, models.Page, error)
	GetPointOfInterestById(ctx context.Context, exec repositories.Executor,
		poiId uuid.UUID) (models.PointOfInterest, error)
	PoiSpecies(withTaxonomy bool) repositories.RelationLoader[models.PointOfInterest]
}

type SpeciesUsecase struct {
	enforceSecurity security.EnforceSecurityTrail
	executorFactory executor_factory.ExecutorFactory
	repository      SpeciesRepository
}

func (usecase *SpeciesUsecase) ListSpecies(ctx context.Context, page models.PageRequest,
	sortParam string, filters models.SpeciesFilters,
) ([]models.Species, models.Page, error) {
	if err := usecase.enforceSecurity.ReadSpecies(); err != nil {
		return nil, models.Page{}, err
	}
	return usecase.repository.ListSpecies(ctx, usecase.executorFactory.NewExecutor(),
		page, sortParam, filters)
}

// GetSpecies returns the species with its full taxonomy chain resolved.
func (usecase *SpeciesUsecase) GetSpecies(ctx context.Context, speciesId uuid.UUID) (models.Species, error) {
	if err := usecase.enforceSecurity.ReadSpecies(); err != nil {
		return models.Species{}, err
	}

	exec := usecase.executorFactory.NewExecutor()
	species, err := usecase.repository.GetSpeciesById(ctx, exec, speciesId)
	if err != nil {
		return models.Species{}, err
	}

	enriched, err := usecase.repository.SpeciesTaxonomy()(ctx, exec, []models.Species{species})
	if err != nil {
		return models.Species{}, err
	}
	return enriched[0], nil
}

func (usecase *SpeciesUsecase) ListPointsOfInterest(ctx context.Context, page models.PageRequest,
	sortParam string, filters models.PoiFilters,
) ([]models.PointOfInterest, models.Page, error) {
	if err := usecase.enforceSecurity.ReadPointOfInterest(); err != nil {
		return nil, models.Page{}, err
	}
	return usecase.repository.ListPointsOfInterest(ctx, usecase.executorFactory.NewExecutor(),
		page, sortParam, filters, usecase.repository.PoiSpecies(true))
}

func (usecase *SpeciesUsecase) GetPointOfInterest(ctx context.Context, poiId uuid.UUID) (models.PointOfInterest, error) {
	if err := usecase.enforceSecurity.ReadPointOfInterest(); err != nil {
		return models.PointOfInterest{}, err
	}

	exec := usecase.executorFactory.NewExecutor()
	poi, err := usecase.repository.GetPointOfInterestById(ctx, exec, poiId)
	if err != nil {
		return models.PointOfInterest{}, err
	}

	enriched, err := usecase.repository.PoiSpecies(true)(ctx, exec, []models.PointOfInterest{poi})
	if err != nil {
		return models.PointOfInterest{}, err
	}
	return enriched[0], nil
}
