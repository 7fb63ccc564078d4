package usecases

import (
	"context"

	"github.com/google/uuid"

	"github.com/naturetrails/trails-backend/models"
	"github.com/naturetrails/trails-backend/repositories"
	"github.com/naturetrails/trails-backend/usecases/executor_factory"
	"github.com/naturetrails/trails-backend/usecases/security"
)

type TrailRepository interface {
	ListTrails(ctx context.Context, exec repositories.Executor, page models.PageRequest,
		sortParam string, filters models.TrailFilters) ([]models.Trail, models.Page, error)
	GetTrailById(ctx context.Context, exec repositories.Executor, trailId uuid.UUID) (models.Trail, error)
	CreateTrail(ctx context.Context, exec repositories.Executor,
		attributes models.CreateTrail, newTrailId uuid.UUID) error
	UpdateTrail(ctx context.Context, exec repositories.Executor, attributes models.UpdateTrail) error
	ListZonesOfTrail(ctx context.Context, exec repositories.Executor, trailId uuid.UUID,
		page models.PageRequest, sortParam string) ([]models.Zone, models.Page, error)
	GetZoneById(ctx context.Context, exec repositories.Executor, zoneId uuid.UUID) (models.Zone, error)
}

type TrailUsecase struct {
	enforceSecurity security.EnforceSecurityTrail
	executorFactory executor_factory.ExecutorFactory
	repository      TrailRepository
}

func (usecase *TrailUsecase) ListTrails(ctx context.Context, page models.PageRequest,
	sortParam string, filters models.TrailFilters,
) ([]models.Trail, models.Page, error) {
	if err := usecase.enforceSecurity.ListTrails(); err != nil {
		return nil, models.Page{}, err
	}
	return usecase.repository.ListTrails(ctx, usecase.executorFactory.NewExecutor(),
		page, sortParam, filters)
}

func (usecase *TrailUsecase) GetTrail(ctx context.Context, trailId uuid.UUID) (models.Trail, error) {
	trail, err := usecase.repository.GetTrailById(ctx, usecase.executorFactory.NewExecutor(), trailId)
	if err != nil {
		return models.Trail{}, err
	}
	if err := usecase.enforceSecurity.ReadTrail(trail); err != nil {
		return models.Trail{}, err
	}
	return trail, nil
}

func (usecase *TrailUsecase) CreateTrail(ctx context.Context, attributes models.CreateTrail) (models.Trail, error) {
	if err := usecase.enforceSecurity.CreateTrail(); err != nil {
		return models.Trail{}, err
	}

	return executor_factory.TransactionReturnValue(ctx, usecase.executorFactory,
		func(tx repositories.Transaction) (models.Trail, error) {
			newTrailId := uuid.New()
			if err := usecase.repository.CreateTrail(ctx, tx, attributes, newTrailId); err != nil {
				return models.Trail{}, err
			}
			return usecase.repository.GetTrailById(ctx, tx, newTrailId)
		})
}

func (usecase *TrailUsecase) UpdateTrail(ctx context.Context, attributes models.UpdateTrail) (models.Trail, error) {
	return executor_factory.TransactionReturnValue(ctx, usecase.executorFactory,
		func(tx repositories.Transaction) (models.Trail, error) {
			trail, err := usecase.repository.GetTrailById(ctx, tx, attributes.Id)
			if err != nil {
				return models.Trail{}, err
			}
			if err := usecase.enforceSecurity.UpdateTrail(trail); err != nil {
				return models.Trail{}, err
			}
			if err := usecase.repository.UpdateTrail(ctx, tx, attributes); err != nil {
				return models.Trail{}, err
			}
			return usecase.repository.GetTrailById(ctx, tx, attributes.Id)
		})
}

func (usecase *TrailUsecase) ListZonesOfTrail(ctx context.Context, trailId uuid.UUID,
	page models.PageRequest, sortParam string,
) ([]models.Zone, models.Page, error) {
	exec := usecase.executorFactory.NewExecutor()

	// 404 on an unknown trail rather than an empty listing.
	if _, err := usecase.repository.GetTrailById(ctx, exec, trailId); err != nil {
		return nil, models.Page{}, err
	}

	zones, page_, err := usecase.repository.ListZonesOfTrail(ctx, exec, trailId, page, sortParam)
	if err != nil {
		return nil, models.Page{}, err
	}
	for _, zone := range zones {
		if err := usecase.enforceSecurity.ReadZone(zone); err != nil {
			return nil, models.Page{}, err
		}
	}
	return zones, page_, nil
}

func (usecase *TrailUsecase) GetZone(ctx context.Context, zoneId uuid.UUID) (models.Zone, error) {
	zone, err := usecase.repository.GetZoneById(ctx, usecase.executorFactory.NewExecutor(), zoneId)
	if err != nil {
		return models.Zone{}, err
	}
	if err := usecase.enforceSecurity.ReadZone(zone); err != nil {
		return models.Zone{}, err
	}
	return zone, nil
}
