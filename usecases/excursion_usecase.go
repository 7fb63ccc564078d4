package usecases

import (
	"context"

	"github.com/google/uuid"

	"github.com/naturetrails/trails-backend/models"
	"github.com/naturetrails/trails-backend/repositories"
	"github.com/naturetrails/trails-backend/usecases/executor_factory"
	"github.com/naturetrails/trails-backend/usecases/security"
)

type ExcursionRepository interface {
	ListExcursions(ctx context.Context, exec repositories.Executor, page models.PageRequest,
		sortParam string, filters models.ExcursionFilters,
		loaders ...repositories.RelationLoader[models.Excursion],
	) ([]models.Excursion, models.Page, error)
	GetExcursionById(ctx context.Context, exec repositories.Executor,
		excursionId uuid.UUID) (models.Excursion, error)
	CreateExcursion(ctx context.Context, exec repositories.Executor,
		attributes models.CreateExcursion, newExcursionId uuid.UUID) error
	UpdateExcursion(ctx context.Context, exec repositories.Executor,
		attributes models.UpdateExcursion) error
	ExcursionParticipants() repositories.RelationLoader[models.Excursion]

	ListParticipantsOfExcursion(ctx context.Context, exec repositories.Executor,
		excursionId uuid.UUID) ([]models.Participant, error)
	GetParticipantById(ctx context.Context, exec repositories.Executor,
		participantId uuid.UUID) (models.Participant, error)
	CreateParticipant(ctx context.Context, exec repositories.Executor,
		attributes models.CreateParticipant, newParticipantId uuid.UUID) error
	UpdateParticipant(ctx context.Context, exec repositories.Executor,
		attributes models.UpdateParticipant) error
	DeleteParticipant(ctx context.Context, exec repositories.Executor, participantId uuid.UUID) error
}

type ExcursionUsecase struct {
	enforceSecurity security.EnforceSecurityExcursion
	executorFactory executor_factory.ExecutorFactory
	credentials     models.Credentials
	repository      ExcursionRepository
}

// ListExcursions scopes the listing to the principal's own excursions unless
// they are an admin.
func (usecase *ExcursionUsecase) ListExcursions(ctx context.Context, page models.PageRequest,
	sortParam string, filters models.ExcursionFilters,
) ([]models.Excursion, models.Page, error) {
	if err := usecase.enforceSecurity.ListExcursions(); err != nil {
		return nil, models.Page{}, err
	}

	if usecase.credentials.Role != models.ADMIN {
		userId, ok := usecase.credentials.UserId()
		if !ok {
			return nil, models.Page{}, models.ForbiddenError
		}
		filters.CreatorId = userId
	}

	return usecase.repository.ListExcursions(ctx, usecase.executorFactory.NewExecutor(),
		page, sortParam, filters, usecase.repository.ExcursionParticipants())
}

func (usecase *ExcursionUsecase) GetExcursion(ctx context.Context, excursionId uuid.UUID) (models.Excursion, error) {
	exec := usecase.executorFactory.NewExecutor()
	excursion, err := usecase.repository.GetExcursionById(ctx, exec, excursionId)
	if err != nil {
		return models.Excursion{}, err
	}
	if err := usecase.enforceSecurity.ReadExcursion(excursion); err != nil {
		return models.Excursion{}, err
	}

	enriched, err := usecase.repository.ExcursionParticipants()(ctx, exec, []models.Excursion{excursion})
	if err != nil {
		return models.Excursion{}, err
	}
	return enriched[0], nil
}

func (usecase *ExcursionUsecase) CreateExcursion(ctx context.Context,
	attributes models.CreateExcursion,
) (models.Excursion, error) {
	if err := usecase.enforceSecurity.CreateExcursion(); err != nil {
		return models.Excursion{}, err
	}

	userId, ok := usecase.credentials.UserId()
	if !ok {
		return models.Excursion{}, models.ForbiddenError
	}
	attributes.CreatorId = userId

	return executor_factory.TransactionReturnValue(ctx, usecase.executorFactory,
		func(tx repositories.Transaction) (models.Excursion, error) {
			newExcursionId := uuid.New()
			if err := usecase.repository.CreateExcursion(ctx, tx, attributes, newExcursionId); err != nil {
				return models.Excursion{}, err
			}
			return usecase.repository.GetExcursionById(ctx, tx, newExcursionId)
		})
}

func (usecase *ExcursionUsecase) UpdateExcursion(ctx context.Context,
	attributes models.UpdateExcursion,
) (models.Excursion, error) {
	return executor_factory.TransactionReturnValue(ctx, usecase.executorFactory,
		func(tx repositories.Transaction) (models.Excursion, error) {
			excursion, err := usecase.repository.GetExcursionById(ctx, tx, attributes.Id)
			if err != nil {
				return models.Excursion{}, err
			}
			if err := usecase.enforceSecurity.UpdateExcursion(excursion); err != nil {
				return models.Excursion{}, err
			}
			if err := usecase.repository.UpdateExcursion(ctx, tx, attributes); err != nil {
				return models.Excursion{}, err
			}
			return usecase.repository.GetExcursionById(ctx, tx, attributes.Id)
		})
}

func (usecase *ExcursionUsecase) ListParticipants(ctx context.Context, excursionId uuid.UUID) ([]models.Participant, error) {
	exec := usecase.executorFactory.NewExecutor()
	excursion, err := usecase.repository.GetExcursionById(ctx, exec, excursionId)
	if err != nil {
		return nil, err
	}
	if err := usecase.enforceSecurity.ReadExcursion(excursion); err != nil {
		return nil, err
	}
	return usecase.repository.ListParticipantsOfExcursion(ctx, exec, excursionId)
}

func (usecase *ExcursionUsecase) CreateParticipant(ctx context.Context,
	attributes models.CreateParticipant,
) (models.Participant, error) {
	return executor_factory.TransactionReturnValue(ctx, usecase.executorFactory,
		func(tx repositories.Transaction) (models.Participant, error) {
			excursion, err := usecase.repository.GetExcursionById(ctx, tx, attributes.ExcursionId)
			if err != nil {
				return models.Participant{}, err
			}
			if err := usecase.enforceSecurity.WriteParticipants(excursion); err != nil {
				return models.Participant{}, err
			}

			newParticipantId := uuid.New()
			if err := usecase.repository.CreateParticipant(ctx, tx, attributes, newParticipantId); err != nil {
				return models.Participant{}, err
			}
			return usecase.repository.GetParticipantById(ctx, tx, newParticipantId)
		})
}

func (usecase *ExcursionUsecase) UpdateParticipant(ctx context.Context,
	attributes models.UpdateParticipant,
) (models.Participant, error) {
	return executor_factory.TransactionReturnValue(ctx, usecase.executorFactory,
		func(tx repositories.Transaction) (models.Participant, error) {
			participant, err := usecase.repository.GetParticipantById(ctx, tx, attributes.Id)
			if err != nil {
				return models.Participant{}, err
			}
			excursion, err := usecase.repository.GetExcursionById(ctx, tx, participant.ExcursionId)
			if err != nil {
				return models.Participant{}, err
			}
			if err := usecase.enforceSecurity.WriteParticipants(excursion); err != nil {
				return models.Participant{}, err
			}

			if err := usecase.repository.UpdateParticipant(ctx, tx, attributes); err != nil {
				return models.Participant{}, err
			}
			return usecase.repository.GetParticipantById(ctx, tx, attributes.Id)
		})
}

func (usecase *ExcursionUsecase) DeleteParticipant(ctx context.Context, participantId uuid.UUID) error {
	return usecase.executorFactory.Transaction(ctx, func(tx repositories.Transaction) error {
		participant, err := usecase.repository.GetParticipantById(ctx, tx, participantId)
		if err != nil {
			return err
		}
		excursion, err := usecase.repository.GetExcursionById(ctx, tx, participant.ExcursionId)
		if err != nil {
			return err
		}
		if err := usecase.enforceSecurity.WriteParticipants(excursion); err != nil {
			return err
		}
		return usecase.repository.DeleteParticipant(ctx, tx, participantId)
	})
}
