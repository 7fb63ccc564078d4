package usecases

import (
	"context"
	"crypto/rand"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/naturetrails/trails-backend/models"
	"github.com/naturetrails/trails-backend/repositories"
	"github.com/naturetrails/trails-backend/usecases/executor_factory"
	"github.com/naturetrails/trails-backend/usecases/security"
)

const installationTokenLifetime = 24 * time.Hour

type InstallationRepository interface {
	ListInstallations(ctx context.Context, exec repositories.Executor, page models.PageRequest,
		sortParam string) ([]models.Installation, models.Page, error)
	GetInstallationById(ctx context.Context, exec repositories.Executor,
		installationId uuid.UUID) (models.Installation, error)
	GetInstallationByPhysicalDeviceId(ctx context.Context, exec repositories.Executor,
		physicalDeviceId string) (*models.Installation, error)
	CreateInstallation(ctx context.Context, exec repositories.Executor,
		attributes models.CreateInstallation, sharedSecret []byte) error
	UpdateInstallation(ctx context.Context, exec repositories.Executor,
		attributes models.UpdateInstallation) error
	CreateInstallationEvent(ctx context.Context, exec repositories.Executor,
		attributes models.CreateInstallationEvent, newEventId uuid.UUID) error
	GetInstallationEventById(ctx context.Context, exec repositories.Executor,
		eventId uuid.UUID) (models.InstallationEvent, error)
	ListInstallationEvents(ctx context.Context, exec repositories.Executor, page models.PageRequest,
		sortParam string, filters models.InstallationEventFilters,
	) ([]models.InstallationEvent, models.Page, error)
}

type installationTokenEncoder interface {
	EncodeTokenWithSecret(claims repositories.TokenClaims, secret []byte) (string, error)
}

type InstallationUsecase struct {
	enforceSecurity security.EnforceSecurityInstallation
	executorFactory executor_factory.ExecutorFactory
	repository      InstallationRepository
	jwtRepository   installationTokenEncoder
}

func (usecase *InstallationUsecase) ListInstallations(ctx context.Context, page models.PageRequest,
	sortParam string,
) ([]models.Installation, models.Page, error) {
	if err := usecase.enforceSecurity.ListInstallations(); err != nil {
		return nil, models.Page{}, err
	}
	return usecase.repository.ListInstallations(ctx, usecase.executorFactory.NewExecutor(), page, sortParam)
}

func (usecase *InstallationUsecase) GetInstallation(ctx context.Context,
	installationId uuid.UUID,
) (models.Installation, error) {
	installation, err := usecase.repository.GetInstallationById(ctx,
		usecase.executorFactory.NewExecutor(), installationId)
	if err != nil {
		return models.Installation{}, err
	}
	if err := usecase.enforceSecurity.ReadInstallation(installation); err != nil {
		return models.Installation{}, err
	}
	return installation, nil
}

// RegisterInstallation is the device self-registration upsert: a device
// re-registering with a known physical id gets its existing installation
// back, a new device gets a fresh record and shared secret. Both paths end
// with a signed installation token.
func (usecase *InstallationUsecase) RegisterInstallation(ctx context.Context,
	attributes models.CreateInstallation,
) (models.Installation, string, error) {
	if err := usecase.enforceSecurity.CreateInstallation(); err != nil {
		return models.Installation{}, "", err
	}

	installation, err := executor_factory.TransactionReturnValue(ctx, usecase.executorFactory,
		func(tx repositories.Transaction) (models.Installation, error) {
			existing, err := usecase.repository.GetInstallationByPhysicalDeviceId(
				ctx, tx, attributes.PhysicalDeviceId)
			if err != nil {
				return models.Installation{}, err
			}
			if existing != nil {
				return *existing, nil
			}

			sharedSecret := make([]byte, 32)
			if _, err := rand.Read(sharedSecret); err != nil {
				return models.Installation{}, err
			}

			attributes.Id = uuid.New()
			if attributes.FirstStartedAt.IsZero() {
				attributes.FirstStartedAt = time.Now()
			}
			if err := usecase.repository.CreateInstallation(ctx, tx, attributes, sharedSecret); err != nil {
				return models.Installation{}, err
			}
			return usecase.repository.GetInstallationById(ctx, tx, attributes.Id)
		})
	if err != nil {
		return models.Installation{}, "", err
	}

	token, err := usecase.newInstallationToken(installation)
	if err != nil {
		return models.Installation{}, "", err
	}
	return installation, token, nil
}

func (usecase *InstallationUsecase) newInstallationToken(installation models.Installation) (string, error) {
	return usecase.jwtRepository.EncodeTokenWithSecret(repositories.TokenClaims{
		Kind: models.CredentialKindInstallation.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   installation.Id.String(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(installationTokenLifetime)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}, installation.SharedSecret)
}

func (usecase *InstallationUsecase) UpdateInstallation(ctx context.Context,
	attributes models.UpdateInstallation,
) (models.Installation, error) {
	return executor_factory.TransactionReturnValue(ctx, usecase.executorFactory,
		func(tx repositories.Transaction) (models.Installation, error) {
			installation, err := usecase.repository.GetInstallationById(ctx, tx, attributes.Id)
			if err != nil {
				return models.Installation{}, err
			}
			if err := usecase.enforceSecurity.UpdateInstallation(installation); err != nil {
				return models.Installation{}, err
			}
			if err := usecase.repository.UpdateInstallation(ctx, tx, attributes); err != nil {
				return models.Installation{}, err
			}
			return usecase.repository.GetInstallationById(ctx, tx, attributes.Id)
		})
}

// CreateInstallationEvent inserts the event and bumps the installation's
// event counter in one transaction.
func (usecase *InstallationUsecase) CreateInstallationEvent(ctx context.Context,
	attributes models.CreateInstallationEvent,
) (models.InstallationEvent, error) {
	return executor_factory.TransactionReturnValue(ctx, usecase.executorFactory,
		func(tx repositories.Transaction) (models.InstallationEvent, error) {
			installation, err := usecase.repository.GetInstallationById(ctx, tx, attributes.InstallationId)
			if err != nil {
				return models.InstallationEvent{}, err
			}
			if err := usecase.enforceSecurity.CreateInstallationEvent(installation); err != nil {
				return models.InstallationEvent{}, err
			}

			if attributes.OccurredAt.IsZero() {
				attributes.OccurredAt = time.Now()
			}

			newEventId := uuid.New()
			if err := usecase.repository.CreateInstallationEvent(ctx, tx, attributes, newEventId); err != nil {
				return models.InstallationEvent{}, err
			}
			return usecase.repository.GetInstallationEventById(ctx, tx, newEventId)
		})
}

func (usecase *InstallationUsecase) ListInstallationEvents(ctx context.Context, page models.PageRequest,
	sortParam string, filters models.InstallationEventFilters,
) ([]models.InstallationEvent, models.Page, error) {
	exec := usecase.executorFactory.NewExecutor()
	installation, err := usecase.repository.GetInstallationById(ctx, exec, filters.InstallationId)
	if err != nil {
		return nil, models.Page{}, err
	}
	if err := usecase.enforceSecurity.ListInstallationEvents(installation); err != nil {
		return nil, models.Page{}, err
	}
	return usecase.repository.ListInstallationEvents(ctx, exec, page, sortParam, filters)
}
