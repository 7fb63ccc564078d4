package usecases

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/naturetrails/trails-backend/models"
	"github.com/naturetrails/trails-backend/repositories"
	"github.com/naturetrails/trails-backend/usecases/executor_factory"
)

const userTokenLifetime = 8 * time.Hour

type authJwtRepository interface {
	EncodeToken(claims repositories.TokenClaims) (string, error)
	PeekClaims(token string) (repositories.TokenClaims, error)
	ValidateToken(token string) (repositories.TokenClaims, error)
	ValidateTokenWithSecret(token string, secret []byte) (repositories.TokenClaims, error)
}

type authUserRepository interface {
	GetUserById(ctx context.Context, exec repositories.Executor, userId uuid.UUID) (models.User, error)
	GetUserByEmail(ctx context.Context, exec repositories.Executor, email string) (*models.User, error)
}

type authInstallationRepository interface {
	GetInstallationById(ctx context.Context, exec repositories.Executor,
		installationId uuid.UUID) (models.Installation, error)
}

// AuthUsecase issues user tokens and turns any bearer token back into
// Credentials. It backs both POST /auth and the authentication middleware.
type AuthUsecase struct {
	executorFactory        executor_factory.ExecutorFactory
	userRepository         authUserRepository
	installationRepository authInstallationRepository
	jwtRepository          authJwtRepository
}

func NewAuthUsecase(
	executorFactory executor_factory.ExecutorFactory,
	userRepository authUserRepository,
	installationRepository authInstallationRepository,
	jwtRepository authJwtRepository,
) *AuthUsecase {
	return &AuthUsecase{
		executorFactory:        executorFactory,
		userRepository:         userRepository,
		installationRepository: installationRepository,
		jwtRepository:          jwtRepository,
	}
}

// NewUserToken exchanges email and password for a signed user token. Wrong
// email and wrong password are indistinguishable to the caller.
func (usecase *AuthUsecase) NewUserToken(ctx context.Context, email, password string) (string, time.Time, error) {
	user, err := usecase.userRepository.GetUserByEmail(ctx, usecase.executorFactory.NewExecutor(), email)
	if err != nil {
		return "", time.Time{}, err
	}
	if user == nil {
		return "", time.Time{}, models.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)); err != nil {
		return "", time.Time{}, models.ErrInvalidCredentials
	}
	if !user.Active {
		return "", time.Time{}, models.ErrInactiveUser
	}

	expiresAt := time.Now().Add(userTokenLifetime)
	token, err := usecase.jwtRepository.EncodeToken(repositories.TokenClaims{
		Kind:  models.CredentialKindUser.String(),
		Email: user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Id.String(),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	})
	if err != nil {
		return "", time.Time{}, err
	}
	return token, expiresAt, nil
}

// Validate resolves a bearer token into Credentials. Installation tokens are
// signed with the installation's own shared secret, so the claims are peeked
// first to find the record that holds the verification key.
func (usecase *AuthUsecase) Validate(ctx context.Context, token string) (models.Credentials, error) {
	peeked, err := usecase.jwtRepository.PeekClaims(token)
	if err != nil {
		return models.Credentials{}, err
	}

	kind, ok := models.CredentialKindFromString(peeked.Kind)
	if !ok {
		return models.Credentials{}, errors.Wrapf(models.UnAuthorizedError,
			"unknown credential kind %q", peeked.Kind)
	}

	switch kind {
	case models.CredentialKindUser:
		return usecase.validateUserToken(ctx, token)
	case models.CredentialKindInstallation:
		return usecase.validateInstallationToken(ctx, token, peeked)
	case models.CredentialKindInvitation:
		return usecase.validateInvitationToken(token)
	case models.CredentialKindPasswordReset:
		return usecase.validatePasswordResetToken(token)
	}
	return models.Credentials{}, models.UnAuthorizedError
}

func (usecase *AuthUsecase) validateUserToken(ctx context.Context, token string) (models.Credentials, error) {
	claims, err := usecase.jwtRepository.ValidateToken(token)
	if err != nil {
		return models.Credentials{}, err
	}

	userId, err := uuid.Parse(claims.Subject)
	if err != nil {
		return models.Credentials{}, errors.Wrap(models.UnAuthorizedError, "malformed token subject")
	}

	user, err := usecase.userRepository.GetUserById(ctx, usecase.executorFactory.NewExecutor(), userId)
	if err != nil {
		if errors.Is(err, models.NotFoundError) {
			return models.Credentials{}, models.ErrUnknownUser
		}
		return models.Credentials{}, err
	}
	return user.IntoCredentials(), nil
}

func (usecase *AuthUsecase) validateInstallationToken(ctx context.Context, token string,
	peeked repositories.TokenClaims,
) (models.Credentials, error) {
	installationId, err := uuid.Parse(peeked.Subject)
	if err != nil {
		return models.Credentials{}, errors.Wrap(models.UnAuthorizedError, "malformed token subject")
	}

	installation, err := usecase.installationRepository.GetInstallationById(ctx,
		usecase.executorFactory.NewExecutor(), installationId)
	if err != nil {
		if errors.Is(err, models.NotFoundError) {
			return models.Credentials{}, errors.Wrap(models.UnAuthorizedError, "unknown installation")
		}
		return models.Credentials{}, err
	}

	if _, err := usecase.jwtRepository.ValidateTokenWithSecret(token, installation.SharedSecret); err != nil {
		return models.Credentials{}, err
	}
	return installation.IntoCredentials(), nil
}

func (usecase *AuthUsecase) validateInvitationToken(token string) (models.Credentials, error) {
	claims, err := usecase.jwtRepository.ValidateToken(token)
	if err != nil {
		return models.Credentials{}, err
	}

	return models.Credentials{
		Principal: models.InvitationPrincipal{
			Email:     claims.Email,
			Role:      models.RoleFromString(claims.Role),
			ExpiresAt: claims.ExpiresAt.Time,
		},
		ActorIdentity: models.Identity{Email: claims.Email},
		Role:          models.NO_ROLE,
	}, nil
}

func (usecase *AuthUsecase) validatePasswordResetToken(token string) (models.Credentials, error) {
	claims, err := usecase.jwtRepository.ValidateToken(token)
	if err != nil {
		return models.Credentials{}, err
	}

	userId, err := uuid.Parse(claims.Subject)
	if err != nil {
		return models.Credentials{}, errors.Wrap(models.UnAuthorizedError, "malformed token subject")
	}

	return models.Credentials{
		Principal: models.PasswordResetPrincipal{
			UserId:    userId,
			Email:     claims.Email,
			ExpiresAt: claims.ExpiresAt.Time,
		},
		ActorIdentity: models.Identity{Email: claims.Email},
		Role:          models.NO_ROLE,
	}, nil
}
