package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/naturetrails/trails-backend/models"
	"github.com/naturetrails/trails-backend/repositories"
	"github.com/naturetrails/trails-backend/usecases/executor_factory"
	"github.com/naturetrails/trails-backend/usecases/security"
	"github.com/naturetrails/trails-backend/utils"
)

const (
	invitationTokenLifetime    = 7 * 24 * time.Hour
	passwordResetTokenLifetime = time.Hour
)

type UserRepository interface {
	ListUsers(ctx context.Context, exec repositories.Executor, page models.PageRequest,
		sortParam string, filters repositories.UserFilters) ([]models.User, models.Page, error)
	GetUserById(ctx context.Context, exec repositories.Executor, userId uuid.UUID) (models.User, error)
	GetUserByEmail(ctx context.Context, exec repositories.Executor, email string) (*models.User, error)
	CreateUser(ctx context.Context, exec repositories.Executor, newUserId uuid.UUID,
		attributes models.CreateUser, passwordHash []byte, active bool) error
	UpdateUser(ctx context.Context, exec repositories.Executor,
		attributes models.UpdateUser, passwordHash []byte) error
}

type tokenEncoder interface {
	EncodeToken(claims repositories.TokenClaims) (string, error)
}

type UserUsecase struct {
	enforceSecurity security.EnforceSecurityUser
	executorFactory executor_factory.ExecutorFactory
	credentials     models.Credentials
	repository      UserRepository
	jwtRepository   tokenEncoder
	emailSender     repositories.EmailSender
}

func (usecase *UserUsecase) ListUsers(ctx context.Context, page models.PageRequest,
	sortParam string, filters repositories.UserFilters,
) ([]models.User, models.Page, error) {
	if err := usecase.enforceSecurity.ListUsers(); err != nil {
		return nil, models.Page{}, err
	}
	return usecase.repository.ListUsers(ctx, usecase.executorFactory.NewExecutor(),
		page, sortParam, filters)
}

func (usecase *UserUsecase) GetUser(ctx context.Context, userId uuid.UUID) (models.User, error) {
	user, err := usecase.repository.GetUserById(ctx, usecase.executorFactory.NewExecutor(), userId)
	if err != nil {
		return models.User{}, err
	}
	if err := usecase.enforceSecurity.ReadUser(user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// CreateUser registers a new account, either through an invitation token or
// by an admin. A welcome email goes out fire-and-forget: registration does
// not fail when the mail infrastructure is down.
func (usecase *UserUsecase) CreateUser(ctx context.Context, attributes models.CreateUser) (models.User, error) {
	if err := usecase.enforceSecurity.CreateUser(attributes); err != nil {
		return models.User{}, err
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(attributes.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}

	user, err := executor_factory.TransactionReturnValue(ctx, usecase.executorFactory,
		func(tx repositories.Transaction) (models.User, error) {
			existing, err := usecase.repository.GetUserByEmail(ctx, tx, attributes.Email)
			if err != nil {
				return models.User{}, err
			}
			if existing != nil {
				return models.User{}, models.FieldValidationError{"email": "has already been taken"}
			}

			newUserId := uuid.New()
			if err := usecase.repository.CreateUser(ctx, tx, newUserId, attributes,
				passwordHash, true); err != nil {
				if repositories.IsUniqueViolationError(err) {
					return models.User{}, models.FieldValidationError{"email": "has already been taken"}
				}
				return models.User{}, err
			}
			return usecase.repository.GetUserById(ctx, tx, newUserId)
		})
	if err != nil {
		return models.User{}, err
	}

	logger := utils.LoggerFromContext(ctx)
	go func() {
		email := repositories.Email{
			To:      user.Email,
			Subject: "Welcome to the trails",
			Body:    fmt.Sprintf("Hello %s, your account is ready.", user.FirstName),
		}
		if err := usecase.emailSender.SendEmail(context.WithoutCancel(ctx), email); err != nil {
			logger.WarnContext(ctx, fmt.Sprintf("could not send welcome email: %v", err))
		}
	}()

	return user, nil
}

func (usecase *UserUsecase) UpdateUser(ctx context.Context, attributes models.UpdateUser) (models.User, error) {
	var passwordHash []byte
	if attributes.Password != nil {
		var err error
		passwordHash, err = bcrypt.GenerateFromPassword([]byte(*attributes.Password), bcrypt.DefaultCost)
		if err != nil {
			return models.User{}, err
		}
	}

	return executor_factory.TransactionReturnValue(ctx, usecase.executorFactory,
		func(tx repositories.Transaction) (models.User, error) {
			target, err := usecase.repository.GetUserById(ctx, tx, attributes.Id)
			if err != nil {
				return models.User{}, err
			}
			if err := usecase.enforceSecurity.UpdateUser(target, attributes); err != nil {
				return models.User{}, err
			}
			if err := usecase.repository.UpdateUser(ctx, tx, attributes, passwordHash); err != nil {
				return models.User{}, err
			}
			return usecase.repository.GetUserById(ctx, tx, attributes.Id)
		})
}

// CreateInvitation issues a short-lived invitation token carrying the future
// account's email and role, and mails it to the invitee.
func (usecase *UserUsecase) CreateInvitation(ctx context.Context, invitation models.CreateInvitation) (string, error) {
	if err := usecase.enforceSecurity.CreateInvitation(); err != nil {
		return "", err
	}

	existing, err := usecase.repository.GetUserByEmail(ctx, usecase.executorFactory.NewExecutor(), invitation.Email)
	if err != nil {
		return "", err
	}
	if existing != nil {
		return "", models.FieldValidationError{"email": "has already been taken"}
	}

	token, err := usecase.jwtRepository.EncodeToken(repositories.TokenClaims{
		Kind:  models.CredentialKindInvitation.String(),
		Email: invitation.Email,
		Role:  invitation.Role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(invitationTokenLifetime)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	})
	if err != nil {
		return "", err
	}

	logger := utils.LoggerFromContext(ctx)
	go func() {
		email := repositories.Email{
			To:      invitation.Email,
			Subject: "You have been invited",
			Body:    fmt.Sprintf("Use this token to register your account: %s", token),
		}
		if err := usecase.emailSender.SendEmail(context.WithoutCancel(ctx), email); err != nil {
			logger.WarnContext(ctx, fmt.Sprintf("could not send invitation email: %v", err))
		}
	}()

	return token, nil
}

// RequestPasswordReset never reports whether the email matches an account.
func (usecase *UserUsecase) RequestPasswordReset(ctx context.Context, email string) error {
	user, err := usecase.repository.GetUserByEmail(ctx, usecase.executorFactory.NewExecutor(), email)
	if err != nil {
		return err
	}
	if user == nil {
		return nil
	}

	token, err := usecase.jwtRepository.EncodeToken(repositories.TokenClaims{
		Kind:  models.CredentialKindPasswordReset.String(),
		Email: user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Id.String(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(passwordResetTokenLifetime)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	})
	if err != nil {
		return err
	}

	logger := utils.LoggerFromContext(ctx)
	go func() {
		mail := repositories.Email{
			To:      user.Email,
			Subject: "Password reset",
			Body:    fmt.Sprintf("Use this token to reset your password: %s", token),
		}
		if err := usecase.emailSender.SendEmail(context.WithoutCancel(ctx), mail); err != nil {
			logger.WarnContext(ctx, fmt.Sprintf("could not send password reset email: %v", err))
		}
	}()

	return nil
}

// CompletePasswordReset sets a new password for the user named by the
// password reset credential the request was authenticated with.
func (usecase *UserUsecase) CompletePasswordReset(ctx context.Context, newPassword string) error {
	principal, ok := usecase.credentials.Principal.(models.PasswordResetPrincipal)
	if !ok {
		return errors.Wrap(models.UnAuthorizedError, "a password reset token is required")
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return usecase.executorFactory.Transaction(ctx, func(tx repositories.Transaction) error {
		if _, err := usecase.repository.GetUserById(ctx, tx, principal.UserId); err != nil {
			return err
		}
		return usecase.repository.UpdateUser(ctx, tx,
			models.UpdateUser{Id: principal.UserId}, passwordHash)
	})
}
