package utils

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/naturetrails/trails-backend/dto"
	"github.com/naturetrails/trails-backend/models"
)

func ParseAuthorizationBearerHeader(header http.Header) (string, error) {
	authorization := header.Get("Authorization")
	if authorization == "" {
		return "", nil
	}

	authHeader := strings.Split(authorization, "Bearer ")
	if len(authHeader) != 2 {
		return "", fmt.Errorf("malformed token: %w", models.UnAuthorizedError)
	}
	return authHeader[1], nil
}

type credentialsValidator interface {
	Validate(ctx context.Context, token string) (models.Credentials, error)
}

type Authentication struct {
	Validator credentialsValidator
}

type authOptions struct {
	allowInactive bool
}

type AuthOption func(*authOptions)

// AllowInactive accepts a user credential even when the account has been
// deactivated. Used by routes a deactivated user may still reach with a token
// issued before the deactivation, like reading their own account.
func AllowInactive() AuthOption {
	return func(o *authOptions) {
		o.allowInactive = true
	}
}

func identityAttr(identity models.Identity) (attr slog.Attr, ok bool) {
	if identity.Email != "" {
		return slog.String("Email", identity.Email), true
	}
	if identity.InstallationId != uuid.Nil {
		return slog.String("InstallationId", identity.InstallationId.String()), true
	}
	return slog.Attr{}, false
}

// AuthedBy authenticates the request and enforces that the presented
// credential is one of the allowed kinds. On success the resolved credentials
// are stored in the request context and the per-request logger is enriched
// with the actor's identity.
func (a *Authentication) AuthedBy(kinds ...models.CredentialKind) gin.HandlerFunc {
	return a.AuthedByWith(kinds)
}

func (a *Authentication) AuthedByWith(kinds []models.CredentialKind, opts ...AuthOption) gin.HandlerFunc {
	options := authOptions{}
	for _, opt := range opts {
		opt(&options)
	}

	return func(c *gin.Context) {
		ctx := c.Request.Context()

		token, err := ParseAuthorizationBearerHeader(c.Request.Header)
		if err != nil {
			_ = c.Error(fmt.Errorf("could not parse authorization header: %w", err))
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				dto.NewApiErrorResponse("malformed authorization header"))
			return
		}
		if token == "" {
			_ = c.Error(errors.Wrap(models.UnAuthorizedError, "no credentials presented"))
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				dto.NewApiErrorResponse("no credentials presented"))
			return
		}

		credentials, err := a.Validator.Validate(ctx, token)
		if err != nil {
			_ = c.Error(fmt.Errorf("validator.Validate error: %w", err))
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				dto.NewApiErrorResponse("invalid or expired token"))
			return
		}

		if !slices.Contains(kinds, credentials.Principal.Kind()) {
			_ = c.Error(errors.Wrapf(models.UnAuthorizedError,
				"credential kind %s is not accepted here", credentials.Principal.Kind()))
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				dto.NewApiErrorResponse("this credential cannot access this resource"))
			return
		}

		if user, ok := credentials.Principal.(models.UserPrincipal); ok {
			if !user.User.Active && !options.allowInactive {
				_ = c.Error(models.ErrInactiveUser)
				c.AbortWithStatusJSON(http.StatusUnauthorized,
					dto.NewApiErrorResponse("user account is inactive"))
				return
			}
		}

		newContext := StoreCredentialsInContext(ctx, credentials)
		if attr, ok := identityAttr(credentials.ActorIdentity); ok {
			logger := LoggerFromContext(newContext).
				With(attr).
				With(slog.String("Role", credentials.Role.String()))
			newContext = StoreLoggerInContext(newContext, logger)
		}
		c.Request = c.Request.WithContext(newContext)
		c.Next()
	}
}
