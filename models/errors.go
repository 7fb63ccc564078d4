package models

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// Base errors, related to default API status codes
var (
	// BadParameterError is rendered with the http status code 400
	BadParameterError = errors.New("bad parameter")

	// UnAuthorizedError is rendered with the http status code 401
	UnAuthorizedError = errors.New("unauthorized")

	// ForbiddenError is rendered with the http status code 403
	ForbiddenError = errors.New("forbidden")

	// NotFoundError is rendered with the http status code 404
	NotFoundError = errors.New("not found")

	// ConflictError is rendered with the http status code 409
	ConflictError = errors.New("duplicate value")
)

// Authentication related errors
var (
	ErrUnknownUser        = errors.Wrap(NotFoundError, "unknown user")
	ErrInactiveUser       = errors.Wrap(UnAuthorizedError, "user account is inactive")
	ErrInvalidCredentials = errors.Wrap(UnAuthorizedError, "invalid email or password")
)

// DB related errors
var ErrIgnoreRollBackError = errors.New("ignore rollback error")

// FieldValidationError accumulates field-scoped validation failures and is
// rendered with the http status code 422.
type FieldValidationError map[string]string

func (e FieldValidationError) Error() string {
	return fmt.Sprintf("%v", map[string]string(e))
}

// NewProtectedFieldError is raised when a principal submits a changed value
// for an attribute they are not allowed to modify.
func NewProtectedFieldError(field, requiredPrivilege string) error {
	return errors.Wrapf(ForbiddenError,
		"you are not allowed to change the value of %s (requires %s)", field, requiredPrivilege)
}
