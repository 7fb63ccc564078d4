package security

import (
	"github.com/cockroachdb/errors"

	"github.com/naturetrails/trails-backend/models"
)

// EnforceSecurity is the base check every resource policy embeds. Permission
// returns a ForbiddenError naming the missing privilege, so the message that
// reaches the client says what was required.
type EnforceSecurity interface {
	Permission(permission models.Permission) error
}

type EnforceSecurityImpl struct {
	Credentials models.Credentials
}

func NewEnforceSecurity(credentials models.Credentials) *EnforceSecurityImpl {
	return &EnforceSecurityImpl{
		Credentials: credentials,
	}
}

func (e *EnforceSecurityImpl) Permission(permission models.Permission) error {
	if !e.Credentials.Role.HasPermission(permission) {
		return errors.Wrapf(models.ForbiddenError,
			"missing permission %s", permission.String())
	}
	return nil
}
