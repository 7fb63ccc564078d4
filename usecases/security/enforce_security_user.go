package security

import (
	"github.com/cockroachdb/errors"

	"github.com/naturetrails/trails-backend/models"
)

type EnforceSecurityUser interface {
	EnforceSecurity
	ListUsers() error
	ReadUser(user models.User) error
	CreateUser(input models.CreateUser) error
	UpdateUser(targetUser models.User, updateUser models.UpdateUser) error
	CreateInvitation() error
}

type EnforceSecurityUserImpl struct {
	EnforceSecurity
	Credentials models.Credentials
}

func (e *EnforceSecurityUserImpl) ListUsers() error {
	return errors.Join(
		e.Permission(models.USER_LIST),
	)
}

func (e *EnforceSecurityUserImpl) ReadUser(user models.User) error {
	if err := e.Permission(models.USER_READ); err != nil {
		return err
	}
	if e.Credentials.Role == models.ADMIN {
		return nil
	}
	userId, ok := e.Credentials.UserId()
	if !ok || !models.SameUser(userId, user.Id) {
		return errors.Wrap(models.ForbiddenError, "users can only read their own account")
	}
	return nil
}

func (e *EnforceSecurityUserImpl) CreateUser(input models.CreateUser) error {
	// Registration through an invitation token carries its own role, anything
	// else requires the create permission.
	if e.Credentials.Principal != nil &&
		e.Credentials.Principal.Kind() == models.CredentialKindInvitation {
		invitation := e.Credentials.Principal.(models.InvitationPrincipal)
		if input.Email != invitation.Email {
			return errors.Wrap(models.ForbiddenError,
				"invitation token was issued for another email address")
		}
		if input.Role != invitation.Role {
			return errors.Wrap(models.ForbiddenError,
				"invitation token was issued for another role")
		}
		return nil
	}

	if input.Role == models.ADMIN && e.Credentials.Role != models.ADMIN {
		return errors.Wrap(models.ForbiddenError, "only admins can create admins")
	}

	return errors.Join(
		e.Permission(models.USER_CREATE),
	)
}

func (e *EnforceSecurityUserImpl) UpdateUser(targetUser models.User, updateUser models.UpdateUser) error {
	if err := e.Permission(models.USER_UPDATE); err != nil {
		return err
	}

	if e.Credentials.Role == models.ADMIN {
		return nil
	}

	userId, ok := e.Credentials.UserId()
	if !ok || !models.SameUser(userId, targetUser.Id) {
		return errors.Wrap(models.ForbiddenError, "non-admins can only update themselves")
	}

	// active, email and role are admin-only attributes: reject a changed value,
	// let an unchanged resubmission through.
	if updateUser.Active != nil && *updateUser.Active != targetUser.Active {
		return models.NewProtectedFieldError("active", models.ADMIN.String())
	}
	if updateUser.Email != nil && *updateUser.Email != targetUser.Email {
		return models.NewProtectedFieldError("email", models.ADMIN.String())
	}
	if updateUser.Role != nil && *updateUser.Role != targetUser.Role {
		return models.NewProtectedFieldError("role", models.ADMIN.String())
	}

	return nil
}

func (e *EnforceSecurityUserImpl) CreateInvitation() error {
	return errors.Join(
		e.Permission(models.INVITATION_CREATE),
	)
}
