package security

import (
	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	"github.com/naturetrails/trails-backend/models"
)

type EnforceSecurityInstallation interface {
	EnforceSecurity
	ListInstallations() error
	ReadInstallation(installation models.Installation) error
	CreateInstallation() error
	UpdateInstallation(installation models.Installation) error
	CreateInstallationEvent(installation models.Installation) error
	ListInstallationEvents(installation models.Installation) error
}

type EnforceSecurityInstallationImpl struct {
	EnforceSecurity
	Credentials models.Credentials
}

func (e *EnforceSecurityInstallationImpl) ListInstallations() error {
	return errors.Join(
		e.Permission(models.INSTALLATION_LIST),
	)
}

func (e *EnforceSecurityInstallationImpl) ReadInstallation(installation models.Installation) error {
	if err := e.Permission(models.INSTALLATION_READ); err != nil {
		return err
	}
	return e.enforceSelfOrAdmin(installation.Id)
}

func (e *EnforceSecurityInstallationImpl) CreateInstallation() error {
	// Device self-registration happens before any credential exists.
	return nil
}

func (e *EnforceSecurityInstallationImpl) UpdateInstallation(installation models.Installation) error {
	if err := e.Permission(models.INSTALLATION_UPDATE); err != nil {
		return err
	}
	return e.enforceSelfOrAdmin(installation.Id)
}

func (e *EnforceSecurityInstallationImpl) CreateInstallationEvent(installation models.Installation) error {
	if err := e.Permission(models.INSTALLATION_EVENT_CREATE); err != nil {
		return err
	}
	return e.enforceSelfOrAdmin(installation.Id)
}

func (e *EnforceSecurityInstallationImpl) ListInstallationEvents(installation models.Installation) error {
	return errors.Join(
		e.Permission(models.INSTALLATION_EVENT_READ),
	)
}

// An installation credential only reaches its own record.
func (e *EnforceSecurityInstallationImpl) enforceSelfOrAdmin(installationId uuid.UUID) error {
	if e.Credentials.Role == models.ADMIN {
		return nil
	}
	principal, ok := e.Credentials.Principal.(models.InstallationPrincipal)
	if !ok || principal.InstallationId != installationId {
		return errors.Wrap(models.ForbiddenError,
			"installation credentials only grant access to their own installation")
	}
	return nil
}
