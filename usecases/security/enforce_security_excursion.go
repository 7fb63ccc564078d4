package security

import (
	"github.com/cockroachdb/errors"

	"github.com/naturetrails/trails-backend/models"
)

type EnforceSecurityExcursion interface {
	EnforceSecurity
	ListExcursions() error
	ReadExcursion(excursion models.Excursion) error
	CreateExcursion() error
	UpdateExcursion(excursion models.Excursion) error
	WriteParticipants(excursion models.Excursion) error
}

type EnforceSecurityExcursionImpl struct {
	EnforceSecurity
	Credentials models.Credentials
}

func (e *EnforceSecurityExcursionImpl) ListExcursions() error {
	return errors.Join(
		e.Permission(models.EXCURSION_READ),
	)
}

func (e *EnforceSecurityExcursionImpl) ReadExcursion(excursion models.Excursion) error {
	if err := e.Permission(models.EXCURSION_READ); err != nil {
		return err
	}
	return e.enforceCreatorOrAdmin(excursion)
}

func (e *EnforceSecurityExcursionImpl) CreateExcursion() error {
	return errors.Join(
		e.Permission(models.EXCURSION_CREATE),
	)
}

func (e *EnforceSecurityExcursionImpl) UpdateExcursion(excursion models.Excursion) error {
	if err := e.Permission(models.EXCURSION_UPDATE); err != nil {
		return err
	}
	return e.enforceCreatorOrAdmin(excursion)
}

func (e *EnforceSecurityExcursionImpl) WriteParticipants(excursion models.Excursion) error {
	if err := e.Permission(models.PARTICIPANT_WRITE); err != nil {
		return err
	}
	return e.enforceCreatorOrAdmin(excursion)
}

// Excursions are private to their creator, admins see everything.
func (e *EnforceSecurityExcursionImpl) enforceCreatorOrAdmin(excursion models.Excursion) error {
	if e.Credentials.Role == models.ADMIN {
		return nil
	}
	userId, ok := e.Credentials.UserId()
	if !ok || !models.SameUser(userId, excursion.CreatorId) {
		return errors.Wrap(models.ForbiddenError,
			"only the excursion creator or an admin can access this excursion")
	}
	return nil
}
