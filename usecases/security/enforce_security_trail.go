package security

import (
	"github.com/cockroachdb/errors"

	"github.com/naturetrails/trails-backend/models"
)

type EnforceSecurityTrail interface {
	EnforceSecurity
	ListTrails() error
	ReadTrail(trail models.Trail) error
	CreateTrail() error
	UpdateTrail(trail models.Trail) error
	ReadZone(zone models.Zone) error
	ReadSpecies() error
	ReadPointOfInterest() error
}

type EnforceSecurityTrailImpl struct {
	EnforceSecurity
	Credentials models.Credentials
}

func (e *EnforceSecurityTrailImpl) ListTrails() error {
	return errors.Join(
		e.Permission(models.TRAIL_READ),
	)
}

func (e *EnforceSecurityTrailImpl) ReadTrail(trail models.Trail) error {
	return errors.Join(
		e.Permission(models.TRAIL_READ),
	)
}

func (e *EnforceSecurityTrailImpl) CreateTrail() error {
	return errors.Join(
		e.Permission(models.TRAIL_CREATE),
	)
}

func (e *EnforceSecurityTrailImpl) UpdateTrail(trail models.Trail) error {
	return errors.Join(
		e.Permission(models.TRAIL_UPDATE),
	)
}

func (e *EnforceSecurityTrailImpl) ReadZone(zone models.Zone) error {
	return errors.Join(
		e.Permission(models.ZONE_READ),
	)
}

func (e *EnforceSecurityTrailImpl) ReadSpecies() error {
	return errors.Join(
		e.Permission(models.SPECIES_READ),
	)
}

func (e *EnforceSecurityTrailImpl) ReadPointOfInterest() error {
	return errors.Join(
		e.Permission(models.POI_READ),
	)
}
