package models

import (
	"time"

	"github.com/google/uuid"
)

// PointOfInterest is a place on the trail where a species can be observed.
type PointOfInterest struct {
	Id        uuid.UUID
	ZoneId    uuid.UUID
	SpeciesId uuid.UUID
	Theme     Theme
	// Ordinal of the point within its zone.
	Position  int
	CreatedAt time.Time

	Species *Species
}

type PoiFilters struct {
	ZoneId           uuid.UUID
	Theme            Theme
	CommonNameSearch string
}
