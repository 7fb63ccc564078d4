package models

import (
	"time"

	"github.com/google/uuid"
)

type Zone struct {
	Id          uuid.UUID
	TrailId     uuid.UUID
	// Ordinal of the zone along the trail, starting at 1.
	Position    int
	Name        string
	Description string
	CreatedAt   time.Time
}
