package models

import (
	"time"

	"github.com/google/uuid"
)

type Trail struct {
	Id        uuid.UUID
	Name      string
	Slug      string
	// Total length of the marked path, in meters.
	Length    int
	CreatedAt time.Time
	UpdatedAt time.Time
}

type CreateTrail struct {
	Name   string
	Slug   string
	Length int
}

type UpdateTrail struct {
	Id     uuid.UUID
	Name   *string
	Length *int
}

// TrailFilters are the query-string filters accepted by the trail listing.
type TrailFilters struct {
	Search string
}
