package models

import (
	"time"

	"github.com/google/uuid"
)

type Excursion struct {
	Id        uuid.UUID
	TrailId   uuid.UUID
	CreatorId uuid.UUID
	Name      string
	PlannedAt time.Time
	Themes    []Theme
	ZoneIds   []uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time

	Participants []Participant
}

type CreateExcursion struct {
	TrailId   uuid.UUID
	CreatorId uuid.UUID
	Name      string
	PlannedAt time.Time
	Themes    []Theme
	ZoneIds   []uuid.UUID
}

type UpdateExcursion struct {
	Id        uuid.UUID
	Name      *string
	PlannedAt *time.Time
	Themes    []Theme
	ZoneIds   []uuid.UUID
}

type ExcursionFilters struct {
	TrailId uuid.UUID
	// Restricts the listing to excursions created by this user. Set by the
	// policy scope for non-admin principals.
	CreatorId uuid.UUID
	Search    string
}
