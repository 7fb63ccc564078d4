package models

import (
	"time"

	"github.com/google/uuid"
)

type Participant struct {
	Id          uuid.UUID
	ExcursionId uuid.UUID
	Name        string
	CreatedAt   time.Time
}

type CreateParticipant struct {
	ExcursionId uuid.UUID
	Name        string
}

type UpdateParticipant struct {
	Id          uuid.UUID
	ExcursionId uuid.UUID
	Name        string
}
