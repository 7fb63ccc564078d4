package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Installation is one install of the mobile app on a physical device. The
// shared secret signs the installation's own auth tokens.
type Installation struct {
	Id               uuid.UUID
	PhysicalDeviceId string
	SharedSecret     []byte
	FirstStartedAt   time.Time
	EventsCount      int
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type CreateInstallation struct {
	Id               uuid.UUID
	PhysicalDeviceId string
	FirstStartedAt   time.Time
}

type UpdateInstallation struct {
	Id               uuid.UUID
	PhysicalDeviceId *string
}

type InstallationEvent struct {
	Id             uuid.UUID
	InstallationId uuid.UUID
	Type           string
	Version        string
	Properties     json.RawMessage
	OccurredAt     time.Time
	CreatedAt      time.Time
}

type CreateInstallationEvent struct {
	InstallationId uuid.UUID
	Type           string
	Version        string
	Properties     json.RawMessage
	OccurredAt     time.Time
}

type InstallationEventFilters struct {
	InstallationId uuid.UUID
	Type           string
}
