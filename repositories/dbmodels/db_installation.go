package dbmodels

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/guregu/null/v5"

	"github.com/naturetrails/trails-backend/models"
	"github.com/naturetrails/trails-backend/utils"
)

type DBInstallation struct {
	Id               uuid.UUID `db:"id"`
	PhysicalDeviceId string    `db:"physical_device_id"`
	SharedSecret     []byte    `db:"shared_secret"`
	FirstStartedAt   time.Time `db:"first_started_at"`
	EventsCount      int       `db:"events_count"`
	CreatedAt        time.Time `db:"created_at"`
	UpdatedAt        time.Time `db:"updated_at"`
}

type DBInstallationEvent struct {
	Id             uuid.UUID       `db:"id"`
	InstallationId uuid.UUID       `db:"installation_id"`
	Type           string          `db:"type"`
	Version        null.String     `db:"version"`
	Properties     json.RawMessage `db:"properties"`
	OccurredAt     time.Time       `db:"occurred_at"`
	CreatedAt      time.Time       `db:"created_at"`
}

const (
	TABLE_INSTALLATIONS       = "installations"
	TABLE_INSTALLATION_EVENTS = "installation_events"
)

var (
	SelectInstallationColumn      = utils.ColumnList[DBInstallation]()
	SelectInstallationEventColumn = utils.ColumnList[DBInstallationEvent]()
)

func AdaptInstallation(db DBInstallation) (models.Installation, error) {
	return models.Installation{
		Id:               db.Id,
		PhysicalDeviceId: db.PhysicalDeviceId,
		SharedSecret:     db.SharedSecret,
		FirstStartedAt:   db.FirstStartedAt,
		EventsCount:      db.EventsCount,
		CreatedAt:        db.CreatedAt,
		UpdatedAt:        db.UpdatedAt,
	}, nil
}

func AdaptInstallationEvent(db DBInstallationEvent) (models.InstallationEvent, error) {
	return models.InstallationEvent{
		Id:             db.Id,
		InstallationId: db.InstallationId,
		Type:           db.Type,
		Version:        db.Version.ValueOrZero(),
		Properties:     db.Properties,
		OccurredAt:     db.OccurredAt,
		CreatedAt:      db.CreatedAt,
	}, nil
}
