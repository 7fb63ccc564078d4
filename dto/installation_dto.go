package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/naturetrails/trails-backend/models"
)

type Installation struct {
	Id               uuid.UUID `json:"id"`
	PhysicalDeviceId string    `json:"physical_device_id"`
	FirstStartedAt   time.Time `json:"first_started_at"`
	EventsCount      int       `json:"events_count"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func AdaptInstallationDto(installation models.Installation) Installation {
	return Installation{
		Id:               installation.Id,
		PhysicalDeviceId: installation.PhysicalDeviceId,
		FirstStartedAt:   installation.FirstStartedAt,
		EventsCount:      installation.EventsCount,
		CreatedAt:        installation.CreatedAt,
		UpdatedAt:        installation.UpdatedAt,
	}
}

type RegisterInstallationBody struct {
	PhysicalDeviceId string    `json:"physical_device_id" binding:"required"`
	FirstStartedAt   time.Time `json:"first_started_at"`
}

func AdaptRegisterInstallation(body RegisterInstallationBody) models.CreateInstallation {
	return models.CreateInstallation{
		PhysicalDeviceId: body.PhysicalDeviceId,
		FirstStartedAt:   body.FirstStartedAt,
	}
}

type RegisteredInstallation struct {
	Installation Installation `json:"installation"`
	AccessToken  string       `json:"access_token"`
}

type UpdateInstallationBody struct {
	PhysicalDeviceId *string `json:"physical_device_id"`
}

func AdaptUpdateInstallation(installationId uuid.UUID, body UpdateInstallationBody) models.UpdateInstallation {
	return models.UpdateInstallation{
		Id:               installationId,
		PhysicalDeviceId: body.PhysicalDeviceId,
	}
}

type InstallationEvent struct {
	Id             uuid.UUID       `json:"id"`
	InstallationId uuid.UUID       `json:"installation_id"`
	Type           string          `json:"type"`
	Version        string          `json:"version"`
	Properties     json.RawMessage `json:"properties,omitempty"`
	OccurredAt     time.Time       `json:"occurred_at"`
	CreatedAt      time.Time       `json:"created_at"`
}

func AdaptInstallationEventDto(event models.InstallationEvent) InstallationEvent {
	return InstallationEvent{
		Id:             event.Id,
		InstallationId: event.InstallationId,
		Type:           event.Type,
		Version:        event.Version,
		Properties:     event.Properties,
		OccurredAt:     event.OccurredAt,
		CreatedAt:      event.CreatedAt,
	}
}

type CreateInstallationEventBody struct {
	Type       string          `json:"type" binding:"required"`
	Version    string          `json:"version"`
	Properties json.RawMessage `json:"properties"`
	OccurredAt time.Time       `json:"occurred_at"`
}

func AdaptCreateInstallationEvent(installationId uuid.UUID,
	body CreateInstallationEventBody,
) models.CreateInstallationEvent {
	return models.CreateInstallationEvent{
		InstallationId: installationId,
		Type:           body.Type,
		Version:        body.Version,
		Properties:     body.Properties,
		OccurredAt:     body.OccurredAt,
	}
}
