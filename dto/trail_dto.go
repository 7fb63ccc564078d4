package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/naturetrails/trails-backend/models"
)

type Trail struct {
	Id        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	Length    int       `json:"length"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func AdaptTrailDto(trail models.Trail) Trail {
	return Trail{
		Id:        trail.Id,
		Name:      trail.Name,
		Slug:      trail.Slug,
		Length:    trail.Length,
		CreatedAt: trail.CreatedAt,
		UpdatedAt: trail.UpdatedAt,
	}
}

type CreateTrailBody struct {
	Name   string `json:"name" binding:"required"`
	Slug   string `json:"slug" binding:"required"`
	Length int    `json:"length" binding:"omitempty,gte=0"`
}

func AdaptCreateTrail(body CreateTrailBody) models.CreateTrail {
	return models.CreateTrail{
		Name:   body.Name,
		Slug:   body.Slug,
		Length: body.Length,
	}
}

type UpdateTrailBody struct {
	Name   *string `json:"name"`
	Length *int    `json:"length" binding:"omitempty,gte=0"`
}

func AdaptUpdateTrail(trailId uuid.UUID, body UpdateTrailBody) models.UpdateTrail {
	return models.UpdateTrail{
		Id:     trailId,
		Name:   body.Name,
		Length: body.Length,
	}
}

type Zone struct {
	Id          uuid.UUID `json:"id"`
	TrailId     uuid.UUID `json:"trail_id"`
	Position    int       `json:"position"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

func AdaptZoneDto(zone models.Zone) Zone {
	return Zone{
		Id:          zone.Id,
		TrailId:     zone.TrailId,
		Position:    zone.Position,
		Name:        zone.Name,
		Description: zone.Description,
		CreatedAt:   zone.CreatedAt,
	}
}
