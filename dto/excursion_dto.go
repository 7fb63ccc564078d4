package dto

import (
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	"github.com/naturetrails/trails-backend/models"
	"github.com/naturetrails/trails-backend/pure_utils"
)

type Excursion struct {
	Id           uuid.UUID     `json:"id"`
	TrailId      uuid.UUID     `json:"trail_id"`
	CreatorId    uuid.UUID     `json:"creator_id"`
	Name         string        `json:"name"`
	PlannedAt    time.Time     `json:"planned_at"`
	Themes       []string      `json:"themes"`
	ZoneIds      []uuid.UUID   `json:"zone_ids"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
	Participants []Participant `json:"participants,omitempty"`
}

func AdaptExcursionDto(excursion models.Excursion) Excursion {
	return Excursion{
		Id:        excursion.Id,
		TrailId:   excursion.TrailId,
		CreatorId: excursion.CreatorId,
		Name:      excursion.Name,
		PlannedAt: excursion.PlannedAt,
		Themes: pure_utils.Map(excursion.Themes,
			func(t models.Theme) string { return string(t) }),
		ZoneIds:      excursion.ZoneIds,
		CreatedAt:    excursion.CreatedAt,
		UpdatedAt:    excursion.UpdatedAt,
		Participants: pure_utils.Map(excursion.Participants, AdaptParticipantDto),
	}
}

func adaptThemes(raw []string) ([]models.Theme, error) {
	themes := make([]models.Theme, len(raw))
	for i, s := range raw {
		theme, ok := models.ThemeFromString(s)
		if !ok {
			return nil, errors.Wrapf(models.BadParameterError, "unknown theme %q", s)
		}
		themes[i] = theme
	}
	return themes, nil
}

type CreateExcursionBody struct {
	TrailId   uuid.UUID   `json:"trail_id" binding:"required"`
	Name      string      `json:"name" binding:"required"`
	PlannedAt time.Time   `json:"planned_at" binding:"required"`
	Themes    []string    `json:"themes" binding:"omitempty,dive,oneof=bird butterfly flower tree"`
	ZoneIds   []uuid.UUID `json:"zone_ids"`
}

func AdaptCreateExcursion(body CreateExcursionBody) (models.CreateExcursion, error) {
	themes, err := adaptThemes(body.Themes)
	if err != nil {
		return models.CreateExcursion{}, err
	}
	return models.CreateExcursion{
		TrailId:   body.TrailId,
		Name:      body.Name,
		PlannedAt: body.PlannedAt,
		Themes:    themes,
		ZoneIds:   body.ZoneIds,
	}, nil
}

type UpdateExcursionBody struct {
	Name      *string     `json:"name"`
	PlannedAt *time.Time  `json:"planned_at"`
	Themes    []string    `json:"themes" binding:"omitempty,dive,oneof=bird butterfly flower tree"`
	ZoneIds   []uuid.UUID `json:"zone_ids"`
}

func AdaptUpdateExcursion(excursionId uuid.UUID, body UpdateExcursionBody) (models.UpdateExcursion, error) {
	themes, err := adaptThemes(body.Themes)
	if err != nil {
		return models.UpdateExcursion{}, err
	}
	return models.UpdateExcursion{
		Id:        excursionId,
		Name:      body.Name,
		PlannedAt: body.PlannedAt,
		Themes:    themes,
		ZoneIds:   body.ZoneIds,
	}, nil
}

type Participant struct {
	Id          uuid.UUID `json:"id"`
	ExcursionId uuid.UUID `json:"excursion_id"`
	Name        string    `json:"name"`
	CreatedAt   time.Time `json:"created_at"`
}

func AdaptParticipantDto(participant models.Participant) Participant {
	return Participant{
		Id:          participant.Id,
		ExcursionId: participant.ExcursionId,
		Name:        participant.Name,
		CreatedAt:   participant.CreatedAt,
	}
}

type ParticipantBody struct {
	Name string `json:"name" binding:"required"`
}
