package dbmodels

import (
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	"github.com/naturetrails/trails-backend/models"
	"github.com/naturetrails/trails-backend/pure_utils"
	"github.com/naturetrails/trails-backend/utils"
)

type DBExcursion struct {
	Id        uuid.UUID   `db:"id"`
	TrailId   uuid.UUID   `db:"trail_id"`
	CreatorId uuid.UUID   `db:"creator_id"`
	Name      string      `db:"name"`
	PlannedAt time.Time   `db:"planned_at"`
	Themes    []string    `db:"themes"`
	ZoneIds   []uuid.UUID `db:"zone_ids"`
	CreatedAt time.Time   `db:"created_at"`
	UpdatedAt time.Time   `db:"updated_at"`
}

const TABLE_EXCURSIONS = "excursions"

var SelectExcursionColumn = utils.ColumnList[DBExcursion]()

func AdaptExcursion(db DBExcursion) (models.Excursion, error) {
	themes, err := pure_utils.MapErr(db.Themes, func(theme string) (models.Theme, error) {
		parsed, ok := models.ThemeFromString(theme)
		if !ok {
			return "", errors.Newf("unknown excursion theme %q", theme)
		}
		return parsed, nil
	})
	if err != nil {
		return models.Excursion{}, err
	}

	return models.Excursion{
		Id:        db.Id,
		TrailId:   db.TrailId,
		CreatorId: db.CreatorId,
		Name:      db.Name,
		PlannedAt: db.PlannedAt,
		Themes:    themes,
		ZoneIds:   db.ZoneIds,
		CreatedAt: db.CreatedAt,
		UpdatedAt: db.UpdatedAt,
	}, nil
}
