package dbmodels

import (
	"time"

	"github.com/google/uuid"

	"github.com/naturetrails/trails-backend/models"
	"github.com/naturetrails/trails-backend/utils"
)

type DBZone struct {
	Id          uuid.UUID `db:"id"`
	TrailId     uuid.UUID `db:"trail_id"`
	Position    int       `db:"position"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	CreatedAt   time.Time `db:"created_at"`
}

const TABLE_ZONES = "zones"

var SelectZoneColumn = utils.ColumnList[DBZone]()

func AdaptZone(db DBZone) (models.Zone, error) {
	return models.Zone{
		Id:          db.Id,
		TrailId:     db.TrailId,
		Position:    db.Position,
		Name:        db.Name,
		Description: db.Description,
		CreatedAt:   db.CreatedAt,
	}, nil
}
