package dbmodels

import (
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	"github.com/naturetrails/trails-backend/models"
	"github.com/naturetrails/trails-backend/utils"
)

type DBPointOfInterest struct {
	Id        uuid.UUID `db:"id"`
	ZoneId    uuid.UUID `db:"zone_id"`
	SpeciesId uuid.UUID `db:"species_id"`
	Theme     string    `db:"theme"`
	Position  int       `db:"position"`
	CreatedAt time.Time `db:"created_at"`
}

const TABLE_POINTS_OF_INTEREST = "points_of_interest"

var SelectPointOfInterestColumn = utils.ColumnList[DBPointOfInterest]()

func AdaptPointOfInterest(db DBPointOfInterest) (models.PointOfInterest, error) {
	theme, ok := models.ThemeFromString(db.Theme)
	if !ok {
		return models.PointOfInterest{}, errors.Newf("unknown poi theme %q", db.Theme)
	}
	return models.PointOfInterest{
		Id:        db.Id,
		ZoneId:    db.ZoneId,
		SpeciesId: db.SpeciesId,
		Theme:     theme,
		Position:  db.Position,
		CreatedAt: db.CreatedAt,
	}, nil
}
