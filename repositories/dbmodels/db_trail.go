package dbmodels

import (
	"time"

	"github.com/google/uuid"

	"github.com/naturetrails/trails-backend/models"
	"github.com/naturetrails/trails-backend/utils"
)

type DBTrail struct {
	Id        uuid.UUID `db:"id"`
	Name      string    `db:"name"`
	Slug      string    `db:"slug"`
	Length    int       `db:"length"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

const TABLE_TRAILS = "trails"

var SelectTrailColumn = utils.ColumnList[DBTrail]()

func AdaptTrail(db DBTrail) (models.Trail, error) {
	return models.Trail{
		Id:        db.Id,
		Name:      db.Name,
		Slug:      db.Slug,
		Length:    db.Length,
		CreatedAt: db.CreatedAt,
		UpdatedAt: db.UpdatedAt,
	}, nil
}
