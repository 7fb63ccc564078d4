package dbmodels

import (
	"time"

	"github.com/google/uuid"

	"github.com/naturetrails/trails-backend/models"
	"github.com/naturetrails/trails-backend/utils"
)

type DBParticipant struct {
	Id          uuid.UUID `db:"id"`
	ExcursionId uuid.UUID `db:"excursion_id"`
	Name        string    `db:"name"`
	CreatedAt   time.Time `db:"created_at"`
}

const TABLE_PARTICIPANTS = "participants"

var SelectParticipantColumn = utils.ColumnList[DBParticipant]()

func AdaptParticipant(db DBParticipant) (models.Participant, error) {
	return models.Participant{
		Id:          db.Id,
		ExcursionId: db.ExcursionId,
		Name:        db.Name,
		CreatedAt:   db.CreatedAt,
	}, nil
}
