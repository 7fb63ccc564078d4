package dbmodels

import (
	"time"

	"github.com/google/uuid"

	"github.com/naturetrails/trails-backend/models"
	"github.com/naturetrails/trails-backend/utils"
)

type DBUser struct {
	Id           uuid.UUID `db:"id"`
	Email        string    `db:"email"`
	FirstName    string    `db:"first_name"`
	LastName     string    `db:"last_name"`
	Role         string    `db:"role"`
	Active       bool      `db:"active"`
	PasswordHash []byte    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

const TABLE_USERS = "users"

var SelectUserColumn = utils.ColumnList[DBUser]()

func AdaptUser(db DBUser) (models.User, error) {
	return models.User{
		Id:           db.Id,
		Email:        db.Email,
		FirstName:    db.FirstName,
		LastName:     db.LastName,
		Role:         models.RoleFromString(db.Role),
		Active:       db.Active,
		PasswordHash: db.PasswordHash,
		CreatedAt:    db.CreatedAt,
		UpdatedAt:    db.UpdatedAt,
	}, nil
}
