package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	Id           uuid.UUID
	Email        string
	FirstName    string
	LastName     string
	Role         Role
	Active       bool
	PasswordHash []byte
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type CreateUser struct {
	Email     string
	FirstName string
	LastName  string
	Role      Role
	Password  string
}

// UpdateUser carries the fields of a user update request. Nil pointers mean
// "leave unchanged". Email, Role and Active are protected attributes: a
// non-admin submitting a changed value for one of them is rejected.
type UpdateUser struct {
	Id        uuid.UUID
	Email     *string
	FirstName *string
	LastName  *string
	Role      *Role
	Active    *bool
	Password  *string
}

// SameUser reports whether both identifiers are defined and refer to the same
// user record.
func SameUser(a, b uuid.UUID) bool {
	return a != uuid.Nil && b != uuid.Nil && a == b
}
