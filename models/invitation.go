package models

type CreateInvitation struct {
	Email string
	Role  Role
}
