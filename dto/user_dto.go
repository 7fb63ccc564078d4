package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/naturetrails/trails-backend/models"
)

type User struct {
	Id        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Role      string    `json:"role"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

func AdaptUserDto(user models.User) User {
	return User{
		Id:        user.Id,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Role:      user.Role.String(),
		Active:    user.Active,
		CreatedAt: user.CreatedAt,
	}
}

type CreateUserBody struct {
	Email     string `json:"email" binding:"required,email"`
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Role      string `json:"role" binding:"omitempty,oneof=USER ADMIN"`
	Password  string `json:"password" binding:"required,min=8"`
}

func AdaptCreateUser(body CreateUserBody) models.CreateUser {
	role := models.RoleFromString(body.Role)
	if role == models.NO_ROLE {
		role = models.USER
	}
	return models.CreateUser{
		Email:     body.Email,
		FirstName: body.FirstName,
		LastName:  body.LastName,
		Role:      role,
		Password:  body.Password,
	}
}

type UpdateUserBody struct {
	Email     *string `json:"email" binding:"omitempty,email"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Role      *string `json:"role" binding:"omitempty,oneof=USER ADMIN"`
	Active    *bool   `json:"active"`
	Password  *string `json:"password" binding:"omitempty,min=8"`
}

func AdaptUpdateUser(userId uuid.UUID, body UpdateUserBody) models.UpdateUser {
	update := models.UpdateUser{
		Id:        userId,
		Email:     body.Email,
		FirstName: body.FirstName,
		LastName:  body.LastName,
		Active:    body.Active,
		Password:  body.Password,
	}
	if body.Role != nil {
		role := models.RoleFromString(*body.Role)
		update.Role = &role
	}
	return update
}

type CreateInvitationBody struct {
	Email string `json:"email" binding:"required,email"`
	Role  string `json:"role" binding:"required,oneof=USER ADMIN"`
}

func AdaptCreateInvitation(body CreateInvitationBody) models.CreateInvitation {
	return models.CreateInvitation{
		Email: body.Email,
		Role:  models.RoleFromString(body.Role),
	}
}

type PasswordResetRequestBody struct {
	Email string `json:"email" binding:"required,email"`
}

type PasswordResetCompleteBody struct {
	Password string `json:"password" binding:"required,min=8"`
}

type CredentialsBody struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type TokenResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
}
