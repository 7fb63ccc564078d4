package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/naturetrails/trails-backend/dto"
	"github.com/naturetrails/trails-backend/usecases"
)

// handlePostAuth exchanges email and password for a user token.
func handlePostAuth(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var body dto.CredentialsBody
		if err := c.ShouldBindJSON(&body); presentError(ctx, c, err) {
			return
		}

		usecase := uc.NewAuthUsecase()
		token, expiresAt, err := usecase.NewUserToken(ctx, body.Email, body.Password)
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, dto.TokenResponse{
			AccessToken: token,
			TokenType:   "Bearer",
			ExpiresAt:   expiresAt,
		})
	}
}
