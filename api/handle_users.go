package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/naturetrails/trails-backend/dto"
	"github.com/naturetrails/trails-backend/pure_utils"
	"github.com/naturetrails/trails-backend/repositories"
	"github.com/naturetrails/trails-backend/usecases"
	"github.com/naturetrails/trails-backend/utils"
)

func handleListUsers(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var params dto.ListParams
		if err := c.ShouldBindQuery(&params); presentError(ctx, c, err) {
			return
		}
		filters := repositories.UserFilters{Search: c.Query("search")}

		usecase := usecasesWithCreds(ctx, uc).NewUserUsecase()
		users, page, err := usecase.ListUsers(ctx, params.ToPageRequest(), params.Sort, filters)
		if presentError(ctx, c, err) {
			return
		}

		body, err := dto.RestrictList(pure_utils.Map(users, dto.AdaptUserDto),
			params.OnlyFields(), params.ExceptFields())
		if presentError(ctx, c, err) {
			return
		}
		page.WriteHeaders(c.Writer.Header())
		c.JSON(http.StatusOK, body)
	}
}

func handleGetUser(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		userId, err := utils.ParseUuid(c.Param("user_id"))
		if presentError(ctx, c, err) {
			return
		}
		var params dto.ListParams
		if err := c.ShouldBindQuery(&params); presentError(ctx, c, err) {
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewUserUsecase()
		user, err := usecase.GetUser(ctx, userId)
		if presentError(ctx, c, err) {
			return
		}

		body, err := dto.Restrict(dto.AdaptUserDto(user), params.OnlyFields(), params.ExceptFields())
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, body)
	}
}

// handlePostUser covers both registration through an invitation token and
// user creation by an admin: the policy layer tells the two apart by the
// credential kind.
func handlePostUser(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var body dto.CreateUserBody
		if err := c.ShouldBindJSON(&body); presentError(ctx, c, err) {
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewUserUsecase()
		user, err := usecase.CreateUser(ctx, dto.AdaptCreateUser(body))
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusCreated, dto.AdaptUserDto(user))
	}
}

func handlePatchUser(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		userId, err := utils.ParseUuid(c.Param("user_id"))
		if presentError(ctx, c, err) {
			return
		}
		var body dto.UpdateUserBody
		if err := c.ShouldBindJSON(&body); presentError(ctx, c, err) {
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewUserUsecase()
		user, err := usecase.UpdateUser(ctx, dto.AdaptUpdateUser(userId, body))
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, dto.AdaptUserDto(user))
	}
}

func handlePostInvitation(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var body dto.CreateInvitationBody
		if err := c.ShouldBindJSON(&body); presentError(ctx, c, err) {
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewUserUsecase()
		token, err := usecase.CreateInvitation(ctx, dto.AdaptCreateInvitation(body))
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusCreated, gin.H{"invitation_token": token})
	}
}

func handlePostPasswordResetRequest(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var body dto.PasswordResetRequestBody
		if err := c.ShouldBindJSON(&body); presentError(ctx, c, err) {
			return
		}

		usecase := uc.NewUnauthenticatedUserUsecase()
		if err := usecase.RequestPasswordReset(ctx, body.Email); presentError(ctx, c, err) {
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func handlePostPasswordResetComplete(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var body dto.PasswordResetCompleteBody
		if err := c.ShouldBindJSON(&body); presentError(ctx, c, err) {
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewUserUsecase()
		if err := usecase.CompletePasswordReset(ctx, body.Password); presentError(ctx, c, err) {
			return
		}
		c.Status(http.StatusNoContent)
	}
}
