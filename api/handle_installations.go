package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/naturetrails/trails-backend/dto"
	"github.com/naturetrails/trails-backend/models"
	"github.com/naturetrails/trails-backend/pure_utils"
	"github.com/naturetrails/trails-backend/usecases"
	"github.com/naturetrails/trails-backend/utils"
)

func handleListInstallations(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var params dto.ListParams
		if err := c.ShouldBindQuery(&params); presentError(ctx, c, err) {
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewInstallationUsecase()
		installations, page, err := usecase.ListInstallations(ctx, params.ToPageRequest(), params.Sort)
		if presentError(ctx, c, err) {
			return
		}

		body, err := dto.RestrictList(pure_utils.Map(installations, dto.AdaptInstallationDto),
			params.OnlyFields(), params.ExceptFields())
		if presentError(ctx, c, err) {
			return
		}
		page.WriteHeaders(c.Writer.Header())
		c.JSON(http.StatusOK, body)
	}
}

func handleGetInstallation(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		installationId, err := utils.ParseUuid(c.Param("installation_id"))
		if presentError(ctx, c, err) {
			return
		}
		var params dto.ListParams
		if err := c.ShouldBindQuery(&params); presentError(ctx, c, err) {
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewInstallationUsecase()
		installation, err := usecase.GetInstallation(ctx, installationId)
		if presentError(ctx, c, err) {
			return
		}

		body, err := dto.Restrict(dto.AdaptInstallationDto(installation),
			params.OnlyFields(), params.ExceptFields())
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, body)
	}
}

// handlePostInstallation is the unauthenticated device self-registration
// endpoint: the response carries the installation token the device uses for
// everything afterwards.
func handlePostInstallation(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var body dto.RegisterInstallationBody
		if err := c.ShouldBindJSON(&body); presentError(ctx, c, err) {
			return
		}

		usecase := uc.NewUnauthenticatedInstallationUsecase()
		installation, token, err := usecase.RegisterInstallation(ctx, dto.AdaptRegisterInstallation(body))
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusCreated, dto.RegisteredInstallation{
			Installation: dto.AdaptInstallationDto(installation),
			AccessToken:  token,
		})
	}
}

func handlePatchInstallation(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		installationId, err := utils.ParseUuid(c.Param("installation_id"))
		if presentError(ctx, c, err) {
			return
		}
		var body dto.UpdateInstallationBody
		if err := c.ShouldBindJSON(&body); presentError(ctx, c, err) {
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewInstallationUsecase()
		installation, err := usecase.UpdateInstallation(ctx, dto.AdaptUpdateInstallation(installationId, body))
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, dto.AdaptInstallationDto(installation))
	}
}

func handlePostInstallationEvent(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		installationId, err := utils.ParseUuid(c.Param("installation_id"))
		if presentError(ctx, c, err) {
			return
		}
		var body dto.CreateInstallationEventBody
		if err := c.ShouldBindJSON(&body); presentError(ctx, c, err) {
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewInstallationUsecase()
		event, err := usecase.CreateInstallationEvent(ctx,
			dto.AdaptCreateInstallationEvent(installationId, body))
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusCreated, dto.AdaptInstallationEventDto(event))
	}
}

func handleListInstallationEvents(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		installationId, err := utils.ParseUuid(c.Param("installation_id"))
		if presentError(ctx, c, err) {
			return
		}
		var params dto.ListParams
		if err := c.ShouldBindQuery(&params); presentError(ctx, c, err) {
			return
		}
		filters := models.InstallationEventFilters{
			InstallationId: installationId,
			Type:           c.Query("type"),
		}

		usecase := usecasesWithCreds(ctx, uc).NewInstallationUsecase()
		events, page, err := usecase.ListInstallationEvents(ctx, params.ToPageRequest(), params.Sort, filters)
		if presentError(ctx, c, err) {
			return
		}

		body, err := dto.RestrictList(pure_utils.Map(events, dto.AdaptInstallationEventDto),
			params.OnlyFields(), params.ExceptFields())
		if presentError(ctx, c, err) {
			return
		}
		page.WriteHeaders(c.Writer.Header())
		c.JSON(http.StatusOK, body)
	}
}
