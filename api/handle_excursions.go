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

func handleListExcursions(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var params dto.ListParams
		if err := c.ShouldBindQuery(&params); presentError(ctx, c, err) {
			return
		}
		filters := models.ExcursionFilters{Search: c.Query("search")}
		if trailParam := c.Query("trailId"); trailParam != "" {
			trailId, err := utils.ParseUuid(trailParam)
			if presentError(ctx, c, err) {
				return
			}
			filters.TrailId = trailId
		}

		usecase := usecasesWithCreds(ctx, uc).NewExcursionUsecase()
		excursions, page, err := usecase.ListExcursions(ctx, params.ToPageRequest(), params.Sort, filters)
		if presentError(ctx, c, err) {
			return
		}

		body, err := dto.RestrictList(pure_utils.Map(excursions, dto.AdaptExcursionDto),
			params.OnlyFields(), params.ExceptFields())
		if presentError(ctx, c, err) {
			return
		}
		page.WriteHeaders(c.Writer.Header())
		c.JSON(http.StatusOK, body)
	}
}

func handleGetExcursion(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		excursionId, err := utils.ParseUuid(c.Param("excursion_id"))
		if presentError(ctx, c, err) {
			return
		}
		var params dto.ListParams
		if err := c.ShouldBindQuery(&params); presentError(ctx, c, err) {
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewExcursionUsecase()
		excursion, err := usecase.GetExcursion(ctx, excursionId)
		if presentError(ctx, c, err) {
			return
		}

		body, err := dto.Restrict(dto.AdaptExcursionDto(excursion), params.OnlyFields(), params.ExceptFields())
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, body)
	}
}

func handlePostExcursion(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var body dto.CreateExcursionBody
		if err := c.ShouldBindJSON(&body); presentError(ctx, c, err) {
			return
		}
		attributes, err := dto.AdaptCreateExcursion(body)
		if presentError(ctx, c, err) {
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewExcursionUsecase()
		excursion, err := usecase.CreateExcursion(ctx, attributes)
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusCreated, dto.AdaptExcursionDto(excursion))
	}
}

func handlePatchExcursion(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		excursionId, err := utils.ParseUuid(c.Param("excursion_id"))
		if presentError(ctx, c, err) {
			return
		}
		var body dto.UpdateExcursionBody
		if err := c.ShouldBindJSON(&body); presentError(ctx, c, err) {
			return
		}
		attributes, err := dto.AdaptUpdateExcursion(excursionId, body)
		if presentError(ctx, c, err) {
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewExcursionUsecase()
		excursion, err := usecase.UpdateExcursion(ctx, attributes)
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, dto.AdaptExcursionDto(excursion))
	}
}

func handleListParticipants(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		excursionId, err := utils.ParseUuid(c.Param("excursion_id"))
		if presentError(ctx, c, err) {
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewExcursionUsecase()
		participants, err := usecase.ListParticipants(ctx, excursionId)
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, pure_utils.Map(participants, dto.AdaptParticipantDto))
	}
}

func handlePostParticipant(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		excursionId, err := utils.ParseUuid(c.Param("excursion_id"))
		if presentError(ctx, c, err) {
			return
		}
		var body dto.ParticipantBody
		if err := c.ShouldBindJSON(&body); presentError(ctx, c, err) {
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewExcursionUsecase()
		participant, err := usecase.CreateParticipant(ctx, models.CreateParticipant{
			ExcursionId: excursionId,
			Name:        body.Name,
		})
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusCreated, dto.AdaptParticipantDto(participant))
	}
}

func handlePatchParticipant(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		participantId, err := utils.ParseUuid(c.Param("participant_id"))
		if presentError(ctx, c, err) {
			return
		}
		var body dto.ParticipantBody
		if err := c.ShouldBindJSON(&body); presentError(ctx, c, err) {
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewExcursionUsecase()
		participant, err := usecase.UpdateParticipant(ctx, models.UpdateParticipant{
			Id:   participantId,
			Name: body.Name,
		})
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, dto.AdaptParticipantDto(participant))
	}
}

func handleDeleteParticipant(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		participantId, err := utils.ParseUuid(c.Param("participant_id"))
		if presentError(ctx, c, err) {
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewExcursionUsecase()
		if err := usecase.DeleteParticipant(ctx, participantId); presentError(ctx, c, err) {
			return
		}
		c.Status(http.StatusNoContent)
	}
}
