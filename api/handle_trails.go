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

func handleListTrails(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var params dto.ListParams
		if err := c.ShouldBindQuery(&params); presentError(ctx, c, err) {
			return
		}
		filters := models.TrailFilters{Search: c.Query("search")}

		usecase := usecasesWithCreds(ctx, uc).NewTrailUsecase()
		trails, page, err := usecase.ListTrails(ctx, params.ToPageRequest(), params.Sort, filters)
		if presentError(ctx, c, err) {
			return
		}

		body, err := dto.RestrictList(pure_utils.Map(trails, dto.AdaptTrailDto),
			params.OnlyFields(), params.ExceptFields())
		if presentError(ctx, c, err) {
			return
		}
		page.WriteHeaders(c.Writer.Header())
		c.JSON(http.StatusOK, body)
	}
}

func handleGetTrail(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		trailId, err := utils.ParseUuid(c.Param("trail_id"))
		if presentError(ctx, c, err) {
			return
		}
		var params dto.ListParams
		if err := c.ShouldBindQuery(&params); presentError(ctx, c, err) {
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewTrailUsecase()
		trail, err := usecase.GetTrail(ctx, trailId)
		if presentError(ctx, c, err) {
			return
		}

		body, err := dto.Restrict(dto.AdaptTrailDto(trail), params.OnlyFields(), params.ExceptFields())
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, body)
	}
}

func handlePostTrail(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var body dto.CreateTrailBody
		if err := c.ShouldBindJSON(&body); presentError(ctx, c, err) {
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewTrailUsecase()
		trail, err := usecase.CreateTrail(ctx, dto.AdaptCreateTrail(body))
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusCreated, dto.AdaptTrailDto(trail))
	}
}

func handlePatchTrail(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		trailId, err := utils.ParseUuid(c.Param("trail_id"))
		if presentError(ctx, c, err) {
			return
		}
		var body dto.UpdateTrailBody
		if err := c.ShouldBindJSON(&body); presentError(ctx, c, err) {
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewTrailUsecase()
		trail, err := usecase.UpdateTrail(ctx, dto.AdaptUpdateTrail(trailId, body))
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, dto.AdaptTrailDto(trail))
	}
}

func handleListZonesOfTrail(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		trailId, err := utils.ParseUuid(c.Param("trail_id"))
		if presentError(ctx, c, err) {
			return
		}
		var params dto.ListParams
		if err := c.ShouldBindQuery(&params); presentError(ctx, c, err) {
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewTrailUsecase()
		zones, page, err := usecase.ListZonesOfTrail(ctx, trailId, params.ToPageRequest(), params.Sort)
		if presentError(ctx, c, err) {
			return
		}

		body, err := dto.RestrictList(pure_utils.Map(zones, dto.AdaptZoneDto),
			params.OnlyFields(), params.ExceptFields())
		if presentError(ctx, c, err) {
			return
		}
		page.WriteHeaders(c.Writer.Header())
		c.JSON(http.StatusOK, body)
	}
}

func handleGetZone(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		zoneId, err := utils.ParseUuid(c.Param("zone_id"))
		if presentError(ctx, c, err) {
			return
		}
		var params dto.ListParams
		if err := c.ShouldBindQuery(&params); presentError(ctx, c, err) {
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewTrailUsecase()
		zone, err := usecase.GetZone(ctx, zoneId)
		if presentError(ctx, c, err) {
			return
		}

		body, err := dto.Restrict(dto.AdaptZoneDto(zone), params.OnlyFields(), params.ExceptFields())
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, body)
	}
}
