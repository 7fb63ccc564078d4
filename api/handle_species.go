package api

import (
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"

	"github.com/naturetrails/trails-backend/dto"
	"github.com/naturetrails/trails-backend/models"
	"github.com/naturetrails/trails-backend/pure_utils"
	"github.com/naturetrails/trails-backend/usecases"
	"github.com/naturetrails/trails-backend/utils"
)

// themeFilter reads the optional theme query param. An unknown theme is a
// client error, not a silently empty listing.
func themeFilter(c *gin.Context) (models.Theme, error) {
	raw := c.Query("theme")
	if raw == "" {
		return "", nil
	}
	theme, ok := models.ThemeFromString(raw)
	if !ok {
		return "", errors.Wrapf(models.BadParameterError, "unknown theme %q", raw)
	}
	return theme, nil
}

func handleListSpecies(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var params dto.ListParams
		if err := c.ShouldBindQuery(&params); presentError(ctx, c, err) {
			return
		}
		theme, err := themeFilter(c)
		if presentError(ctx, c, err) {
			return
		}
		filters := models.SpeciesFilters{
			Theme:            theme,
			CommonNameSearch: c.Query("commonNameSearch"),
		}

		usecase := usecasesWithCreds(ctx, uc).NewSpeciesUsecase()
		species, page, err := usecase.ListSpecies(ctx, params.ToPageRequest(), params.Sort, filters)
		if presentError(ctx, c, err) {
			return
		}

		body, err := dto.RestrictList(pure_utils.Map(species, dto.AdaptSpeciesDto),
			params.OnlyFields(), params.ExceptFields())
		if presentError(ctx, c, err) {
			return
		}
		page.WriteHeaders(c.Writer.Header())
		c.JSON(http.StatusOK, body)
	}
}

func handleGetSpecies(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		speciesId, err := utils.ParseUuid(c.Param("species_id"))
		if presentError(ctx, c, err) {
			return
		}
		var params dto.ListParams
		if err := c.ShouldBindQuery(&params); presentError(ctx, c, err) {
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewSpeciesUsecase()
		species, err := usecase.GetSpecies(ctx, speciesId)
		if presentError(ctx, c, err) {
			return
		}

		body, err := dto.Restrict(dto.AdaptSpeciesDto(species), params.OnlyFields(), params.ExceptFields())
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, body)
	}
}

func handleListPointsOfInterest(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var params dto.ListParams
		if err := c.ShouldBindQuery(&params); presentError(ctx, c, err) {
			return
		}
		theme, err := themeFilter(c)
		if presentError(ctx, c, err) {
			return
		}
		filters := models.PoiFilters{
			Theme:            theme,
			CommonNameSearch: c.Query("commonNameSearch"),
		}
		if zoneParam := c.Query("zoneId"); zoneParam != "" {
			zoneId, err := utils.ParseUuid(zoneParam)
			if presentError(ctx, c, err) {
				return
			}
			filters.ZoneId = zoneId
		}

		usecase := usecasesWithCreds(ctx, uc).NewSpeciesUsecase()
		pois, page, err := usecase.ListPointsOfInterest(ctx, params.ToPageRequest(), params.Sort, filters)
		if presentError(ctx, c, err) {
			return
		}

		body, err := dto.RestrictList(pure_utils.Map(pois, dto.AdaptPointOfInterestDto),
			params.OnlyFields(), params.ExceptFields())
		if presentError(ctx, c, err) {
			return
		}
		page.WriteHeaders(c.Writer.Header())
		c.JSON(http.StatusOK, body)
	}
}

func handleGetPointOfInterest(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		poiId, err := utils.ParseUuid(c.Param("poi_id"))
		if presentError(ctx, c, err) {
			return
		}
		var params dto.ListParams
		if err := c.ShouldBindQuery(&params); presentError(ctx, c, err) {
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewSpeciesUsecase()
		poi, err := usecase.GetPointOfInterest(ctx, poiId)
		if presentError(ctx, c, err) {
			return
		}

		body, err := dto.Restrict(dto.AdaptPointOfInterestDto(poi), params.OnlyFields(), params.ExceptFields())
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, body)
	}
}
