package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/naturetrails/trails-backend/dto"
	"github.com/naturetrails/trails-backend/models"
	"github.com/naturetrails/trails-backend/utils"
)

// presentError renders err as the API's errors array and reports whether it
// handled anything. Handlers return immediately when it does.
func presentError(ctx context.Context, c *gin.Context, err error) bool {
	if err == nil {
		return false
	}
	_ = c.Error(err)

	var fieldErrors models.FieldValidationError
	var bindingErrors validator.ValidationErrors
	switch {
	case errors.As(err, &fieldErrors):
		c.JSON(http.StatusUnprocessableEntity, dto.AdaptFieldValidationErrors(fieldErrors))

	case errors.As(err, &bindingErrors):
		c.JSON(http.StatusUnprocessableEntity, adaptBindingErrors(bindingErrors))

	case errors.Is(err, models.BadParameterError):
		c.JSON(http.StatusBadRequest, dto.NewApiErrorResponse(err.Error()))

	case errors.Is(err, models.UnAuthorizedError):
		c.JSON(http.StatusUnauthorized, dto.NewApiErrorResponse(err.Error()))

	case errors.Is(err, models.ForbiddenError):
		c.JSON(http.StatusForbidden, dto.NewApiErrorResponse(err.Error()))

	case errors.Is(err, models.NotFoundError):
		c.JSON(http.StatusNotFound, dto.NewApiErrorResponse(err.Error()))

	case errors.Is(err, models.ConflictError):
		c.JSON(http.StatusConflict, dto.NewApiErrorResponse(err.Error()))

	default:
		logger := utils.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, fmt.Sprintf("unexpected error: %+v", err))
		c.JSON(http.StatusInternalServerError, dto.NewApiErrorResponse("internal error"))
	}
	return true
}

// adaptBindingErrors accumulates every failed binding check into one 422
// body instead of stopping at the first.
func adaptBindingErrors(bindingErrors validator.ValidationErrors) dto.ApiErrorResponse {
	out := dto.ApiErrorResponse{Errors: make([]dto.ApiError, 0, len(bindingErrors))}
	for _, fieldError := range bindingErrors {
		out.Errors = append(out.Errors, dto.ApiError{
			Validator: fieldError.Tag(),
			Message:   fmt.Sprintf("field validation failed on the %q rule", fieldError.Tag()),
			Location:  fieldError.Field(),
		})
	}
	return out
}
