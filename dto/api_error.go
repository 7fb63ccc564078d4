package dto

import (
	"github.com/naturetrails/trails-backend/models"
)

// ApiError is one entry of the errors array every failure response carries.
type ApiError struct {
	Code      string `json:"code,omitempty"`
	Validator string `json:"validator,omitempty"`
	Message   string `json:"message"`
	Location  string `json:"location,omitempty"`
}

type ApiErrorResponse struct {
	Errors []ApiError `json:"errors"`
}

func NewApiErrorResponse(message string) ApiErrorResponse {
	return ApiErrorResponse{
		Errors: []ApiError{{Message: message}},
	}
}

// AdaptFieldValidationErrors turns the accumulated field failures into one
// 422 body, one entry per field.
func AdaptFieldValidationErrors(err models.FieldValidationError) ApiErrorResponse {
	out := ApiErrorResponse{Errors: make([]ApiError, 0, len(err))}
	for field, message := range err {
		out.Errors = append(out.Errors, ApiError{
			Validator: "invalid",
			Message:   message,
			Location:  field,
		})
	}
	return out
}
