package utils

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/naturetrails/trails-backend/models"
)

func ParseUuid(param string) (uuid.UUID, error) {
	id, err := uuid.Parse(param)
	if err != nil {
		return uuid.Nil, fmt.Errorf("'%s' is not a valid UUID: %w", param, models.BadParameterError)
	}
	return id, nil
}
