package dto

import (
	"net/http"
	"strings"

	"github.com/naturetrails/trails-backend/models"
)

// ParsePaginatedHeaders reads the pagination headers off a list response, for
// clients of this API. Missing or malformed headers are hard errors.
func ParsePaginatedHeaders(header http.Header) (models.Page, error) {
	return models.PageFromHeaders(header)
}

// ListParams are the query string parameters shared by every list endpoint.
// Offset and limit stay strings here: out-of-range and non-numeric values
// fall back to defaults instead of failing the request.
type ListParams struct {
	Offset string `form:"offset"`
	Limit  string `form:"limit"`
	Sort   string `form:"sort"`
	Only   string `form:"only"`
	Except string `form:"except"`
}

func (p ListParams) ToPageRequest() models.PageRequest {
	return models.PageRequestFrom(p.Offset, p.Limit)
}

func (p ListParams) OnlyFields() []string {
	return splitFields(p.Only)
}

func (p ListParams) ExceptFields() []string {
	return splitFields(p.Except)
}

func splitFields(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	fields := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			fields = append(fields, trimmed)
		}
	}
	return fields
}
