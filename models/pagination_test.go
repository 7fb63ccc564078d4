package models

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageRequestFrom(t *testing.T) {
	tts := []struct {
		name        string
		offsetParam string
		limitParam  string
		expected    PageRequest
	}{
		{
			name:     "absent parameters fall back to defaults",
			expected: PageRequest{Offset: 0, Limit: 100},
		},
		{
			name:        "valid parameters are kept",
			offsetParam: "40",
			limitParam:  "20",
			expected:    PageRequest{Offset: 40, Limit: 20},
		},
		{
			name:        "negative offset falls back to zero",
			offsetParam: "-5",
			limitParam:  "20",
			expected:    PageRequest{Offset: 0, Limit: 20},
		},
		{
			name:        "non-numeric offset falls back to zero",
			offsetParam: "abc",
			limitParam:  "20",
			expected:    PageRequest{Offset: 0, Limit: 20},
		},
		{
			name:       "zero limit falls back to the default",
			limitParam: "0",
			expected:   PageRequest{Offset: 0, Limit: 100},
		},
		{
			name:       "limit above the maximum falls back to the default",
			limitParam: "251",
			expected:   PageRequest{Offset: 0, Limit: 100},
		},
		{
			name:       "limit at the maximum is kept",
			limitParam: "250",
			expected:   PageRequest{Offset: 0, Limit: 250},
		},
		{
			name:       "non-numeric limit falls back to the default",
			limitParam: "many",
			expected:   PageRequest{Offset: 0, Limit: 100},
		},
	}

	for _, tt := range tts {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, PageRequestFrom(tt.offsetParam, tt.limitParam))
		})
	}
}

func TestPageNumberOfPages(t *testing.T) {
	filtered := func(n int) *int { return &n }

	tts := []struct {
		name     string
		page     Page
		expected int
	}{
		{name: "empty listing has zero pages", page: Page{Limit: 100, Total: 0}, expected: 0},
		{name: "partial last page counts", page: Page{Limit: 100, Total: 101}, expected: 2},
		{name: "exact division", page: Page{Limit: 100, Total: 200}, expected: 2},
		{name: "single short page", page: Page{Limit: 100, Total: 7}, expected: 1},
		{
			name:     "filtered total takes precedence",
			page:     Page{Limit: 10, Total: 200, FilteredTotal: filtered(15)},
			expected: 2,
		},
		{
			name:     "filtered down to nothing",
			page:     Page{Limit: 10, Total: 200, FilteredTotal: filtered(0)},
			expected: 0,
		},
	}

	for _, tt := range tts {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.page.NumberOfPages())
		})
	}
}

func TestPageHasMorePages(t *testing.T) {
	assert.True(t, Page{Offset: 0, Limit: 100, Total: 101}.HasMorePages())
	assert.False(t, Page{Offset: 0, Limit: 100, Total: 100}.HasMorePages())
	assert.False(t, Page{Offset: 100, Limit: 100, Total: 100}.HasMorePages())
	// A window starting past the end simply has nothing after it.
	assert.False(t, Page{Offset: 500, Limit: 100, Total: 100}.HasMorePages())
}

func TestPageHeadersRoundTrip(t *testing.T) {
	filteredTotal := 12
	page := Page{Offset: 20, Limit: 10, Total: 57, FilteredTotal: &filteredTotal}

	header := http.Header{}
	page.WriteHeaders(header)

	assert.Equal(t, "20", header.Get(PaginationOffsetHeader))
	assert.Equal(t, "10", header.Get(PaginationLimitHeader))
	assert.Equal(t, "57", header.Get(PaginationTotalHeader))
	assert.Equal(t, "12", header.Get(PaginationFilteredTotalHeader))
	assert.Equal(t, "12", header.Get(PaginationFilteredHeader))

	parsed, err := PageFromHeaders(header)
	require.NoError(t, err)
	assert.Equal(t, 20, parsed.Offset)
	assert.Equal(t, 10, parsed.Limit)
	assert.Equal(t, 57, parsed.Total)
	require.NotNil(t, parsed.FilteredTotal)
	assert.Equal(t, 12, *parsed.FilteredTotal)
}

func TestPageFromHeadersMissingHeader(t *testing.T) {
	header := http.Header{}
	header.Set(PaginationOffsetHeader, "0")
	header.Set(PaginationLimitHeader, "100")

	_, err := PageFromHeaders(header)
	require.Error(t, err)
	assert.ErrorIs(t, err, BadParameterError)
	assert.ErrorContains(t, err, PaginationTotalHeader)
}

func TestPageFromHeadersMalformedHeader(t *testing.T) {
	header := http.Header{}
	header.Set(PaginationOffsetHeader, "0")
	header.Set(PaginationLimitHeader, "100")
	header.Set(PaginationTotalHeader, "lots")

	_, err := PageFromHeaders(header)
	require.Error(t, err)
	assert.ErrorIs(t, err, BadParameterError)
	assert.ErrorContains(t, err, PaginationTotalHeader)
}
