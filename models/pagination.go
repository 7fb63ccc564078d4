package models

import (
	"net/http"
	"strconv"

	"github.com/cockroachdb/errors"
)

const (
	PaginationDefaultLimit = 100
	PaginationMaxLimit     = 250

	PaginationOffsetHeader        = "Pagination-Offset"
	PaginationLimitHeader         = "Pagination-Limit"
	PaginationTotalHeader         = "Pagination-Total"
	PaginationFilteredTotalHeader = "Pagination-Filtered-Total"

	// Older clients read the filtered count from this shorter header name.
	PaginationFilteredHeader = "Pagination-Filtered"
)

// PageRequest is the effective offset/limit window of a list request, after
// clamping the raw query-string values to safe bounds.
type PageRequest struct {
	Offset int
	Limit  int
}

// PageRequestFrom parses the raw offset and limit query parameters. An absent,
// non-numeric or negative offset falls back to 0. An absent, non-numeric,
// non-positive or out-of-range limit falls back to the default of 100.
func PageRequestFrom(offsetParam, limitParam string) PageRequest {
	page := PageRequest{
		Offset: 0,
		Limit:  PaginationDefaultLimit,
	}

	if offset, err := strconv.Atoi(offsetParam); err == nil && offset >= 0 {
		page.Offset = offset
	}
	if limit, err := strconv.Atoi(limitParam); err == nil && limit >= 1 && limit <= PaginationMaxLimit {
		page.Limit = limit
	}
	return page
}

// Page describes one window of a paginated listing. FilteredTotal is always
// set by the server and equals Total when no filter narrowed the scope.
type Page struct {
	Offset        int
	Limit         int
	Total         int
	FilteredTotal *int
}

func (p Page) EffectiveTotal() int {
	if p.FilteredTotal != nil {
		return *p.FilteredTotal
	}
	return p.Total
}

func (p Page) NumberOfPages() int {
	total := p.EffectiveTotal()
	if total == 0 || p.Limit <= 0 {
		return 0
	}
	return (total + p.Limit - 1) / p.Limit
}

// HasMorePages reports whether records exist past the current window. Offset
// plus limit exceeding the total is not an error, it simply means false.
func (p Page) HasMorePages() bool {
	return p.Offset+p.Limit < p.EffectiveTotal()
}

// WriteHeaders emits the pagination response headers consumed by clients. The
// filtered count is written under both header names for compatibility.
func (p Page) WriteHeaders(header http.Header) {
	header.Set(PaginationOffsetHeader, strconv.Itoa(p.Offset))
	header.Set(PaginationLimitHeader, strconv.Itoa(p.Limit))
	header.Set(PaginationTotalHeader, strconv.Itoa(p.Total))
	header.Set(PaginationFilteredTotalHeader, strconv.Itoa(p.EffectiveTotal()))
	header.Set(PaginationFilteredHeader, strconv.Itoa(p.EffectiveTotal()))
}

func requiredIntHeader(header http.Header, name string) (int, error) {
	raw := header.Get(name)
	if raw == "" {
		return 0, errors.Wrapf(BadParameterError, "missing required header %s", name)
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.Wrapf(BadParameterError, "header %s is not an integer: %q", name, raw)
	}
	return value, nil
}

// PageFromHeaders parses the pagination headers of a list response. A missing
// or malformed required header is a contract violation between client and
// server and yields a hard error naming the header. The filtered count is
// optional.
func PageFromHeaders(header http.Header) (Page, error) {
	var page Page
	var err error

	if page.Total, err = requiredIntHeader(header, PaginationTotalHeader); err != nil {
		return Page{}, err
	}
	if page.Limit, err = requiredIntHeader(header, PaginationLimitHeader); err != nil {
		return Page{}, err
	}
	if page.Offset, err = requiredIntHeader(header, PaginationOffsetHeader); err != nil {
		return Page{}, err
	}

	if raw := header.Get(PaginationFilteredHeader); raw != "" {
		filtered, err := strconv.Atoi(raw)
		if err != nil {
			return Page{}, errors.Wrapf(BadParameterError,
				"header %s is not an integer: %q", PaginationFilteredHeader, raw)
		}
		page.FilteredTotal = &filtered
	}
	return page, nil
}
