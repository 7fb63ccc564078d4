package models

import "strings"

type SortingOrder string

const (
	SortingOrderAsc  SortingOrder = "ASC"
	SortingOrderDesc SortingOrder = "DESC"
)

// ParseSortParam splits a raw sort query parameter into the criterion name and
// the requested order. A trailing "-desc" suffix, case-insensitive, selects
// descending order and is stripped before matching.
func ParseSortParam(raw string) (name string, order SortingOrder) {
	order = SortingOrderAsc
	name = raw

	if len(raw) > 5 && strings.EqualFold(raw[len(raw)-5:], "-desc") {
		name = raw[:len(raw)-5]
		order = SortingOrderDesc
	}
	return name, order
}
