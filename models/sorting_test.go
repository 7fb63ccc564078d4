package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSortParam(t *testing.T) {
	tts := []struct {
		raw   string
		name  string
		order SortingOrder
	}{
		{raw: "name", name: "name", order: SortingOrderAsc},
		{raw: "name-desc", name: "name", order: SortingOrderDesc},
		{raw: "name-DESC", name: "name", order: SortingOrderDesc},
		{raw: "planned_at-desc", name: "planned_at", order: SortingOrderDesc},
		{raw: "", name: "", order: SortingOrderAsc},
		// Only a trailing suffix flips the order.
		{raw: "-desc", name: "-desc", order: SortingOrderAsc},
	}

	for _, tt := range tts {
		t.Run(tt.raw, func(t *testing.T) {
			name, order := ParseSortParam(tt.raw)
			assert.Equal(t, tt.name, name)
			assert.Equal(t, tt.order, order)
		})
	}
}
