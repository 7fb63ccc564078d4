package dto

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/naturetrails/trails-backend/models"
)

func TestRestrictOnly(t *testing.T) {
	trails := []Trail{
		{Id: uuid.New(), Name: "Crest path", Slug: "crest-path"},
		{Id: uuid.New(), Name: "River loop", Slug: "river-loop"},
		{Id: uuid.New(), Name: "Old forest", Slug: "old-forest"},
	}

	restricted, err := RestrictList(trails, []string{"id"}, nil)
	require.NoError(t, err)
	require.Len(t, restricted, 3)

	for i, raw := range restricted {
		var decoded map[string]any
		require.NoError(t, json.Unmarshal(raw, &decoded))
		assert.Len(t, decoded, 1)
		assert.Equal(t, trails[i].Id.String(), decoded["id"])
	}
}

func TestRestrictOnlyThenExcept(t *testing.T) {
	trail := Trail{Id: uuid.New(), Name: "Crest path", Slug: "crest-path", Length: 4200}

	restricted, err := Restrict(trail, []string{"id", "name", "slug"}, []string{"slug"})
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(restricted, &decoded))
	assert.Equal(t, map[string]any{
		"id":   trail.Id.String(),
		"name": "Crest path",
	}, decoded)
}

func TestRestrictKeepsFieldOrder(t *testing.T) {
	trail := Trail{Id: uuid.New(), Name: "Crest path", Slug: "crest-path"}

	restricted, err := Restrict(trail, nil, []string{"created_at", "updated_at"})
	require.NoError(t, err)

	var names []string
	dec := json.NewDecoder(bytes.NewReader(restricted))
	tok, err := dec.Token()
	require.NoError(t, err)
	require.Equal(t, json.Delim('{'), tok)
	for dec.More() {
		tok, err := dec.Token()
		require.NoError(t, err)
		names = append(names, tok.(string))
		var skip json.RawMessage
		require.NoError(t, dec.Decode(&skip))
	}
	assert.Equal(t, []string{"id", "name", "slug", "length"}, names)
}

func TestRestrictUnknownFieldYieldsEmptyObject(t *testing.T) {
	restricted, err := Restrict(Trail{Id: uuid.New()}, []string{"nope"}, nil)
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(restricted))
}

// Parsing a request body into a model and serializing it back keeps every
// client-writable field.
func TestParseSerializeRoundTrip(t *testing.T) {
	plannedAt := time.Date(2026, 5, 12, 9, 30, 0, 0, time.UTC)
	zoneIds := []uuid.UUID{uuid.New(), uuid.New()}
	body := CreateExcursionBody{
		TrailId:   uuid.New(),
		Name:      "Morning birds",
		PlannedAt: plannedAt,
		Themes:    []string{"bird", "butterfly"},
		ZoneIds:   zoneIds,
	}

	excursion, err := AdaptCreateExcursion(body)
	require.NoError(t, err)

	serialized := AdaptExcursionDto(models.Excursion{
		TrailId:   excursion.TrailId,
		Name:      excursion.Name,
		PlannedAt: excursion.PlannedAt,
		Themes:    excursion.Themes,
		ZoneIds:   excursion.ZoneIds,
	})

	assert.Equal(t, body.TrailId, serialized.TrailId)
	assert.Equal(t, body.Name, serialized.Name)
	assert.Equal(t, body.PlannedAt, serialized.PlannedAt)
	assert.Equal(t, body.Themes, serialized.Themes)
	assert.Equal(t, body.ZoneIds, serialized.ZoneIds)
}

func TestAdaptCreateExcursionRejectsUnknownTheme(t *testing.T) {
	_, err := AdaptCreateExcursion(CreateExcursionBody{
		TrailId:   uuid.New(),
		Name:      "x",
		PlannedAt: time.Now(),
		Themes:    []string{"dragon"},
	})
	assert.ErrorIs(t, err, models.BadParameterError)
}

func TestRestrictListEmptyEncodesAsEmptyArray(t *testing.T) {
	body, err := RestrictList([]Trail{}, nil, nil)
	require.NoError(t, err)

	serialized, err := json.Marshal(body)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(serialized))
}
