package models

import "github.com/google/uuid"

// Theme identifies the kind of living thing a species or point of interest
// belongs to.
type Theme string

const (
	ThemeBird      Theme = "bird"
	ThemeButterfly Theme = "butterfly"
	ThemeFlower    Theme = "flower"
	ThemeTree      Theme = "tree"
)

func ThemeFromString(s string) (Theme, bool) {
	switch Theme(s) {
	case ThemeBird, ThemeButterfly, ThemeFlower, ThemeTree:
		return Theme(s), true
	}
	return "", false
}

// Taxonomy chain: species -> family -> class -> reign. Related records are
// attached by explicit relation loaders, nil when not requested.
type Reign struct {
	Id   uuid.UUID
	Name string
}

type TaxonomyClass struct {
	Id      uuid.UUID
	ReignId uuid.UUID
	Name    string

	Reign *Reign
}

type Family struct {
	Id      uuid.UUID
	ClassId uuid.UUID
	Name    string

	Class *TaxonomyClass
}

type Species struct {
	Id             uuid.UUID
	FamilyId       uuid.UUID
	Theme          Theme
	ScientificName string
	CommonName     string

	Family *Family
}

type SpeciesFilters struct {
	Theme            Theme
	CommonNameSearch string
}
