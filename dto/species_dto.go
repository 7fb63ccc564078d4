package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/naturetrails/trails-backend/models"
)

type Reign struct {
	Id   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type TaxonomyClass struct {
	Id    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Reign *Reign    `json:"reign,omitempty"`
}

type Family struct {
	Id    uuid.UUID      `json:"id"`
	Name  string         `json:"name"`
	Class *TaxonomyClass `json:"class,omitempty"`
}

type Species struct {
	Id             uuid.UUID `json:"id"`
	Theme          string    `json:"theme"`
	ScientificName string    `json:"scientific_name"`
	CommonName     string    `json:"common_name"`
	Family         *Family   `json:"family,omitempty"`
}

func AdaptSpeciesDto(species models.Species) Species {
	out := Species{
		Id:             species.Id,
		Theme:          string(species.Theme),
		ScientificName: species.ScientificName,
		CommonName:     species.CommonName,
	}
	if species.Family != nil {
		family := Family{
			Id:   species.Family.Id,
			Name: species.Family.Name,
		}
		if species.Family.Class != nil {
			class := TaxonomyClass{
				Id:   species.Family.Class.Id,
				Name: species.Family.Class.Name,
			}
			if species.Family.Class.Reign != nil {
				class.Reign = &Reign{
					Id:   species.Family.Class.Reign.Id,
					Name: species.Family.Class.Reign.Name,
				}
			}
			family.Class = &class
		}
		out.Family = &family
	}
	return out
}

type PointOfInterest struct {
	Id        uuid.UUID `json:"id"`
	ZoneId    uuid.UUID `json:"zone_id"`
	Theme     string    `json:"theme"`
	Position  int       `json:"position"`
	CreatedAt time.Time `json:"created_at"`
	Species   *Species  `json:"species,omitempty"`
}

func AdaptPointOfInterestDto(poi models.PointOfInterest) PointOfInterest {
	out := PointOfInterest{
		Id:        poi.Id,
		ZoneId:    poi.ZoneId,
		Theme:     string(poi.Theme),
		Position:  poi.Position,
		CreatedAt: poi.CreatedAt,
	}
	if poi.Species != nil {
		species := AdaptSpeciesDto(*poi.Species)
		out.Species = &species
	}
	return out
}
