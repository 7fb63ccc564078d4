package dbmodels

import (
	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	"github.com/naturetrails/trails-backend/models"
	"github.com/naturetrails/trails-backend/utils"
)

type DBReign struct {
	Id   uuid.UUID `db:"id"`
	Name string    `db:"name"`
}

type DBTaxonomyClass struct {
	Id      uuid.UUID `db:"id"`
	ReignId uuid.UUID `db:"reign_id"`
	Name    string    `db:"name"`
}

type DBFamily struct {
	Id      uuid.UUID `db:"id"`
	ClassId uuid.UUID `db:"class_id"`
	Name    string    `db:"name"`
}

type DBSpecies struct {
	Id             uuid.UUID `db:"id"`
	FamilyId       uuid.UUID `db:"family_id"`
	Theme          string    `db:"theme"`
	ScientificName string    `db:"scientific_name"`
	CommonName     string    `db:"common_name"`
}

const (
	TABLE_REIGNS           = "reigns"
	TABLE_TAXONOMY_CLASSES = "taxonomy_classes"
	TABLE_FAMILIES         = "families"
	TABLE_SPECIES          = "species"
)

var (
	SelectReignColumn         = utils.ColumnList[DBReign]()
	SelectTaxonomyClassColumn = utils.ColumnList[DBTaxonomyClass]()
	SelectFamilyColumn        = utils.ColumnList[DBFamily]()
	SelectSpeciesColumn       = utils.ColumnList[DBSpecies]()
)

func AdaptReign(db DBReign) (models.Reign, error) {
	return models.Reign{
		Id:   db.Id,
		Name: db.Name,
	}, nil
}

func AdaptTaxonomyClass(db DBTaxonomyClass) (models.TaxonomyClass, error) {
	return models.TaxonomyClass{
		Id:      db.Id,
		ReignId: db.ReignId,
		Name:    db.Name,
	}, nil
}

func AdaptFamily(db DBFamily) (models.Family, error) {
	return models.Family{
		Id:      db.Id,
		ClassId: db.ClassId,
		Name:    db.Name,
	}, nil
}

func AdaptSpecies(db DBSpecies) (models.Species, error) {
	theme, ok := models.ThemeFromString(db.Theme)
	if !ok {
		return models.Species{}, errors.Newf("unknown species theme %q", db.Theme)
	}
	return models.Species{
		Id:             db.Id,
		FamilyId:       db.FamilyId,
		Theme:          theme,
		ScientificName: db.ScientificName,
		CommonName:     db.CommonName,
	}, nil
}
