package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/naturetrails/trails-backend/models"
	"github.com/naturetrails/trails-backend/repositories/dbmodels"
)

func (repo *TrailsDbRepository) ListParticipantsOfExcursion(ctx context.Context, exec Executor,
	excursionId uuid.UUID,
) ([]models.Participant, error) {
	return SqlToListOfModels(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectParticipantColumn...).
			From(dbmodels.TABLE_PARTICIPANTS).
			Where(squirrel.Eq{"excursion_id": excursionId}).
			OrderBy("created_at ASC"),
		dbmodels.AdaptParticipant,
	)
}

func (repo *TrailsDbRepository) GetParticipantById(ctx context.Context, exec Executor,
	participantId uuid.UUID,
) (models.Participant, error) {
	return SqlToModel(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectParticipantColumn...).
			From(dbmodels.TABLE_PARTICIPANTS).
			Where(squirrel.Eq{"id": participantId}),
		dbmodels.AdaptParticipant,
	)
}

func (repo *TrailsDbRepository) CreateParticipant(ctx context.Context, exec Executor,
	attributes models.CreateParticipant, newParticipantId uuid.UUID,
) error {
	return ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().Insert(dbmodels.TABLE_PARTICIPANTS).
			Columns(
				"id",
				"excursion_id",
				"name",
			).
			Values(
				newParticipantId,
				attributes.ExcursionId,
				attributes.Name,
			),
	)
}

func (repo *TrailsDbRepository) UpdateParticipant(ctx context.Context, exec Executor,
	attributes models.UpdateParticipant,
) error {
	return ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().Update(dbmodels.TABLE_PARTICIPANTS).
			Where(squirrel.Eq{"id": attributes.Id}).
			Set("name", attributes.Name),
	)
}

func (repo *TrailsDbRepository) DeleteParticipant(ctx context.Context, exec Executor, participantId uuid.UUID) error {
	return ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().
			Delete(dbmodels.TABLE_PARTICIPANTS).
			Where(squirrel.Eq{"id": participantId}),
	)
}
