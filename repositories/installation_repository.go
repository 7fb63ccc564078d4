package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/guregu/null/v5"

	"github.com/naturetrails/trails-backend/models"
	"github.com/naturetrails/trails-backend/repositories/dbmodels"
)

func (repo *TrailsDbRepository) ListInstallations(
	ctx context.Context,
	exec Executor,
	page models.PageRequest,
	sortParam string,
) ([]models.Installation, models.Page, error) {
	query := NewListQuery(dbmodels.SelectInstallationColumn, dbmodels.TABLE_INSTALLATIONS).
		Paginate(page).
		Sorts("firstStartedAt", "createdAt", "eventsCount").
		DefaultSort("firstStartedAt", models.SortingOrderDesc).
		SortParam(sortParam)

	return FetchListPage(ctx, exec, query, dbmodels.AdaptInstallation)
}

func (repo *TrailsDbRepository) GetInstallationById(ctx context.Context, exec Executor,
	installationId uuid.UUID,
) (models.Installation, error) {
	return SqlToModel(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectInstallationColumn...).
			From(dbmodels.TABLE_INSTALLATIONS).
			Where(squirrel.Eq{"id": installationId}),
		dbmodels.AdaptInstallation,
	)
}

func (repo *TrailsDbRepository) GetInstallationByPhysicalDeviceId(ctx context.Context, exec Executor,
	physicalDeviceId string,
) (*models.Installation, error) {
	return SqlToOptionalModel(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectInstallationColumn...).
			From(dbmodels.TABLE_INSTALLATIONS).
			Where(squirrel.Eq{"physical_device_id": physicalDeviceId}),
		dbmodels.AdaptInstallation,
	)
}

func (repo *TrailsDbRepository) CreateInstallation(ctx context.Context, exec Executor,
	attributes models.CreateInstallation, sharedSecret []byte,
) error {
	return ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().Insert(dbmodels.TABLE_INSTALLATIONS).
			Columns(
				"id",
				"physical_device_id",
				"shared_secret",
				"first_started_at",
			).
			Values(
				attributes.Id,
				attributes.PhysicalDeviceId,
				sharedSecret,
				attributes.FirstStartedAt,
			),
	)
}

func (repo *TrailsDbRepository) UpdateInstallation(ctx context.Context, exec Executor,
	attributes models.UpdateInstallation,
) error {
	query := NewQueryBuilder().Update(dbmodels.TABLE_INSTALLATIONS).
		Where(squirrel.Eq{"id": attributes.Id}).
		Set("updated_at", squirrel.Expr("now()"))

	if attributes.PhysicalDeviceId != nil {
		query = query.Set("physical_device_id", *attributes.PhysicalDeviceId)
	}

	return ExecBuilder(ctx, exec, query)
}

func (repo *TrailsDbRepository) CreateInstallationEvent(ctx context.Context, exec Executor,
	attributes models.CreateInstallationEvent, newEventId uuid.UUID,
) error {
	err := ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().Insert(dbmodels.TABLE_INSTALLATION_EVENTS).
			Columns(
				"id",
				"installation_id",
				"type",
				"version",
				"properties",
				"occurred_at",
			).
			Values(
				newEventId,
				attributes.InstallationId,
				attributes.Type,
				null.NewString(attributes.Version, attributes.Version != ""),
				attributes.Properties,
				attributes.OccurredAt,
			),
	)
	if err != nil {
		return err
	}

	// Keep the denormalized counter on the installation in step, inside the
	// caller's transaction.
	return ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().Update(dbmodels.TABLE_INSTALLATIONS).
			Where(squirrel.Eq{"id": attributes.InstallationId}).
			Set("events_count", squirrel.Expr("events_count + 1")),
	)
}

func (repo *TrailsDbRepository) GetInstallationEventById(ctx context.Context, exec Executor,
	eventId uuid.UUID,
) (models.InstallationEvent, error) {
	return SqlToModel(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectInstallationEventColumn...).
			From(dbmodels.TABLE_INSTALLATION_EVENTS).
			Where(squirrel.Eq{"id": eventId}),
		dbmodels.AdaptInstallationEvent,
	)
}

func (repo *TrailsDbRepository) ListInstallationEvents(
	ctx context.Context,
	exec Executor,
	page models.PageRequest,
	sortParam string,
	filters models.InstallationEventFilters,
) ([]models.InstallationEvent, models.Page, error) {
	query := NewListQuery(dbmodels.SelectInstallationEventColumn, dbmodels.TABLE_INSTALLATION_EVENTS).
		Where(squirrel.Eq{"installation_id": filters.InstallationId}).
		Paginate(page).
		Sorts("occurredAt", "createdAt").
		DefaultSort("occurredAt", models.SortingOrderDesc).
		SortParam(sortParam)

	if filters.Type != "" {
		query.Filter(func(q squirrel.SelectBuilder) *squirrel.SelectBuilder {
			filtered := q.Where(squirrel.Eq{"type": filters.Type})
			return &filtered
		})
	}

	return FetchListPage(ctx, exec, query, dbmodels.AdaptInstallationEvent)
}
