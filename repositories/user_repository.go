package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/naturetrails/trails-backend/models"
	"github.com/naturetrails/trails-backend/repositories/dbmodels"
)

type UserFilters struct {
	Search string
}

func (repo *TrailsDbRepository) ListUsers(
	ctx context.Context,
	exec Executor,
	page models.PageRequest,
	sortParam string,
	filters UserFilters,
) ([]models.User, models.Page, error) {
	query := NewListQuery(dbmodels.SelectUserColumn, dbmodels.TABLE_USERS).
		Paginate(page).
		Sorts("email", "lastName", "createdAt").
		DefaultSort("email", models.SortingOrderAsc).
		SortParam(sortParam)

	if filters.Search != "" {
		query.Filter(func(q squirrel.SelectBuilder) *squirrel.SelectBuilder {
			pattern := "%" + filters.Search + "%"
			filtered := q.Where(squirrel.Or{
				squirrel.ILike{"email": pattern},
				squirrel.ILike{"first_name": pattern},
				squirrel.ILike{"last_name": pattern},
			})
			return &filtered
		})
	}

	return FetchListPage(ctx, exec, query, dbmodels.AdaptUser)
}

func (repo *TrailsDbRepository) GetUserById(ctx context.Context, exec Executor, userId uuid.UUID) (models.User, error) {
	return SqlToModel(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectUserColumn...).
			From(dbmodels.TABLE_USERS).
			Where(squirrel.Eq{"id": userId}),
		dbmodels.AdaptUser,
	)
}

// GetUserByEmail returns nil without error when no account matches, so the
// caller can distinguish "unknown" from a database failure.
func (repo *TrailsDbRepository) GetUserByEmail(ctx context.Context, exec Executor, email string) (*models.User, error) {
	return SqlToOptionalModel(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectUserColumn...).
			From(dbmodels.TABLE_USERS).
			Where(squirrel.Eq{"email": email}),
		dbmodels.AdaptUser,
	)
}

func (repo *TrailsDbRepository) CreateUser(ctx context.Context, exec Executor,
	newUserId uuid.UUID, attributes models.CreateUser, passwordHash []byte, active bool,
) error {
	return ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().Insert(dbmodels.TABLE_USERS).
			Columns(
				"id",
				"email",
				"first_name",
				"last_name",
				"role",
				"active",
				"password_hash",
			).
			Values(
				newUserId,
				attributes.Email,
				attributes.FirstName,
				attributes.LastName,
				attributes.Role.String(),
				active,
				passwordHash,
			),
	)
}

func (repo *TrailsDbRepository) UpdateUser(ctx context.Context, exec Executor,
	attributes models.UpdateUser, passwordHash []byte,
) error {
	query := NewQueryBuilder().Update(dbmodels.TABLE_USERS).
		Where(squirrel.Eq{"id": attributes.Id}).
		Set("updated_at", squirrel.Expr("now()"))

	if attributes.Email != nil {
		query = query.Set("email", *attributes.Email)
	}
	if attributes.FirstName != nil {
		query = query.Set("first_name", *attributes.FirstName)
	}
	if attributes.LastName != nil {
		query = query.Set("last_name", *attributes.LastName)
	}
	if attributes.Role != nil {
		query = query.Set("role", attributes.Role.String())
	}
	if attributes.Active != nil {
		query = query.Set("active", *attributes.Active)
	}
	if passwordHash != nil {
		query = query.Set("password_hash", passwordHash)
	}

	return ExecBuilder(ctx, exec, query)
}
