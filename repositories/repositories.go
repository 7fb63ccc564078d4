package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repositories struct {
	ExecutorGetter     ExecutorGetter
	TrailsDbRepository *TrailsDbRepository
	JwtRepository      *JwtRepository
	EmailSender        EmailSender
}

func NewRepositories(
	connectionPool *pgxpool.Pool,
	jwtSigningKey []byte,
	emailSender EmailSender,
) Repositories {
	return Repositories{
		ExecutorGetter:     NewExecutorGetter(connectionPool),
		TrailsDbRepository: NewTrailsDbRepository(),
		JwtRepository:      NewJwtRepository(jwtSigningKey),
		EmailSender:        emailSender,
	}
}
