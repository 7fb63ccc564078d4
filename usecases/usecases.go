package usecases

import (
	"github.com/naturetrails/trails-backend/repositories"
	"github.com/naturetrails/trails-backend/usecases/executor_factory"
)

type Usecases struct {
	Repositories repositories.Repositories
}

func NewUsecases(repos repositories.Repositories) Usecases {
	return Usecases{
		Repositories: repos,
	}
}

func (usecases *Usecases) NewExecutorFactory() executor_factory.ExecutorFactory {
	return executor_factory.NewDbExecutorFactory(usecases.Repositories.ExecutorGetter)
}

// NewUnauthenticatedUserUsecase serves the flows that run before any
// credential exists, like requesting a password reset.
func (usecases *Usecases) NewUnauthenticatedUserUsecase() UserUsecase {
	withCreds := UsecasesWithCreds{Usecases: *usecases}
	return withCreds.NewUserUsecase()
}

// NewUnauthenticatedInstallationUsecase serves device self-registration,
// which happens before the installation has any token.
func (usecases *Usecases) NewUnauthenticatedInstallationUsecase() InstallationUsecase {
	withCreds := UsecasesWithCreds{Usecases: *usecases}
	return withCreds.NewInstallationUsecase()
}

func (usecases *Usecases) NewAuthUsecase() *AuthUsecase {
	return NewAuthUsecase(
		usecases.NewExecutorFactory(),
		usecases.Repositories.TrailsDbRepository,
		usecases.Repositories.TrailsDbRepository,
		usecases.Repositories.JwtRepository,
	)
}
