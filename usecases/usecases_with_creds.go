package usecases

import (
	"github.com/naturetrails/trails-backend/models"
	"github.com/naturetrails/trails-backend/usecases/security"
)

// UsecasesWithCreds binds the shared dependencies to the credentials of one
// request. Handlers build a fresh instance per request.
type UsecasesWithCreds struct {
	Usecases
	Credentials models.Credentials
}

func (usecases *UsecasesWithCreds) NewEnforceSecurity() security.EnforceSecurity {
	return &security.EnforceSecurityImpl{
		Credentials: usecases.Credentials,
	}
}

func (usecases *UsecasesWithCreds) NewEnforceTrailSecurity() security.EnforceSecurityTrail {
	return &security.EnforceSecurityTrailImpl{
		EnforceSecurity: usecases.NewEnforceSecurity(),
		Credentials:     usecases.Credentials,
	}
}

func (usecases *UsecasesWithCreds) NewEnforceExcursionSecurity() security.EnforceSecurityExcursion {
	return &security.EnforceSecurityExcursionImpl{
		EnforceSecurity: usecases.NewEnforceSecurity(),
		Credentials:     usecases.Credentials,
	}
}

func (usecases *UsecasesWithCreds) NewEnforceUserSecurity() security.EnforceSecurityUser {
	return &security.EnforceSecurityUserImpl{
		EnforceSecurity: usecases.NewEnforceSecurity(),
		Credentials:     usecases.Credentials,
	}
}

func (usecases *UsecasesWithCreds) NewEnforceInstallationSecurity() security.EnforceSecurityInstallation {
	return &security.EnforceSecurityInstallationImpl{
		EnforceSecurity: usecases.NewEnforceSecurity(),
		Credentials:     usecases.Credentials,
	}
}

func (usecases *UsecasesWithCreds) NewTrailUsecase() TrailUsecase {
	return TrailUsecase{
		enforceSecurity: usecases.NewEnforceTrailSecurity(),
		executorFactory: usecases.NewExecutorFactory(),
		repository:      usecases.Repositories.TrailsDbRepository,
	}
}

func (usecases *UsecasesWithCreds) NewSpeciesUsecase() SpeciesUsecase {
	return SpeciesUsecase{
		enforceSecurity: usecases.NewEnforceTrailSecurity(),
		executorFactory: usecases.NewExecutorFactory(),
		repository:      usecases.Repositories.TrailsDbRepository,
	}
}

func (usecases *UsecasesWithCreds) NewExcursionUsecase() ExcursionUsecase {
	return ExcursionUsecase{
		enforceSecurity: usecases.NewEnforceExcursionSecurity(),
		executorFactory: usecases.NewExecutorFactory(),
		credentials:     usecases.Credentials,
		repository:      usecases.Repositories.TrailsDbRepository,
	}
}

func (usecases *UsecasesWithCreds) NewUserUsecase() UserUsecase {
	return UserUsecase{
		enforceSecurity: usecases.NewEnforceUserSecurity(),
		executorFactory: usecases.NewExecutorFactory(),
		credentials:     usecases.Credentials,
		repository:      usecases.Repositories.TrailsDbRepository,
		jwtRepository:   usecases.Repositories.JwtRepository,
		emailSender:     usecases.Repositories.EmailSender,
	}
}

func (usecases *UsecasesWithCreds) NewInstallationUsecase() InstallationUsecase {
	return InstallationUsecase{
		enforceSecurity: usecases.NewEnforceInstallationSecurity(),
		executorFactory: usecases.NewExecutorFactory(),
		repository:      usecases.Repositories.TrailsDbRepository,
		jwtRepository:   usecases.Repositories.JwtRepository,
	}
}
