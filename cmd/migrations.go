package cmd

import (
	"context"
	"fmt"

	"github.com/naturetrails/trails-backend/repositories"
	"github.com/naturetrails/trails-backend/repositories/postgres"
	"github.com/naturetrails/trails-backend/utils"
)

func RunMigrations() error {
	pgConfig := postgres.Configuration{
		ConnectionString: utils.GetEnv("PG_CONNECTION_STRING", ""),
		Host:             utils.GetEnv("PG_HOSTNAME", ""),
		Port:             utils.GetEnv("PG_PORT", "5432"),
		User:             utils.GetEnv("PG_USER", ""),
		Password:         utils.GetEnv("PG_PASSWORD", ""),
		Database:         utils.GetEnv("PG_DATABASE", "trails"),
		SslMode:          utils.GetEnv("PG_SSL_MODE", "prefer"),
	}

	logger := utils.NewLogger(utils.GetEnv("LOGGING_FORMAT", "text"))
	ctx := utils.StoreLoggerInContext(context.Background(), logger)

	if err := repositories.RunMigrations(pgConfig, logger); err != nil {
		logger.ErrorContext(ctx, fmt.Sprintf("error running migrations: %v", err))
		return err
	}

	return nil
}
