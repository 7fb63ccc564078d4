package cmd

import (
	"context"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/naturetrails/trails-backend/api"
	"github.com/naturetrails/trails-backend/repositories"
	"github.com/naturetrails/trails-backend/repositories/postgres"
	"github.com/naturetrails/trails-backend/usecases"
	"github.com/naturetrails/trails-backend/utils"
)

func RunServer() error {
	apiConfig := api.Configuration{
		Env:            utils.GetEnv("ENV", "development"),
		AppName:        "trails-backend",
		Port:           utils.GetRequiredEnv[string]("PORT"),
		AppUrl:         utils.GetEnv("APP_URL", ""),
		DefaultTimeout: time.Duration(utils.GetEnv("DEFAULT_TIMEOUT_SECOND", 15)) * time.Second,
	}
	pgConfig := postgres.Configuration{
		ConnectionString:   utils.GetEnv("PG_CONNECTION_STRING", ""),
		Host:               utils.GetEnv("PG_HOSTNAME", ""),
		Port:               utils.GetEnv("PG_PORT", "5432"),
		User:               utils.GetEnv("PG_USER", ""),
		Password:           utils.GetEnv("PG_PASSWORD", ""),
		Database:           utils.GetEnv("PG_DATABASE", "trails"),
		MaxPoolConnections: utils.GetEnv("PG_MAX_POOL_SIZE", 20),
		SslMode:            utils.GetEnv("PG_SSL_MODE", "prefer"),
	}
	smtpConfig := repositories.SmtpConfiguration{
		Host:     utils.GetEnv("SMTP_HOST", ""),
		Port:     utils.GetEnv("SMTP_PORT", "587"),
		Username: utils.GetEnv("SMTP_USERNAME", ""),
		Password: utils.GetEnv("SMTP_PASSWORD", ""),
		Sender:   utils.GetEnv("SMTP_SENDER", "noreply@naturetrails.example"),
	}
	jwtSigningKey := utils.GetRequiredEnv[string]("AUTHENTICATION_JWT_SIGNING_KEY")

	logger := utils.NewLogger(utils.GetEnv("LOGGING_FORMAT", "text"))
	ctx := utils.StoreLoggerInContext(context.Background(), logger)

	pool, err := postgres.NewConnectionPool(ctx, pgConfig)
	if err != nil {
		return errors.Wrap(err, "could not create postgres connection pool")
	}

	var emailSender repositories.EmailSender = repositories.LogEmailSender{}
	if smtpConfig.Host != "" {
		emailSender = repositories.NewSmtpEmailSender(smtpConfig)
	}

	repos := repositories.NewRepositories(pool, []byte(jwtSigningKey), emailSender)
	uc := usecases.NewUsecases(repos)

	router := api.InitRouterMiddlewares(ctx, apiConfig)
	server := api.NewServer(router, apiConfig, uc)

	notify, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.InfoContext(ctx, "starting server", slog.String("port", apiConfig.Port))
		err := server.ListenAndServe()
		if !errors.Is(err, http.ErrServerClosed) {
			logger.ErrorContext(ctx, "error while serving the app", slog.Any("error", err))
		}
		logger.InfoContext(ctx, "server returned")
	}()

	<-notify.Done()
	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(err, "error while shutting down the server")
	}

	return nil
}
