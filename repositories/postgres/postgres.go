package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Configuration struct {
	ConnectionString   string
	Host               string
	Port               string
	User               string
	Password           string
	Database           string
	MaxPoolConnections int
	SslMode            string
}

func (conf Configuration) DSN() string {
	if conf.ConnectionString != "" {
		return conf.ConnectionString
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s database=%s sslmode=%s",
		conf.Host, conf.Port, conf.User, conf.Password, conf.Database, conf.SslMode)
}

func NewConnectionPool(ctx context.Context, conf Configuration) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(conf.DSN())
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}
	if conf.MaxPoolConnections > 0 {
		cfg.MaxConns = int32(conf.MaxPoolConnections)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("unable to create connection pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		return nil, fmt.Errorf("pool.Ping error: %w", err)
	}

	return pool, nil
}

func NewQueryBuilder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}
