package db

import (
	"context"
	"loanpayback/internal/config"

	"github.com/jackc/pgx/v5/pgxpool"
)

// NewPostgresConnection opens the shared pool. Every query leases a
// connection from the pool for its own duration; nothing holds a single
// connection across requests.
func NewPostgresConnection(cfg *config.Config) (*pgxpool.Pool, error) {
	dsn := cfg.GetDSN()
	pool, err := pgxpool.New(context.Background(), dsn)

	if err != nil {
		return nil, err
	}

	err = pool.Ping(context.Background())
	if err != nil {
		return nil, err
	}

	return pool, nil
}
