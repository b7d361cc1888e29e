// Package db opens the Postgres pool backing order tracking and applies its
// schema migrations.
package db

import (
	"context"
	"database/sql"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/lib/pq" // database/sql driver for migrations
)

// NewPool parses dsn and opens a pgx pool. The pool connects lazily.
func NewPool(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, err
	}
	return pgxpool.NewWithConfig(ctx, cfg)
}

func openDB(dsn string) (*sql.DB, error) {
	return sql.Open("postgres", dsn)
}
