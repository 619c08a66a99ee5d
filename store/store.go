// Package store holds the Postgres-backed account and catalog stores.
package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"
	_ "github.com/jackc/pgx/v4/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/rs/zerolog"
	"github.com/sethvargo/go-retry"

	"moodtunes/migrations"
)

// Connect opens a connection pool and verifies it with a ping, retrying
// with fibonacci backoff so the server survives the database coming up
// after it does (the usual compose startup order).
func Connect(ctx context.Context, databaseURL string, log zerolog.Logger) (*pgxpool.Pool, error) {
	var pool *pgxpool.Pool
	backoff := retry.WithMaxRetries(6, retry.NewFibonacci(500*time.Millisecond))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		var err error
		pool, err = pgxpool.Connect(ctx, databaseURL)
		if err != nil {
			log.Warn().Err(err).Msg("database not reachable, retrying")
			return retry.RetryableError(err)
		}
		if err := pool.Ping(ctx); err != nil {
			pool.Close()
			log.Warn().Err(err).Msg("database ping failed, retrying")
			return retry.RetryableError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return pool, nil
}

// Migrate applies the embedded goose migrations. Safe to run on every
// start; goose tracks applied versions.
func Migrate(databaseURL string) error {
	db, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return err
	}
	defer db.Close()

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	return goose.Up(db, ".")
}
