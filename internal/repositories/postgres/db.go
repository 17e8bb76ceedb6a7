package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

const schema = `
    CREATE TABLE IF NOT EXISTS delivery_records (
        id            BIGSERIAL PRIMARY KEY,
        customer_name TEXT NOT NULL,
        day_of_week   TEXT NOT NULL,
        time_slot     TEXT NOT NULL,
        package_size  TEXT,
        outcome       TEXT NOT NULL
    )`

// Connect opens a pgx pool against databaseURL and ensures the delivery
// log table exists.
func Connect(ctx context.Context, databaseURL string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	if _, err := pool.Exec(ctx, schema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ensure delivery_records table: %w", err)
	}
	return pool, nil
}
