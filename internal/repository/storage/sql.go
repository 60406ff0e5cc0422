package storage

import (
	"context"
	"database/sql"
	"fmt"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite3"
)

var resultsSchema = map[string]string{
	DriverPostgres: `CREATE TABLE IF NOT EXISTS game_results (
		id         BIGSERIAL PRIMARY KEY,
		winner     TEXT NULL,
		loser      TEXT NULL,
		is_draw    BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	DriverSQLite: `CREATE TABLE IF NOT EXISTS game_results (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		winner     TEXT NULL,
		loser      TEXT NULL,
		is_draw    BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
}

// Storage is a database/sql connection together with the driver it was opened with.
type Storage struct {
	Connection *sql.DB
	Driver     string
}

func open(ctx context.Context, driver, dsn string) (*Storage, error) {
	conn, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("can't open database: %w", err)
	}

	if err = conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("can't connect to database: %w", err)
	}

	return &Storage{Connection: conn, Driver: driver}, nil
}

// Init - creates the results table if it does not exist yet.
func (that *Storage) Init(ctx context.Context) error {
	query, ok := resultsSchema[that.Driver]
	if !ok {
		return fmt.Errorf("no schema for driver %q", that.Driver)
	}

	if _, err := that.Connection.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("can't create table: %w", err)
	}

	return nil
}

func (that *Storage) Close() error {
	return that.Connection.Close()
}
