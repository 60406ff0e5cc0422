package storage

import (
	"context"
	"time"

	// import the Postgres driver to register it with the database/sql package.
	_ "github.com/lib/pq"
)

type PostgresOptions struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

func NewPostgresStorage(ctx context.Context, dsn string, opts PostgresOptions) (*Storage, error) {
	st, err := open(ctx, DriverPostgres, dsn)
	if err != nil {
		return nil, err
	}

	if opts.MaxOpenConns > 0 {
		st.Connection.SetMaxOpenConns(opts.MaxOpenConns)
	}
	if opts.MaxIdleConns > 0 {
		st.Connection.SetMaxIdleConns(opts.MaxIdleConns)
	}
	if opts.ConnMaxLifetime > 0 {
		st.Connection.SetConnMaxLifetime(opts.ConnMaxLifetime)
	}

	return st, nil
}
