package storage

import (
	"context"

	// import the SQLite driver to register it with the database/sql package.
	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

func NewSQLiteStorage(ctx context.Context, path string) (*Storage, error) {
	return open(ctx, DriverSQLite, path)
}
