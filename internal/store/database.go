// Package store exports pipeline tables into PostgreSQL.
package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/cockroachdb/errors"
	_ "github.com/lib/pq" // PostgreSQL driver

	"github.com/fortuna/rb70/internal/platform/logging"
)

// Database is a PostgreSQL connection pool.
type Database struct {
	conn   *sql.DB
	logger *logging.Logger
}

// NewDatabase opens and pings a connection pool for dsn.
func NewDatabase(ctx context.Context, dsn string, logger *logging.Logger) (*Database, error) {
	if logger == nil {
		logger = logging.Default()
	}
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "open database")
	}

	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(time.Hour)
	db.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "ping database")
	}
	return NewFromDB(db, logger), nil
}

// NewFromDB wraps an already opened pool.
func NewFromDB(db *sql.DB, logger *logging.Logger) *Database {
	if logger == nil {
		logger = logging.Default()
	}
	return &Database{conn: db, logger: logger.With("component", "store")}
}

func (db *Database) Close() error {
	if db.conn != nil {
		return db.conn.Close()
	}
	return nil
}

// DB returns the underlying *sql.DB.
func (db *Database) DB() *sql.DB {
	return db.conn
}

// HealthCheck pings the database with a short timeout.
func (db *Database) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	return db.conn.PingContext(ctx)
}
