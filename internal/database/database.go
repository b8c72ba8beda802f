package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Standard errors for database operations.
// Use errors.Is() to check these error types in calling code.
var (
	// ErrNotFound indicates the requested record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicate indicates a unique constraint violation (e.g., duplicate username).
	ErrDuplicate = errors.New("duplicate record")

	// ErrConnection indicates a failure to connect to or communicate with the database.
	ErrConnection = errors.New("database connection error")
)

// Querier is the subset of pgx operations repositories depend on. Both
// *pgxpool.Pool and pgx.Tx satisfy it, so repository code is transaction
// agnostic.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// Config holds database configuration
type Config struct {
	URL string
}

// DB wraps a pgx connection pool. Connections are acquired per query and
// released on every exit path; nothing is held across requests.
type DB struct {
	pool   *pgxpool.Pool
	config Config
}

// New creates a DB for the given configuration without connecting.
func New(cfg Config) *DB {
	return &DB{config: cfg}
}

// Connect establishes and verifies the connection pool.
func (d *DB) Connect(ctx context.Context) error {
	pool, err := pgxpool.New(ctx, d.config.URL)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrConnection, err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return fmt.Errorf("%w: ping failed: %v", ErrConnection, err)
	}
	d.pool = pool
	return nil
}

// Close releases the connection pool.
func (d *DB) Close() error {
	if d.pool != nil {
		d.pool.Close()
	}
	return nil
}

// Ping checks the database connection.
func (d *DB) Ping(ctx context.Context) error {
	if d.pool == nil {
		return ErrConnection
	}
	if err := d.pool.Ping(ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrConnection, err)
	}
	return nil
}

// Pool exposes the underlying pool as a Querier for repositories.
func (d *DB) Pool() Querier {
	return d.pool
}

// IsUniqueViolation reports whether err is a PostgreSQL unique constraint
// violation (SQLSTATE 23505).
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// IsNoRows reports whether err means the query matched nothing.
func IsNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
