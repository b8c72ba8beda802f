// Package repository implements data access over Postgres. Repositories
// accept a database.Querier so callers can run them against a pool or an
// open transaction, and translate driver errors into the database package's
// sentinel errors.
package repository
