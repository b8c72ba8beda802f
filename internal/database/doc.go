// Package database provides the PostgreSQL access layer for the Escape Genie
// API.
//
// It wraps a pgx connection pool behind a small Querier interface so that
// repositories stay mockable and transaction agnostic. Standard sentinel
// errors (ErrNotFound, ErrDuplicate, ErrConnection) are defined here and
// checked with errors.Is() in calling code; driver-specific failure shapes
// (SQLSTATE codes, pgx.ErrNoRows) are translated at this boundary and never
// leak into services.
package database
