// Package seed holds the database schema and the curated travel catalog
// loaded by cmd/seed.
package seed
