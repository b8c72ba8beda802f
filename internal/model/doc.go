// Package model defines the typed records shared across the Escape Genie API:
// catalog entities (Destination, Landmark), per-request venue shapes, account
// and review records, and the RFC 9457 error payloads written by handlers.
//
// Catalog records are read-mostly and map one-to-one onto the persisted
// schema; Venue is ephemeral and exists only inside a /api/venues response.
package model
