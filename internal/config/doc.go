// Package config loads application configuration from environment variables.
//
// All settings have development-friendly defaults; Validate() fails fast at
// startup on anything that would leave the server in a broken state. The
// Geoapify API key is deliberately optional: without it the venues endpoint
// degrades to curated results only.
package config
