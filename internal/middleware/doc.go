// Package middleware provides composable HTTP middleware: request IDs,
// structured request logging, panic recovery, CORS, gzip compression, rate
// limiting, and bearer-token authentication.
package middleware
