// Package handler provides HTTP request handlers for the Escape Genie API.
//
// Each handler struct encapsulates the service it serves requests for and
// follows a consistent pattern:
//
//   - Constructor function (NewXxxHandler) accepts the service dependency
//   - Methods handle specific HTTP endpoints
//   - Response helpers from response.go standardize output format
//   - Errors are mapped to RFC 9457 Problem Details responses
//
// The chat and venue endpoints return their payloads bare (a destination
// array, a venue collection) to keep the wire format stable for existing
// clients. Authenticated endpoints read the user's identity from the request
// context via the middleware package.
package handler
