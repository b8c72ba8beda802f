// Package service contains the application's business logic. Services
// depend on narrow consumer-side interfaces over the repository and client
// packages, return sentinel errors from errors.go, and leave HTTP concerns
// to the handler package.
package service
