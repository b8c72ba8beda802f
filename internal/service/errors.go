package service

import "errors"

// Centralized service layer errors.
// All errors returned by service methods are defined here for consistency
// and to make error handling in handlers predictable.

// ===== Authentication Errors =====
var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUsernameTaken      = errors.New("username already registered")
	ErrUsernameRequired   = errors.New("username is required")
	ErrPasswordRequired   = errors.New("password is required")
)

// ===== Chat Errors =====
var (
	// ErrModelUnavailable is returned when the language model backing query
	// interpretation could not be loaded. Callers should treat it as a
	// temporary outage, not a bad request.
	ErrModelUnavailable = errors.New("language model unavailable")
)

// ===== Saved Destination Errors =====
var (
	ErrDestinationRequired = errors.New("destination id is required")
	ErrAlreadySaved        = errors.New("destination already saved")
)

// ===== Review Errors =====
var (
	ErrInvalidRating = errors.New("rating must be between 1 and 5")
)
