package model

// User represents a registered account. PasswordHash is a bcrypt hash and is
// never serialized.
type User struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
}

// SavedDestination links a user to a bookmarked destination.
type SavedDestination struct {
	ID            int64  `json:"id"`
	UserID        int64  `json:"user_id"`
	DestinationID string `json:"destination_id"`
}
