package model

import "time"

// Review rating bounds.
const (
	MinRating = 1
	MaxRating = 5
)

// Review is user feedback on a destination. Username is joined in from the
// users table when listing; it is not stored on the row.
type Review struct {
	ID            int64     `json:"id"`
	DestinationID string    `json:"destination_id"`
	UserID        int64     `json:"user_id"`
	Rating        int       `json:"rating"`
	Comment       string    `json:"comment"`
	Username      string    `json:"username"`
	Timestamp     time.Time `json:"timestamp"`
}
