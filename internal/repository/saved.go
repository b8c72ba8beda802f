package repository

import (
	"context"
	"fmt"

	"github.com/escapegenie/api/internal/database"
	"github.com/escapegenie/api/internal/model"
)

// SavedRepository handles saved-destination data access
type SavedRepository struct {
	db database.Querier
}

// NewSavedRepository creates a new saved-destination repository
func NewSavedRepository(db database.Querier) *SavedRepository {
	return &SavedRepository{db: db}
}

// Exists reports whether the user has already saved the destination.
func (r *SavedRepository) Exists(ctx context.Context, userID int64, destinationID string) (bool, error) {
	row := r.db.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM saved_destinations
			WHERE user_id = $1 AND destination_id = $2
		)`, userID, destinationID)

	var exists bool
	if err := row.Scan(&exists); err != nil {
		return false, fmt.Errorf("saved exists: %w", err)
	}
	return exists, nil
}

// Save records a destination for a user. Returns database.ErrDuplicate when
// the pair is already present.
func (r *SavedRepository) Save(ctx context.Context, userID int64, destinationID string) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO saved_destinations (user_id, destination_id)
		VALUES ($1, $2)`, userID, destinationID)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return database.ErrDuplicate
		}
		return fmt.Errorf("saved insert: %w", err)
	}
	return nil
}

// ListDestinations returns the full destination records a user has saved,
// ordered by name.
func (r *SavedRepository) ListDestinations(ctx context.Context, userID int64) ([]*model.Destination, error) {
	rows, err := r.db.Query(ctx, `
		SELECT d.id, d.name, d.city, d.country, d.description, d.tags, d.lat, d.lon, d.cost_tier
		FROM saved_destinations s
		JOIN destinations d ON d.id = s.destination_id
		WHERE s.user_id = $1
		ORDER BY d.name`, userID)
	if err != nil {
		return nil, fmt.Errorf("saved list: %w", err)
	}
	defer rows.Close()

	return scanDestinations(rows)
}

// Remove deletes a saved destination. Returns database.ErrNotFound when the
// pair was not saved.
func (r *SavedRepository) Remove(ctx context.Context, userID int64, destinationID string) error {
	tag, err := r.db.Exec(ctx, `
		DELETE FROM saved_destinations
		WHERE user_id = $1 AND destination_id = $2`, userID, destinationID)
	if err != nil {
		return fmt.Errorf("saved delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return database.ErrNotFound
	}
	return nil
}
