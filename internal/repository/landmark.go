package repository

import (
	"context"
	"fmt"

	"github.com/escapegenie/api/internal/database"
	"github.com/escapegenie/api/internal/model"
)

// LandmarkRepository handles curated landmark access
type LandmarkRepository struct {
	db database.Querier
}

// NewLandmarkRepository creates a new landmark repository
func NewLandmarkRepository(db database.Querier) *LandmarkRepository {
	return &LandmarkRepository{db: db}
}

// ListByDestination returns every curated landmark attached to a destination.
func (r *LandmarkRepository) ListByDestination(ctx context.Context, destinationID string) ([]*model.Landmark, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, destination_id, name, category, address, lat, lon
		FROM landmarks
		WHERE destination_id = $1
		ORDER BY name`, destinationID)
	if err != nil {
		return nil, fmt.Errorf("landmark list: %w", err)
	}
	defer rows.Close()

	landmarks := make([]*model.Landmark, 0)
	for rows.Next() {
		var l model.Landmark
		if err := rows.Scan(&l.ID, &l.DestinationID, &l.Name, &l.Category, &l.Address, &l.Lat, &l.Lon); err != nil {
			return nil, fmt.Errorf("landmark scan: %w", err)
		}
		landmarks = append(landmarks, &l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("landmark rows: %w", err)
	}
	return landmarks, nil
}
