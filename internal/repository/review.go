package repository

import (
	"context"
	"fmt"

	"github.com/escapegenie/api/internal/database"
	"github.com/escapegenie/api/internal/model"
)

// ReviewRepository handles review data access
type ReviewRepository struct {
	db database.Querier
}

// NewReviewRepository creates a new review repository
func NewReviewRepository(db database.Querier) *ReviewRepository {
	return &ReviewRepository{db: db}
}

// Create inserts a new review and fills in the generated ID and timestamp.
func (r *ReviewRepository) Create(ctx context.Context, review *model.Review) error {
	row := r.db.QueryRow(ctx, `
		INSERT INTO reviews (destination_id, user_id, rating, comment)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`, review.DestinationID, review.UserID, review.Rating, review.Comment)

	if err := row.Scan(&review.ID, &review.Timestamp); err != nil {
		return fmt.Errorf("review create: %w", err)
	}
	return nil
}

// ListByDestination returns a destination's reviews, newest first, with the
// reviewer's username joined in.
func (r *ReviewRepository) ListByDestination(ctx context.Context, destinationID string) ([]*model.Review, error) {
	rows, err := r.db.Query(ctx, `
		SELECT r.id, r.destination_id, r.user_id, r.rating, r.comment, r.created_at, u.username
		FROM reviews r
		JOIN users u ON u.id = r.user_id
		WHERE r.destination_id = $1
		ORDER BY r.created_at DESC`, destinationID)
	if err != nil {
		return nil, fmt.Errorf("review list: %w", err)
	}
	defer rows.Close()

	reviews := make([]*model.Review, 0)
	for rows.Next() {
		var rev model.Review
		if err := rows.Scan(&rev.ID, &rev.DestinationID, &rev.UserID, &rev.Rating, &rev.Comment, &rev.Timestamp, &rev.Username); err != nil {
			return nil, fmt.Errorf("review scan: %w", err)
		}
		reviews = append(reviews, &rev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("review rows: %w", err)
	}
	return reviews, nil
}
