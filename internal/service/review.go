package service

import (
	"context"
	"strings"

	"github.com/escapegenie/api/internal/model"
)

// ReviewRepository defines the interface for review storage
type ReviewRepository interface {
	Create(ctx context.Context, review *model.Review) error
	ListByDestination(ctx context.Context, destinationID string) ([]*model.Review, error)
}

// ReviewService manages destination reviews
type ReviewService struct {
	reviews ReviewRepository
}

// NewReviewService creates a new review service
func NewReviewService(reviews ReviewRepository) *ReviewService {
	return &ReviewService{reviews: reviews}
}

// CreateReviewRequest represents a new review submission
type CreateReviewRequest struct {
	DestinationID string
	UserID        int64
	Username      string
	Rating        int
	Comment       string
}

// Create validates and stores a review, returning the stored record.
func (s *ReviewService) Create(ctx context.Context, req CreateReviewRequest) (*model.Review, error) {
	destinationID := strings.TrimSpace(req.DestinationID)
	if destinationID == "" {
		return nil, ErrDestinationRequired
	}
	if req.Rating < model.MinRating || req.Rating > model.MaxRating {
		return nil, ErrInvalidRating
	}

	review := &model.Review{
		DestinationID: destinationID,
		UserID:        req.UserID,
		Username:      req.Username,
		Rating:        req.Rating,
		Comment:       strings.TrimSpace(req.Comment),
	}
	if err := s.reviews.Create(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

// ListByDestination returns a destination's reviews, newest first.
func (s *ReviewService) ListByDestination(ctx context.Context, destinationID string) ([]*model.Review, error) {
	return s.reviews.ListByDestination(ctx, destinationID)
}
