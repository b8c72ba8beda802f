package service

import (
	"context"
	"errors"
	"strings"

	"github.com/escapegenie/api/internal/database"
	"github.com/escapegenie/api/internal/model"
)

// SavedRepository defines the interface for saved-destination storage
type SavedRepository interface {
	Exists(ctx context.Context, userID int64, destinationID string) (bool, error)
	Save(ctx context.Context, userID int64, destinationID string) error
	ListDestinations(ctx context.Context, userID int64) ([]*model.Destination, error)
	Remove(ctx context.Context, userID int64, destinationID string) error
}

// SavedService manages a user's saved-destination list
type SavedService struct {
	saved SavedRepository
}

// NewSavedService creates a new saved-destination service
func NewSavedService(saved SavedRepository) *SavedService {
	return &SavedService{saved: saved}
}

// Save adds a destination to the user's list. Saving an already-saved
// destination returns ErrAlreadySaved and changes nothing.
func (s *SavedService) Save(ctx context.Context, userID int64, destinationID string) error {
	destinationID = strings.TrimSpace(destinationID)
	if destinationID == "" {
		return ErrDestinationRequired
	}

	exists, err := s.saved.Exists(ctx, userID, destinationID)
	if err != nil {
		return err
	}
	if exists {
		return ErrAlreadySaved
	}

	if err := s.saved.Save(ctx, userID, destinationID); err != nil {
		// Lost a race with a concurrent save of the same pair.
		if errors.Is(err, database.ErrDuplicate) {
			return ErrAlreadySaved
		}
		return err
	}
	return nil
}

// List returns the destinations the user has saved.
func (s *SavedService) List(ctx context.Context, userID int64) ([]*model.Destination, error) {
	return s.saved.ListDestinations(ctx, userID)
}

// Remove drops a destination from the user's list. Removing a destination
// that was never saved succeeds, so deletes can be retried freely.
func (s *SavedService) Remove(ctx context.Context, userID int64, destinationID string) error {
	destinationID = strings.TrimSpace(destinationID)
	if destinationID == "" {
		return ErrDestinationRequired
	}

	if err := s.saved.Remove(ctx, userID, destinationID); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil
		}
		return err
	}
	return nil
}
