package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/escapegenie/api/internal/middleware"
	"github.com/escapegenie/api/internal/model"
	"github.com/escapegenie/api/internal/service"
)

// ReviewManager defines the interface for review operations
type ReviewManager interface {
	Create(ctx context.Context, req service.CreateReviewRequest) (*model.Review, error)
	ListByDestination(ctx context.Context, destinationID string) ([]*model.Review, error)
}

// ReviewHandler handles the destination review endpoints
type ReviewHandler struct {
	reviews ReviewManager
}

// NewReviewHandler creates a new review handler
func NewReviewHandler(reviews ReviewManager) *ReviewHandler {
	return &ReviewHandler{reviews: reviews}
}

// createReviewRequest is the wire format for POST /api/reviews. Decoding is
// lenient because older clients also send a username field; the reviewer
// identity always comes from the bearer token.
type createReviewRequest struct {
	DestinationID string `json:"destination_id"`
	Rating        int    `json:"rating"`
	Comment       string `json:"comment"`
}

// Create handles POST /api/reviews - leave a review on a destination
func (h *ReviewHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	var req createReviewRequest
	if err := DecodeJSONLenient(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	review, err := h.reviews.Create(r.Context(), service.CreateReviewRequest{
		DestinationID: req.DestinationID,
		UserID:        userID,
		Username:      middleware.GetUsername(r.Context()),
		Rating:        req.Rating,
		Comment:       req.Comment,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrDestinationRequired):
			WriteError(w, model.NewValidationError([]model.FieldError{{Field: "destination_id", Message: "destination_id is required"}}))
		case errors.Is(err, service.ErrInvalidRating):
			WriteError(w, model.NewValidationError([]model.FieldError{{Field: "rating", Message: "rating must be between 1 and 5"}}))
		default:
			WriteError(w, model.NewInternalError("failed to create review"))
		}
		return
	}

	WriteJSON(w, http.StatusCreated, review)
}

// ListByDestination handles GET /api/reviews/{destinationId}
func (h *ReviewHandler) ListByDestination(w http.ResponseWriter, r *http.Request) {
	destinationID := r.PathValue("destinationId")
	if destinationID == "" {
		WriteError(w, model.NewBadRequestError("destination ID required"))
		return
	}

	reviews, err := h.reviews.ListByDestination(r.Context(), destinationID)
	if err != nil {
		WriteError(w, model.NewInternalError("failed to list reviews"))
		return
	}

	WriteJSON(w, http.StatusOK, reviews)
}
