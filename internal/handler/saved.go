package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/escapegenie/api/internal/middleware"
	"github.com/escapegenie/api/internal/model"
	"github.com/escapegenie/api/internal/service"
)

// SavedManager defines the interface for saved-destination operations
type SavedManager interface {
	Save(ctx context.Context, userID int64, destinationID string) error
	List(ctx context.Context, userID int64) ([]*model.Destination, error)
	Remove(ctx context.Context, userID int64, destinationID string) error
}

// SavedHandler handles the saved-destination endpoints
type SavedHandler struct {
	saved SavedManager
}

// NewSavedHandler creates a new saved-destination handler
func NewSavedHandler(saved SavedManager) *SavedHandler {
	return &SavedHandler{saved: saved}
}

// saveRequest is the wire format for POST /api/saved
type saveRequest struct {
	DestinationID string `json:"destination_id"`
}

// Save handles POST /api/saved - add a destination to the user's list
func (h *SavedHandler) Save(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	var req saveRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	if err := h.saved.Save(r.Context(), userID, req.DestinationID); err != nil {
		switch {
		case errors.Is(err, service.ErrDestinationRequired):
			WriteError(w, model.NewValidationError([]model.FieldError{{Field: "destination_id", Message: "destination_id is required"}}))
		case errors.Is(err, service.ErrAlreadySaved):
			WriteError(w, model.NewConflictError("destination already saved"))
		default:
			WriteError(w, model.NewInternalError("failed to save destination"))
		}
		return
	}

	WriteJSON(w, http.StatusCreated, map[string]string{"status": "saved"})
}

// List handles GET /api/saved - list the user's saved destinations
func (h *SavedHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	destinations, err := h.saved.List(r.Context(), userID)
	if err != nil {
		WriteError(w, model.NewInternalError("failed to list saved destinations"))
		return
	}

	WriteJSON(w, http.StatusOK, destinations)
}

// Remove handles DELETE /api/saved/{destinationId}
func (h *SavedHandler) Remove(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	destinationID := r.PathValue("destinationId")
	if destinationID == "" {
		WriteError(w, model.NewBadRequestError("destination ID required"))
		return
	}

	if err := h.saved.Remove(r.Context(), userID, destinationID); err != nil {
		WriteError(w, model.NewInternalError("failed to remove saved destination"))
		return
	}

	WriteJSON(w, http.StatusOK, map[string]string{"status": "removed"})
}
