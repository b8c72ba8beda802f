package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/escapegenie/api/internal/model"
	"github.com/escapegenie/api/internal/service"
)

// VenueLister defines the interface for assembling venue listings
type VenueLister interface {
	List(ctx context.Context, req service.VenueRequest) (*model.VenueCollection, error)
}

// VenueHandler handles the city venue listing endpoint
type VenueHandler struct {
	venues VenueLister
}

// NewVenueHandler creates a new venue handler
func NewVenueHandler(venues VenueLister) *VenueHandler {
	return &VenueHandler{venues: venues}
}

// venueRequest is the wire format for POST /api/venues. Coordinates are
// pointers so a missing field can be told apart from zero. Clients post a
// full destination record as the city, so decoding is lenient.
type venueRequest struct {
	City struct {
		ID  string   `json:"id"`
		Lat *float64 `json:"lat"`
		Lon *float64 `json:"lon"`
	} `json:"city"`
}

// Venues handles POST /api/venues - list attractions and restaurants for a city
func (h *VenueHandler) Venues(w http.ResponseWriter, r *http.Request) {
	var req venueRequest
	if err := DecodeJSONLenient(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	var fieldErrors []model.FieldError
	if strings.TrimSpace(req.City.ID) == "" {
		fieldErrors = append(fieldErrors, model.FieldError{Field: "city.id", Message: "city.id is required"})
	}
	if req.City.Lat == nil {
		fieldErrors = append(fieldErrors, model.FieldError{Field: "city.lat", Message: "city.lat is required"})
	}
	if req.City.Lon == nil {
		fieldErrors = append(fieldErrors, model.FieldError{Field: "city.lon", Message: "city.lon is required"})
	}
	if len(fieldErrors) > 0 {
		WriteError(w, model.NewValidationError(fieldErrors))
		return
	}

	collection, err := h.venues.List(r.Context(), service.VenueRequest{
		DestinationID: strings.TrimSpace(req.City.ID),
		Lat:           *req.City.Lat,
		Lon:           *req.City.Lon,
	})
	if err != nil {
		WriteError(w, model.NewInternalError("failed to list venues"))
		return
	}

	WriteJSON(w, http.StatusOK, collection)
}
