package service

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"strings"

	"github.com/escapegenie/api/internal/model"
	"github.com/escapegenie/api/internal/places"
)

const mapsSearchBase = "https://www.google.com/maps/search/?api=1&query="

// LandmarkLister defines the interface for curated landmark lookup
type LandmarkLister interface {
	ListByDestination(ctx context.Context, destinationID string) ([]*model.Landmark, error)
}

// PlaceSearcher defines the interface for external point-of-interest lookup
type PlaceSearcher interface {
	Enabled() bool
	Search(ctx context.Context, lon, lat float64, category string, radiusMeters, limit int) ([]places.Feature, error)
}

// VenueService assembles attraction and restaurant listings for a city by
// merging curated landmarks with external place lookups
type VenueService struct {
	landmarks   LandmarkLister
	placeClient PlaceSearcher
	logger      *slog.Logger
}

// VenueServiceConfig holds configuration for the venue service
type VenueServiceConfig struct {
	Landmarks LandmarkLister
	Places    PlaceSearcher
	Logger    *slog.Logger
}

// NewVenueService creates a new venue service
func NewVenueService(cfg VenueServiceConfig) *VenueService {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &VenueService{
		landmarks:   cfg.Landmarks,
		placeClient: cfg.Places,
		logger:      logger,
	}
}

// VenueRequest identifies the city to list venues for
type VenueRequest struct {
	DestinationID string
	Lat           float64
	Lon           float64
}

// List returns attractions and restaurants near a city. Curated landmarks
// always come first and win name collisions against external results; when
// the external provider is disabled or failing, the curated listing is
// returned on its own.
func (s *VenueService) List(ctx context.Context, req VenueRequest) (*model.VenueCollection, error) {
	collection := &model.VenueCollection{
		Attractions: make([]model.Venue, 0),
		Restaurants: make([]model.Venue, 0),
	}
	seen := make(map[string]struct{})

	landmarks, err := s.landmarks.ListByDestination(ctx, req.DestinationID)
	if err != nil {
		return nil, err
	}
	for _, l := range landmarks {
		var bucket *[]model.Venue
		switch l.Category {
		case model.CategoryAttraction:
			bucket = &collection.Attractions
		case model.CategoryRestaurant:
			bucket = &collection.Restaurants
		default:
			// Unrecognized curated categories are skipped rather than
			// failing the whole listing.
			continue
		}

		address := l.Address
		if address == "" {
			address = model.AddressUnavailable
		}
		*bucket = append(*bucket, model.Venue{
			ID:      fmt.Sprintf("curated-%d", l.ID),
			Name:    l.Name,
			Address: address,
			Lat:     l.Lat,
			Lon:     l.Lon,
			MapsURL: mapsSearchURL(l.Name, address, l.Lat, l.Lon),
		})
		seen[strings.ToLower(l.Name)] = struct{}{}
	}

	if s.placeClient.Enabled() {
		collection.Attractions = s.appendExternal(ctx, collection.Attractions, seen, req, places.CategoryAttractions)
		collection.Restaurants = s.appendExternal(ctx, collection.Restaurants, seen, req, places.CategoryRestaurants)
	}

	return collection, nil
}

// appendExternal merges one external category lookup into a bucket. Lookup
// failures degrade to the curated listing instead of failing the request.
func (s *VenueService) appendExternal(ctx context.Context, bucket []model.Venue, seen map[string]struct{}, req VenueRequest, category string) []model.Venue {
	features, err := s.placeClient.Search(ctx, req.Lon, req.Lat, category, places.DefaultRadiusMeters, places.DefaultLimit)
	if err != nil {
		s.logger.Warn("external place lookup failed",
			"destination_id", req.DestinationID,
			"category", category,
			"error", err)
		return bucket
	}

	// Only curated names suppress external results; external venues sharing
	// a name are all kept.
	for _, f := range features {
		if _, dup := seen[strings.ToLower(f.Name)]; dup {
			continue
		}

		bucket = append(bucket, model.Venue{
			ID:      f.PlaceID,
			Name:    f.Name,
			Address: f.Address,
			Lat:     f.Lat,
			Lon:     f.Lon,
			MapsURL: mapsSearchURL(f.Name, f.Address, f.Lat, f.Lon),
		})
	}
	return bucket
}

// mapsSearchURL builds a Google Maps deep link. Venues with a usable street
// address link by name and address; the rest fall back to raw coordinates.
func mapsSearchURL(name, address string, lat, lon float64) string {
	if address != "" && !strings.Contains(strings.ToLower(address), "not available") {
		return mapsSearchBase + url.QueryEscape(name+", "+address)
	}
	return mapsSearchBase + strconv.FormatFloat(lat, 'f', -1, 64) + "," + strconv.FormatFloat(lon, 'f', -1, 64)
}
