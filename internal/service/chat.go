package service

import (
	"context"
	"errors"
	"strings"

	"github.com/escapegenie/api/internal/model"
	"github.com/escapegenie/api/internal/nlp"
	"github.com/escapegenie/api/internal/repository"
)

// Defaults applied when a chat request omits a structured field.
const (
	defaultTravelerType = "solo"
	defaultTripScope    = "international"
)

// DestinationSearcher defines the interface for destination catalog search
type DestinationSearcher interface {
	Search(ctx context.Context, filter repository.SearchFilter) ([]*model.Destination, error)
}

// TermExtractor defines the interface for free-text term extraction
type TermExtractor interface {
	Terms(message string) ([]string, error)
}

// ChatService interprets free-text travel queries into catalog searches
type ChatService struct {
	destinations DestinationSearcher
	extractor    TermExtractor
}

// ChatServiceConfig holds configuration for the chat service
type ChatServiceConfig struct {
	Destinations DestinationSearcher
	Extractor    TermExtractor
}

// NewChatService creates a new chat service
func NewChatService(cfg ChatServiceConfig) *ChatService {
	return &ChatService{
		destinations: cfg.Destinations,
		extractor:    cfg.Extractor,
	}
}

// ChatRequest represents a free-text travel query
type ChatRequest struct {
	Message      string
	TravelerType string
	TripScope    string
	Budget       string
}

// Interpret turns a free-text message into a destination search and runs it.
// A blank message resolves to an empty result without touching the catalog.
// Returns ErrModelUnavailable when the language model cannot be loaded.
func (s *ChatService) Interpret(ctx context.Context, req ChatRequest) ([]*model.Destination, error) {
	if strings.TrimSpace(req.Message) == "" {
		return []*model.Destination{}, nil
	}

	terms, err := s.extractor.Terms(req.Message)
	if err != nil {
		if errors.Is(err, nlp.ErrModelUnavailable) {
			return nil, ErrModelUnavailable
		}
		return nil, err
	}

	filter := repository.SearchFilter{
		TripScope:    normalizeField(req.TripScope, defaultTripScope),
		TravelerType: normalizeField(req.TravelerType, defaultTravelerType),
		Budget:       normalizeBudget(req.Budget),
		Terms:        terms,
	}

	return s.destinations.Search(ctx, filter)
}

func normalizeField(value, fallback string) string {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" {
		return fallback
	}
	return value
}

// normalizeBudget maps an absent budget to the "any" wildcard. Any other
// value is passed through as an exact cost_tier match, so an unknown tier
// matches nothing rather than everything.
func normalizeBudget(value string) string {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" {
		return model.CostTierAny
	}
	return value
}
