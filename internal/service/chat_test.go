package service

import (
	"context"
	"errors"
	"testing"

	"github.com/escapegenie/api/internal/model"
	"github.com/escapegenie/api/internal/nlp"
	"github.com/escapegenie/api/internal/repository"
)

type mockDestinationSearcher struct {
	searchFunc func(ctx context.Context, filter repository.SearchFilter) ([]*model.Destination, error)
	calls      int
}

func (m *mockDestinationSearcher) Search(ctx context.Context, filter repository.SearchFilter) ([]*model.Destination, error) {
	m.calls++
	return m.searchFunc(ctx, filter)
}

type mockTermExtractor struct {
	termsFunc func(message string) ([]string, error)
	calls     int
}

func (m *mockTermExtractor) Terms(message string) ([]string, error) {
	m.calls++
	return m.termsFunc(message)
}

func TestChatService_Interpret(t *testing.T) {
	t.Parallel()

	t.Run("blank message short-circuits without touching catalog", func(t *testing.T) {
		t.Parallel()
		searcher := &mockDestinationSearcher{
			searchFunc: func(ctx context.Context, filter repository.SearchFilter) ([]*model.Destination, error) {
				return nil, errors.New("should not be called")
			},
		}
		extractor := &mockTermExtractor{
			termsFunc: func(message string) ([]string, error) {
				return nil, errors.New("should not be called")
			},
		}
		svc := NewChatService(ChatServiceConfig{Destinations: searcher, Extractor: extractor})

		for _, message := range []string{"", "   ", "\t\n"} {
			results, err := svc.Interpret(context.Background(), ChatRequest{Message: message})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if results == nil || len(results) != 0 {
				t.Errorf("message %q: expected empty non-nil slice, got %v", message, results)
			}
		}
		if searcher.calls != 0 || extractor.calls != 0 {
			t.Errorf("expected no collaborator calls, got search=%d terms=%d", searcher.calls, extractor.calls)
		}
	})

	t.Run("defaults fill missing structured fields", func(t *testing.T) {
		t.Parallel()
		var got repository.SearchFilter
		searcher := &mockDestinationSearcher{
			searchFunc: func(ctx context.Context, filter repository.SearchFilter) ([]*model.Destination, error) {
				got = filter
				return []*model.Destination{}, nil
			},
		}
		extractor := &mockTermExtractor{
			termsFunc: func(message string) ([]string, error) {
				return []string{"beach"}, nil
			},
		}
		svc := NewChatService(ChatServiceConfig{Destinations: searcher, Extractor: extractor})

		_, err := svc.Interpret(context.Background(), ChatRequest{Message: "beaches please"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.TripScope != "international" {
			t.Errorf("expected default trip scope, got %q", got.TripScope)
		}
		if got.TravelerType != "solo" {
			t.Errorf("expected default traveler type, got %q", got.TravelerType)
		}
		if got.Budget != model.CostTierAny {
			t.Errorf("expected default budget, got %q", got.Budget)
		}
		if len(got.Terms) != 1 || got.Terms[0] != "beach" {
			t.Errorf("expected extracted terms, got %v", got.Terms)
		}
	})

	t.Run("explicit fields are normalized and passed through", func(t *testing.T) {
		t.Parallel()
		var got repository.SearchFilter
		searcher := &mockDestinationSearcher{
			searchFunc: func(ctx context.Context, filter repository.SearchFilter) ([]*model.Destination, error) {
				got = filter
				return []*model.Destination{}, nil
			},
		}
		extractor := &mockTermExtractor{
			termsFunc: func(message string) ([]string, error) { return nil, nil },
		}
		svc := NewChatService(ChatServiceConfig{Destinations: searcher, Extractor: extractor})

		_, err := svc.Interpret(context.Background(), ChatRequest{
			Message:      "somewhere nice",
			TravelerType: " Family ",
			TripScope:    "Domestic",
			Budget:       "LUXURY",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.TravelerType != "family" || got.TripScope != "domestic" || got.Budget != model.CostTierLuxury {
			t.Errorf("unexpected filter %+v", got)
		}
	})

	t.Run("unknown budget stays an exact-match filter", func(t *testing.T) {
		t.Parallel()
		var got repository.SearchFilter
		searcher := &mockDestinationSearcher{
			searchFunc: func(ctx context.Context, filter repository.SearchFilter) ([]*model.Destination, error) {
				got = filter
				return []*model.Destination{}, nil
			},
		}
		extractor := &mockTermExtractor{
			termsFunc: func(message string) ([]string, error) { return nil, nil },
		}
		svc := NewChatService(ChatServiceConfig{Destinations: searcher, Extractor: extractor})

		// An unrecognized tier is passed through and matches no rows; only
		// an absent budget widens to the wildcard.
		_, err := svc.Interpret(context.Background(), ChatRequest{Message: "hi", Budget: "lavish"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Budget != "lavish" {
			t.Errorf("expected lavish passed through, got %q", got.Budget)
		}
	})

	t.Run("model load failure maps to ErrModelUnavailable", func(t *testing.T) {
		t.Parallel()
		searcher := &mockDestinationSearcher{
			searchFunc: func(ctx context.Context, filter repository.SearchFilter) ([]*model.Destination, error) {
				return nil, errors.New("should not be called")
			},
		}
		extractor := &mockTermExtractor{
			termsFunc: func(message string) ([]string, error) {
				return nil, nlp.ErrModelUnavailable
			},
		}
		svc := NewChatService(ChatServiceConfig{Destinations: searcher, Extractor: extractor})

		_, err := svc.Interpret(context.Background(), ChatRequest{Message: "romantic escape"})
		if !errors.Is(err, ErrModelUnavailable) {
			t.Fatalf("expected ErrModelUnavailable, got %v", err)
		}
		if searcher.calls != 0 {
			t.Errorf("catalog should not be searched when the model is unavailable")
		}
	})

	t.Run("search results pass through unchanged", func(t *testing.T) {
		t.Parallel()
		want := []*model.Destination{
			{ID: "paris", Name: "Paris"},
			{ID: "rome", Name: "Rome"},
		}
		searcher := &mockDestinationSearcher{
			searchFunc: func(ctx context.Context, filter repository.SearchFilter) ([]*model.Destination, error) {
				return want, nil
			},
		}
		extractor := &mockTermExtractor{
			termsFunc: func(message string) ([]string, error) {
				return []string{"romance"}, nil
			},
		}
		svc := NewChatService(ChatServiceConfig{Destinations: searcher, Extractor: extractor})

		got, err := svc.Interpret(context.Background(), ChatRequest{Message: "romantic city break"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 2 || got[0].ID != "paris" || got[1].ID != "rome" {
			t.Errorf("unexpected results %v", got)
		}
	})
}
