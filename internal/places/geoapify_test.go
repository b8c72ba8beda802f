package places

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/escapegenie/api/internal/model"
)

const sampleResponse = `{
	"features": [
		{
			"properties": {"place_id": "p1", "name": "Eiffel Tower", "address_line2": "Champ de Mars, Paris"},
			"geometry": {"coordinates": [2.2945, 48.8584]}
		},
		{
			"properties": {"place_id": "p2", "name": "", "address_line2": "Nameless Alley"},
			"geometry": {"coordinates": [2.3, 48.85]}
		},
		{
			"properties": {"place_id": "p3", "name": "No Coords Cafe"},
			"geometry": {"coordinates": []}
		},
		{
			"properties": {"place_id": "p4", "name": "Hidden Bistro"},
			"geometry": {"coordinates": [2.31, 48.86]}
		}
	]
}`

func newTestClient(serverURL string) *Client {
	c := NewClient("test-key", serverURL)
	c.retryDelay = time.Millisecond
	return c
}

func TestSearch_ParsesAndSkipsInvalidFeatures(t *testing.T) {
	t.Parallel()
	var gotQuery map[string][]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(sampleResponse))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	features, err := c.Search(context.Background(), 2.2945, 48.8584, CategoryAttractions, DefaultRadiusMeters, DefaultLimit)
	require.NoError(t, err)

	// Nameless and coordinate-less features dropped.
	require.Len(t, features, 2)
	assert.Equal(t, "Eiffel Tower", features[0].Name)
	assert.Equal(t, "Champ de Mars, Paris", features[0].Address)
	assert.Equal(t, 2.2945, features[0].Lon)
	assert.Equal(t, 48.8584, features[0].Lat)

	// Missing address falls back to the sentinel.
	assert.Equal(t, model.AddressUnavailable, features[1].Address)

	assert.Equal(t, CategoryAttractions, gotQuery["categories"][0])
	assert.Equal(t, "circle:2.2945,48.8584,15000", gotQuery["filter"][0])
	assert.Equal(t, "proximity:2.2945,48.8584", gotQuery["bias"][0])
	assert.Equal(t, "10", gotQuery["limit"][0])
	assert.Equal(t, "test-key", gotQuery["apiKey"][0])
}

func TestSearch_NoCredentialIsNoOp(t *testing.T) {
	t.Parallel()
	c := NewClient("", "http://places.invalid")

	features, err := c.Search(context.Background(), 0, 0, CategoryRestaurants, DefaultRadiusMeters, DefaultLimit)
	require.NoError(t, err)
	assert.Nil(t, features)
	assert.False(t, c.Enabled())
}

func TestSearch_RetriesServerErrors(t *testing.T) {
	t.Parallel()
	attempts := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(`{"features": []}`))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	features, err := c.Search(context.Background(), 1, 2, CategoryRestaurants, DefaultRadiusMeters, DefaultLimit)
	require.NoError(t, err)
	assert.Empty(t, features)
	assert.Equal(t, 3, attempts)
}

func TestSearch_ExhaustedRetriesFail(t *testing.T) {
	t.Parallel()
	attempts := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	_, err := c.Search(context.Background(), 1, 2, CategoryAttractions, DefaultRadiusMeters, DefaultLimit)
	require.Error(t, err)
	assert.Equal(t, 3, attempts)
}

func TestSearch_ClientErrorNotRetried(t *testing.T) {
	t.Parallel()
	attempts := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	_, err := c.Search(context.Background(), 1, 2, CategoryAttractions, DefaultRadiusMeters, DefaultLimit)
	require.Error(t, err)
	assert.Equal(t, 1, attempts)
}
