package places

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/escapegenie/api/internal/model"
)

// Geoapify place categories used by the venue aggregator.
const (
	CategoryAttractions = "tourism.sights"
	CategoryRestaurants = "catering.restaurant"
)

// Search parameters fixed by the venues endpoint: a 15 km circle around the
// destination, at most 10 results per category, biased toward the center.
const (
	DefaultRadiusMeters = 15000
	DefaultLimit        = 10
)

const (
	httpTimeout    = 15 * time.Second
	maxAttempts    = 3
	baseRetryDelay = 500 * time.Millisecond
)

// Feature is one place returned by the provider, reduced to the fields the
// aggregator consumes.
type Feature struct {
	PlaceID string
	Name    string
	Address string
	Lon     float64
	Lat     float64
}

// Client fetches nearby places from the Geoapify Places API.
// With no API key configured, Search returns (nil, nil) and the venues
// endpoint serves curated landmarks only.
type Client struct {
	apiKey     string
	baseURL    string
	client     *http.Client
	retryDelay time.Duration
}

// NewClient constructs a client with a shared HTTP client.
func NewClient(apiKey, baseURL string) *Client {
	return &Client{
		apiKey:     apiKey,
		baseURL:    baseURL,
		client:     &http.Client{Timeout: httpTimeout},
		retryDelay: baseRetryDelay,
	}
}

// Enabled reports whether an API credential is configured.
func (c *Client) Enabled() bool {
	return c.apiKey != ""
}

// geoapifyResponse mirrors the top-level Geoapify JSON response.
type geoapifyResponse struct {
	Features []geoapifyFeature `json:"features"`
}

type geoapifyFeature struct {
	Properties geoapifyProperties `json:"properties"`
	Geometry   geoapifyGeometry   `json:"geometry"`
}

type geoapifyProperties struct {
	PlaceID     string `json:"place_id"`
	Name        string `json:"name"`
	AddressLine string `json:"address_line2"`
}

type geoapifyGeometry struct {
	Coordinates []float64 `json:"coordinates"` // [lon, lat]
}

// statusError marks a server-side failure worth retrying.
type statusError struct {
	code int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("geoapify returned %d", e.code)
}

func retryableStatus(code int) bool {
	switch code {
	case http.StatusInternalServerError, http.StatusBadGateway,
		http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return true
	}
	return false
}

// Search retrieves up to limit places of the given category within
// radiusMeters of (lon, lat), biased toward proximity to the center point.
//
// Transient 5xx responses are retried with exponential backoff up to three
// attempts; any other failure aborts immediately. Returns nil without error
// when no credential is configured.
func (c *Client) Search(ctx context.Context, lon, lat float64, category string, radiusMeters, limit int) ([]Feature, error) {
	if !c.Enabled() {
		return nil, nil
	}

	var features []Feature
	op := func() error {
		var err error
		features, err = c.search(ctx, lon, lat, category, radiusMeters, limit)
		return err
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = c.retryDelay
	if err := backoff.Retry(op, backoff.WithContext(backoff.WithMaxRetries(bo, maxAttempts-1), ctx)); err != nil {
		return nil, fmt.Errorf("search %s: %w", category, err)
	}
	return features, nil
}

func (c *Client) search(ctx context.Context, lon, lat float64, category string, radiusMeters, limit int) ([]Feature, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.searchURL(lon, lat, category, radiusMeters, limit), nil)
	if err != nil {
		return nil, backoff.Permanent(err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, backoff.Permanent(fmt.Errorf("http GET: %w", err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, backoff.Permanent(fmt.Errorf("read body: %w", err))
	}

	if resp.StatusCode != http.StatusOK {
		if retryableStatus(resp.StatusCode) {
			return nil, &statusError{code: resp.StatusCode}
		}
		return nil, backoff.Permanent(fmt.Errorf("geoapify returned %d: %s", resp.StatusCode, string(body)))
	}

	var apiResp geoapifyResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return nil, backoff.Permanent(fmt.Errorf("json unmarshal: %w", err))
	}

	features := make([]Feature, 0, len(apiResp.Features))
	for _, f := range apiResp.Features {
		// Nameless or coordinate-less features are unusable for the
		// venue list and are skipped, not errors.
		if f.Properties.Name == "" || len(f.Geometry.Coordinates) < 2 {
			continue
		}
		address := f.Properties.AddressLine
		if address == "" {
			address = model.AddressUnavailable
		}
		features = append(features, Feature{
			PlaceID: f.Properties.PlaceID,
			Name:    f.Properties.Name,
			Address: address,
			Lon:     f.Geometry.Coordinates[0],
			Lat:     f.Geometry.Coordinates[1],
		})
	}
	return features, nil
}

func (c *Client) searchURL(lon, lat float64, category string, radiusMeters, limit int) string {
	lonStr := strconv.FormatFloat(lon, 'f', -1, 64)
	latStr := strconv.FormatFloat(lat, 'f', -1, 64)

	params := url.Values{}
	params.Set("categories", category)
	params.Set("filter", fmt.Sprintf("circle:%s,%s,%d", lonStr, latStr, radiusMeters))
	params.Set("bias", fmt.Sprintf("proximity:%s,%s", lonStr, latStr))
	params.Set("limit", strconv.Itoa(limit))
	params.Set("apiKey", c.apiKey)

	return c.baseURL + "?" + params.Encode()
}
