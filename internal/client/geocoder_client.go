package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"facade-scan/internal/config"
)

var ErrNoResults = errors.New("no geocoding results")

// GeocodeResult is the coordinate and label the provider resolved for a
// free-text place query.
type GeocodeResult struct {
	Latitude         float64 `json:"latitude"`
	Longitude        float64 `json:"longitude"`
	FormattedAddress string  `json:"formatted_address"`
	PlaceID          string  `json:"place_id"`
}

type geocodeResponse struct {
	Status  string `json:"status"`
	Results []struct {
		FormattedAddress string `json:"formatted_address"`
		PlaceID          string `json:"place_id"`
		Geometry         struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

// GeocoderClient wraps the external geocoding provider. Any provider with
// a Google-style geocode endpoint works.
type GeocoderClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewGeocoderClient(cfg *config.Config) *GeocoderClient {
	return &GeocoderClient{
		baseURL: cfg.Geocoder.BaseURL,
		apiKey:  cfg.Geocoder.APIKey,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

func (c *GeocoderClient) Geocode(ctx context.Context, query string) (*GeocodeResult, error) {
	if c.baseURL == "" {
		return nil, fmt.Errorf("geocoder service URL is not configured")
	}
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("empty geocode query")
	}

	u, err := url.Parse(c.baseURL + "/geocode/json")
	if err != nil {
		return nil, fmt.Errorf("invalid geocoder URL: %w", err)
	}

	q := u.Query()
	q.Set("address", query)
	if c.apiKey != "" {
		q.Set("key", c.apiKey)
	}
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	var resp *http.Response
	var lastErr error
	maxRetries := 3
	for attempt := 0; attempt < maxRetries; attempt++ {
		resp, lastErr = c.httpClient.Do(req)
		if lastErr == nil {
			break
		}
		if attempt == maxRetries-1 {
			return nil, fmt.Errorf("failed to execute request after %d attempts: %w", maxRetries, lastErr)
		}
		time.Sleep(time.Duration(attempt+1) * 500 * time.Millisecond)
		req, _ = http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	}
	if resp == nil {
		return nil, fmt.Errorf("failed to execute request: %w", lastErr)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geocoder returned status %d: %s", resp.StatusCode, string(body))
	}

	var parsed geocodeResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	if len(parsed.Results) == 0 {
		return nil, ErrNoResults
	}

	first := parsed.Results[0]
	return &GeocodeResult{
		Latitude:         first.Geometry.Location.Lat,
		Longitude:        first.Geometry.Location.Lng,
		FormattedAddress: first.FormattedAddress,
		PlaceID:          first.PlaceID,
	}, nil
}
