package client

import (
	"context"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"facade-scan/internal/config"
)

func newTestGeocoder() *GeocoderClient {
	return NewGeocoderClient(&config.Config{
		Geocoder: config.GeocoderConfig{
			BaseURL: "https://maps.example.com",
			APIKey:  "test-key",
		},
	})
}

func TestGeocodeSuccess(t *testing.T) {
	geocoder := newTestGeocoder()
	httpmock.ActivateNonDefault(geocoder.httpClient)
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder("GET", "https://maps.example.com/geocode/json",
		httpmock.NewStringResponder(200, `{
			"status": "OK",
			"results": [{
				"formatted_address": "Empire State Building, NY",
				"place_id": "ChIJaXQRs6lZwokRY6EFpJnhNNE",
				"geometry": {"location": {"lat": 40.748817, "lng": -73.985428}}
			}]
		}`))

	result, err := geocoder.Geocode(context.Background(), "Empire State Building")
	require.NoError(t, err)
	assert.InDelta(t, 40.748817, result.Latitude, 1e-9)
	assert.InDelta(t, -73.985428, result.Longitude, 1e-9)
	assert.Equal(t, "Empire State Building, NY", result.FormattedAddress)
	assert.Equal(t, "ChIJaXQRs6lZwokRY6EFpJnhNNE", result.PlaceID)

	info := httpmock.GetCallCountInfo()
	assert.Equal(t, 1, info["GET https://maps.example.com/geocode/json"])
}

func TestGeocodeNoResults(t *testing.T) {
	geocoder := newTestGeocoder()
	httpmock.ActivateNonDefault(geocoder.httpClient)
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder("GET", "https://maps.example.com/geocode/json",
		httpmock.NewStringResponder(200, `{"status": "ZERO_RESULTS", "results": []}`))

	_, err := geocoder.Geocode(context.Background(), "nowhere at all")
	assert.ErrorIs(t, err, ErrNoResults)
}

func TestGeocodeServerError(t *testing.T) {
	geocoder := newTestGeocoder()
	httpmock.ActivateNonDefault(geocoder.httpClient)
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder("GET", "https://maps.example.com/geocode/json",
		httpmock.NewStringResponder(500, `oops`))

	_, err := geocoder.Geocode(context.Background(), "Empire State Building")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoResults)
}

func TestGeocodeEmptyQuery(t *testing.T) {
	geocoder := newTestGeocoder()

	_, err := geocoder.Geocode(context.Background(), "   ")
	assert.Error(t, err)
}

func TestGeocodeUnconfigured(t *testing.T) {
	geocoder := NewGeocoderClient(&config.Config{})

	_, err := geocoder.Geocode(context.Background(), "Empire State Building")
	assert.Error(t, err)
}
