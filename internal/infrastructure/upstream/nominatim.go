// Package upstream contains the HTTP clients for the third-party services
// this API proxies: nominatim for address geocoding and openweathermap for
// current weather. Responses are passed through verbatim; the clients only
// decide success, no-result, and transport failure.
package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/hekmatehsan/geoweather-api/internal/core/ports"
)

const defaultTimeout = 10 * time.Second

// NominatimClient queries the nominatim search endpoint.
type NominatimClient struct {
	baseURL string
	http    *http.Client
}

// NewNominatimClient returns a client against baseURL
// (e.g. https://nominatim.openstreetmap.org).
func NewNominatimClient(baseURL string, timeout time.Duration) *NominatimClient {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &NominatimClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// Search forwards the address components as query parameters and returns the
// raw JSON result list plus the number of matches.
func (c *NominatimClient) Search(ctx context.Context, query ports.AddressQuery) (json.RawMessage, int, error) {
	params := url.Values{}
	setIfPresent(params, "city", query.City)
	setIfPresent(params, "street", query.Street)
	setIfPresent(params, "town", query.Town)
	setIfPresent(params, "postalcode", query.PostalCode)
	setIfPresent(params, "country", query.Country)
	params.Set("format", "json")

	reqURL := c.baseURL + "/search?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("nominatim request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("nominatim search: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, 0, fmt.Errorf("nominatim search: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, fmt.Errorf("nominatim read body: %w", err)
	}

	// Count matches without re-marshalling; the payload is proxied as-is.
	var results []json.RawMessage
	if err := json.Unmarshal(body, &results); err != nil {
		return nil, 0, fmt.Errorf("nominatim decode: %w", err)
	}

	return body, len(results), nil
}

func setIfPresent(params url.Values, key, value string) {
	if value != "" {
		params.Set(key, value)
	}
}
