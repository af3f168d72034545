package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/hekmatehsan/geoweather-api/internal/core/domain"
)

// OpenWeatherClient queries the openweathermap current-weather endpoint.
type OpenWeatherClient struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// NewOpenWeatherClient returns a client against baseURL
// (e.g. https://api.openweathermap.org) authenticating with apiKey.
func NewOpenWeatherClient(baseURL, apiKey string, timeout time.Duration) *OpenWeatherClient {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &OpenWeatherClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: timeout},
	}
}

// Current fetches current weather for the coordinates and returns the raw
// JSON object. A non-200 from the provider means the parameters did not
// resolve to a location and maps to domain.ErrNoMatch.
func (c *OpenWeatherClient) Current(ctx context.Context, lat, lon float64) (json.RawMessage, error) {
	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	params.Set("appid", c.apiKey)

	reqURL := c.baseURL + "/data/2.5/weather?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("openweather request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("openweather fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, domain.ErrNoMatch
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("openweather read body: %w", err)
	}

	if !json.Valid(body) {
		return nil, fmt.Errorf("openweather decode: invalid json")
	}
	return body, nil
}
