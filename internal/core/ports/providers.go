package ports

import (
	"context"
	"encoding/json"
)

// Geocoder resolves an address query against an upstream geocoding provider
// and returns the provider's JSON result list verbatim. An empty list is a
// valid result; the service layer decides how to surface it.
type Geocoder interface {
	Search(ctx context.Context, query AddressQuery) (json.RawMessage, int, error)
}

// WeatherProvider fetches current weather for a coordinate pair and returns
// the provider's JSON object verbatim.
type WeatherProvider interface {
	Current(ctx context.Context, lat, lon float64) (json.RawMessage, error)
}

// ResponseCache stores upstream lookup responses under a normalized key for a
// bounded TTL. Implementations must be safe for concurrent use.
type ResponseCache interface {
	Get(ctx context.Context, key string) (json.RawMessage, bool, error)
	Set(ctx context.Context, key string, payload json.RawMessage) error
}
