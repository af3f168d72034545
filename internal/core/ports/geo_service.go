package ports

import (
	"context"
	"encoding/json"
)

// AddressQuery carries the free-form address components forwarded to the
// geocoding provider. All fields are optional but at least one must be set.
type AddressQuery struct {
	City       string
	Street     string
	Town       string
	PostalCode string
	Country    string
}

// IsEmpty reports whether no component was provided.
func (q AddressQuery) IsEmpty() bool {
	return q == AddressQuery{}
}

type GeoService interface {
	ValidateAddress(ctx context.Context, query AddressQuery) (json.RawMessage, error)
	WeatherByCoordinates(ctx context.Context, lat, lon float64) (json.RawMessage, error)
}
