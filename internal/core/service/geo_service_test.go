package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/hekmatehsan/geoweather-api/internal/core/domain"
	"github.com/hekmatehsan/geoweather-api/internal/core/ports"
)

type stubGeocoder struct {
	payload json.RawMessage
	count   int
	err     error
	calls   int
}

func (g *stubGeocoder) Search(_ context.Context, _ ports.AddressQuery) (json.RawMessage, int, error) {
	g.calls++
	return g.payload, g.count, g.err
}

type stubWeather struct {
	payload json.RawMessage
	err     error
	calls   int
}

func (w *stubWeather) Current(_ context.Context, _, _ float64) (json.RawMessage, error) {
	w.calls++
	return w.payload, w.err
}

type memCache struct {
	entries map[string]json.RawMessage
}

func (c *memCache) Get(_ context.Context, key string) (json.RawMessage, bool, error) {
	v, ok := c.entries[key]
	return v, ok, nil
}

func (c *memCache) Set(_ context.Context, key string, payload json.RawMessage) error {
	c.entries[key] = payload
	return nil
}

func TestGeoService_ValidateAddress_EmptyQuery(t *testing.T) {
	svc := NewGeoService(&stubGeocoder{}, &stubWeather{}, nil, zerolog.Nop())

	if _, err := svc.ValidateAddress(context.Background(), ports.AddressQuery{}); !errors.Is(err, domain.ErrMissingFields) {
		t.Fatalf("expected ErrMissingFields, got %v", err)
	}
}

func TestGeoService_ValidateAddress_NoMatch(t *testing.T) {
	geo := &stubGeocoder{payload: json.RawMessage(`[]`), count: 0}
	svc := NewGeoService(geo, &stubWeather{}, nil, zerolog.Nop())

	_, err := svc.ValidateAddress(context.Background(), ports.AddressQuery{City: "Nowhere"})
	if !errors.Is(err, domain.ErrNoMatch) {
		t.Fatalf("expected ErrNoMatch, got %v", err)
	}
}

func TestGeoService_ValidateAddress_Success(t *testing.T) {
	want := json.RawMessage(`[{"display_name":"Kabul, Afghanistan"}]`)
	geo := &stubGeocoder{payload: want, count: 1}
	svc := NewGeoService(geo, &stubWeather{}, nil, zerolog.Nop())

	got, err := svc.ValidateAddress(context.Background(), ports.AddressQuery{City: "Kabul", Country: "Afghanistan"})
	if err != nil {
		t.Fatalf("ValidateAddress: %v", err)
	}
	if string(got) != string(want) {
		t.Fatalf("payload not proxied verbatim: %s", got)
	}
}

func TestGeoService_ValidateAddress_CacheHitSkipsProvider(t *testing.T) {
	want := json.RawMessage(`[{"display_name":"Berlin"}]`)
	geo := &stubGeocoder{payload: want, count: 1}
	cache := &memCache{entries: make(map[string]json.RawMessage)}
	svc := NewGeoService(geo, &stubWeather{}, cache, zerolog.Nop())

	query := ports.AddressQuery{City: "Berlin", Country: "Germany"}
	if _, err := svc.ValidateAddress(context.Background(), query); err != nil {
		t.Fatalf("first lookup: %v", err)
	}
	if _, err := svc.ValidateAddress(context.Background(), query); err != nil {
		t.Fatalf("second lookup: %v", err)
	}
	if geo.calls != 1 {
		t.Fatalf("expected a single provider call, got %d", geo.calls)
	}
}

func TestGeoService_WeatherByCoordinates_MissingCoords(t *testing.T) {
	svc := NewGeoService(&stubGeocoder{}, &stubWeather{}, nil, zerolog.Nop())

	if _, err := svc.WeatherByCoordinates(context.Background(), 0, 0); !errors.Is(err, domain.ErrMissingFields) {
		t.Fatalf("expected ErrMissingFields, got %v", err)
	}
}

func TestGeoService_WeatherByCoordinates_Success(t *testing.T) {
	want := json.RawMessage(`{"weather":[{"main":"Clouds"}],"cod":200}`)
	weather := &stubWeather{payload: want}
	svc := NewGeoService(&stubGeocoder{}, weather, nil, zerolog.Nop())

	got, err := svc.WeatherByCoordinates(context.Background(), 52.5096454, 13.5189826)
	if err != nil {
		t.Fatalf("WeatherByCoordinates: %v", err)
	}
	if string(got) != string(want) {
		t.Fatalf("payload not proxied verbatim: %s", got)
	}
}

func TestGeoService_WeatherByCoordinates_UpstreamError(t *testing.T) {
	weather := &stubWeather{err: domain.ErrNoMatch}
	svc := NewGeoService(&stubGeocoder{}, weather, nil, zerolog.Nop())

	if _, err := svc.WeatherByCoordinates(context.Background(), 1, 1); !errors.Is(err, domain.ErrNoMatch) {
		t.Fatalf("expected ErrNoMatch, got %v", err)
	}
}
