package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/hekmatehsan/geoweather-api/internal/core/domain"
	"github.com/hekmatehsan/geoweather-api/internal/core/ports"
)

// GeoService proxies address and weather lookups to upstream providers,
// consulting the response cache first when one is configured.
type GeoService struct {
	geocoder ports.Geocoder
	weather  ports.WeatherProvider
	cache    ports.ResponseCache // nil disables caching
	log      zerolog.Logger
}

func NewGeoService(geocoder ports.Geocoder, weather ports.WeatherProvider, cache ports.ResponseCache, log zerolog.Logger) *GeoService {
	return &GeoService{geocoder: geocoder, weather: weather, cache: cache, log: log}
}

// ValidateAddress resolves the query against the geocoding provider and
// returns its result list verbatim. A query with no components yields
// ErrMissingFields; zero matches yield ErrNoMatch.
func (s *GeoService) ValidateAddress(ctx context.Context, query ports.AddressQuery) (json.RawMessage, error) {
	if query.IsEmpty() {
		return nil, domain.ErrMissingFields
	}

	key := addressCacheKey(query)
	if payload, ok := s.cacheGet(ctx, key); ok {
		return payload, nil
	}

	payload, count, err := s.geocoder.Search(ctx, query)
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, domain.ErrNoMatch
	}

	s.cacheSet(ctx, key, payload)
	return payload, nil
}

// WeatherByCoordinates fetches current weather for the coordinate pair and
// returns the provider's JSON object verbatim.
func (s *GeoService) WeatherByCoordinates(ctx context.Context, lat, lon float64) (json.RawMessage, error) {
	if lat == 0 || lon == 0 {
		return nil, domain.ErrMissingFields
	}

	key := fmt.Sprintf("weather:%.4f:%.4f", lat, lon)
	if payload, ok := s.cacheGet(ctx, key); ok {
		return payload, nil
	}

	payload, err := s.weather.Current(ctx, lat, lon)
	if err != nil {
		return nil, err
	}

	s.cacheSet(ctx, key, payload)
	return payload, nil
}

func (s *GeoService) cacheGet(ctx context.Context, key string) (json.RawMessage, bool) {
	if s.cache == nil {
		return nil, false
	}
	payload, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		// Cache trouble must never fail the lookup.
		s.log.Warn().Err(err).Str("key", key).Msg("response cache read failed")
		return nil, false
	}
	return payload, ok
}

func (s *GeoService) cacheSet(ctx context.Context, key string, payload json.RawMessage) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, key, payload); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("response cache write failed")
	}
}

// addressCacheKey builds a deterministic cache key from the lower-cased
// query components.
func addressCacheKey(q ports.AddressQuery) string {
	parts := []string{q.City, q.Street, q.Town, q.PostalCode, q.Country}
	for i, p := range parts {
		parts[i] = strings.ToLower(strings.TrimSpace(p))
	}
	return "address:" + strings.Join(parts, ":")
}
