package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/hekmatehsan/geoweather-api/internal/api/metrics"
	"github.com/hekmatehsan/geoweather-api/internal/core/domain"
	"github.com/hekmatehsan/geoweather-api/internal/core/ports"
)

// GeoHandler serves the proxied address-validation and weather lookups.
type GeoHandler struct {
	geoService ports.GeoService
}

func NewGeoHandler(geoService ports.GeoService) *GeoHandler {
	return &GeoHandler{geoService: geoService}
}

// ValidateAddress resolves an address against the geocoding provider.
//
// @Summary      Validate an address
// @Tags         address
// @Produce      json
// @Param        city        query  string  false  "City"
// @Param        street      query  string  false  "Street"
// @Param        town        query  string  false  "Town"
// @Param        postalCode  query  string  false  "Postal code"
// @Param        country     query  string  false  "Country"
// @Success      200  {array}   map[string]any
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/v1/validate-address [get]
func (h *GeoHandler) ValidateAddress(c echo.Context) error {
	query := ports.AddressQuery{
		City:       c.QueryParam("city"),
		Street:     c.QueryParam("street"),
		Town:       c.QueryParam("town"),
		PostalCode: c.QueryParam("postalCode"),
		Country:    c.QueryParam("country"),
	}
	if query.IsEmpty() {
		return echo.NewHTTPError(http.StatusBadRequest, "Please provide address any parameters, e.g: city: Kabul, country: Afghanistan")
	}

	start := time.Now()
	payload, err := h.geoService.ValidateAddress(c.Request().Context(), query)
	if err != nil {
		if errors.Is(err, domain.ErrNoMatch) {
			metrics.ObserveLookup("geocode", "no_match", start)
			return echo.NewHTTPError(http.StatusNotFound, "Wrong Address")
		}
		metrics.ObserveLookup("geocode", "error", start)
		return err
	}

	metrics.ObserveLookup("geocode", "ok", start)
	return c.JSONBlob(http.StatusOK, payload)
}

// StateWeatherInfo fetches current weather for a coordinate pair.
//
// @Summary      Retrieve weather information for a location
// @Tags         weather
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      weatherRequest  true  "Coordinates"
// @Success      200   {object}  map[string]any
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/v1/state-weather-info [post]
func (h *GeoHandler) StateWeatherInfo(c echo.Context) error {
	var req weatherRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if req.Lat == 0 || req.Lon == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "lat and lon are required")
	}

	start := time.Now()
	payload, err := h.geoService.WeatherByCoordinates(c.Request().Context(), req.Lat, req.Lon)
	if err != nil {
		if errors.Is(err, domain.ErrNoMatch) {
			metrics.ObserveLookup("weather", "no_match", start)
			return echo.NewHTTPError(http.StatusNotFound, "This address parameters are wrong")
		}
		metrics.ObserveLookup("weather", "error", start)
		return err
	}

	metrics.ObserveLookup("weather", "ok", start)
	return c.JSONBlob(http.StatusOK, payload)
}
