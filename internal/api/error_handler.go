package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/hekmatehsan/geoweather-api/internal/core/domain"
)

// errorResponse is the canonical error envelope for taxonomy errors.
type errorResponse struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// routeNotFoundResponse is the distinct shape returned for unmatched routes.
type routeNotFoundResponse struct {
	Error errorResponse `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps the domain error taxonomy to deterministic HTTP status codes.
//   - Renders unmatched routes with the nested {"error": {...}} envelope.
//   - Logs unexpected errors internally without leaking details to the client.
//
// Every failure path produces exactly one response; handlers return errors
// instead of writing their own failure bodies.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		if errors.Is(err, echo.ErrNotFound) || errors.Is(err, echo.ErrMethodNotAllowed) {
			_ = c.JSON(http.StatusNotFound, routeNotFoundResponse{Error: errorResponse{
				Message: "You reached a route that is not defined on this server",
				Code:    http.StatusNotFound,
			}})
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Message: msg, Code: code})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Known domain errors → deterministic HTTP codes and messages.
	switch {
	case errors.Is(err, domain.ErrMissingFields):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrUserExists):
		return http.StatusConflict, "User Already Exist. Please Login"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusBadRequest, "Invalid Credentials"
	case errors.Is(err, domain.ErrMissingToken):
		return http.StatusForbidden, "A token is required for authentication"
	case errors.Is(err, domain.ErrInvalidToken):
		return http.StatusUnauthorized, "Invalid Token"
	case errors.Is(err, domain.ErrNoMatch):
		return http.StatusNotFound, err.Error()
	}

	// Echo's own errors (bind failures, validation rejections).
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
