package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/hekmatehsan/geoweather-api/internal/api/metrics"
	"github.com/hekmatehsan/geoweather-api/internal/core/domain"
	"github.com/hekmatehsan/geoweather-api/internal/core/token"
)

// Clients send the token in several places; older ones still use the
// x-access-token header. First non-empty value wins.
const (
	headerAuthToken   = "x-auth-token"
	headerAccessToken = "x-access-token"
	queryToken        = "token"
)

// maxTokenBodyBytes bounds how much of a request body is buffered while
// looking for a body-carried token.
const maxTokenBodyBytes = 1 << 20

// Auth locates a bearer token, verifies it, and injects the decoded identity
// into the request context. Requests without a token are rejected with the
// 403 missing-token error; invalid or expired tokens get the 401 error. The
// middleware never consults the user store — a signed, unexpired token is
// trusted as-is.
func Auth(tokens *token.Service) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := extractToken(c)
			if raw == "" {
				metrics.TokenRejectionsTotal.WithLabelValues("missing").Inc()
				return domain.ErrMissingToken
			}

			claims, err := tokens.Verify(raw)
			if err != nil {
				reason := "invalid"
				if errors.Is(err, token.ErrTokenExpired) {
					reason = "expired"
				}
				metrics.TokenRejectionsTotal.WithLabelValues(reason).Inc()
				return domain.ErrInvalidToken
			}

			c.Set("user_id", claims.UserID)
			c.Set("email", claims.Email)
			return next(c)
		}
	}
}

// extractToken checks, in order: the x-auth-token header, a "token" field in
// a JSON body, the "token" query parameter, and the legacy x-access-token
// header.
func extractToken(c echo.Context) string {
	if v := c.Request().Header.Get(headerAuthToken); v != "" {
		return v
	}
	if v := bodyToken(c); v != "" {
		return v
	}
	if v := c.QueryParam(queryToken); v != "" {
		return v
	}
	return c.Request().Header.Get(headerAccessToken)
}

// bodyToken peeks at a JSON request body for a top-level "token" field and
// restores the body so downstream handlers can still bind it.
func bodyToken(c echo.Context) string {
	req := c.Request()
	if req.Body == nil {
		return ""
	}
	if !strings.HasPrefix(req.Header.Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		return ""
	}

	body, err := io.ReadAll(io.LimitReader(req.Body, maxTokenBodyBytes))
	if err != nil {
		return ""
	}
	req.Body = io.NopCloser(bytes.NewReader(body))

	var payload struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	return payload.Token
}
