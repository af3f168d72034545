package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ctxIdentity extracts the identity injected by the Auth middleware and
// performs a fast-fail check before any service call: a non-empty user_id
// proves the middleware ran. Routes wired without it reject with 401 instead
// of serving an unauthenticated request.
func ctxIdentity(c echo.Context) (userID, email string, err error) {
	userID, _ = c.Get("user_id").(string)
	if userID == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	email, _ = c.Get("email").(string)
	return userID, email, nil
}
