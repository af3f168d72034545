package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// HomeHandler serves the authenticated landing page.
type HomeHandler struct{}

func NewHomeHandler() *HomeHandler {
	return &HomeHandler{}
}

// Homepage is the dashboard behind the auth middleware.
//
// @Summary      The homepage of the application
// @Tags         welcome
// @Produce      plain
// @Security     BearerAuth
// @Success      200  {string}  string
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /api/v1/homepage [get]
func (h *HomeHandler) Homepage(c echo.Context) error {
	if _, _, err := ctxIdentity(c); err != nil {
		return err
	}
	return c.String(http.StatusOK, "This is the dashboard of this mini system.")
}
