package handlers

import (
	"net/http"

	"github.com/beaconhouse/beacon/internal/page"
	"github.com/labstack/echo/v4"
)

// HomeHandler handles requests for the landing page.
type HomeHandler struct {
	landing *page.Landing
}

// NewHomeHandler creates a new HomeHandler.
func NewHomeHandler(landing *page.Landing) *HomeHandler {
	return &HomeHandler{landing: landing}
}

// HomeGet handles the GET request for the landing page.
// The node is passed as 'data'; the universal renderer ignores the name.
func (h *HomeHandler) HomeGet(c echo.Context) error {
	return c.Render(http.StatusOK, "", h.landing.Render(c))
}
