package actions

import (
	"errors"
	"net/http"

	"github.com/beaconhouse/beacon/internal/domain"
	"github.com/beaconhouse/beacon/internal/middleware"
	"github.com/beaconhouse/beacon/internal/view"
	"github.com/labstack/echo/v4"
	g "maragu.dev/gomponents"
)

// PageWrapper wraps a fragment in a full page for visitors without htmx.
type PageWrapper func(c echo.Context, fragment g.Node) g.Node

// Handler serves POST /actions/:name.
type Handler struct {
	registry *Registry
	wrap     PageWrapper
}

// NewHandler creates a new Handler.
func NewHandler(registry *Registry, wrap PageWrapper) *Handler {
	return &Handler{registry: registry, wrap: wrap}
}

// Dispatch invokes the callback bound to the :name path parameter and applies its Outcome.
func (h *Handler) Dispatch(c echo.Context) error {
	name := c.Param("name")
	logger := middleware.FromContext(c.Request().Context())

	outcome, err := h.registry.Invoke(name)
	if errors.Is(err, domain.ErrUnknownAction) {
		logger.Warn("Activation of unknown action", "action", name)
		return echo.NewHTTPError(http.StatusNotFound, "unknown action")
	}
	if err != nil {
		return err
	}
	htmx := view.IsHTMX(c)
	logger.Debug("Action dispatched", "action", name, "htmx", htmx)

	switch {
	case outcome.Redirect != "":
		if htmx {
			c.Response().Header().Set(view.HeaderHXRedirect, outcome.Redirect)
			return c.NoContent(http.StatusOK)
		}
		return c.Redirect(http.StatusSeeOther, outcome.Redirect)
	case outcome.Fragment != nil:
		if htmx || h.wrap == nil {
			return c.Render(http.StatusOK, "", outcome.Fragment)
		}
		return c.Render(http.StatusOK, "", h.wrap(c, outcome.Fragment))
	default:
		return c.NoContent(http.StatusNoContent)
	}
}

// Register mounts the dispatch route on e.
func (h *Handler) Register(e *echo.Echo) {
	e.POST(PathPrefix+":name", h.Dispatch)
}
