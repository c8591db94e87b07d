package leads

import (
	"errors"
	"net/http"

	"github.com/beaconhouse/beacon/internal/actions"
	"github.com/beaconhouse/beacon/internal/domain"
	"github.com/beaconhouse/beacon/internal/middleware"
	"github.com/beaconhouse/beacon/internal/view"
	"github.com/labstack/echo/v4"
	g "maragu.dev/gomponents"
)

// Handler serves the contact form.
type Handler struct {
	service *Service
	wrap    actions.PageWrapper
}

// NewHandler creates a new Handler. wrap turns a fragment into a full page
// for visitors without htmx.
func NewHandler(service *Service, wrap actions.PageWrapper) *Handler {
	return &Handler{service: service, wrap: wrap}
}

// ContactGet renders the contact form as a full page.
func (h *Handler) ContactGet(c echo.Context) error {
	return h.respond(c, http.StatusOK, ContactForm(ContactRequest{}, nil))
}

// ContactPost validates and submits a contact request.
func (h *Handler) ContactPost(c echo.Context) error {
	logger := middleware.FromContext(c.Request().Context())

	var req ContactRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form submission")
	}
	req.normalize()

	if err := c.Validate(&req); err != nil {
		logger.Info("Contact request rejected", "error", err)
		return h.respond(c, http.StatusUnprocessableEntity, ContactForm(req, fieldErrors(err)))
	}

	lead, err := h.service.Submit(c.Request().Context(), req)
	if errors.Is(err, domain.ErrInvalidLead) {
		return h.respond(c, http.StatusUnprocessableEntity, ContactForm(req, FieldErrors{}))
	}
	if err != nil {
		logger.Error("Failed to submit contact request", "error", err)
		return echo.NewHTTPError(http.StatusServiceUnavailable, "We could not send your request. Please try again shortly.")
	}
	logger.Info("Contact request accepted", "lead_id", lead.ID)

	if view.IsHTMX(c) {
		return c.Render(http.StatusOK, "", Confirmation(lead))
	}
	view.SetFlashSuccess(c, "Thank you! A Beacon House advisor will be in touch soon.")
	return c.Redirect(http.StatusSeeOther, "/#contact")
}

func (h *Handler) respond(c echo.Context, status int, fragment g.Node) error {
	if view.IsHTMX(c) || h.wrap == nil {
		return c.Render(status, "", fragment)
	}
	return c.Render(status, "", h.wrap(c, fragment))
}
