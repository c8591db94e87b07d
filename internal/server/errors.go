package server

import (
	"errors"
	"net/http"
	"runtime/debug"

	"github.com/beaconhouse/beacon/internal/handlers"
	appmiddleware "github.com/beaconhouse/beacon/internal/middleware"
	"github.com/labstack/echo/v4"
)

// setupErrorHandling installs the application's HTTP error handler. Errors
// that are not *echo.HTTPError are logged with a stack trace and answered
// with a generic 500.
func setupErrorHandling(e *echo.Echo) {
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		logger := appmiddleware.FromContext(c.Request().Context())
		var he *echo.HTTPError
		if !errors.As(err, &he) {
			logger.Error("Internal Server Error (Unhandled)",
				"error", err,
				"stack_trace", string(debug.Stack()),
			)
		}

		code, resp := handlers.NewErrorResponse(err)
		switch {
		case c.Request().Method == http.MethodHead:
			err = c.NoContent(code)
		case handlers.WantsJSON(c):
			err = c.JSON(code, resp)
		default:
			err = c.String(code, resp.Message)
		}
		if err != nil {
			logger.Error("Failed to write error response", "error", err)
		}
	}
}
