package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the standard format for error responses sent to clients
// that ask for JSON.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// NewErrorResponse builds the ErrorResponse for err. Messages of unhandled
// errors are not exposed.
func NewErrorResponse(err error) (int, *ErrorResponse) {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		msg, ok := he.Message.(string)
		if !ok {
			msg = http.StatusText(he.Code)
		}
		return he.Code, &ErrorResponse{Code: codeFor(he.Code), Message: msg}
	}
	return http.StatusInternalServerError, &ErrorResponse{
		Code:    codeFor(http.StatusInternalServerError),
		Message: http.StatusText(http.StatusInternalServerError),
	}
}

// WantsJSON reports whether the client prefers a JSON response.
func WantsJSON(c echo.Context) bool {
	return strings.Contains(c.Request().Header.Get(echo.HeaderAccept), echo.MIMEApplicationJSON)
}

func codeFor(status int) string {
	return strings.ToLower(strings.ReplaceAll(http.StatusText(status), " ", "_"))
}
