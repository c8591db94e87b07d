package leads

import (
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
)

func sessionMiddleware() echo.MiddlewareFunc {
	return session.Middleware(sessions.NewCookieStore([]byte("a-very-secret-key-for-testing-!")))
}

type structValidator struct {
	v *validator.Validate
}

func (s *structValidator) Validate(i any) error {
	return s.v.Struct(i)
}
