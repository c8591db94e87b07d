package view_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/beaconhouse/beacon/internal/view"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSessionSecret = "a-very-secret-key-for-testing-!"

func setupTestContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	store := sessions.NewCookieStore([]byte(testSessionSecret))
	sessionMiddleware := session.Middleware(store)

	// Run a dummy handler through the middleware so the session is initialized in the context.
	var c echo.Context
	handler := func(ctx echo.Context) error { c = ctx; return nil }
	_ = sessionMiddleware(handler)(e.NewContext(req, rec))

	return c, rec
}

func TestFlashMessages(t *testing.T) {
	t.Run("Set and Get Success Flash", func(t *testing.T) {
		c, _ := setupTestContext()

		view.SetFlashSuccess(c, "Thank you, we will be in touch.")

		flashes := view.GetFlashData(c)
		require.NotEmpty(t, flashes.Success)
		assert.Equal(t, "Thank you, we will be in touch.", flashes.Success[0])
		assert.Empty(t, flashes.Error)

		flashesAfterRead := view.GetFlashData(c)
		assert.True(t, flashesAfterRead.Empty(), "Flashes should be cleared after being read")
	})

	t.Run("Set and Get Error Flash", func(t *testing.T) {
		c, _ := setupTestContext()

		view.SetFlashError(c, "Please check the form.")

		flashes := view.GetFlashData(c)
		require.NotEmpty(t, flashes.Error)
		assert.Equal(t, "Please check the form.", flashes.Error[0])
		assert.Empty(t, flashes.Success)
	})

	t.Run("No session middleware", func(t *testing.T) {
		e := echo.New()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

		assert.True(t, view.GetFlashData(c).Empty())
	})
}

func TestFlashBanner(t *testing.T) {
	tests := []struct {
		name        string
		data        view.FlashData
		contains    []string
		notContains []string
	}{
		{
			name:        "empty",
			data:        view.FlashData{},
			notContains: []string{"flash"},
		},
		{
			name:     "success and error",
			data:     view.FlashData{Success: []string{"Sent"}, Error: []string{"Oops"}},
			contains: []string{`<div id="flash" class="flash" role="status" aria-live="polite">`, `<p class="flash-success">Sent</p>`, `<p class="flash-error">Oops</p>`},
		},
		{
			name:        "escapes markup",
			data:        view.FlashData{Success: []string{"<script>x</script>"}},
			contains:    []string{"&lt;script&gt;"},
			notContains: []string{"<script>"},
		},
		{
			name:     "keeps message order",
			data:     view.FlashData{Error: []string{"first", "second"}},
			contains: []string{`<p class="flash-error">first</p><p class="flash-error">second</p></div>`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf strings.Builder
			require.NoError(t, view.FlashBanner(tt.data).Render(context.Background(), &buf))

			html := buf.String()
			for _, s := range tt.contains {
				assert.Contains(t, html, s)
			}
			for _, s := range tt.notContains {
				assert.NotContains(t, html, s)
			}
		})
	}
}

func TestIsHTMX(t *testing.T) {
	e := echo.New()

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	assert.False(t, view.IsHTMX(e.NewContext(req, httptest.NewRecorder())))

	req.Header.Set(view.HeaderHXRequest, "true")
	assert.True(t, view.IsHTMX(e.NewContext(req, httptest.NewRecorder())))
}
