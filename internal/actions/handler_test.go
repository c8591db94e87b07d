package actions_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/beaconhouse/beacon/internal/actions"
	"github.com/beaconhouse/beacon/internal/rendering"
	"github.com/beaconhouse/beacon/internal/view"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

type fixture struct {
	e     *echo.Echo
	calls map[string]int
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{e: echo.New(), calls: map[string]int{}}
	f.e.Renderer = rendering.NewUniversalRenderer()

	reg := actions.NewRegistry()
	reg.MustBind("go-somewhere", func() actions.Outcome {
		f.calls["go-somewhere"]++
		return actions.Navigate("/#contact")
	})
	reg.MustBind("show-form", func() actions.Outcome {
		f.calls["show-form"]++
		return actions.Show(h.Form(h.ID("contact-form")))
	})
	reg.MustBind("nothing", func() actions.Outcome {
		f.calls["nothing"]++
		return actions.Outcome{}
	})

	wrap := func(c echo.Context, fragment g.Node) g.Node {
		return h.Div(h.ID("page"), fragment)
	}
	actions.NewHandler(reg, wrap).Register(f.e)
	return f
}

func (f *fixture) post(path string, htmx bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, nil)
	if htmx {
		req.Header.Set(view.HeaderHXRequest, "true")
	}
	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)
	return rec
}

func TestDispatchRedirect(t *testing.T) {
	f := newFixture(t)

	rec := f.post("/actions/go-somewhere", false)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/#contact", rec.Header().Get(echo.HeaderLocation))

	rec = f.post("/actions/go-somewhere", true)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "/#contact", rec.Header().Get(view.HeaderHXRedirect))

	assert.Equal(t, 2, f.calls["go-somewhere"], "one call per activation")
	assert.Zero(t, f.calls["show-form"])
}

func TestDispatchFragment(t *testing.T) {
	f := newFixture(t)

	rec := f.post("/actions/show-form", true)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `<form id="contact-form"></form>`, rec.Body.String())

	rec = f.post("/actions/show-form", false)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `<div id="page"><form id="contact-form"></form></div>`, rec.Body.String())

	assert.Equal(t, 2, f.calls["show-form"])
}

func TestDispatchEmptyOutcome(t *testing.T) {
	f := newFixture(t)

	rec := f.post("/actions/nothing", true)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, 1, f.calls["nothing"])
}

func TestDispatchUnknownAction(t *testing.T) {
	f := newFixture(t)

	rec := f.post("/actions/missing", false)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	for name, n := range f.calls {
		assert.Zero(t, n, "callback %s must not run", name)
	}
}

func TestDispatchRejectsGet(t *testing.T) {
	f := newFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/actions/go-somewhere", nil)
	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Zero(t, f.calls["go-somewhere"])
}
