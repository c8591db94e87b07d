// Package page assembles the landing page. It owns every callback the
// sections' buttons are bound to.
package page

import (
	"fmt"

	"github.com/beaconhouse/beacon/internal/actions"
	"github.com/beaconhouse/beacon/internal/config"
	"github.com/beaconhouse/beacon/internal/content"
	"github.com/beaconhouse/beacon/internal/leads"
	"github.com/beaconhouse/beacon/internal/sections"
	"github.com/beaconhouse/beacon/internal/ui"
	"github.com/beaconhouse/beacon/internal/view"
	"github.com/labstack/echo/v4"
	g "maragu.dev/gomponents"
)

// Action names the landing page binds.
const (
	ActionUnderstandApproach = "understand-approach"
	ActionRequestEvaluation  = "request-evaluation"
	ActionScheduleCall       = "schedule-call"
)

var landingConfig = ui.PageConfig{
	Title:       "Beacon House | Admissions guidance with clarity",
	Description: "Beacon House helps families of students in grades 8–12 build direction, depth and a strong college story.",
}

// Callbacks are the handlers behind the landing page's buttons.
type Callbacks struct {
	// OnUnderstandApproach runs when the bridge section's CTA is activated. Required.
	OnUnderstandApproach actions.Callback
	// OnRequestEvaluation runs for the closing section's primary CTA. Required.
	OnRequestEvaluation actions.Callback
	// OnScheduleCall runs for the closing section's secondary CTA. When nil
	// the button is not shown.
	OnScheduleCall actions.Callback
}

// DefaultCallbacks returns the production callbacks for cfg.
func DefaultCallbacks(cfg config.Provider) Callbacks {
	cb := Callbacks{
		OnUnderstandApproach: func() actions.Outcome {
			return actions.Navigate(cfg.GetApproachURL())
		},
		OnRequestEvaluation: func() actions.Outcome {
			return actions.Show(leads.ContactForm(leads.ContactRequest{}, nil))
		},
	}
	if url := cfg.GetSchedulingURL(); url != "" {
		cb.OnScheduleCall = func() actions.Outcome {
			return actions.Navigate(url)
		}
	}
	return cb
}

// Landing is the assembled landing page.
type Landing struct {
	bridge     sections.BridgeProps
	finalClose sections.FinalCloseProps
}

// NewLanding binds cb into reg and prepares the sections from catalog.
func NewLanding(reg *actions.Registry, catalog *content.Catalog, cb Callbacks) (*Landing, error) {
	approach, err := reg.Bind(ActionUnderstandApproach, cb.OnUnderstandApproach)
	if err != nil {
		return nil, fmt.Errorf("bind bridge CTA: %w", err)
	}
	evaluate, err := reg.Bind(ActionRequestEvaluation, cb.OnRequestEvaluation)
	if err != nil {
		return nil, fmt.Errorf("bind evaluation CTA: %w", err)
	}

	var schedule actions.Ref
	if cb.OnScheduleCall != nil {
		if schedule, err = reg.Bind(ActionScheduleCall, cb.OnScheduleCall); err != nil {
			return nil, fmt.Errorf("bind schedule CTA: %w", err)
		}
	}

	return &Landing{
		bridge: sections.BridgeProps{
			Benefits: catalog.Benefits(),
			OnCTA:    approach,
		},
		finalClose: sections.FinalCloseProps{
			OnRequestEvaluation: evaluate,
			OnScheduleCall:      schedule,
		},
	}, nil
}

// Node renders the whole page. banner may be nil.
func (l *Landing) Node(banner g.Node) g.Node {
	return ui.Layout(landingConfig, banner,
		sections.Bridge(l.bridge),
		sections.FinalClose(l.finalClose),
		sections.Footer(),
	)
}

// Render renders the page for a request, including its flash messages.
func (l *Landing) Render(c echo.Context) g.Node {
	return l.Node(flashBanner(c))
}

// Wrap renders fragment as a standalone page. It is used when an activation
// or form submit arrives without htmx.
func Wrap(c echo.Context, fragment g.Node) g.Node {
	return ui.Layout(landingConfig, flashBanner(c), fragment, sections.Footer())
}

func flashBanner(c echo.Context) g.Node {
	return view.Node(c.Request().Context(), view.FlashBanner(view.GetFlashData(c)))
}
