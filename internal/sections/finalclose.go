package sections

import (
	"github.com/beaconhouse/beacon/internal/actions"
	"github.com/beaconhouse/beacon/internal/ui"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// FinalCloseID is the anchor id of the closing section.
const FinalCloseID = "contact"

// FinalCloseProps configures the closing section. Each button is rendered
// only when its callback is bound.
type FinalCloseProps struct {
	// OnRequestEvaluation is bound to the primary "Request an Evaluation" button.
	OnRequestEvaluation actions.Ref
	// OnScheduleCall is bound to the optional secondary "Schedule a Call" button.
	OnScheduleCall actions.Ref
}

// FinalClose renders the closing headline and its call-to-action buttons.
func FinalClose(props FinalCloseProps) g.Node {
	return ui.Section(
		ui.SectionProps{ID: FinalCloseID, Label: "Contact", Class: "final-close"},
		h.Div(
			h.Class("final-close-inner"),
			h.H2(ui.Emphasize("Let's start with clarity.", "clarity")),
			h.P(h.Class("subheadline"), g.Text("Your journey to confident, purposeful admissions begins here.")),
			h.Div(
				h.Class("final-close-actions"),
				ui.Button(ui.ButtonProps{OnActivate: props.OnRequestEvaluation, Variant: ui.VariantPrimary},
					g.Text("Request an Evaluation"),
				),
				ui.Button(ui.ButtonProps{OnActivate: props.OnScheduleCall, Variant: ui.VariantSecondary},
					g.Text("Schedule a Call"),
				),
			),
		),
	)
}
