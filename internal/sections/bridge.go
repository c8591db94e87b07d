package sections

import (
	"github.com/beaconhouse/beacon/internal/actions"
	"github.com/beaconhouse/beacon/internal/domain"
	"github.com/beaconhouse/beacon/internal/ui"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// BridgeID is the anchor id of the benefits section.
const BridgeID = "bridge"

// DotIndicatorLimit caps the carousel's dot indicators.
const DotIndicatorLimit = 5

// BridgeProps configures the benefits section.
type BridgeProps struct {
	// Benefits is the single source for both the carousel and the grid.
	Benefits []domain.Benefit
	// OnCTA is bound to the "Understand Our Approach" button.
	OnCTA actions.Ref
}

// Bridge renders the "how we guide you" section: a header, the benefits as a
// condensed carousel and as a full grid, and a closing call to action.
func Bridge(props BridgeProps) g.Node {
	return ui.Section(
		ui.SectionProps{ID: BridgeID, Label: "How we guide you", Class: "bridge"},
		h.Div(
			h.Class("bridge-header"),
			h.H2(g.Text("Here's exactly how we guide you:")),
			h.Div(h.Class("rule"), h.Aria("hidden", "true")),
		),
		benefitCarousel(props.Benefits),
		benefitGrid(props.Benefits),
		h.Div(
			h.Class("bridge-cta"),
			h.P(ui.Emphasize("This is where clarity begins.", "clarity")),
			ui.Button(ui.ButtonProps{OnActivate: props.OnCTA, Variant: ui.VariantSecondary},
				g.Text("Understand Our Approach"),
			),
		),
	)
}

func benefitCarousel(benefits []domain.Benefit) g.Node {
	return h.Div(
		h.Class("benefits-carousel"),
		h.Data("view", "carousel"),
		h.Div(h.Class("carousel-track"), benefitCards(benefits)),
		h.Div(h.Class("carousel-dots"), h.Aria("hidden", "true"), dotIndicators(len(benefits))),
	)
}

func benefitGrid(benefits []domain.Benefit) g.Node {
	return h.Div(
		h.Class("benefits-grid"),
		h.Data("view", "grid"),
		benefitCards(benefits),
	)
}

// benefitCards renders one card per benefit in stored order. Both views call
// it with the same slice so they cannot drift apart.
func benefitCards(benefits []domain.Benefit) g.Group {
	cards := make(g.Group, 0, len(benefits))
	for _, b := range benefits {
		cards = append(cards, h.Div(
			h.Class("benefit-card"),
			ui.Glyph(b.Icon, "", "benefit-icon"),
			h.H3(g.Text(b.Title)),
			h.P(g.Text(b.Description)),
		))
	}
	return cards
}

func dotIndicators(n int) g.Group {
	n = min(n, DotIndicatorLimit)
	dots := make(g.Group, 0, n)
	for range n {
		dots = append(dots, h.Span(h.Class("dot")))
	}
	return dots
}
