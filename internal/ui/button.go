package ui

import (
	"github.com/beaconhouse/beacon/internal/actions"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	h "maragu.dev/gomponents/html"
)

// Variant selects the visual treatment of a Button.
type Variant int

const (
	VariantPrimary Variant = iota
	VariantSecondary
)

// String returns the variant name used in class names and data attributes.
// Unknown variants report "primary".
func (v Variant) String() string {
	if v == VariantSecondary {
		return "secondary"
	}
	return "primary"
}

// DefaultTarget is where fragments returned by an activation are swapped in.
const DefaultTarget = "#modal"

// ButtonProps configures a call-to-action Button.
type ButtonProps struct {
	// OnActivate is the callback an activation is dispatched to.
	OnActivate actions.Ref
	Variant    Variant
	Class      string
	// Target is the htmx target for fragments; DefaultTarget when empty.
	Target string
}

// Button renders a control that posts one activation of props.OnActivate per
// click. It is a real form submit, so it also works without JavaScript.
// A zero OnActivate renders nothing.
func Button(props ButtonProps, children ...g.Node) g.Node {
	if props.OnActivate.IsZero() {
		return g.Group(nil)
	}

	target := props.Target
	if target == "" {
		target = DefaultTarget
	}
	path := props.OnActivate.Path()

	return h.Form(
		h.Method("post"),
		h.Action(path),
		hx.Post(path),
		hx.Target(target),
		hx.Swap("innerHTML"),
		h.Class("cta"),
		h.Button(
			h.Type("submit"),
			h.Class(classes("btn btn-"+props.Variant.String(), props.Class)),
			h.Data("action", props.OnActivate.Name()),
			g.Group(children),
		),
	)
}
