package ui

import (
	"strings"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// SectionProps configures a landmark region of the page.
type SectionProps struct {
	// ID is the stable anchor id, e.g. "contact" for /#contact.
	ID string
	// Label names the region for assistive technology.
	Label string
	// Class is appended to the base section classes.
	Class string
}

// Section wraps children in a labeled landmark region identified by props.ID.
func Section(props SectionProps, children ...g.Node) g.Node {
	return h.Section(
		g.If(props.ID != "", h.ID(props.ID)),
		g.If(props.Label != "", h.Aria("label", props.Label)),
		h.Class(classes("section", props.Class)),
		g.Group(children),
	)
}

func classes(base string, extra ...string) string {
	parts := []string{base}
	for _, e := range extra {
		if e = strings.TrimSpace(e); e != "" {
			parts = append(parts, e)
		}
	}
	return strings.Join(parts, " ")
}
