package ui

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Glyph renders a text symbol (usually an emoji) as an icon. With an empty
// label the glyph is decorative and hidden from assistive technology.
func Glyph(symbol, label, class string) g.Node {
	if label == "" {
		return h.Span(h.Class(classes("glyph", class)), h.Aria("hidden", "true"), g.Text(symbol))
	}
	return h.Span(
		h.Class(classes("glyph", class)),
		g.Attr("role", "img"),
		h.Aria("label", label),
		g.Text(symbol),
	)
}
