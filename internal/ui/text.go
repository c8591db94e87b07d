package ui

import (
	"strings"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Emphasize renders text with the first occurrence of keyword wrapped in the
// script-style accent span. Text without keyword renders unchanged.
func Emphasize(text, keyword string) g.Node {
	i := strings.Index(text, keyword)
	if keyword == "" || i < 0 {
		return g.Text(text)
	}
	return g.Group{
		g.Text(text[:i]),
		h.Span(h.Class("cursive-keyword"), g.Text(keyword)),
		g.Text(text[i+len(keyword):]),
	}
}
