package sections

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Footer renders the static page footer.
func Footer() g.Node {
	return h.Footer(
		h.Class("site-footer"),
		h.P(g.Text("© 2025. Beacon House.")),
	)
}
