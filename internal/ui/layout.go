package ui

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// ModalID is the element fragments returned by CTA activations are swapped into.
const ModalID = "modal"

const htmxSrc = "https://unpkg.com/htmx.org@2.0.4"

// htmx swaps 422 responses so re-rendered forms show their field errors.
const htmxConfig = `{"responseHandling":[{"code":"204","swap":false},{"code":"[23]..","swap":true},{"code":"422","swap":true},{"code":"[45]..","swap":false,"error":true}]}`

// PageConfig holds the document-level metadata of a page.
type PageConfig struct {
	Title       string
	Description string
}

// Layout renders a complete HTML document around content.
// banner is rendered above the content and may be nil.
func Layout(config PageConfig, banner g.Node, content ...g.Node) g.Node {
	if config.Title == "" {
		config.Title = "Beacon House"
	}
	if config.Description == "" {
		config.Description = "Admissions guidance that starts with clarity."
	}

	return h.Doctype(
		h.HTML(
			h.Lang("en"),
			h.Head(
				h.Meta(h.Charset("utf-8")),
				h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1.0")),
				h.TitleEl(g.Text(config.Title)),
				h.Meta(h.Name("description"), h.Content(config.Description)),
				h.Meta(g.Attr("property", "og:title"), h.Content(config.Title)),
				h.Meta(g.Attr("property", "og:description"), h.Content(config.Description)),
				h.Link(h.Rel("stylesheet"), h.Href("/static/styles.css")),
				h.Meta(h.Name("htmx-config"), h.Content(htmxConfig)),
				h.Script(h.Src(htmxSrc), h.Defer()),
			),
			h.Body(
				banner,
				h.Main(g.Group(content)),
				h.Div(h.ID(ModalID), h.Aria("live", "polite")),
			),
		),
	)
}
