package view

import (
	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// FlashBanner renders the flash messages as a dismissible status region.
// It renders nothing when there are no messages.
func FlashBanner(data FlashData) templ.Component {
	if data.Empty() {
		return Component(g.Group(nil))
	}
	return Component(h.Div(
		h.ID("flash"),
		h.Class("flash"),
		g.Attr("role", "status"),
		g.Attr("aria-live", "polite"),
		flashMessages("flash-success", data.Success),
		flashMessages("flash-error", data.Error),
	))
}

func flashMessages(class string, messages []string) g.Node {
	return g.Map(messages, func(m string) g.Node {
		return h.P(h.Class(class), g.Text(m))
	})
}
