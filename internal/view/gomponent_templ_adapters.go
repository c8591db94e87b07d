package view

import (
	"context"
	"io"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
)

// Component wraps a gomponents node so it can be rendered anywhere a
// templ.Component is expected, such as the echo renderer.
func Component(node g.Node) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return node.Render(w)
	})
}

// Node wraps a templ.Component so it can be placed inside a gomponents tree.
// gomponents does not carry a context, so the component renders with ctx.
func Node(ctx context.Context, component templ.Component) g.Node {
	return g.NodeFunc(func(w io.Writer) error {
		return component.Render(ctx, w)
	})
}
