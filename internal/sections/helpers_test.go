package sections_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
	g "maragu.dev/gomponents"
)

func render(t *testing.T, node g.Node) string {
	t.Helper()
	var buf strings.Builder
	require.NoError(t, node.Render(&buf))
	return buf.String()
}

func parse(t *testing.T, node g.Node) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(render(t, node)))
	require.NoError(t, err)
	return doc
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func hasClass(n *html.Node, class string) bool {
	for _, c := range strings.Fields(attr(n, "class")) {
		if c == class {
			return true
		}
	}
	return false
}

// findAll returns every element below n matching pred, in document order.
func findAll(n *html.Node, pred func(*html.Node) bool) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && pred(n) {
			out = append(out, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return out
}

func text(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

type card struct {
	Icon, Title, Description string
}

func cards(view *html.Node) []card {
	var out []card
	for _, c := range findAll(view, func(n *html.Node) bool { return hasClass(n, "benefit-card") }) {
		icon := findAll(c, func(n *html.Node) bool { return hasClass(n, "benefit-icon") })
		h3 := findAll(c, func(n *html.Node) bool { return n.Data == "h3" })
		p := findAll(c, func(n *html.Node) bool { return n.Data == "p" })
		out = append(out, card{Icon: text(icon[0]), Title: text(h3[0]), Description: text(p[0])})
	}
	return out
}

func byDataView(doc *html.Node, view string) *html.Node {
	nodes := findAll(doc, func(n *html.Node) bool { return attr(n, "data-view") == view })
	if len(nodes) != 1 {
		return nil
	}
	return nodes[0]
}
