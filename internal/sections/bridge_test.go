package sections_test

import (
	"fmt"
	"testing"

	"github.com/beaconhouse/beacon/internal/actions"
	"github.com/beaconhouse/beacon/internal/content"
	"github.com/beaconhouse/beacon/internal/domain"
	"github.com/beaconhouse/beacon/internal/sections"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func bridgeRef(t *testing.T) actions.Ref {
	t.Helper()
	return actions.NewRegistry().MustBind("understand-approach", func() actions.Outcome { return actions.Outcome{} })
}

func syntheticBenefits(n int) []domain.Benefit {
	out := make([]domain.Benefit, n)
	for i := range out {
		out[i] = domain.Benefit{
			Title:       fmt.Sprintf("Title %d", i),
			Description: fmt.Sprintf("Description %d", i),
			Icon:        fmt.Sprintf("%d", i),
		}
	}
	return out
}

func TestBridgeRendersCatalogInOrder(t *testing.T) {
	benefits := content.MustDefault().Benefits()
	require.Len(t, benefits, 7)

	doc := parse(t, sections.Bridge(sections.BridgeProps{Benefits: benefits, OnCTA: bridgeRef(t)}))

	grid := byDataView(doc, "grid")
	require.NotNil(t, grid)
	gridCards := cards(grid)
	require.Len(t, gridCards, 7)
	for i, b := range benefits {
		assert.Equal(t, card{Icon: b.Icon, Title: b.Title, Description: b.Description}, gridCards[i], "grid card %d", i)
	}

	dots := findAll(doc, func(n *html.Node) bool { return hasClass(n, "dot") })
	assert.Len(t, dots, sections.DotIndicatorLimit)
}

func TestBridgeViewsShareOneSource(t *testing.T) {
	for _, n := range []int{1, 3, 5, 7, 12} {
		t.Run(fmt.Sprintf("%d benefits", n), func(t *testing.T) {
			doc := parse(t, sections.Bridge(sections.BridgeProps{Benefits: syntheticBenefits(n), OnCTA: bridgeRef(t)}))

			carousel := cards(byDataView(doc, "carousel"))
			grid := cards(byDataView(doc, "grid"))

			require.Len(t, grid, n)
			require.LessOrEqual(t, len(carousel), len(grid))
			for i := range carousel {
				assert.Equal(t, grid[i], carousel[i], "index %d diverges", i)
			}

			dots := findAll(doc, func(n *html.Node) bool { return hasClass(n, "dot") })
			assert.Len(t, dots, min(n, sections.DotIndicatorLimit))
		})
	}
}

func TestBridgeSectionAndCTA(t *testing.T) {
	ref := bridgeRef(t)
	doc := parse(t, sections.Bridge(sections.BridgeProps{Benefits: syntheticBenefits(2), OnCTA: ref}))

	section := findAll(doc, func(n *html.Node) bool { return n.Data == "section" })
	require.Len(t, section, 1)
	assert.Equal(t, sections.BridgeID, attr(section[0], "id"))

	buttons := findAll(doc, func(n *html.Node) bool { return n.Data == "button" })
	require.Len(t, buttons, 1)
	assert.Equal(t, "Understand Our Approach", text(buttons[0]))
	assert.True(t, hasClass(buttons[0], "btn-secondary"))

	forms := findAll(doc, func(n *html.Node) bool { return n.Data == "form" })
	require.Len(t, forms, 1)
	assert.Equal(t, ref.Path(), attr(forms[0], "action"))
	assert.Equal(t, ref.Path(), attr(forms[0], "hx-post"))
}

func TestBridgeEmptyList(t *testing.T) {
	doc := parse(t, sections.Bridge(sections.BridgeProps{OnCTA: bridgeRef(t)}))

	assert.Empty(t, cards(byDataView(doc, "grid")))
	assert.Empty(t, findAll(doc, func(n *html.Node) bool { return hasClass(n, "dot") }))
}
