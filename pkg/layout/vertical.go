package layout

import (
	"github.com/matzehuels/stacklayout/pkg/geom"
	"github.com/matzehuels/stacklayout/pkg/tree"
)

func (e *Engine) vertical(n *tree.Node, givenWidth int) {
	insets, _ := n.Content.Insets()
	children := n.Children()

	neg := e.negotiateVertical(children, givenWidth)

	// Width is the cross axis: greedy children take the whole lane.
	for _, d := range neg.deferred {
		children[d.index].Frame().ResolveWidth(givenWidth)
	}

	resolveHeights(children, neg.remaining)

	size := geom.Size{
		Width:  maxWidth(children) + insets.Horizontal(),
		Height: sumHeights(children) + InternalSpacing(len(children)) + insets.Vertical(),
	}
	n.Frame().SetSize(size)
	e.logNegotiation(n, neg, size)

	for i := 1; i < len(children); i++ {
		prev := children[i-1].Frame()
		children[i].Frame().Origin.Y = prev.Origin.Y + prev.Size().Height + DefaultSpacing
	}
}

// negotiateVertical proposes the full width to every child. Tight children
// still draw down the shared remaining width, so the height proposal that
// follows depends on sibling order.
func (e *Engine) negotiateVertical(children []*tree.Node, givenWidth int) negotiation {
	neg := negotiation{remaining: givenWidth}
	proposed := givenWidth

	for i, c := range children {
		e.compute(c, proposed)
		wanted := c.Content.WantedWidth(proposed)
		if proposed > wanted {
			neg.remaining -= wanted
			c.Frame().ResolveWidth(wanted)
			neg.total += wanted
			continue
		}
		neg.deferred = append(neg.deferred, deferral{index: i, wanted: wanted})
	}
	return neg
}
