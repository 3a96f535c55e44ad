package layout

import (
	"github.com/matzehuels/stacklayout/pkg/geom"
	"github.com/matzehuels/stacklayout/pkg/tree"
	"github.com/matzehuels/stacklayout/pkg/view"
)

func (e *Engine) horizontal(n *tree.Node, givenWidth int) {
	children := n.Children()

	neg := e.negotiateHorizontal(children, givenWidth)

	if len(neg.deferred) > 0 {
		share := max(0, neg.remaining/len(neg.deferred))
		for _, d := range neg.deferred {
			children[d.index].Frame().ResolveWidth(share)
			neg.total += share
		}
	}

	resolveHeights(children, neg.remaining)

	height := maxHeight(children)
	for _, i := range neg.dividers {
		children[i].Frame().SetHeight(height)
	}

	size := geom.Size{
		Width:  sumWidths(children) + InternalSpacing(len(children)),
		Height: height,
	}
	n.Frame().SetSize(size)
	e.logNegotiation(n, neg, size)

	for i := 1; i < len(children); i++ {
		prev := children[i-1].Frame()
		children[i].Frame().Origin.X = prev.Origin.X + prev.Size().Width + DefaultSpacing
	}
}

// negotiateHorizontal offers each child an even share of the width not yet
// claimed by earlier siblings. Each resolved child changes the proposal for
// the ones after it.
func (e *Engine) negotiateHorizontal(children []*tree.Node, givenWidth int) negotiation {
	spacing := InternalSpacing(len(children))
	neg := negotiation{remaining: givenWidth - spacing, total: spacing}
	unresolved := len(children)

	for i, c := range children {
		proposed := max(0, neg.remaining/unresolved)

		e.compute(c, proposed)
		wanted := c.Content.WantedWidth(proposed)
		f := c.Frame()

		if proposed > wanted {
			if view.IsDivider(c.Content) {
				neg.dividers = append(neg.dividers, i)
			}
			neg.remaining -= wanted
			f.ResolveWidth(wanted)
			neg.total += wanted
			unresolved--
			continue
		}
		if w, ok := f.Width(); ok {
			neg.remaining -= w
			unresolved--
			continue
		}
		neg.deferred = append(neg.deferred, deferral{index: i, wanted: wanted})
	}
	return neg
}
