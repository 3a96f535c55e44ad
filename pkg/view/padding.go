package view

import (
	"fmt"

	"github.com/matzehuels/stacklayout/pkg/geom"
)

// Padding wraps another content value with fixed insets.
//
// A padded branch is always arranged vertically. When the node holding it
// has no children, the wanted size is the inner content's wanted size plus
// the insets.
type Padding struct {
	frame Frame

	Content    Content
	EdgeInsets geom.EdgeInsets
}

// NewPadding wraps c with insets e.
func NewPadding(c Content, e geom.EdgeInsets) *Padding {
	return &Padding{Content: c, EdgeInsets: e}
}

func (*Padding) Kind() Kind                        { return KindPadding }
func (*Padding) Arrangement() Arrangement          { return Vertical }
func (p *Padding) Insets() (geom.EdgeInsets, bool) { return p.EdgeInsets, true }
func (p *Padding) Frame() *Frame                   { return &p.frame }
func (*Padding) sealed()                           {}

// WantedWidth returns the resolved width if the engine already sized this
// node as a branch, otherwise the inner wanted width plus leading and
// trailing insets. A resolved height is passed on to the inner content less
// the vertical insets.
func (p *Padding) WantedWidth(proposed int) int {
	if w, ok := p.frame.Width(); ok {
		return w
	}
	h := p.EdgeInsets.Horizontal()
	if p.Content == nil {
		return h
	}
	if ph, ok := p.frame.Height(); ok {
		p.Content.Frame().ResolveHeight(max(0, ph-p.EdgeInsets.Vertical()))
	}
	return p.Content.WantedWidth(max(0, proposed-h)) + h
}

// WantedHeight returns the resolved height if the engine already sized this
// node as a branch, otherwise the inner wanted height plus top and bottom
// insets. A resolved width is passed on to the inner content less the
// horizontal insets, so wrapped text measures against its real lane.
func (p *Padding) WantedHeight(proposed int) int {
	if h, ok := p.frame.Height(); ok {
		return h
	}
	v := p.EdgeInsets.Vertical()
	if p.Content == nil {
		return v
	}
	// The inner content measures inside the lane left by the insets.
	if pw, ok := p.frame.Width(); ok {
		p.Content.Frame().ResolveWidth(max(0, pw-p.EdgeInsets.Horizontal()))
	}
	return p.Content.WantedHeight(max(0, proposed-v)) + v
}

func (p *Padding) String() string {
	inner := "nil"
	if p.Content != nil {
		inner = Describe(p.Content)
	}
	return fmt.Sprintf("Padding %s {insets: %+v, content: %s}", p.frame.String(), p.EdgeInsets, inner)
}
