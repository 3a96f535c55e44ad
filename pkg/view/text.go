package view

import (
	"fmt"

	"github.com/matzehuels/stacklayout/pkg/geom"
	"github.com/matzehuels/stacklayout/pkg/measure"
	"github.com/matzehuels/stacklayout/pkg/style"
)

// Text is a run of text with style modifiers.
type Text struct {
	frame Frame

	Text      string
	Modifiers []style.Modifier

	measurer measure.Measurer
}

// NewText returns text content measured by m. A nil m uses cell metrics.
func NewText(text string, m measure.Measurer, mods ...style.Modifier) *Text {
	if m == nil {
		m = measure.Cell{}
	}
	return &Text{Text: text, Modifiers: mods, measurer: m}
}

func (*Text) Kind() Kind                      { return KindText }
func (*Text) Arrangement() Arrangement        { return Vertical }
func (*Text) Insets() (geom.EdgeInsets, bool) { return geom.EdgeInsets{}, false }
func (t *Text) Frame() *Frame                 { return &t.frame }
func (*Text) sealed()                         {}

// Font returns the effective font; the last font modifier wins.
func (t *Text) Font() style.Font { return style.ResolveFont(t.Modifiers) }

// Color returns the effective color; the last color modifier wins.
func (t *Text) Color() style.Color { return style.ResolveColor(t.Modifiers) }

// WantedWidth measures the text for the proposed width. The height bound is
// the resolved height, or unbounded.
func (t *Text) WantedWidth(proposed int) int {
	height := measure.Unbounded
	if h, ok := t.frame.Height(); ok && h > 0 {
		height = h
	}
	return t.measurer.SizeForText(t.Text, t.Font(), geom.Size{Width: proposed, Height: height}).Width
}

// WantedHeight measures the text for the proposed height. The width bound is
// the resolved width, or unbounded.
func (t *Text) WantedHeight(proposed int) int {
	width := measure.Unbounded
	if w, ok := t.frame.Width(); ok && w > 0 {
		width = w
	}
	return t.measurer.SizeForText(t.Text, t.Font(), geom.Size{Width: width, Height: proposed}).Height
}

func (t *Text) String() string {
	return fmt.Sprintf("Text %s {text: %q, font: %s}", t.frame.String(), t.Text, t.Font())
}
