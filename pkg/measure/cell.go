package measure

import (
	"github.com/mattn/go-runewidth"

	"github.com/matzehuels/stacklayout/pkg/geom"
	"github.com/matzehuels/stacklayout/pkg/style"
)

// Cell measures text in terminal cells. Wide runes (CJK, emoji) take two
// columns; every line is one row tall regardless of font size.
type Cell struct{}

// SizeForText returns the wrapped width in columns and the line count.
func (Cell) SizeForText(text string, _ style.Font, bound geom.Size) geom.Size {
	w, n := measureLines(text, bound, runewidth.StringWidth)
	return geom.Size{Width: w, Height: n}
}
