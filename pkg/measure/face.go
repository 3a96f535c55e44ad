package measure

import (
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/matzehuels/stacklayout/pkg/geom"
	"github.com/matzehuels/stacklayout/pkg/style"
)

// Face measures text in pixels using a bitmap font face scaled to the
// requested point size.
type Face struct {
	face       font.Face
	nativeSize float64
}

// NewFace returns a Face measurer backed by face, whose glyphs are designed
// at nativeSize points. A nil face selects the built-in 7x13 face.
func NewFace(face font.Face, nativeSize float64) *Face {
	if face == nil || nativeSize <= 0 {
		return DefaultFace()
	}
	return &Face{face: face, nativeSize: nativeSize}
}

// DefaultFace returns a measurer backed by basicfont.Face7x13.
func DefaultFace() *Face {
	return &Face{face: basicfont.Face7x13, nativeSize: float64(basicfont.Face7x13.Height)}
}

// FontFace exposes the underlying face for renderers that draw the same text.
func (f *Face) FontFace() font.Face { return f.face }

func (f *Face) scale(fnt style.Font) float64 {
	if fnt.Size <= 0 {
		return style.Body.Size / f.nativeSize
	}
	return fnt.Size / f.nativeSize
}

// LineHeight returns the pixel height of one line in fnt.
func (f *Face) LineHeight(fnt style.Font) int {
	h := f.face.Metrics().Height.Ceil()
	return int(math.Ceil(float64(h) * f.scale(fnt)))
}

// SizeForText returns the wrapped pixel size of text.
func (f *Face) SizeForText(text string, fnt style.Font, bound geom.Size) geom.Size {
	s := f.scale(fnt)
	width := func(line string) int {
		adv := font.MeasureString(f.face, line).Ceil()
		return int(math.Ceil(float64(adv) * s))
	}
	w, n := measureLines(text, bound, width)
	return geom.Size{Width: w, Height: n * f.LineHeight(fnt)}
}
