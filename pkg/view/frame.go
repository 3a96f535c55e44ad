package view

import (
	"fmt"

	"github.com/matzehuels/stacklayout/pkg/geom"
)

// Frame holds the geometry the layout engine resolves for one content value.
// Each size axis carries an explicit resolved flag so that a legitimately
// zero dimension is distinguishable from one that has not been computed yet.
type Frame struct {
	Origin geom.Point

	size      geom.Size
	widthSet  bool
	heightSet bool
}

// Size returns the current size. Unresolved axes read as zero.
func (f *Frame) Size() geom.Size { return f.size }

// Width returns the width and whether it has been resolved in this pass.
func (f *Frame) Width() (int, bool) { return f.size.Width, f.widthSet }

// Height returns the height and whether it has been resolved in this pass.
func (f *Frame) Height() (int, bool) { return f.size.Height, f.heightSet }

// SetWidth resolves the width, overwriting any previous value.
func (f *Frame) SetWidth(w int) {
	f.size.Width = w
	f.widthSet = true
}

// SetHeight resolves the height, overwriting any previous value.
func (f *Frame) SetHeight(h int) {
	f.size.Height = h
	f.heightSet = true
}

// SetSize resolves both axes.
func (f *Frame) SetSize(s geom.Size) {
	f.SetWidth(s.Width)
	f.SetHeight(s.Height)
}

// ResolveWidth sets the width only if it is still unresolved and reports
// whether it did.
func (f *Frame) ResolveWidth(w int) bool {
	if f.widthSet {
		return false
	}
	f.SetWidth(w)
	return true
}

// ResolveHeight sets the height only if it is still unresolved and reports
// whether it did.
func (f *Frame) ResolveHeight(h int) bool {
	if f.heightSet {
		return false
	}
	f.SetHeight(h)
	return true
}

// Invalidate clears the size and resolved state but keeps the origin, so a
// caller-positioned first child stays where it was put.
func (f *Frame) Invalidate() {
	f.size = geom.Size{}
	f.widthSet = false
	f.heightSet = false
}

// Reset clears the size, origin and resolved state.
func (f *Frame) Reset() {
	*f = Frame{}
}

// InvalidateFrames invalidates the frame of c and of any content c wraps.
func InvalidateFrames(c Content) {
	for c != nil {
		c.Frame().Invalidate()
		c = wrapped(c)
	}
}

// ResetFrames resets the frame of c and of any content c wraps.
func ResetFrames(c Content) {
	for c != nil {
		c.Frame().Reset()
		c = wrapped(c)
	}
}

func wrapped(c Content) Content {
	if p, ok := c.(*Padding); ok {
		return p.Content
	}
	return nil
}

func (f *Frame) String() string {
	return fmt.Sprintf("[%v, %v]", f.Origin, f.size)
}

// resolvedOrZero returns the resolved value of an axis, or zero.
func resolvedOrZero(v int, ok bool) int {
	if !ok {
		return 0
	}
	return v
}
