package geom

import "fmt"

// Point is the origin of a node relative to its parent's content box.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Add returns the component-wise sum of p and q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Size is a width and height in layout units.
type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// IsZero reports whether both dimensions are zero.
func (s Size) IsZero() bool {
	return s.Width == 0 && s.Height == 0
}

// Grow returns s enlarged by the insets on every side.
func (s Size) Grow(e EdgeInsets) Size {
	return Size{Width: s.Width + e.Horizontal(), Height: s.Height + e.Vertical()}
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// EdgeInsets is the padding a container adds around its children.
type EdgeInsets struct {
	Top      int `json:"top" toml:"top"`
	Leading  int `json:"leading" toml:"leading"`
	Bottom   int `json:"bottom" toml:"bottom"`
	Trailing int `json:"trailing" toml:"trailing"`
}

// Uniform returns insets with the same value on all four sides.
func Uniform(n int) EdgeInsets {
	return EdgeInsets{Top: n, Leading: n, Bottom: n, Trailing: n}
}

// Horizontal returns Leading + Trailing.
func (e EdgeInsets) Horizontal() int {
	return e.Leading + e.Trailing
}

// Vertical returns Top + Bottom.
func (e EdgeInsets) Vertical() int {
	return e.Top + e.Bottom
}

// IsZero reports whether all four insets are zero.
func (e EdgeInsets) IsZero() bool {
	return e == EdgeInsets{}
}

// Rect is an absolute rectangle, used by renderers once origins have been
// accumulated down the tree.
type Rect struct {
	Point
	Size
}

// MaxX returns the right edge of r.
func (r Rect) MaxX() int { return r.X + r.Width }

// MaxY returns the bottom edge of r.
func (r Rect) MaxY() int { return r.Y + r.Height }
