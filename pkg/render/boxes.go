package render

import (
	"github.com/matzehuels/stacklayout/pkg/geom"
	"github.com/matzehuels/stacklayout/pkg/style"
	"github.com/matzehuels/stacklayout/pkg/tree"
	"github.com/matzehuels/stacklayout/pkg/view"
)

// Box is one node's frame in root coordinates.
type Box struct {
	ID    string
	Depth int
	Kind  view.Kind
	Label string
	Rect  geom.Rect

	// Font and Color are set for text boxes only.
	Font  style.Font
	Color style.Color
}

// IsText reports whether the box draws a string.
func (b Box) IsText() bool { return b.Kind == view.KindText }

// Boxes flattens root into absolute rectangles in pre-order, so parents
// always precede their children.
func Boxes(root *tree.Node) []Box {
	if root == nil {
		return nil
	}
	var out []Box
	collect(root, geom.Point{}, 0, &out)
	return out
}

func collect(n *tree.Node, offset geom.Point, depth int, out *[]Box) {
	f := n.Frame()
	abs := offset.Add(f.Origin)

	b := Box{
		ID:    n.ID.String(),
		Depth: depth,
		Kind:  n.Content.Kind(),
		Label: string(n.Content.Kind()),
		Rect:  geom.Rect{Point: abs, Size: f.Size()},
	}
	if t, ok := n.Content.(*view.Text); ok {
		b.Label = t.Text
		b.Font = t.Font()
		b.Color = t.Color()
	}
	*out = append(*out, b)

	for _, c := range n.Children() {
		collect(c, abs, depth+1, out)
	}
}

// Bounds returns the smallest rectangle covering every box.
func Bounds(boxes []Box) geom.Rect {
	if len(boxes) == 0 {
		return geom.Rect{}
	}
	minX, minY := boxes[0].Rect.X, boxes[0].Rect.Y
	maxX, maxY := boxes[0].Rect.MaxX(), boxes[0].Rect.MaxY()
	for _, b := range boxes[1:] {
		minX = min(minX, b.Rect.X)
		minY = min(minY, b.Rect.Y)
		maxX = max(maxX, b.Rect.MaxX())
		maxY = max(maxY, b.Rect.MaxY())
	}
	return geom.Rect{
		Point: geom.Point{X: minX, Y: minY},
		Size:  geom.Size{Width: maxX - minX, Height: maxY - minY},
	}
}
