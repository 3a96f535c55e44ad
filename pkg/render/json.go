package render

import (
	"encoding/json"

	"github.com/matzehuels/stacklayout/pkg/geom"
	"github.com/matzehuels/stacklayout/pkg/tree"
	"github.com/matzehuels/stacklayout/pkg/view"
)

// Node is the serialized form of a laid-out node. Origins stay relative to
// the parent, as the engine computed them.
type Node struct {
	ID       string           `json:"id"`
	Kind     view.Kind        `json:"kind"`
	Text     string           `json:"text,omitempty"`
	Font     string           `json:"font,omitempty"`
	Color    string           `json:"color,omitempty"`
	Insets   *geom.EdgeInsets `json:"insets,omitempty"`
	Origin   geom.Point       `json:"origin"`
	Size     geom.Size        `json:"size"`
	Children []*Node          `json:"children,omitempty"`
}

// Export converts a tree into its serializable form.
func Export(n *tree.Node) *Node {
	if n == nil {
		return nil
	}
	f := n.Frame()
	out := &Node{
		ID:     n.ID.String(),
		Kind:   n.Content.Kind(),
		Origin: f.Origin,
		Size:   f.Size(),
	}
	if t, ok := n.Content.(*view.Text); ok {
		out.Text = t.Text
		out.Font = t.Font().Name
		out.Color = t.Color().Hex()
	}
	if e, ok := n.Content.Insets(); ok {
		out.Insets = &e
	}
	for _, c := range n.Children() {
		out.Children = append(out.Children, Export(c))
	}
	return out
}

// JSON encodes the laid-out tree as indented JSON.
func JSON(root *tree.Node) ([]byte, error) {
	return json.MarshalIndent(Export(root), "", "  ")
}
