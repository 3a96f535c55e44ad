package pipeline

import (
	"github.com/matzehuels/stacklayout/pkg/layout"
	"github.com/matzehuels/stacklayout/pkg/tree"
)

// =============================================================================
// Layout
// =============================================================================

// computeLayout runs the engine over root. The engine leaves a lone leaf
// root unsized, so that case takes the leaf's wanted size for width.
func computeLayout(e *layout.Engine, root *tree.Node, width int) {
	e.ComputeLayout(root, width)
	if !root.IsLeaf() {
		return
	}
	f := root.Frame()
	f.ResolveWidth(root.Content.WantedWidth(width))
	f.ResolveHeight(root.Content.WantedHeight(width))
}
