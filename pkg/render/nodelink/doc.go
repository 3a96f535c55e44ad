// Package nodelink renders view trees as node-link diagrams.
//
// # Overview
//
// Where the parent render package draws the geometry a layout pass produced,
// this package draws the tree structure itself: one box per node, one arrow
// per parent-child edge, with each node's resolved size in its label. It is
// handy for inspecting why a stack ended up the size it did.
//
// # Usage
//
// Convert a tree to DOT, then render to SVG with the embedded Graphviz:
//
//	dot := nodelink.ToDOT(root, nodelink.Options{Detailed: true})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// # Options
//
//   - Detailed: include origins and padding insets in labels
package nodelink
