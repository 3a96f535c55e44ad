// Package render turns a laid-out view tree into output artifacts.
//
// # Overview
//
// The layout engine stores every origin relative to the node's parent. This
// package walks a finished tree once, accumulating those origins into
// absolute rectangles ([Boxes]), and then draws the boxes in several formats:
//
//   - [JSON]: the nested tree with relative origins, for tooling
//   - [SVG]: vector drawing with stack outlines, dividers and text
//   - [PNG]: raster drawing via fogleman/gg
//   - [Text]: an indented outline styled for terminals
//
// Node-link diagrams of the tree structure live in the [nodelink]
// subpackage, which renders through Graphviz.
//
// Renderers never change geometry. A tree that has not been laid out renders
// with zero sizes.
//
//	layout.ComputeLayout(root, 320)
//	svg := render.SVG(root, render.WithScale(2))
//	png, err := render.PNG(root)
//
// [nodelink]: github.com/matzehuels/stacklayout/pkg/render/nodelink
package render
