// Package pkg provides the core libraries for stacklayout.
//
// # Overview
//
// Stacklayout sizes and positions a tree of nested views. Vertical and
// horizontal stacks propose a width to their children, the children answer
// with what they want, and the stacks distribute what is left. The pkg
// directory is organized into four main areas:
//
//  1. [geom], [style], [measure] - value types and text metrics
//  2. [view], [tree], [layout] - the view tree and the layout engine
//  3. [document], [render] - view documents in, drawings and geometry out
//  4. [pipeline], [server] - orchestration for the CLI and the HTTP API
//
// # Architecture
//
// The typical data flow through stacklayout:
//
//	TOML / JSON view document
//	         ↓
//	    [document] package (decode + compile into a view tree)
//	         ↓
//	    [layout] package (negotiate sizes, assign origins)
//	         ↓
//	    [render] package (SVG, PNG, JSON, DOT, text)
//
// # Quick Start
//
// Build a tree by hand and lay it out:
//
//	import (
//	    "github.com/matzehuels/stacklayout/pkg/layout"
//	    "github.com/matzehuels/stacklayout/pkg/measure"
//	    "github.com/matzehuels/stacklayout/pkg/tree"
//	    "github.com/matzehuels/stacklayout/pkg/view"
//	)
//
//	root := tree.New(view.NewVStack()).Append(
//	    tree.New(view.NewText("Hello", measure.Cell{})),
//	    tree.New(view.NewDivider()),
//	)
//	layout.ComputeLayout(root, 40)
//	size := root.Frame().Size()
//
// # Main Packages
//
// [layout] - The engine. It walks the tree top-down, proposing widths and
// resolving heights, then places children along the stack axis with the
// default spacing between them.
//
// [view] - Content kinds: text, divider, vstack, hstack and padding. Each
// content value owns a [view.Frame] holding its resolved origin and size.
//
// [measure] - Text measurers. Cell counts terminal cells; Face measures with
// a bitmap font face. Both can be memoized.
//
// [document] - Declarative view documents read from TOML or JSON.
//
// [pipeline] - Load, layout and render stages shared by the CLI and server.
//
// [errors] - Coded errors shared across entry points.
//
// [observability] - Optional hooks for layout, render and HTTP events.
package pkg
