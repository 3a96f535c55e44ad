// Package document decodes view descriptions and compiles them into layout
// trees.
//
// A document is a small declarative description of a view hierarchy, written
// in TOML or JSON:
//
//	width = 320
//
//	[root]
//	kind = "vstack"
//	padding = 8
//
//	[[root.children]]
//	kind = "text"
//	text = "Title"
//	font = "title"
//
//	[[root.children]]
//	kind = "divider"
//
// Four element kinds exist: "vstack" and "hstack" hold children, "text" holds
// a string, and "divider" is a separator line. Any element may carry a
// padding, either a single number applied to every edge or a four-element
// array in [top, leading, bottom, trailing] order. Padding wraps the element
// in its own node so the element keeps its arrangement.
//
// [Compile] turns an [Element] into a fresh [tree.Node] ready for
// layout.ComputeLayout. Every call builds new nodes, so one document can be
// laid out at many widths concurrently.
package document
