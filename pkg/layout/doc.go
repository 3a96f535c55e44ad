// Package layout implements the stack layout engine.
//
// [ComputeLayout] sizes and positions every node of a [tree.Node] subtree for
// a proposed root width. Sizing runs bottom-up: each branch recurses into its
// children before computing its own size from theirs. Positioning runs
// afterwards, placing siblings one after another along the stack's main axis
// with [DefaultSpacing] between them.
//
// # Arrangements
//
// A branch whose content is an [view.HStack] uses the horizontal arrangement;
// every other branch (VStack, Padding, anything else) uses the vertical one.
//
// Both arrangements negotiate widths in two passes. Children whose wanted
// width is strictly below their proposal are "tight" and get exactly what
// they want. The others are "greedy" and are deferred:
//
//   - Horizontal: proposals are an online fair share of the width still
//     unclaimed, recomputed per child in sibling order. Greedy children split
//     whatever remains evenly. Dividers are stretched to the tallest sibling.
//   - Vertical: every child is proposed the full width and greedy children get
//     the whole lane. Container height adds the padding insets.
//
// The vertical arrangement still deducts each tight child's width from a
// running remaining-width tracker, and that tracker is the height proposal
// for all children. The result therefore depends on sibling order. This is
// the established behavior and is preserved.
//
// # Passes
//
// Every call recomputes the whole subtree; nothing is cached across calls.
// Sizes resolved in a previous pass are invalidated on entry, origins are
// kept, so repeated calls with the same width give the same geometry.
//
// Layout is synchronous and single-threaded. A tree must not be read or laid
// out concurrently with a pass over it.
package layout
