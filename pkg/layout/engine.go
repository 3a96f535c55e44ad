package layout

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/stacklayout/pkg/geom"
	"github.com/matzehuels/stacklayout/pkg/tree"
	"github.com/matzehuels/stacklayout/pkg/view"
)

// DefaultSpacing is the gap between adjacent siblings along the main axis.
const DefaultSpacing = 8

// InternalSpacing is the total gap between degree siblings.
func InternalSpacing(degree int) int {
	return max(0, degree-1) * DefaultSpacing
}

// Engine runs layout passes. The zero value is ready to use and logs nothing.
type Engine struct {
	// Logger receives one debug entry per negotiated branch.
	Logger *log.Logger
}

// New returns an engine that logs negotiation details to logger.
func New(logger *log.Logger) *Engine {
	return &Engine{Logger: logger}
}

var defaultEngine = &Engine{}

// ComputeLayout sizes and positions n and its subtree for givenWidth using a
// silent engine. givenWidth must not be negative.
func ComputeLayout(n *tree.Node, givenWidth int) {
	defaultEngine.ComputeLayout(n, givenWidth)
}

// ComputeLayout sizes and positions n and its subtree for givenWidth. Results
// are written to each node's frame. A leaf root is left unsized.
//
// givenWidth must not be negative; callers validate it before the pass.
func (e *Engine) ComputeLayout(n *tree.Node, givenWidth int) {
	if n == nil {
		return
	}
	n.Invalidate()
	e.compute(n, givenWidth)
}

func (e *Engine) compute(n *tree.Node, givenWidth int) {
	if n.IsLeaf() {
		return
	}
	switch n.Content.Arrangement() {
	case view.Horizontal:
		e.horizontal(n, givenWidth)
	default:
		e.vertical(n, givenWidth)
	}
}

func (e *Engine) logger() *log.Logger {
	if e.Logger == nil {
		return discard
	}
	return e.Logger
}

var discard = log.New(io.Discard)

// deferral is a greedy child waiting for a share of the leftover width.
type deferral struct {
	index  int
	wanted int
}

// negotiation is the result of folding the first width pass over a branch's
// children in sibling order.
type negotiation struct {
	// remaining is the width left after tight children were served. It is
	// also the height proposal for every child.
	remaining int
	// total accumulates assigned widths plus internal spacing.
	total    int
	deferred []deferral
	dividers []int
}

func sumWidths(children []*tree.Node) int {
	total := 0
	for _, c := range children {
		total += c.Frame().Size().Width
	}
	return total
}

func sumHeights(children []*tree.Node) int {
	total := 0
	for _, c := range children {
		total += c.Frame().Size().Height
	}
	return total
}

func maxWidth(children []*tree.Node) int {
	m := 0
	for _, c := range children {
		m = max(m, c.Frame().Size().Width)
	}
	return m
}

// maxHeight returns the tallest child, or 1 when there are none.
func maxHeight(children []*tree.Node) int {
	if len(children) == 0 {
		return 1
	}
	m := 0
	for _, c := range children {
		m = max(m, c.Frame().Size().Height)
	}
	return m
}

// resolveHeights proposes height to every child and records the wanted
// height where none is resolved yet. It returns the tallest wanted height.
func resolveHeights(children []*tree.Node, proposed int) int {
	tallest := 0
	for _, c := range children {
		h := max(0, c.Content.WantedHeight(proposed))
		c.Frame().ResolveHeight(h)
		tallest = max(tallest, h)
	}
	return tallest
}

func (e *Engine) logNegotiation(n *tree.Node, neg negotiation, size geom.Size) {
	e.logger().Debug("negotiated stack",
		"arrangement", n.Content.Arrangement(),
		"content", n.Content.Kind(),
		"degree", n.Degree(),
		"remaining", neg.remaining,
		"deferred", len(neg.deferred),
		"dividers", len(neg.dividers),
		"size", size)
}
