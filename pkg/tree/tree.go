// Package tree holds the layout tree: an ownership tree of nodes, each with
// one content value and an ordered list of exclusively owned children.
//
// The parent pointer is a navigational back-reference only. It never takes
// part in equality, which is decided by the node's identity token alone.
//
// Trees are not safe for concurrent use. A layout pass mutates every frame
// in the subtree in place, so a tree must not be read or laid out again until
// the pass returns. Independent trees may be processed concurrently.
package tree

import (
	"github.com/google/uuid"

	"github.com/matzehuels/stacklayout/pkg/view"
)

// Node is one element of the layout tree.
type Node struct {
	// ID is unique per node and is the sole basis of equality.
	ID uuid.UUID

	// Content is the node's value.
	Content view.Content

	parent   *Node
	children []*Node
}

// New returns a detached node holding c.
func New(c view.Content) *Node {
	return &Node{ID: uuid.New(), Content: c}
}

// Append adds children in order and returns n for chaining. A child that
// already belongs to another node is detached from it first.
func (n *Node) Append(children ...*Node) *Node {
	for _, c := range children {
		if c == nil {
			continue
		}
		if c.parent != nil {
			c.parent.remove(c)
		}
		c.parent = n
		n.children = append(n.children, c)
	}
	return n
}

func (n *Node) remove(child *Node) {
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			child.parent = nil
			return
		}
	}
}

// Parent returns the owning node, or nil for a root.
func (n *Node) Parent() *Node { return n.parent }

// Children returns the ordered children. Callers must not modify the slice.
func (n *Node) Children() []*Node { return n.children }

// Child returns the i-th child.
func (n *Node) Child(i int) *Node { return n.children[i] }

// Degree is the number of children.
func (n *Node) Degree() int { return len(n.children) }

// IsLeaf reports whether n has no children.
func (n *Node) IsLeaf() bool { return len(n.children) == 0 }

// IsBranch reports whether n has at least one child.
func (n *Node) IsBranch() bool { return len(n.children) > 0 }

// IsRoot reports whether n has no parent.
func (n *Node) IsRoot() bool { return n.parent == nil }

// Frame returns the content's frame.
func (n *Node) Frame() *view.Frame { return n.Content.Frame() }

// Equal reports whether n and other are the same node.
func (n *Node) Equal(other *Node) bool {
	if n == nil || other == nil {
		return n == other
	}
	return n.ID == other.ID
}

// Ancestors returns the chain of parents from the nearest to the root.
func (n *Node) Ancestors() []*Node {
	var out []*Node
	for p := n.parent; p != nil; p = p.parent {
		out = append(out, p)
	}
	return out
}

// Depth is the number of ancestors.
func (n *Node) Depth() int {
	d := 0
	for p := n.parent; p != nil; p = p.parent {
		d++
	}
	return d
}

// HasAncestor reports whether some ancestor of n satisfies fn.
func (n *Node) HasAncestor(fn func(*Node) bool) bool {
	for p := n.parent; p != nil; p = p.parent {
		if fn(p) {
			return true
		}
	}
	return false
}

// Walk visits n and its descendants in pre-order. Returning false from fn
// skips the visited node's children.
func (n *Node) Walk(fn func(node *Node, depth int) bool) {
	n.walk(fn, 0)
}

func (n *Node) walk(fn func(*Node, int) bool, depth int) {
	if !fn(n, depth) {
		return
	}
	for _, c := range n.children {
		c.walk(fn, depth+1)
	}
}

// Count returns the number of nodes in the subtree rooted at n.
func (n *Node) Count() int {
	count := 0
	n.Walk(func(*Node, int) bool {
		count++
		return true
	})
	return count
}

// Invalidate clears the size and resolved state of every frame in the
// subtree, keeping origins. Content wrapped by a Padding is cleared too.
func (n *Node) Invalidate() {
	n.Walk(func(node *Node, _ int) bool {
		view.InvalidateFrames(node.Content)
		return true
	})
}

// Reset clears the frame of every node in the subtree, origins included.
func (n *Node) Reset() {
	n.Walk(func(node *Node, _ int) bool {
		view.ResetFrames(node.Content)
		return true
	})
}

func (n *Node) String() string {
	if n.Content == nil {
		return "<empty>"
	}
	return view.Describe(n.Content)
}
