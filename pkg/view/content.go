package view

import (
	"fmt"

	"github.com/matzehuels/stacklayout/pkg/geom"
)

// Arrangement selects how a branch node stacks its children.
type Arrangement int

const (
	// Vertical stacks children top to bottom. It is the default.
	Vertical Arrangement = iota
	// Horizontal stacks children leading to trailing.
	Horizontal
)

func (a Arrangement) String() string {
	switch a {
	case Horizontal:
		return "horizontal"
	default:
		return "vertical"
	}
}

// Kind names a content variant.
type Kind string

// Content variant kinds.
const (
	KindText    Kind = "text"
	KindDivider Kind = "divider"
	KindPadding Kind = "padding"
	KindHStack  Kind = "hstack"
	KindVStack  Kind = "vstack"
)

// Content is the capability every node value provides to the layout engine.
type Content interface {
	// Kind names the variant.
	Kind() Kind

	// Arrangement is the stacking used when the node holding this content
	// has children.
	Arrangement() Arrangement

	// Insets returns the padding this content adds around its children and
	// whether it is padded at all.
	Insets() (geom.EdgeInsets, bool)

	// WantedWidth is the width the content would like for a proposed width.
	WantedWidth(proposed int) int

	// WantedHeight is the height the content would like for a proposed height.
	WantedHeight(proposed int) int

	// Frame is the mutable geometry the engine resolves.
	Frame() *Frame

	sealed()
}

// HStack marks a branch whose children are arranged horizontally.
type HStack struct{ frame Frame }

// NewHStack returns a horizontal stack marker.
func NewHStack() *HStack { return &HStack{} }

func (*HStack) Kind() Kind                      { return KindHStack }
func (*HStack) Arrangement() Arrangement        { return Horizontal }
func (*HStack) Insets() (geom.EdgeInsets, bool) { return geom.EdgeInsets{}, false }
func (s *HStack) Frame() *Frame                 { return &s.frame }
func (*HStack) sealed()                         {}

// WantedWidth returns the engine-resolved width, or zero.
func (s *HStack) WantedWidth(int) int { return resolvedOrZero(s.frame.Width()) }

// WantedHeight returns the engine-resolved height, or zero.
func (s *HStack) WantedHeight(int) int { return resolvedOrZero(s.frame.Height()) }

func (s *HStack) String() string { return "HStack " + s.frame.String() }

// VStack marks a branch whose children are arranged vertically.
type VStack struct{ frame Frame }

// NewVStack returns a vertical stack marker.
func NewVStack() *VStack { return &VStack{} }

func (*VStack) Kind() Kind                      { return KindVStack }
func (*VStack) Arrangement() Arrangement        { return Vertical }
func (*VStack) Insets() (geom.EdgeInsets, bool) { return geom.EdgeInsets{}, false }
func (s *VStack) Frame() *Frame                 { return &s.frame }
func (*VStack) sealed()                         {}

// WantedWidth returns the engine-resolved width, or zero.
func (s *VStack) WantedWidth(int) int { return resolvedOrZero(s.frame.Width()) }

// WantedHeight returns the engine-resolved height, or zero.
func (s *VStack) WantedHeight(int) int { return resolvedOrZero(s.frame.Height()) }

func (s *VStack) String() string { return "VStack " + s.frame.String() }

// Divider is a rule. It wants no space of its own; a horizontal stack
// stretches its height to the tallest sibling.
type Divider struct{ frame Frame }

// NewDivider returns a divider.
func NewDivider() *Divider { return &Divider{} }

func (*Divider) Kind() Kind                      { return KindDivider }
func (*Divider) Arrangement() Arrangement        { return Vertical }
func (*Divider) Insets() (geom.EdgeInsets, bool) { return geom.EdgeInsets{}, false }
func (d *Divider) Frame() *Frame                 { return &d.frame }
func (*Divider) sealed()                         {}

// WantedWidth returns the resolved width, or zero.
func (d *Divider) WantedWidth(int) int { return resolvedOrZero(d.frame.Width()) }

// WantedHeight returns the resolved height, or zero.
func (d *Divider) WantedHeight(int) int { return resolvedOrZero(d.frame.Height()) }

func (d *Divider) String() string { return "Divider " + d.frame.String() }

// IsDivider reports whether c is a Divider.
func IsDivider(c Content) bool {
	return c != nil && c.Kind() == KindDivider
}

// Describe returns a one-line description of c for logs and debug output.
func Describe(c Content) string {
	if s, ok := c.(fmt.Stringer); ok {
		return s.String()
	}
	return string(c.Kind())
}
