// Package style resolves text styling from an ordered list of modifiers.
//
// Modifiers are applied in order and the last modifier of a given kind wins.
// When no modifier of a kind is present the documented default is used:
// [Body] for fonts and [Black] for colors.
package style

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Font describes a named text style at a point size.
type Font struct {
	Name string  `json:"name"`
	Size float64 `json:"size"`
	Bold bool    `json:"bold,omitempty"`
}

// Named font presets.
var (
	Body     = Font{Name: "body", Size: 17}
	Title    = Font{Name: "title", Size: 28, Bold: true}
	Headline = Font{Name: "headline", Size: 17, Bold: true}
	Caption  = Font{Name: "caption", Size: 12}
	Footnote = Font{Name: "footnote", Size: 13}
)

var fontsByName = map[string]Font{
	Body.Name:     Body,
	Title.Name:    Title,
	Headline.Name: Headline,
	Caption.Name:  Caption,
	Footnote.Name: Footnote,
}

// FontByName looks up a preset by name. Unknown names fall back to [Body]
// and report false.
func FontByName(name string) (Font, bool) {
	f, ok := fontsByName[strings.ToLower(name)]
	if !ok {
		return Body, false
	}
	return f, true
}

func (f Font) String() string {
	return fmt.Sprintf("%s %.0fpt", f.Name, f.Size)
}

// Color is an sRGB color.
type Color struct {
	c colorful.Color
}

// Named colors.
var (
	Black = Color{c: colorful.Color{R: 0, G: 0, B: 0}}
	White = Color{c: colorful.Color{R: 1, G: 1, B: 1}}
	Gray  = Color{c: colorful.Color{R: 0.5, G: 0.5, B: 0.5}}
)

// ParseColor parses a "#rrggbb" hex string.
func ParseColor(s string) (Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return Black, fmt.Errorf("parse color %q: %w", s, err)
	}
	return Color{c: c}, nil
}

// Hex returns the color as "#rrggbb".
func (c Color) Hex() string {
	return c.c.Clamped().Hex()
}

// RGB255 returns the 8-bit channel values.
func (c Color) RGB255() (r, g, b uint8) {
	return c.c.Clamped().RGB255()
}

// RGB returns the channel values in [0, 1].
func (c Color) RGB() (r, g, b float64) {
	cc := c.c.Clamped()
	return cc.R, cc.G, cc.B
}

func (c Color) String() string { return c.Hex() }

// Modifier is one entry of a text style list.
type Modifier interface {
	modifier()
}

// FontModifier sets the font.
type FontModifier struct{ Font Font }

// ColorModifier sets the foreground color.
type ColorModifier struct{ Color Color }

func (FontModifier) modifier()  {}
func (ColorModifier) modifier() {}

// WithFont returns a font modifier.
func WithFont(f Font) Modifier { return FontModifier{Font: f} }

// WithColor returns a color modifier.
func WithColor(c Color) Modifier { return ColorModifier{Color: c} }

// Resolved is the effective style after applying a modifier list.
type Resolved struct {
	Font  Font
	Color Color
}

// Resolve applies mods in order; the last modifier of each kind wins.
func Resolve(mods []Modifier) Resolved {
	r := Resolved{Font: Body, Color: Black}
	for _, m := range mods {
		switch m := m.(type) {
		case FontModifier:
			r.Font = m.Font
		case ColorModifier:
			r.Color = m.Color
		}
	}
	return r
}

// ResolveFont returns the effective font of mods.
func ResolveFont(mods []Modifier) Font { return Resolve(mods).Font }

// ResolveColor returns the effective color of mods.
func ResolveColor(mods []Modifier) Color { return Resolve(mods).Color }
