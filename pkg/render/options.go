package render

import (
	"github.com/matzehuels/stacklayout/pkg/measure"
	"github.com/matzehuels/stacklayout/pkg/style"
)

// DefaultScale is the drawing scale used when none is given.
const DefaultScale = 1.0

// Option configures the drawing renderers.
type Option func(*options)

type options struct {
	scale      float64
	background style.Color
	stroke     style.Color
	face       *measure.Face
}

// WithScale multiplies every coordinate. Non-positive scales are ignored.
func WithScale(s float64) Option {
	return func(o *options) {
		if s > 0 {
			o.scale = s
		}
	}
}

// WithBackground sets the canvas color.
func WithBackground(c style.Color) Option { return func(o *options) { o.background = c } }

// WithStroke sets the outline color for stacks and dividers.
func WithStroke(c style.Color) Option { return func(o *options) { o.stroke = c } }

// WithFace sets the font face used to rasterize text in PNG output.
func WithFace(f *measure.Face) Option { return func(o *options) { o.face = f } }

func newOptions(opts ...Option) options {
	o := options{
		scale:      DefaultScale,
		background: style.White,
		stroke:     style.Gray,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.face == nil {
		o.face = measure.DefaultFace()
	}
	return o
}
