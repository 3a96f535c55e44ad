package render

import (
	"bytes"
	"fmt"

	"github.com/fogleman/gg"

	"github.com/matzehuels/stacklayout/pkg/errors"
	"github.com/matzehuels/stacklayout/pkg/tree"
	"github.com/matzehuels/stacklayout/pkg/view"
)

// MaxPixels bounds the area of a rasterized image.
const MaxPixels = 1 << 26

// PNG rasterizes the laid-out tree. Text is drawn with the configured font
// face, wrapped to its box width. Images larger than MaxPixels are refused.
func PNG(root *tree.Node, opts ...Option) ([]byte, error) {
	o := newOptions(opts...)
	boxes := Boxes(root)
	bounds := Bounds(boxes)
	s := o.scale

	if area := float64(bounds.MaxX()) * s * float64(bounds.MaxY()) * s; area > MaxPixels {
		return nil, errors.New(errors.ErrCodeInvalidInput,
			"png of %.0fx%.0f exceeds %d pixels", float64(bounds.MaxX())*s, float64(bounds.MaxY())*s, MaxPixels)
	}

	w := max(1, int(float64(bounds.MaxX())*s))
	h := max(1, int(float64(bounds.MaxY())*s))

	dc := gg.NewContext(w, h)
	dc.SetRGB(o.background.RGB())
	dc.Clear()
	dc.SetFontFace(o.face.FontFace())

	for _, b := range boxes {
		x, y := float64(b.Rect.X)*s, float64(b.Rect.Y)*s
		bw, bh := float64(b.Rect.Width)*s, float64(b.Rect.Height)*s

		switch b.Kind {
		case view.KindDivider:
			dc.SetRGB(o.stroke.RGB())
			dc.DrawRectangle(x, y, max(bw, s), max(bh, s))
			dc.Fill()
		case view.KindText:
			dc.SetRGB(b.Color.RGB())
			dc.DrawStringWrapped(b.Label, x, y, 0, 0, max(bw, 1), 1.0, gg.AlignLeft)
		default:
			dc.SetRGB(o.stroke.RGB())
			dc.SetLineWidth(0.5 * s)
			dc.SetDash(4, 2)
			dc.DrawRectangle(x, y, bw, bh)
			dc.Stroke()
			dc.SetDash()
		}
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}
