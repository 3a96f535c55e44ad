package render

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/matzehuels/stacklayout/pkg/tree"
	"github.com/matzehuels/stacklayout/pkg/view"
)

// SVG draws the laid-out tree. Stacks are dashed outlines, dividers are
// filled rules, and text is drawn in its resolved color.
func SVG(root *tree.Node, opts ...Option) []byte {
	o := newOptions(opts...)
	boxes := Boxes(root)
	bounds := Bounds(boxes)
	s := o.scale

	w, h := float64(bounds.MaxX())*s, float64(bounds.MaxY())*s

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		w, h, w, h)
	fmt.Fprintf(&buf, `  <rect width="100%%" height="100%%" fill="%s"/>`+"\n", o.background.Hex())

	for _, b := range boxes {
		x, y := float64(b.Rect.X)*s, float64(b.Rect.Y)*s
		bw, bh := float64(b.Rect.Width)*s, float64(b.Rect.Height)*s

		switch b.Kind {
		case view.KindDivider:
			fmt.Fprintf(&buf, `  <rect class="divider" id="node-%s" x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s"/>`+"\n",
				b.ID, x, y, max(bw, s), max(bh, s), o.stroke.Hex())
		case view.KindText:
			renderSVGText(&buf, b, x, y, bh)
		default:
			fmt.Fprintf(&buf, `  <rect class="%s" id="node-%s" x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="none" stroke="%s" stroke-width="%.1f" stroke-dasharray="4 2"/>`+"\n",
				b.Kind, b.ID, x, y, bw, bh, o.stroke.Hex(), 0.5*s)
		}
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func renderSVGText(buf *bytes.Buffer, b Box, x, y, h float64) {
	lines := strings.Split(b.Label, "\n")
	size := h / float64(len(lines))
	weight := "normal"
	if b.Font.Bold {
		weight = "bold"
	}

	fmt.Fprintf(buf, `  <text class="text" id="node-%s" x="%.1f" y="%.1f" font-size="%.1f" font-weight="%s" fill="%s" dominant-baseline="hanging">`,
		b.ID, x, y, size, weight, b.Color.Hex())
	if len(lines) == 1 {
		buf.WriteString(escapeXML(b.Label))
	} else {
		for i, line := range lines {
			dy := 0.0
			if i > 0 {
				dy = size
			}
			fmt.Fprintf(buf, `<tspan x="%.1f" dy="%.1f">%s</tspan>`, x, dy, escapeXML(line))
		}
	}
	buf.WriteString("</text>\n")
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
