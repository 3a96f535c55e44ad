package measure

import (
	"math"
	"strings"

	"github.com/matzehuels/stacklayout/pkg/geom"
	"github.com/matzehuels/stacklayout/pkg/style"
)

// Unbounded marks a proposal dimension with no limit.
const Unbounded = math.MaxInt

// Measurer computes the size text needs within a bounding proposal.
type Measurer interface {
	SizeForText(text string, font style.Font, bound geom.Size) geom.Size
}

// Func adapts a plain function to the Measurer interface.
type Func func(text string, font style.Font, bound geom.Size) geom.Size

// SizeForText calls f.
func (f Func) SizeForText(text string, font style.Font, bound geom.Size) geom.Size {
	return f(text, font, bound)
}

// Fixed reports the same size for every query.
type Fixed geom.Size

// SizeForText returns the fixed size.
func (f Fixed) SizeForText(string, style.Font, geom.Size) geom.Size {
	return geom.Size(f)
}

// clampBound replaces negative proposal dimensions with zero.
func clampBound(b geom.Size) geom.Size {
	return geom.Size{Width: max(0, b.Width), Height: max(0, b.Height)}
}

// wrap breaks text into lines no wider than maxWidth, splitting on
// whitespace. Explicit newlines always break. A single word wider than
// maxWidth is kept whole on its own line.
func wrap(text string, maxWidth int, width func(string) int) []string {
	var lines []string
	for _, para := range strings.Split(text, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		line := words[0]
		for _, w := range words[1:] {
			candidate := line + " " + w
			if width(candidate) > maxWidth {
				lines = append(lines, line)
				line = w
				continue
			}
			line = candidate
		}
		lines = append(lines, line)
	}
	return lines
}

// measureLines wraps text to bound and returns the widest line and the number
// of lines.
func measureLines(text string, bound geom.Size, width func(string) int) (maxWidth, count int) {
	if text == "" {
		return 0, 0
	}
	lines := wrap(text, clampBound(bound).Width, width)
	for _, l := range lines {
		maxWidth = max(maxWidth, width(l))
	}
	return maxWidth, len(lines)
}
