package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/stacklayout/pkg/tree"
	"github.com/matzehuels/stacklayout/pkg/view"
)

var (
	kindStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	frameStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	ruleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// Text renders the laid-out tree as an indented outline, one node per line:
//
//	vstack 68x28 @ (0, 0)
//	  text 60x20 @ (0, 0) "label"
func Text(root *tree.Node) string {
	if root == nil {
		return ""
	}
	var b strings.Builder
	root.Walk(func(n *tree.Node, depth int) bool {
		f := n.Frame()
		b.WriteString(strings.Repeat("  ", depth))
		b.WriteString(kindStyle.Render(string(n.Content.Kind())))
		b.WriteString(" ")
		b.WriteString(frameStyle.Render(fmt.Sprintf("%s @ %s", f.Size(), f.Origin)))

		switch c := n.Content.(type) {
		case *view.Text:
			label := lipgloss.NewStyle().Foreground(lipgloss.Color(c.Color().Hex()))
			if c.Font().Bold {
				label = label.Bold(true)
			}
			b.WriteString(" ")
			b.WriteString(label.Render(fmt.Sprintf("%q", c.Text)))
		case *view.Divider:
			if w := f.Size().Width; w > 0 && w <= 40 {
				b.WriteString(" ")
				b.WriteString(ruleStyle.Render(strings.Repeat("─", w)))
			}
		}
		b.WriteString("\n")
		return true
	})
	return b.String()
}
