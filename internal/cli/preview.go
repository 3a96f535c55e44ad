package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/stacklayout/pkg/pipeline"
	"github.com/matzehuels/stacklayout/pkg/render"
	"github.com/matzehuels/stacklayout/pkg/tree"
)

var (
	previewHelpStyle  = lipgloss.NewStyle().Foreground(colorDim)
	previewErrorStyle = lipgloss.NewStyle().Foreground(colorRed)
)

// previewCommand creates the preview command, an interactive outline that
// re-lays out the document as the proposed width changes.
func (c *CLI) previewCommand() *cobra.Command {
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "preview [document]",
		Short: "Interactively re-layout a document at different widths",
		Long: `Interactively re-layout a document at different widths.

The preview compiles the document once and lays out the same tree again every
time the width changes. Use ←/→ (or h/l) to shrink or grow the proposed width
and q to quit.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runPreview(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().IntVarP(&opts.Width, "width", "w", 0, "initial proposed width (default: document width or 320)")
	cmd.Flags().StringVar(&opts.Measurer, "measurer", pipeline.DefaultMeasurer, "text measurer: cell, face")

	return cmd
}

func (c *CLI) runPreview(ctx context.Context, input string, opts pipeline.Options) error {
	if ctx == nil {
		ctx = context.Background()
	}
	doc, err := pipeline.Load(ctx, input)
	if err != nil {
		return fmt.Errorf("load document %s: %w", input, err)
	}

	// Layout logging would tear the alternate screen.
	opts.Logger = log.New(io.Discard)
	runner := c.newRunner()

	root, err := runner.Layout(ctx, doc, opts)
	if err != nil {
		return err
	}

	m := newPreviewModel(input, root, opts.ResolveWidth(doc.Width), func(root *tree.Node, width int) error {
		_, err := runner.LayoutTree(ctx, root, width, opts)
		return err
	})
	_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}

// relayoutFunc lays out root again at width.
type relayoutFunc func(root *tree.Node, width int) error

// PreviewModel is the bubbletea model for the width preview.
type PreviewModel struct {
	Title  string
	Root   *tree.Node
	Width  int
	Err    error
	Height int

	relayout relayoutFunc
}

func newPreviewModel(title string, root *tree.Node, width int, relayout relayoutFunc) PreviewModel {
	return PreviewModel{
		Title:    title,
		Root:     root,
		Width:    width,
		Height:   24,
		relayout: relayout,
	}
}

func (m PreviewModel) Init() tea.Cmd {
	return nil
}

func (m PreviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "left", "h":
			m = m.resize(m.Width - previewStep)
		case "right", "l":
			m = m.resize(m.Width + previewStep)
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height
	}
	return m, nil
}

// resize lays the tree out again at width, clamped at zero.
func (m PreviewModel) resize(width int) PreviewModel {
	width = max(width, 0)
	if width == m.Width {
		return m
	}
	m.Width = width
	m.Err = m.relayout(m.Root, width)
	return m
}

func (m PreviewModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(m.Title))
	b.WriteString("  ")
	b.WriteString(StyleNumber.Render(fmt.Sprintf("width %d", m.Width)))
	if m.Root != nil {
		b.WriteString(StyleDim.Render(fmt.Sprintf(" → %s", m.Root.Frame().Size())))
	}
	b.WriteString("\n")
	b.WriteString(previewHelpStyle.Render("←/→ width  q quit"))
	b.WriteString("\n\n")

	if m.Err != nil {
		b.WriteString(previewErrorStyle.Render(m.Err.Error()))
		b.WriteString("\n")
		return b.String()
	}

	lines := strings.Split(strings.TrimRight(render.Text(m.Root), "\n"), "\n")
	if limit := m.Height - 4; limit > 0 && len(lines) > limit {
		hidden := len(lines) - limit
		lines = append(lines[:limit], StyleDim.Render(fmt.Sprintf("… %d more", hidden)))
	}
	b.WriteString(strings.Join(lines, "\n"))
	b.WriteString("\n")
	return b.String()
}
