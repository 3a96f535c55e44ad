package cli

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/stacklayout/pkg/errors"
	"github.com/matzehuels/stacklayout/pkg/geom"
	"github.com/matzehuels/stacklayout/pkg/measure"
	"github.com/matzehuels/stacklayout/pkg/tree"
	"github.com/matzehuels/stacklayout/pkg/view"
)

const testDoc = `width = 40

[root]
kind = "vstack"

[[root.children]]
kind = "text"
text = "Hello"

[[root.children]]
kind = "divider"

[[root.children]]
kind = "text"
text = "stack layout"
`

func writeDoc(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "card.toml")
	if err := os.WriteFile(path, []byte(testDoc), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestRootCommandRegistersSubcommands(t *testing.T) {
	root := New(io.Discard, LogInfo).RootCommand()
	want := []string{"layout", "render", "preview", "serve", "completion"}
	for _, name := range want {
		if cmd, _, err := root.Find([]string{name}); err != nil || cmd.Name() != name {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestLayoutCommand(t *testing.T) {
	input := writeDoc(t)
	out, err := execute(t, "layout", input)
	if err != nil {
		t.Fatalf("layout: %v", err)
	}

	outputPath := strings.TrimSuffix(input, ".toml") + ".layout.json"
	data, err := os.ReadFile(outputPath)
	if err != nil {
		t.Fatalf("read %s: %v", outputPath, err)
	}

	var node struct {
		Kind     string
		Children []json.RawMessage
	}
	if err := json.Unmarshal(data, &node); err != nil {
		t.Fatalf("unmarshal layout: %v", err)
	}
	if node.Kind != "vstack" || len(node.Children) != 3 {
		t.Errorf("layout root = %s with %d children, want vstack with 3", node.Kind, len(node.Children))
	}
	if !strings.Contains(out, outputPath) {
		t.Errorf("output %q should name %s", out, outputPath)
	}
}

func TestLayoutCommandStdout(t *testing.T) {
	out, err := execute(t, "layout", writeDoc(t), "-o", "-", "--width", "10")
	if err != nil {
		t.Fatalf("layout: %v", err)
	}
	if !strings.HasPrefix(strings.TrimSpace(out), "{") {
		t.Errorf("stdout layout should be JSON, got %q", out)
	}
}

func TestLayoutCommandErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code errors.Code
	}{
		{"missing file", []string{"layout", filepath.Join(t.TempDir(), "nope.toml")}, errors.ErrCodeFileNotFound},
		{"negative width", []string{"layout", writeDoc(t), "--width=-5"}, errors.ErrCodeInvalidWidth},
		{"unknown measurer", []string{"layout", writeDoc(t), "--measurer", "ruler"}, errors.ErrCodeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			if err == nil {
				t.Fatal("expected error")
			}
			if got := errors.GetCode(err); got != tt.code {
				t.Errorf("code = %s, want %s (%v)", got, tt.code, err)
			}
		})
	}
}

func TestRenderCommand(t *testing.T) {
	input := writeDoc(t)
	base := filepath.Join(t.TempDir(), "out")

	out, err := execute(t, "render", input, "-f", "svg,json,text,dot", "-o", base)
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	for _, ext := range []string{".svg", ".json", ".txt", ".dot"} {
		if _, err := os.Stat(base + ext); err != nil {
			t.Errorf("missing output %s: %v", base+ext, err)
		}
	}

	svg, _ := os.ReadFile(base + ".svg")
	if !bytes.HasPrefix(svg, []byte("<svg")) {
		t.Errorf("svg output starts with %q", svg[:min(len(svg), 20)])
	}
	if !strings.Contains(out, "stack layout") {
		t.Errorf("text format should be echoed to stdout, got %q", out)
	}
}

func TestRenderCommandInvalidFormat(t *testing.T) {
	_, err := execute(t, "render", writeDoc(t), "-f", "pdf")
	if got := errors.GetCode(err); got != errors.ErrCodeInvalidFormat {
		t.Errorf("code = %s, want %s", got, errors.ErrCodeInvalidFormat)
	}
}

func TestBasePath(t *testing.T) {
	tests := map[string]string{
		"card.toml":        "card",
		"dir/card.json":    "dir/card",
		"noext":            "noext",
		"dir.v2/card.toml": "dir.v2/card",
	}
	for in, want := range tests {
		if got := basePath(in); got != want {
			t.Errorf("basePath(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestDisplayAddr(t *testing.T) {
	if got := displayAddr(":8080"); got != "localhost:8080" {
		t.Errorf("displayAddr(:8080) = %q", got)
	}
	if got := displayAddr("127.0.0.1:9000"); got != "127.0.0.1:9000" {
		t.Errorf("displayAddr(127.0.0.1:9000) = %q", got)
	}
}

func TestPreviewModelResize(t *testing.T) {
	root := tree.New(view.NewVStack()).Append(tree.New(view.NewText("hi", measure.Cell{})))
	var widths []int
	relayout := func(_ *tree.Node, w int) error {
		widths = append(widths, w)
		return nil
	}

	var m tea.Model = newPreviewModel("card", root, 10, relayout)
	keys := []tea.KeyMsg{
		{Type: tea.KeyRight},
		{Type: tea.KeyLeft},
		{Type: tea.KeyLeft},
		{Type: tea.KeyLeft},
		{Type: tea.KeyRunes, Runes: []rune("l")},
	}
	for _, k := range keys {
		m, _ = m.Update(k)
	}

	// 10 → 18 → 10 → 2 → 0 (clamped) → 8
	want := []int{18, 10, 2, 0, 8}
	if len(widths) != len(want) {
		t.Fatalf("relayout widths = %v, want %v", widths, want)
	}
	for i := range want {
		if widths[i] != want[i] {
			t.Fatalf("relayout widths = %v, want %v", widths, want)
		}
	}

	// Already at zero: no further relayout.
	pm := m.(PreviewModel)
	pm.Width = 0
	m, _ = pm.Update(tea.KeyMsg{Type: tea.KeyLeft})
	if len(widths) != len(want) {
		t.Errorf("relayout at clamped width should be skipped, got %v", widths)
	}
	if m.(PreviewModel).Width != 0 {
		t.Errorf("width = %d, want 0", m.(PreviewModel).Width)
	}
}

func TestPreviewModelQuit(t *testing.T) {
	m := newPreviewModel("card", nil, 10, nil)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("q should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
}

func TestPreviewModelView(t *testing.T) {
	root := tree.New(view.NewVStack()).Append(tree.New(view.NewText("hi", measure.Cell{})))
	m := newPreviewModel("card", root, 10, nil)

	v := m.View()
	for _, want := range []string{"card", "width 10", "vstack", `"hi"`} {
		if !strings.Contains(v, want) {
			t.Errorf("view missing %q:\n%s", want, v)
		}
	}
}

func TestPrintStats(t *testing.T) {
	var buf bytes.Buffer
	printStats(&buf, 4, geom.Size{Width: 12, Height: 18}, 0)
	if got := buf.String(); !strings.Contains(got, "4 nodes") || !strings.Contains(got, "12x18") {
		t.Errorf("printStats = %q", got)
	}
}

func TestCompletionCommand(t *testing.T) {
	out, err := execute(t, "completion", "bash")
	if err != nil {
		t.Fatalf("completion: %v", err)
	}
	if !strings.Contains(out, appName) {
		t.Error("bash completion should mention the command name")
	}
}

func TestRenderCommandPNG(t *testing.T) {
	base := filepath.Join(t.TempDir(), "card")
	if _, err := execute(t, "render", writeDoc(t), "-f", "png", "-o", base, "--scale", "2"); err != nil {
		t.Fatalf("render: %v", err)
	}
	data, err := os.ReadFile(base + ".png")
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("\x89PNG")) {
		t.Errorf("png output starts with %q", data[:min(len(data), 8)])
	}
}

func TestRenderCommandRejectsOversizedScale(t *testing.T) {
	_, err := execute(t, "render", writeDoc(t), "-f", "png", "-o", filepath.Join(t.TempDir(), "x"), "--scale", "5000")
	if got := errors.GetCode(err); got != errors.ErrCodeInvalidInput {
		t.Errorf("code = %s, want %s (%v)", got, errors.ErrCodeInvalidInput, err)
	}
}

func TestNeedsSpinner(t *testing.T) {
	tests := []struct {
		formats []string
		want    bool
	}{
		{[]string{"svg", "json"}, false},
		{[]string{"text"}, false},
		{[]string{"svg", "png"}, true},
		{[]string{"graph"}, true},
		{nil, false},
	}
	for _, tt := range tests {
		if got := needsSpinner(tt.formats); got != tt.want {
			t.Errorf("needsSpinner(%v) = %v, want %v", tt.formats, got, tt.want)
		}
	}
}
