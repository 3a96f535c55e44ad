package render

import (
	"bytes"
	"encoding/json"
	"image/png"
	"strings"
	"testing"

	"github.com/matzehuels/stacklayout/pkg/errors"
	"github.com/matzehuels/stacklayout/pkg/geom"
	"github.com/matzehuels/stacklayout/pkg/layout"
	"github.com/matzehuels/stacklayout/pkg/measure"
	"github.com/matzehuels/stacklayout/pkg/style"
	"github.com/matzehuels/stacklayout/pkg/tree"
	"github.com/matzehuels/stacklayout/pkg/view"
)

func fixed(label string, w, h int) *tree.Node {
	return tree.New(view.NewText(label, measure.Fixed{Width: w, Height: h}))
}

// card is a column holding a title and a row of two labels split by a divider.
func card() *tree.Node {
	red, _ := style.ParseColor("#ff0000")
	title := tree.New(view.NewText("Title", measure.Fixed{Width: 30, Height: 10},
		style.WithFont(style.Title), style.WithColor(red)))
	row := tree.New(view.NewHStack()).Append(
		fixed("a", 10, 5),
		tree.New(view.NewDivider()),
		fixed("b", 10, 5),
	)
	root := tree.New(view.NewVStack()).Append(title, row)
	layout.ComputeLayout(root, 100)
	return root
}

func TestBoxesAbsolute(t *testing.T) {
	boxes := Boxes(card())
	if len(boxes) != 6 {
		t.Fatalf("len(Boxes) = %d, want 6", len(boxes))
	}

	tests := []struct {
		i     int
		kind  view.Kind
		depth int
		rect  geom.Rect
	}{
		{0, view.KindVStack, 0, geom.Rect{Size: geom.Size{Width: 36, Height: 23}}},
		{1, view.KindText, 1, geom.Rect{Size: geom.Size{Width: 30, Height: 10}}},
		{2, view.KindHStack, 1, geom.Rect{Point: geom.Point{Y: 18}, Size: geom.Size{Width: 36, Height: 5}}},
		{3, view.KindText, 2, geom.Rect{Point: geom.Point{Y: 18}, Size: geom.Size{Width: 10, Height: 5}}},
		{4, view.KindDivider, 2, geom.Rect{Point: geom.Point{X: 18, Y: 18}, Size: geom.Size{Width: 0, Height: 5}}},
		{5, view.KindText, 2, geom.Rect{Point: geom.Point{X: 26, Y: 18}, Size: geom.Size{Width: 10, Height: 5}}},
	}
	for _, tt := range tests {
		b := boxes[tt.i]
		if b.Kind != tt.kind || b.Depth != tt.depth || b.Rect != tt.rect {
			t.Errorf("box %d = {%s %d %v %v}, want {%s %d %v %v}",
				tt.i, b.Kind, b.Depth, b.Rect.Point, b.Rect.Size, tt.kind, tt.depth, tt.rect.Point, tt.rect.Size)
		}
	}

	if boxes[1].Label != "Title" || boxes[1].Color.Hex() != "#ff0000" || !boxes[1].Font.Bold {
		t.Errorf("title box = %+v", boxes[1])
	}
	if !boxes[1].IsText() || boxes[0].IsText() {
		t.Error("IsText misreports kinds")
	}
}

func TestBoxesNil(t *testing.T) {
	if Boxes(nil) != nil {
		t.Error("Boxes(nil) should be nil")
	}
	if Bounds(nil) != (geom.Rect{}) {
		t.Error("Bounds(nil) should be empty")
	}
}

func TestBounds(t *testing.T) {
	got := Bounds(Boxes(card()))
	if got != (geom.Rect{Size: geom.Size{Width: 36, Height: 23}}) {
		t.Errorf("Bounds = %v %v", got.Point, got.Size)
	}
}

func TestJSON(t *testing.T) {
	root := card()
	data, err := JSON(root)
	if err != nil {
		t.Fatal(err)
	}

	var got Node
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if got.ID != root.ID.String() || got.Kind != view.KindVStack {
		t.Errorf("root = %+v", got)
	}
	if got.Size != (geom.Size{Width: 36, Height: 23}) {
		t.Errorf("root size = %v", got.Size)
	}
	row := got.Children[1]
	if row.Origin != (geom.Point{Y: 18}) {
		t.Errorf("row origin = %v, want (0, 18)", row.Origin)
	}
	// Child origins stay relative to their parent.
	if row.Children[2].Origin != (geom.Point{X: 26}) {
		t.Errorf("last label origin = %v, want (26, 0)", row.Children[2].Origin)
	}
	if got.Children[0].Text != "Title" || got.Children[0].Font != "title" {
		t.Errorf("title = %+v", got.Children[0])
	}
}

func TestJSONPaddingInsets(t *testing.T) {
	root := tree.New(view.NewPadding(view.NewVStack(), geom.Uniform(3))).Append(fixed("x", 4, 4))
	layout.ComputeLayout(root, 20)

	n := Export(root)
	if n.Insets == nil || *n.Insets != geom.Uniform(3) {
		t.Errorf("insets = %v", n.Insets)
	}
	if n.Children[0].Insets != nil {
		t.Error("unpadded nodes should omit insets")
	}
}

func TestSVG(t *testing.T) {
	svg := string(SVG(card(), WithScale(2)))

	if !strings.HasPrefix(svg, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 72.0 46.0" width="72" height="46">`) {
		t.Errorf("unexpected header: %.120s", svg)
	}
	if !strings.HasSuffix(svg, "</svg>\n") {
		t.Error("svg not closed")
	}
	if n := strings.Count(svg, `class="text"`); n != 3 {
		t.Errorf("text elements = %d, want 3", n)
	}
	if n := strings.Count(svg, `class="divider"`); n != 1 {
		t.Errorf("divider elements = %d, want 1", n)
	}
	if !strings.Contains(svg, `fill="#ff0000"`) || !strings.Contains(svg, `font-weight="bold"`) {
		t.Error("title style not applied")
	}
}

func TestSVGEscapesText(t *testing.T) {
	root := fixed("<a & b>", 10, 2)
	layout.ComputeLayout(root, 10)
	svg := string(SVG(root))
	if !strings.Contains(svg, "&lt;a &amp; b&gt;") {
		t.Errorf("text not escaped: %s", svg)
	}
}

func TestSVGMultiline(t *testing.T) {
	root := fixed("one\ntwo", 10, 4)
	layout.ComputeLayout(root, 10)
	svg := string(SVG(root))
	if strings.Count(svg, "<tspan") != 2 {
		t.Errorf("want one tspan per line: %s", svg)
	}
}

func TestPNG(t *testing.T) {
	data, err := PNG(card(), WithScale(2), WithBackground(style.Gray))
	if err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("output is not png: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 72 || b.Dy() != 46 {
		t.Errorf("png size = %dx%d, want 72x46", b.Dx(), b.Dy())
	}
}

func TestPNGRefusesOversizedImages(t *testing.T) {
	root := tree.New(view.NewVStack()).Append(fixed("wall", 20000, 20000))
	layout.ComputeLayout(root, 30000)

	_, err := PNG(root)
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("PNG() of a 20000x20000 layout = %v, want %s", err, errors.ErrCodeInvalidInput)
	}

	small := tree.New(view.NewVStack()).Append(fixed("tile", 100, 20))
	layout.ComputeLayout(small, 200)
	if _, err := PNG(small, WithScale(4)); err != nil {
		t.Errorf("PNG() of a 400x80 image: %v", err)
	}
}

func TestPNGEmptyTree(t *testing.T) {
	root := tree.New(view.NewVStack())
	layout.ComputeLayout(root, 0)
	data, err := PNG(root)
	if err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 1 || b.Dy() != 1 {
		t.Errorf("empty tree should render a 1x1 canvas, got %v", b)
	}
}

func TestText(t *testing.T) {
	out := Text(card())
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(lines) != 6 {
		t.Fatalf("lines = %d, want 6:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[0], "vstack") || !strings.Contains(lines[0], "36x23 @ (0, 0)") {
		t.Errorf("root line = %q", lines[0])
	}
	if !strings.HasPrefix(lines[3], "    ") || !strings.Contains(lines[3], `"a"`) {
		t.Errorf("nested label line = %q", lines[3])
	}
	if Text(nil) != "" {
		t.Error("Text(nil) should be empty")
	}
}

func TestWithScaleIgnoresNonPositive(t *testing.T) {
	o := newOptions(WithScale(0), WithScale(-1))
	if o.scale != DefaultScale {
		t.Errorf("scale = %v, want %v", o.scale, DefaultScale)
	}
	if o.face == nil {
		t.Error("face should default")
	}
}
