package measure

import (
	"testing"

	"github.com/matzehuels/stacklayout/pkg/geom"
	"github.com/matzehuels/stacklayout/pkg/style"
)

func TestCellSizeForText(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		bound geom.Size
		want  geom.Size
	}{
		{"empty", "", geom.Size{Width: 10, Height: Unbounded}, geom.Size{}},
		{"fits", "Hi", geom.Size{Width: 100, Height: Unbounded}, geom.Size{Width: 2, Height: 1}},
		{"unbounded", "hello world", geom.Size{Width: Unbounded, Height: Unbounded}, geom.Size{Width: 11, Height: 1}},
		{"wraps", "hello world", geom.Size{Width: 7, Height: Unbounded}, geom.Size{Width: 5, Height: 2}},
		{"long word overflows", "abcdefghij", geom.Size{Width: 4, Height: Unbounded}, geom.Size{Width: 10, Height: 1}},
		{"newline", "a\nbb", geom.Size{Width: 100, Height: Unbounded}, geom.Size{Width: 2, Height: 2}},
		{"wide runes", "日本", geom.Size{Width: 100, Height: Unbounded}, geom.Size{Width: 4, Height: 1}},
		{"negative bound", "a b", geom.Size{Width: -5, Height: -5}, geom.Size{Width: 1, Height: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Cell{}.SizeForText(tt.text, style.Body, tt.bound)
			if got != tt.want {
				t.Errorf("SizeForText(%q, %v) = %v, want %v", tt.text, tt.bound, got, tt.want)
			}
		})
	}
}

func TestFaceScalesWithFont(t *testing.T) {
	f := DefaultFace()
	bound := geom.Size{Width: Unbounded, Height: Unbounded}

	small := f.SizeForText("Hello", style.Font{Name: "native", Size: 13}, bound)
	if small.Width != 35 || small.Height != 13 {
		t.Errorf("native size = %v, want 35x13", small)
	}

	large := f.SizeForText("Hello", style.Font{Name: "double", Size: 26}, bound)
	if large.Width != 70 || large.Height != 26 {
		t.Errorf("double size = %v, want 70x26", large)
	}
}

func TestFaceWraps(t *testing.T) {
	f := DefaultFace()
	fnt := style.Font{Name: "native", Size: 13}
	got := f.SizeForText("aa bb", fnt, geom.Size{Width: 20, Height: Unbounded})
	if got.Width != 14 || got.Height != 26 {
		t.Errorf("wrapped size = %v, want 14x26", got)
	}
}

func TestNewFaceNilFallsBack(t *testing.T) {
	f := NewFace(nil, 0)
	if f.FontFace() == nil {
		t.Fatal("nil face should fall back to the default face")
	}
}

func TestFixedAndFunc(t *testing.T) {
	fixed := Fixed{Width: 60, Height: 20}
	if got := fixed.SizeForText("anything", style.Body, geom.Size{}); got != (geom.Size{Width: 60, Height: 20}) {
		t.Errorf("Fixed = %v", got)
	}

	var seen geom.Size
	fn := Func(func(_ string, _ style.Font, b geom.Size) geom.Size {
		seen = b
		return geom.Size{Width: 1, Height: 1}
	})
	fn.SizeForText("x", style.Body, geom.Size{Width: 3, Height: 4})
	if seen != (geom.Size{Width: 3, Height: 4}) {
		t.Errorf("Func saw bound %v", seen)
	}
}

func TestCachedMemoizes(t *testing.T) {
	calls := 0
	inner := Func(func(text string, _ style.Font, _ geom.Size) geom.Size {
		calls++
		return geom.Size{Width: len(text), Height: 1}
	})
	c := Cached(inner, 0)

	bound := geom.Size{Width: 10, Height: Unbounded}
	for i := 0; i < 3; i++ {
		if got := c.SizeForText("abc", style.Body, bound); got.Width != 3 {
			t.Fatalf("SizeForText = %v", got)
		}
	}
	if calls != 1 {
		t.Errorf("inner called %d times, want 1", calls)
	}

	c.SizeForText("abc", style.Title, bound)
	c.SizeForText("abc", style.Body, geom.Size{Width: 5, Height: Unbounded})
	if calls != 3 {
		t.Errorf("different font/bound should miss: calls = %d, want 3", calls)
	}
	if c.Len() != 3 {
		t.Errorf("Len() = %d, want 3", c.Len())
	}
}

func TestByName(t *testing.T) {
	for _, name := range []string{"", NameCell, NameFace} {
		if _, err := ByName(name); err != nil {
			t.Errorf("ByName(%q) error = %v", name, err)
		}
	}
	if _, err := ByName("braille"); err == nil {
		t.Error("ByName should reject unknown names")
	}
}
