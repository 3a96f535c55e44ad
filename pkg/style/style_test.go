package style

import "testing"

func TestResolveDefaults(t *testing.T) {
	r := Resolve(nil)
	if r.Font != Body {
		t.Errorf("default font = %v, want %v", r.Font, Body)
	}
	if r.Color.Hex() != "#000000" {
		t.Errorf("default color = %s, want #000000", r.Color.Hex())
	}
}

func TestResolveLastWins(t *testing.T) {
	red, err := ParseColor("#ff0000")
	if err != nil {
		t.Fatalf("ParseColor: %v", err)
	}
	blue, err := ParseColor("#0000ff")
	if err != nil {
		t.Fatalf("ParseColor: %v", err)
	}

	mods := []Modifier{
		WithFont(Title),
		WithColor(red),
		WithFont(Caption),
		WithColor(blue),
	}

	r := Resolve(mods)
	if r.Font != Caption {
		t.Errorf("font = %v, want %v", r.Font, Caption)
	}
	if r.Color.Hex() != "#0000ff" {
		t.Errorf("color = %s, want #0000ff", r.Color.Hex())
	}
	if ResolveFont(mods) != Caption {
		t.Error("ResolveFont should agree with Resolve")
	}
	if ResolveColor(mods).Hex() != "#0000ff" {
		t.Error("ResolveColor should agree with Resolve")
	}
}

func TestFontByName(t *testing.T) {
	tests := []struct {
		name   string
		want   Font
		wantOK bool
	}{
		{"body", Body, true},
		{"Title", Title, true},
		{"caption", Caption, true},
		{"nope", Body, false},
		{"", Body, false},
	}

	for _, tt := range tests {
		got, ok := FontByName(tt.name)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("FontByName(%q) = %v, %v; want %v, %v", tt.name, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestParseColorInvalid(t *testing.T) {
	c, err := ParseColor("not-a-color")
	if err == nil {
		t.Fatal("expected error for invalid color")
	}
	if c.Hex() != Black.Hex() {
		t.Errorf("invalid color should fall back to black, got %s", c.Hex())
	}
}

func TestColorRGB255(t *testing.T) {
	c, err := ParseColor("#102030")
	if err != nil {
		t.Fatalf("ParseColor: %v", err)
	}
	r, g, b := c.RGB255()
	if r != 0x10 || g != 0x20 || b != 0x30 {
		t.Errorf("RGB255 = %d,%d,%d", r, g, b)
	}
}
