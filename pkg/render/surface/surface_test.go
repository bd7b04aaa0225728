package surface

import (
	"testing"

	"github.com/gogpu/gg"
)

func runeWidth(s string) float64 { return float64(len(s)) }

func TestWrapWords(t *testing.T) {
	tests := []struct {
		name     string
		words    []string
		maxWidth float64
		want     []string
	}{
		{"fits one line", []string{"almost", "four"}, 20, []string{"almost four"}},
		{"breaks", []string{"almost", "a", "quarter", "past", "three"}, 12, []string{"almost a", "quarter past", "three"}},
		{"long word alone", []string{"a", "extraordinarily", "b"}, 5, []string{"a", "extraordinarily", "b"}},
		{"no limit", []string{"quarter", "past", "three"}, 0, []string{"quarter past three"}},
		{"empty", nil, 10, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := WrapWords(tt.words, tt.maxWidth, runeWidth)
			if len(lines) != len(tt.want) {
				t.Fatalf("got %d lines %v, want %d", len(lines), lines, len(tt.want))
			}
			for i, l := range lines {
				if l.Text != tt.want[i] {
					t.Errorf("line %d = %q, want %q", i, l.Text, tt.want[i])
				}
				if l.Width != runeWidth(l.Text) {
					t.Errorf("line %d width = %v, want %v", i, l.Width, runeWidth(l.Text))
				}
			}
		})
	}
}

func TestTextLayoutGeometry(t *testing.T) {
	l := TextLayout{
		Lines:      []Line{{Text: "almost a", Width: 8}, {Text: "quarter past", Width: 12}},
		Width:      12,
		LineHeight: 10,
	}
	if got := l.Height(); got != 20 {
		t.Errorf("Height() = %v, want 20", got)
	}
	if got := l.LineOffset(0); got != 2 {
		t.Errorf("LineOffset(0) = %v, want 2", got)
	}
	if got := l.LineOffset(1); got != 0 {
		t.Errorf("LineOffset(1) = %v, want 0", got)
	}
}

func TestRect(t *testing.T) {
	r := Rect{X: 10, Y: 20, W: 40, H: 30}
	x, y := r.Center()
	if x != 30 || y != 35 {
		t.Errorf("Center() = (%v, %v), want (30, 35)", x, y)
	}
	if got := r.Radius(); got != 15 {
		t.Errorf("Radius() = %v, want 15", got)
	}
}

func TestHex(t *testing.T) {
	tests := []struct {
		c    gg.RGBA
		want string
	}{
		{gg.RGB(1, 0, 0), "#ff0000"},
		{gg.Hex("#1a2b3c"), "#1a2b3c"},
		{gg.RGBA2(0, 0, 0, 0), "#00000000"},
		{gg.RGBA{R: 2, G: -1, B: 0.5, A: 1}, "#ff0080"},
	}
	for _, tt := range tests {
		if got := Hex(tt.c); got != tt.want {
			t.Errorf("Hex(%+v) = %q, want %q", tt.c, got, tt.want)
		}
	}
}
