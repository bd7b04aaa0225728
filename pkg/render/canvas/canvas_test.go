package canvas

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/gogpu/gg"
)

func newCanvas(t *testing.T, w, h int) *Canvas {
	t.Helper()
	c, err := New(w, h, WithFontSize(20))
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestSize(t *testing.T) {
	c := newCanvas(t, 120, 80)
	if c.Width() != 120 || c.Height() != 80 {
		t.Errorf("size = %vx%v, want 120x80", c.Width(), c.Height())
	}
}

func TestFill(t *testing.T) {
	c := newCanvas(t, 10, 10)
	c.Fill(gg.RGB(1, 0, 0))

	r, g, b, a := c.Image().At(5, 5).RGBA()
	if r>>8 != 255 || g != 0 || b != 0 || a>>8 != 255 {
		t.Errorf("pixel = (%d, %d, %d, %d), want opaque red", r>>8, g>>8, b>>8, a>>8)
	}
}

func TestLayoutText(t *testing.T) {
	c := newCanvas(t, 200, 200)

	single := c.LayoutText("three", 1000)
	if len(single.Lines) != 1 || single.Lines[0].Text != "three" {
		t.Fatalf("single line layout = %+v", single.Lines)
	}
	if single.Width <= 0 || single.LineHeight <= 0 || single.Ascent <= 0 {
		t.Errorf("layout metrics not positive: %+v", single)
	}

	narrow := c.LayoutText("almost a quarter past three", single.Width*2)
	if len(narrow.Lines) < 2 {
		t.Errorf("expected wrapping, got %d line(s)", len(narrow.Lines))
	}
	for _, l := range narrow.Lines {
		if l.Text != "" && l.Text[0] == ' ' {
			t.Errorf("line %q should be trimmed", l.Text)
		}
	}

	if empty := c.LayoutText("", 100); len(empty.Lines) != 0 {
		t.Errorf("empty text produced %d lines", len(empty.Lines))
	}
}

func TestDrawTextChangesPixels(t *testing.T) {
	c := newCanvas(t, 200, 100)
	c.Fill(gg.RGB(0, 0, 0))
	l := c.LayoutText("three", 200)
	c.DrawText(l, (200-l.Width)/2, (100-l.Height())/2, gg.RGB(1, 1, 1))

	lit := false
	for y := 0; y < 100 && !lit; y++ {
		for x := 0; x < 200; x++ {
			if r, _, _, _ := c.Image().At(x, y).RGBA(); r > 0 {
				lit = true
				break
			}
		}
	}
	if !lit {
		t.Error("DrawText left the canvas blank")
	}
}

func TestEncodePNG(t *testing.T) {
	c := newCanvas(t, 32, 32)
	c.Fill(gg.RGB(0, 0, 1))
	c.FillCircle(16, 16, 8, gg.RGB(1, 1, 1))
	c.StrokeLine(0, 0, 32, 32, 2, gg.RGB(0, 1, 0))
	if err := c.Err(); err != nil {
		t.Fatalf("draw error: %v", err)
	}

	var buf bytes.Buffer
	if err := c.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG error: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if img.Bounds().Dx() != 32 {
		t.Errorf("decoded width = %d, want 32", img.Bounds().Dx())
	}
}
