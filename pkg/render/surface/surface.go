// Package surface defines the drawing surface a watch face frame is
// rendered onto.
//
// Implementations live in sibling packages: [canvas] rasterizes with
// gogpu/gg and [svg] emits vector markup. Surfaces are assumed infallible
// for well-formed input; backends that can fail record the first error
// and report it when the frame is encoded.
//
// [canvas]: github.com/matzehuels/fuzzyface/pkg/render/canvas
// [svg]: github.com/matzehuels/fuzzyface/pkg/render/svg
package surface

import (
	"fmt"
	"math"

	"github.com/gogpu/gg"
)

// Surface is the host-provided drawing target for one frame.
type Surface interface {
	// Width and Height are the logical size in pixels.
	Width() float64
	Height() float64

	// Fill paints the whole surface.
	Fill(c gg.RGBA)
	// FillCircle paints a disc centered on (x, y).
	FillCircle(x, y, r float64, c gg.RGBA)
	// StrokeLine draws a straight line of the given width.
	StrokeLine(x1, y1, x2, y2, width float64, c gg.RGBA)

	// LayoutText breaks s into centered lines no wider than maxWidth.
	LayoutText(s string, maxWidth float64) TextLayout
	// DrawText draws a layout with its top-left corner at (x, y).
	DrawText(l TextLayout, x, y float64, c gg.RGBA)
}

// Line is one laid-out line of text.
type Line struct {
	Text  string
	Width float64
}

// TextLayout is a block of centered lines.
type TextLayout struct {
	Lines      []Line
	Width      float64 // widest line
	LineHeight float64
	Ascent     float64 // baseline offset of the first line
}

// Height is the total block height.
func (l TextLayout) Height() float64 {
	return float64(len(l.Lines)) * l.LineHeight
}

// LineOffset returns the horizontal offset that centers line i within the
// block.
func (l TextLayout) LineOffset(i int) float64 {
	return (l.Width - l.Lines[i].Width) / 2
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	X, Y, W, H float64
}

// Center returns the midpoint of r.
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Radius returns the radius of the largest circle inscribed in r.
func (r Rect) Radius() float64 {
	return min(r.W, r.H) / 2
}

// WrapWords greedily packs words into lines no wider than maxWidth, using
// measure for widths. A word wider than maxWidth gets a line of its own.
// Surfaces without a native line breaker use it for LayoutText.
func WrapWords(words []string, maxWidth float64, measure func(string) float64) []Line {
	var lines []Line
	cur := ""
	for _, w := range words {
		if cur == "" {
			cur = w
			continue
		}
		candidate := cur + " " + w
		if maxWidth > 0 && measure(candidate) > maxWidth {
			lines = append(lines, Line{Text: cur, Width: measure(cur)})
			cur = w
			continue
		}
		cur = candidate
	}
	if cur != "" {
		lines = append(lines, Line{Text: cur, Width: measure(cur)})
	}
	return lines
}

// Hex formats c as "#rrggbb", or "#rrggbbaa" when c is not opaque.
func Hex(c gg.RGBA) string {
	ch := func(v float64) uint8 { return uint8(math.Round(min(1, max(0, v)) * 255)) }
	if c.A >= 1 {
		return fmt.Sprintf("#%02x%02x%02x", ch(c.R), ch(c.G), ch(c.B))
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", ch(c.R), ch(c.G), ch(c.B), ch(c.A))
}
