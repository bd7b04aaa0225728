// Package svg is a vector [surface.Surface] that writes SVG markup.
//
// Text metrics are estimated from a fixed character-width ratio, so line
// breaks approximate those of the raster canvas rather than match them.
package svg

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/gogpu/gg"

	"github.com/matzehuels/fuzzyface/pkg/fonts"
	"github.com/matzehuels/fuzzyface/pkg/render/surface"
)

const (
	fontCharWidth   = 0.55
	fontAscentRatio = 0.8
	lineHeightRatio = 1.2
)

// DefaultFontSize is the phrase size in user units.
const DefaultFontSize = 36.0

// Option configures a Surface.
type Option func(*Surface)

// WithFontSize sets the phrase font size.
func WithFontSize(pt float64) Option {
	return func(s *Surface) {
		if pt > 0 {
			s.fontSize = pt
		}
	}
}

// WithFontFamily overrides the CSS font-family list.
func WithFontFamily(family string) Option {
	return func(s *Surface) { s.family = family }
}

// Surface accumulates drawing calls as SVG elements.
type Surface struct {
	width, height float64
	fontSize      float64
	family        string
	body          bytes.Buffer
}

// New creates an empty surface of the given size in user units.
func New(width, height float64, opts ...Option) *Surface {
	s := &Surface{
		width:    width,
		height:   height,
		fontSize: DefaultFontSize,
		family:   fonts.FontFamily + ", " + fonts.FallbackFontFamily,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Width returns the document width.
func (s *Surface) Width() float64 { return s.width }

// Height returns the document height.
func (s *Surface) Height() float64 { return s.height }

// Fill discards everything drawn so far and paints the background.
func (s *Surface) Fill(c gg.RGBA) {
	// Later elements would otherwise show through a repaint.
	s.body.Reset()
	fmt.Fprintf(&s.body, `  <rect width="%.1f" height="%.1f"%s/>`+"\n", s.width, s.height, fill(c))
}

// FillCircle adds a filled circle element.
func (s *Surface) FillCircle(x, y, r float64, c gg.RGBA) {
	fmt.Fprintf(&s.body, `  <circle cx="%.2f" cy="%.2f" r="%.2f"%s/>`+"\n", x, y, r, fill(c))
}

// StrokeLine adds a line element with round caps.
func (s *Surface) StrokeLine(x1, y1, x2, y2, width float64, c gg.RGBA) {
	fmt.Fprintf(&s.body, `  <line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke-width="%.2f" stroke-linecap="round"%s/>`+"\n",
		x1, y1, x2, y2, width, paint("stroke", c))
}

// LayoutText wraps text using estimated glyph widths.
func (s *Surface) LayoutText(text string, maxWidth float64) surface.TextLayout {
	l := surface.TextLayout{
		LineHeight: s.fontSize * lineHeightRatio,
		Ascent:     s.fontSize * fontAscentRatio,
	}
	l.Lines = surface.WrapWords(strings.Fields(text), maxWidth, s.measure)
	for _, line := range l.Lines {
		l.Width = max(l.Width, line.Width)
	}
	return l
}

// DrawText adds one text element with a centered tspan per line.
func (s *Surface) DrawText(l surface.TextLayout, x, y float64, c gg.RGBA) {
	if len(l.Lines) == 0 {
		return
	}
	cx := x + l.Width/2
	fmt.Fprintf(&s.body, `  <text text-anchor="middle" font-family="%s" font-size="%.1f"%s>`+"\n",
		EscapeXML(s.family), s.fontSize, fill(c))
	for i, line := range l.Lines {
		baseline := y + l.Ascent + float64(i)*l.LineHeight
		fmt.Fprintf(&s.body, `    <tspan x="%.2f" y="%.2f">%s</tspan>`+"\n", cx, baseline, EscapeXML(line.Text))
	}
	s.body.WriteString("  </text>\n")
}

// Bytes returns the complete document.
func (s *Surface) Bytes() []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		s.width, s.height, s.width, s.height)
	buf.Write(s.body.Bytes())
	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func (s *Surface) measure(text string) float64 {
	return float64(len([]rune(text))) * s.fontSize * fontCharWidth
}

// EscapeXML escapes s for use in SVG text and attribute values.
func EscapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}

func fill(c gg.RGBA) string { return paint("fill", c) }

func paint(attr string, c gg.RGBA) string {
	hex := surface.Hex(c)
	if len(hex) == 9 {
		return fmt.Sprintf(` %s="%s" %s-opacity="%.3f"`, attr, hex[:7], attr, min(1, max(0, c.A)))
	}
	return fmt.Sprintf(` %s="%s"`, attr, hex)
}

var _ surface.Surface = (*Surface)(nil)
