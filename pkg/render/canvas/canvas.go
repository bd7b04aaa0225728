// Package canvas is a raster [surface.Surface] backed by gogpu/gg.
//
// Frames are drawn with the software rasterizer and encoded as PNG.
//
//	c, err := canvas.New(454, 454)
//	if err != nil {
//	    return err
//	}
//	defer c.Close()
//	renderer.Render(ctx, c, frame, snap, slots)
//	err = c.EncodePNG(w)
package canvas

import (
	"image"
	"io"
	"strings"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"

	"github.com/matzehuels/fuzzyface/pkg/fonts"
	"github.com/matzehuels/fuzzyface/pkg/render/surface"
)

// DefaultFontSize is the phrase size in points when none is configured.
const DefaultFontSize = 36.0

// Option configures a Canvas.
type Option func(*options)

type options struct {
	fontSize float64
	weight   fonts.Weight
}

// WithFontSize sets the text size in points.
func WithFontSize(pt float64) Option {
	return func(o *options) {
		if pt > 0 {
			o.fontSize = pt
		}
	}
}

// WithWeight selects the embedded font weight.
func WithWeight(w fonts.Weight) Option {
	return func(o *options) { o.weight = w }
}

// Canvas draws onto an in-memory pixmap.
type Canvas struct {
	dc   *gg.Context
	face text.Face
	err  error
}

// New creates a canvas of the given pixel size.
func New(width, height int, opts ...Option) (*Canvas, error) {
	o := options{fontSize: DefaultFontSize, weight: fonts.Medium}
	for _, opt := range opts {
		opt(&o)
	}
	face, err := fonts.Face(o.weight, o.fontSize)
	if err != nil {
		return nil, err
	}
	dc := gg.NewContext(width, height)
	dc.SetFont(face)
	return &Canvas{dc: dc, face: face}, nil
}

// Width returns the pixel width.
func (c *Canvas) Width() float64 { return float64(c.dc.Width()) }

// Height returns the pixel height.
func (c *Canvas) Height() float64 { return float64(c.dc.Height()) }

// Fill clears the canvas to col.
func (c *Canvas) Fill(col gg.RGBA) {
	c.dc.ClearWithColor(col)
}

// FillCircle paints a disc centered on (x, y).
func (c *Canvas) FillCircle(x, y, r float64, col gg.RGBA) {
	c.dc.SetColor(col.Color())
	c.dc.DrawCircle(x, y, r)
	c.record(c.dc.Fill())
}

// StrokeLine draws a line segment. The first stroke error is kept for EncodePNG.
func (c *Canvas) StrokeLine(x1, y1, x2, y2, width float64, col gg.RGBA) {
	c.dc.SetColor(col.Color())
	c.dc.SetLineWidth(width)
	c.dc.DrawLine(x1, y1, x2, y2)
	c.record(c.dc.Stroke())
}

// LayoutText wraps s at word boundaries using the canvas font.
func (c *Canvas) LayoutText(s string, maxWidth float64) surface.TextLayout {
	m := c.face.Metrics()
	l := surface.TextLayout{LineHeight: m.LineHeight(), Ascent: m.Ascent}
	if s == "" {
		return l
	}
	for _, r := range text.WrapText(s, c.face, maxWidth, text.WrapWord) {
		line := strings.TrimSpace(r.Text)
		if line == "" {
			continue
		}
		w := c.face.Advance(line)
		l.Lines = append(l.Lines, surface.Line{Text: line, Width: w})
		l.Width = max(l.Width, w)
	}
	return l
}

// DrawText draws each line centered within the layout block whose
// top-left corner is (x, y).
func (c *Canvas) DrawText(l surface.TextLayout, x, y float64, col gg.RGBA) {
	c.dc.SetColor(col.Color())
	for i, line := range l.Lines {
		baseline := y + l.Ascent + float64(i)*l.LineHeight
		c.dc.DrawString(line.Text, x+l.LineOffset(i), baseline)
	}
}

// Image returns the rendered pixels.
func (c *Canvas) Image() image.Image {
	return c.dc.Image()
}

// Err returns the first drawing error, if any.
func (c *Canvas) Err() error {
	return c.err
}

// EncodePNG writes the frame as PNG. It fails if any draw call failed.
func (c *Canvas) EncodePNG(w io.Writer) error {
	if c.err != nil {
		return c.err
	}
	return c.dc.EncodePNG(w)
}

// Close releases the drawing context.
func (c *Canvas) Close() error {
	return c.dc.Close()
}

func (c *Canvas) record(err error) {
	if err != nil && c.err == nil {
		c.err = err
	}
}

var _ surface.Surface = (*Canvas)(nil)
