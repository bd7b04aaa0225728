// Package complication models the complication slots of a watch face.
//
// Slots are owned by the host. The face only reads whether a slot is
// enabled and swaps the slot's [Drawable] when the color scheme changes.
// Drawables are looked up by [StyleID] in a fixed registry.
package complication

import (
	"sync"

	"github.com/gogpu/gg"

	"github.com/matzehuels/fuzzyface/pkg/render/surface"
)

// StyleID names a complication drawable style.
type StyleID string

// Built-in drawable styles, one per face color scheme.
const (
	StyleRed   StyleID = "complication_red_style"
	StyleGreen StyleID = "complication_green_style"
	StyleBlue  StyleID = "complication_blue_style"
	StyleWhite StyleID = "complication_white_style"
)

// Drawable describes how a complication is painted. Values in the registry
// are shared and must not be modified.
type Drawable struct {
	Style     StyleID
	Active    gg.RGBA // disc color in interactive mode
	Ambient   gg.RGBA // outline color in low-power mode
	Highlight gg.RGBA // ring color when the slot is highlighted
}

var registry = map[StyleID]*Drawable{
	StyleRed: {
		Style:     StyleRed,
		Active:    gg.Hex("#5c1a1a"),
		Ambient:   gg.Hex("#8a8a8a"),
		Highlight: gg.Hex("#ff6b6b"),
	},
	StyleGreen: {
		Style:     StyleGreen,
		Active:    gg.Hex("#1a4d2e"),
		Ambient:   gg.Hex("#8a8a8a"),
		Highlight: gg.Hex("#69db7c"),
	},
	StyleBlue: {
		Style:     StyleBlue,
		Active:    gg.Hex("#1a2f5c"),
		Ambient:   gg.Hex("#8a8a8a"),
		Highlight: gg.Hex("#74c0fc"),
	},
	StyleWhite: {
		Style:     StyleWhite,
		Active:    gg.Hex("#3a3a3a"),
		Ambient:   gg.Hex("#8a8a8a"),
		Highlight: gg.Hex("#f8f9fa"),
	},
}

// DrawableFor returns the registered drawable for id, or nil.
func DrawableFor(id StyleID) *Drawable {
	return registry[id]
}

// Target is the part of a slot the style layer may touch.
type Target interface {
	Enabled() bool
	SetDrawable(d *Drawable)
}

// Slot is one complication position on the face.
type Slot struct {
	ID     int
	Bounds surface.Rect

	mu       sync.RWMutex
	enabled  bool
	drawable *Drawable
}

// NewSlot creates a slot. A disabled slot is skipped when drawables are
// swapped and when frames are rendered.
func NewSlot(id int, bounds surface.Rect, enabled bool) *Slot {
	return &Slot{ID: id, Bounds: bounds, enabled: enabled}
}

// Enabled reports whether the slot is in use.
func (s *Slot) Enabled() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.enabled
}

// SetEnabled turns the slot on or off.
func (s *Slot) SetEnabled(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.enabled = v
}

// Drawable returns the current drawable, which may be nil.
func (s *Slot) Drawable() *Drawable {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.drawable
}

// SetDrawable replaces the drawable reference.
func (s *Slot) SetDrawable(d *Drawable) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drawable = d
}

const (
	ambientRing   = 0.9  // outline radius as a fraction of the slot radius
	ambientStroke = 2.0  // outline width in pixels
	highlightRing = 0.15 // highlight ring thickness as a fraction of the radius
)

// Render paints the slot: a filled disc in interactive mode and a thin
// outline in ambient mode. Slots without a drawable draw nothing.
func (s *Slot) Render(dst surface.Surface, ambient bool) {
	d := s.Drawable()
	if d == nil {
		return
	}
	cx, cy := s.Bounds.Center()
	r := s.Bounds.Radius()
	if ambient {
		strokeCircle(dst, cx, cy, r*ambientRing, ambientStroke, d.Ambient)
		return
	}
	dst.FillCircle(cx, cy, r, d.Active)
}

// RenderHighlight paints the slot's highlight ring in tint, or in the
// drawable's highlight color when tint is fully transparent.
func (s *Slot) RenderHighlight(dst surface.Surface, tint gg.RGBA) {
	c := tint
	if c.A == 0 {
		d := s.Drawable()
		if d == nil {
			return
		}
		c = d.Highlight
	}
	cx, cy := s.Bounds.Center()
	r := s.Bounds.Radius()
	strokeCircle(dst, cx, cy, r*(1-highlightRing/2), r*highlightRing, c)
}

// strokeCircle approximates a circle outline with line segments, since
// the surface only offers straight strokes.
func strokeCircle(dst surface.Surface, cx, cy, r, width float64, c gg.RGBA) {
	const segments = 48
	px, py := cx+r, cy
	for i := 1; i <= segments; i++ {
		x, y := pointOnCircle(cx, cy, r, i, segments)
		dst.StrokeLine(px, py, x, y, width, c)
		px, py = x, y
	}
}

// Targets converts slots for use where only the Target view is needed.
func Targets(slots []*Slot) []Target {
	out := make([]Target, len(slots))
	for i, s := range slots {
		out[i] = s
	}
	return out
}
