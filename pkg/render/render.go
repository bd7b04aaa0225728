package render

import (
	"context"
	"io"
	"math"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gogpu/gg"

	"github.com/matzehuels/fuzzyface/pkg/complication"
	"github.com/matzehuels/fuzzyface/pkg/observability"
	"github.com/matzehuels/fuzzyface/pkg/phrase"
	"github.com/matzehuels/fuzzyface/pkg/render/surface"
	"github.com/matzehuels/fuzzyface/pkg/style"
)

// DefaultPadding is the horizontal margin around the phrase, as a
// fraction of the surface width on each side.
const DefaultPadding = 0.1

// Complication is a slot the renderer asks to draw itself.
// *complication.Slot implements it.
type Complication interface {
	Enabled() bool
	Render(dst surface.Surface, ambient bool)
	RenderHighlight(dst surface.Surface, tint gg.RGBA)
}

// Slots adapts complication slots for [Renderer.Render].
func Slots(slots []*complication.Slot) []Complication {
	out := make([]Complication, len(slots))
	for i, s := range slots {
		out[i] = s
	}
	return out
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithPadding sets the phrase margin. Values outside [0, 0.45] are ignored.
func WithPadding(frac float64) Option {
	return func(r *Renderer) {
		if frac >= 0 && frac <= 0.45 {
			r.padding = frac
		}
	}
}

// WithLogger logs each frame at debug level.
func WithLogger(l *log.Logger) Option {
	return func(r *Renderer) {
		if l != nil {
			r.logger = l
		}
	}
}

// Renderer draws frames. It holds only options and is safe for
// concurrent use.
type Renderer struct {
	padding float64
	logger  *log.Logger
}

// New creates a renderer with DefaultPadding and no logging.
func New(opts ...Option) *Renderer {
	r := &Renderer{padding: DefaultPadding, logger: log.New(io.Discard)}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render draws f onto dst using the style state in snap and returns the
// phrase that was drawn ("" for highlight frames).
func (r *Renderer) Render(ctx context.Context, dst surface.Surface, f Frame, snap style.Snapshot, slots []Complication) string {
	label := f.Label()
	hooks := observability.Frame()
	hooks.OnFrameStart(ctx, label)
	start := time.Now()
	defer func() { hooks.OnFrameComplete(ctx, label, time.Since(start)) }()

	if f.Highlight != nil {
		r.renderHighlight(dst, *f.Highlight, slots)
		r.logger.Debug("frame", "mode", label, "slots", len(slots))
		return ""
	}

	ambient := f.Mode == Ambient
	pal := snap.Palette
	dst.Fill(pal.Background(ambient))

	if !ambient {
		if snap.Config.DrawHourPips {
			drawPips(dst, snap.Geometry, pal.ActivePrimary)
		}
		drawHands(dst, snap.Geometry, f.Time, pal.ActivePrimary)
	}

	text := phrase.FromTime(f.Time)
	w, h := dst.Width(), dst.Height()
	l := dst.LayoutText(text, w*(1-2*r.padding))
	dst.DrawText(l, (w-l.Width)/2, (h-l.Height())/2, pal.Text(ambient))

	for _, s := range slots {
		if s.Enabled() {
			s.Render(dst, ambient)
		}
	}

	r.logger.Debug("frame", "mode", label, "phrase", text, "lines", len(l.Lines))
	return text
}

func (r *Renderer) renderHighlight(dst surface.Surface, hl HighlightLayer, slots []Complication) {
	dst.Fill(hl.Tint)
	for _, s := range slots {
		if s.Enabled() {
			s.RenderHighlight(dst, hl.Outline)
		}
	}
}

func drawPips(dst surface.Surface, g style.Geometry, c gg.RGBA) {
	r := g.Radius - g.PipInset
	for i := range 12 {
		x, y := polar(g.CenterX, g.CenterY, r, float64(i)/12)
		dst.FillCircle(x, y, g.PipRadius, c)
	}
}

func drawHands(dst surface.Surface, g style.Geometry, t time.Time, c gg.RGBA) {
	if g.MinuteHand <= 0 {
		return
	}
	minute := float64(t.Minute()) / 60
	hour := (float64(t.Hour()%12) + minute) / 12

	hx, hy := polar(g.CenterX, g.CenterY, g.HourHand, hour)
	dst.StrokeLine(g.CenterX, g.CenterY, hx, hy, g.HandWidth*1.5, c)
	mx, my := polar(g.CenterX, g.CenterY, g.MinuteHand, minute)
	dst.StrokeLine(g.CenterX, g.CenterY, mx, my, g.HandWidth, c)
}

// polar returns the point at distance r from (cx, cy) for a clockwise
// dial fraction where 0 is twelve o'clock.
func polar(cx, cy, r, frac float64) (float64, float64) {
	a := 2*math.Pi*frac - math.Pi/2
	return cx + r*math.Cos(a), cy + r*math.Sin(a)
}
