package render

import (
	"encoding/json"

	"github.com/matzehuels/fuzzyface/pkg/complication"
	"github.com/matzehuels/fuzzyface/pkg/phrase"
	"github.com/matzehuels/fuzzyface/pkg/render/surface"
	"github.com/matzehuels/fuzzyface/pkg/style"
)

// JSONOption configures [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	width, height float64
	slots         []*complication.Slot
}

// WithJSONSize records the surface size the frame was rendered at.
func WithJSONSize(w, h float64) JSONOption {
	return func(r *jsonRenderer) { r.width, r.height = w, h }
}

// WithJSONSlots includes the complication slots and their drawables.
func WithJSONSlots(slots []*complication.Slot) JSONOption {
	return func(r *jsonRenderer) { r.slots = slots }
}

type jsonOutput struct {
	Width        float64       `json:"width,omitempty"`
	Height       float64       `json:"height,omitempty"`
	Mode         string        `json:"mode"`
	Time         string        `json:"time"`
	Phrase       string        `json:"phrase,omitempty"`
	Config       style.Config  `json:"config"`
	Colors       jsonColors    `json:"colors"`
	Complication string        `json:"complication_style"`
	Geometry     *jsonGeometry `json:"geometry,omitempty"`
	Slots        []jsonSlot    `json:"slots,omitempty"`
}

type jsonColors struct {
	Background string `json:"background"`
	Text       string `json:"text,omitempty"`
	Primary    string `json:"primary,omitempty"`
	Highlight  string `json:"highlight,omitempty"`
}

type jsonGeometry struct {
	Radius     float64 `json:"radius"`
	MinuteHand float64 `json:"minute_hand"`
	HourHand   float64 `json:"hour_hand"`
	PipRadius  float64 `json:"pip_radius"`
}

type jsonSlot struct {
	ID       int    `json:"id"`
	Enabled  bool   `json:"enabled"`
	Drawable string `json:"drawable,omitempty"`
}

// RenderJSON describes what [Renderer.Render] would draw for f as an
// indented JSON document: mode, phrase, colors and style settings.
func RenderJSON(f Frame, snap style.Snapshot, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	ambient := f.Mode == Ambient
	pal := snap.Palette
	out := jsonOutput{
		Width:        r.width,
		Height:       r.height,
		Mode:         f.Label(),
		Time:         f.Time.Format("15:04"),
		Config:       snap.Config,
		Complication: string(pal.Complication),
	}

	if f.Highlight != nil {
		out.Colors = jsonColors{Background: surface.Hex(f.Highlight.Tint), Highlight: surface.Hex(pal.Highlight)}
	} else {
		out.Phrase = phrase.FromTime(f.Time)
		out.Colors = jsonColors{
			Background: surface.Hex(pal.Background(ambient)),
			Text:       surface.Hex(pal.Text(ambient)),
		}
		if !ambient {
			out.Colors.Primary = surface.Hex(pal.ActivePrimary)
		}
	}

	if snap.Geometry.Radius > 0 {
		g := snap.Geometry
		out.Geometry = &jsonGeometry{Radius: g.Radius, MinuteHand: g.MinuteHand, HourHand: g.HourHand, PipRadius: g.PipRadius}
	}

	for _, s := range r.slots {
		js := jsonSlot{ID: s.ID, Enabled: s.Enabled()}
		if d := s.Drawable(); d != nil {
			js.Drawable = string(d.Style)
		}
		out.Slots = append(out.Slots, js)
	}

	return json.MarshalIndent(out, "", "  ")
}
