package style

import (
	"github.com/gogpu/gg"

	"github.com/matzehuels/fuzzyface/pkg/complication"
)

// Palette holds the colors derived from a color scheme. It is always
// computed by [PaletteFor] and never edited field by field.
type Palette struct {
	ActiveBackground  gg.RGBA
	AmbientBackground gg.RGBA
	ActiveText        gg.RGBA
	AmbientText       gg.RGBA
	ActivePrimary     gg.RGBA // hour pips and minute hand
	Highlight         gg.RGBA // highlight layer tint
	Complication      complication.StyleID
}

var palettes = map[ColorStyleID]Palette{
	Red: {
		ActiveBackground:  gg.Hex("#1e0a0a"),
		AmbientBackground: gg.Hex("#000000"),
		ActiveText:        gg.Hex("#ffe3e3"),
		AmbientText:       gg.Hex("#c8c8c8"),
		ActivePrimary:     gg.Hex("#ff4d4d"),
		Highlight:         gg.Hex("#ff4d4d80"),
		Complication:      complication.StyleRed,
	},
	Green: {
		ActiveBackground:  gg.Hex("#0a1e10"),
		AmbientBackground: gg.Hex("#000000"),
		ActiveText:        gg.Hex("#e3ffe9"),
		AmbientText:       gg.Hex("#c8c8c8"),
		ActivePrimary:     gg.Hex("#40c057"),
		Highlight:         gg.Hex("#40c05780"),
		Complication:      complication.StyleGreen,
	},
	Blue: {
		ActiveBackground:  gg.Hex("#0a121e"),
		AmbientBackground: gg.Hex("#000000"),
		ActiveText:        gg.Hex("#e3f0ff"),
		AmbientText:       gg.Hex("#c8c8c8"),
		ActivePrimary:     gg.Hex("#4dabf7"),
		Highlight:         gg.Hex("#4dabf780"),
		Complication:      complication.StyleBlue,
	},
	White: {
		ActiveBackground:  gg.Hex("#f1f3f5"),
		AmbientBackground: gg.Hex("#000000"),
		ActiveText:        gg.Hex("#212529"),
		AmbientText:       gg.Hex("#c8c8c8"),
		ActivePrimary:     gg.Hex("#495057"),
		Highlight:         gg.Hex("#49505780"),
		Complication:      complication.StyleWhite,
	},
}

// PaletteFor returns the palette of a color scheme. Unknown ids fall back
// to the default scheme.
func PaletteFor(id ColorStyleID) Palette {
	if p, ok := palettes[id]; ok {
		return p
	}
	return palettes[DefaultColorStyle]
}

// Background returns the fill color for the given mode.
func (p Palette) Background(ambient bool) gg.RGBA {
	if ambient {
		return p.AmbientBackground
	}
	return p.ActiveBackground
}

// Text returns the phrase color for the given mode.
func (p Palette) Text(ambient bool) gg.RGBA {
	if ambient {
		return p.AmbientText
	}
	return p.ActiveText
}
