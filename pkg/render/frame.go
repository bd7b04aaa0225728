package render

import (
	"strings"
	"time"

	"github.com/gogpu/gg"

	"github.com/matzehuels/fuzzyface/pkg/errors"
	"github.com/matzehuels/fuzzyface/pkg/style"
)

// DrawMode selects how a frame is painted. The host chooses it per frame.
type DrawMode int

const (
	Active DrawMode = iota
	Ambient
)

// Mode names accepted by [NewFrame].
const (
	ModeActive    = "active"
	ModeAmbient   = "ambient"
	ModeHighlight = "highlight"
)

func (m DrawMode) String() string {
	if m == Ambient {
		return ModeAmbient
	}
	return ModeActive
}

// ParseMode parses "active" or "ambient".
func ParseMode(s string) (DrawMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case ModeActive:
		return Active, nil
	case ModeAmbient:
		return Ambient, nil
	}
	return Active, errors.New(errors.ErrCodeInvalidMode, "unknown draw mode %q (want active or ambient)", s)
}

// HighlightLayer replaces the normal frame content with a tint and the
// complication highlight rings.
type HighlightLayer struct {
	Tint gg.RGBA
	// Outline colors every ring. When fully transparent each complication
	// uses its own highlight color.
	Outline gg.RGBA
}

// Frame is one render request.
type Frame struct {
	Mode      DrawMode
	Time      time.Time
	Highlight *HighlightLayer
}

// Label names the frame for logs and hooks.
func (f Frame) Label() string {
	if f.Highlight != nil {
		return ModeHighlight
	}
	return f.Mode.String()
}

// NewFrame builds a frame from a mode name. "highlight" yields an active
// frame with a highlight layer tinted from p.
func NewFrame(mode string, t time.Time, p style.Palette) (Frame, error) {
	if strings.EqualFold(strings.TrimSpace(mode), ModeHighlight) {
		return Frame{Mode: Active, Time: t, Highlight: &HighlightLayer{Tint: p.Highlight}}, nil
	}
	m, err := ParseMode(mode)
	if err != nil {
		return Frame{}, errors.New(errors.ErrCodeInvalidMode, "unknown mode %q (want active, ambient or highlight)", mode)
	}
	return Frame{Mode: m, Time: t}, nil
}

// Modes lists every mode name accepted by [NewFrame].
func Modes() []string {
	return []string{ModeActive, ModeAmbient, ModeHighlight}
}
