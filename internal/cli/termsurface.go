package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/gogpu/gg"

	"github.com/matzehuels/fuzzyface/pkg/render/surface"
)

// termSurface is a surface measured in terminal cells. It keeps what a
// terminal can show of a frame: the background, the phrase lines and their
// color. Dial shapes are dropped.
type termSurface struct {
	cols, rows float64

	background gg.RGBA
	text       gg.RGBA
	lines      []string
}

var _ surface.Surface = (*termSurface)(nil)

func newTermSurface(cols, rows int) *termSurface {
	return &termSurface{cols: float64(cols), rows: float64(rows)}
}

func (s *termSurface) Width() float64  { return s.cols }
func (s *termSurface) Height() float64 { return s.rows }

func (s *termSurface) Fill(c gg.RGBA) {
	s.background = c
	s.lines = nil
}

func (s *termSurface) FillCircle(x, y, r float64, c gg.RGBA) {}

func (s *termSurface) StrokeLine(x1, y1, x2, y2, width float64, c gg.RGBA) {}

func (s *termSurface) LayoutText(text string, maxWidth float64) surface.TextLayout {
	lines := surface.WrapWords(strings.Fields(text), maxWidth, cellWidth)
	l := surface.TextLayout{Lines: lines, LineHeight: 1, Ascent: 1}
	for _, line := range lines {
		l.Width = max(l.Width, line.Width)
	}
	return l
}

func (s *termSurface) DrawText(l surface.TextLayout, x, y float64, c gg.RGBA) {
	s.text = c
	for _, line := range l.Lines {
		s.lines = append(s.lines, line.Text)
	}
}

func cellWidth(s string) float64 {
	return float64(lipgloss.Width(s))
}
