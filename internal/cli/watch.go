package cli

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/fuzzyface/internal/config"
	"github.com/matzehuels/fuzzyface/pkg/observability"
	"github.com/matzehuels/fuzzyface/pkg/render"
	"github.com/matzehuels/fuzzyface/pkg/style"
)

const (
	handLengthKey = 0.05
	faceWidth     = 36
	faceRows      = 3
	facePadX      = 3
	streamBuffer  = 16
)

// watchCommand runs the live terminal face.
func (c *CLI) watchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Show the live phrase and change the style with keys",
		Long: `Show the current phrase in the terminal, colored by the active style.
A frame is rendered every frame.period (see the config file).

Keys publish style events just as a watch's settings screen would:
  c      next color style
  p      toggle hour pips
  + / -  lengthen or shorten the hands
  a      toggle ambient mode
  s      save the style to the store
  q      quit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, st, err := c.loadConfig()
			if err != nil {
				return err
			}
			return c.runWatch(cmd.Context(), cfg, st)
		},
	}
}

func (c *CLI) runWatch(ctx context.Context, cfg config.Config, st style.Config) error {
	logger := loggerFromContext(ctx)
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	stream := style.NewStream(streamBuffer)
	defer stream.Close()

	m, slots := c.newFace(ctx, st, float64(cfg.Frame.Width), float64(cfg.Frame.Height))
	defer m.Close()
	m.Attach(stream)

	// Per-frame debug lines would scroll over the alternate screen.
	observability.SetFrameHooks(observability.NoopFrameHooks{})

	p := tea.NewProgram(newWatchModel(ctx, m, stream, render.Slots(slots), cfg), tea.WithContext(ctx), tea.WithAltScreen())

	// Subscribed after the manager, so the manager has handled each event
	// before the view hears about it.
	view := stream.Subscribe(func(context.Context, style.Event) {
		p.Send(styleAppliedMsg(m.Config()))
	})
	defer view.Cancel()

	errc := make(chan error, 1)
	go func() { errc <- stream.Run(ctx) }()

	final, err := p.Run()
	cancel()
	<-errc
	if err != nil {
		return err
	}
	if wm, ok := final.(watchModel); ok && wm.saved {
		logger.Infof("Saved style to %s", cfg.Style.Path)
	}
	return nil
}

// =============================================================================
// watchModel - live face
// =============================================================================

type (
	tickMsg         time.Time
	styleAppliedMsg style.Config
)

type watchModel struct {
	ctx       context.Context
	manager   *style.Manager
	stream    *style.Stream
	renderer  *render.Renderer
	slots     []render.Complication
	storePath string

	period        time.Duration
	width, height float64 // frame size the hand geometry is computed for

	now      time.Time
	ambient  bool
	face     *termSurface
	geometry style.Geometry
	phrase   string
	frames   int
	status   string
	saved    bool
	err      error
}

func newWatchModel(ctx context.Context, m *style.Manager, s *style.Stream, slots []render.Complication, cfg config.Config) watchModel {
	wm := watchModel{
		ctx:       ctx,
		manager:   m,
		stream:    s,
		renderer:  render.New(render.WithPadding(cfg.Frame.Padding)),
		slots:     slots,
		storePath: cfg.Style.Path,
		period:    cfg.Frame.Period,
		width:     float64(cfg.Frame.Width),
		height:    float64(cfg.Frame.Height),
		now:       time.Now(),
		status:    m.Config().String(),
	}
	wm.draw()
	return wm
}

func tick(period time.Duration) tea.Cmd {
	return tea.Tick(period, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m watchModel) Init() tea.Cmd {
	return tick(m.period)
}

// draw renders one frame from the manager's current snapshot. The hand
// geometry inside the snapshot is cached by the manager across ticks.
func (m *watchModel) draw() {
	snap := m.manager.Snapshot(m.width, m.height)
	mode := render.ModeActive
	if m.ambient {
		mode = render.ModeAmbient
	}
	f, err := render.NewFrame(mode, m.now, snap.Palette)
	if err != nil {
		m.err = err
		return
	}
	face := newTermSurface(faceWidth-2*facePadX, faceRows)
	m.phrase = m.renderer.Render(m.ctx, face, f, snap, m.slots)
	m.face = face
	m.geometry = snap.Geometry
	m.frames++
}

func (m watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m.now = time.Time(msg)
		m.draw()
		return m, tick(m.period)
	case styleAppliedMsg:
		m.status = style.Config(msg).String()
		m.err = nil
		m.draw()
	case tea.KeyMsg:
		return m.handleKey(msg.String())
	}
	return m, nil
}

func (m watchModel) handleKey(key string) (tea.Model, tea.Cmd) {
	cur := m.manager.Config()
	switch key {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "c":
		m.publish(style.Event{style.SettingColorStyle: style.ColorChoice{ID: cur.ColorStyle.Next()}})
	case "p":
		m.publish(style.Event{style.SettingDrawHourPips: style.BooleanFlag{Value: !cur.DrawHourPips}})
	case "+", "=":
		m.publish(style.Event{style.SettingHandLength: style.DoubleRange{Value: stepHand(cur.HandLength, handLengthKey)}})
	case "-":
		m.publish(style.Event{style.SettingHandLength: style.DoubleRange{Value: stepHand(cur.HandLength, -handLengthKey)}})
	case "a":
		m.ambient = !m.ambient
		m.draw()
	case "s":
		if err := config.SaveStyle(m.storePath, cur); err != nil {
			m.err = err
		} else {
			m.saved = true
			m.status = "saved " + cur.String()
		}
	}
	return m, nil
}

// publish hands ev to the dispatch goroutine; the manager applies it there.
func (m *watchModel) publish(ev style.Event) {
	if err := m.stream.Publish(m.ctx, ev); err != nil {
		m.err = err
	}
}

// stepHand moves a hand length by delta, staying in [0, 1] and on the
// key step grid.
func stepHand(v, delta float64) float64 {
	v = math.Round((v+delta)/handLengthKey) * handLengthKey
	return math.Min(1, math.Max(0, v))
}

func (m watchModel) View() string {
	cfg := m.manager.Config()
	pal := m.manager.Palette()

	face := lipgloss.NewStyle().
		Background(termColor(m.face.background)).
		Foreground(termColor(m.face.text)).
		Bold(!m.ambient).
		Padding(2, facePadX).
		Width(faceWidth).
		Align(lipgloss.Center).
		Render(strings.Join(m.face.lines, "\n"))

	var b strings.Builder
	b.WriteString(StyleTitle.Render("fuzzyface"))
	b.WriteString(StyleDim.Render("  " + m.now.Format(clockLayout) + "  " + modeName(m.ambient)))
	b.WriteString("\n\n")
	b.WriteString(face)
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Foreground(termColor(pal.ActivePrimary)).Render(handBar(m.geometry, cfg.DrawHourPips)))
	b.WriteString("\n")
	if m.err != nil {
		b.WriteString(StyleWarning.Render(iconWarning + " " + m.err.Error()))
	} else {
		b.WriteString(StyleDim.Render(m.status))
	}
	b.WriteString("\n\n")
	b.WriteString(StyleDim.Render("c color  p pips  +/- hands  a ambient  s save  q quit"))
	return b.String()
}

// handBar draws the minute hand as a bar scaled to the dial radius, with
// pips at the ends when hour pips are on.
func handBar(g style.Geometry, pips bool) string {
	n := 0
	if g.Radius > 0 {
		n = min(20, max(0, int(math.Round(g.MinuteHand/g.Radius*20))))
	}
	bar := strings.Repeat("━", n) + strings.Repeat(" ", 20-n)
	if pips {
		return fmt.Sprintf("• %s •", bar)
	}
	return fmt.Sprintf("  %s  ", bar)
}

func modeName(ambient bool) string {
	if ambient {
		return "ambient"
	}
	return "active"
}
