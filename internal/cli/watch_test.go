package cli

import (
	"context"
	"math"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/fuzzyface/internal/config"
	"github.com/matzehuels/fuzzyface/pkg/phrase"
	"github.com/matzehuels/fuzzyface/pkg/style"
)

func testWatchConfig(t *testing.T) config.Config {
	t.Helper()
	return config.Config{
		Frame: config.FrameConfig{Width: 120, Height: 120, FontSize: 14, Padding: 0.1, Period: 40 * time.Millisecond},
		Style: config.StoreConfig{Path: filepath.Join(t.TempDir(), "style.toml")},
	}
}

func newTestWatch(t *testing.T) (watchModel, *style.Manager) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	stream := style.NewStream(streamBuffer)
	t.Cleanup(stream.Close)
	m := style.NewManager(style.Default())
	t.Cleanup(func() { _ = m.Close() })
	m.Attach(stream)
	go func() { _ = stream.Run(ctx) }()

	wm := newWatchModel(ctx, m, stream, nil, testWatchConfig(t))
	return wm, m
}

func press(m watchModel, key string) watchModel {
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)})
	return next.(watchModel)
}

func waitForConfig(t *testing.T, m *style.Manager, ok func(style.Config) bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !ok(m.Config()) {
		if time.Now().After(deadline) {
			t.Fatalf("config never reached expected state: %v", m.Config())
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestWatchKeysPublishEvents(t *testing.T) {
	wm, m := newTestWatch(t)

	wm = press(wm, "c")
	waitForConfig(t, m, func(c style.Config) bool { return c.ColorStyle == style.Green })

	wm = press(wm, "p")
	waitForConfig(t, m, func(c style.Config) bool { return !c.DrawHourPips })

	wm = press(wm, "+")
	waitForConfig(t, m, func(c style.Config) bool { return math.Abs(c.HandLength-0.45) < 1e-9 })

	wm = press(wm, "-")
	waitForConfig(t, m, func(c style.Config) bool { return math.Abs(c.HandLength-0.40) < 1e-9 })
	wm = press(wm, "-")
	waitForConfig(t, m, func(c style.Config) bool { return math.Abs(c.HandLength-0.35) < 1e-9 })

	if wm.err != nil {
		t.Errorf("err = %v", wm.err)
	}
}

func TestWatchSave(t *testing.T) {
	wm, _ := newTestWatch(t)
	wm = press(wm, "s")
	if !wm.saved || wm.err != nil {
		t.Fatalf("saved = %t err = %v", wm.saved, wm.err)
	}
	got, err := config.LoadStyle(wm.storePath)
	if err != nil {
		t.Fatal(err)
	}
	if got != style.Default() {
		t.Errorf("stored = %v, want defaults", got)
	}
}

func TestWatchAmbientAndQuit(t *testing.T) {
	wm, _ := newTestWatch(t)
	wm.now = time.Date(2024, 5, 1, 15, 16, 0, 0, time.Local)

	wm = press(wm, "a")
	if !wm.ambient {
		t.Error("a should toggle ambient mode")
	}
	if wm.phrase != "quarter past three or so" {
		t.Errorf("phrase = %q, want %q", wm.phrase, "quarter past three or so")
	}
	if want := style.PaletteFor(style.Default().ColorStyle).AmbientBackground; wm.face.background != want {
		t.Errorf("ambient background = %v, want %v", wm.face.background, want)
	}
	view := wm.View()
	if !strings.Contains(view, "quarter past") || !strings.Contains(view, "ambient") {
		t.Errorf("view = %q", view)
	}

	_, cmd := wm.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("q should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
}

func TestWatchStyleAppliedMsg(t *testing.T) {
	wm, _ := newTestWatch(t)
	cfg := style.Config{ColorStyle: style.White, HandLength: 0.2}
	next, _ := wm.Update(styleAppliedMsg(cfg))
	if got := next.(watchModel).status; got != cfg.String() {
		t.Errorf("status = %q, want %q", got, cfg.String())
	}
}

func TestStepHand(t *testing.T) {
	tests := []struct {
		v, delta, want float64
	}{
		{0.38, 0.05, 0.45},
		{0.38, -0.05, 0.35},
		{0.98, 0.05, 1},
		{0.02, -0.05, 0},
	}
	for _, tt := range tests {
		if got := stepHand(tt.v, tt.delta); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("stepHand(%v, %v) = %v, want %v", tt.v, tt.delta, got, tt.want)
		}
	}
}

func TestWatchTickRendersFrame(t *testing.T) {
	wm, _ := newTestWatch(t)
	if wm.period != 40*time.Millisecond {
		t.Errorf("period = %v, want 40ms from config", wm.period)
	}
	if wm.frames != 1 {
		t.Fatalf("frames after start = %d, want 1", wm.frames)
	}

	at := time.Date(2024, 5, 1, 12, 50, 0, 0, time.Local)
	next, cmd := wm.Update(tickMsg(at))
	wm = next.(watchModel)
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
	if wm.frames != 2 {
		t.Errorf("frames = %d, want 2", wm.frames)
	}
	if want := phrase.FromTime(at); wm.phrase != want {
		t.Errorf("phrase = %q, want %q", wm.phrase, want)
	}
	if got := strings.Join(wm.face.lines, " "); got != "almost one" {
		t.Errorf("face lines = %q, want %q", got, "almost one")
	}
	if want := style.ComputeGeometry(120, 120, style.DefaultHandLength); wm.geometry != want {
		t.Errorf("geometry = %+v, want %+v", wm.geometry, want)
	}
}

func TestWatchHandLengthReachesGeometry(t *testing.T) {
	wm, m := newTestWatch(t)
	before := wm.geometry.MinuteHand

	wm = press(wm, "+")
	waitForConfig(t, m, func(c style.Config) bool { return c.HandLength > style.DefaultHandLength })

	next, _ := wm.Update(tickMsg(time.Now()))
	wm = next.(watchModel)
	want := style.ComputeGeometry(120, 120, m.Config().HandLength).MinuteHand
	if wm.geometry.MinuteHand != want || want <= before {
		t.Errorf("minute hand = %v, want %v (was %v)", wm.geometry.MinuteHand, want, before)
	}
}

func TestTermSurfaceLayout(t *testing.T) {
	s := newTermSurface(10, 3)
	l := s.LayoutText("almost a quarter past three", s.Width())
	want := []string{"almost a", "quarter", "past three"}
	if len(l.Lines) != len(want) {
		t.Fatalf("lines = %v, want %v", l.Lines, want)
	}
	for i, line := range l.Lines {
		if line.Text != want[i] {
			t.Errorf("line %d = %q, want %q", i, line.Text, want[i])
		}
	}
	if l.Width != 10 {
		t.Errorf("Width = %v, want 10", l.Width)
	}
}

func TestHandBar(t *testing.T) {
	g := style.ComputeGeometry(100, 100, 0.5)
	if got := handBar(g, true); got != "• "+strings.Repeat("━", 10)+strings.Repeat(" ", 10)+" •" {
		t.Errorf("handBar = %q", got)
	}
	if got := handBar(style.Geometry{}, false); got != "  "+strings.Repeat(" ", 20)+"  " {
		t.Errorf("empty handBar = %q", got)
	}
}
