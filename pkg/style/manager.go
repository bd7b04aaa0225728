package style

import (
	"context"
	"io"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/fuzzyface/pkg/complication"
	"github.com/matzehuels/fuzzyface/pkg/observability"
)

// Snapshot is the style state used to draw one frame.
type Snapshot struct {
	Config   Config
	Palette  Palette
	Geometry Geometry
}

// ManagerOption configures a Manager.
type ManagerOption func(*Manager)

// WithSlots sets the complication slots recolored on scheme changes.
func WithSlots(slots ...complication.Target) ManagerOption {
	return func(m *Manager) { m.slots = slots }
}

// WithLogger sets the logger. By default nothing is logged.
func WithLogger(l *log.Logger) ManagerOption {
	return func(m *Manager) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithDrawables overrides the drawable lookup used for complication slots.
func WithDrawables(lookup func(complication.StyleID) *complication.Drawable) ManagerOption {
	return func(m *Manager) {
		if lookup != nil {
			m.drawables = lookup
		}
	}
}

// Manager owns the live configuration of a running face.
type Manager struct {
	mu        sync.RWMutex
	cfg       Config
	palette   Palette
	geometry  geometryCache
	rebuilds  int
	slots     []complication.Target
	drawables func(complication.StyleID) *complication.Drawable
	logger    *log.Logger

	subMu sync.Mutex
	sub   *Subscription
}

// NewManager creates a manager holding initial. The palette is computed
// once and pushed to every enabled slot.
func NewManager(initial Config, opts ...ManagerOption) *Manager {
	m := &Manager{
		cfg:       initial,
		drawables: complication.DrawableFor,
		logger:    log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.rebuild(context.Background())
	return m
}

// Config returns the current configuration.
func (m *Manager) Config() Config {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.cfg
}

// Palette returns the current palette.
func (m *Manager) Palette() Palette {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.palette
}

// Handle applies one style event and reports whether the configuration
// changed. The palette and complication drawables are only rebuilt on a
// change. Any event carrying the hand length setting schedules a one-shot
// geometry recalculation for the next snapshot.
func (m *Manager) Handle(ctx context.Context, ev Event) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if ev.Has(SettingHandLength) {
		m.geometry.invalidate()
	}

	next, changed := Apply(m.cfg, ev)
	observability.Style().OnStyleEvent(ctx, len(ev), changed)
	if !changed {
		m.logger.Debug("style event left config unchanged", "settings", len(ev))
		return false
	}

	prev := m.cfg
	m.cfg = next
	m.logger.Debug("style changed", "from", prev, "to", next)
	m.rebuild(ctx)
	return true
}

// rebuild recomputes the palette and pushes the matching drawable into
// every enabled slot. The caller holds m.mu or has exclusive access.
func (m *Manager) rebuild(ctx context.Context) {
	m.palette = PaletteFor(m.cfg.ColorStyle)
	m.rebuilds++

	d := m.drawables(m.palette.Complication)
	pushed := 0
	for _, s := range m.slots {
		if !s.Enabled() {
			continue
		}
		s.SetDrawable(d)
		pushed++
	}
	observability.Style().OnPaletteRecomputed(ctx, m.cfg.ColorStyle.String(), pushed)
}

// Snapshot returns the state for one frame on a surface of the given size.
// Hand geometry is reused across calls until the size changes or the hand
// length setting was touched.
func (m *Manager) Snapshot(width, height float64) Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return Snapshot{
		Config:   m.cfg,
		Palette:  m.palette,
		Geometry: m.geometry.get(width, height, m.cfg.HandLength),
	}
}

// Attach subscribes the manager to s. A manager follows at most one
// stream; attaching again replaces the previous subscription.
func (m *Manager) Attach(s *Stream) *Subscription {
	sub := s.Subscribe(func(ctx context.Context, ev Event) {
		m.Handle(ctx, ev)
	})

	m.subMu.Lock()
	prev := m.sub
	m.sub = sub
	m.subMu.Unlock()

	if prev != nil {
		prev.Cancel()
	}
	return sub
}

// Close detaches the manager from its stream. After Close returns the
// manager receives no further events. Close is idempotent.
func (m *Manager) Close() error {
	m.subMu.Lock()
	sub := m.sub
	m.sub = nil
	m.subMu.Unlock()

	if sub != nil {
		sub.Cancel()
	}
	return nil
}
