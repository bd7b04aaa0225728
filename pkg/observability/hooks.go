// Package observability provides hooks for metrics, tracing, and logging.
//
// The watch face emits events about style changes and rendered frames.
// Backends register hooks at startup; until then every hook is a no-op, so
// library code can call them unconditionally.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetStyleHooks(&myStyleHooks{})
//	    observability.SetFrameHooks(&myFrameHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Frame().OnFrameStart(ctx, "active")
//	// ... draw ...
//	observability.Frame().OnFrameComplete(ctx, "active", duration)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Style Hooks
// =============================================================================

// StyleHooks receives events from the style manager.
type StyleHooks interface {
	// OnStyleEvent records a processed style event with the number of
	// settings it carried and whether the configuration changed.
	OnStyleEvent(ctx context.Context, settings int, changed bool)

	// OnPaletteRecomputed records a palette rebuild and the number of
	// complication slots that received a new drawable.
	OnPaletteRecomputed(ctx context.Context, colorStyle string, slots int)
}

// =============================================================================
// Frame Hooks
// =============================================================================

// FrameHooks receives events from the frame renderer.
type FrameHooks interface {
	OnFrameStart(ctx context.Context, mode string)
	OnFrameComplete(ctx context.Context, mode string, duration time.Duration)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopStyleHooks is a no-op implementation of StyleHooks.
type NoopStyleHooks struct{}

func (NoopStyleHooks) OnStyleEvent(context.Context, int, bool)          {}
func (NoopStyleHooks) OnPaletteRecomputed(context.Context, string, int) {}

// NoopFrameHooks is a no-op implementation of FrameHooks.
type NoopFrameHooks struct{}

func (NoopFrameHooks) OnFrameStart(context.Context, string)                   {}
func (NoopFrameHooks) OnFrameComplete(context.Context, string, time.Duration) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	styleHooks StyleHooks = NoopStyleHooks{}
	frameHooks FrameHooks = NoopFrameHooks{}
	hooksMu    sync.RWMutex
)

// SetStyleHooks registers custom style hooks. Nil is ignored.
func SetStyleHooks(h StyleHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		styleHooks = h
	}
}

// SetFrameHooks registers custom frame hooks. Nil is ignored.
func SetFrameHooks(h FrameHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		frameHooks = h
	}
}

// Style returns the registered style hooks.
func Style() StyleHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return styleHooks
}

// Frame returns the registered frame hooks.
func Frame() FrameHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return frameHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	styleHooks = NoopStyleHooks{}
	frameHooks = NoopFrameHooks{}
}
