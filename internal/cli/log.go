// Package cli implements the fuzzyface command-line interface.
//
// The CLI plays the host of the watch face: it supplies the clock, the
// style-change stream, the drawing surface and the complication slots.
// Commands are built with cobra and log through charmbracelet/log.
//
// # Commands
//
// The main commands are:
//   - phrase: Print the phrase for a time, or a whole hour as a table
//   - render: Draw one frame to PNG, SVG or JSON
//   - style: Show or change the stored style settings
//   - watch: Live terminal face that publishes style events
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging, which also
// reports style and frame events. Loggers are passed through
// context.Context.
//
// # Example
//
//	c := cli.New(os.Stderr, cli.LogInfo)
//	if err := c.RootCommand().ExecuteContext(ctx); err != nil {
//	    os.Exit(1)
//	}
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/fuzzyface/pkg/observability"
)

// newLogger creates a new logger with timestamp formatting.
// The logger writes to w and filters messages at the specified level.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time since progress was created.
// Example output: "Rendered 3 files (12ms)"
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

type ctxKey int

const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx, or log.Default() if
// none is attached.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// =============================================================================
// Observability
// =============================================================================

// logHooks reports style and frame events at debug level.
type logHooks struct {
	logger *log.Logger
}

func (h logHooks) OnStyleEvent(_ context.Context, settings int, changed bool) {
	h.logger.Debug("style event", "settings", settings, "changed", changed)
}

func (h logHooks) OnPaletteRecomputed(_ context.Context, colorStyle string, slots int) {
	h.logger.Debug("palette recomputed", "color", colorStyle, "slots", slots)
}

func (h logHooks) OnFrameStart(_ context.Context, mode string) {}

func (h logHooks) OnFrameComplete(_ context.Context, mode string, d time.Duration) {
	h.logger.Debug("frame", "mode", mode, "took", d)
}

func installLogHooks(l *log.Logger) {
	h := logHooks{logger: l}
	observability.SetStyleHooks(h)
	observability.SetFrameHooks(h)
}
