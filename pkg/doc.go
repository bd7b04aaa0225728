// Package pkg provides the libraries behind the fuzzyface watch face.
//
// # Overview
//
// fuzzyface tells the time in words ("almost a quarter past three") and
// draws it on a watch face. The libraries split into the core, which has
// no I/O, and the surfaces that turn draw calls into files:
//
//  1. [phrase] - Time to phrase formatting
//  2. [style] - Style settings, palettes and the style-change stream
//  3. [complication] - Complication slots and their drawables
//  4. [render] - Frame rendering onto a [render/surface]
//
// # Architecture
//
// One frame flows through the packages like this:
//
//	style event ─→ style.Stream ─→ style.Manager ─→ complication slots
//	                                      │
//	clock ─→ render.Renderer ←── Snapshot ┘
//	              │
//	              ↓
//	 render/canvas (PNG) · render/svg · render.RenderJSON
//
// # Quick Start
//
//	slots := complication.DefaultLayout(454, 454)
//	m := style.NewManager(style.Default(),
//	    style.WithSlots(complication.Targets(slots)...))
//	defer m.Close()
//
//	m.Handle(ctx, style.Event{
//	    style.SettingColorStyle: style.ColorChoice{ID: style.Blue},
//	})
//
//	c, _ := canvas.New(454, 454)
//	defer c.Close()
//	frame := render.Frame{Mode: render.Active, Time: time.Now()}
//	render.New().Render(ctx, c, frame, m.Snapshot(454, 454), render.Slots(slots))
//	_ = c.EncodePNG(w)
//
// # Supporting Packages
//
// [errors] - Coded errors for input validation at the edges.
//
// [observability] - Hooks for style and frame events, no-op by default.
//
// [fonts] - Embedded Go fonts for the raster canvas.
//
// [buildinfo] - Version information injected at build time.
//
// # Testing
//
//	go test ./pkg/...           # All tests
//	go test ./pkg/style/...     # Specific package
//	go test -run Example ./...  # Examples only
//
// [phrase]: https://pkg.go.dev/github.com/matzehuels/fuzzyface/pkg/phrase
// [style]: https://pkg.go.dev/github.com/matzehuels/fuzzyface/pkg/style
// [complication]: https://pkg.go.dev/github.com/matzehuels/fuzzyface/pkg/complication
// [render]: https://pkg.go.dev/github.com/matzehuels/fuzzyface/pkg/render
// [render/surface]: https://pkg.go.dev/github.com/matzehuels/fuzzyface/pkg/render/surface
// [errors]: https://pkg.go.dev/github.com/matzehuels/fuzzyface/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/fuzzyface/pkg/observability
// [fonts]: https://pkg.go.dev/github.com/matzehuels/fuzzyface/pkg/fonts
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/fuzzyface/pkg/buildinfo
package pkg
