// Package render draws watch face frames.
//
// # Overview
//
// A [Renderer] turns a [Frame] (draw mode, wall-clock time and an optional
// highlight layer) plus a [style.Snapshot] into draw calls on a
// [surface.Surface]. It keeps no state between frames: everything it needs
// arrives as arguments, so the host may call it from its own frame
// scheduler at any cadence.
//
// # Draw Modes
//
// In [Active] mode the frame carries the colored background, hour pips
// (when enabled), the clock hands, the phrase and filled complications.
// [Ambient] mode is the low-power variant: black background, muted text,
// outlined complications and no pips or hands.
//
// A frame with a [HighlightLayer] draws only the highlight tint and each
// enabled complication's highlight ring. No phrase is drawn.
//
// # Surfaces
//
// Output formats are surface implementations in sibling packages:
//
//   - [canvas]: raster frames via gogpu/gg, encoded as PNG
//   - [svg]: vector frames as SVG markup
//
// [RenderJSON] describes a frame without drawing it.
//
//	r := render.New(render.WithPadding(0.12))
//	snap := manager.Snapshot(c.Width(), c.Height())
//	r.Render(ctx, c, render.Frame{Mode: render.Active, Time: now}, snap, slots)
//
// [canvas]: github.com/matzehuels/fuzzyface/pkg/render/canvas
// [svg]: github.com/matzehuels/fuzzyface/pkg/render/svg
package render
