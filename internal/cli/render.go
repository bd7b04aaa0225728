package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/matzehuels/fuzzyface/pkg/complication"
	"github.com/matzehuels/fuzzyface/pkg/errors"
	"github.com/matzehuels/fuzzyface/pkg/render"
	"github.com/matzehuels/fuzzyface/pkg/render/canvas"
	"github.com/matzehuels/fuzzyface/pkg/render/svg"
	"github.com/matzehuels/fuzzyface/pkg/style"
)

const (
	formatPNG  = "png"
	formatSVG  = "svg"
	formatJSON = "json"

	defaultOutput = appName
)

// validFormats lists the supported output formats in display order.
var validFormats = []string{formatPNG, formatSVG, formatJSON}

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output   string   // output file path (or base path for multiple outputs)
	formats  []string // output formats: "png", "svg", "json"
	at       string   // clock time HH:MM, empty for now
	mode     string   // active, ambient or highlight
	width    int      // frame width in pixels
	height   int      // frame height in pixels
	fontSize float64  // phrase size in points
	padding  float64  // phrase margin as a fraction of the width

	color      string  // color style override
	handLength float64 // hand length override
	pips       bool    // hour pips override
}

// renderCommand draws one frame.
func (c *CLI) renderCommand() *cobra.Command {
	var formatsStr string
	opts := renderOpts{mode: render.ModeActive}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render one frame to PNG, SVG or JSON",
		Example: `  fuzzyface render --time 15:16
  fuzzyface render --mode ambient -f png,svg -o face
  fuzzyface render --color blue --hand-length 0.5 --pips=false`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := validateFormats(opts.formats); err != nil {
				return err
			}

			cfg, stored, err := c.loadConfig()
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if !flags.Changed("width") {
				opts.width = cfg.Frame.Width
			}
			if !flags.Changed("height") {
				opts.height = cfg.Frame.Height
			}
			if !flags.Changed("font-size") {
				opts.fontSize = cfg.Frame.FontSize
			}
			opts.padding = cfg.Frame.Padding
			if opts.width <= 0 || opts.height <= 0 {
				return errors.New(errors.ErrCodeInvalidInput, "frame size %dx%d must be positive", opts.width, opts.height)
			}

			ev, err := styleOverrides(flags, &opts)
			if err != nil {
				return err
			}

			paths, err := c.runRender(cmd.Context(), stored, ev, &opts)
			if err != nil {
				return err
			}
			for _, p := range paths {
				printFile(cmd.OutOrStdout(), p)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): png (default), svg, json (comma-separated)")
	cmd.Flags().StringVarP(&opts.at, "time", "t", "", "clock time as HH:MM (default now)")
	cmd.Flags().StringVarP(&opts.mode, "mode", "m", opts.mode, "draw mode: "+strings.Join(render.Modes(), ", "))
	cmd.Flags().IntVar(&opts.width, "width", 0, "frame width (default from config)")
	cmd.Flags().IntVar(&opts.height, "height", 0, "frame height (default from config)")
	cmd.Flags().Float64Var(&opts.fontSize, "font-size", 0, "phrase font size (default from config)")
	cmd.Flags().StringVar(&opts.color, "color", "", "color style override: "+strings.Join(colorNames(), ", "))
	cmd.Flags().Float64Var(&opts.handLength, "hand-length", 0, "hand length override in [0, 1]")
	cmd.Flags().BoolVar(&opts.pips, "pips", false, "hour pips override")

	_ = cmd.RegisterFlagCompletionFunc("mode", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return render.Modes(), cobra.ShellCompDirectiveNoFileComp
	})
	_ = cmd.RegisterFlagCompletionFunc("color", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return colorNames(), cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

// styleOverrides turns the style flags that were set into one event.
func styleOverrides(flags *pflag.FlagSet, opts *renderOpts) (style.Event, error) {
	var pairs []string
	if flags.Changed("color") {
		pairs = append(pairs, "color="+opts.color)
	}
	if flags.Changed("hand-length") {
		pairs = append(pairs, fmt.Sprintf("hand-length=%g", opts.handLength))
	}
	if flags.Changed("pips") {
		pairs = append(pairs, fmt.Sprintf("pips=%t", opts.pips))
	}
	return style.ParseAssignments(pairs)
}

// runRender builds a face from the stored style, applies the overrides as
// a style event and writes one file per format. It returns the paths
// written.
func (c *CLI) runRender(ctx context.Context, stored style.Config, ev style.Event, opts *renderOpts) ([]string, error) {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	at := time.Now()
	if opts.at != "" {
		var err error
		if at, err = parseClock(opts.at, at); err != nil {
			return nil, err
		}
	}

	w, h := float64(opts.width), float64(opts.height)
	m, slots := c.newFace(ctx, stored, w, h)
	defer m.Close()
	if len(ev) > 0 {
		changed := m.Handle(ctx, ev)
		logger.Debug("applied overrides", "settings", len(ev), "changed", changed)
	}

	snap := m.Snapshot(w, h)
	frame, err := render.NewFrame(opts.mode, at, snap.Palette)
	if err != nil {
		return nil, err
	}
	r := render.New(render.WithPadding(opts.padding), render.WithLogger(logger))

	base := basePath(opts.output)
	var paths []string
	for _, format := range opts.formats {
		data, err := renderFormat(ctx, r, format, frame, snap, slots, opts)
		if err != nil {
			return paths, fmt.Errorf("%s: %w", format, err)
		}
		path := outputPath(opts.output, base, format, len(opts.formats))
		if err := writeOutput(path, data); err != nil {
			return paths, err
		}
		logger.Debugf("Generated %s: %d bytes", format, len(data))
		paths = append(paths, path)
	}

	prog.done(fmt.Sprintf("Rendered %s frame at %s", frame.Label(), at.Format(clockLayout)))
	return paths, nil
}

// renderFormat draws the frame on the surface matching format.
func renderFormat(ctx context.Context, r *render.Renderer, format string, f render.Frame, snap style.Snapshot, slots []*complication.Slot, opts *renderOpts) ([]byte, error) {
	switch format {
	case formatPNG:
		cv, err := canvas.New(opts.width, opts.height, canvas.WithFontSize(opts.fontSize))
		if err != nil {
			return nil, err
		}
		defer cv.Close()
		r.Render(ctx, cv, f, snap, render.Slots(slots))
		var buf bytes.Buffer
		if err := cv.EncodePNG(&buf); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case formatSVG:
		s := svg.New(float64(opts.width), float64(opts.height), svg.WithFontSize(opts.fontSize))
		r.Render(ctx, s, f, snap, render.Slots(slots))
		return s.Bytes(), nil
	case formatJSON:
		return render.RenderJSON(f, snap,
			render.WithJSONSize(float64(opts.width), float64(opts.height)),
			render.WithJSONSlots(slots),
		)
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown format: %s", format)
	}
}

// parseFormats parses the --format flag into a slice of output formats.
// If empty, defaults to ["png"].
func parseFormats(s string) []string {
	if s == "" {
		return []string{formatPNG}
	}
	parts := strings.Split(s, ",")
	for i, p := range parts {
		parts[i] = strings.ToLower(strings.TrimSpace(p))
	}
	return parts
}

// validateFormats checks that all requested formats are valid.
func validateFormats(formats []string) error {
	for _, f := range formats {
		if !slices.Contains(validFormats, f) {
			return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %s (must be %s)", f, strings.Join(validFormats, ", "))
		}
	}
	return nil
}

// basePath strips a known format extension from output, defaulting to
// the application name.
func basePath(output string) string {
	if output == "" {
		return defaultOutput
	}
	ext := filepath.Ext(output)
	if slices.Contains(validFormats, strings.TrimPrefix(ext, ".")) {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// outputPath uses output verbatim for a single format and base.format
// otherwise.
func outputPath(output, base, format string, count int) string {
	if count == 1 && output != "" {
		return output
	}
	return base + "." + format
}

func writeOutput(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func colorNames() []string {
	ids := style.ColorStyles()
	names := make([]string, len(ids))
	for i, id := range ids {
		names[i] = id.String()
	}
	return names
}
