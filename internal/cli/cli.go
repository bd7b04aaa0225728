package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/fuzzyface/internal/config"
	"github.com/matzehuels/fuzzyface/pkg/buildinfo"
	"github.com/matzehuels/fuzzyface/pkg/complication"
	"github.com/matzehuels/fuzzyface/pkg/observability"
	"github.com/matzehuels/fuzzyface/pkg/style"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = config.AppName

	// clockLayout is the accepted --time and argument format.
	clockLayout = "15:04"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger     *log.Logger
	configPath string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level. At debug level, style and frame
// events are logged through the observability hooks.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
	if level <= log.DebugLevel {
		installLogHooks(c.Logger)
	} else {
		observability.Reset()
	}
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "fuzzyface tells the time in words",
		Long:         `fuzzyface is a text watch face engine. It renders the time as a phrase ("almost a quarter past three"), reacts to style settings, and exports frames as PNG, SVG or JSON.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/fuzzyface/config.toml)")

	// Register all subcommands
	root.AddCommand(c.phraseCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.styleCommand())
	root.AddCommand(c.watchCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Shared Setup
// =============================================================================

// loadConfig reads application settings and the stored style.
func (c *CLI) loadConfig() (config.Config, style.Config, error) {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return config.Config{}, style.Config{}, err
	}
	st, err := config.LoadStyle(cfg.Style.Path)
	if err != nil {
		return cfg, style.Config{}, err
	}
	c.Logger.Debug("loaded style", "path", cfg.Style.Path, "style", st)
	return cfg, st, nil
}

// newFace creates the complication slots for a frame size and a manager
// that recolors them.
func (c *CLI) newFace(ctx context.Context, initial style.Config, width, height float64) (*style.Manager, []*complication.Slot) {
	slots := complication.DefaultLayout(width, height)
	m := style.NewManager(initial,
		style.WithSlots(complication.Targets(slots)...),
		style.WithLogger(loggerFromContext(ctx)),
	)
	return m, slots
}
