package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/fuzzyface/internal/config"
	"github.com/matzehuels/fuzzyface/pkg/style"
)

// styleCommand groups the style store subcommands.
func (c *CLI) styleCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "style",
		Short: "Show or change the stored style settings",
	}
	cmd.AddCommand(c.styleShowCommand())
	cmd.AddCommand(c.styleSetCommand())
	cmd.AddCommand(c.styleResetCommand())
	return cmd
}

func (c *CLI) styleShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the stored style and its palette",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, st, err := c.loadConfig()
			if err != nil {
				return err
			}
			printStyle(cmd.OutOrStdout(), cfg.Style.Path, st)
			return nil
		},
	}
}

func (c *CLI) styleSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY=VALUE...",
		Short: "Change style settings",
		Long: `Change one or more style settings and save them to the style store.

Keys:
  color        ` + strings.Join(colorNames(), ", ") + `
  hand-length  number in [0, 1]
  pips         true or false

Full setting ids (` + settingList() + `) are accepted too.`,
		Example: `  fuzzyface style set color=blue
  fuzzyface style set hand-length=0.5 pips=false`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ev, err := style.ParseAssignments(args)
			if err != nil {
				return err
			}
			cfg, current, err := c.loadConfig()
			if err != nil {
				return err
			}

			next, changed := style.Apply(current, ev)
			out := cmd.OutOrStdout()
			if !changed {
				printInfo(out, "Style unchanged (%s)", current)
				return nil
			}
			if err := config.SaveStyle(cfg.Style.Path, next); err != nil {
				return err
			}
			printSuccess(out, "Style updated: %s", next)
			printFile(out, cfg.Style.Path)
			return nil
		},
	}
}

func (c *CLI) styleResetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Restore the default style",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, current, err := c.loadConfig()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if current == style.Default() {
				printInfo(out, "Style already at defaults")
				return nil
			}
			if err := config.SaveStyle(cfg.Style.Path, style.Default()); err != nil {
				return err
			}
			printSuccess(out, "Style reset: %s", style.Default())
			return nil
		},
	}
}

// printStyle prints the settings and the colors they select.
func printStyle(w io.Writer, path string, st style.Config) {
	p := style.PaletteFor(st.ColorStyle)

	fmt.Fprintln(w, StyleTitle.Render("Style"))
	printKeyValue(w, "color", st.ColorStyle.String())
	printKeyValue(w, "hand length", fmt.Sprintf("%.2f", st.HandLength))
	printKeyValue(w, "hour pips", fmt.Sprintf("%t", st.DrawHourPips))
	printKeyValue(w, "store", path)
	fmt.Fprintln(w)

	fmt.Fprintln(w, StyleTitle.Render("Palette"))
	printKeyValue(w, "background", swatch(p.ActiveBackground))
	printKeyValue(w, "text", swatch(p.ActiveText))
	printKeyValue(w, "primary", swatch(p.ActivePrimary))
	printKeyValue(w, "ambient text", swatch(p.AmbientText))
	printKeyValue(w, "highlight", swatch(p.Highlight))
	printKeyValue(w, "complication", string(p.Complication))
}

func settingList() string {
	ids := style.Settings()
	names := make([]string, len(ids))
	for i, id := range ids {
		names[i] = string(id)
	}
	return strings.Join(names, ", ")
}
