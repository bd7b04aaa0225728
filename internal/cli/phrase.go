package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/fuzzyface/pkg/errors"
	"github.com/matzehuels/fuzzyface/pkg/phrase"
)

// phraseCommand prints the phrase for a time of day.
func (c *CLI) phraseCommand() *cobra.Command {
	var showTable bool

	cmd := &cobra.Command{
		Use:   "phrase [HH:MM]",
		Short: "Print the phrase for a time (default: now)",
		Example: `  fuzzyface phrase 15:16
  fuzzyface phrase 12:00 --table`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			at := time.Now()
			if len(args) == 1 {
				var err error
				if at, err = parseClock(args[0], at); err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			if showTable {
				fmt.Fprintln(out, phraseTable(at.Hour()))
				return nil
			}
			fmt.Fprintln(out, phrase.FromTime(at))
			return nil
		},
	}

	cmd.Flags().BoolVar(&showTable, "table", false, "print every minute of the hour")
	return cmd
}

// parseClock reads "HH:MM" (24h) as a time on the same day as now.
func parseClock(s string, now time.Time) (time.Time, error) {
	p, err := time.Parse(clockLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, errors.Wrap(errors.ErrCodeInvalidTime, err, "invalid time %q (want HH:MM)", s)
	}
	return time.Date(now.Year(), now.Month(), now.Day(), p.Hour(), p.Minute(), 0, 0, now.Location()), nil
}

// phraseTable renders the phrase of every minute of hour24, with the
// first minute of each bucket highlighted.
func phraseTable(hour24 int) string {
	rows := make([][]string, 0, 60)
	starts := map[int]bool{0: true}
	for _, r := range phrase.Rows() {
		starts[r.First] = true
	}
	dial := phrase.Dial(hour24)
	for m := range 60 {
		rows = append(rows, []string{fmt.Sprintf("%02d:%02d", hour24, m), phrase.Format(dial, m)})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Time", "Phrase").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return headerStyle
			case starts[row]:
				return lipgloss.NewStyle().Foreground(colorWhite)
			default:
				return lipgloss.NewStyle().Foreground(colorGray)
			}
		}).
		Render()
}
