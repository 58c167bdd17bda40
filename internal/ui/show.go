package ui

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/weekendly/internal/plan"
)

func (a *App) showCmd() *cobra.Command {
	var (
		day     string
		noColor bool
	)

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the weekend plan",
		Long: `Display the plan per day with totals and overlap warnings.

Example:
  weekendly show --day sun`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if noColor {
				DisableColor()
			}

			days := plan.Days
			if day != "" {
				d, err := plan.ParseDay(day)
				if err != nil {
					return err
				}
				days = []plan.Day{d}
			}

			if err := a.ensureStore(); err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			blocks := a.store.Blocks()
			for i, d := range days {
				if i > 0 {
					fmt.Fprintln(w, formatMuted(rule()))
				}
				printDay(w, plan.BuildDayView(blocks, d))
			}
			if at, ok := a.adapter.SavedAt(cmd.Context()); ok {
				fmt.Fprintf(w, "\n%s\n", formatMuted("Last saved "+at.Local().Format("Mon 02 Jan 15:04")))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&day, "day", "", "Only show one day: sat or sun")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable color output")
	return cmd
}
