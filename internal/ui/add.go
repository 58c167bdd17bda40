package ui

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/weekendly/internal/plan"
)

func (a *App) addCmd() *cobra.Command {
	var day string

	cmd := &cobra.Command{
		Use:   "add [activity]",
		Short: "Add an activity to a day",
		Long: `Add an activity from the catalog to the end of a day. The activity
can be given by id or title. The new block starts unscheduled.

Example:
  weekendly add a1 --day sat
  weekendly add "Beach Walk" --day sun`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := plan.ParseDay(day)
			if err != nil {
				return err
			}
			if err := a.ensureStore(); err != nil {
				return err
			}

			act, err := resolveActivity(a.catalog, args[0])
			if err != nil {
				return err
			}

			b := a.store.AddToDay(act, d)
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s to %s (%s)\n", b.Title, d.Label(), shortID(b.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&day, "day", "", "Day: sat or sun (required)")
	_ = cmd.MarkFlagRequired("day")
	return cmd
}
