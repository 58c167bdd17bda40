package ui

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/weekendly/internal/catalog"
	"github.com/javiermolinar/weekendly/internal/plan"
)

func (a *App) catalogCmd() *cobra.Command {
	var f catalog.Filter

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List available activities",
		Long: `List the activity catalog. Activities already on a day are marked
with that day.

Example:
  weekendly catalog --category Outdoor --search walk`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.ensureStore(); err != nil {
				return err
			}
			w := cmd.OutOrStdout()

			activities := a.catalog.Filter(f)
			if len(activities) == 0 {
				fmt.Fprintln(w, "No activities match.")
				return nil
			}

			for _, act := range activities {
				fmt.Fprintf(w, "  %-4s %s %s %s %s%s\n",
					act.ID,
					act.Icon+" "+act.Title,
					formatCategory(act.Category),
					formatMuted(string(act.Vibe)),
					formatMuted(plan.FormatTotal(act.DurationMinutes)),
					a.addedMarkers(act.ID),
				)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&f.Search, "search", "", "Match titles containing text")
	cmd.Flags().StringVar(&f.Category, "category", catalog.All, "Category: Food, Outdoor, Indoor, Social, Fitness or All")
	cmd.Flags().StringVar(&f.Vibe, "vibe", catalog.All, "Vibe: Chill, Energetic, Cozy, Social or All")
	return cmd
}

// addedMarkers returns "  ✓sat ✓sun" for the days an activity is on.
func (a *App) addedMarkers(activityID string) string {
	out := ""
	for _, d := range plan.Days {
		if a.store.IsAdded(activityID, d) {
			out += " ✓" + string(d)
		}
	}
	if out == "" {
		return ""
	}
	return " " + formatStats(out[1:])
}
