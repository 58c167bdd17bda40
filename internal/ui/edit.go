package ui

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/weekendly/internal/plan"
)

func (a *App) editCmd() *cobra.Command {
	var (
		notes      string
		start      string
		unschedule bool
		duration   int
	)

	cmd := &cobra.Command{
		Use:   "edit [block-id]",
		Short: "Edit notes, start time or duration of a block",
		Long: `Edit a block. Only the given fields change.

Durations are rounded to 15 minutes and kept between 15 minutes and 5 hours.

Example:
  weekendly edit 3f2a --start 09:30 --duration 90 --notes "bring snacks"
  weekendly edit 3f2a --unschedule`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			if !flags.Changed("notes") && !flags.Changed("start") && !unschedule && !flags.Changed("duration") {
				return errors.New("nothing to change: use --notes, --start, --unschedule or --duration")
			}

			var patches []plan.BlockPatch
			if flags.Changed("start") {
				mins, err := plan.ParseClock(start)
				if err != nil {
					return fmt.Errorf("invalid --start: %w", err)
				}
				patches = append(patches, plan.WithStart(mins))
			}
			if unschedule {
				patches = append(patches, plan.Unschedule())
			}
			if flags.Changed("notes") {
				patches = append(patches, plan.WithNotes(notes))
			}
			clamped := plan.ClampDuration(duration)
			if flags.Changed("duration") {
				patches = append(patches, plan.WithDuration(clamped))
			}

			if err := a.ensureStore(); err != nil {
				return err
			}
			id, err := resolveBlockID(a.store.Blocks(), args[0])
			if err != nil {
				return err
			}

			a.store.UpdateBlock(id, patches...)

			w := cmd.OutOrStdout()
			if flags.Changed("duration") && clamped != duration {
				fmt.Fprintf(w, "Duration adjusted to %s\n", plan.FormatTotal(clamped))
			}
			b, _ := a.store.Block(id)
			printBlockRow(w, b)
			return nil
		},
	}

	cmd.Flags().StringVar(&notes, "notes", "", "Notes text (empty clears)")
	cmd.Flags().StringVar(&start, "start", "", "Start time (HH:MM)")
	cmd.Flags().BoolVar(&unschedule, "unschedule", false, "Clear the start time")
	cmd.Flags().IntVar(&duration, "duration", 0, "Duration in minutes")
	cmd.MarkFlagsMutuallyExclusive("start", "unschedule")
	return cmd
}
