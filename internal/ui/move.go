package ui

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/weekendly/internal/plan"
)

func (a *App) moveCmd() *cobra.Command {
	var (
		day   string
		index int
	)

	cmd := &cobra.Command{
		Use:   "move [block-id]",
		Short: "Move a block to a day and position",
		Long: `Move a block to a position among the blocks of a day. Position 0 is
the top. Positions past the end put the block last.

Example:
  weekendly move 3f2a --day sun
  weekendly move 3f2a --day sat --index 2`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := plan.ParseDay(day)
			if err != nil {
				return err
			}
			if index < 0 {
				return fmt.Errorf("invalid --index %d: must not be negative", index)
			}
			if err := a.ensureStore(); err != nil {
				return err
			}

			id, err := resolveBlockID(a.store.Blocks(), args[0])
			if err != nil {
				return err
			}

			a.store.MoveBlockToDay(id, d, index)
			b, _ := a.store.Block(id)
			fmt.Fprintf(cmd.OutOrStdout(), "Moved %s to %s\n", b.Title, d.Label())
			return nil
		},
	}

	cmd.Flags().StringVar(&day, "day", "", "Target day: sat or sun (required)")
	cmd.Flags().IntVar(&index, "index", 0, "Position within the day")
	_ = cmd.MarkFlagRequired("day")
	return cmd
}
