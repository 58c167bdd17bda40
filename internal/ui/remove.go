package ui

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *App) removeCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "rm [block-id]",
		Aliases: []string{"remove"},
		Short:   "Remove a block from the plan",
		Long: `Remove a block by id. Any unique prefix of the id works.

Example:
  weekendly rm 3f2a`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.ensureStore(); err != nil {
				return err
			}

			id, err := resolveBlockID(a.store.Blocks(), args[0])
			if err != nil {
				return err
			}
			b, _ := a.store.Block(id)

			a.store.RemoveBlock(id)
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s from %s\n", b.Title, b.Day.Label())
			return nil
		},
	}
}
