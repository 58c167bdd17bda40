package ui

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *App) clearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove every block from the plan",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.ensureStore(); err != nil {
				return err
			}
			n := len(a.store.Blocks())
			a.store.ClearPlan()
			fmt.Fprintf(cmd.OutOrStdout(), "Cleared %d blocks\n", n)
			return nil
		},
	}
}
