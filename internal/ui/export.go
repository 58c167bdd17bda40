package ui

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/weekendly/internal/share"
)

func (a *App) exportCmd() *cobra.Command {
	var copyText bool

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Print the plan as shareable text",
		Long: `Print the plan as plain text. With --copy the text also goes to the
clipboard.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.ensureStore(); err != nil {
				return err
			}

			text := share.Text(a.store.Blocks())
			fmt.Fprint(cmd.OutOrStdout(), text)

			if copyText {
				if err := share.Copy(text); err != nil {
					return err
				}
				fmt.Fprintln(cmd.ErrOrStderr(), "Copied to clipboard")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&copyText, "copy", false, "Copy the text to the clipboard")
	return cmd
}
