package ui

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/weekendly/internal/catalog"
	"github.com/javiermolinar/weekendly/internal/plan"
)

func (a *App) presetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "preset [name]",
		Short: "List presets or replace the plan with one",
		Long: `Without a name, list the presets. With a name, replace the whole plan
with that preset.

Example:
  weekendly preset
  weekendly preset lazy`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.ensureStore(); err != nil {
				return err
			}
			w := cmd.OutOrStdout()

			if len(args) == 0 {
				for _, p := range a.catalog.Presets() {
					fmt.Fprintf(w, "%s\n", formatHeader(p.Name))
					for _, d := range plan.Days {
						fmt.Fprintf(w, "  %s: %s\n", d, strings.Join(a.titles(p.IDs(d)), ", "))
					}
				}
				return nil
			}

			if err := catalog.ApplyPreset(a.store, a.catalog, args[0]); err != nil {
				return err
			}
			p, _ := a.catalog.Preset(args[0])
			fmt.Fprintf(w, "Applied %s preset (%d blocks)\n", p.Name, len(a.store.Blocks()))
			return nil
		},
	}
}

func (a *App) titles(ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if act, ok := a.catalog.Activity(id); ok {
			out = append(out, act.Title)
		} else {
			out = append(out, id+"?")
		}
	}
	return out
}
