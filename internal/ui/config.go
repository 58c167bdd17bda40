package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/weekendly/internal/config"
	"github.com/javiermolinar/weekendly/internal/logger"
	"github.com/javiermolinar/weekendly/internal/tui/theme"
)

func (a *App) configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		Long: `Print the configuration after defaults, the config file and
WEEKENDLY_* environment variables are applied.

Example:
  weekendly config
  weekendly config init`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "Config file: %s\n\n", a.configPath)
			printConfig(cmd.OutOrStdout(), a.config)
			return nil
		},
	}

	cmd.AddCommand(a.configInitCmd())
	cmd.AddCommand(a.configEditCmd())
	return cmd
}

func (a *App) configInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with default values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := os.Stat(a.configPath)
			if err == nil && !force {
				return fmt.Errorf("config file %s already exists (use --force to overwrite)", a.configPath)
			}
			if err := config.Default().SaveTo(a.configPath); err != nil {
				return fmt.Errorf("saving config: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", a.configPath)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")
	return cmd
}

func (a *App) configEditCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "edit",
		Short: "Edit the configuration interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := *a.config
			reader := bufio.NewReader(cmd.InOrStdin())
			w := cmd.OutOrStdout()

			cfg.Storage.DBPath = promptValue(w, reader, "Database path", cfg.Storage.DBPath)
			cfg.Catalog.Path = promptValue(w, reader, "Catalog file (empty for built-in)", cfg.Catalog.Path)
			cfg.UI.Theme = promptChoice(w, reader, "UI theme", cfg.UI.Theme, theme.Available())
			cfg.UI.Density = promptChoice(w, reader, "Density", cfg.UI.Density, config.Densities)
			cfg.Log.Dir = promptValue(w, reader, "Log directory", cfg.Log.Dir)

			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid config: %w", err)
			}
			if err := cfg.SaveTo(a.configPath); err != nil {
				return fmt.Errorf("saving config: %w", err)
			}
			a.config = &cfg

			fmt.Fprintln(w, "\nConfiguration saved!")
			return nil
		},
	}
}

func printConfig(w io.Writer, cfg *config.Config) {
	fmt.Fprintln(w, "[storage]")
	fmt.Fprintf(w, "  db_path = %s\n", cfg.Storage.DBPath)
	fmt.Fprintf(w, "  key     = %s\n", cfg.Storage.Key)
	fmt.Fprintln(w, "\n[catalog]")
	if cfg.Catalog.Path == "" {
		fmt.Fprintln(w, "  path    = (built-in)")
	} else {
		fmt.Fprintf(w, "  path    = %s\n", cfg.Catalog.Path)
	}
	fmt.Fprintln(w, "\n[ui]")
	fmt.Fprintf(w, "  theme   = %s\n", cfg.UI.Theme)
	fmt.Fprintf(w, "  density = %s\n", cfg.UI.Density)
	fmt.Fprintln(w, "\n[log]")
	fmt.Fprintf(w, "  dir     = %s\n", cfg.Log.Dir)
	fmt.Fprintf(w, "  file    = %s\n", logger.Path(cfg.Log.Dir))
	fmt.Fprintf(w, "  debug   = %t\n", cfg.Log.Debug)
}

func promptValue(w io.Writer, reader *bufio.Reader, label, current string) string {
	if current == "" {
		fmt.Fprintf(w, "  %s: ", label)
	} else {
		fmt.Fprintf(w, "  %s [%s]: ", label, current)
	}
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(input)
	if input == "" {
		return current
	}
	return input
}

func promptChoice(w io.Writer, reader *bufio.Reader, label, current string, options []string) string {
	joined := strings.Join(options, ", ")
	full := fmt.Sprintf("%s (%s)", label, joined)
	for attempts := 0; attempts < 3; attempts++ {
		value := strings.ToLower(promptValue(w, reader, full, current))
		for _, o := range options {
			if value == o {
				return value
			}
		}
		fmt.Fprintf(w, "  Invalid value %q. Available: %s\n", value, joined)
	}
	return current
}
