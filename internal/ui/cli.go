package ui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/javiermolinar/weekendly/internal/catalog"
	"github.com/javiermolinar/weekendly/internal/config"
	"github.com/javiermolinar/weekendly/internal/db"
	"github.com/javiermolinar/weekendly/internal/logger"
	"github.com/javiermolinar/weekendly/internal/persist"
	"github.com/javiermolinar/weekendly/internal/plan"
	"github.com/javiermolinar/weekendly/internal/tui"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	config     *config.Config
	configPath string
	root       *cobra.Command
	debug      bool // Enable debug logging
	ephemeral  bool // Keep the plan in memory only

	logger  *log.Logger
	db      *db.SQLite
	adapter *persist.Adapter
	store   *plan.Store
	catalog *catalog.Catalog
}

// NewApp creates a new CLI application with the given config.
func NewApp(cfg *config.Config) *App {
	a := &App{config: cfg, configPath: config.DefaultConfigPath(), logger: logger.Get()}

	a.root = &cobra.Command{
		Use:   "weekendly",
		Short: "Plan your weekend from the terminal",
		Long: `Weekendly lets you build a two-day weekend plan from a catalog of
activities, schedule them, and spot overlapping blocks.

Run without a command to open the board.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := a.ensureStore(); err != nil {
				return err
			}
			return tui.Run(tui.Options{
				Store:      a.store,
				Catalog:    a.catalog,
				Config:     a.config,
				ConfigPath: a.configPath,
				Logger:     a.logger,
			})
		},
	}

	a.root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging (also to stderr)")
	a.root.PersistentFlags().StringVar(&a.configPath, "config", a.configPath, "Config file path")
	a.root.PersistentFlags().BoolVar(&a.ephemeral, "ephemeral", false, "Keep the plan in memory only")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.catalogCmd())
	a.root.AddCommand(a.addCmd())
	a.root.AddCommand(a.removeCmd())
	a.root.AddCommand(a.editCmd())
	a.root.AddCommand(a.moveCmd())
	a.root.AddCommand(a.clearCmd())
	a.root.AddCommand(a.presetCmd())
	a.root.AddCommand(a.showCmd())
	a.root.AddCommand(a.exportCmd())

	return a
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "weekendly %s (commit: %s)\n", Version, Commit)
		},
	}
}

// setup reloads the config when --config was given and starts logging.
func (a *App) setup(cmd *cobra.Command, _ []string) error {
	if cmd.Flags().Changed("config") || a.config == nil {
		cfg, err := config.LoadFrom(a.configPath)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		a.config = cfg
	}

	l, err := logger.Init(logger.Config{
		Debug: a.debug || a.config.Log.Debug,
		Dir:   a.config.Log.Dir,
	})
	if err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	a.logger = l
	return nil
}

// ensureStore loads the catalog, opens storage and hydrates the plan.
func (a *App) ensureStore() error {
	if a.store != nil {
		return nil
	}

	cat, err := catalog.Load(a.config.Catalog.Path)
	if err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}
	a.catalog = cat

	var kv persist.KV
	if a.ephemeral {
		kv = persist.NewMemoryKV()
	} else {
		repo, err := openDB(a.config.Storage.DBPath)
		if err != nil {
			return err
		}
		a.db = repo
		kv = repo
	}

	a.adapter = persist.New(kv, persist.WithKey(a.config.Storage.Key), persist.WithLogger(a.logger))

	opts := []plan.StoreOption{plan.WithPersister(a.adapter), plan.WithLogger(a.logger)}
	if state, ok := a.adapter.Load(context.Background()); ok {
		opts = append(opts, plan.WithState(state))
		a.logger.Debug("plan loaded", "blocks", len(state.Blocks))
	}
	a.store = plan.NewStore(opts...)
	return nil
}

func openDB(path string) (*db.SQLite, error) {
	if path == "" {
		return nil, fmt.Errorf("db path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}
	repo, err := db.New(path)
	if err != nil {
		return nil, fmt.Errorf("initializing database: %w", err)
	}
	return repo, nil
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}

// Close releases the database, if one was opened.
func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	err := a.db.Close()
	a.db = nil
	return err
}
