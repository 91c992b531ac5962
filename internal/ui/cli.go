package ui

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/slotpick/internal/calendar"
	"github.com/javiermolinar/slotpick/internal/config"
	"github.com/javiermolinar/slotpick/internal/db"
	"github.com/javiermolinar/slotpick/internal/tui"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	repo   calendar.Repository
	config *config.Config
	root   *cobra.Command
	debug  bool // Enable debug logging

	// opened is true when App opened repo itself and must close it.
	opened bool
}

// NewApp creates a new CLI application with the given repository and config.
// A nil repository is opened from the configured database on first use.
func NewApp(repo calendar.Repository, cfg *config.Config) *App {
	a := &App{repo: repo, config: cfg}

	var (
		viewName string
		rtl      bool
	)

	a.root = &cobra.Command{
		Use:   "slotpick",
		Short: "Pick day ranges on a terminal calendar with the mouse",
		Long: `Slotpick is a terminal calendar where you book day ranges by
dragging across the grid with the mouse.

Click a day or drag across days, type a title and press enter.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var opts []tui.ModelOption
			if viewName != "" {
				v, err := calendar.ParseView(viewName)
				if err != nil {
					return err
				}
				opts = append(opts, tui.WithView(v))
			}
			if cmd.Flags().Changed("rtl") {
				opts = append(opts, tui.WithRTL(rtl))
			}
			return tui.Run(a.repo, a.config, a.debug, opts...)
		},
	}

	a.root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging (writes "+tui.DebugLogPath+")")
	a.root.Flags().StringVar(&viewName, "view", "", "Initial view (month, week, grouped_week, work_week, day, agenda)")
	a.root.Flags().BoolVar(&rtl, "rtl", false, "Lay columns out right to left")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.eventsCmd())
	a.root.AddCommand(a.bookCmd())
	a.root.AddCommand(a.deleteCmd())
	a.root.AddCommand(a.importCmd())
	a.root.AddCommand(a.resolveCmd())

	return a
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "slotpick %s (commit: %s)\n", Version, Commit)
		},
	}
}

// ensureRepo opens the configured database unless a repository was given.
func (a *App) ensureRepo() error {
	if a.repo != nil {
		return nil
	}
	path := a.config.Storage.DBPath
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}
	repo, err := db.New(path)
	if err != nil {
		return fmt.Errorf("initializing database: %w", err)
	}
	a.repo = repo
	a.opened = true
	return nil
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}

// Close releases the database if App opened it.
func (a *App) Close() error {
	if a.opened && a.repo != nil {
		a.opened = false
		return a.repo.Close()
	}
	return nil
}
