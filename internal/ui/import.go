package ui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/slotpick/internal/calendar"
	"github.com/javiermolinar/slotpick/internal/db"
)

func (a *App) importCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import [database_path]",
		Short: "Import events from another database",
		Long: `Import all events from another slotpick database into the current one.
Events already present with the same title, days and group are skipped.

Example:
  slotpick import /path/to/other.db`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sourcePath, err := resolvePath(args[0])
			if err != nil {
				return err
			}
			destPath, err := resolvePath(a.config.Storage.DBPath)
			if err != nil {
				return err
			}

			if sourcePath == destPath {
				return fmt.Errorf("source database matches current database")
			}

			info, err := os.Stat(sourcePath)
			if err != nil {
				if os.IsNotExist(err) {
					return fmt.Errorf("source database does not exist: %s", sourcePath)
				}
				return fmt.Errorf("checking source database: %w", err)
			}
			if info.IsDir() {
				return fmt.Errorf("source database path is a directory: %s", sourcePath)
			}

			if err := a.ensureRepo(); err != nil {
				return err
			}
			count, err := importEvents(context.Background(), a.repo, sourcePath)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d events from %s\n", count, sourcePath)
			return nil
		},
	}

	return cmd
}

// eventKey identifies an event by what it books rather than by id.
type eventKey struct {
	title, group, span string
}

func keyOf(e *calendar.Event) eventKey {
	return eventKey{e.Title, e.Group, spanText(e)}
}

func importEvents(ctx context.Context, dest calendar.Repository, sourcePath string) (int, error) {
	sourceRepo, err := db.New(sourcePath)
	if err != nil {
		return 0, fmt.Errorf("opening source database: %w", err)
	}
	defer func() { _ = sourceRepo.Close() }()

	events, err := sourceRepo.ListAllEvents(ctx)
	if err != nil {
		return 0, fmt.Errorf("listing source events: %w", err)
	}

	imported := 0
	for _, source := range events {
		existing, err := dest.ListEventsByDateRange(ctx, source.Start, source.End)
		if err != nil {
			return imported, fmt.Errorf("checking existing events: %w", err)
		}
		if containsEvent(existing, source) {
			continue
		}

		e := &calendar.Event{
			Title:     source.Title,
			Group:     source.Group,
			Start:     source.Start,
			End:       source.End,
			AllDay:    source.AllDay,
			Action:    source.Action,
			CreatedAt: source.CreatedAt,
		}
		if err := dest.CreateEvent(ctx, e); err != nil {
			return imported, fmt.Errorf("importing event %q: %w", source.Title, err)
		}
		imported++
	}

	return imported, nil
}

func containsEvent(events []*calendar.Event, e *calendar.Event) bool {
	want := keyOf(e)
	for _, other := range events {
		if keyOf(other) == want {
			return true
		}
	}
	return false
}

func resolvePath(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", fmt.Errorf("empty path")
	}

	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolving home directory: %w", err)
		}
		path = filepath.Join(home, path[2:])
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolving path: %w", err)
	}

	return absPath, nil
}
