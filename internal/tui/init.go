package tui

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/javiermolinar/slotpick/internal/calendar"
	"github.com/javiermolinar/slotpick/internal/db"
)

// openRepo opens the event store at dbPath, creating its directory.
func openRepo(dbPath string) (calendar.Repository, error) {
	if dbPath == "" {
		return nil, fmt.Errorf("db path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}
	repo, err := db.New(dbPath)
	if err != nil {
		return nil, fmt.Errorf("initializing database: %w", err)
	}
	return repo, nil
}
