package db

import "fmt"

// migrate runs database migrations.
func (s *SQLite) migrate() error {
	query := `
		CREATE TABLE IF NOT EXISTS events (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			title       TEXT NOT NULL,
			group_value TEXT NOT NULL DEFAULT '',
			start_date  DATE NOT NULL,
			end_date    DATE NOT NULL,
			all_day     INTEGER NOT NULL DEFAULT 1,
			action      TEXT NOT NULL DEFAULT 'select' CHECK(action IN ('click', 'select')),
			created_at  DATETIME DEFAULT CURRENT_TIMESTAMP,
			CHECK(end_date >= start_date)
		);

		CREATE INDEX IF NOT EXISTS idx_events_span ON events(start_date, end_date);
	`

	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("creating events table: %w", err)
	}

	return nil
}
