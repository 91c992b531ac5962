// Package config handles configuration loading from files, defaults, and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/javiermolinar/slotpick/internal/calendar"
	"github.com/javiermolinar/slotpick/internal/dateutil"
	"github.com/javiermolinar/slotpick/internal/grid"
)

// Config holds the application configuration.
type Config struct {
	Calendar CalendarConfig `toml:"calendar"`
	Storage  StorageConfig  `toml:"storage"`
	UI       UIConfig       `toml:"ui"`
}

// CalendarConfig holds the grid and selection settings.
type CalendarConfig struct {
	View           string        `toml:"view"`            // month, week, grouped_week, work_week, day, agenda
	WeekStart      string        `toml:"week_start"`      // e.g., "sunday"
	RTL            bool          `toml:"rtl"`             // mirror columns right to left
	Selectable     string        `toml:"selectable"`      // off, on, ignore_events
	ClickTolerance int           `toml:"click_tolerance"` // cells the pointer may travel before a press becomes a drag
	Groups         []GroupConfig `toml:"groups"`
}

// GroupConfig is one column band in the grouped week view.
type GroupConfig struct {
	Value       string `toml:"value"`
	Description string `toml:"description"`
}

// StorageConfig holds database settings.
type StorageConfig struct {
	DBPath string `toml:"db_path"`
}

// UIConfig holds TUI settings.
type UIConfig struct {
	Theme string `toml:"theme"` // "mocha", "frappe", "latte"
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Calendar: CalendarConfig{
			View:       string(calendar.ViewMonth),
			WeekStart:  "sunday",
			Selectable: grid.SelectableOn.String(),
		},
		Storage: StorageConfig{
			DBPath: defaultDBPath(),
		},
		UI: UIConfig{
			Theme: "mocha",
		},
	}
}

// defaultDBPath returns the default database path.
func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "slotpick.db"
	}
	return filepath.Join(home, ".local", "share", "slotpick", "slotpick.db")
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "slotpick", "config.toml")
}

// Load loads configuration from the default path, merging with defaults and env vars.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigPath())
}

// LoadFrom loads configuration from the specified path.
// It starts with defaults, overlays file config if it exists, then applies env overrides.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if err := loadFromFile(path, cfg); err != nil {
		return nil, err
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	cfg.Storage.DBPath = expandPath(cfg.Storage.DBPath)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// loadFromFile loads config from a file if it exists.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
// Environment variables take precedence over file config.
func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("SLOTPICK_VIEW"); v != "" {
		cfg.Calendar.View = v
	}
	if v := os.Getenv("SLOTPICK_SELECTABLE"); v != "" {
		cfg.Calendar.Selectable = v
	}
	if v := os.Getenv("SLOTPICK_RTL"); v != "" {
		rtl, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("SLOTPICK_RTL: %w", err)
		}
		cfg.Calendar.RTL = rtl
	}
	if v := os.Getenv("SLOTPICK_CLICK_TOLERANCE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("SLOTPICK_CLICK_TOLERANCE: %w", err)
		}
		cfg.Calendar.ClickTolerance = n
	}
	if v := os.Getenv("SLOTPICK_DB_PATH"); v != "" {
		cfg.Storage.DBPath = v
	}
	if v := os.Getenv("SLOTPICK_UI_THEME"); v != "" {
		cfg.UI.Theme = v
	}
	return nil
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if _, err := calendar.ParseView(c.Calendar.View); err != nil {
		return err
	}
	if _, err := dateutil.ParseWeekday(c.Calendar.WeekStart); err != nil {
		return fmt.Errorf("week_start %q: %w", c.Calendar.WeekStart, err)
	}
	if _, err := grid.ParseSelectable(c.Calendar.Selectable); err != nil {
		return err
	}
	if c.Calendar.ClickTolerance < 0 {
		return errors.New("click_tolerance must not be negative")
	}
	seen := make(map[string]bool, len(c.Calendar.Groups))
	for _, g := range c.Calendar.Groups {
		if g.Value == "" {
			return errors.New("group value must be set")
		}
		if seen[g.Value] {
			return fmt.Errorf("duplicate group value: %s", g.Value)
		}
		seen[g.Value] = true
	}
	if c.Storage.DBPath == "" {
		return errors.New("db_path must be set")
	}
	return nil
}

// View returns the configured view. Call after Validate.
func (c *Config) View() calendar.View {
	v, err := calendar.ParseView(c.Calendar.View)
	if err != nil {
		return calendar.ViewMonth
	}
	return v
}

// WeekStart returns the configured first day of the week.
func (c *Config) WeekStart() time.Weekday {
	d, _ := dateutil.ParseWeekday(c.Calendar.WeekStart)
	return d
}

// Selectable returns the configured selection mode.
func (c *Config) Selectable() grid.Selectable {
	s, err := grid.ParseSelectable(c.Calendar.Selectable)
	if err != nil {
		return grid.SelectableOn
	}
	return s
}

// Groups returns the configured column groups.
func (c *Config) Groups() []grid.Group {
	groups := make([]grid.Group, 0, len(c.Calendar.Groups))
	for _, g := range c.Calendar.Groups {
		groups = append(groups, grid.Group{Value: g.Value, Description: g.Description})
	}
	return groups
}

// Save writes the configuration to the default path.
func (c *Config) Save() error {
	return c.SaveTo(DefaultConfigPath())
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
