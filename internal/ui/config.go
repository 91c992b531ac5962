package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/slotpick/internal/calendar"
	"github.com/javiermolinar/slotpick/internal/config"
	"github.com/javiermolinar/slotpick/internal/grid"
	"github.com/javiermolinar/slotpick/internal/tui/theme"
)

func (a *App) configCmd() *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		Long: `Show the configuration after defaults, the config file and
SLOTPICK_* environment overrides have been applied.

Example:
  slotpick config
  slotpick config init
  slotpick config edit`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "Config file: %s\n\n", path)
			printConfig(cmd.OutOrStdout(), a.config)
			return nil
		},
	}
	cmd.PersistentFlags().StringVar(&path, "path", config.DefaultConfigPath(), "Config file path")

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with default values",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigInit(cmd.OutOrStdout(), path, force)
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")
	cmd.AddCommand(initCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "edit",
		Short: "Edit the configuration interactively",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigInteractive(cmd.InOrStdin(), cmd.OutOrStdout(), path)
		},
	})

	return cmd
}

func runConfigInit(w io.Writer, path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("config file already exists: %s (use --force to overwrite)", path)
	}
	if err := config.Default().SaveTo(path); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}
	fmt.Fprintf(w, "Created %s\n", path)
	return nil
}

func runConfigInteractive(in io.Reader, w io.Writer, path string) error {
	cfg, err := config.LoadFrom(path)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	printConfig(w, cfg)
	fmt.Fprintln(w)

	reader := bufio.NewReader(in)
	cfg.Calendar.View = promptChoice(reader, w, "View", cfg.Calendar.View, viewNames(), func(s string) bool {
		_, err := calendar.ParseView(s)
		return err == nil
	})
	cfg.Calendar.WeekStart = promptValue(reader, w, "Week start", cfg.Calendar.WeekStart)
	cfg.Calendar.Selectable = promptChoice(reader, w, "Selectable", cfg.Calendar.Selectable, []string{"on", "off", "ignore_events"}, func(s string) bool {
		_, err := grid.ParseSelectable(s)
		return err == nil
	})
	cfg.Calendar.RTL = promptBool(reader, w, "Right to left", cfg.Calendar.RTL)
	cfg.Storage.DBPath = promptValue(reader, w, "Database path", cfg.Storage.DBPath)
	cfg.UI.Theme = promptChoice(reader, w, "UI theme", cfg.UI.Theme, theme.Available(), theme.IsAvailable)

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if err := cfg.SaveTo(path); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Fprintln(w, "\nConfiguration saved!")
	return nil
}

func printConfig(w io.Writer, cfg *config.Config) {
	fmt.Fprintln(w, formatHeader("Current configuration:"))
	fmt.Fprintln(w, "──────────────────────")
	fmt.Fprintln(w, "[calendar]")
	fmt.Fprintf(w, "  view            = %s\n", cfg.Calendar.View)
	fmt.Fprintf(w, "  week_start      = %s\n", cfg.Calendar.WeekStart)
	fmt.Fprintf(w, "  rtl             = %t\n", cfg.Calendar.RTL)
	fmt.Fprintf(w, "  selectable      = %s\n", cfg.Calendar.Selectable)
	fmt.Fprintf(w, "  click_tolerance = %d\n", cfg.Calendar.ClickTolerance)
	for _, g := range cfg.Calendar.Groups {
		fmt.Fprintf(w, "  group           = %s %s\n", g.Value, formatMuted(g.Description))
	}
	fmt.Fprintln(w, "\n[storage]")
	fmt.Fprintf(w, "  db_path         = %s\n", cfg.Storage.DBPath)
	fmt.Fprintln(w, "\n[ui]")
	fmt.Fprintf(w, "  theme           = %s\n", cfg.UI.Theme)
}

func viewNames() []string {
	names := make([]string, 0, len(calendar.Views))
	for _, v := range calendar.Views {
		names = append(names, v.String())
	}
	return names
}

func promptValue(reader *bufio.Reader, w io.Writer, label, current string) string {
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

func promptBool(reader *bufio.Reader, w io.Writer, label string, current bool) bool {
	for {
		value := promptValue(reader, w, label+" (true/false)", strconv.FormatBool(current))
		b, err := strconv.ParseBool(value)
		if err == nil {
			return b
		}
		fmt.Fprintf(w, "  Invalid value %q\n", value)
	}
}

// promptChoice asks until valid accepts the answer. An empty answer keeps
// current, and input ending early keeps current as well.
func promptChoice(reader *bufio.Reader, w io.Writer, label, current string, options []string, valid func(string) bool) string {
	joined := strings.Join(options, ", ")
	full := fmt.Sprintf("%s (%s)", label, joined)
	for {
		value := strings.ToLower(promptValue(reader, w, full, current))
		if valid(value) {
			return value
		}
		if _, err := reader.Peek(1); err != nil {
			return current
		}
		fmt.Fprintf(w, "  Invalid %s %q. Available: %s\n", strings.ToLower(label), value, joined)
	}
}
