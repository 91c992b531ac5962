package tui

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/slotpick/internal/dateutil"
	"github.com/javiermolinar/slotpick/internal/geometry"
	"github.com/javiermolinar/slotpick/internal/grid"
	"github.com/javiermolinar/slotpick/internal/selection"
)

// DebugLogger logs keystrokes, pointer traffic, and selections to a file.
type DebugLogger struct {
	mu      sync.Mutex
	file    *os.File
	enabled bool
	seq     int
}

// Global debug logger instance
var debugLog *DebugLogger

// DebugLogPath is the fixed path for debug logs
const DebugLogPath = "slotpick-debug.log"

// InitDebugLogger initializes the debug logger if debug mode is enabled.
func InitDebugLogger(enabled bool) error {
	if !enabled {
		debugLog = &DebugLogger{enabled: false}
		return nil
	}

	f, err := os.Create(DebugLogPath)
	if err != nil {
		return fmt.Errorf("creating debug log: %w", err)
	}

	debugLog = &DebugLogger{
		file:    f,
		enabled: true,
	}

	debugLog.log("DEBUG_START", map[string]any{
		"log_file": DebugLogPath,
		"time":     time.Now().Format(time.RFC3339),
	})

	return nil
}

// CloseDebugLogger closes the debug log file.
func CloseDebugLogger() {
	if debugLog != nil && debugLog.file != nil {
		debugLog.log("DEBUG_END", map[string]any{
			"time": time.Now().Format(time.RFC3339),
		})
		_ = debugLog.file.Close()
	}
}

func debugEnabled() bool {
	return debugLog != nil && debugLog.enabled
}

// log writes a structured log entry.
func (d *DebugLogger) log(event string, data map[string]any) {
	if d == nil || !d.enabled || d.file == nil {
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	d.seq++
	entry := map[string]any{
		"seq":   d.seq,
		"ts":    time.Now().Format("15:04:05.000"),
		"event": event,
	}
	for k, v := range data {
		entry[k] = v
	}

	b, _ := json.Marshal(entry)
	_, _ = fmt.Fprintf(d.file, "%s\n", b)
}

// LogKeyPress logs a key press event.
func LogKeyPress(msg tea.KeyMsg) {
	if !debugEnabled() {
		return
	}
	debugLog.log("KEY_PRESS", map[string]any{
		"key": msg.String(),
	})
}

// LogPointer logs a pointer event before it reaches the hub. Motion
// without a held button is dropped to keep the log readable.
func LogPointer(p selection.Pointer) {
	if !debugEnabled() || (p.Kind == selection.PointerMove && p.Button == selection.ButtonNone) {
		return
	}
	debugLog.log("POINTER", map[string]any{
		"kind": p.Kind.String(),
		"x":    p.Point.X,
		"y":    p.Point.Y,
	})
}

// LogGesture logs a drag box at a gesture transition.
func LogGesture(phase string, box geometry.DragBox) {
	if !debugEnabled() {
		return
	}
	debugLog.log("GESTURE", map[string]any{
		"phase":  phase,
		"top":    box.Top,
		"left":   box.Left,
		"right":  box.Right,
		"bottom": box.Bottom,
		"origin": []int{box.Origin.X, box.Origin.Y},
	})
}

// LogSlotSelected logs a completed selection and the dates it maps to.
func LogSlotSelected(info grid.SlotInfo, slots grid.SlotsInfo) {
	if !debugEnabled() {
		return
	}
	debugLog.log("SLOT_SELECTED", map[string]any{
		"action":     string(info.Action),
		"start_idx":  info.Start,
		"end_idx":    info.End,
		"is_start":   info.IsStart,
		"is_current": info.IsCurrent,
		"group":      fmt.Sprint(info.Group),
		"start":      dateutil.FormatDate(slots.Start),
		"end":        dateutil.FormatDate(slots.End),
	})
}

// LogModeChange logs a mode change.
func LogModeChange(from, to Mode, reason string) {
	if !debugEnabled() {
		return
	}
	debugLog.log("MODE_CHANGE", map[string]any{
		"from":   from.String(),
		"to":     to.String(),
		"reason": reason,
	})
}

// LogLayout logs the boxes controllers will measure after a rebuild.
func LogLayout(l Layout) {
	if !debugEnabled() {
		return
	}
	rows := make([][]int, 0, len(l.Rows))
	for _, r := range l.Rows {
		rows = append(rows, []int{r.Box.Top, r.Box.Left, r.Box.Right, r.Box.Bottom})
	}
	bands := make([][]int, 0, len(l.Bands))
	for _, b := range l.Bands {
		bands = append(bands, []int{b.Box.Top, b.Box.Left, b.Box.Right, b.Box.Bottom})
	}
	debugLog.log("LAYOUT", map[string]any{
		"view":   l.View.String(),
		"cols":   l.Cols,
		"col_w":  l.ColW,
		"rtl":    l.RTL,
		"rows":   rows,
		"bands":  bands,
		"events": len(l.Segs),
	})
}

// LogError logs an error.
func LogError(context string, err error) {
	if !debugEnabled() {
		return
	}
	debugLog.log("ERROR", map[string]any{
		"context": context,
		"error":   err.Error(),
	})
}
