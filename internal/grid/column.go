package grid

import (
	"github.com/javiermolinar/slotpick/internal/cellindex"
	"github.com/javiermolinar/slotpick/internal/geometry"
	"github.com/javiermolinar/slotpick/internal/selection"
)

// ColumnConfig configures a ColumnController.
type ColumnConfig struct {
	// Node measures the whole band of day columns.
	Node geometry.Bounder
	// Container scopes which presses start a gesture.
	Container geometry.Bounder

	Columns    int
	RTL        bool
	Group      any
	Selectable Selectable
	Events     EventHitTester
	Options    selection.Options

	OnSelectSlot func(SlotInfo)
}

// ColumnController highlights the day columns a drag crosses in a time
// grid. Columns are resolved horizontally only; the time of day under the
// pointer is not resolved.
type ColumnController struct {
	cfg    ColumnConfig
	hub    *selection.Hub
	engine *selection.Engine
	state  GestureState

	// bounds is measured once at the start of each gesture.
	bounds   geometry.Box
	measured bool
}

// NewColumnController creates a controller. It does nothing until attached.
func NewColumnController(cfg ColumnConfig) *ColumnController {
	return &ColumnController{cfg: cfg, state: emptyState()}
}

// Attach starts listening on hub when the grid is selectable.
func (c *ColumnController) Attach(hub *selection.Hub) {
	c.hub = hub
	c.Teardown()
	if c.cfg.Selectable == SelectableOff || hub == nil {
		return
	}

	e := selection.New(c.cfg.Container, c.cfg.Options)
	e.On(selection.Handlers{
		MouseDown:   c.mouseDown,
		SelectStart: c.maybeSelect,
		Selecting:   c.maybeSelect,
		Click:       c.click,
		Select:      c.selectEnd,
		Reset:       c.reset,
	})
	e.Attach(hub)
	c.engine = e
}

// Teardown stops listening and clears any gesture. Safe to call repeatedly.
func (c *ColumnController) Teardown() {
	if c.engine != nil {
		c.engine.Teardown()
		c.engine = nil
	}
	c.reset()
}

// Attached reports whether the controller is listening for gestures.
func (c *ColumnController) Attached() bool {
	return c.engine != nil && c.engine.Attached()
}

// SetSelectable switches the mode, attaching or tearing down as needed.
func (c *ColumnController) SetSelectable(mode Selectable) {
	was := c.cfg.Selectable
	c.cfg.Selectable = mode
	switch {
	case mode != SelectableOff && was == SelectableOff:
		c.Attach(c.hub)
	case mode == SelectableOff && was != SelectableOff:
		c.Teardown()
	}
}

// SetColumns changes the number of day columns.
func (c *ColumnController) SetColumns(n int) {
	c.cfg.Columns = n
}

// State returns a snapshot of the gesture state.
func (c *ColumnController) State() GestureState {
	return c.state
}

func (c *ColumnController) mouseDown(p geometry.Point) bool {
	return allowPress(c.cfg.Selectable, c.cfg.Events, p)
}

// dayBounds slices the measured bounds into the box of physical column i.
// The slices match the columns a click resolves to.
func (c *ColumnController) dayBounds(i int) geometry.Box {
	width := cellindex.SlotWidth(c.bounds, c.cfg.Columns)
	day := c.bounds
	day.Left = cellindex.ColumnLeft(c.bounds, i, width, c.cfg.Columns)
	day.Right = cellindex.ColumnLeft(c.bounds, i+1, width, c.cfg.Columns)
	return day
}

// logical maps a physical column to its index in the date range.
func (c *ColumnController) logical(i int) int {
	if c.cfg.RTL {
		return c.cfg.Columns - 1 - i
	}
	return i
}

func (c *ColumnController) maybeSelect(box geometry.DragBox) {
	if !c.state.Selecting {
		c.bounds, c.measured = geometry.BoundsOf(c.cfg.Node)
	}

	next := GestureState{
		Selecting:    true,
		StartIdx:     -1,
		EndIdx:       -1,
		SelectedDays: make(map[int]bool),
	}

	if c.measured && c.cfg.Columns > 0 && c.engine != nil && c.engine.IsSelected(c.cfg.Node) {
		tolerance := c.cfg.Options.CollideTolerance
		for i := 0; i < c.cfg.Columns; i++ {
			day := c.dayBounds(i)
			if !geometry.Collide(box.Box, day, tolerance) {
				continue
			}
			idx := c.logical(i)
			next.SelectedDays[idx] = true
			if next.StartIdx == -1 || idx < next.StartIdx {
				next.StartIdx = idx
			}
			if idx > next.EndIdx {
				next.EndIdx = idx
			}
			if day.HasCell(box.Origin) {
				next.IsStart = true
			}
		}
		next.IsCurrent = c.bounds.HasCell(box.Current)
	}

	c.state = next
}

func (c *ColumnController) click(p geometry.Point) {
	defer c.reset()

	if eventAt(c.cfg.Events, p) || c.cfg.Columns <= 0 {
		return
	}
	bounds, ok := geometry.BoundsOf(c.cfg.Node)
	if !ok || !bounds.HasCell(p) {
		return
	}

	width := cellindex.SlotWidth(bounds, c.cfg.Columns)
	cell := cellindex.CellAtX(bounds, p.X, width, c.cfg.RTL, c.cfg.Columns)
	c.notify(cellindex.Range{StartIdx: cell, EndIdx: cell, IsStart: true, IsCurrent: true}, ActionClick)
}

func (c *ColumnController) selectEnd(geometry.DragBox) {
	if c.state.Selecting {
		c.notify(c.state.Range(), ActionSelect)
	}
	c.reset()
}

func (c *ColumnController) reset() {
	c.state = emptyState()
	c.measured = false
}

func (c *ColumnController) notify(r cellindex.Range, action Action) {
	if !r.Valid() || c.cfg.OnSelectSlot == nil {
		return
	}
	c.cfg.OnSelectSlot(SlotInfo{
		Start:     r.StartIdx,
		End:       r.EndIdx,
		Action:    action,
		IsStart:   r.IsStart,
		IsCurrent: r.IsCurrent,
		Group:     c.cfg.Group,
	})
}
