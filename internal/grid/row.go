package grid

import (
	"github.com/javiermolinar/slotpick/internal/cellindex"
	"github.com/javiermolinar/slotpick/internal/geometry"
	"github.com/javiermolinar/slotpick/internal/selection"
)

// RowConfig configures a RowController.
type RowConfig struct {
	// Node measures the row itself.
	Node geometry.Bounder
	// Container scopes which presses start a gesture. Rows of one month
	// share the month container so a drag can cross them.
	Container geometry.Bounder

	Columns    int
	RTL        bool
	Group      any
	Selectable Selectable
	Events     EventHitTester
	Options    selection.Options

	OnSelectSlot  func(SlotInfo)
	OnSelectStart func(box geometry.DragBox)
	OnSelectEnd   func(state GestureState)
}

// RowController resolves gestures over a single row of day cells.
type RowController struct {
	cfg     RowConfig
	hub     *selection.Hub
	engine  *selection.Engine
	state   GestureState
	initial geometry.Point
}

// NewRowController creates a controller. It does nothing until attached.
func NewRowController(cfg RowConfig) *RowController {
	return &RowController{cfg: cfg, state: emptyState()}
}

// Attach starts listening on hub when the row is selectable.
func (c *RowController) Attach(hub *selection.Hub) {
	c.hub = hub
	c.Teardown()
	if c.cfg.Selectable == SelectableOff || hub == nil {
		return
	}

	e := selection.New(c.cfg.Container, c.cfg.Options)
	e.On(selection.Handlers{
		MouseDown: c.mouseDown,
		Selecting: c.selecting,
		Click:     c.click,
		Select:    c.selectEnd,
		Reset:     c.reset,
	})
	e.Attach(hub)
	c.engine = e
}

// Teardown stops listening and clears any gesture. Safe to call repeatedly.
func (c *RowController) Teardown() {
	if c.engine != nil {
		c.engine.Teardown()
		c.engine = nil
	}
	c.reset()
}

// Attached reports whether the controller is listening for gestures.
func (c *RowController) Attached() bool {
	return c.engine != nil && c.engine.Attached()
}

// SetSelectable switches the mode, attaching or tearing down as needed.
func (c *RowController) SetSelectable(mode Selectable) {
	was := c.cfg.Selectable
	c.cfg.Selectable = mode
	switch {
	case mode != SelectableOff && was == SelectableOff:
		c.Attach(c.hub)
	case mode == SelectableOff && was != SelectableOff:
		c.Teardown()
	}
}

// SetColumns changes the number of cells in the row.
func (c *RowController) SetColumns(n int) {
	c.cfg.Columns = n
}

// State returns a snapshot of the gesture state.
func (c *RowController) State() GestureState {
	return c.state
}

func (c *RowController) mouseDown(p geometry.Point) bool {
	return allowPress(c.cfg.Selectable, c.cfg.Events, p)
}

func (c *RowController) selecting(box geometry.DragBox) {
	if !c.state.Selecting {
		if c.cfg.OnSelectStart != nil {
			c.cfg.OnSelectStart(box)
		}
		c.initial = box.Origin
	}

	r := cellindex.None
	if c.engine != nil && c.engine.IsSelected(c.cfg.Node) {
		if rowBox, ok := geometry.BoundsOf(c.cfg.Node); ok {
			r = cellindex.GroupedCellSelection(c.initial, rowBox, box, c.cfg.Columns, c.cfg.RTL)
		}
	}

	c.state = GestureState{
		Selecting: true,
		StartIdx:  r.StartIdx,
		EndIdx:    r.EndIdx,
		IsStart:   r.IsStart,
		IsCurrent: r.IsCurrent,
	}
}

func (c *RowController) click(p geometry.Point) {
	defer c.reset()

	if eventAt(c.cfg.Events, p) || c.cfg.Columns <= 0 {
		return
	}
	rowBox, ok := geometry.BoundsOf(c.cfg.Node)
	if !ok || !rowBox.HasCell(p) {
		return
	}

	width := cellindex.SlotWidth(rowBox, c.cfg.Columns)
	cell := cellindex.CellAtX(rowBox, p.X, width, c.cfg.RTL, c.cfg.Columns)
	c.selectSlot(cellindex.Range{StartIdx: cell, EndIdx: cell, IsStart: true, IsCurrent: true}, ActionClick)
}

func (c *RowController) selectEnd(geometry.DragBox) {
	final := c.state
	c.selectSlot(final.Range(), ActionSelect)
	c.reset()
	if c.cfg.OnSelectEnd != nil {
		c.cfg.OnSelectEnd(final)
	}
}

func (c *RowController) reset() {
	c.state = emptyState()
	c.initial = geometry.Point{}
}

func (c *RowController) selectSlot(r cellindex.Range, action Action) {
	if r.StartIdx == -1 || r.EndIdx == -1 || c.cfg.OnSelectSlot == nil {
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
