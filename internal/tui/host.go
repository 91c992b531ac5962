package tui

import (
	"slices"
	"sort"
	"time"

	zone "github.com/lrstanley/bubblezone"

	"github.com/javiermolinar/slotpick/internal/geometry"
	"github.com/javiermolinar/slotpick/internal/grid"
	"github.com/javiermolinar/slotpick/internal/selection"
)

// hostConfig carries the settings every controller is built with.
type hostConfig struct {
	rtl        bool
	selectable grid.Selectable
	opts       selection.Options
	zones      *zone.Manager
	ids        zoneIDs
}

type rowBinding struct {
	ctrl  *grid.RowController
	dates []time.Time
}

type bandBinding struct {
	ctrl  *grid.ColumnController
	dates []time.Time
}

// selectionHost owns the pointer hub and the controllers bound to the
// current layout. Completed selections queue up in pending until the
// model drains them after a dispatch. Month rows share one gesture and
// their pieces are merged; each group band is evaluated on its own, so
// only the band holding the gesture origin reports.
type selectionHost struct {
	hub     *selection.Hub
	rows    []rowBinding
	bands   []bandBinding
	pending []grid.SlotsInfo
}

func newSelectionHost() *selectionHost {
	return &selectionHost{hub: selection.NewHub()}
}

// rebuild tears down the controllers of the previous layout and binds new
// ones to l.
func (h *selectionHost) rebuild(l Layout, cfg hostConfig) {
	h.teardown()
	h.pending = nil

	events := grid.EventHitFunc(func(p geometry.Point) bool {
		for i, s := range l.Segs {
			box, ok := zoneBox{zones: cfg.zones, id: cfg.ids.seg(i), fallback: s.Box}.Bounds()
			if ok && box.HasCell(p) {
				return true
			}
		}
		return false
	})

	rowGrid := zoneBox{zones: cfg.zones, id: cfg.ids.rowGrid(), fallback: l.RowGrid}
	for i, r := range l.Rows {
		dates := r.Dates
		ctrl := grid.NewRowController(grid.RowConfig{
			Node:       zoneBox{zones: cfg.zones, id: cfg.ids.row(i), fallback: r.Box},
			Container:  rowGrid,
			Columns:    l.Cols,
			RTL:        cfg.rtl,
			Selectable: cfg.selectable,
			Events:     events,
			Options:    cfg.opts,
			OnSelectSlot: func(info grid.SlotInfo) {
				h.enqueue(dates, info)
			},
			OnSelectStart: func(box geometry.DragBox) {
				LogGesture("select_start", box)
			},
		})
		ctrl.Attach(h.hub)
		h.rows = append(h.rows, rowBinding{ctrl: ctrl, dates: dates})
	}

	bandGrid := zoneBox{zones: cfg.zones, id: cfg.ids.bandGrid(), fallback: l.BandGrid}
	for i, b := range l.Bands {
		dates := b.Dates
		ctrl := grid.NewColumnController(grid.ColumnConfig{
			Node:       zoneBox{zones: cfg.zones, id: cfg.ids.band(i), fallback: b.Box},
			Container:  bandGrid,
			Columns:    l.Cols,
			RTL:        cfg.rtl,
			Group:      b.Group.Value,
			Selectable: cfg.selectable,
			Events:     events,
			Options:    cfg.opts,
			OnSelectSlot: func(info grid.SlotInfo) {
				if !info.IsStart {
					return
				}
				h.enqueue(dates, info)
			},
		})
		ctrl.Attach(h.hub)
		h.bands = append(h.bands, bandBinding{ctrl: ctrl, dates: dates})
	}
}

func (h *selectionHost) enqueue(dates []time.Time, info grid.SlotInfo) {
	slots, ok := grid.AllDaySlots(dates, info)
	if !ok {
		return
	}
	LogSlotSelected(info, slots)
	h.pending = append(h.pending, slots)
}

// dispatch feeds p to every attached controller and returns the
// selections it completed.
func (h *selectionHost) dispatch(p selection.Pointer) []grid.SlotsInfo {
	h.hub.Dispatch(p)
	out := h.pending
	h.pending = nil
	return out
}

func (h *selectionHost) setSelectable(mode grid.Selectable) {
	for _, r := range h.rows {
		r.ctrl.SetSelectable(mode)
	}
	for _, b := range h.bands {
		b.ctrl.SetSelectable(mode)
	}
}

func (h *selectionHost) teardown() {
	for _, r := range h.rows {
		r.ctrl.Teardown()
	}
	for _, b := range h.bands {
		b.ctrl.Teardown()
	}
	h.rows = nil
	h.bands = nil
}

// rowState is the gesture state of row i, used to paint the drag.
func (h *selectionHost) rowState(i int) grid.GestureState {
	if i < 0 || i >= len(h.rows) {
		return grid.GestureState{StartIdx: -1, EndIdx: -1}
	}
	return h.rows[i].ctrl.State()
}

func (h *selectionHost) bandState(i int) grid.GestureState {
	if i < 0 || i >= len(h.bands) {
		return grid.GestureState{StartIdx: -1, EndIdx: -1}
	}
	return h.bands[i].ctrl.State()
}

// mergeSlots joins the pieces one gesture produced across month rows into
// a single selection. Dates present in more than one piece appear once.
func mergeSlots(parts []grid.SlotsInfo) (grid.SlotsInfo, bool) {
	if len(parts) == 0 {
		return grid.SlotsInfo{}, false
	}
	if len(parts) == 1 {
		return parts[0], true
	}
	out := grid.SlotsInfo{Action: grid.ActionSelect, Group: parts[0].Group}
	for _, p := range parts {
		out.Slots = append(out.Slots, p.Slots...)
	}
	sort.Slice(out.Slots, func(i, j int) bool { return out.Slots[i].Before(out.Slots[j]) })
	out.Slots = slices.CompactFunc(out.Slots, func(a, b time.Time) bool { return a.Equal(b) })
	out.Start = out.Slots[0]
	out.End = out.Slots[len(out.Slots)-1]
	return out, true
}
