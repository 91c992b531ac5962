package grid

import "time"

// SlotsInfo is a selection mapped back onto dates.
type SlotsInfo struct {
	Slots  []time.Time
	Start  time.Time
	End    time.Time
	Action Action
	Group  any
}

// Dates returns dates[start..end]. It reports false when the indices do
// not address the slice.
func Dates(dates []time.Time, start, end int) ([]time.Time, bool) {
	if start < 0 || end < start || end >= len(dates) {
		return nil, false
	}
	out := make([]time.Time, end-start+1)
	copy(out, dates[start:end+1])
	return out, true
}

// AllDaySlots maps a completed selection onto the dates shown by the grid.
func AllDaySlots(dates []time.Time, info SlotInfo) (SlotsInfo, bool) {
	slots, ok := Dates(dates, info.Start, info.End)
	if !ok {
		return SlotsInfo{}, false
	}
	return SlotsInfo{
		Slots:  slots,
		Start:  slots[0],
		End:    slots[len(slots)-1],
		Action: info.Action,
		Group:  info.Group,
	}, true
}
