package calendar

import "github.com/javiermolinar/slotpick/internal/grid"

// Band is the slice of events rendered under one group.
type Band struct {
	Group  grid.Group
	Events []*Event
}

// Bands partitions events by group. Every configured group gets a band,
// in order, even when empty. A trailing ungrouped band is added only when
// some event matches no configured group.
func Bands(groups []grid.Group, events []*Event) []Band {
	bands := make([]Band, len(groups))
	index := make(map[string]int, len(groups))
	for i, g := range groups {
		bands[i].Group = g
		index[GroupKey(g.Value)] = i
	}

	var rest []*Event
	for _, e := range events {
		if i, ok := index[e.Group]; ok && e.Group != "" {
			bands[i].Events = append(bands[i].Events, e)
			continue
		}
		rest = append(rest, e)
	}
	if len(rest) > 0 {
		bands = append(bands, Band{Events: rest})
	}
	return bands
}
