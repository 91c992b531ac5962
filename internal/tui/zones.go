package tui

import (
	"fmt"

	zone "github.com/lrstanley/bubblezone"

	"github.com/javiermolinar/slotpick/internal/geometry"
)

// zoneBox measures a rendered element. It prefers the live position that
// bubblezone recorded for id during the last render and falls back to the
// layout box when the zone is unknown, e.g. before the first frame or in
// tests that run without a zone manager.
type zoneBox struct {
	zones    *zone.Manager
	id       string
	fallback geometry.Box
}

func (z zoneBox) Bounds() (geometry.Box, bool) {
	if z.zones != nil {
		if info := z.zones.Get(z.id); info != nil && !info.IsZero() {
			return geometry.Box{
				Top:    info.StartY,
				Left:   info.StartX,
				Right:  info.EndX + 1,
				Bottom: info.EndY + 1,
			}, true
		}
	}
	if z.fallback.IsZero() {
		return geometry.Box{}, false
	}
	return z.fallback, true
}

// zoneIDs names the zones of one layout generation. Ids change whenever
// the layout is rebuilt so stale positions from an older frame never
// resolve.
type zoneIDs struct {
	prefix string
	gen    int
}

func (z zoneIDs) row(i int) string { return fmt.Sprintf("%sg%d-row-%d", z.prefix, z.gen, i) }
func (z zoneIDs) band(i int) string { return fmt.Sprintf("%sg%d-band-%d", z.prefix, z.gen, i) }
func (z zoneIDs) seg(i int) string { return fmt.Sprintf("%sg%d-ev-%d", z.prefix, z.gen, i) }
func (z zoneIDs) rowGrid() string { return fmt.Sprintf("%sg%d-rows", z.prefix, z.gen) }
func (z zoneIDs) bandGrid() string { return fmt.Sprintf("%sg%d-bands", z.prefix, z.gen) }

// mark wraps s in a zone marker when a manager is present.
func mark(zones *zone.Manager, id, s string) string {
	if zones == nil {
		return s
	}
	return zones.Mark(id, s)
}
