// Package targeting implements the once-per-tick nearest-bug-in-range
// selection (§4.4): for each tower, rank every bug within range by
// squared half-cell distance with a fixed lexicographic tie-break, and
// emit the resulting TowerTarget records for the combat system to
// consume. All math is integer, per §9 "floating-point elimination".
package targeting

import (
	"sort"

	"github.com/Mikko-Finell/maze-defence/internal/simtypes"
)

// WorldView is the read-only projection the targeting system needs.
type WorldView interface {
	TowerViews() []simtypes.TowerView
	BugViews() []simtypes.BugView
}

// Select runs the procedure for every tower in ascending id and returns
// one TowerTarget per tower that has a bug in range (§4.4). Each tower's
// range is read directly off its view (resolved once at placement time
// from tuning/defs, §6) rather than recomputed from TowerKind constants,
// so targeting always agrees with the range analytics coverage reports.
func Select(w WorldView) []simtypes.TowerTarget {
	bugs := w.BugViews() // ascending by id already
	var out []simtypes.TowerTarget

	for _, t := range w.TowerViews() {
		center := towerCenterHalf(t.Region)
		radiusHalf := int64(t.RangeInCells) * 2
		radiusSq := radiusHalf * radiusHalf

		best, bestCenter, found := bestBugInRange(bugs, center, radiusSq)
		if !found {
			continue
		}
		out = append(out, simtypes.TowerTarget{
			Tower: t.Id, Bug: best, TowerCenter: center, BugCenter: bestCenter,
		})
	}

	return out
}

func bestBugInRange(bugs []simtypes.BugView, center simtypes.HalfPoint, radiusSq int64) (simtypes.BugId, simtypes.HalfPoint, bool) {
	type reached struct {
		bug      simtypes.BugId
		center   simtypes.HalfPoint
		distSq   int64
	}
	var candidates []reached

	for _, b := range bugs {
		bugCenter := simtypes.CellCenterHalf(b.Cell)
		distSq := simtypes.DistanceSquaredHalf(center, bugCenter)
		if distSq > radiusSq {
			continue
		}
		candidates = append(candidates, reached{bug: b.Id, center: bugCenter, distSq: distSq})
	}
	if len(candidates) == 0 {
		return 0, simtypes.HalfPoint{}, false
	}

	sort.Slice(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.distSq != b.distSq {
			return a.distSq < b.distSq
		}
		if a.bug != b.bug {
			return a.bug < b.bug
		}
		if a.center.X != b.center.X {
			return a.center.X < b.center.X
		}
		return a.center.Y < b.center.Y
	})

	return candidates[0].bug, candidates[0].center, true
}

func towerCenterHalf(region simtypes.CellRect) simtypes.HalfPoint {
	return simtypes.HalfPoint{
		X: int64(region.Origin.Col)*2 + int64(region.Width),
		Y: int64(region.Origin.Row)*2 + int64(region.Height),
	}
}
