package world

import (
	"sort"

	"github.com/Mikko-Finell/maze-defence/internal/simtypes"
)

// Every map in World is keyed by a monotonic id; §3 invariant 7 requires
// ascending-id iteration everywhere. Ids only grow across a world's
// lifetime and maps stay small (hundreds of live entities at most), so
// sorting the key set on each iteration is simpler and just as
// deterministic as maintaining a parallel ordered index, and it is the
// approach used at every call site below.

func sortedBugIds(m map[simtypes.BugId]*bugState) []simtypes.BugId {
	ids := make([]simtypes.BugId, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func sortedTowerIds(m map[simtypes.TowerId]*towerState) []simtypes.TowerId {
	ids := make([]simtypes.TowerId, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func sortedProjectileIds(m map[simtypes.ProjectileId]*projectileState) []simtypes.ProjectileId {
	ids := make([]simtypes.ProjectileId, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
