package world

import "github.com/Mikko-Finell/maze-defence/internal/simtypes"

// ValidateTowerPlacement is a read-only placement check a driver can run
// before submitting PlaceTower, returning the same rejection reason Apply
// would without mutating state (original_source systems/builder — a
// feature the distilled spec dropped but the original build-phase flow
// relies on).
func (w *World) ValidateTowerPlacement(kind simtypes.TowerKind, origin simtypes.Cell) (simtypes.TowerPlacementRejection, bool) {
	return w.validatePlacement(kind, origin)
}

func (w *World) validatePlacement(kind simtypes.TowerKind, origin simtypes.Cell) (simtypes.TowerPlacementRejection, bool) {
	if w.playMode != simtypes.Builder {
		return simtypes.PlacementInvalidMode, false
	}
	half := w.layout.grid.CellsPerTile / 2
	if origin.Col%w.layout.grid.CellsPerTile != half%w.layout.grid.CellsPerTile ||
		origin.Row%w.layout.grid.CellsPerTile != half%w.layout.grid.CellsPerTile {
		return simtypes.PlacementMisaligned, false
	}

	region := kind.FootprintFor(origin)
	for _, c := range region.Cells() {
		if !w.inBounds(c) {
			return simtypes.PlacementOutOfBounds, false
		}
		if w.layout.isWallCell(c) {
			return simtypes.PlacementOutOfBounds, false
		}
		if w.occ[w.occIndex(c)].kind != occupantNone {
			return simtypes.PlacementOccupied, false
		}
	}
	if w.gold < kind.PlacementCost() {
		return simtypes.PlacementInsufficientFunds, false
	}
	return 0, true
}

func (w *World) applyPlaceTower(c simtypes.PlaceTower) []simtypes.Event {
	if reason, ok := w.validatePlacement(c.Kind, c.Origin); !ok {
		return []simtypes.Event{simtypes.TowerPlacementRejected{Reason: reason}}
	}

	region := c.Kind.FootprintFor(c.Origin)
	id := w.nextTowerId
	w.nextTowerId++

	w.towers[id] = &towerState{id: id, kind: c.Kind, region: region, stats: w.resolveTowerStats(c.Kind)}
	for _, cell := range region.Cells() {
		w.occ[w.occIndex(cell)] = occupant{kind: occupantTower, tower: id}
	}
	w.gold -= c.Kind.PlacementCost()
	w.rebuildNavigation()
	w.recomputeAnalytics()

	return []simtypes.Event{
		simtypes.TowerPlaced{Tower: id, Kind: c.Kind, Region: region},
		simtypes.MazeLayoutChanged{},
		simtypes.AnalyticsUpdated{},
	}
}

func (w *World) applyRemoveTower(c simtypes.RemoveTower) []simtypes.Event {
	if w.playMode != simtypes.Builder {
		return []simtypes.Event{simtypes.TowerRemovalRejected{Reason: simtypes.RemovalInvalidMode}}
	}
	t, ok := w.towers[c.Tower]
	if !ok {
		return []simtypes.Event{simtypes.TowerRemovalRejected{Reason: simtypes.RemovalMissingTower}}
	}

	for _, cell := range t.region.Cells() {
		w.occ[w.occIndex(cell)] = occupant{}
	}
	delete(w.towers, c.Tower)
	w.rebuildNavigation()
	w.recomputeAnalytics()

	return []simtypes.Event{
		simtypes.TowerRemoved{Tower: c.Tower},
		simtypes.MazeLayoutChanged{},
		simtypes.AnalyticsUpdated{},
	}
}

// removeTowersForLoss removes the highest-id towers first, up to count,
// as ResolveRound{Loss} requires (§4.1), returning the removed ids
// ascending for a deterministic RoundLost payload.
func (w *World) removeTowersForLoss(count int) []simtypes.TowerId {
	ids := sortedTowerIds(w.towers)
	if count > len(ids) {
		count = len(ids)
	}
	removed := make([]simtypes.TowerId, 0, count)
	for i := 0; i < count; i++ {
		id := ids[len(ids)-1-i]
		t := w.towers[id]
		for _, cell := range t.region.Cells() {
			w.occ[w.occIndex(cell)] = occupant{}
		}
		delete(w.towers, id)
		removed = append(removed, id)
	}
	// Ascending order for the event payload, even though removal walked
	// highest-id first.
	for i, j := 0, len(removed)-1; i < j; i, j = i+1, j-1 {
		removed[i], removed[j] = removed[j], removed[i]
	}
	if len(removed) > 0 {
		w.rebuildNavigation()
		w.recomputeAnalytics()
	}
	return removed
}
