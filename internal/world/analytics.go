package world

import "github.com/Mikko-Finell/maze-defence/internal/simtypes"

// recomputeAnalytics rebuilds the lazily-consumed analytics report (§4.7)
// from the current navigation field and tower iterator. Called directly by
// the grid, placement, removal, round-loss and refresh handlers, and by
// Analytics() when analytics.Dirty is still set after grid configuration.
func (w *World) recomputeAnalytics() {
	towerCount := len(w.towers)

	var coveredCells, totalCells int
	var totalDps float64
	var readyTowers int

	for _, id := range sortedTowerIds(w.towers) {
		t := w.towers[id]
		if t.cooldown <= 0 {
			readyTowers++
		}
		cooldownMs := t.stats.fireCooldownMs
		if cooldownMs > 0 {
			totalDps += float64(t.stats.damage) * 1000 / float64(cooldownMs)
		}
	}

	rangeHalfSq := make([]int64, 0, towerCount)
	centers := make([]simtypes.HalfPoint, 0, towerCount)
	for _, id := range sortedTowerIds(w.towers) {
		t := w.towers[id]
		rangeHalf := int64(t.stats.rangeInCells) * 2
		rangeHalfSq = append(rangeHalfSq, rangeHalf*rangeHalf)
		centers = append(centers, towerCenterHalf(t.region))
	}

	for _, c := range w.allCells() {
		if w.layout.isWallCell(c) {
			continue
		}
		totalCells++
		cellCenter := simtypes.CellCenterHalf(c)
		for i, center := range centers {
			if simtypes.DistanceSquaredHalf(center, cellCenter) <= rangeHalfSq[i] {
				coveredCells++
				break
			}
		}
	}

	coverageMean := 0.0
	if totalCells > 0 {
		coverageMean = float64(coveredCells) / float64(totalCells)
	}

	firingCompletePercent := 0.0
	if towerCount > 0 {
		firingCompletePercent = 100 * float64(readyTowers) / float64(towerCount)
	}

	shortestPath := int(simtypes.Infinite)
	for _, c := range w.layout.spawnerCells {
		// Spawner cells are rim walls with no field distance of their own;
		// a path from one takes one step into its nearest open neighbour.
		for _, dir := range simtypes.Directions {
			d := w.nav.At(c.Add(dir))
			if d != simtypes.Infinite && int(d)+1 < shortestPath {
				shortestPath = int(d) + 1
			}
		}
	}

	hotCells := 0
	for _, count := range w.lastCongestion {
		if count >= w.tuning.Movement.CongestionLookahead {
			hotCells++
		}
	}

	w.analytics = simtypes.Analytics{
		CoverageMean:          coverageMean,
		FiringCompletePercent: firingCompletePercent,
		ShortestPathLength:    shortestPath,
		TowerCount:            towerCount,
		TotalDps:              totalDps,
		CongestionHotCells:    hotCells,
		Dirty:                 false,
	}
}
