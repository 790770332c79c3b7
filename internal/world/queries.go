package world

import "github.com/Mikko-Finell/maze-defence/internal/simtypes"

// PlayMode returns the current play mode.
func (w *World) PlayMode() simtypes.PlayMode { return w.playMode }

// BugViews returns every live bug, ascending by id (§3 invariant 7).
func (w *World) BugViews() []simtypes.BugView {
	ids := sortedBugIds(w.bugs)
	out := make([]simtypes.BugView, 0, len(ids))
	for _, id := range ids {
		out = append(out, w.bugs[id].view())
	}
	return out
}

// TowerViews returns every tower, ascending by id.
func (w *World) TowerViews() []simtypes.TowerView {
	ids := sortedTowerIds(w.towers)
	out := make([]simtypes.TowerView, 0, len(ids))
	for _, id := range ids {
		out = append(out, w.towers[id].view())
	}
	return out
}

// TowerCooldowns returns (towerId, cooldown) pairs ascending by id, the
// shape the combat system binary-searches (§4.5).
func (w *World) TowerCooldowns() []simtypes.TowerView {
	return w.TowerViews()
}

// ProjectileViews returns every in-flight projectile, ascending by id.
func (w *World) ProjectileViews() []simtypes.ProjectileView {
	ids := sortedProjectileIds(w.projectiles)
	out := make([]simtypes.ProjectileView, 0, len(ids))
	for _, id := range ids {
		out = append(out, w.projectiles[id].view())
	}
	return out
}

// NavigationField returns the current static distance-to-exit grid.
func (w *World) NavigationField() simtypes.NavigationView { return w.nav }

// Gold returns the current gold balance.
func (w *World) Gold() uint64 { return w.gold }

// DifficultyTier returns the current difficulty tier.
func (w *World) DifficultyTier() int { return w.difficultyTier }

// PendingWaveDifficulty returns the difficulty scalar queued for the next
// wave.
func (w *World) PendingWaveDifficulty() float64 { return w.pendingWaveDiff }

// AttackPlan returns the stored plan for waveId, if any.
func (w *World) AttackPlan(waveId simtypes.WaveId) (simtypes.AttackPlan, bool) {
	p, ok := w.attackPlans[waveId]
	return p, ok
}

// Analytics returns the analytics report, recomputing it first if it is
// still flagged dirty from grid configuration (§4.7 "lazy consumer").
// Placement, removal, round loss and RequestAnalyticsRefresh recompute it
// immediately instead.
func (w *World) Analytics() simtypes.Analytics {
	if w.analytics.Dirty {
		w.recomputeAnalytics()
	}
	return w.analytics
}

// bugByCell finds the live bug occupying c, if any.
func (w *World) bugByCell(c simtypes.Cell) (simtypes.BugId, bool) {
	if !w.inBounds(c) {
		return 0, false
	}
	o := w.occ[w.occIndex(c)]
	if o.kind != occupantBug {
		return 0, false
	}
	return o.bug, true
}

// BugAt is the public form of bugByCell, exposed for the crowd planner's
// occupancy checks (§4.3).
func (w *World) BugAt(c simtypes.Cell) (simtypes.BugId, bool) { return w.bugByCell(c) }

// IsExitColumn reports whether col falls within the exit gap. It is part
// of crowd.WorldView; the planner itself does not call it, since exit-row
// cells outside the gap are walls in the navigation field.
func (w *World) IsExitColumn(col int) bool { return w.layout.isExitColumn(col) }

// SetCongestion records the crowd planner's latest per-cell congestion
// counts so recomputeAnalytics can derive CongestionHotCells from them
// (§4.7). The driver calls this once per tick, right after crowd.Plan,
// since the planner (not World) owns the congestion map (§4.3).
func (w *World) SetCongestion(counts []int) { w.lastCongestion = counts }
