package world

import (
	"github.com/Mikko-Finell/maze-defence/internal/prng"
	"github.com/Mikko-Finell/maze-defence/internal/simtypes"
	"github.com/Mikko-Finell/maze-defence/internal/wavegen"
)

func (w *World) applyConfigureTileGrid(c simtypes.ConfigureTileGrid) []simtypes.Event {
	if c.TileCols <= 0 || c.TileRows <= 0 || c.CellsPerTile <= 0 {
		return nil
	}
	w.configureGrid(c.TileCols, c.TileRows, c.CellsPerTile)
	w.recomputeAnalytics()
	return []simtypes.Event{simtypes.MazeLayoutChanged{}, simtypes.AnalyticsUpdated{}}
}

func (w *World) applySetPlayMode(c simtypes.SetPlayMode) []simtypes.Event {
	if c.Mode == w.playMode {
		return nil
	}

	if c.Mode == simtypes.Builder {
		w.bugs = make(map[simtypes.BugId]*bugState)
		w.projectiles = make(map[simtypes.ProjectileId]*projectileState)
		for i := range w.occ {
			if w.occ[i].kind == occupantBug {
				w.occ[i] = occupant{}
			}
		}
	}

	w.playMode = c.Mode
	return []simtypes.Event{simtypes.PlayModeChanged{Mode: c.Mode}}
}

func (w *World) applyGenerateAttackPlan(c simtypes.GenerateAttackPlan) []simtypes.Event {
	seed := prng.WaveSeed(w.gameSeed, 0, int(c.WaveId), c.Difficulty)
	records, merges := wavegen.Generate(seed, w.tuning.WaveGen, c.Difficulty)

	w.attackPlans[c.WaveId] = simtypes.AttackPlan{
		WaveId:             c.WaveId,
		Records:            records,
		SpeciesMergeEvents: merges,
	}

	events := []simtypes.Event{simtypes.AttackPlanReady{WaveId: c.WaveId}}
	if c.Difficulty != w.pendingWaveDiff {
		w.pendingWaveDiff = c.Difficulty
		events = append(events, simtypes.PendingWaveDifficultyChanged{Difficulty: c.Difficulty})
	}
	return events
}

// applyStartWave consumes the queued difficulty scalar GenerateAttackPlan
// set, resetting it to zero now that the wave it described is underway
// (§3 global state "pending wave difficulty").
func (w *World) applyStartWave(c simtypes.StartWave) []simtypes.Event {
	tierEffective := w.difficultyTier
	rewardMultiplier := uint64(tierEffective + 1)

	events := []simtypes.Event{simtypes.WaveStarted{
		WaveId:           c.WaveId,
		TierEffective:    tierEffective,
		RewardMultiplier: rewardMultiplier,
	}}
	if w.pendingWaveDiff != 0 {
		w.pendingWaveDiff = 0
		events = append(events, simtypes.PendingWaveDifficultyChanged{Difficulty: 0})
	}
	return events
}

// applyResolveRound applies a round outcome to the difficulty tier and, on
// loss, removes a deterministic slice of towers (§4.1). Only Win{Hard}
// moves the tier upward, per the authoritative gameplay roadmap (§9 open
// questions); Loss decrements the tier by exactly one, mirroring the
// single-step Hard-win increment, and removes the top half of towers by
// id (highest first) — the spec names no removal count, so this resolves
// it deterministically without inventing new tunables.
func (w *World) applyResolveRound(c simtypes.ResolveRound) []simtypes.Event {
	switch c.Outcome {
	case simtypes.WinNormal:
		return nil

	case simtypes.WinHard:
		w.difficultyTier++
		return []simtypes.Event{
			simtypes.HardWinAchieved{Tier: w.difficultyTier},
			simtypes.DifficultyTierChanged{Tier: w.difficultyTier},
		}

	case simtypes.Loss:
		prevTier := w.difficultyTier
		if w.difficultyTier > 0 {
			w.difficultyTier--
		}
		removeCount := (len(w.towers) + 1) / 2
		removed := w.removeTowersForLoss(removeCount)

		events := []simtypes.Event{simtypes.RoundLost{TowersRemoved: removed}}
		if len(removed) > 0 {
			events = append(events, simtypes.MazeLayoutChanged{}, simtypes.AnalyticsUpdated{})
		}
		if w.difficultyTier != prevTier {
			events = append(events, simtypes.DifficultyTierChanged{Tier: w.difficultyTier})
		}
		return events

	default:
		return nil
	}
}

func (w *World) applyRequestAnalyticsRefresh(simtypes.RequestAnalyticsRefresh) []simtypes.Event {
	w.recomputeAnalytics()
	return []simtypes.Event{simtypes.AnalyticsUpdated{}}
}
