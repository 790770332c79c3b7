package world

import "github.com/Mikko-Finell/maze-defence/internal/simtypes"

// Apply is the world's single mutation boundary (§4.1): every command is
// dispatched to exactly one handler, which either mutates state and
// returns the resulting events or rejects and returns unchanged state.
func (w *World) Apply(cmd simtypes.Command) []simtypes.Event {
	switch c := cmd.(type) {
	case simtypes.ConfigureTileGrid:
		return w.applyConfigureTileGrid(c)
	case simtypes.SetPlayMode:
		return w.applySetPlayMode(c)
	case simtypes.Tick:
		return w.applyTick(c)
	case simtypes.SpawnBug:
		return w.applySpawnBug(c)
	case simtypes.StepBug:
		return w.applyStepBug(c)
	case simtypes.PlaceTower:
		return w.applyPlaceTower(c)
	case simtypes.RemoveTower:
		return w.applyRemoveTower(c)
	case simtypes.FireProjectile:
		return w.applyFireProjectile(c)
	case simtypes.GenerateAttackPlan:
		return w.applyGenerateAttackPlan(c)
	case simtypes.StartWave:
		return w.applyStartWave(c)
	case simtypes.ResolveRound:
		return w.applyResolveRound(c)
	case simtypes.RequestAnalyticsRefresh:
		return w.applyRequestAnalyticsRefresh(c)
	default:
		return nil
	}
}
