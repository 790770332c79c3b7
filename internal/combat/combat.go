// Package combat implements the pure-emitter half of the combat system
// (§4.5): given this tick's TowerTarget records and the tower cooldown
// view, it emits one FireProjectile command per tower that is off
// cooldown. Projectile integration itself lives in internal/world/tick.go
// because it mutates persistent state (§4.1 "all mutation crosses the
// Apply boundary").
package combat

import (
	"sort"

	"github.com/Mikko-Finell/maze-defence/internal/simtypes"
)

// Emit looks up each target's tower in the cooldown view (sorted by
// tower id; binary search, per §4.5) and emits FireProjectile for the
// towers that are ready.
func Emit(targets []simtypes.TowerTarget, cooldowns []simtypes.TowerView) []simtypes.FireProjectile {
	var out []simtypes.FireProjectile
	for _, t := range targets {
		i := sort.Search(len(cooldowns), func(i int) bool { return cooldowns[i].Id >= t.Tower })
		if i >= len(cooldowns) || cooldowns[i].Id != t.Tower {
			continue
		}
		if cooldowns[i].Cooldown > 0 {
			continue
		}
		out = append(out, simtypes.FireProjectile{Tower: t.Tower, Target: t.Bug})
	}
	return out
}
