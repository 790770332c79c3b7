package world

import "github.com/Mikko-Finell/maze-defence/internal/simtypes"

func (w *World) applyFireProjectile(c simtypes.FireProjectile) []simtypes.Event {
	if w.playMode != simtypes.Attack {
		return []simtypes.Event{simtypes.ProjectileRejected{Reason: simtypes.FireInvalidMode}}
	}
	t, ok := w.towers[c.Tower]
	if !ok {
		return []simtypes.Event{simtypes.ProjectileRejected{Reason: simtypes.FireMissingTower}}
	}
	if t.cooldown > 0 {
		return []simtypes.Event{simtypes.ProjectileRejected{Reason: simtypes.FireCooldownActive}}
	}
	target, ok := w.bugs[c.Target]
	if !ok || target.health <= 0 {
		return []simtypes.Event{simtypes.ProjectileRejected{Reason: simtypes.FireMissingTarget}}
	}

	start := towerCenterHalf(t.region)
	end := simtypes.CellCenterHalf(target.cell)
	distSq := simtypes.DistanceSquaredHalf(start, end)
	distance := isqrt(distSq)

	id := w.nextProjectileId
	w.nextProjectileId++

	w.projectiles[id] = &projectileState{
		id: id, tower: c.Tower, target: c.Target,
		start: start, end: end, distanceHalf: distance,
		elapsedMs:    0,
		travelTimeMs: t.stats.projectileTravelTimeMs,
		damage:       t.stats.damage,
	}
	t.cooldown = t.stats.fireCooldownMs

	return []simtypes.Event{simtypes.ProjectileFired{Projectile: id, Tower: c.Tower, Target: c.Target}}
}

func towerCenterHalf(region simtypes.CellRect) simtypes.HalfPoint {
	return simtypes.HalfPoint{
		X: int64(region.Origin.Col)*2 + int64(region.Width),
		Y: int64(region.Origin.Row)*2 + int64(region.Height),
	}
}

// isqrt returns the integer square root of a non-negative i64, used to
// cache a projectile's travel distance in half-cell units without any
// floating point in the decision path (§4.4, §9 "floating-point
// elimination").
func isqrt(n int64) int64 {
	if n < 2 {
		return n
	}
	x := n
	y := (x + 1) / 2
	for y < x {
		x = y
		y = (x + n/x) / 2
	}
	return x
}
