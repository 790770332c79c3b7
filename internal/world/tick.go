package world

import "github.com/Mikko-Finell/maze-defence/internal/simtypes"

func (w *World) applyTick(c simtypes.Tick) []simtypes.Event {
	if w.playMode != simtypes.Attack {
		return nil
	}

	events := []simtypes.Event{simtypes.TimeAdvanced{DtMs: c.DtMs}}

	for _, id := range sortedBugIds(w.bugs) {
		b := w.bugs[id]
		b.accumMs += c.DtMs
		if b.accumMs > b.stepMs {
			b.accumMs = b.stepMs
		}
	}

	for _, id := range sortedTowerIds(w.towers) {
		t := w.towers[id]
		t.cooldown -= c.DtMs
		if t.cooldown < 0 {
			t.cooldown = 0
		}
	}

	events = append(events, w.advanceProjectiles(c.DtMs)...)
	return events
}

// advanceProjectiles integrates every in-flight projectile by dt_ms and
// resolves hits, in ascending projectile id, with the fixed intra-entity
// order damage -> death -> hit/expire per §4.5 and §5.
func (w *World) advanceProjectiles(dtMs int64) []simtypes.Event {
	var events []simtypes.Event

	for _, id := range sortedProjectileIds(w.projectiles) {
		p := w.projectiles[id]
		p.elapsedMs += dtMs
		if p.elapsedMs > p.travelTimeMs {
			p.elapsedMs = p.travelTimeMs
		}

		travelledHalf := p.distanceHalf
		if p.travelTimeMs > 0 {
			travelledHalf = p.distanceHalf * p.elapsedMs / p.travelTimeMs
		}
		if travelledHalf > p.distanceHalf {
			travelledHalf = p.distanceHalf
		}
		if travelledHalf < p.distanceHalf {
			continue
		}

		target, alive := w.bugs[p.target]
		if alive {
			remaining := target.health - p.damage
			if remaining < 0 {
				remaining = 0
			}
			target.health = remaining
			events = append(events, simtypes.BugDamaged{Bug: target.id, Damage: p.damage, Remaining: remaining})
			if remaining == 0 {
				w.occ[w.occIndex(target.cell)] = occupant{}
				delete(w.bugs, target.id)
				w.awardKillGold()
				events = append(events, simtypes.BugDied{Bug: target.id})
			}
			events = append(events, simtypes.ProjectileHit{Projectile: id, Target: p.target, Damage: p.damage})
		} else {
			events = append(events, simtypes.ProjectileExpired{Projectile: id})
		}
		delete(w.projectiles, id)
	}

	return events
}

// awardKillGold credits a kill reward scaled by (tier + 1), saturating at
// the u64 max the way every other gold mutation does (§5 "gold is a
// monotonic u64, saturating").
func (w *World) awardKillGold() {
	reward := uint64(w.difficultyTier + 1)
	sum := w.gold + reward
	if sum < w.gold {
		sum = ^uint64(0)
	}
	w.gold = sum
}
