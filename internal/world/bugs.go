package world

import "github.com/Mikko-Finell/maze-defence/internal/simtypes"

func (w *World) applySpawnBug(c simtypes.SpawnBug) []simtypes.Event {
	if !w.inBounds(c.Cell) || !w.layout.isRim(c.Cell) {
		return []simtypes.Event{simtypes.SpawnBugRejected{Reason: simtypes.SpawnOutOfBounds}}
	}
	if w.occ[w.occIndex(c.Cell)].kind != occupantNone {
		return []simtypes.Event{simtypes.SpawnBugRejected{Reason: simtypes.SpawnOccupied}}
	}

	id := w.nextBugId
	w.nextBugId++

	b := &bugState{
		id:      id,
		cell:    c.Cell,
		health:  c.Health,
		stepMs:  c.StepMs,
		accumMs: c.StepMs, // may step immediately, per §4.1 SpawnBug
		species: c.Species,
		tint:    c.Tint,
	}
	w.bugs[id] = b
	w.occ[w.occIndex(c.Cell)] = occupant{kind: occupantBug, bug: id}

	return []simtypes.Event{simtypes.BugSpawned{
		Bug: id, Cell: c.Cell, Health: c.Health, StepMs: c.StepMs,
		Species: c.Species, Tint: c.Tint,
	}}
}

func (w *World) applyStepBug(c simtypes.StepBug) []simtypes.Event {
	b, ok := w.bugs[c.Bug]
	if !ok {
		return []simtypes.Event{simtypes.BugStepRejected{Bug: c.Bug, Reason: simtypes.StepMissingBug}}
	}

	dest := b.cell.Add(c.Direction)
	if !w.inBounds(dest) {
		return []simtypes.Event{simtypes.BugStepRejected{Bug: c.Bug, Reason: simtypes.StepOutOfBounds}}
	}
	if w.layout.isWallCell(dest) && !w.layout.isExitCell(dest) {
		return []simtypes.Event{simtypes.BugStepRejected{Bug: c.Bug, Reason: simtypes.StepBlocked}}
	}
	if occ := w.occ[w.occIndex(dest)]; occ.kind != occupantNone {
		return []simtypes.Event{simtypes.BugStepRejected{Bug: c.Bug, Reason: simtypes.StepBlocked}}
	}
	if dest.Row == w.layout.exitRow && !w.layout.isExitColumn(dest.Col) {
		return []simtypes.Event{simtypes.BugStepRejected{Bug: c.Bug, Reason: simtypes.StepMisalignedExit}}
	}

	from := b.cell
	w.occ[w.occIndex(from)] = occupant{}
	b.cell = dest
	if b.accumMs >= b.stepMs {
		b.accumMs -= b.stepMs
	} else {
		b.accumMs = 0
	}

	if w.layout.isExitCell(dest) {
		delete(w.bugs, b.id)
		return []simtypes.Event{
			simtypes.BugAdvanced{Bug: b.id, From: from, To: dest},
			simtypes.BugExited{Bug: b.id, Cell: dest},
		}
	}

	w.occ[w.occIndex(dest)] = occupant{kind: occupantBug, bug: b.id}
	return []simtypes.Event{simtypes.BugAdvanced{Bug: b.id, From: from, To: dest}}
}
