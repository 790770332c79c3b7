// Package driver is the only component permitted to depend on both the
// systems and the world (§9 "cross-system dependencies: systems never
// know about each other"). Its per-frame pump submits a Tick, runs the
// crowd planner, targeting, and combat emitter against the resulting
// read-only views, and submits whatever commands they produce — all in
// the fixed order §4.1/§4.5 require. It generalizes the teacher's
// internal/app/game.go per-frame Update loop (one struct owning every
// system, advanced once per frame) to the command/event kernel.
package driver

import (
	"os"

	"github.com/charmbracelet/log"

	"github.com/Mikko-Finell/maze-defence/internal/combat"
	"github.com/Mikko-Finell/maze-defence/internal/crowd"
	"github.com/Mikko-Finell/maze-defence/internal/simtypes"
	"github.com/Mikko-Finell/maze-defence/internal/targeting"
	"github.com/Mikko-Finell/maze-defence/internal/tuning"
	"github.com/Mikko-Finell/maze-defence/internal/world"
)

// Driver owns the world and every system the per-tick pump composes. It
// is the sole caller of World.Apply for the movement/targeting/combat
// subsystems; a UI or network adapter submits its own commands (tower
// placement, wave lifecycle) directly against World.
type Driver struct {
	World   *world.World
	Planner *crowd.Planner

	log *log.Logger

	events []simtypes.Event
}

// New wires a driver around an existing world, ready to pump ticks.
func New(w *world.World, t tuning.Tuning) *Driver {
	return &Driver{
		World:   w,
		Planner: crowd.New(t.Movement),
		log:     log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true, Prefix: "maze-defence"}),
	}
}

// Pump advances the world by dt_ms and, in Attack mode, runs the
// movement, targeting, and combat systems against the post-tick state in
// that fixed order (§4.1, §4.3, §4.4, §4.5). It returns every event
// emitted across the whole pump, in submission order.
func (d *Driver) Pump(dtMs int64) []simtypes.Event {
	d.events = d.events[:0]

	d.submit(simtypes.Tick{DtMs: dtMs})

	if d.World.PlayMode() != simtypes.Attack {
		return d.events
	}

	for _, step := range d.Planner.Plan(d.World) {
		d.submit(step)
	}
	d.World.SetCongestion(d.Planner.Congestion())

	targets := targeting.Select(d.World)
	for _, fire := range combat.Emit(targets, d.World.TowerCooldowns()) {
		d.submit(fire)
	}

	return d.events
}

func (d *Driver) submit(cmd simtypes.Command) {
	events := d.World.Apply(cmd)
	d.events = append(d.events, events...)
	for _, e := range events {
		d.logRejection(e)
	}
}

// logRejection surfaces rejection events; routine per-tick rejections the
// crowd planner and spawner produce as a matter of course (§4.3 congestion
// stalls, spawn-cell contention) log at Debug, while rejections that mean
// a command against the builder/combat surface was structurally wrong log
// at Warn (SPEC_FULL.md "rejection events logged at Debug and structural
// failures at Warn").
func (d *Driver) logRejection(e simtypes.Event) {
	switch r := e.(type) {
	case simtypes.SpawnBugRejected:
		d.log.Debug("spawn rejected", "reason", r.Reason)
	case simtypes.BugStepRejected:
		d.log.Debug("step rejected", "bug", r.Bug, "reason", r.Reason)
	case simtypes.TowerPlacementRejected:
		d.log.Warn("placement rejected", "reason", r.Reason)
	case simtypes.TowerRemovalRejected:
		d.log.Warn("removal rejected", "reason", r.Reason)
	case simtypes.ProjectileRejected:
		d.log.Warn("fire rejected", "reason", r.Reason)
	}
}
