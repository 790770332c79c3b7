// Package world implements the single authoritative mutable state of the
// simulation and its one mutation entry point, Apply (§4.1). It
// generalizes the teacher's internal/entity/ecs.go (monotonic-id ordered
// maps owned by one struct) and internal/app/game.go (the only place that
// mutates ECS state) from a hex-grid ECS into the spec's square-grid
// command/event kernel.
package world

import (
	"github.com/Mikko-Finell/maze-defence/internal/navfield"
	"github.com/Mikko-Finell/maze-defence/internal/simtypes"
	"github.com/Mikko-Finell/maze-defence/internal/tuning"
)

type occupantKind int

const (
	occupantNone occupantKind = iota
	occupantBug
	occupantTower
)

type occupant struct {
	kind occupantKind
	bug  simtypes.BugId
	tower simtypes.TowerId
}

type bugState struct {
	id      simtypes.BugId
	cell    simtypes.Cell
	health  int
	stepMs  int64
	accumMs int64
	species string
	tint    uint32
}

func (b bugState) readyForStep() bool { return b.accumMs >= b.stepMs }

func (b bugState) view() simtypes.BugView {
	return simtypes.BugView{
		Id: b.id, Cell: b.cell, Health: b.health, StepMs: b.stepMs,
		AccumMs: b.accumMs, ReadyForStep: b.readyForStep(),
		Species: b.species, Tint: b.tint,
	}
}

// towerStats holds the per-tower constants resolved once at placement time
// from the tuning in effect then (§6), so a later .env/YAML reload never
// retroactively changes an already-placed tower's behavior.
type towerStats struct {
	fireCooldownMs         int64
	projectileTravelTimeMs int64
	damage                 int
	rangeInCells           int
}

type towerState struct {
	id       simtypes.TowerId
	kind     simtypes.TowerKind
	region   simtypes.CellRect
	cooldown int64
	stats    towerStats
}

func (t towerState) view() simtypes.TowerView {
	return simtypes.TowerView{
		Id: t.id, Kind: t.kind, Region: t.region, Cooldown: t.cooldown,
		RangeInCells: t.stats.rangeInCells,
	}
}

// resolveTowerStats reads the live per-kind constants out of w.tuning.Combat
// (overridable from an authored defs.TowerDefinition, see internal/defs)
// for the one kind that tuning covers today, falling back to TowerKind's
// compiled-in constant methods for any other kind (§9 "polymorphism over
// tower/bug kinds").
func (w *World) resolveTowerStats(kind simtypes.TowerKind) towerStats {
	if kind == simtypes.Basic {
		return towerStats{
			fireCooldownMs:         w.tuning.Combat.BasicFireCooldownMs,
			projectileTravelTimeMs: w.tuning.Combat.BasicProjectileTravelTimeMs,
			damage:                 w.tuning.Combat.BasicDamage,
			rangeInCells:           w.tuning.Combat.BasicRangeInTiles * w.layout.grid.CellsPerTile,
		}
	}
	return towerStats{
		fireCooldownMs:         kind.FireCooldownMs(),
		projectileTravelTimeMs: kind.ProjectileTravelTimeMs(),
		damage:                 kind.Damage(),
		rangeInCells:           kind.RangeInCells(w.layout.grid.CellsPerTile),
	}
}

type projectileState struct {
	id           simtypes.ProjectileId
	tower        simtypes.TowerId
	target       simtypes.BugId
	start        simtypes.HalfPoint
	end          simtypes.HalfPoint
	distanceHalf int64
	elapsedMs    int64
	travelTimeMs int64
	damage       int
}

func (p projectileState) view() simtypes.ProjectileView {
	return simtypes.ProjectileView{
		Id: p.id, Tower: p.tower, Target: p.target, Start: p.start, End: p.end,
		DistanceHalf: p.distanceHalf, ElapsedMs: p.elapsedMs,
		TravelTimeMs: p.travelTimeMs, Damage: p.damage,
	}
}

// World owns every persistent entity by id (§9 "ownership topology").
// Nothing outside this package mutates it; everything else receives
// read-only views that are valid only until the next Apply call.
type World struct {
	tuning tuning.Tuning

	layout layout
	occ    []occupant

	bugs        map[simtypes.BugId]*bugState
	towers      map[simtypes.TowerId]*towerState
	projectiles map[simtypes.ProjectileId]*projectileState

	nextBugId        simtypes.BugId
	nextTowerId      simtypes.TowerId
	nextProjectileId simtypes.ProjectileId

	nav simtypes.NavigationView

	playMode           simtypes.PlayMode
	gold               uint64
	difficultyTier     int
	pendingWaveDiff    float64
	gameSeed           uint64
	attackPlans        map[simtypes.WaveId]simtypes.AttackPlan

	analytics      simtypes.Analytics
	lastCongestion []int
}

// New constructs an empty world configured with grid, in Builder mode,
// with no entities. It does not validate its dimensions (unlike
// ConfigureTileGrid, which ignores a command with a non-positive one), so
// callers building a fresh world pass valid dimensions up front.
func New(t tuning.Tuning, cols, rows, cellsPerTile int) *World {
	w := &World{
		tuning:      t,
		bugs:        make(map[simtypes.BugId]*bugState),
		towers:      make(map[simtypes.TowerId]*towerState),
		projectiles: make(map[simtypes.ProjectileId]*projectileState),
		attackPlans: make(map[simtypes.WaveId]simtypes.AttackPlan),
		nextBugId:   1,
		nextTowerId: 1,
		nextProjectileId: 1,
		playMode:    simtypes.Builder,
	}
	w.configureGrid(cols, rows, cellsPerTile)
	return w
}

// NewDefaultWorld wires a ready-to-play world in Builder mode with
// starting gold, mirroring the teacher's entity.NewECS() convenience
// constructor (systems/bootstrap in original_source).
func NewDefaultWorld(t tuning.Tuning) *World {
	w := New(t, 10, 10, 4)
	w.gold = 100
	return w
}

func (w *World) configureGrid(cols, rows, cellsPerTile int) {
	w.layout = buildLayout(TileGrid{TileCols: cols, TileRows: rows, CellsPerTile: cellsPerTile, TileEdgeLength: tileEdgeLengthPx})
	w.occ = make([]occupant, w.layout.width*w.layout.height)
	w.bugs = make(map[simtypes.BugId]*bugState)
	w.towers = make(map[simtypes.TowerId]*towerState)
	w.projectiles = make(map[simtypes.ProjectileId]*projectileState)
	w.rebuildNavigation()
	w.analytics.Dirty = true
}

func (w *World) allCells() []simtypes.Cell {
	cells := make([]simtypes.Cell, 0, len(w.occ))
	for row := 0; row < w.layout.height; row++ {
		for col := 0; col < w.layout.width; col++ {
			cells = append(cells, simtypes.Cell{Col: col, Row: row})
		}
	}
	return cells
}

func (w *World) occIndex(c simtypes.Cell) int { return c.Row*w.layout.width + c.Col }

func (w *World) inBounds(c simtypes.Cell) bool {
	return c.Col >= 0 && c.Row >= 0 && c.Col < w.layout.width && c.Row < w.layout.height
}

// Blocked implements navfield.Grid: a cell is impassable if it is a
// static wall or a tower footprint cell.
func (w *World) Blocked(c simtypes.Cell) bool {
	if !w.inBounds(c) {
		return true
	}
	if w.layout.isWallCell(c) {
		return true
	}
	return w.occ[w.occIndex(c)].kind == occupantTower
}

// Width implements navfield.Grid.
func (w *World) Width() int { return w.layout.width }

// Height implements navfield.Grid.
func (w *World) Height() int { return w.layout.height }

// ExitCells implements navfield.Grid.
func (w *World) ExitCells() []simtypes.Cell { return w.layout.exitCells() }

func (w *World) rebuildNavigation() {
	w.nav = navfield.Build(w)
}

// CellsPerTile exposes the grid's cell granularity (§6 query surface).
func (w *World) CellsPerTile() int { return w.layout.grid.CellsPerTile }

// SeedGame fixes the root seed the wave generator derives every per-wave
// PRNG stream from (§4.6, §9 "deterministic replay"). Drivers call this
// once after construction, before the first GenerateAttackPlan.
func (w *World) SeedGame(seed uint64) { w.gameSeed = seed }
