package simtypes

// BugView is a read-only snapshot of one bug, as exposed by World.BugViews
// and consumed by the crowd planner and targeting system (§6).
type BugView struct {
	Id           BugId
	Cell         Cell
	Health       int
	StepMs       int64
	AccumMs      int64
	ReadyForStep bool
	Species      string
	Tint         uint32
}

// TowerView is a read-only snapshot of one tower. RangeInCells is resolved
// once at placement time from the tuning/defs-authored stats in effect at
// that moment (§6), so every consumer (analytics coverage, targeting) sees
// the same range without recomputing it from TowerKind constants.
type TowerView struct {
	Id           TowerId
	Kind         TowerKind
	Region       CellRect
	Cooldown     int64
	RangeInCells int
}

// ProjectileView is a read-only snapshot of one projectile.
type ProjectileView struct {
	Id           ProjectileId
	Tower        TowerId
	Target       BugId
	Start        HalfPoint
	End          HalfPoint
	DistanceHalf int64
	ElapsedMs    int64
	TravelTimeMs int64
	Damage       int
}

// NavigationView exposes the static distance-to-exit grid read-only,
// row-major over width*height cells (§4.2).
type NavigationView struct {
	Width   int
	Height  int
	Distances []uint16
}

// At returns the navigation distance at a cell, or Infinite if out of
// bounds.
func (v NavigationView) At(c Cell) uint16 {
	if c.Col < 0 || c.Row < 0 || c.Col >= v.Width || c.Row >= v.Height {
		return Infinite
	}
	return v.Distances[c.Row*v.Width+c.Col]
}

// Infinite is the saturating "unreachable" distance sentinel (§4.2).
const Infinite uint16 = 0xFFFF

// TowerTarget is the output of the targeting system for one tower on one
// tick (§4.4).
type TowerTarget struct {
	Tower       TowerId
	Bug         BugId
	TowerCenter HalfPoint
	BugCenter   HalfPoint
}

// AttackPlanRecord is one scheduled spawn in a generated AttackPlan (§4.6
// stage 13).
type AttackPlanRecord struct {
	TimeMs           int64
	SpeciesId        int
	IndexWithinSpecies int
	Health           int
	StepMs           int64
}

// AttackPlan is the full deterministic spawn schedule for one wave.
type AttackPlan struct {
	WaveId      WaveId
	Records     []AttackPlanRecord
	SpeciesMergeEvents []SpeciesMergeTelemetry
}

// SpeciesMergeTelemetry records one wave-generator stage decision, either
// a "species_merge" (§4.6 stage 8) or a "duration_compression" (stage 12)
// record, emitted even when that stage does not trigger.
type SpeciesMergeTelemetry struct {
	Stage      string
	Triggered  bool
	FromSpecies int
	IntoSpecies int
}

// Analytics is the lazily-recomputed report described in §4.7, augmented
// with the congestion_hot_cells field carried over from
// original_source/systems/analytics/src/metrics.rs.
type Analytics struct {
	CoverageMean          float64
	FiringCompletePercent float64
	ShortestPathLength    int
	TowerCount            int
	TotalDps              float64
	CongestionHotCells    int
	Dirty                 bool
}
