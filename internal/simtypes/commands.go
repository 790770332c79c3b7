package simtypes

// Command is the sealed command taxonomy accepted by World.Apply (§4.1).
// Every concrete command is a value type; Apply never mutates the command
// it receives.
type Command interface {
	isCommand()
}

// ConfigureTileGrid rebuilds the world's geometry from scratch.
type ConfigureTileGrid struct {
	TileCols     int
	TileRows     int
	CellsPerTile int
}

// SetPlayMode switches between Builder and Attack.
type SetPlayMode struct {
	Mode PlayMode
}

// Tick advances simulated time by dt_ms milliseconds.
type Tick struct {
	DtMs int64
}

// SpawnBug creates a new bug at cell, provided the cell is free.
type SpawnBug struct {
	Species string
	Health  int
	StepMs  int64
	Cell    Cell
	Tint    uint32
}

// StepBug moves a bug one cell in direction, subject to reservation rules.
type StepBug struct {
	Bug       BugId
	Direction Direction
}

// PlaceTower creates a tower of kind at origin, Builder mode only.
type PlaceTower struct {
	Kind   TowerKind
	Origin Cell
}

// RemoveTower destroys a tower, Builder mode only.
type RemoveTower struct {
	Tower TowerId
}

// FireProjectile launches a projectile from tower at target, Attack mode
// only, subject to cooldown.
type FireProjectile struct {
	Tower  TowerId
	Target BugId
}

// GenerateAttackPlan runs the wave generator and stores the resulting plan.
type GenerateAttackPlan struct {
	WaveId     WaveId
	Difficulty float64
}

// StartWave records the wave's effective tier and reward multiplier.
type StartWave struct {
	WaveId     WaveId
	Difficulty float64
}

// ResolveRound applies a round's outcome to the difficulty tier and, on
// loss, removes towers.
type ResolveRound struct {
	Outcome RoundOutcome
}

// RequestAnalyticsRefresh recomputes the analytics report immediately and
// emits AnalyticsUpdated.
type RequestAnalyticsRefresh struct{}

func (ConfigureTileGrid) isCommand()      {}
func (SetPlayMode) isCommand()            {}
func (Tick) isCommand()                   {}
func (SpawnBug) isCommand()               {}
func (StepBug) isCommand()                {}
func (PlaceTower) isCommand()             {}
func (RemoveTower) isCommand()            {}
func (FireProjectile) isCommand()         {}
func (GenerateAttackPlan) isCommand()     {}
func (StartWave) isCommand()              {}
func (ResolveRound) isCommand()           {}
func (RequestAnalyticsRefresh) isCommand() {}
