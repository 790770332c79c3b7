package simtypes

// Event is the sealed event taxonomy emitted by World.Apply (§6). Events
// are the only observable effect of a command; rejections are events too,
// never errors (§7).
type Event interface {
	isEvent()
}

// TimeAdvanced is emitted once per Tick in Attack mode, before any
// per-bug/per-projectile events.
type TimeAdvanced struct {
	DtMs int64
}

// BugSpawned is emitted when SpawnBug succeeds.
type BugSpawned struct {
	Bug     BugId
	Cell    Cell
	Health  int
	StepMs  int64
	Species string
	Tint    uint32
}

// SpawnBugRejected is emitted when SpawnBug fails validation.
type SpawnBugRejected struct {
	Reason SpawnBugRejection
}

// BugAdvanced is emitted when a bug successfully steps to a new cell.
type BugAdvanced struct {
	Bug  BugId
	From Cell
	To   Cell
}

// BugStepRejected is emitted when StepBug fails validation.
type BugStepRejected struct {
	Bug    BugId
	Reason BugStepRejection
}

// BugExited is emitted when a bug's step lands it on the exit row; the bug
// is removed in the same command.
type BugExited struct {
	Bug  BugId
	Cell Cell
}

// BugDamaged is emitted when a projectile hits a living bug.
type BugDamaged struct {
	Bug       BugId
	Damage    int
	Remaining int
}

// BugDied is emitted when a bug's health reaches zero.
type BugDied struct {
	Bug BugId
}

// TowerPlaced is emitted when PlaceTower succeeds.
type TowerPlaced struct {
	Tower  TowerId
	Kind   TowerKind
	Region CellRect
}

// TowerPlacementRejected is emitted when PlaceTower fails validation.
type TowerPlacementRejected struct {
	Reason TowerPlacementRejection
}

// TowerRemoved is emitted when RemoveTower succeeds.
type TowerRemoved struct {
	Tower TowerId
}

// TowerRemovalRejected is emitted when RemoveTower fails validation.
type TowerRemovalRejected struct {
	Reason TowerRemovalRejection
}

// ProjectileFired is emitted when FireProjectile succeeds.
type ProjectileFired struct {
	Projectile ProjectileId
	Tower      TowerId
	Target     BugId
}

// ProjectileHit is emitted when a projectile reaches its target alive.
type ProjectileHit struct {
	Projectile ProjectileId
	Target     BugId
	Damage     int
}

// ProjectileExpired is emitted when a projectile reaches its target after
// the target has already died.
type ProjectileExpired struct {
	Projectile ProjectileId
}

// ProjectileRejected is emitted when FireProjectile fails validation.
type ProjectileRejected struct {
	Reason ProjectileRejection
}

// PlayModeChanged is emitted when SetPlayMode actually changes the mode.
type PlayModeChanged struct {
	Mode PlayMode
}

// DifficultyTierChanged is emitted when ResolveRound changes the tier.
type DifficultyTierChanged struct {
	Tier int
}

// PendingWaveDifficultyChanged is emitted when the next wave's difficulty
// scalar is recomputed.
type PendingWaveDifficultyChanged struct {
	Difficulty float64
}

// WaveStarted is emitted when StartWave succeeds.
type WaveStarted struct {
	WaveId           WaveId
	TierEffective    int
	RewardMultiplier uint64
}

// AttackPlanReady is emitted when GenerateAttackPlan succeeds.
type AttackPlanReady struct {
	WaveId WaveId
}

// HardWinAchieved is emitted alongside DifficultyTierChanged when a round
// resolves as Win{Hard}.
type HardWinAchieved struct {
	Tier int
}

// MazeLayoutChanged is emitted whenever walls, towers, or grid geometry
// change, marking the navigation field rebuilt and analytics dirty.
type MazeLayoutChanged struct{}

// AnalyticsUpdated is emitted when the analytics report is recomputed.
type AnalyticsUpdated struct{}

// RoundLost is emitted when ResolveRound processes a Loss outcome.
type RoundLost struct {
	TowersRemoved []TowerId
}

func (TimeAdvanced) isEvent()                 {}
func (SpawnBugRejected) isEvent()             {}
func (BugSpawned) isEvent()                   {}
func (BugAdvanced) isEvent()                  {}
func (BugStepRejected) isEvent()              {}
func (BugExited) isEvent()                    {}
func (BugDamaged) isEvent()                   {}
func (BugDied) isEvent()                      {}
func (TowerPlaced) isEvent()                  {}
func (TowerPlacementRejected) isEvent()       {}
func (TowerRemoved) isEvent()                 {}
func (TowerRemovalRejected) isEvent()         {}
func (ProjectileFired) isEvent()              {}
func (ProjectileHit) isEvent()                {}
func (ProjectileExpired) isEvent()            {}
func (ProjectileRejected) isEvent()           {}
func (PlayModeChanged) isEvent()              {}
func (DifficultyTierChanged) isEvent()        {}
func (PendingWaveDifficultyChanged) isEvent() {}
func (WaveStarted) isEvent()                  {}
func (AttackPlanReady) isEvent()              {}
func (HardWinAchieved) isEvent()              {}
func (MazeLayoutChanged) isEvent()            {}
func (AnalyticsUpdated) isEvent()             {}
func (RoundLost) isEvent()                    {}
