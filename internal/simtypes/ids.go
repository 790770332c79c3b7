// Package simtypes defines the shared shapes crossing every component
// boundary in the simulation kernel: entity ids, enums, geometry, and the
// command/event/query DTOs. It has no behavior of its own.
package simtypes

// BugId, TowerId and ProjectileId are monotonic, strictly increasing per
// world instance (spec.md §3 invariant 6). Zero is never a valid id; it is
// used as the "no entity" sentinel in query results.
type BugId uint64

// TowerId identifies a placed tower.
type TowerId uint64

// ProjectileId identifies an in-flight projectile.
type ProjectileId uint64

// WaveId identifies a generated AttackPlan.
type WaveId uint64
