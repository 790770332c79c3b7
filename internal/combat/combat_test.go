package combat

import (
	"testing"

	"github.com/Mikko-Finell/maze-defence/internal/simtypes"
)

func TestEmitFiresOnlyWhenCooldownIsZero(t *testing.T) {
	targets := []simtypes.TowerTarget{
		{Tower: 1, Bug: 10},
		{Tower: 2, Bug: 20},
	}
	cooldowns := []simtypes.TowerView{
		{Id: 1, Cooldown: 0},
		{Id: 2, Cooldown: 500},
	}

	fired := Emit(targets, cooldowns)
	if len(fired) != 1 {
		t.Fatalf("expected 1 fire, got %d: %#v", len(fired), fired)
	}
	if fired[0].Tower != 1 || fired[0].Target != 10 {
		t.Fatalf("wrong fire emitted: %#v", fired[0])
	}
}

func TestEmitSkipsTargetWithUnknownTower(t *testing.T) {
	targets := []simtypes.TowerTarget{
		{Tower: 99, Bug: 10},
	}
	cooldowns := []simtypes.TowerView{
		{Id: 1, Cooldown: 0},
	}

	fired := Emit(targets, cooldowns)
	if len(fired) != 0 {
		t.Fatalf("expected no fire for unknown tower, got %#v", fired)
	}
}

func TestEmitHandlesMultipleReadyTowers(t *testing.T) {
	targets := []simtypes.TowerTarget{
		{Tower: 1, Bug: 10},
		{Tower: 2, Bug: 20},
		{Tower: 3, Bug: 30},
	}
	cooldowns := []simtypes.TowerView{
		{Id: 1, Cooldown: 0},
		{Id: 2, Cooldown: 0},
		{Id: 3, Cooldown: 1},
	}

	fired := Emit(targets, cooldowns)
	if len(fired) != 2 {
		t.Fatalf("expected 2 fires, got %d: %#v", len(fired), fired)
	}
	if fired[0].Tower != 1 || fired[1].Tower != 2 {
		t.Fatalf("unexpected fire order: %#v", fired)
	}
}
