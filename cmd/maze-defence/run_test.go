package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Mikko-Finell/maze-defence/internal/simtypes"
	"github.com/Mikko-Finell/maze-defence/internal/tuning"
)

func TestFingerprintDeterministic(t *testing.T) {
	events := []simtypes.Event{
		simtypes.TimeAdvanced{DtMs: 100},
		simtypes.BugAdvanced{Bug: 1, From: simtypes.Cell{Col: 0, Row: 0}, To: simtypes.Cell{Col: 0, Row: 1}},
	}
	a := fingerprint(events)
	b := fingerprint(events)
	if a != b {
		t.Fatalf("fingerprint not deterministic: %q != %q", a, b)
	}
}

func TestFingerprintDiffersOnDifferentEvents(t *testing.T) {
	a := fingerprint([]simtypes.Event{simtypes.TimeAdvanced{DtMs: 100}})
	b := fingerprint([]simtypes.Event{simtypes.TimeAdvanced{DtMs: 200}})
	if a == b {
		t.Fatalf("fingerprint identical for differing events")
	}
}

func TestFingerprintEmptyEventsIsStable(t *testing.T) {
	a := fingerprint(nil)
	b := fingerprint([]simtypes.Event{})
	if a != b {
		t.Fatalf("fingerprint differs for nil vs empty slice: %q != %q", a, b)
	}
}

func resetTuningFlags(t *testing.T) {
	t.Helper()
	prevEnv, prevTower, prevWaveGen := flagTuningEnvPath, flagTowerDefsPath, flagWaveGenOverlay
	flagTuningEnvPath = filepath.Join(t.TempDir(), "missing.env")
	flagTowerDefsPath = ""
	flagWaveGenOverlay = ""
	t.Cleanup(func() {
		flagTuningEnvPath, flagTowerDefsPath, flagWaveGenOverlay = prevEnv, prevTower, prevWaveGen
	})
}

func TestLoadTuningWithNoOverlaysReturnsDefaults(t *testing.T) {
	resetTuningFlags(t)
	got := loadTuning()
	if got != tuning.Default() {
		t.Fatalf("expected defaults unchanged with no overlays configured")
	}
}

func TestLoadTuningAppliesTowerDefsOverlay(t *testing.T) {
	resetTuningFlags(t)
	path := filepath.Join(t.TempDir(), "towers.yaml")
	content := "- id: basic\n  fire_cooldown_ms: 250\n  projectile_travel_time_ms: 400\n  damage: 9\n  range_in_tiles: 7\n  placement_cost: 25\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	flagTowerDefsPath = path

	got := loadTuning()
	if got.Combat.BasicFireCooldownMs != 250 {
		t.Fatalf("BasicFireCooldownMs = %d, want 250", got.Combat.BasicFireCooldownMs)
	}
	if got.Combat.BasicDamage != 9 {
		t.Fatalf("BasicDamage = %d, want 9", got.Combat.BasicDamage)
	}
	if got.Combat.BasicRangeInTiles != 7 {
		t.Fatalf("BasicRangeInTiles = %d, want 7", got.Combat.BasicRangeInTiles)
	}
}

func TestLoadTuningAppliesWaveGenOverlay(t *testing.T) {
	resetTuningFlags(t)
	path := filepath.Join(t.TempDir(), "wavegen.yaml")
	if err := os.WriteFile(path, []byte("hp_base: 42\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	flagWaveGenOverlay = path

	got := loadTuning()
	if got.WaveGen.HPBase != 42 {
		t.Fatalf("HPBase = %v, want 42", got.WaveGen.HPBase)
	}
}
