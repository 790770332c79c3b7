package defs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Mikko-Finell/maze-defence/internal/tuning"
)

func TestLoadTowerDefinitions(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "towers.yaml")
	content := `
- id: basic
  fire_cooldown_ms: 1000
  projectile_travel_time_ms: 1000
  damage: 1
  range_in_tiles: 4
  placement_cost: 25
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	if err := LoadTowerDefinitions(path); err != nil {
		t.Fatalf("LoadTowerDefinitions: %v", err)
	}
	def, ok := TowerLibrary["basic"]
	if !ok {
		t.Fatalf("expected \"basic\" in TowerLibrary, got %#v", TowerLibrary)
	}
	if def.Damage != 1 || def.PlacementCost != 25 {
		t.Fatalf("unexpected definition: %+v", def)
	}
}

func TestLoadTowerDefinitionsMissingFile(t *testing.T) {
	if err := LoadTowerDefinitions(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected an error for a missing file")
	}
}

func TestLoadWaveGenOverlayMissingFileReturnsBaseUnchanged(t *testing.T) {
	base := tuning.Default().WaveGen
	got, err := LoadWaveGenOverlay(filepath.Join(t.TempDir(), "missing.yaml"), base)
	if err != nil {
		t.Fatalf("missing overlay file should not error: %v", err)
	}
	if got != base {
		t.Fatalf("expected base unchanged, got %+v", got)
	}
}

func TestLoadWaveGenOverlayAppliesOnlySetFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "wavegen.yaml")
	content := `
hp_base: 99
max_species_count: 2
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	base := tuning.Default().WaveGen
	got, err := LoadWaveGenOverlay(path, base)
	if err != nil {
		t.Fatalf("LoadWaveGenOverlay: %v", err)
	}
	if got.HPBase != 99 {
		t.Fatalf("HPBase = %v, want 99", got.HPBase)
	}
	if got.MaxSpeciesCount != 2 {
		t.Fatalf("MaxSpeciesCount = %v, want 2", got.MaxSpeciesCount)
	}
	if got.CountMin != base.CountMin {
		t.Fatalf("unset field CountMin changed: %v != %v", got.CountMin, base.CountMin)
	}
}
