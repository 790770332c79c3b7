// Package defs loads the tower and wave-generator constant tables from
// YAML authoring files, generalizing the teacher's internal/defs/loader.go
// (package-level *Library maps populated from a JSON file on disk) to
// gopkg.in/yaml.v3 and the spec's tower-kind/wave-tuning shape.
package defs

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"github.com/Mikko-Finell/maze-defence/internal/tuning"
)

// TowerDefinition is one tower kind's authored constants, matching the
// constant-function values TowerKind otherwise hard-codes (§9
// "Polymorphism over tower/bug kinds").
type TowerDefinition struct {
	ID                      string `yaml:"id"`
	FireCooldownMs          int64  `yaml:"fire_cooldown_ms"`
	ProjectileTravelTimeMs  int64  `yaml:"projectile_travel_time_ms"`
	Damage                  int    `yaml:"damage"`
	RangeInTiles            int    `yaml:"range_in_tiles"`
	PlacementCost           uint64 `yaml:"placement_cost"`
}

// TowerLibrary holds every loaded tower definition, keyed by ID.
var TowerLibrary map[string]TowerDefinition

// LoadTowerDefinitions reads a YAML list of tower definitions from path
// and populates TowerLibrary.
func LoadTowerDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("defs: read tower definitions: %w", err)
	}

	var towerDefs []TowerDefinition
	if err := yaml.Unmarshal(file, &towerDefs); err != nil {
		return fmt.Errorf("defs: unmarshal tower definitions: %w", err)
	}

	TowerLibrary = make(map[string]TowerDefinition, len(towerDefs))
	for _, def := range towerDefs {
		TowerLibrary[def.ID] = def
	}

	log.Info("loaded tower definitions", "count", len(TowerLibrary))
	return nil
}

// waveGenOverlay mirrors a subset of tuning.WaveGen with every field
// optional, so a deployment's YAML file only needs to name the constants
// it retunes. WaveGen fields not listed here cannot be set from YAML.
type waveGenOverlay struct {
	CountMin *float64 `yaml:"count_min"`
	CountCap *float64 `yaml:"count_cap"`
	CountDMid *float64 `yaml:"count_d_mid"`
	CountA    *float64 `yaml:"count_a"`

	HPBase *float64 `yaml:"hp_base"`
	HPSoft *float64 `yaml:"hp_soft"`
	HPK    *float64 `yaml:"hp_k"`
	HPG    *float64 `yaml:"hp_g"`

	SpeedSoft *float64 `yaml:"speed_soft"`
	SpeedK    *float64 `yaml:"speed_k"`
	SpeedG    *float64 `yaml:"speed_g"`

	MaxSpeciesCount *int `yaml:"max_species_count"`

	CadenceBaseMs      *float64 `yaml:"cadence_base_ms"`
	CadenceSlopeMsPerD *float64 `yaml:"cadence_slope_ms_per_d"`

	TargetDurationBaseMs  *float64 `yaml:"target_duration_base_ms"`
	TargetDurationSlopeMs *float64 `yaml:"target_duration_slope_ms"`
}

// LoadWaveGenOverlay reads a YAML file of wave-generator overrides and
// applies any fields it sets on top of base, returning the merged result.
// A missing file is not an error; base is returned unchanged (§6 "Wave
// generator defaults listed in §4.6" — authored content only retunes,
// never replaces, the compiled-in defaults).
func LoadWaveGenOverlay(path string, base tuning.WaveGen) (tuning.WaveGen, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return base, nil
		}
		return base, fmt.Errorf("defs: read wave generator overlay: %w", err)
	}

	var overlay waveGenOverlay
	if err := yaml.Unmarshal(file, &overlay); err != nil {
		return base, fmt.Errorf("defs: unmarshal wave generator overlay: %w", err)
	}

	applyOverlay(&base, overlay)
	log.Info("loaded wave generator overlay", "path", path)
	return base, nil
}

func applyOverlay(t *tuning.WaveGen, o waveGenOverlay) {
	assign(&t.CountMin, o.CountMin)
	assign(&t.CountCap, o.CountCap)
	assign(&t.CountDMid, o.CountDMid)
	assign(&t.CountA, o.CountA)
	assign(&t.HPBase, o.HPBase)
	assign(&t.HPSoft, o.HPSoft)
	assign(&t.HPK, o.HPK)
	assign(&t.HPG, o.HPG)
	assign(&t.SpeedSoft, o.SpeedSoft)
	assign(&t.SpeedK, o.SpeedK)
	assign(&t.SpeedG, o.SpeedG)
	assignInt(&t.MaxSpeciesCount, o.MaxSpeciesCount)
	assign(&t.CadenceBaseMs, o.CadenceBaseMs)
	assign(&t.CadenceSlopeMsPerD, o.CadenceSlopeMsPerD)
	assign(&t.TargetDurationBaseMs, o.TargetDurationBaseMs)
	assign(&t.TargetDurationSlopeMs, o.TargetDurationSlopeMs)
}

func assign(dst *float64, src *float64) {
	if src != nil {
		*dst = *src
	}
}

func assignInt(dst *int, src *int) {
	if src != nil {
		*dst = *src
	}
}
