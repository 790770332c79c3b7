package main

import (
	"fmt"
	"os"

	"github.com/Mikko-Finell/maze-defence/internal/defs"
	"github.com/Mikko-Finell/maze-defence/internal/driver"
	"github.com/Mikko-Finell/maze-defence/internal/simtypes"
	"github.com/Mikko-Finell/maze-defence/internal/tuning"
	"github.com/Mikko-Finell/maze-defence/internal/world"
)

// loadTuning applies the .env overlay (internal/tuning), the wave-generator
// YAML overlay, and any authored tower definitions (both internal/defs) on
// top of the compiled-in defaults, in that order, so an authored YAML
// tower definition always wins over the .env scalars it overlaps with.
// Every step is optional: a flag left at its default is a no-op, matching
// the "missing overlay is not an error" contract both loaders already
// implement.
func loadTuning() tuning.Tuning {
	t, err := tuning.LoadOverlay(flagTuningEnvPath, tuning.Default())
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not load tuning overlay %q: %v\n", flagTuningEnvPath, err)
		t = tuning.Default()
	}

	if flagWaveGenOverlay != "" {
		waveGen, err := defs.LoadWaveGenOverlay(flagWaveGenOverlay, t.WaveGen)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not load wave generator overlay %q: %v\n", flagWaveGenOverlay, err)
		} else {
			t.WaveGen = waveGen
		}
	}

	if flagTowerDefsPath != "" {
		if err := defs.LoadTowerDefinitions(flagTowerDefsPath); err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not load tower definitions %q: %v\n", flagTowerDefsPath, err)
		} else if basic, ok := defs.TowerLibrary["basic"]; ok {
			t.Combat = tuning.Combat{
				BasicFireCooldownMs:         basic.FireCooldownMs,
				BasicProjectileTravelTimeMs: basic.ProjectileTravelTimeMs,
				BasicDamage:                 basic.Damage,
				BasicRangeInTiles:           basic.RangeInTiles,
			}
		}
	}

	return t
}

// newDriver wires a fresh world sized from the root flags, attack mode
// engaged, and seeded for deterministic wave generation. Every subcommand
// shares this construction path so `run`, `demo`, and `serve` observe the
// identical kernel for a given seed and the same authored tuning.
func newDriver(t tuning.Tuning) *driver.Driver {
	w := world.New(t, flagTileCols, flagTileRows, flagCellsPerTile)
	w.SeedGame(uint64(flagSeed))
	w.Apply(simtypes.SetPlayMode{Mode: simtypes.Attack})
	return driver.New(w, t)
}
