// maze-defence is the command-line entry point for the simulation kernel,
// replacing the teacher's single cmd/game/main.go (one hard-coded
// ebiten.RunGame call) with a cobra root and three subcommands: run (the
// headless driver loop), demo (a thin ebiten-rendered edge), and serve
// (a websocket spectator feed), grounded on vovakirdan-tui-arcade's
// cmd/arcade root/subcommand layout.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagSeed           int64
	flagTickMs         int64
	flagTileCols       int
	flagTileRows       int
	flagCellsPerTile   int
	flagDBPath         string
	flagTowerDefsPath  string
	flagWaveGenOverlay string
	flagTuningEnvPath  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "maze-defence",
	Short: "Deterministic tile-based tower-defence simulation kernel",
	Long: `maze-defence runs the command/event simulation kernel described in
SPEC_FULL.md: a single World mutated only through World.Apply, advanced by
a driver that composes the crowd-movement, targeting, and combat systems
every tick.

Available commands:
  run    - Run the headless simulation loop, logging rejections and events
  demo   - Run a thin ebiten-rendered edge over the same driver loop
  serve  - Run the simulation with a websocket spectator feed attached

Examples:
  maze-defence run --seed 42
  maze-defence demo
  maze-defence serve --addr :8080`,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 1, "root game seed for wave-generator PRNG streams")
	rootCmd.PersistentFlags().Int64Var(&flagTickMs, "tick-ms", 16, "simulation tick size in milliseconds")
	rootCmd.PersistentFlags().IntVar(&flagTileCols, "tile-cols", 10, "tile grid width")
	rootCmd.PersistentFlags().IntVar(&flagTileRows, "tile-rows", 10, "tile grid height")
	rootCmd.PersistentFlags().IntVar(&flagCellsPerTile, "cells-per-tile", 4, "cells per tile edge")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.maze-defence/runs.db", "path to the replay/fingerprint database")
	rootCmd.PersistentFlags().StringVar(&flagTowerDefsPath, "tower-defs", "", "path to a YAML tower definitions file (internal/defs); unset skips loading")
	rootCmd.PersistentFlags().StringVar(&flagWaveGenOverlay, "wavegen-overlay", "", "path to a YAML wave-generator tuning overlay (internal/defs); unset skips loading")
	rootCmd.PersistentFlags().StringVar(&flagTuningEnvPath, "tuning-env", ".env", "path to a .env tuning overlay (internal/tuning); missing file is not an error")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(serveCmd)
}
