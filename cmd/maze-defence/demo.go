package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/spf13/cobra"

	"github.com/Mikko-Finell/maze-defence/internal/assets"
	"github.com/Mikko-Finell/maze-defence/internal/driver"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run a thin ebiten-rendered edge over the simulation driver",
	Long: `Opens a window and draws the current tick's bugs, towers, and HUD
analytics as flat colored rectangles and bitmap text. This is a viewer on
top of the driver loop, the way the teacher's cmd/game/main.go is a thin
ebiten.Game wrapper around its state machine — it holds no simulation
logic of its own.`,
	Run: runDemo,
}

const cellPx = 16

func runDemo(cmd *cobra.Command, args []string) {
	t := loadTuning()
	g := &edgeGame{driver: newDriver(t)}

	ebiten.SetWindowSize(flagTileCols*flagCellsPerTile*cellPx, flagTileRows*flagCellsPerTile*cellPx+40)
	ebiten.SetWindowTitle("maze-defence demo")
	if err := ebiten.RunGame(g); err != nil {
		fmt.Println(err)
	}
}

// edgeGame is the minimal ebiten.Game implementation: Update pumps the
// driver one tick, Draw renders its current read-only views.
type edgeGame struct {
	driver *driver.Driver
}

func (g *edgeGame) Update() error {
	g.driver.Pump(flagTickMs)
	return nil
}

func (g *edgeGame) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 20, G: 20, B: 24, A: 255})

	for _, bug := range g.driver.World.BugViews() {
		x := float32(bug.Cell.Col * cellPx)
		y := float32(bug.Cell.Row * cellPx)
		vector.DrawFilledRect(screen, x, y, cellPx-2, cellPx-2, bugColor(bug.Tint), true)
	}

	for _, tw := range g.driver.World.TowerViews() {
		x := float32(tw.Region.Origin.Col * cellPx)
		y := float32(tw.Region.Origin.Row * cellPx)
		w := float32(tw.Region.Width * cellPx)
		h := float32(tw.Region.Height * cellPx)
		vector.StrokeRect(screen, x, y, w, h, 2, color.RGBA{R: 90, G: 200, B: 255, A: 255}, true)
	}

	a := g.driver.World.Analytics()
	hud := fmt.Sprintf("gold=%d tier=%d towers=%d dps=%.1f coverage=%.2f path=%d",
		g.driver.World.Gold(), g.driver.World.DifficultyTier(), a.TowerCount, a.TotalDps, a.CoverageMean, a.ShortestPathLength)
	text.Draw(screen, hud, assets.UIFont(), 4, flagTileRows*flagCellsPerTile*cellPx+20, color.White)
}

func (g *edgeGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return flagTileCols * flagCellsPerTile * cellPx, flagTileRows*flagCellsPerTile*cellPx + 40
}

func bugColor(tint uint32) color.RGBA {
	return color.RGBA{
		R: uint8(tint >> 16),
		G: uint8(tint >> 8),
		B: uint8(tint),
		A: 255,
	}
}
