package world

import "github.com/Mikko-Finell/maze-defence/internal/simtypes"

// tileEdgeLengthPx is the tile's on-screen edge length. It has no bearing
// on simulation logic — cells are the only unit Apply ever reasons about
// — but §3 names it as part of TileGrid, so it is stored there. No query
// exposes it; the demo renderer uses its own cell size.
const tileEdgeLengthPx = 32

// TileGrid is the authored geometry a ConfigureTileGrid command resolves
// to (§3). cellsPerTile must be >= 1; tileCols and tileRows must be > 0.
type TileGrid struct {
	TileCols       int
	TileRows       int
	CellsPerTile   int
	TileEdgeLength int
}

// layout is the derived, precomputed geometry of the bordered rectangle:
// a 1-cell rim on left/right/top, the interior tile area, one walkway
// row, one visible wall row, and one hidden exit row (§3).
type layout struct {
	grid TileGrid

	width  int
	height int

	interior simtypes.CellRect

	walkwayRow int
	wallRow    int
	exitRow    int

	exitColStart int
	exitColCount int

	spawnerCells []simtypes.Cell
}

func buildLayout(grid TileGrid) layout {
	interiorW := grid.TileCols * grid.CellsPerTile
	interiorH := grid.TileRows * grid.CellsPerTile

	width := interiorW + 2 // left + right rim
	topRim := 1

	interior := simtypes.CellRect{
		Origin: simtypes.Cell{Col: 1, Row: topRim},
		Width:  interiorW,
		Height: interiorH,
	}

	walkwayRow := topRim + interiorH
	wallRow := walkwayRow + 1
	exitRow := wallRow + 1
	height := exitRow + 1

	middleTile := grid.TileCols / 2
	exitColStart := 1 + middleTile*grid.CellsPerTile
	exitColCount := grid.CellsPerTile

	l := layout{
		grid:         grid,
		width:        width,
		height:       height,
		interior:     interior,
		walkwayRow:   walkwayRow,
		wallRow:      wallRow,
		exitRow:      exitRow,
		exitColStart: exitColStart,
		exitColCount: exitColCount,
	}
	l.spawnerCells = computeSpawnerCells(l)
	return l
}

// isExitColumn reports whether col falls within the exit gap.
func (l layout) isExitColumn(col int) bool {
	return col >= l.exitColStart && col < l.exitColStart+l.exitColCount
}

// isRim reports whether c is on the top, left, or right border (any row
// strictly above the wall row, per the spawner-registry rule in §3).
func (l layout) isRim(c simtypes.Cell) bool {
	if c.Row >= l.wallRow {
		return false
	}
	return c.Row == 0 || c.Col == 0 || c.Col == l.width-1
}

// isWallCell reports whether c is a static wall, independent of tower
// occupancy (§3 invariant 9: the visible wall row is a wall on every
// column except the exit gap; the top/left/right rim is wall everywhere
// above the wall row too, and the hidden exit row is wall outside the
// exit gap).
func (l layout) isWallCell(c simtypes.Cell) bool {
	if c.Col < 0 || c.Row < 0 || c.Col >= l.width || c.Row >= l.height {
		return true
	}
	switch {
	case c.Row == l.wallRow:
		return !l.isExitColumn(c.Col)
	case c.Row == l.exitRow:
		return !l.isExitColumn(c.Col)
	case c.Row == 0:
		return true
	case c.Col == 0 || c.Col == l.width-1:
		return true
	default:
		return false
	}
}

// isExitCell reports whether c is one of the hidden exit-row exit cells.
func (l layout) isExitCell(c simtypes.Cell) bool {
	return c.Row == l.exitRow && l.isExitColumn(c.Col)
}

func computeSpawnerCells(l layout) []simtypes.Cell {
	var cells []simtypes.Cell
	for row := 0; row < l.wallRow; row++ {
		for col := 0; col < l.width; col++ {
			c := simtypes.Cell{Col: col, Row: row}
			if l.isRim(c) {
				cells = append(cells, c)
			}
		}
	}
	return cells
}

func (l layout) exitCells() []simtypes.Cell {
	cells := make([]simtypes.Cell, 0, l.exitColCount)
	for col := l.exitColStart; col < l.exitColStart+l.exitColCount; col++ {
		cells = append(cells, simtypes.Cell{Col: col, Row: l.exitRow})
	}
	return cells
}
