package navfield

import (
	"testing"

	"github.com/Mikko-Finell/maze-defence/internal/simtypes"
)

// fakeGrid is a minimal Grid for exercising Build without a full World.
type fakeGrid struct {
	w, h    int
	blocked map[simtypes.Cell]bool
	exits   []simtypes.Cell
}

func (g *fakeGrid) Width() int  { return g.w }
func (g *fakeGrid) Height() int { return g.h }
func (g *fakeGrid) Blocked(c simtypes.Cell) bool {
	return g.blocked[c]
}
func (g *fakeGrid) ExitCells() []simtypes.Cell { return g.exits }

func TestBuildExitIsZero(t *testing.T) {
	g := &fakeGrid{
		w: 5, h: 5,
		blocked: map[simtypes.Cell]bool{},
		exits:   []simtypes.Cell{{Col: 4, Row: 2}},
	}
	view := Build(g)
	if got := view.Distances[2*5+4]; got != 0 {
		t.Fatalf("exit cell distance = %d, want 0", got)
	}
}

func TestBuildNeighborDistanceInvariant(t *testing.T) {
	g := &fakeGrid{
		w: 6, h: 6,
		blocked: map[simtypes.Cell]bool{},
		exits:   []simtypes.Cell{{Col: 5, Row: 5}},
	}
	view := Build(g)
	idx := func(c simtypes.Cell) int { return c.Row*g.w + c.Col }

	for row := 0; row < g.h; row++ {
		for col := 0; col < g.w; col++ {
			c := simtypes.Cell{Col: col, Row: row}
			d := view.Distances[idx(c)]
			if d == simtypes.Infinite {
				t.Fatalf("open cell %+v unreachable", c)
			}
			for _, dir := range simtypes.Directions {
				n := c.Add(dir)
				if n.Col < 0 || n.Row < 0 || n.Col >= g.w || n.Row >= g.h {
					continue
				}
				nd := view.Distances[idx(n)]
				diff := int(d) - int(nd)
				if diff < -1 || diff > 1 {
					t.Fatalf("neighbour distances %+v(%d) and %+v(%d) differ by more than 1", c, d, n, nd)
				}
			}
		}
	}
}

func TestBuildBlockedCellIsUnreachable(t *testing.T) {
	blocked := map[simtypes.Cell]bool{
		{Col: 1, Row: 0}: true,
		{Col: 1, Row: 1}: true,
		{Col: 1, Row: 2}: true,
	}
	g := &fakeGrid{
		w: 3, h: 3,
		blocked: blocked,
		exits:   []simtypes.Cell{{Col: 2, Row: 0}},
	}
	view := Build(g)
	// column 0 is walled off from the exit by the blocked column 1.
	idx := func(c simtypes.Cell) int { return c.Row*g.w + c.Col }
	for row := 0; row < 3; row++ {
		c := simtypes.Cell{Col: 0, Row: row}
		if view.Distances[idx(c)] != simtypes.Infinite {
			t.Fatalf("cell %+v should be unreachable behind the wall, got %d", c, view.Distances[idx(c)])
		}
	}
}

func TestBuildMultipleExitsTakeNearest(t *testing.T) {
	g := &fakeGrid{
		w: 5, h: 1,
		blocked: map[simtypes.Cell]bool{},
		exits:   []simtypes.Cell{{Col: 0, Row: 0}, {Col: 4, Row: 0}},
	}
	view := Build(g)
	mid := simtypes.Cell{Col: 2, Row: 0}
	if got := view.Distances[mid.Row*5+mid.Col]; got != 2 {
		t.Fatalf("midpoint distance = %d, want 2 (nearest of two exits)", got)
	}
}
