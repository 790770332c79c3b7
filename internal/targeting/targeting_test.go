package targeting

import (
	"testing"

	"github.com/Mikko-Finell/maze-defence/internal/simtypes"
)

type fakeWorld struct {
	towers []simtypes.TowerView
	bugs   []simtypes.BugView
}

func (w *fakeWorld) TowerViews() []simtypes.TowerView { return w.towers }
func (w *fakeWorld) BugViews() []simtypes.BugView     { return w.bugs }

func TestSelectPicksNearestBugInRange(t *testing.T) {
	w := &fakeWorld{
		towers: []simtypes.TowerView{
			{Id: 1, Kind: simtypes.Basic, Region: simtypes.CellRect{Origin: simtypes.Cell{Col: 0, Row: 0}, Width: 2, Height: 2}, RangeInCells: 4},
		},
		bugs: []simtypes.BugView{
			{Id: 1, Cell: simtypes.Cell{Col: 10, Row: 10}}, // far, out of range
			{Id: 2, Cell: simtypes.Cell{Col: 2, Row: 0}},    // near
		},
	}

	targets := Select(w)
	if len(targets) != 1 {
		t.Fatalf("expected 1 target, got %d: %#v", len(targets), targets)
	}
	if targets[0].Bug != 2 {
		t.Fatalf("targeted bug %d, want 2 (nearest in range)", targets[0].Bug)
	}
}

func TestSelectSkipsTowerWithNoBugInRange(t *testing.T) {
	w := &fakeWorld{
		towers: []simtypes.TowerView{
			{Id: 1, Kind: simtypes.Basic, Region: simtypes.CellRect{Origin: simtypes.Cell{Col: 0, Row: 0}, Width: 2, Height: 2}, RangeInCells: 4},
		},
		bugs: []simtypes.BugView{
			{Id: 1, Cell: simtypes.Cell{Col: 100, Row: 100}},
		},
	}

	targets := Select(w)
	if len(targets) != 0 {
		t.Fatalf("expected no targets, got %#v", targets)
	}
}

func TestSelectTieBreaksByBugId(t *testing.T) {
	// Two bugs at the exact same distance from the tower; the lower bug id
	// wins the tie (§4.4 fixed lexicographic tie-break).
	w := &fakeWorld{
		towers: []simtypes.TowerView{
			{Id: 1, Kind: simtypes.Basic, Region: simtypes.CellRect{Origin: simtypes.Cell{Col: 0, Row: 0}, Width: 2, Height: 2}, RangeInCells: 4},
		},
		bugs: []simtypes.BugView{
			{Id: 5, Cell: simtypes.Cell{Col: 1, Row: 2}},
			{Id: 3, Cell: simtypes.Cell{Col: 2, Row: 1}},
		},
	}

	targets := Select(w)
	if len(targets) != 1 {
		t.Fatalf("expected 1 target, got %d", len(targets))
	}
	// Tower center at (2,2) half units; bug5 center (1*2+1, 2*2+1)=(3,5);
	// bug3 center (2*2+1,1*2+1)=(5,3). distSq: bug5: (3-2)^2+(5-2)^2=1+9=10.
	// bug3: (5-2)^2+(3-2)^2=9+1=10. Equal distance -> lower id (3) wins.
	if targets[0].Bug != 3 {
		t.Fatalf("tie-break picked bug %d, want 3 (lower id)", targets[0].Bug)
	}
}
