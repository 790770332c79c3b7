// Package navfield builds the static navigation field (§4.2): a
// reverse-BFS Manhattan-distance-to-exit grid, generalized from the
// teacher's pkg/hexmap/pathfinding.go A* search — both are shortest-path
// searches over a grid of passable/impassable cells, but the kernel needs
// a dense distance field seeded from every exit cell rather than a single
// start/goal path, so the search direction is reversed and it runs to
// exhaustion instead of stopping at a goal.
package navfield

import "github.com/Mikko-Finell/maze-defence/internal/simtypes"

// Grid is the minimal read-only surface the builder needs from the world.
// It depends on simtypes only, never on the world package, so navfield
// stays a leaf with no cyclic import back to its only caller.
type Grid interface {
	Width() int
	Height() int
	Blocked(c simtypes.Cell) bool
	ExitCells() []simtypes.Cell
}

// Build runs a multi-source reverse BFS from every exit cell, producing a
// dense row-major distance grid. Walls and tower footprints (anything
// Grid.Blocked reports) are treated as infinitely far; exit cells carry
// distance 0. Neighbour tie-breaks during the BFS follow the fixed
// North/East/South/West order so two builds over identical input always
// visit cells in the same sequence — not observable in the final
// distances, but it keeps the algorithm itself deterministic end to end.
func Build(g Grid) simtypes.NavigationView {
	w, h := g.Width(), g.Height()
	dist := make([]uint16, w*h)
	for i := range dist {
		dist[i] = simtypes.Infinite
	}

	idx := func(c simtypes.Cell) int { return c.Row*w + c.Col }
	inBounds := func(c simtypes.Cell) bool {
		return c.Col >= 0 && c.Row >= 0 && c.Col < w && c.Row < h
	}

	queue := make([]simtypes.Cell, 0, w*h)
	for _, e := range g.ExitCells() {
		if !inBounds(e) {
			continue
		}
		if dist[idx(e)] != simtypes.Infinite {
			continue
		}
		dist[idx(e)] = 0
		queue = append(queue, e)
	}

	for head := 0; head < len(queue); head++ {
		cur := queue[head]
		curDist := dist[idx(cur)]
		for _, d := range simtypes.Directions {
			next := cur.Add(d)
			if !inBounds(next) || g.Blocked(next) {
				continue
			}
			if dist[idx(next)] != simtypes.Infinite {
				continue
			}
			dist[idx(next)] = curDist + 1
			queue = append(queue, next)
		}
	}

	return simtypes.NavigationView{Width: w, Height: h, Distances: dist}
}
