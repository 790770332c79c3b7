// Package crowd implements the congestion-aware movement planner (§4.3):
// on every TimeAdvanced event it ranks each ready bug's candidate steps by
// a navigation-gradient/congestion tuple, falling back to a bounded
// detour BFS when no local move helps, and emits the resulting StepBug
// commands for the driver to submit. It generalizes the teacher's
// internal/system update-loop shape (a struct holding reusable scratch
// state, run once per tick against a read-only view) to the spec's
// bordered-rectangle grid instead of the teacher's hex map.
package crowd

import (
	"sort"

	"github.com/Mikko-Finell/maze-defence/internal/simtypes"
	"github.com/Mikko-Finell/maze-defence/internal/tuning"
)

// WorldView is the read-only projection the planner needs (§5 "systems
// receive read-only views"). *world.World satisfies it without either
// package importing the other.
type WorldView interface {
	Width() int
	Height() int
	NavigationField() simtypes.NavigationView
	BugViews() []simtypes.BugView
	BugAt(c simtypes.Cell) (simtypes.BugId, bool)
	Blocked(c simtypes.Cell) bool
	IsExitColumn(col int) bool
}

// Planner owns every scratch buffer the movement procedure reuses across
// ticks: the congestion map, per-bug stall counters, and each bug's
// two-tick last-cell ring (§5 "scratch buffers ... owned by their
// respective system structs and reused across ticks").
type Planner struct {
	cfg tuning.Movement

	congestion []int
	width      int
	height     int

	lastCell map[simtypes.BugId][2]simtypes.Cell
	stall    map[simtypes.BugId]int
}

// New builds a planner configured from the movement tuning (§4.3).
func New(cfg tuning.Movement) *Planner {
	return &Planner{
		cfg:      cfg,
		lastCell: make(map[simtypes.BugId][2]simtypes.Cell),
		stall:    make(map[simtypes.BugId]int),
	}
}

func (p *Planner) index(c simtypes.Cell) int { return c.Row*p.width + c.Col }

func (p *Planner) ensureSized(w WorldView) {
	width, height := w.Width(), w.Height()
	if p.width == width && p.height == height && p.congestion != nil {
		for i := range p.congestion {
			p.congestion[i] = 0
		}
		return
	}
	p.width, p.height = width, height
	p.congestion = make([]int, width*height)
}

// Plan runs the full per-tick procedure and returns the StepBug commands
// to submit, in the fixed ascending-id order they were decided (§4.3,
// §5 determinism invariant 2).
func (p *Planner) Plan(w WorldView) []simtypes.StepBug {
	p.ensureSized(w)

	bugs := w.BugViews() // already ascending by id (§3 invariant 7)
	nav := w.NavigationField()

	p.pruneDeadEntries(bugs)

	// Stage 1-2: congestion map from navigation-gradient lookahead.
	for _, b := range bugs {
		p.accumulateCongestion(nav, b.Cell)
	}

	reservedDest := make(map[simtypes.Cell]bool, len(bugs))
	vacatedOrigin := make(map[simtypes.Cell]bool, len(bugs))

	var steps []simtypes.StepBug

	for _, b := range bugs {
		if !b.ReadyForStep {
			continue
		}
		dir, ok := p.decideStep(w, nav, b, reservedDest, vacatedOrigin)
		if !ok {
			p.stall[b.Id]++
			continue
		}
		to := b.Cell.Add(dir)
		reservedDest[to] = true
		vacatedOrigin[b.Cell] = true
		p.stall[b.Id] = 0
		p.pushLastCell(b.Id, b.Cell)
		steps = append(steps, simtypes.StepBug{Bug: b.Id, Direction: dir})
	}

	return steps
}

// Congestion returns a snapshot of the per-cell congestion counts
// accumulated by the most recent Plan call, row-major over the grid's
// current dimensions (§4.3 stage 2). The caller owns the returned slice;
// Plan zeroes and reuses its own internal buffer on the next call.
func (p *Planner) Congestion() []int {
	out := make([]int, len(p.congestion))
	copy(out, p.congestion)
	return out
}

func (p *Planner) pruneDeadEntries(bugs []simtypes.BugView) {
	alive := make(map[simtypes.BugId]bool, len(bugs))
	for _, b := range bugs {
		alive[b.Id] = true
	}
	for id := range p.lastCell {
		if !alive[id] {
			delete(p.lastCell, id)
		}
	}
	for id := range p.stall {
		if !alive[id] {
			delete(p.stall, id)
		}
	}
}

func (p *Planner) pushLastCell(id simtypes.BugId, c simtypes.Cell) {
	ring := p.lastCell[id]
	ring[0] = ring[1]
	ring[1] = c
	p.lastCell[id] = ring
}

func (p *Planner) inLastCellRing(id simtypes.BugId, c simtypes.Cell) bool {
	ring, ok := p.lastCell[id]
	if !ok {
		return false
	}
	return ring[0] == c || ring[1] == c
}

// accumulateCongestion walks the navigation gradient greedily downhill
// from from, up to CongestionLookahead cells, incrementing the counter on
// every cell visited except from itself (§4.3 stage 2).
func (p *Planner) accumulateCongestion(nav simtypes.NavigationView, from simtypes.Cell) {
	cur := from
	curDist := nav.At(cur)
	for i := 0; i < p.cfg.CongestionLookahead; i++ {
		next, nextDist, ok := bestNeighbour(nav, cur)
		if !ok || nextDist >= curDist {
			break
		}
		p.congestion[p.index(next)]++
		cur, curDist = next, nextDist
	}
}

// bestNeighbour returns the in-bounds neighbour with the smallest
// navigation distance, fixed N/E/S/W tie-break order (§4.2, §5).
func bestNeighbour(nav simtypes.NavigationView, from simtypes.Cell) (simtypes.Cell, uint16, bool) {
	found := false
	var best simtypes.Cell
	var bestDist uint16
	for _, dir := range simtypes.Directions {
		n := from.Add(dir)
		d := nav.At(n)
		if d == simtypes.Infinite {
			continue
		}
		if !found || d < bestDist {
			found, best, bestDist = true, n, d
		}
	}
	return best, bestDist, found
}

type candidate struct {
	dir          simtypes.Direction
	cell         simtypes.Cell
	dist         uint16
	distDelta    int64
	congestion   int
}

func (p *Planner) legalNeighbours(w WorldView, b simtypes.BugView, curDist uint16, reservedDest, vacatedOrigin map[simtypes.Cell]bool) []candidate {
	var out []candidate
	for _, dir := range simtypes.Directions {
		n := b.Cell.Add(dir)
		if n.Col < 0 || n.Row < 0 || n.Col >= w.Width() || n.Row >= w.Height() {
			continue
		}
		if w.Blocked(n) {
			continue
		}
		if occupant, ok := w.BugAt(n); ok && occupant != b.Id && !vacatedOrigin[n] {
			continue
		}
		if reservedDest[n] {
			continue
		}
		d := w.NavigationField().At(n)
		if d == simtypes.Infinite {
			continue
		}
		out = append(out, candidate{
			dir:        dir,
			cell:       n,
			dist:       d,
			distDelta:  int64(d) - int64(curDist),
			congestion: p.congestion[p.index(n)],
		})
	}
	return out
}

func rankCandidates(cands []candidate) {
	sort.Slice(cands, func(i, j int) bool {
		a, b := cands[i], cands[j]
		if a.dist != b.dist {
			return a.dist < b.dist
		}
		if a.congestion != b.congestion {
			return a.congestion < b.congestion
		}
		if a.cell.Col != b.cell.Col {
			return a.cell.Col < b.cell.Col
		}
		return a.cell.Row < b.cell.Row
	})
}

// decideStep runs stages 3's ranking procedure for a single bug: progress
// step, flat side-step, detour BFS, or stall (§4.3).
func (p *Planner) decideStep(w WorldView, nav simtypes.NavigationView, b simtypes.BugView, reservedDest, vacatedOrigin map[simtypes.Cell]bool) (simtypes.Direction, bool) {
	curDist := nav.At(b.Cell)
	cands := p.legalNeighbours(w, b, curDist, reservedDest, vacatedOrigin)
	rankCandidates(cands)

	for _, c := range cands {
		if c.distDelta < 0 {
			return c.dir, true
		}
	}

	curCongestion := p.congestion[p.index(b.Cell)]
	for _, c := range cands {
		if c.distDelta == 0 && c.congestion < curCongestion && !p.inLastCellRing(b.Id, c.cell) {
			return c.dir, true
		}
	}

	return p.detourBFS(w, nav, b, curDist, reservedDest, vacatedOrigin)
}

type bfsNode struct {
	cell  simtypes.Cell
	first simtypes.Direction
	hasFirst bool
}

// detourBFS runs a bounded breadth-first search from the bug's current
// cell, accepting the first discovered node whose navigation distance
// improves on the start, or else the globally best-ranked node reached
// within the radius (§4.3 stage 3 "Detour BFS").
func (p *Planner) detourBFS(w WorldView, nav simtypes.NavigationView, b simtypes.BugView, startDist uint16, reservedDest, vacatedOrigin map[simtypes.Cell]bool) (simtypes.Direction, bool) {
	visited := map[simtypes.Cell]bool{b.Cell: true}
	queue := []bfsNode{{cell: b.Cell}}

	var bestNode bfsNode
	bestDist := simtypes.Infinite
	bestCongestion := 0
	haveBest := false

	for depth := 0; depth < p.cfg.DetourRadius && len(queue) > 0; depth++ {
		var next []bfsNode
		for _, node := range queue {
			for _, dir := range simtypes.Directions {
				n := node.cell.Add(dir)
				if visited[n] {
					continue
				}
				if n.Col < 0 || n.Row < 0 || n.Col >= w.Width() || n.Row >= w.Height() {
					continue
				}
				if w.Blocked(n) {
					continue
				}
				if occupant, ok := w.BugAt(n); ok && occupant != b.Id && !vacatedOrigin[n] {
					continue
				}
				if reservedDest[n] {
					continue
				}
				d := nav.At(n)
				if d == simtypes.Infinite {
					continue
				}
				visited[n] = true

				first := dir
				hasFirst := true
				if node.hasFirst {
					first = node.first
					hasFirst = true
				}
				child := bfsNode{cell: n, first: first, hasFirst: hasFirst}

				if d < startDist {
					return first, true
				}

				congestion := p.congestion[p.index(n)]
				if !haveBest || d < bestDist || (d == bestDist && congestion < bestCongestion) ||
					(d == bestDist && congestion == bestCongestion && lessCell(n, bestNode.cell)) {
					bestNode, bestDist, bestCongestion, haveBest = child, d, congestion, true
				}

				next = append(next, child)
			}
		}
		queue = next
	}

	if !haveBest {
		return 0, false
	}
	return bestNode.first, true
}

func lessCell(a, b simtypes.Cell) bool {
	if a.Col != b.Col {
		return a.Col < b.Col
	}
	return a.Row < b.Row
}
