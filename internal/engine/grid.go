package engine

import (
	"math"

	"github.com/gfgen/Van-Der-Waals-Interactions/internal/vec"
)

// Grid bucket-sorts particle positions into uniform cubic cells so the
// force pass only visits pairs within reach cells of each other
// (Chebyshev distance), turning the O(N^2) pair scan into roughly O(N*k).
// Cells are re-based every rebuild so the minimum occupied index per axis
// maps to zero and the backing array stays dense.
//
// The grid carries no state between steps beyond reused slice capacity;
// it is rebuilt from scratch each step.
type Grid struct {
	unitSize float64
	reach    int

	dims  [3]int
	cells [][]int  // dense, index = (x*dims[1]+y)*dims[2]+z
	locs  [][3]int // cell coordinate of each particle, parallel to particles
}

func NewGrid(unitSize float64, reach int) *Grid {
	return &Grid{unitSize: unitSize, reach: reach}
}

func (g *Grid) UnitSize() float64 { return g.unitSize }
func (g *Grid) Reach() int        { return g.reach }

// CutoffRange is the physical interaction cutoff the grid guarantees:
// pairs farther apart than unitSize*reach may be silently skipped, so the
// interaction law's own cutoff must not exceed it.
func (g *Grid) CutoffRange() float64 {
	return g.unitSize * float64(g.reach)
}

// Rebuild sorts the particles into cells. Cell slices are reused between
// rebuilds to avoid per-step allocation.
func (g *Grid) Rebuild(particles []Particle) {
	n := len(particles)
	if cap(g.locs) < n {
		g.locs = make([][3]int, n)
	}
	g.locs = g.locs[:n]
	if n == 0 {
		g.dims = [3]int{}
		return
	}

	minIdx := [3]int{math.MaxInt, math.MaxInt, math.MaxInt}
	maxIdx := [3]int{math.MinInt, math.MinInt, math.MinInt}
	for i := range particles {
		loc := g.cellIndex(particles[i].pos.Translation)
		g.locs[i] = loc
		for a := 0; a < 3; a++ {
			if loc[a] < minIdx[a] {
				minIdx[a] = loc[a]
			}
			if loc[a] > maxIdx[a] {
				maxIdx[a] = loc[a]
			}
		}
	}

	// Re-base so the smallest index per axis is zero.
	for a := 0; a < 3; a++ {
		g.dims[a] = maxIdx[a] - minIdx[a] + 1
	}
	for i := range g.locs {
		for a := 0; a < 3; a++ {
			g.locs[i][a] -= minIdx[a]
		}
	}

	total := g.dims[0] * g.dims[1] * g.dims[2]
	if cap(g.cells) < total {
		g.cells = make([][]int, total)
	}
	g.cells = g.cells[:total]
	for i := range g.cells {
		g.cells[i] = g.cells[i][:0]
	}
	for i, loc := range g.locs {
		c := g.flat(loc)
		g.cells[c] = append(g.cells[c], i)
	}
}

// CellOf returns the re-based cell coordinate of particle i as of the last
// Rebuild.
func (g *Grid) CellOf(i int) [3]int {
	return g.locs[i]
}

// ForNeighbors calls fn with the index of every particle in cells within
// Chebyshev distance reach of loc, clipped to the grid bounds. There is no
// wraparound; the caller sees each particle at most once, including the
// occupants of loc itself.
func (g *Grid) ForNeighbors(loc [3]int, fn func(pid int)) {
	x0, x1 := clipRange(loc[0], g.reach, g.dims[0])
	y0, y1 := clipRange(loc[1], g.reach, g.dims[1])
	z0, z1 := clipRange(loc[2], g.reach, g.dims[2])
	for x := x0; x <= x1; x++ {
		for y := y0; y <= y1; y++ {
			for z := z0; z <= z1; z++ {
				for _, pid := range g.cells[g.flat([3]int{x, y, z})] {
					fn(pid)
				}
			}
		}
	}
}

func (g *Grid) flat(loc [3]int) int {
	return (loc[0]*g.dims[1]+loc[1])*g.dims[2] + loc[2]
}

func (g *Grid) cellIndex(pos vec.Vec3) [3]int {
	return [3]int{
		int(math.Floor(pos.X / g.unitSize)),
		int(math.Floor(pos.Y / g.unitSize)),
		int(math.Floor(pos.Z / g.unitSize)),
	}
}

func clipRange(center, reach, dim int) (int, int) {
	lo := center - reach
	if lo < 0 {
		lo = 0
	}
	hi := center + reach
	if hi > dim-1 {
		hi = dim - 1
	}
	return lo, hi
}
