package engine

import (
	"math/rand"
	"sort"
	"testing"
)

func randomParticles(n int, boxLen float64, rng *rand.Rand) []Particle {
	particles := make([]Particle, n)
	for i := range particles {
		particles[i] = NewParticle().SetPos(
			rng.Float64()*boxLen,
			rng.Float64()*boxLen,
			rng.Float64()*boxLen,
		)
	}
	return particles
}

// pairKey orders a pair so sets can be compared.
func pairKey(i, j int) [2]int {
	if i > j {
		i, j = j, i
	}
	return [2]int{i, j}
}

func TestGrid_NeighborSearchEquivalence(t *testing.T) {
	// With reach covering the cutoff, the pair set found through the grid
	// must match a brute-force O(N^2) distance scan.
	rng := rand.New(rand.NewSource(42))
	particles := randomParticles(200, 5.0, rng)

	unitSize := 1.0
	reach := 1
	grid := NewGrid(unitSize, reach)
	grid.Rebuild(particles)
	cutoff := grid.CutoffRange()

	gridPairs := make(map[[2]int]bool)
	for i := range particles {
		grid.ForNeighbors(grid.CellOf(i), func(j int) {
			if j == i {
				return
			}
			r := particles[i].Pos().Translation.Sub(particles[j].Pos().Translation)
			if r.NormSq() <= cutoff*cutoff {
				gridPairs[pairKey(i, j)] = true
			}
		})
	}

	brutePairs := make(map[[2]int]bool)
	for i := range particles {
		for j := i + 1; j < len(particles); j++ {
			r := particles[i].Pos().Translation.Sub(particles[j].Pos().Translation)
			if r.NormSq() <= cutoff*cutoff {
				brutePairs[pairKey(i, j)] = true
			}
		}
	}

	if len(gridPairs) != len(brutePairs) {
		t.Fatalf("pair count mismatch: grid %d, brute force %d", len(gridPairs), len(brutePairs))
	}
	for k := range brutePairs {
		if !gridPairs[k] {
			t.Errorf("pair %v found by brute force but not via grid", k)
		}
	}
}

func TestGrid_NegativeCoordinates(t *testing.T) {
	// Positions below the origin must still land in valid re-based cells.
	particles := []Particle{
		NewParticle().SetPos(-2.3, -0.1, 4.0),
		NewParticle().SetPos(-2.4, -0.2, 4.1),
		NewParticle().SetPos(3.0, 3.0, 3.0),
	}
	grid := NewGrid(1.0, 1)
	grid.Rebuild(particles)

	var found []int
	grid.ForNeighbors(grid.CellOf(0), func(j int) {
		found = append(found, j)
	})
	sort.Ints(found)

	// The two close particles share a cell; the far one is many cells away.
	if len(found) != 2 || found[0] != 0 || found[1] != 1 {
		t.Errorf("neighbors of particle 0 = %v, want [0 1]", found)
	}
}

func TestGrid_ReachExpandsNeighborhood(t *testing.T) {
	particles := []Particle{
		NewParticle().SetPos(0.5, 0.5, 0.5),
		NewParticle().SetPos(2.5, 0.5, 0.5), // two cells away
	}

	count := func(reach int) int {
		grid := NewGrid(1.0, reach)
		grid.Rebuild(particles)
		n := 0
		grid.ForNeighbors(grid.CellOf(0), func(j int) {
			if j != 0 {
				n++
			}
		})
		return n
	}

	if got := count(1); got != 0 {
		t.Errorf("reach 1 should not see a particle 2 cells away, got %d", got)
	}
	if got := count(2); got != 1 {
		t.Errorf("reach 2 should see it, got %d", got)
	}
}

func TestGrid_RebuildIsFresh(t *testing.T) {
	grid := NewGrid(1.0, 1)

	grid.Rebuild(randomParticles(50, 4.0, rand.New(rand.NewSource(1))))
	grid.Rebuild([]Particle{NewParticle().SetPos(1.5, 1.5, 1.5)})

	seen := 0
	grid.ForNeighbors(grid.CellOf(0), func(j int) { seen++ })
	if seen != 1 {
		t.Errorf("after rebuild with one particle, saw %d occupants", seen)
	}
}

func TestGrid_EmptyParticles(t *testing.T) {
	grid := NewGrid(1.0, 1)
	grid.Rebuild(nil) // must not panic
	if grid.CutoffRange() != 1.0 {
		t.Errorf("CutoffRange = %v", grid.CutoffRange())
	}
}
