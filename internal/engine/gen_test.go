package engine

import (
	"math/rand"
	"testing"
)

func TestGenerateSphericalCloud(t *testing.T) {
	bound := Boundary{X: 10, Y: 10, Z: 10}
	rng := rand.New(rand.NewSource(7))

	particles := GenerateSphericalCloud(bound, 200, 1.0, 0.5, rng)
	if len(particles) == 0 || len(particles) > 200 {
		t.Fatalf("generated %d particles, want 1..200", len(particles))
	}

	for i := range particles {
		if !bound.Contains(particles[i].Pos().Translation) {
			t.Errorf("particle %d outside box: %v", i, particles[i].Pos().Translation)
		}
	}

	// Pruning guarantees no pair sits inside the repulsive core. Exact
	// coincidences are tolerated, matching the clamp at the box corners.
	for i := range particles {
		for j := i + 1; j < len(particles); j++ {
			r := particles[i].Pos().Translation.Sub(particles[j].Pos().Translation).Norm()
			if r != 0 && r < pruneDistance {
				t.Errorf("pair (%d,%d) separation %v below prune distance", i, j, r)
			}
		}
	}
}

func TestGenerateSphericalCloud_ZeroTempIsAtRest(t *testing.T) {
	bound := NewBoundary()
	rng := rand.New(rand.NewSource(3))
	for _, p := range GenerateSphericalCloud(bound, 50, 0.5, 0, rng) {
		if v := p.Vel().Linear; v.Norm() != 0 {
			t.Fatalf("zero-temp cloud has moving particle: %v", v)
		}
	}
}

func TestGenerateLattice(t *testing.T) {
	bound := Boundary{X: 10, Y: 10, Z: 10}
	particles := GenerateLattice(bound, 3, 0.5)
	if len(particles) != 27 {
		t.Fatalf("lattice size = %d, want 27", len(particles))
	}

	for i := range particles {
		if !bound.Contains(particles[i].Pos().Translation) {
			t.Errorf("lattice particle %d outside box", i)
		}
	}

	// The lattice is centered: its extremes sit symmetrically around the
	// box center.
	center := bound.Center()
	lo := particles[0].Pos().Translation
	hi := particles[len(particles)-1].Pos().Translation
	mid := lo.Add(hi).Scale(0.5)
	if mid.Sub(center).Norm() > 1e-12 {
		t.Errorf("lattice midpoint %v, want %v", mid, center)
	}
}
