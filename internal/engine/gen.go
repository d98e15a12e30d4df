package engine

import (
	"math/rand"

	"github.com/gfgen/Van-Der-Waals-Interactions/internal/vec"
)

// pruneDistance is the minimum pair separation kept by the generators; any
// closer and the repulsive core would launch particles on the first step.
const pruneDistance = 0.15

// GenerateSphericalCloud samples n particles from a Gaussian cloud of
// width sigma around the boundary center, clamped into the box, with
// Gaussian velocities scaled by temp. Pairs closer than the interaction
// core are pruned, so the returned slice may be shorter than n.
func GenerateSphericalCloud(bound Boundary, n int, sigma, temp float64, rng *rand.Rand) []Particle {
	particles := make([]Particle, 0, n)
	for i := 0; i < n; i++ {
		pos := vec.New3(rng.NormFloat64(), rng.NormFloat64(), rng.NormFloat64()).
			Scale(sigma).
			Add(bound.Center())

		pos = pos.Min(bound.HiCorner()).Max(bound.LoCorner())

		particles = append(particles, NewParticle().
			SetPos(pos.X, pos.Y, pos.Z).
			SetVel(
				rng.NormFloat64()*temp,
				rng.NormFloat64()*temp,
				rng.NormFloat64()*temp,
			))
	}
	return prune(particles)
}

// GenerateLattice places perAxis^3 particles on a cubic lattice centered in
// the box, for reproducible initial conditions.
func GenerateLattice(bound Boundary, perAxis int, spacing float64) []Particle {
	side := float64(perAxis-1) * spacing
	origin := bound.Center().Sub(vec.New3(side/2, side/2, side/2))

	particles := make([]Particle, 0, perAxis*perAxis*perAxis)
	for x := 0; x < perAxis; x++ {
		for y := 0; y < perAxis; y++ {
			for z := 0; z < perAxis; z++ {
				pos := origin.Add(vec.New3(
					float64(x)*spacing,
					float64(y)*spacing,
					float64(z)*spacing,
				))
				pos = pos.Min(bound.HiCorner()).Max(bound.LoCorner())
				particles = append(particles, NewParticle().SetPos(pos.X, pos.Y, pos.Z))
			}
		}
	}
	return particles
}

// prune drops particles that landed within the repulsive core of an
// already-kept one.
func prune(particles []Particle) []Particle {
	kept := make([]Particle, 0, len(particles))
	for i := range particles {
		ok := true
		for j := range kept {
			r := particles[i].pos.Translation.Sub(kept[j].pos.Translation)
			rNorm := r.Norm()
			if rNorm == 0 {
				continue
			}
			if rNorm < pruneDistance {
				ok = false
				break
			}
		}
		if ok {
			kept = append(kept, particles[i])
		}
	}
	return kept
}
