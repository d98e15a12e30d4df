package engine

import "github.com/gfgen/Van-Der-Waals-Interactions/internal/vec"

// ForceTorque is the generalized output of a pair interaction acting on the
// target particle.
type ForceTorque struct {
	Force  vec.Vec3
	Torque vec.Vec3
}

func (ft ForceTorque) Add(o ForceTorque) ForceTorque {
	return ForceTorque{Force: ft.Force.Add(o.Force), Torque: ft.Torque.Add(o.Torque)}
}

// Interaction is the pluggable pairwise law. Implementations must be pure
// and obey three contracts:
//
//   - zero output when the pair separation exceeds cutoff;
//   - the returned potential is shifted so it is exactly zero at the
//     cutoff separation, then halved so that summing it symmetrically over
//     both particles of a pair counts the pair energy once;
//   - neighbor is 1 iff the separation is below the classification radius
//     (2*R0), 0 otherwise. It feeds display coloring only.
//
// All aggregation happens in the caller.
type Interaction interface {
	// Evaluate returns the force (and torque, for oriented laws) exerted
	// on target by other, the pair's halved shifted potential, and the
	// neighbor flag.
	Evaluate(target, other vec.Pose, cutoff float64) (ForceTorque, float64, int)
	Name() string
}

// LennardJones is the default law: a 12-6 power-law potential with one
// length scale R0 that roughly sets how close particles approach before
// being repelled. Force magnitude goes as (2*rep/r^14 - att/r^8) in scaled
// units r = separation/R0; repulsion and attraction can be re-weighted
// independently.
type LennardJones struct {
	R0         float64
	Repulsion  float64
	Attraction float64
}

func NewLennardJones() *LennardJones {
	return &LennardJones{R0: 0.15, Repulsion: 1.0, Attraction: 1.0}
}

func (lj *LennardJones) Name() string { return "lennard-jones" }

func (lj *LennardJones) Evaluate(target, other vec.Pose, cutoff float64) (ForceTorque, float64, int) {
	r := target.Translation.Sub(other.Translation)
	rNormSq := r.NormSq()

	if rNormSq > cutoff*cutoff {
		return ForceTorque{}, 0, 0
	}

	rUnit := r.Div(lj.R0)
	rUnit2 := rUnit.NormSq()
	rUnit6 := rUnit2 * rUnit2 * rUnit2
	rUnit8 := rUnit2 * rUnit6
	rUnit12 := rUnit6 * rUnit6
	rUnit14 := rUnit6 * rUnit8

	force := rUnit.Scale(24.0 * (2.0*lj.Repulsion/rUnit14 - lj.Attraction/rUnit8))

	// Shift the potential so it is exactly zero at the cutoff, then halve
	// it: each particle of a pair reports half the pair energy.
	rangeUnit := cutoff / lj.R0
	rangeUnit2 := rangeUnit * rangeUnit
	rangeUnit6 := rangeUnit2 * rangeUnit2 * rangeUnit2
	rangeUnit12 := rangeUnit6 * rangeUnit6

	freePotential := 4.0 * (lj.Repulsion/rangeUnit12 - lj.Attraction/rangeUnit6) * lj.R0
	potential := 4.0 * (lj.Repulsion/rUnit12 - lj.Attraction/rUnit6) * lj.R0
	adjusted := (potential - freePotential) / 2.0

	return ForceTorque{Force: force}, adjusted, lj.neighbor(rNormSq)
}

func (lj *LennardJones) neighbor(rNormSq float64) int {
	if rNormSq < 4.0*lj.R0*lj.R0 {
		return 1
	}
	return 0
}
