package engine

import (
	"math"

	"github.com/gfgen/Van-Der-Waals-Interactions/internal/vec"
)

// CuboidRepulsion is an anisotropic variant of the pair law: attraction is
// the plain isotropic r^-8 term, but the repulsive core is modulated by the
// orientation of both particles so it is stiffest face-on, giving the
// repulsion a cube-shaped reach. Because the modulation depends on each
// particle's rotation, the law also exerts torque on the target.
type CuboidRepulsion struct {
	R0        float64
	Intensity float64
	// RepulsionWeight scales the oriented repulsive core relative to the
	// attraction.
	RepulsionWeight float64
	// WellDepth sets how sharply the cuboid modulation switches between
	// face and corner approach.
	WellDepth float64
}

func NewCuboidRepulsion() *CuboidRepulsion {
	return &CuboidRepulsion{
		R0:              0.15,
		Intensity:       24.0,
		RepulsionWeight: 0.3,
		WellDepth:       1.0,
	}
}

func (c *CuboidRepulsion) Name() string { return "cuboid" }

func (c *CuboidRepulsion) Evaluate(target, other vec.Pose, cutoff float64) (ForceTorque, float64, int) {
	r := target.Translation.Sub(other.Translation)
	rNormSq := r.NormSq()

	neighbor := 0
	if rNormSq < 4.0*c.R0*c.R0 {
		neighbor = 1
	}

	if rNormSq >= cutoff*cutoff {
		return ForceTorque{}, 0, neighbor
	}

	rScaled := r.Div(c.R0)
	rScaled2 := rScaled.NormSq()
	rScaled6 := rScaled2 * rScaled2 * rScaled2
	rScaled8 := rScaled2 * rScaled6
	rScaled12 := rScaled6 * rScaled6
	rScaled14 := rScaled6 * rScaled8

	var totalForce, totalTorque vec.Vec3

	// Isotropic attraction.
	totalForce = totalForce.Sub(rScaled.Scale(c.Intensity / rScaled8))

	// Repulsion modulated by the other particle's orientation.
	facOther := newCuboidFactor(other.Rotation.Inverse().Rotate(r))
	gradOther := other.Rotation.Rotate(facOther.gradient())

	totalForce = totalForce.Add(rScaled.Scale(
		c.Intensity * c.RepulsionWeight * sigmoid(remapCuboid(facOther.value), c.WellDepth) / rScaled14))
	totalForce = totalForce.Sub(gradOther.Scale(
		c.Intensity * c.RepulsionWeight / rScaled12 / 12.0 * c.R0 *
			dSigmoid(remapCuboid(facOther.value), c.WellDepth) * dRemapCuboid))

	// Repulsion modulated by the target's own orientation; this part also
	// twists the target.
	facTarget := newCuboidFactor(target.Rotation.Inverse().Rotate(r.Neg()))
	gradTarget := target.Rotation.Rotate(facTarget.gradient()).Neg()

	totalForce = totalForce.Add(rScaled.Scale(
		c.Intensity * c.RepulsionWeight * sigmoid(remapCuboid(facTarget.value), c.WellDepth) / rScaled14))
	totalForce = totalForce.Sub(gradTarget.Scale(
		c.Intensity * c.RepulsionWeight / rScaled12 / 12.0 * c.R0 *
			dSigmoid(remapCuboid(facTarget.value), c.WellDepth) * dRemapCuboid))
	totalTorque = totalTorque.Sub(facTarget.rotationGradient(target.Rotation).Scale(
		c.Intensity * c.RepulsionWeight / rScaled12 / 12.0 * c.R0 *
			dSigmoid(remapCuboid(facTarget.value), c.WellDepth) * dRemapCuboid))

	// Potential, shifted to vanish at the cutoff and halved against double
	// counting. The orientation factors are treated as frozen for the
	// shift, matching the force expression above.
	rangeScaled := cutoff / c.R0
	rangeScaled2 := rangeScaled * rangeScaled
	rangeScaled6 := rangeScaled2 * rangeScaled2 * rangeScaled2
	rangeScaled12 := rangeScaled6 * rangeScaled6

	free := -c.Intensity / rangeScaled6 / 6.0 * c.R0
	free += c.Intensity * c.RepulsionWeight * sigmoid(remapCuboid(facOther.value), c.WellDepth) / rangeScaled12 / 12.0 * c.R0
	free += c.Intensity * c.RepulsionWeight * sigmoid(remapCuboid(facTarget.value), c.WellDepth) / rangeScaled12 / 12.0 * c.R0

	potential := -c.Intensity / rScaled6 / 6.0 * c.R0
	potential += c.Intensity * c.RepulsionWeight * sigmoid(remapCuboid(facOther.value), c.WellDepth) / rScaled12 / 12.0 * c.R0
	potential += c.Intensity * c.RepulsionWeight * sigmoid(remapCuboid(facTarget.value), c.WellDepth) / rScaled12 / 12.0 * c.R0

	return ForceTorque{Force: totalForce, Torque: totalTorque}, (potential - free) / 2.0, neighbor
}

// cuboidFactor captures, for a separation expressed in a particle's own
// orientation frame, how face-on the approach is: the value ranges from
// 3^(-1/2) (corner approach) to 1 (face approach), the inverse of the
// length of the corresponding point on a unit cube.
type cuboidFactor struct {
	rOri     vec.Vec3
	rOriLen  float64
	rOriUnit vec.Vec3
	value    float64
	maxIndex int
	sign     float64
}

func newCuboidFactor(rOri vec.Vec3) cuboidFactor {
	length := rOri.Norm()
	unit := rOri.Div(length)
	value, maxIndex := unit.Abs().MaxElement()
	sign := 1.0
	if unit.At(maxIndex) < 0 {
		sign = -1.0
	}
	return cuboidFactor{
		rOri:     rOri,
		rOriLen:  length,
		rOriUnit: unit,
		value:    value,
		maxIndex: maxIndex,
		sign:     sign,
	}
}

// gradient returns d(value)/d(rOri) in the orientation frame.
func (f cuboidFactor) gradient() vec.Vec3 {
	var grad vec.Vec3
	len3 := f.rOriLen * f.rOriLen * f.rOriLen
	for i := 0; i < 3; i++ {
		if i == f.maxIndex {
			grad.Set(i, 1.0/f.rOriLen-f.rOri.At(i)*f.rOri.At(i)/len3)
		} else {
			grad.Set(i, -f.rOri.At(i)*f.rOri.At(f.maxIndex)/len3)
		}
	}
	return grad.Scale(f.sign)
}

// rotationGradient estimates d(value)/d(rotation) of the owning particle as
// a scaled rotation axis in the world frame. The estimate follows the
// shortest arc from the current approach direction to the nearest face
// normal; it is approximate but keeps torque consistent with the force's
// modulation.
func (f cuboidFactor) rotationGradient(rotation vec.Quat) vec.Vec3 {
	maxBasis := vec.Vec3{}
	maxBasis.Set(f.maxIndex, f.sign)

	arc := vec.QuatFromRotationArc(f.rOriUnit, maxBasis)

	axis, _ := arc.AxisAngle()
	ortho := f.rOri.Sub(axis.Scale(f.rOri.Dot(axis)))
	orthoLen := ortho.Norm()
	if orthoLen < 1e-12 {
		return vec.Vec3{}
	}
	omega := f.gradient().Norm() / orthoLen

	world := rotation.Mul(arc.Inverse()).Mul(rotation.Inverse())
	worldAxis, _ := world.AxisAngle()
	return worldAxis.Scale(omega)
}

// remapCuboid rescales the cuboid factor into the active range of the
// logistic gate.
func remapCuboid(x float64) float64 {
	return -80.0 * (x - 0.98)
}

const dRemapCuboid = -80.0

func sigmoid(x, depth float64) float64 {
	return depth/(1.0+math.Exp(-x)) + 1.0 - depth
}

func dSigmoid(x, depth float64) float64 {
	expX := math.Exp(x)
	return depth * expX / ((1.0 + expX) * (1.0 + expX))
}
