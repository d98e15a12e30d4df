package vec

import "math"

// Quat is a rotation quaternion (w + xi + yj + zk). Operations assume unit
// length; callers that integrate rotations should renormalize periodically.
type Quat struct {
	W, X, Y, Z float64
}

var IdentityQuat = Quat{W: 1}

// QuatFromAxisAngle builds a rotation of angle radians about the given axis.
// The axis does not need to be normalized.
func QuatFromAxisAngle(axis Vec3, angle float64) Quat {
	n := axis.Norm()
	if n == 0 {
		return IdentityQuat
	}
	half := angle / 2
	s := math.Sin(half) / n
	return Quat{
		W: math.Cos(half),
		X: axis.X * s,
		Y: axis.Y * s,
		Z: axis.Z * s,
	}
}

// QuatFromScaledAxis builds a rotation from an axis-angle vector whose
// direction is the axis and whose length is the angle. This is the
// exponential map used to integrate angular velocity.
func QuatFromScaledAxis(v Vec3) Quat {
	angle := v.Norm()
	if angle == 0 {
		return IdentityQuat
	}
	return QuatFromAxisAngle(v, angle)
}

// QuatFromRotationArc builds the shortest rotation taking unit vector from
// onto unit vector to.
func QuatFromRotationArc(from, to Vec3) Quat {
	d := from.Dot(to)
	if d >= 1.0-1e-12 {
		return IdentityQuat
	}
	if d <= -1.0+1e-12 {
		// Antiparallel: rotate half a turn about any perpendicular axis.
		perp := from.Cross(Vec3{X: 1})
		if perp.NormSq() < 1e-12 {
			perp = from.Cross(Vec3{Y: 1})
		}
		return QuatFromAxisAngle(perp, math.Pi)
	}
	axis := from.Cross(to)
	q := Quat{W: 1 + d, X: axis.X, Y: axis.Y, Z: axis.Z}
	return q.Normalize()
}

// Mul composes rotations: (q.Mul(r)).Rotate(v) == q.Rotate(r.Rotate(v)).
func (q Quat) Mul(r Quat) Quat {
	return Quat{
		W: q.W*r.W - q.X*r.X - q.Y*r.Y - q.Z*r.Z,
		X: q.W*r.X + q.X*r.W + q.Y*r.Z - q.Z*r.Y,
		Y: q.W*r.Y - q.X*r.Z + q.Y*r.W + q.Z*r.X,
		Z: q.W*r.Z + q.X*r.Y - q.Y*r.X + q.Z*r.W,
	}
}

// Inverse returns the conjugate, which inverts a unit quaternion.
func (q Quat) Inverse() Quat {
	return Quat{W: q.W, X: -q.X, Y: -q.Y, Z: -q.Z}
}

func (q Quat) Norm() float64 {
	return math.Sqrt(q.W*q.W + q.X*q.X + q.Y*q.Y + q.Z*q.Z)
}

func (q Quat) Normalize() Quat {
	n := q.Norm()
	if n == 0 {
		return IdentityQuat
	}
	return Quat{W: q.W / n, X: q.X / n, Y: q.Y / n, Z: q.Z / n}
}

// Rotate applies the rotation to a vector.
func (q Quat) Rotate(v Vec3) Vec3 {
	u := Vec3{X: q.X, Y: q.Y, Z: q.Z}
	t := u.Cross(v).Scale(2)
	return v.Add(t.Scale(q.W)).Add(u.Cross(t))
}

// AxisAngle decomposes the rotation into a unit axis and an angle in
// [0, pi]. The identity decomposes to the +X axis with angle 0.
func (q Quat) AxisAngle() (Vec3, float64) {
	qn := q.Normalize()
	if qn.W < 0 {
		qn = Quat{W: -qn.W, X: -qn.X, Y: -qn.Y, Z: -qn.Z}
	}
	angle := 2 * math.Acos(math.Min(qn.W, 1))
	s := math.Sqrt(1 - math.Min(qn.W*qn.W, 1))
	if s < 1e-12 {
		return Vec3{X: 1}, 0
	}
	return Vec3{X: qn.X / s, Y: qn.Y / s, Z: qn.Z / s}, angle
}
