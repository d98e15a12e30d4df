package vec

// Pose is a rigid placement: a translation plus an orientation.
type Pose struct {
	Translation Vec3
	Rotation    Quat
}

var IdentityPose = Pose{Rotation: IdentityQuat}

// Advance integrates a motion over dt: the translation moves linearly and
// the rotation composes the exponential of the scaled angular velocity.
func (p Pose) Advance(m Motion, dt float64) Pose {
	return Pose{
		Translation: p.Translation.Add(m.Linear.Scale(dt)),
		Rotation:    QuatFromScaledAxis(m.Angular.Scale(dt)).Mul(p.Rotation).Normalize(),
	}
}

// Motion pairs a linear with an angular rate. It doubles as a generalized
// acceleration (linear + angular) in the integrator.
type Motion struct {
	Linear  Vec3
	Angular Vec3
}

func (m Motion) Add(o Motion) Motion {
	return Motion{Linear: m.Linear.Add(o.Linear), Angular: m.Angular.Add(o.Angular)}
}

func (m Motion) Scale(s float64) Motion {
	return Motion{Linear: m.Linear.Scale(s), Angular: m.Angular.Scale(s)}
}
