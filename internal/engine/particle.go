package engine

import "github.com/gfgen/Van-Der-Waals-Interactions/internal/vec"

// Particle is a point (or oriented) body in the ensemble. The population is
// fixed for the lifetime of a run; only the integrator mutates particles.
type Particle struct {
	// Neighbors is the last-computed count of particles within the
	// classification radius. Display-only, never feeds back into forces.
	Neighbors int

	mass          float64
	momentInertia float64
	pos           vec.Pose
	vel           vec.Motion
}

// NewParticle returns a resting unit-mass particle at the origin. Use the
// chainable setters to place it.
func NewParticle() Particle {
	return Particle{
		mass:          1.0,
		momentInertia: 1.0,
		pos:           vec.IdentityPose,
	}
}

func (p Particle) SetMass(mass float64) Particle {
	p.mass = mass
	return p
}

func (p Particle) SetMomentInertia(mi float64) Particle {
	p.momentInertia = mi
	return p
}

func (p Particle) SetPos(x, y, z float64) Particle {
	p.pos.Translation = vec.New3(x, y, z)
	return p
}

func (p Particle) SetRot(q vec.Quat) Particle {
	p.pos.Rotation = q
	return p
}

func (p Particle) SetVel(x, y, z float64) Particle {
	p.vel.Linear = vec.New3(x, y, z)
	return p
}

func (p Particle) SetAngVel(x, y, z float64) Particle {
	p.vel.Angular = vec.New3(x, y, z)
	return p
}

func (p *Particle) Mass() float64          { return p.mass }
func (p *Particle) MomentInertia() float64 { return p.momentInertia }
func (p *Particle) Pos() vec.Pose          { return p.pos }
func (p *Particle) Vel() vec.Motion        { return p.vel }

// StepPos drifts the pose by coeff of a full step: pos += vel * dt * coeff.
func (p *Particle) StepPos(dt, coeff float64) {
	p.pos = p.pos.Advance(p.vel, dt*coeff)
}

// StepVel kicks the velocity: vel += acc * dt * coeff.
func (p *Particle) StepVel(acc vec.Motion, dt, coeff float64) {
	p.vel = p.vel.Add(acc.Scale(dt * coeff))
}

// Heat applies the injection term vel += vel * amount * dt. This is a
// linear damping/driving forcing, not a resampling thermostat; it does not
// conserve momentum and is applied with a per-frame constant amount.
func (p *Particle) Heat(dt, amount float64) {
	p.vel = p.vel.Add(p.vel.Scale(amount * dt))
}
