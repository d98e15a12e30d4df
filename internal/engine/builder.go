package engine

import "github.com/gfgen/Van-Der-Waals-Interactions/internal/vec"

// Builder collects all initial conditions for a simulation. Parameters are
// set with chainable setters after construction; Build validates everything
// at once and compiles a ready-to-run State. A Builder can be reused after
// a failed Build.
type Builder struct {
	bound         Boundary
	targetTemp    float64
	injectRate    float64
	gridUnitSize  float64
	gridReach     int
	dt            float64
	stepsPerFrame int
	extAccel      vec.Vec3
	law           Interaction
	particles     []Particle
}

// NewBuilder returns a Builder with default settings: a 5x5x5 box, unit
// grid cells with reach 1, dt 0.001, 50 steps per frame, the Lennard-Jones
// law, no heat coupling, and no particles.
func NewBuilder() *Builder {
	return &Builder{
		bound:         NewBoundary(),
		gridUnitSize:  1.0,
		gridReach:     1,
		dt:            0.001,
		stepsPerFrame: 50,
		law:           NewLennardJones(),
	}
}

func (b *Builder) SetBoundX(val float64) *Builder {
	b.bound.X = val
	return b
}

func (b *Builder) SetBoundY(val float64) *Builder {
	b.bound.Y = val
	return b
}

func (b *Builder) SetBoundZ(val float64) *Builder {
	b.bound.Z = val
	return b
}

func (b *Builder) SetBound(bound Boundary) *Builder {
	b.bound = bound
	return b
}

func (b *Builder) SetTargetTemp(val float64) *Builder {
	b.targetTemp = val
	return b
}

func (b *Builder) SetInjectRate(val float64) *Builder {
	b.injectRate = val
	return b
}

func (b *Builder) SetGridUnitSize(val float64) *Builder {
	b.gridUnitSize = val
	return b
}

func (b *Builder) SetGridReach(val int) *Builder {
	b.gridReach = val
	return b
}

func (b *Builder) SetDt(val float64) *Builder {
	b.dt = val
	return b
}

func (b *Builder) SetStepsPerFrame(val int) *Builder {
	b.stepsPerFrame = val
	return b
}

func (b *Builder) SetExtAccel(val vec.Vec3) *Builder {
	b.extAccel = val
	return b
}

func (b *Builder) SetLaw(law Interaction) *Builder {
	b.law = law
	return b
}

func (b *Builder) SetParticles(particles []Particle) *Builder {
	b.particles = particles
	return b
}

func (b *Builder) Bound() Boundary { return b.bound }

// Build validates every constraint and compiles the State. Validation is
// exhaustive: the returned *InvalidParamError lists every violated kind,
// not just the first.
func (b *Builder) Build() (*State, error) {
	var kinds []ParamKind

	if !b.bound.IsValid() {
		kinds = append(kinds, KindBound)
	}
	if b.gridUnitSize <= 0 {
		kinds = append(kinds, KindUnitSize)
	}
	if b.gridReach < 1 {
		kinds = append(kinds, KindReach)
	}
	if b.dt <= 0 {
		kinds = append(kinds, KindDt)
	}
	if b.stepsPerFrame < 1 {
		kinds = append(kinds, KindStepsPerFrame)
	}
	if b.targetTemp < 0 || b.injectRate < 0 {
		kinds = append(kinds, KindTempOrInjectRate)
	}
	for i := range b.particles {
		if !b.bound.Contains(b.particles[i].pos.Translation) {
			kinds = append(kinds, KindParticleOutOfBounds)
			break
		}
	}

	if len(kinds) > 0 {
		return nil, &InvalidParamError{Kinds: kinds}
	}

	return newState(b), nil
}
