// Package engine implements the simulation core: grid-accelerated pairwise
// interactions under a confining soft-wall boundary, advanced by a leapfrog
// integrator, with per-frame thermodynamic bookkeeping and an optional
// pressure-pinning feedback loop on the boundary size.
//
// A State is built once through a Builder and then driven by repeated
// StepFrame calls. Stepping is infallible; pathological numerical input
// (e.g. two particles at zero separation producing an infinite repulsion)
// is a known unguarded edge case.
package engine

import "github.com/gfgen/Van-Der-Waals-Interactions/internal/vec"

// HistoryLen bounds the display-only energy and pressure histories.
const HistoryLen = 1000

// forChunk is the minimum per-worker slice for the parallel passes.
const forChunk = 64

// State owns all simulation data: the particle ensemble, boundary, grid
// parameters, and tracker/controller state. External readers take
// snapshots between frames; external writers touch only the named control
// knobs. Nothing in State is safe for concurrent use with StepFrame.
type State struct {
	particles []Particle
	bound     Boundary
	grid      *Grid
	law       Interaction

	dt            float64
	stepsPerFrame int
	extAccel      vec.Vec3

	// Live control knobs.
	targetTemp float64
	injectRate float64
	boundRate  float64
	controller PressureController

	// heatAmount is recomputed once per frame and held constant across
	// that frame's sub-steps.
	heatAmount float64

	energy       Energy
	pressure     *PressureSampler
	energyHist   *RingBuffer[Energy]
	pressureHist *RingBuffer[float64]

	// Per-particle scratch filled by the force pass.
	accel     []vec.Motion
	boundMag  []float64
	potential []float64
	neighbors []int
}

func newState(b *Builder) *State {
	n := len(b.particles)
	sampleDt := b.dt * float64(b.stepsPerFrame)
	capacity := int(PressureSamplingPeriod / sampleDt)
	if capacity < 1 {
		capacity = 1
	}

	s := &State{
		particles:     append([]Particle(nil), b.particles...),
		bound:         b.bound,
		grid:          NewGrid(b.gridUnitSize, b.gridReach),
		law:           b.law,
		dt:            b.dt,
		stepsPerFrame: b.stepsPerFrame,
		extAccel:      b.extAccel,
		targetTemp:    b.targetTemp,
		injectRate:    b.injectRate,
		pressure:      NewPressureSampler(capacity, sampleDt),
		energyHist:    NewRingBuffer[Energy](HistoryLen),
		pressureHist:  NewRingBuffer[float64](HistoryLen),
		accel:         make([]vec.Motion, n),
		boundMag:      make([]float64, n),
		potential:     make([]float64, n),
		neighbors:     make([]int, n),
	}
	s.recalculateKinetic()
	return s
}

// Step advances the ensemble one leapfrog step and returns the boundary
// impulse accumulated during it: half drift, force pass over the rebuilt
// grid, kick, heat injection, half drift.
func (s *State) Step() float64 {
	dt := s.dt
	n := len(s.particles)

	ParallelFor(n, forChunk, func(start, end int) {
		for i := start; i < end; i++ {
			s.particles[i].StepPos(dt, 0.5)
		}
	})

	s.computeForces()

	heat := s.heatAmount
	ParallelFor(n, forChunk, func(start, end int) {
		for i := start; i < end; i++ {
			p := &s.particles[i]
			p.StepVel(s.accel[i], dt, 1.0)
			p.Heat(dt, heat)
			p.StepPos(dt, 0.5)
			p.Neighbors = s.neighbors[i]
		}
	})

	impulse := 0.0
	potential := 0.0
	for i := 0; i < n; i++ {
		impulse += s.boundMag[i] * dt
		potential += s.potential[i]
	}
	s.energy.Potential = potential
	return impulse
}

// computeForces rebuilds the grid from the current positions and reduces
// pair plus boundary forces to one generalized acceleration per particle.
// Each particle's result depends only on the shared read-only snapshot, so
// the map runs in parallel without locks; the two barriers (after the grid
// rebuild, after the map) are the only synchronization the step needs.
func (s *State) computeForces() {
	s.grid.Rebuild(s.particles)
	cutoff := s.grid.CutoffRange()

	ParallelFor(len(s.particles), forChunk, func(start, end int) {
		for i := start; i < end; i++ {
			p := &s.particles[i]

			var pairSum ForceTorque
			potential := 0.0
			neighbors := 0
			s.grid.ForNeighbors(s.grid.CellOf(i), func(j int) {
				if j == i {
					return
				}
				ft, pot, nb := s.law.Evaluate(p.pos, s.particles[j].pos, cutoff)
				pairSum = pairSum.Add(ft)
				potential += pot
				neighbors += nb
			})

			boundForce := s.bound.Force(p.pos.Translation)

			s.accel[i] = vec.Motion{
				Linear:  pairSum.Force.Add(boundForce).Div(p.mass).Add(s.extAccel),
				Angular: pairSum.Torque.Div(p.momentInertia),
			}
			s.boundMag[i] = boundForce.Norm()
			s.potential[i] = potential
			s.neighbors[i] = neighbors
		}
	})
}

// StepFrame runs a full display frame: stepsPerFrame integration steps with
// boundary expansion, then one tracker/controller update. The heat amount
// derived here applies to the next frame's sub-steps.
func (s *State) StepFrame() {
	totalImpulse := 0.0
	for i := 0; i < s.stepsPerFrame; i++ {
		totalImpulse += s.Step()
		s.bound.Expand(s.boundRate, s.dt)
	}

	s.recalculateKinetic()
	s.heatAmount = (s.targetTemp - s.Temperature()) * s.injectRate

	s.pressure.Push(totalImpulse / s.bound.SurfaceArea())
	avg := s.pressure.Average()
	s.energyHist.Push(s.energy)
	s.pressureHist.Push(avg)

	lookback := s.pressureHist.Lookback(s.pressure.Cap())
	s.boundRate = s.controller.Apply(avg, lookback, s.bound.MaxExtent(), s.boundRate)
}

func (s *State) recalculateKinetic() {
	kinetic := 0.0
	for i := range s.particles {
		p := &s.particles[i]
		kinetic += 0.5 * p.mass * p.vel.Linear.NormSq()
		kinetic += 0.5 * p.momentInertia * p.vel.Angular.NormSq()
	}
	s.energy.Kinetic = kinetic
}

// Temperature is the kinetic energy per particle.
func (s *State) Temperature() float64 {
	if len(s.particles) == 0 {
		return 0
	}
	return s.energy.Kinetic / float64(len(s.particles))
}

//
// Snapshot accessors for the host (renderer/UI). Read between frames only.
//

func (s *State) Particles() []Particle  { return s.particles }
func (s *State) NumParticles() int      { return len(s.particles) }
func (s *State) Bound() Boundary        { return s.bound }
func (s *State) Energy() Energy         { return s.energy }
func (s *State) AvgPressure() float64   { return s.pressure.Average() }
func (s *State) Dt() float64            { return s.dt }
func (s *State) StepsPerFrame() int     { return s.stepsPerFrame }
func (s *State) LawName() string        { return s.law.Name() }
func (s *State) EnergyHistory() []Energy {
	return s.energyHist.Values()
}
func (s *State) PressureHistory() []float64 {
	return s.pressureHist.Values()
}

//
// Live control knobs.
//

func (s *State) TargetTemp() float64 { return s.targetTemp }

// SetTargetTemp updates the thermostat setpoint; negative values clamp to
// zero.
func (s *State) SetTargetTemp(val float64) {
	if val < 0 {
		val = 0
	}
	s.targetTemp = val
}

func (s *State) InjectRate() float64 { return s.injectRate }

// SetInjectRate updates the heat coupling rate; negative values clamp to
// zero.
func (s *State) SetInjectRate(val float64) {
	if val < 0 {
		val = 0
	}
	s.injectRate = val
}

func (s *State) BoundRate() float64 { return s.boundRate }

// SetBoundRate sets the boundary expansion rate. Ignored while the
// pressure pin owns the rate.
func (s *State) SetBoundRate(val float64) {
	if s.controller.Pin().IsPinned {
		return
	}
	s.boundRate = val
}

func (s *State) PressurePin() PressurePin { return s.controller.Pin() }

func (s *State) SetPressurePin(pin PressurePin) {
	s.controller.SetPin(pin)
}
