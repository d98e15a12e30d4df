package engine

// Energy is the per-frame energy bookkeeping: kinetic recomputed from
// velocities, potential carried over from the last force pass.
type Energy struct {
	Kinetic   float64
	Potential float64
}

func (e Energy) Total() float64 {
	return e.Kinetic + e.Potential
}

// PressureSamplingPeriod is the physical time window the running pressure
// average covers; the sampler capacity follows from dt and steps per frame.
const PressureSamplingPeriod = 10.0

// PressureSampler keeps a fixed window of per-frame impulse/area samples
// with an incrementally maintained running sum, so pushing and averaging
// are O(1). The average divides by the full capacity and the per-sample
// interval regardless of fill, so a cold sampler ramps up from zero rather
// than overweighting its first samples.
type PressureSampler struct {
	window   *RingBuffer[float64]
	sum      float64
	sampleDt float64
}

func NewPressureSampler(capacity int, sampleDt float64) *PressureSampler {
	return &PressureSampler{
		window:   NewRingBuffer[float64](capacity),
		sampleDt: sampleDt,
	}
}

func (p *PressureSampler) Push(sample float64) {
	evicted, wasFull := p.window.Push(sample)
	p.sum += sample
	if wasFull {
		p.sum -= evicted
	}
}

func (p *PressureSampler) Average() float64 {
	return p.sum / float64(p.window.Cap()) / p.sampleDt
}

func (p *PressureSampler) Cap() int { return p.window.Cap() }

func (p *PressureSampler) Len() int { return p.window.Len() }
