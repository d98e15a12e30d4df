package engine

// PressurePin is the user-facing setpoint for the pressure feedback loop.
type PressurePin struct {
	IsPinned bool
	AtValue  float64
}

// RateClampFraction bounds the controller's boundary rate to a fraction of
// the box size so a large pressure error cannot collapse or explode the box
// in a single frame.
const RateClampFraction = 0.01

// PressureController derives the boundary expansion rate from the measured
// pressure while pinned: a proportional term on the pressure error plus a
// derivative term on its recent slope. On the pinned-to-unpinned
// transition it zeroes the rate exactly once, then leaves the rate to the
// host.
type PressureController struct {
	pin       PressurePin
	prevState bool
}

func (c *PressureController) Pin() PressurePin { return c.pin }

func (c *PressureController) SetPin(pin PressurePin) {
	c.pin = pin
}

// Apply computes the next boundary rate. current is the averaged pressure,
// lookback the averaged pressure one sampling window ago, boxSize the
// largest boundary extent, and rate the host-supplied rate used while
// unpinned.
func (c *PressureController) Apply(current, lookback, boxSize, rate float64) float64 {
	defer func() { c.prevState = c.pin.IsPinned }()

	if c.pin.IsPinned {
		delta := c.pin.AtValue - current
		slope := current - lookback
		limit := RateClampFraction * boxSize
		return clamp(slope-delta, -limit, limit)
	}
	if c.prevState {
		// Pin was just released: cancel the controller's last rate once.
		return 0
	}
	return rate
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
