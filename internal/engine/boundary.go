package engine

import (
	"math"

	"github.com/gfgen/Van-Der-Waals-Interactions/internal/vec"
)

const (
	// MinLen is the smallest allowed edge length of the box.
	MinLen = 2.0
	// DeflectStr is the spring constant of the soft walls.
	DeflectStr = 10000.0
)

// Boundary is the simulation box: six axis-aligned walls with the lower
// corner fixed at the origin and the upper corner at (X, Y, Z). Walls are
// stiff springs, not hard reflectors: a particle outside the box feels a
// restoring force proportional to its penetration depth.
type Boundary struct {
	X, Y, Z float64
}

// NewBoundary returns the default 5x5x5 box.
func NewBoundary() Boundary {
	return Boundary{X: 5.0, Y: 5.0, Z: 5.0}
}

func (b Boundary) IsValid() bool {
	return b.X >= MinLen && b.Y >= MinLen && b.Z >= MinLen
}

// Penetration returns the signed excess distance outside each wall,
// pointing back into the box; zero inside. A position 0.1 past the +x wall
// yields (-0.1, 0, 0).
func (b Boundary) Penetration(pos vec.Vec3) vec.Vec3 {
	lo := vec.Vec3{
		X: math.Max(-pos.X, 0),
		Y: math.Max(-pos.Y, 0),
		Z: math.Max(-pos.Z, 0),
	}
	hi := vec.Vec3{
		X: math.Min(b.X-pos.X, 0),
		Y: math.Min(b.Y-pos.Y, 0),
		Z: math.Min(b.Z-pos.Z, 0),
	}
	return lo.Add(hi)
}

// Contains reports whether pos lies inside the box (walls inclusive).
func (b Boundary) Contains(pos vec.Vec3) bool {
	pen := b.Penetration(pos)
	return math.Abs(pen.X)+math.Abs(pen.Y)+math.Abs(pen.Z) == 0
}

// Force returns the one-sided restoring force on a position.
func (b Boundary) Force(pos vec.Vec3) vec.Vec3 {
	return b.Penetration(pos).Scale(DeflectStr)
}

// Expand grows (or shrinks, for rate < 0) every extent isotropically,
// clamped so no edge drops below MinLen.
func (b *Boundary) Expand(rate, dt float64) {
	b.X = math.Max(b.X+rate*dt, MinLen)
	b.Y = math.Max(b.Y+rate*dt, MinLen)
	b.Z = math.Max(b.Z+rate*dt, MinLen)
}

func (b Boundary) SurfaceArea() float64 {
	return 2 * (b.X*b.Y + b.Y*b.Z + b.Z*b.X)
}

func (b Boundary) Volume() float64 {
	return b.X * b.Y * b.Z
}

func (b Boundary) Center() vec.Vec3 {
	return vec.New3(b.X/2, b.Y/2, b.Z/2)
}

func (b Boundary) LoCorner() vec.Vec3 {
	return vec.Zero3
}

func (b Boundary) HiCorner() vec.Vec3 {
	return vec.New3(b.X, b.Y, b.Z)
}

// MaxExtent returns the longest edge, the length scale used to clamp the
// pressure controller's boundary rate.
func (b Boundary) MaxExtent() float64 {
	return math.Max(b.X, math.Max(b.Y, b.Z))
}
