package engine

import (
	"math"
	"testing"

	"github.com/gfgen/Van-Der-Waals-Interactions/internal/vec"
)

func TestBoundary_ForceDirection(t *testing.T) {
	b := Boundary{X: 4, Y: 4, Z: 4}

	tests := []struct {
		name string
		pos  vec.Vec3
		want vec.Vec3
	}{
		{"inside", vec.New3(2, 2, 2), vec.Vec3{}},
		{"past +x wall", vec.New3(5, 2, 2), vec.New3(-DeflectStr, 0, 0)},
		{"past -y wall", vec.New3(2, -0.5, 2), vec.New3(0, 0.5*DeflectStr, 0)},
		{"past corner", vec.New3(4.1, 4.1, -0.1), vec.New3(-0.1*DeflectStr, -0.1*DeflectStr, 0.1*DeflectStr)},
		{"on wall", vec.New3(4, 2, 2), vec.Vec3{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := b.Force(tt.pos)
			if got.Sub(tt.want).Norm() > 1e-9 {
				t.Errorf("Force(%v) = %v, want %v", tt.pos, got, tt.want)
			}
		})
	}
}

func TestBoundary_Contains(t *testing.T) {
	b := Boundary{X: 4, Y: 4, Z: 4}

	tests := []struct {
		pos  vec.Vec3
		want bool
	}{
		{vec.New3(2, 2, 2), true},
		{vec.New3(0, 0, 0), true},
		{vec.New3(4, 4, 4), true},
		{vec.New3(4.001, 2, 2), false},
		{vec.New3(2, -0.001, 2), false},
	}
	for _, tt := range tests {
		if got := b.Contains(tt.pos); got != tt.want {
			t.Errorf("Contains(%v) = %v, want %v", tt.pos, got, tt.want)
		}
	}
}

func TestBoundary_ExpandAndClamp(t *testing.T) {
	b := Boundary{X: 4, Y: 4, Z: 4}

	b.Expand(1.0, 0.5)
	if b.X != 4.5 || b.Y != 4.5 || b.Z != 4.5 {
		t.Errorf("after growth: %+v", b)
	}

	// Shrinking clamps at the minimum edge length.
	b.Expand(-100.0, 1.0)
	if b.X != MinLen || b.Y != MinLen || b.Z != MinLen {
		t.Errorf("after clamped shrink: %+v", b)
	}

	// Zero rate is a no-op.
	before := b
	b.Expand(0, 1.0)
	if b != before {
		t.Errorf("zero rate changed boundary: %+v", b)
	}
}

func TestBoundary_Derived(t *testing.T) {
	b := Boundary{X: 2, Y: 3, Z: 4}

	if got := b.Volume(); got != 24 {
		t.Errorf("Volume = %v", got)
	}
	if got := b.SurfaceArea(); got != 2*(2*3+3*4+4*2) {
		t.Errorf("SurfaceArea = %v", got)
	}
	if got := b.Center(); got != vec.New3(1, 1.5, 2) {
		t.Errorf("Center = %v", got)
	}
	if got := b.MaxExtent(); got != 4 {
		t.Errorf("MaxExtent = %v", got)
	}
	if b.LoCorner() != (vec.Vec3{}) || b.HiCorner() != vec.New3(2, 3, 4) {
		t.Errorf("corners = %v, %v", b.LoCorner(), b.HiCorner())
	}
}

func TestBoundary_IsValid(t *testing.T) {
	tests := []struct {
		b    Boundary
		want bool
	}{
		{Boundary{X: 5, Y: 5, Z: 5}, true},
		{Boundary{X: MinLen, Y: MinLen, Z: MinLen}, true},
		{Boundary{X: 1.9, Y: 5, Z: 5}, false},
		{Boundary{X: 5, Y: 5, Z: 0}, false},
	}
	for _, tt := range tests {
		if got := tt.b.IsValid(); got != tt.want {
			t.Errorf("IsValid(%+v) = %v, want %v", tt.b, got, tt.want)
		}
	}
}

func TestBoundary_PenetrationMagnitude(t *testing.T) {
	b := Boundary{X: 4, Y: 4, Z: 4}
	pen := b.Penetration(vec.New3(4.25, 2, 2))
	if math.Abs(pen.X+0.25) > 1e-12 || pen.Y != 0 || pen.Z != 0 {
		t.Errorf("Penetration = %v, want (-0.25, 0, 0)", pen)
	}
}
