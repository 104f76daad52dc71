package physics

import (
	"fmt"
	"math"

	"github.com/jakecoffman/cp"
)

// Body is a circular rigid body. Mass is always radius squared; the only
// way to change either is SetRadius.
type Body struct {
	ID         uint64
	Pos        cp.Vector
	Vel        cp.Vector
	ColorIndex int
	Dragging   bool
	Selected   bool

	radius float64
	mass   float64
}

// NewBody returns a body at pos with the given radius and zero velocity.
func NewBody(id uint64, pos cp.Vector, radius float64, colorIndex int) (*Body, error) {
	b := &Body{ID: id, Pos: pos, ColorIndex: colorIndex}
	if err := b.SetRadius(radius); err != nil {
		return nil, err
	}
	return b, nil
}

// Radius returns the body's radius.
func (b *Body) Radius() float64 { return b.radius }

// Mass returns the body's mass, always Radius squared.
func (b *Body) Mass() float64 { return b.mass }

// SetRadius changes the radius and recomputes mass.
func (b *Body) SetRadius(r float64) error {
	if !(r > 0) || math.IsInf(r, 0) {
		return fmt.Errorf("radius %v: %w", r, ErrParameterBounds)
	}
	b.radius = r
	b.mass = r * r
	return nil
}

// Scale multiplies the radius by factor and clamps it to [lo, hi].
// A non-positive factor leaves the body unchanged.
func (b *Body) Scale(factor, lo, hi float64) {
	if factor <= 0 {
		return
	}
	r := b.radius * factor
	if hi > 0 && r > hi {
		r = hi
	}
	if r < lo {
		r = lo
	}
	_ = b.SetRadius(r)
}

// Speed is the magnitude of the velocity.
func (b *Body) Speed() float64 {
	return math.Hypot(b.Vel.X, b.Vel.Y)
}

// Momentum is mass times velocity.
func (b *Body) Momentum() cp.Vector {
	return b.Vel.Mult(b.mass)
}

// KineticEnergy is ½·m·|v|².
func (b *Body) KineticEnergy() float64 {
	return 0.5 * b.mass * b.Vel.LengthSq()
}

// Contains reports whether p lies strictly inside the circle.
func (b *Body) Contains(p cp.Vector) bool {
	return math.Hypot(p.X-b.Pos.X, p.Y-b.Pos.Y) < b.radius
}

// IsValid reports whether position and velocity are finite.
func (b *Body) IsValid() bool {
	for _, v := range [...]float64{b.Pos.X, b.Pos.Y, b.Vel.X, b.Vel.Y} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// AverageSpeed is the mean of every body's speed, or 0 for no bodies.
func AverageSpeed(bodies []*Body) float64 {
	if len(bodies) == 0 {
		return 0
	}
	total := 0.0
	for _, b := range bodies {
		total += b.Speed()
	}
	return total / float64(len(bodies))
}
