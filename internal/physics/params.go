package physics

import (
	"fmt"
	"math"
)

const (
	DefaultWidth    = 800.0
	DefaultHeight   = 800.0
	DefaultGravity  = 0.8
	DefaultFriction = 0.99
	DefaultBounce   = 0.7
)

// Params are the world constants every step reads. They are fixed for the
// lifetime of a world.
type Params struct {
	Width    float64
	Height   float64
	Gravity  float64
	Friction float64
	Bounce   float64
}

func DefaultParams() Params {
	return Params{
		Width:    DefaultWidth,
		Height:   DefaultHeight,
		Gravity:  DefaultGravity,
		Friction: DefaultFriction,
		Bounce:   DefaultBounce,
	}
}

// MaxRadius is the largest radius that still fits inside the world.
func (p Params) MaxRadius() float64 {
	return math.Min(p.Width, p.Height) / 2
}

func (p Params) Validate() error {
	if !(p.Width > 0) || !(p.Height > 0) {
		return fmt.Errorf("world size %vx%v: %w", p.Width, p.Height, ErrParameterBounds)
	}
	if math.IsNaN(p.Gravity) || math.IsInf(p.Gravity, 0) {
		return fmt.Errorf("gravity %v: %w", p.Gravity, ErrParameterBounds)
	}
	if !(p.Friction > 0) || p.Friction > 1 {
		return fmt.Errorf("friction %v must be in (0, 1]: %w", p.Friction, ErrParameterBounds)
	}
	if p.Bounce < 0 || p.Bounce > 1 || math.IsNaN(p.Bounce) {
		return fmt.Errorf("bounce %v must be in [0, 1]: %w", p.Bounce, ErrParameterBounds)
	}
	return nil
}
