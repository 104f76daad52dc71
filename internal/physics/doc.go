// Package physics implements the rigid-circle model of the sandbox.
//
// It has no notion of time beyond a single fixed step and no knowledge of
// the body collection; the world in package sim owns both. The package provides:
//
//   - [Body]: a circle with position, velocity and radius-derived mass
//   - [Integrate]: gravity, damping and wall bounce for one body
//   - [ResolvePair]: overlap correction and elastic impulse for two bodies
//   - [Confine]: positional clamp into the world rectangle
//
// # Units
//
// Lengths are world units (pixels on screen) and velocities
// are units per tick. Gravity is applied as a per-tick velocity increment.
package physics
