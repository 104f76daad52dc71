package metrics

import "github.com/san-kum/ballpit/internal/sim"

// CollisionRate is collisions per tick across the observed ticks.
type CollisionRate struct {
	first, last uint64
	ticks       int
}

func NewCollisionRate() *CollisionRate { return &CollisionRate{} }

func (c *CollisionRate) Name() string { return "collision_rate" }

func (c *CollisionRate) Observe(f sim.Frame) {
	if c.ticks == 0 {
		c.first = f.Stats.Collisions
	}
	c.last = f.Stats.Collisions
	c.ticks++
}

// Value counts collisions after the first observed tick, so a single
// observation reads zero.
func (c *CollisionRate) Value() float64 {
	if c.ticks < 2 {
		return 0
	}
	return float64(c.last-c.first) / float64(c.ticks-1)
}

func (c *CollisionRate) Reset() {
	c.first, c.last, c.ticks = 0, 0, 0
}
