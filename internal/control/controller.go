package control

import "github.com/san-kum/ballpit/internal/sim"

// Enqueuer accepts commands for the next tick. *sim.World implements it.
type Enqueuer interface {
	Enqueue(cmd sim.Command)
}

type Controller struct {
	sink        Enqueuer
	keys        KeyMap
	spawnRadius float64
	down        bool
}

func New(sink Enqueuer, keys KeyMap, spawnRadius float64) *Controller {
	if keys == nil {
		keys = DefaultKeyMap()
	}
	return &Controller{sink: sink, keys: keys, spawnRadius: spawnRadius}
}

func (c *Controller) PointerDown(x, y float64) {
	c.down = true
	c.sink.Enqueue(sim.Pick(x, y))
}

// PointerMove only matters while the button is held.
func (c *Controller) PointerMove(x, y float64) {
	if !c.down {
		return
	}
	c.sink.Enqueue(sim.Drag(x, y))
}

func (c *Controller) PointerUp() {
	c.down = false
	c.sink.Enqueue(sim.Release())
}

func (c *Controller) Held() bool { return c.down }

// Key handles a discrete key command and reports whether it was bound.
func (c *Controller) Key(key string) bool {
	switch c.keys[key] {
	case ActionGrow:
		c.sink.Enqueue(sim.Grow())
	case ActionShrink:
		c.sink.Enqueue(sim.Shrink())
	case ActionDelete:
		c.sink.Enqueue(sim.Delete())
	case ActionSpawn:
		c.sink.Enqueue(sim.Spawn(c.spawnRadius))
	default:
		return false
	}
	return true
}

func (c *Controller) Keys() KeyMap { return c.keys }
