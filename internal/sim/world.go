package sim

import (
	"context"
	"fmt"
	"image/color"
	"math/rand"
	"sync"
	"time"

	"github.com/jakecoffman/cp"

	"github.com/san-kum/ballpit/internal/physics"
)

var (
	strokeIdle     = color.RGBA{A: 0xFF}
	strokeSelected = color.RGBA{R: 0xFF, G: 0xD7, A: 0xFF}
)

type World struct {
	mu         sync.Mutex
	cfg        Config
	rng        *rand.Rand
	bodies     []*physics.Body
	queue      []Command
	nextID     uint64
	tick       uint64
	collisions uint64
	metrics    []Metric
	observers  []Observer
}

func New(cfg Config) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &World{
		cfg:       cfg,
		rng:       rand.New(rand.NewSource(cfg.Seed)),
		bodies:    make([]*physics.Body, 0),
		queue:     make([]Command, 0),
		nextID:    1,
		metrics:   make([]Metric, 0),
		observers: make([]Observer, 0),
	}, nil
}

func (w *World) Config() Config { return w.cfg }

func (w *World) AddMetric(m Metric) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.metrics = append(w.metrics, m)
}

func (w *World) AddObserver(o Observer) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.observers = append(w.observers, o)
}

// Metrics returns the current value of every registered metric.
func (w *World) Metrics() map[string]float64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make(map[string]float64, len(w.metrics))
	for _, m := range w.metrics {
		out[m.Name()] = m.Value()
	}
	return out
}

// Spawn adds a body of the given radius at a random position fully inside
// the world, with a small random velocity. colorIndex may be RandomColor.
func (w *World) Spawn(radius float64, colorIndex int) (uint64, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.spawnLocked(radius, colorIndex)
}

func (w *World) spawnLocked(radius float64, colorIndex int) (uint64, error) {
	if !(radius > 0) {
		return 0, fmt.Errorf("spawn radius %v: %w", radius, physics.ErrParameterBounds)
	}
	if colorIndex == RandomColor {
		colorIndex = w.rng.Intn(len(w.cfg.Palette))
	}
	if colorIndex < 0 || colorIndex >= len(w.cfg.Palette) {
		return 0, fmt.Errorf("color index %d: %w", colorIndex, physics.ErrParameterBounds)
	}

	p := w.cfg.Params
	if maxR := p.MaxRadius(); radius > maxR {
		radius = maxR
	}
	pos := cp.Vector{
		X: w.rng.Float64()*(p.Width-2*radius) + radius,
		Y: w.rng.Float64()*(p.Height-2*radius) + radius,
	}
	b, err := physics.NewBody(w.nextID, pos, radius, colorIndex)
	if err != nil {
		return 0, err
	}
	b.Vel = w.randomVelocity(w.cfg.SpawnSpeed)

	w.nextID++
	w.bodies = append(w.bodies, b)
	return b.ID, nil
}

func (w *World) randomVelocity(speed float64) cp.Vector {
	return cp.Vector{
		X: (w.rng.Float64() - 0.5) * 2 * speed,
		Y: (w.rng.Float64() - 0.5) * 2 * speed,
	}
}

// Enqueue schedules cmd for the start of the next tick.
func (w *World) Enqueue(cmd Command) {
	w.mu.Lock()
	w.queue = append(w.queue, cmd)
	w.mu.Unlock()
}

// Tick drains queued commands, integrates each body in order and resolves
// it against every later body, then confines all bodies to the world.
func (w *World) Tick() Stats {
	w.mu.Lock()

	w.drainLocked()

	p := w.cfg.Params
	for i, b := range w.bodies {
		physics.Integrate(b, p)
		for _, other := range w.bodies[i+1:] {
			if physics.ResolvePair(b, other) {
				w.collisions++
			}
		}
	}
	for _, b := range w.bodies {
		physics.Confine(b, p)
		if b.Dragging {
			b.Vel = cp.Vector{}
		}
	}
	w.tick++

	stats := w.statsLocked()
	var frame Frame
	observers := w.observers
	if len(w.metrics) > 0 || len(observers) > 0 {
		frame = Frame{Stats: stats, Bodies: w.copyLocked()}
	}
	for _, m := range w.metrics {
		m.Observe(frame)
	}
	w.mu.Unlock()

	for _, o := range observers {
		o.OnTick(frame)
	}
	return stats
}

// Run ticks until ctx is done or rc.Ticks ticks have run.
func (w *World) Run(ctx context.Context, rc RunConfig) error {
	var tick <-chan time.Time
	if rc.Interval > 0 {
		t := time.NewTicker(rc.Interval)
		defer t.Stop()
		tick = t.C
	}

	for i := 0; rc.Ticks <= 0 || i < rc.Ticks; i++ {
		if tick != nil {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-tick:
			}
		} else {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
		}
		w.Tick()
	}
	return nil
}

func (w *World) Stats() Stats {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.statsLocked()
}

func (w *World) statsLocked() Stats {
	return Stats{
		Tick:         w.tick,
		Bodies:       len(w.bodies),
		Collisions:   w.collisions,
		AverageSpeed: physics.AverageSpeed(w.bodies),
	}
}

// Bodies returns copies of the bodies in iteration order.
func (w *World) Bodies() []physics.Body {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.copyLocked()
}

func (w *World) copyLocked() []physics.Body {
	out := make([]physics.Body, len(w.bodies))
	for i, b := range w.bodies {
		out[i] = *b
	}
	return out
}

// Selected returns a copy of the selected body, if any.
func (w *World) Selected() (physics.Body, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if b := w.selectedLocked(); b != nil {
		return *b, true
	}
	return physics.Body{}, false
}

// Draw hands every body to r in iteration order.
func (w *World) Draw(r Renderer) {
	w.mu.Lock()
	defer w.mu.Unlock()
	for _, b := range w.bodies {
		fill := color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xFF}
		if b.ColorIndex >= 0 && b.ColorIndex < len(w.cfg.Palette) {
			fill = w.cfg.Palette[b.ColorIndex]
		}
		stroke, width := strokeIdle, 1.0
		if b.Selected {
			stroke, width = strokeSelected, 3.0
		}
		r.Draw(b.Pos, b.Radius(), fill, stroke, width)
	}
}

// Check reports the first body whose position or velocity is not finite.
func (w *World) Check() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	for _, b := range w.bodies {
		if !b.IsValid() {
			return fmt.Errorf("body %d at %v: %w", b.ID, b.Pos, physics.ErrInvalidState)
		}
	}
	return nil
}
