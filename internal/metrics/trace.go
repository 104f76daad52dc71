package metrics

import (
	"sync"

	"github.com/san-kum/ballpit/internal/sim"
)

// Trace records the stats of every tick, optionally keeping only the most
// recent Capacity entries.
type Trace struct {
	mu       sync.Mutex
	capacity int
	stats    []sim.Stats
	energy   []float64
}

func NewTrace(capacity int) *Trace {
	return &Trace{capacity: capacity}
}

func (t *Trace) OnTick(f sim.Frame) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stats = append(t.stats, f.Stats)
	t.energy = append(t.energy, TotalKineticEnergy(f))
	if t.capacity > 0 && len(t.stats) > t.capacity {
		t.stats = t.stats[1:]
		t.energy = t.energy[1:]
	}
}

func (t *Trace) Stats() []sim.Stats {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]sim.Stats(nil), t.stats...)
}

func (t *Trace) Energy() []float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]float64(nil), t.energy...)
}

func (t *Trace) Speeds() []float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]float64, len(t.stats))
	for i, s := range t.stats {
		out[i] = s.AverageSpeed
	}
	return out
}
