package metrics

import (
	"math"

	"github.com/san-kum/ballpit/internal/sim"
)

// MeanSpeed averages the per-tick average body speed over a run.
type MeanSpeed struct {
	samples int
	total   float64
}

func NewMeanSpeed() *MeanSpeed { return &MeanSpeed{} }

func (m *MeanSpeed) Name() string { return "mean_speed" }

func (m *MeanSpeed) Observe(f sim.Frame) {
	m.total += f.Stats.AverageSpeed
	m.samples++
}

func (m *MeanSpeed) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return m.total / float64(m.samples)
}

func (m *MeanSpeed) Reset() {
	m.samples = 0
	m.total = 0
}

// PeakSpeed is the fastest any single body moved.
type PeakSpeed struct {
	peak float64
}

func NewPeakSpeed() *PeakSpeed { return &PeakSpeed{} }

func (m *PeakSpeed) Name() string { return "peak_speed" }

func (m *PeakSpeed) Observe(f sim.Frame) {
	for i := range f.Bodies {
		m.peak = math.Max(m.peak, f.Bodies[i].Speed())
	}
}

func (m *PeakSpeed) Value() float64 { return m.peak }
func (m *PeakSpeed) Reset()         { m.peak = 0 }
