package metrics

import "github.com/san-kum/ballpit/internal/sim"

// KineticEnergy is the mean total kinetic energy per tick, with mass = r².
type KineticEnergy struct {
	samples int
	total   float64
}

func NewKineticEnergy() *KineticEnergy { return &KineticEnergy{} }

func (k *KineticEnergy) Name() string { return "kinetic_energy" }

func (k *KineticEnergy) Observe(f sim.Frame) {
	k.total += TotalKineticEnergy(f)
	k.samples++
}

func (k *KineticEnergy) Value() float64 {
	if k.samples == 0 {
		return 0
	}
	return k.total / float64(k.samples)
}

func (k *KineticEnergy) Reset() {
	k.samples = 0
	k.total = 0
}

func TotalKineticEnergy(f sim.Frame) float64 {
	e := 0.0
	for i := range f.Bodies {
		e += f.Bodies[i].KineticEnergy()
	}
	return e
}
