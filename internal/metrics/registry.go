package metrics

import (
	"fmt"
	"sort"

	"github.com/san-kum/ballpit/internal/sim"
)

var registry = map[string]func() sim.Metric{
	"mean_speed":     func() sim.Metric { return NewMeanSpeed() },
	"peak_speed":     func() sim.Metric { return NewPeakSpeed() },
	"kinetic_energy": func() sim.Metric { return NewKineticEnergy() },
	"collision_rate": func() sim.Metric { return NewCollisionRate() },
}

// Defaults is the metric set attached to every stored run.
func Defaults() []sim.Metric {
	out := make([]sim.Metric, 0, len(registry))
	for _, name := range Names() {
		out = append(out, registry[name]())
	}
	return out
}

// New returns a fresh metric by name.
func New(name string) (sim.Metric, error) {
	f, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown metric: %s (available: %v)", name, Names())
	}
	return f(), nil
}

func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
