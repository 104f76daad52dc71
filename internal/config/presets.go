package config

import (
	"fmt"
	"sort"
)

var Presets = map[string]func(*Config){
	"default": func(c *Config) {},
	"moon": func(c *Config) {
		c.Physics.Gravity = 0.13
	},
	"superball": func(c *Config) {
		c.Physics.Bounce = 0.95
		c.Physics.Friction = 0.999
	},
	"crowd": func(c *Config) {
		c.Spawn.Count = 40
		c.Spawn.Radius = 12
	},
	"giants": func(c *Config) {
		c.Spawn.Count = 3
		c.Spawn.Radius = 90
	},
	"zero-g": func(c *Config) {
		c.Physics.Gravity = 0
		c.Physics.Friction = 1
		c.Physics.Bounce = 1
		c.Spawn.Speed = 4
	},
}

// GetPreset returns the defaults with the named preset applied.
func GetPreset(name string) (*Config, error) {
	apply, ok := Presets[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s (available: %v)", ErrUnknownPreset, name, ListPresets())
	}
	cfg := DefaultConfig()
	apply(cfg)
	return cfg, nil
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
