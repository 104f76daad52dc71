package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/ballpit/internal/control"
	"github.com/san-kum/ballpit/internal/physics"
	"github.com/san-kum/ballpit/internal/sim"
)

const (
	DefaultCount        = 5
	DefaultRadius       = 30.0
	DefaultSpawnSpeed   = 2.0
	DefaultThrowSpeed   = 5.0
	DefaultGrowFactor   = 1.1
	DefaultShrinkFactor = 0.9
	DefaultMinRadius    = 2.0
	DefaultFPS          = 60
)

var ErrUnknownPreset = errors.New("config: unknown preset")

// DefaultPalette is the five-colour sandbox palette.
var DefaultPalette = []string{"#FF6B6B", "#4ECDC4", "#45B7D1", "#96CEB4", "#FFEEAD"}

type Config struct {
	World       WorldConfig       `yaml:"world"`
	Physics     PhysicsConfig     `yaml:"physics"`
	Spawn       SpawnConfig       `yaml:"spawn"`
	Interaction InteractionConfig `yaml:"interaction"`
	Palette     []string          `yaml:"palette"`
	Keys        map[string]string `yaml:"keys"`
	Seed        int64             `yaml:"seed"`
	FPS         int               `yaml:"fps"`
}

type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type PhysicsConfig struct {
	Gravity  float64 `yaml:"gravity"`
	Friction float64 `yaml:"friction"`
	Bounce   float64 `yaml:"bounce"`
}

type SpawnConfig struct {
	Count  int     `yaml:"count"`
	Radius float64 `yaml:"radius"`
	Speed  float64 `yaml:"speed"`
}

type InteractionConfig struct {
	ThrowSpeed   float64 `yaml:"throw_speed"`
	GrowFactor   float64 `yaml:"grow_factor"`
	ShrinkFactor float64 `yaml:"shrink_factor"`
	MinRadius    float64 `yaml:"min_radius"`
}

func DefaultConfig() *Config {
	keys := make(map[string]string)
	for k, a := range control.DefaultKeyMap() {
		keys[k] = a.String()
	}
	return &Config{
		World: WorldConfig{
			Width:  physics.DefaultWidth,
			Height: physics.DefaultHeight,
		},
		Physics: PhysicsConfig{
			Gravity:  physics.DefaultGravity,
			Friction: physics.DefaultFriction,
			Bounce:   physics.DefaultBounce,
		},
		Spawn: SpawnConfig{
			Count:  DefaultCount,
			Radius: DefaultRadius,
			Speed:  DefaultSpawnSpeed,
		},
		Interaction: InteractionConfig{
			ThrowSpeed:   DefaultThrowSpeed,
			GrowFactor:   DefaultGrowFactor,
			ShrinkFactor: DefaultShrinkFactor,
			MinRadius:    DefaultMinRadius,
		},
		Palette: append([]string(nil), DefaultPalette...),
		Keys:    keys,
		Seed:    1,
		FPS:     DefaultFPS,
	}
}

// Load reads a YAML file over the defaults.
func Load(path string) (*Config, error) {
	return LoadOver(DefaultConfig(), path)
}

// LoadOver reads a YAML file over base, which is modified and returned.
// Fields missing from the file keep base's values. Keys listed in the file
// are merged into base's bindings; bind a key to "none" to disable it.
func LoadOver(base *Config, path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, base); err != nil {
		return nil, err
	}
	return base, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks everything SimConfig and KeyMap would reject, plus the
// startup-only fields.
func (c *Config) Validate() error {
	sc, err := c.SimConfig()
	if err != nil {
		return err
	}
	if err := sc.Validate(); err != nil {
		return err
	}
	if _, err := c.KeyMap(); err != nil {
		return err
	}
	if c.Spawn.Count < 0 {
		return fmt.Errorf("spawn count %d: %w", c.Spawn.Count, physics.ErrParameterBounds)
	}
	if !(c.Spawn.Radius > 0) {
		return fmt.Errorf("spawn radius %v: %w", c.Spawn.Radius, physics.ErrParameterBounds)
	}
	if c.FPS <= 0 {
		return fmt.Errorf("fps %d: %w", c.FPS, physics.ErrParameterBounds)
	}
	return nil
}

// SimConfig converts the file layout into the world's configuration.
func (c *Config) SimConfig() (sim.Config, error) {
	palette, err := ParsePalette(c.Palette)
	if err != nil {
		return sim.Config{}, err
	}
	return sim.Config{
		Params: physics.Params{
			Width:    c.World.Width,
			Height:   c.World.Height,
			Gravity:  c.Physics.Gravity,
			Friction: c.Physics.Friction,
			Bounce:   c.Physics.Bounce,
		},
		Palette:      palette,
		SpawnSpeed:   c.Spawn.Speed,
		ThrowSpeed:   c.Interaction.ThrowSpeed,
		GrowFactor:   c.Interaction.GrowFactor,
		ShrinkFactor: c.Interaction.ShrinkFactor,
		MinRadius:    c.Interaction.MinRadius,
		Seed:         c.Seed,
	}, nil
}

func (c *Config) KeyMap() (control.KeyMap, error) {
	km := make(control.KeyMap, len(c.Keys))
	for key, name := range c.Keys {
		a, err := control.ParseAction(name)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", key, err)
		}
		km[key] = a
	}
	return km, nil
}

func ParsePalette(hex []string) ([]color.RGBA, error) {
	out := make([]color.RGBA, 0, len(hex))
	for _, h := range hex {
		c, err := colorful.Hex(h)
		if err != nil {
			return nil, fmt.Errorf("palette colour %q: %w", h, err)
		}
		r, g, b := c.RGB255()
		out = append(out, color.RGBA{R: r, G: g, B: b, A: 0xFF})
	}
	return out, nil
}
