package sim

import (
	"fmt"
	"image/color"
	"time"

	"github.com/jakecoffman/cp"

	"github.com/san-kum/ballpit/internal/physics"
)

// RandomColor asks Spawn to pick a palette index at random.
const RandomColor = -1

type Config struct {
	Params       physics.Params
	Palette      []color.RGBA
	SpawnSpeed   float64
	ThrowSpeed   float64
	GrowFactor   float64
	ShrinkFactor float64
	MinRadius    float64
	Seed         int64
}

// DefaultPalette is used when no palette is configured.
var DefaultPalette = []color.RGBA{
	{R: 0xFF, G: 0x6B, B: 0x6B, A: 0xFF},
	{R: 0x4E, G: 0xCD, B: 0xC4, A: 0xFF},
	{R: 0x45, G: 0xB7, B: 0xD1, A: 0xFF},
	{R: 0x96, G: 0xCE, B: 0xB4, A: 0xFF},
	{R: 0xFF, G: 0xEE, B: 0xAD, A: 0xFF},
}

func DefaultConfig() Config {
	return Config{
		Params:       physics.DefaultParams(),
		Palette:      DefaultPalette,
		SpawnSpeed:   2,
		ThrowSpeed:   5,
		GrowFactor:   1.1,
		ShrinkFactor: 0.9,
		MinRadius:    2,
		Seed:         1,
	}
}

func (c Config) Validate() error {
	if err := c.Params.Validate(); err != nil {
		return err
	}
	if len(c.Palette) == 0 {
		return fmt.Errorf("empty palette: %w", physics.ErrParameterBounds)
	}
	if c.SpawnSpeed < 0 || c.ThrowSpeed < 0 {
		return fmt.Errorf("spawn/throw speed must be non-negative: %w", physics.ErrParameterBounds)
	}
	if c.GrowFactor <= 1 {
		return fmt.Errorf("grow factor %v must exceed 1: %w", c.GrowFactor, physics.ErrParameterBounds)
	}
	if c.ShrinkFactor <= 0 || c.ShrinkFactor >= 1 {
		return fmt.Errorf("shrink factor %v must be in (0, 1): %w", c.ShrinkFactor, physics.ErrParameterBounds)
	}
	if c.MinRadius <= 0 || c.MinRadius > c.Params.MaxRadius() {
		return fmt.Errorf("min radius %v: %w", c.MinRadius, physics.ErrParameterBounds)
	}
	return nil
}

// Stats is the read-only summary shown next to the simulation.
type Stats struct {
	Tick         uint64
	Bodies       int
	Collisions   uint64
	AverageSpeed float64
}

// Frame is a copy of the world taken at the end of a tick.
type Frame struct {
	Stats  Stats
	Bodies []physics.Body
}

type Observer interface {
	OnTick(f Frame)
}

type Metric interface {
	Name() string
	Observe(f Frame)
	Value() float64
	Reset()
}

// Renderer is called once per body by World.Draw.
type Renderer interface {
	Draw(center cp.Vector, radius float64, fill, stroke color.RGBA, strokeWidth float64)
}

// RunConfig bounds World.Run. Ticks <= 0 runs until the context ends;
// Interval <= 0 ticks as fast as possible.
type RunConfig struct {
	Ticks    int
	Interval time.Duration
}
