package gui

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/jakecoffman/cp"
)

// renderer draws bodies as filled circles with a ring for the outline.
type renderer struct {
	offsetY float32
}

func (r renderer) Draw(center cp.Vector, radius float64, fill, stroke color.RGBA, strokeWidth float64) {
	c := rl.NewVector2(float32(center.X), float32(center.Y)+r.offsetY)
	rad := float32(radius)

	rl.DrawCircleV(c, rad, toColor(fill))
	inner := rad - float32(strokeWidth)
	if inner < 0 {
		inner = 0
	}
	rl.DrawRing(c, inner, rad, 0, 360, 48, toColor(stroke))
}

func toColor(c color.RGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}
