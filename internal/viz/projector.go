package viz

import (
	"image/color"

	"github.com/jakecoffman/cp"
	"github.com/lucasb-eyer/go-colorful"
)

// Projector maps world coordinates onto a canvas and back. It implements
// sim.Renderer.
type Projector struct {
	canvas         *Canvas
	sx, sy         float64
	offX, offY     int
	worldW, worldH float64
}

// NewProjector fits a worldW x worldH world onto canvas. offX and offY are
// the terminal cell position of the canvas' top-left corner.
func NewProjector(canvas *Canvas, worldW, worldH float64, offX, offY int) *Projector {
	return &Projector{
		canvas: canvas,
		sx:     float64(canvas.Width*2) / worldW,
		sy:     float64(canvas.Height*4) / worldH,
		offX:   offX,
		offY:   offY,
		worldW: worldW,
		worldH: worldH,
	}
}

func (p *Projector) Draw(center cp.Vector, radius float64, fill, stroke color.RGBA, strokeWidth float64) {
	cx, cy := center.X*p.sx, center.Y*p.sy
	rx, ry := radius*p.sx, radius*p.sy

	p.canvas.Ellipse(cx, cy, rx, ry, hex(fill))
	if strokeWidth > 1 {
		for i := 1.0; i < strokeWidth; i++ {
			p.canvas.Ellipse(cx, cy, rx-i, ry-i, hex(stroke))
		}
	}
}

// CellToWorld converts a terminal cell to world coordinates at the cell's
// centre. ok is false outside the canvas.
func (p *Projector) CellToWorld(col, row int) (x, y float64, ok bool) {
	c, r := col-p.offX, row-p.offY
	if c < 0 || r < 0 || c >= p.canvas.Width || r >= p.canvas.Height {
		return 0, 0, false
	}
	x = (float64(c) + 0.5) * 2 / p.sx
	y = (float64(r) + 0.5) * 4 / p.sy
	return x, y, true
}

func hex(c color.RGBA) string {
	cf, _ := colorful.MakeColor(c)
	return cf.Hex()
}
