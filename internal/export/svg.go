package export

import (
	"fmt"
	"image/color"
	"io"
	"strings"

	"github.com/jakecoffman/cp"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/san-kum/ballpit/internal/sim"
)

// SVG is a sim.Renderer that collects one <circle> per body.
type SVG struct {
	width, height float64
	scale         float64
	body          strings.Builder
	count         int
}

func NewSVG(width, height, scale float64) *SVG {
	if scale <= 0 {
		scale = 1
	}
	return &SVG{width: width, height: height, scale: scale}
}

func (s *SVG) Draw(center cp.Vector, radius float64, fill, stroke color.RGBA, strokeWidth float64) {
	fmt.Fprintf(&s.body, `<circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s" stroke="%s" stroke-width="%.1f"/>
`, center.X*s.scale, center.Y*s.scale, radius*s.scale, hex(fill), hex(stroke), strokeWidth*s.scale)
	s.count++
}

func (s *SVG) Count() int { return s.count }

func (s *SVG) String() string {
	w, h := s.width*s.scale, s.height*s.scale

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#f0f0f0"/>
`, w, h, w, h))
	sb.WriteString(s.body.String())
	sb.WriteString("</svg>\n")
	return sb.String()
}

func (s *SVG) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, s.String())
	return int64(n), err
}

// WorldToSVG renders the current state of w.
func WorldToSVG(w *sim.World, scale float64) string {
	p := w.Config().Params
	svg := NewSVG(p.Width, p.Height, scale)
	w.Draw(svg)
	return svg.String()
}

func hex(c color.RGBA) string {
	cf, _ := colorful.MakeColor(c)
	return cf.Hex()
}
