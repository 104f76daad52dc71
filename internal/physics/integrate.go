package physics

// Integrate advances b by one tick: gravity, damping, motion, then wall
// reflection on each axis independently. Dragged bodies are left alone.
func Integrate(b *Body, p Params) {
	if b.Dragging {
		return
	}

	b.Vel.Y += p.Gravity
	b.Vel.X *= p.Friction
	b.Vel.Y *= p.Friction
	b.Pos = b.Pos.Add(b.Vel)

	r := b.radius
	if b.Pos.X+r > p.Width {
		b.Pos.X = p.Width - r
		b.Vel.X *= -p.Bounce
	} else if b.Pos.X-r < 0 {
		b.Pos.X = r
		b.Vel.X *= -p.Bounce
	}
	if b.Pos.Y+r > p.Height {
		b.Pos.Y = p.Height - r
		b.Vel.Y *= -p.Bounce
	} else if b.Pos.Y-r < 0 {
		b.Pos.Y = r
		b.Vel.Y *= -p.Bounce
	}
}

// Confine clamps b's position so the whole circle lies inside the world.
// Velocity is untouched.
func Confine(b *Body, p Params) {
	b.Pos.X = clamp(b.Pos.X, b.radius, p.Width-b.radius)
	b.Pos.Y = clamp(b.Pos.Y, b.radius, p.Height-b.radius)
}

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		return (lo + hi) / 2
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
