package physics

// ResolvePair separates a and b if they overlap and exchanges an elastic
// impulse along the line between their centres. It reports whether an
// overlap was found. Coincident centres are skipped.
//
// Separation is split evenly regardless of mass; the impulse uses mass.
func ResolvePair(a, b *Body) bool {
	delta := b.Pos.Sub(a.Pos)
	dist := delta.Length()
	if dist == 0 {
		return false
	}

	overlap := a.radius + b.radius - dist
	if overlap <= 0 {
		return false
	}

	n := delta.Mult(1 / dist)
	push := n.Mult(overlap / 2)
	a.Pos = a.Pos.Sub(push)
	b.Pos = b.Pos.Add(push)

	p := 2 * a.Vel.Sub(b.Vel).Dot(n) / (a.mass + b.mass)
	a.Vel = a.Vel.Sub(n.Mult(p * b.mass))
	b.Vel = b.Vel.Add(n.Mult(p * a.mass))

	return true
}
