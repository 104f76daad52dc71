package physics_test

import (
	"math/rand"

	"github.com/jakecoffman/cp"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/ballpit/internal/physics"
)

func newBody(x, y, r float64) *physics.Body {
	b, err := physics.NewBody(0, cp.Vector{X: x, Y: y}, r, 0)
	Expect(err).NotTo(HaveOccurred())
	return b
}

var _ = Describe("ResolvePair", func() {
	It("swaps velocities of equal masses in a head-on hit", func() {
		a := newBody(100, 200, 30)
		b := newBody(140, 200, 30)
		a.Vel = cp.Vector{X: 5, Y: 0}
		b.Vel = cp.Vector{X: -5, Y: 0}

		Expect(physics.ResolvePair(a, b)).To(BeTrue())

		Expect(a.Vel.X).To(BeNumerically("~", -5, 1e-9))
		Expect(b.Vel.X).To(BeNumerically("~", 5, 1e-9))
		Expect(a.Vel.Y).To(BeNumerically("~", 0, 1e-12))
		Expect(b.Pos.Sub(a.Pos).Length()).To(BeNumerically("~", 60, 1e-9))
		Expect(a.Pos.X).To(BeNumerically("~", 90, 1e-9))
		Expect(b.Pos.X).To(BeNumerically("~", 150, 1e-9))
	})

	It("ignores separated and touching bodies", func() {
		a := newBody(100, 100, 10)
		b := newBody(120, 100, 10)
		a.Vel = cp.Vector{X: 1}
		Expect(physics.ResolvePair(a, b)).To(BeFalse())
		Expect(a.Pos).To(Equal(cp.Vector{X: 100, Y: 100}))
		Expect(a.Vel).To(Equal(cp.Vector{X: 1}))
	})

	It("skips coincident centres", func() {
		a := newBody(100, 100, 10)
		b := newBody(100, 100, 20)
		a.Vel = cp.Vector{X: 1, Y: 2}
		Expect(physics.ResolvePair(a, b)).To(BeFalse())
		Expect(a.Pos).To(Equal(b.Pos))
		Expect(a.Vel).To(Equal(cp.Vector{X: 1, Y: 2}))
	})

	It("splits separation evenly regardless of mass", func() {
		a := newBody(100, 100, 10)
		b := newBody(130, 100, 40)
		Expect(physics.ResolvePair(a, b)).To(BeTrue())
		Expect(a.Pos.X).To(BeNumerically("~", 90, 1e-9))
		Expect(b.Pos.X).To(BeNumerically("~", 140, 1e-9))
	})

	It("conserves momentum for arbitrary pairs", func() {
		rng := rand.New(rand.NewSource(42))
		for i := 0; i < 200; i++ {
			ra := 5 + rng.Float64()*40
			rb := 5 + rng.Float64()*40
			a := newBody(400, 400, ra)
			b := newBody(400+(rng.Float64()-0.5)*(ra+rb), 400+(rng.Float64()-0.5)*(ra+rb), rb)
			a.Vel = cp.Vector{X: (rng.Float64() - 0.5) * 20, Y: (rng.Float64() - 0.5) * 20}
			b.Vel = cp.Vector{X: (rng.Float64() - 0.5) * 20, Y: (rng.Float64() - 0.5) * 20}

			before := a.Momentum().Add(b.Momentum())
			physics.ResolvePair(a, b)
			after := a.Momentum().Add(b.Momentum())

			Expect(after.X).To(BeNumerically("~", before.X, 1e-6))
			Expect(after.Y).To(BeNumerically("~", before.Y, 1e-6))
		}
	})
})
