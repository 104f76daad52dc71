package physics_test

import (
	"math/rand"

	"github.com/jakecoffman/cp"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/ballpit/internal/physics"
)

var _ = Describe("Integrate", func() {
	var (
		p physics.Params
		b *physics.Body
	)

	BeforeEach(func() {
		p = physics.DefaultParams()
		b, _ = physics.NewBody(1, cp.Vector{X: 400, Y: 400}, 30, 0)
	})

	It("applies gravity then damping then motion", func() {
		b.Vel = cp.Vector{X: 2, Y: -1}
		physics.Integrate(b, p)

		vx := 2 * p.Friction
		vy := (-1 + p.Gravity) * p.Friction
		Expect(b.Vel.X).To(BeNumerically("~", vx, 1e-12))
		Expect(b.Vel.Y).To(BeNumerically("~", vy, 1e-12))
		Expect(b.Pos.X).To(BeNumerically("~", 400+vx, 1e-12))
		Expect(b.Pos.Y).To(BeNumerically("~", 400+vy, 1e-12))
	})

	It("skips dragged bodies", func() {
		b.Dragging = true
		b.Vel = cp.Vector{X: 7, Y: 7}
		physics.Integrate(b, p)
		Expect(b.Pos).To(Equal(cp.Vector{X: 400, Y: 400}))
		Expect(b.Vel).To(Equal(cp.Vector{X: 7, Y: 7}))
	})

	Context("at the right wall moving right", func() {
		BeforeEach(func() {
			b.Pos = cp.Vector{X: p.Width - 30, Y: 400}
			b.Vel = cp.Vector{X: 3, Y: 0}
		})

		It("reflects and scales by bounce without damping", func() {
			p.Friction = 1
			physics.Integrate(b, p)
			Expect(b.Vel.X).To(BeNumerically("~", -3*p.Bounce, 1e-12))
			Expect(b.Pos.X).To(Equal(p.Width - 30))
		})

		It("includes damping with the default friction", func() {
			physics.Integrate(b, p)
			Expect(b.Vel.X).To(BeNumerically("~", -3*p.Friction*p.Bounce, 1e-12))
			Expect(b.Pos.X).To(Equal(p.Width - 30))
		})
	})

	It("reflects both axes on a corner hit in the same tick", func() {
		b.Pos = cp.Vector{X: 31, Y: 31}
		b.Vel = cp.Vector{X: -10, Y: -10}
		physics.Integrate(b, p)
		Expect(b.Pos).To(Equal(cp.Vector{X: 30, Y: 30}))
		Expect(b.Vel.X).To(BeNumerically(">", 0))
		Expect(b.Vel.Y).To(BeNumerically(">", 0))
	})

	It("keeps every body inside the world", func() {
		rng := rand.New(rand.NewSource(7))
		for i := 0; i < 500; i++ {
			r := 1 + rng.Float64()*100
			b, _ := physics.NewBody(uint64(i), cp.Vector{
				X: r + rng.Float64()*(p.Width-2*r),
				Y: r + rng.Float64()*(p.Height-2*r),
			}, r, 0)
			b.Vel = cp.Vector{X: (rng.Float64() - 0.5) * 2000, Y: (rng.Float64() - 0.5) * 2000}
			for step := 0; step < 5; step++ {
				physics.Integrate(b, p)
				Expect(b.Pos.X - r).To(BeNumerically(">=", 0))
				Expect(b.Pos.X + r).To(BeNumerically("<=", p.Width))
				Expect(b.Pos.Y - r).To(BeNumerically(">=", 0))
				Expect(b.Pos.Y + r).To(BeNumerically("<=", p.Height))
			}
		}
	})
})

var _ = Describe("Confine", func() {
	It("clamps position and leaves velocity alone", func() {
		p := physics.DefaultParams()
		b, _ := physics.NewBody(1, cp.Vector{X: -50, Y: p.Height + 10}, 20, 0)
		b.Vel = cp.Vector{X: -1, Y: 1}
		physics.Confine(b, p)
		Expect(b.Pos).To(Equal(cp.Vector{X: 20, Y: p.Height - 20}))
		Expect(b.Vel).To(Equal(cp.Vector{X: -1, Y: 1}))
	})
})

var _ = Describe("Params", func() {
	DescribeTable("Validate",
		func(mutate func(*physics.Params), ok bool) {
			p := physics.DefaultParams()
			mutate(&p)
			if ok {
				Expect(p.Validate()).To(Succeed())
			} else {
				Expect(p.Validate()).To(MatchError(physics.ErrParameterBounds))
			}
		},
		Entry("defaults", func(p *physics.Params) {}, true),
		Entry("zero-g", func(p *physics.Params) { p.Gravity = 0 }, true),
		Entry("zero width", func(p *physics.Params) { p.Width = 0 }, false),
		Entry("friction above one", func(p *physics.Params) { p.Friction = 1.2 }, false),
		Entry("zero friction", func(p *physics.Params) { p.Friction = 0 }, false),
		Entry("negative bounce", func(p *physics.Params) { p.Bounce = -0.1 }, false),
	)

	It("limits radius to half the smaller side", func() {
		p := physics.Params{Width: 800, Height: 600}
		Expect(p.MaxRadius()).To(Equal(300.0))
	})
})
