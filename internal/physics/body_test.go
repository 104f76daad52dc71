package physics_test

import (
	"errors"
	"math"

	"github.com/jakecoffman/cp"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/ballpit/internal/physics"
)

var _ = Describe("Body", func() {
	var b *physics.Body

	BeforeEach(func() {
		var err error
		b, err = physics.NewBody(1, cp.Vector{X: 100, Y: 100}, 30, 2)
		Expect(err).NotTo(HaveOccurred())
	})

	It("derives mass from radius", func() {
		Expect(b.Radius()).To(Equal(30.0))
		Expect(b.Mass()).To(Equal(900.0))
	})

	It("keeps mass equal to radius squared across resizes", func() {
		for _, f := range []float64{1.1, 1.1, 0.9, 0.9, 0.9, 1.1} {
			b.Scale(f, 1, 400)
			Expect(b.Mass()).To(Equal(b.Radius() * b.Radius()))
		}
		Expect(b.SetRadius(12.5)).To(Succeed())
		Expect(b.Mass()).To(Equal(156.25))
	})

	It("clamps scaled radius to the given range", func() {
		b.Scale(100, 1, 400)
		Expect(b.Radius()).To(Equal(400.0))
		for i := 0; i < 200; i++ {
			b.Scale(0.5, 2, 400)
		}
		Expect(b.Radius()).To(Equal(2.0))
		Expect(b.Mass()).To(Equal(4.0))
	})

	DescribeTable("rejects invalid radii",
		func(r float64) {
			err := b.SetRadius(r)
			Expect(errors.Is(err, physics.ErrParameterBounds)).To(BeTrue())
			Expect(b.Radius()).To(Equal(30.0))
		},
		Entry("zero", 0.0),
		Entry("negative", -4.0),
		Entry("NaN", math.NaN()),
		Entry("+Inf", math.Inf(1)),
	)

	It("hit-tests strictly inside the circle", func() {
		Expect(b.Contains(cp.Vector{X: 110, Y: 110})).To(BeTrue())
		Expect(b.Contains(cp.Vector{X: 130, Y: 100})).To(BeFalse())
	})

	It("reports speed, momentum and kinetic energy", func() {
		b.Vel = cp.Vector{X: 3, Y: 4}
		Expect(b.Speed()).To(BeNumerically("~", 5, 1e-12))
		Expect(b.Momentum()).To(Equal(cp.Vector{X: 2700, Y: 3600}))
		Expect(b.KineticEnergy()).To(BeNumerically("~", 0.5*900*25, 1e-9))
	})

	It("flags non-finite state", func() {
		Expect(b.IsValid()).To(BeTrue())
		b.Vel.X = math.NaN()
		Expect(b.IsValid()).To(BeFalse())
	})
})

var _ = Describe("AverageSpeed", func() {
	It("is zero for no bodies", func() {
		Expect(physics.AverageSpeed(nil)).To(Equal(0.0))
		Expect(math.IsNaN(physics.AverageSpeed([]*physics.Body{}))).To(BeFalse())
	})

	It("averages hypot of each velocity", func() {
		a, _ := physics.NewBody(1, cp.Vector{}, 1, 0)
		b, _ := physics.NewBody(2, cp.Vector{}, 1, 0)
		a.Vel = cp.Vector{X: 3, Y: 4}
		b.Vel = cp.Vector{X: 0, Y: -1}
		Expect(physics.AverageSpeed([]*physics.Body{a, b})).To(BeNumerically("~", 3, 1e-12))
	})
})
