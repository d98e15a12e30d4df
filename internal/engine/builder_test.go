package engine

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Builder", func() {
	var b *Builder

	BeforeEach(func() {
		b = NewBuilder()
	})

	It("builds a runnable state from the defaults", func() {
		st, err := b.Build()
		Expect(err).NotTo(HaveOccurred())
		Expect(st).NotTo(BeNil())
		Expect(st.NumParticles()).To(BeZero())
		Expect(st.Dt()).To(Equal(0.001))
		Expect(st.StepsPerFrame()).To(Equal(50))
		Expect(st.LawName()).To(Equal("lennard-jones"))
	})

	It("carries particles into the state by copy", func() {
		particles := []Particle{
			NewParticle().SetPos(1, 1, 1),
			NewParticle().SetPos(2, 2, 2),
		}
		st, err := b.SetParticles(particles).Build()
		Expect(err).NotTo(HaveOccurred())
		Expect(st.NumParticles()).To(Equal(2))

		particles[0] = NewParticle().SetPos(4, 4, 4)
		Expect(st.Particles()[0].Pos().Translation.X).To(Equal(1.0))
	})

	DescribeTable("rejecting a single invalid parameter",
		func(mutate func(*Builder), kind ParamKind) {
			mutate(b)
			_, err := b.Build()
			var ipe *InvalidParamError
			Expect(errors.As(err, &ipe)).To(BeTrue())
			Expect(ipe.Kinds).To(ConsistOf(kind))
		},
		Entry("box edge below minimum",
			func(b *Builder) { b.SetBoundX(1.0) }, KindBound),
		Entry("non-positive grid unit size",
			func(b *Builder) { b.SetGridUnitSize(0) }, KindUnitSize),
		Entry("grid reach below one",
			func(b *Builder) { b.SetGridReach(0) }, KindReach),
		Entry("non-positive time step",
			func(b *Builder) { b.SetDt(-1) }, KindDt),
		Entry("steps per frame below one",
			func(b *Builder) { b.SetStepsPerFrame(0) }, KindStepsPerFrame),
		Entry("negative target temperature",
			func(b *Builder) { b.SetTargetTemp(-0.1) }, KindTempOrInjectRate),
		Entry("negative inject rate",
			func(b *Builder) { b.SetInjectRate(-0.1) }, KindTempOrInjectRate),
		Entry("particle outside the box",
			func(b *Builder) {
				b.SetParticles([]Particle{NewParticle().SetPos(-1, 0, 0)})
			}, KindParticleOutOfBounds),
	)

	It("aggregates every violation into one error", func() {
		_, err := b.SetDt(-1).SetGridReach(0).SetBoundX(1.0).Build()

		var ipe *InvalidParamError
		Expect(errors.As(err, &ipe)).To(BeTrue())
		Expect(ipe.Kinds).To(ConsistOf(KindDt, KindReach, KindBound))
		Expect(ipe.Has(KindDt)).To(BeTrue())
		Expect(ipe.Has(KindUnitSize)).To(BeFalse())
	})

	It("can be reused after a failed build", func() {
		_, err := b.SetDt(-1).Build()
		Expect(err).To(HaveOccurred())

		_, err = b.SetDt(0.001).Build()
		Expect(err).NotTo(HaveOccurred())
	})

	It("reports particles out of bounds only once", func() {
		b.SetParticles([]Particle{
			NewParticle().SetPos(-1, 0, 0),
			NewParticle().SetPos(20, 0, 0),
		})
		_, err := b.Build()
		var ipe *InvalidParamError
		Expect(errors.As(err, &ipe)).To(BeTrue())
		Expect(ipe.Kinds).To(ConsistOf(KindParticleOutOfBounds))
	})
})
