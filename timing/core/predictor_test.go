package core_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/diss/timing/core"
)

var _ = Describe("Predictor", func() {
	var p *core.Predictor

	BeforeEach(func() {
		p = core.NewPredictor(core.PredictorConfig{BHTSize: 16, BTBSize: 8})
	})

	Describe("Prediction", func() {
		It("should initially predict taken with no target", func() {
			pred := p.Predict(0x1000)
			Expect(pred.Taken).To(BeTrue())
			Expect(pred.TargetKnown).To(BeFalse())
		})

		It("should learn a taken branch and its target", func() {
			for i := 0; i < 10; i++ {
				p.Resolve(0x1000, true, 0x2000)
			}

			pred := p.Predict(0x1000)
			Expect(pred.Taken).To(BeTrue())
			Expect(pred.TargetKnown).To(BeTrue())
			Expect(pred.Target).To(Equal(uint64(0x2000)))
		})

		It("should learn a not-taken branch", func() {
			for i := 0; i < 10; i++ {
				p.Resolve(0x1000, false, 0x1004)
			}
			Expect(p.Predict(0x1000).Taken).To(BeFalse())
		})
	})

	Describe("2-bit saturating counter", func() {
		It("should require 2 mispredictions to change direction", func() {
			pc := uint64(0x1000)
			for i := 0; i < 3; i++ {
				p.Resolve(pc, true, 0x2000)
			}

			Expect(p.Resolve(pc, false, pc+4)).To(BeTrue())
			Expect(p.Predict(pc).Taken).To(BeTrue())

			Expect(p.Resolve(pc, false, pc+4)).To(BeTrue())
			Expect(p.Predict(pc).Taken).To(BeFalse())
		})
	})

	Describe("BTB", func() {
		It("should not cache not-taken branches", func() {
			p.Resolve(0x1000, false, 0x1004)
			Expect(p.Predict(0x1000).TargetKnown).To(BeFalse())
		})

		It("should count a taken branch with a stale target as mispredicted", func() {
			p.Resolve(0x1000, true, 0x2000)
			Expect(p.Resolve(0x1000, true, 0x3000)).To(BeTrue())
			Expect(p.Resolve(0x1000, true, 0x3000)).To(BeFalse())
		})

		It("should replace conflicting entries", func() {
			p = core.NewPredictor(core.PredictorConfig{BHTSize: 16, BTBSize: 4})
			pc1, pc2 := uint64(0x1000), uint64(0x1008)

			p.Resolve(pc1, true, 0x2000)
			p.Resolve(pc2, true, 0x3000)

			Expect(p.Predict(pc2).Target).To(Equal(uint64(0x3000)))
			Expect(p.Predict(pc1).TargetKnown).To(BeFalse())
		})

		It("should keep compressed branches two bytes apart separate", func() {
			p.Resolve(0x1000, true, 0x2000)
			p.Resolve(0x1002, true, 0x3000)

			Expect(p.Predict(0x1000).Target).To(Equal(uint64(0x2000)))
			Expect(p.Predict(0x1002).Target).To(Equal(uint64(0x3000)))
		})
	})

	Describe("Statistics", func() {
		It("should track outcomes and accuracy", func() {
			p.Resolve(0x1000, true, 0x2000) // target unknown
			p.Resolve(0x1000, true, 0x2000)
			p.Resolve(0x1000, true, 0x2000)
			p.Resolve(0x1000, false, 0x1004)

			s := p.Stats()
			Expect(s.Predictions).To(Equal(uint64(4)))
			Expect(s.Correct).To(Equal(uint64(2)))
			Expect(s.Mispredictions).To(Equal(uint64(2)))
			Expect(s.Accuracy()).To(BeNumerically("~", 50.0))
			Expect(s.BTBHits).To(Equal(uint64(3)))
			Expect(s.BTBMisses).To(Equal(uint64(1)))
		})

		It("should report zero accuracy before any branch", func() {
			Expect(p.Stats().Accuracy()).To(BeZero())
		})
	})

	Describe("Reset", func() {
		It("should clear all state", func() {
			for i := 0; i < 5; i++ {
				p.Resolve(0x1000, false, 0x1004)
			}
			p.Resolve(0x2000, true, 0x3000)
			p.Reset()

			Expect(p.Predict(0x1000).Taken).To(BeTrue())
			Expect(p.Predict(0x2000).TargetKnown).To(BeFalse())
			Expect(p.Stats().Predictions).To(BeZero())
		})
	})

	Describe("Configuration", func() {
		It("should validate the defaults", func() {
			Expect(core.DefaultPredictorConfig().Validate()).To(Succeed())
		})

		It("should reject sizes that are not powers of two", func() {
			Expect(core.PredictorConfig{BHTSize: 12, BTBSize: 8}.Validate()).NotTo(Succeed())
			Expect(core.PredictorConfig{BHTSize: 16}.Validate()).NotTo(Succeed())
			Expect(func() { core.NewPredictor(core.PredictorConfig{}) }).To(Panic())
		})
	})
})
