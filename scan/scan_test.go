package scan_test

import (
	"context"
	"encoding/binary"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/diss/insts"
	"github.com/sarchlab/diss/insts/a64"
	"github.com/sarchlab/diss/insts/riscv"
	"github.com/sarchlab/diss/scan"
	"github.com/sarchlab/diss/timing/latency"
	"go.uber.org/goleak"
)

var errNoSvc = errors.New("svc rejected")

// strictPrinter refuses to render SVC.
type strictPrinter struct {
	a64.Printer
}

func (strictPrinter) Svc(uint16) (string, error) {
	return "", errNoSvc
}

func le32(words ...uint32) []byte {
	var b []byte
	for _, w := range words {
		b = binary.LittleEndian.AppendUint32(b, w)
	}
	return b
}

func must(word uint32, err error) uint32 {
	ExpectWithOffset(1, err).NotTo(HaveOccurred())
	return word
}

var _ = Describe("Scan", func() {
	ctx := context.Background()

	Describe("A64", func() {
		var (
			a    a64.Assembler
			code []byte
		)

		BeforeEach(func() {
			code = le32(
				must(a.Movz(a64.X, a64.X0, 1, 0)),
				must(a.Madd(a64.X, a64.X0, a64.X1, a64.X2, a64.X3)),
				must(a.Udiv(a64.X, a64.X0, a64.X1, a64.X2)),
				must(a.Svc(0)),
				0x00010000, // reserved
				0xf9400020, // ldr x0, [x1]
			)
			code = append(code, 0x1f, 0x20)
		})

		It("should count outcomes and classes", func() {
			r, err := scan.Scan(ctx, insts.ArchA64, 0x1000, code)
			Expect(err).NotTo(HaveOccurred())

			Expect(r.Slots).To(Equal(7))
			Expect(r.Bytes).To(Equal(len(code)))
			Expect(r.Outcomes[scan.OK]).To(Equal(4))
			Expect(r.Outcomes[scan.Unallocated]).To(Equal(1))
			Expect(r.Outcomes[scan.Unimplemented]).To(Equal(1))
			Expect(r.Outcomes[scan.Truncated]).To(Equal(1))
			Expect(r.Decoded()).To(Equal(4))

			Expect(r.Classes[insts.ClassALU]).To(Equal(1))
			Expect(r.Classes[insts.ClassMultiply]).To(Equal(1))
			Expect(r.Classes[insts.ClassDivide]).To(Equal(1))
			Expect(r.Classes[insts.ClassSystem]).To(Equal(1))

			Expect(r.Cycles).To(Equal(uint64(1 + 3 + 12 + 1 + 1 + 1 + 1)))
			Expect(r.MnemonicNames()).To(ConsistOf("movz", "madd", "udiv", "svc"))
			Expect(r.Lines).To(BeEmpty())
		})

		It("should produce a listing", func() {
			r, err := scan.Scan(ctx, insts.ArchA64, 0x1000, code, scan.WithListing())
			Expect(err).NotTo(HaveOccurred())

			Expect(r.Lines).To(HaveLen(7))
			Expect(r.Lines[3].Addr).To(Equal(uint64(0x100c)))
			Expect(r.Lines[3].Text).To(HavePrefix("svc"))
			Expect(r.Lines[4].Outcome).To(Equal(scan.Unallocated))
			Expect(insts.IsUnallocated(r.Lines[4].Err)).To(BeTrue())
			Expect(r.Lines[6].Outcome).To(Equal(scan.Truncated))
			Expect(r.Lines[6].Word).To(Equal(uint32(0x201f)))
		})

		It("should report visitor errors as handler outcomes", func() {
			r, err := scan.Scan(ctx, insts.ArchA64, 0, code,
				scan.WithListing(), scan.WithA64Visitor(strictPrinter{}))
			Expect(err).NotTo(HaveOccurred())

			Expect(r.Outcomes[scan.Handler]).To(Equal(1))
			Expect(r.Outcomes[scan.OK]).To(Equal(3))
			Expect(r.Decoded()).To(Equal(4))
			Expect(r.Lines[3].Err).To(MatchError(errNoSvc))

			var h *insts.HandlerError
			Expect(errors.As(r.Lines[3].Err, &h)).To(BeTrue())
			Expect(h.Op).To(Equal("svc"))
		})

		It("should match a single-chunk scan when split across workers", func() {
			big := make([]byte, 0, 64*len(code))
			for i := 0; i < 64; i++ {
				big = append(big, code[:24]...)
			}

			whole, err := scan.Scan(ctx, insts.ArchA64, 0x4000, big,
				scan.WithListing(), scan.WithWorkers(1), scan.WithChunkSize(len(big)))
			Expect(err).NotTo(HaveOccurred())
			split, err := scan.Scan(ctx, insts.ArchA64, 0x4000, big,
				scan.WithListing(), scan.WithWorkers(4), scan.WithChunkSize(5))
			Expect(err).NotTo(HaveOccurred())

			Expect(split.Outcomes).To(Equal(whole.Outcomes))
			Expect(split.Classes).To(Equal(whole.Classes))
			Expect(split.Cycles).To(Equal(whole.Cycles))
			Expect(split.MnemonicNames()).To(Equal(whole.MnemonicNames()))
			Expect(split.Lines).To(Equal(whole.Lines))
		})

		It("should leave no workers running once a split scan returns", func() {
			before := goleak.IgnoreCurrent()
			for i := 0; i < 8; i++ {
				_, err := scan.Scan(ctx, insts.ArchA64, 0, code, scan.WithWorkers(4), scan.WithChunkSize(1))
				Expect(err).NotTo(HaveOccurred())
			}
			goleak.VerifyNone(GinkgoT(), before, ginkgoInterrupts)
		})

		It("should price with a custom table", func() {
			cfg := latency.DefaultTimingConfig()
			cfg.DivideLatency = 40
			r, err := scan.Scan(ctx, insts.ArchA64, 0, code[:12],
				scan.WithLatencyTable(latency.NewTableWithConfig(cfg)))
			Expect(err).NotTo(HaveOccurred())
			Expect(r.Cycles).To(Equal(uint64(1 + 3 + 40)))
		})

		It("should stop when the context is cancelled", func() {
			cctx, cancel := context.WithCancel(ctx)
			cancel()

			r, err := scan.Scan(cctx, insts.ArchA64, 0, code)
			Expect(err).To(MatchError(context.Canceled))
			Expect(r).To(BeNil())
		})

		It("should accept an empty buffer", func() {
			r, err := scan.Scan(ctx, insts.ArchA64, 0, nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(r.Slots).To(BeZero())
		})
	})

	Describe("RISC-V", func() {
		var (
			a    riscv.Assembler
			code []byte
		)

		BeforeEach(func() {
			code = le32(must(a.Addi(riscv.A0, riscv.A0, 1)))
			code = binary.LittleEndian.AppendUint16(code, uint16(must(a.CNop())))
			code = append(code, le32(must(a.Ebreak()))...)
			code = binary.LittleEndian.AppendUint16(code, 0x0000)
			code = append(code, le32(0x0000002f)...) // AMO
			code = append(code, 0x13)
		})

		It("should walk mixed-length instructions", func() {
			r, err := scan.Scan(ctx, insts.ArchRV64GC, 0x8000, code, scan.WithListing())
			Expect(err).NotTo(HaveOccurred())

			Expect(r.Slots).To(Equal(6))
			Expect(r.Outcomes[scan.OK]).To(Equal(3))
			Expect(r.Outcomes[scan.Unallocated]).To(Equal(1))
			Expect(r.Outcomes[scan.Unimplemented]).To(Equal(1))
			Expect(r.Outcomes[scan.Truncated]).To(Equal(1))
			Expect(r.Classes[insts.ClassALU]).To(Equal(2))
			Expect(r.Classes[insts.ClassSystem]).To(Equal(1))
			Expect(r.MnemonicNames()).To(ConsistOf("addi", "c.nop", "ebreak"))

			var addrs []uint64
			for _, l := range r.Lines {
				addrs = append(addrs, l.Addr)
			}
			Expect(addrs).To(Equal([]uint64{0x8000, 0x8004, 0x8006, 0x800a, 0x800c, 0x8010}))
			Expect(r.Lines[1].Len).To(Equal(2))
			Expect(r.Lines[1].Word).To(Equal(uint32(0x0001)))
			Expect(r.Lines[5].Len).To(Equal(2))
		})

		It("should stop when the context is cancelled", func() {
			cctx, cancel := context.WithCancel(ctx)
			cancel()

			_, err := scan.Scan(cctx, insts.ArchRV64GC, 0, code)
			Expect(errors.Is(err, context.Canceled)).To(BeTrue())
		})
	})

	It("should reject unknown architectures", func() {
		_, err := scan.Scan(ctx, insts.ArchUnknown, 0, []byte{0, 0, 0, 0})
		Expect(err).To(HaveOccurred())
	})

	DescribeTable("outcome names",
		func(o scan.Outcome, name string) {
			Expect(o.String()).To(Equal(name))
		},
		Entry(nil, scan.OK, "ok"),
		Entry(nil, scan.Handler, "handler"),
		Entry(nil, scan.NumOutcomes, "outcome(5)"),
	)
})
