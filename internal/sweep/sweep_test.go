package sweep_test

import (
	"context"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/temcouple/internal/coupling"
	"github.com/san-kum/temcouple/internal/sweep"
)

var _ = Describe("Run", func() {
	var cfg sweep.Config

	BeforeEach(func() {
		cfg = sweep.Config{
			C11:   1.25e-10,
			C12:   -4.90e-16,
			C22:   1.23e-10,
			Param: sweep.ParamC12,
			From:  -5e-11,
			To:    5e-11,
			Steps: 21,
			Opts:  coupling.DefaultOptions(),
		}
	})

	It("samples the range endpoints inclusive", func() {
		points, err := sweep.Run(cfg)
		Expect(err).NotTo(HaveOccurred())
		Expect(points).To(HaveLen(21))
		Expect(points[0].Value).To(Equal(-5e-11))
		Expect(points[20].Value).To(Equal(5e-11))
	})

	It("analyzes every point inside the positive-definite region", func() {
		points, err := sweep.Run(cfg)
		Expect(err).NotTo(HaveOccurred())
		for _, p := range points {
			Expect(p.Err).NotTo(HaveOccurred())
			Expect(math.Abs(p.Result.K)).To(BeNumerically("<=", 1))
		}
	})

	It("yields k = 0 at zero mutual capacitance", func() {
		cfg.From, cfg.To = 0, 5e-11
		points, err := sweep.Run(cfg)
		Expect(err).NotTo(HaveOccurred())
		Expect(points[0].Value).To(BeZero())
		Expect(points[0].Result.K).To(BeZero())
	})

	It("records per-point failures past the singular boundary", func() {
		cfg.C11, cfg.C22 = 1e-10, 1e-10
		cfg.From, cfg.To, cfg.Steps = 0, 1.5e-10, 16

		points, err := sweep.Run(cfg)
		Expect(err).NotTo(HaveOccurred())

		var failed int
		for _, p := range points {
			if p.Err != nil {
				failed++
			}
		}
		// c12 = 1e-10 is exactly singular; larger values are unrealizable.
		Expect(failed).To(BeNumerically(">", 0))
		Expect(points[0].Err).NotTo(HaveOccurred())
		Expect(points[15].Err).To(HaveOccurred())
	})

	It("rejects degenerate configurations", func() {
		cfg.Steps = 1
		_, err := sweep.Run(cfg)
		Expect(err).To(MatchError(sweep.ErrBadSteps))

		cfg.Steps = 10
		cfg.Param = "spacing"
		_, err = sweep.Run(cfg)
		Expect(err).To(MatchError(sweep.ErrBadParam))
	})
})

var _ = Describe("RunParallel", func() {
	cfg := sweep.Config{
		C11:   1.25e-10,
		C12:   -4.90e-16,
		C22:   1.23e-10,
		Param: sweep.ParamC12,
		From:  -5e-11,
		To:    5e-11,
		Steps: 33,
		Opts:  coupling.DefaultOptions(),
	}

	It("matches the sequential sweep", func() {
		seq, err := sweep.Run(cfg)
		Expect(err).NotTo(HaveOccurred())

		par, err := sweep.RunParallel(context.Background(), cfg)
		Expect(err).NotTo(HaveOccurred())

		Expect(par).To(HaveLen(len(seq)))
		for i := range seq {
			Expect(par[i].Value).To(Equal(seq[i].Value))
			Expect(par[i].Result.K).To(Equal(seq[i].Result.K))
		}
	})

	It("stops on a canceled context", func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := sweep.RunParallel(ctx, cfg)
		Expect(err).To(MatchError(context.Canceled))
	})
})

var _ = Describe("Coefficients", func() {
	It("masks failed points", func() {
		cfg := sweep.Config{
			C11: 1e-10, C12: 0, C22: 1e-10,
			Param: sweep.ParamC12,
			From:  0, To: 1.5e-10, Steps: 16,
			Opts: coupling.DefaultOptions(),
		}

		points, err := sweep.Run(cfg)
		Expect(err).NotTo(HaveOccurred())

		ks, ok := sweep.Coefficients(points)
		Expect(ks).To(HaveLen(16))
		Expect(ok[0]).To(BeTrue())
		Expect(ok[15]).To(BeFalse())
		Expect(ks[15]).To(BeZero())
	})
})
