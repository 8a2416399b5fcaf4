package gq_test

import (
	"errors"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/quadgen/internal/array"
	"github.com/san-kum/quadgen/internal/gq"
	"github.com/san-kum/quadgen/internal/metrics"
	"github.com/san-kum/quadgen/internal/quad"
	"github.com/san-kum/quadgen/internal/recursion"
	"github.com/san-kum/quadgen/internal/tridiag"
)

var _ = Describe("Dispatcher", func() {
	var d *gq.Dispatcher

	BeforeEach(func() {
		d = gq.New()
	})

	Describe("GQ", func() {
		DescribeTable("small classical rules",
			func(kind quad.Kind, n int, wantX, wantW []float64) {
				x := array.New[float64](n)
				w := array.New[float64](0)
				Expect(d.GQ(kind, 0, 0, x, w)).To(Succeed())
				Expect(w.Len()).To(Equal(n))
				for i := range wantX {
					Expect(x.Data()[i]).To(BeNumerically("~", wantX[i], 1e-10))
					Expect(w.Data()[i]).To(BeNumerically("~", wantW[i], 1e-10))
				}
			},
			Entry("legendre n=1", quad.Legendre, 1, []float64{0}, []float64{2}),
			Entry("legendre n=2", quad.Legendre, 2,
				[]float64{-0.5773502692, 0.5773502692}, []float64{1, 1}),
			Entry("chebyshev1 n=1", quad.Chebyshev1, 1, []float64{0}, []float64{math.Pi}),
			Entry("hermite n=1", quad.Hermite, 1, []float64{0}, []float64{math.Sqrt(math.Pi)}),
		)

		It("rejects kind 7 and leaves the outputs alone", func() {
			x := array.From([]float64{9, 9, 9})
			w := array.From([]float64{7, 7, 7})

			err := d.GQ(7, 0, 0, x, w)
			Expect(errors.Is(err, quad.ErrConfiguration)).To(BeTrue())
			Expect(x.Data()).To(Equal([]float64{9, 9, 9}))
			Expect(w.Data()).To(Equal([]float64{7, 7, 7}))
		})

		It("rejects an empty container", func() {
			err := d.GQ(quad.Legendre, 0, 0, array.New[float64](0), array.New[float64](0))
			Expect(err).To(MatchError(quad.ErrConfiguration))
		})

		It("rejects out-of-domain shape parameters", func() {
			x, w := array.New[float64](4), array.New[float64](4)
			Expect(d.GQ(quad.Jacobi, -1, 0.5, x, w)).To(MatchError(quad.ErrConfiguration))
			Expect(d.GQ(quad.Jacobi, 0.5, -2, x, w)).To(MatchError(quad.ErrConfiguration))
			Expect(d.GQ(quad.Laguerre, -1.5, 0, x, w)).To(MatchError(quad.ErrConfiguration))
		})

		It("ignores shape parameters for families without them", func() {
			x1, w1 := array.New[float64](5), array.New[float64](5)
			x2, w2 := array.New[float64](5), array.New[float64](5)
			Expect(d.GQ(quad.Hermite, 0, 0, x1, w1)).To(Succeed())
			Expect(d.GQ(quad.Hermite, -7, 12, x2, w2)).To(Succeed())
			Expect(x2.Data()).To(Equal(x1.Data()))
			Expect(w2.Data()).To(Equal(w1.Data()))
		})
	})

	Describe("classical families", func() {
		families := []quad.Family{
			{Kind: quad.Legendre},
			{Kind: quad.Chebyshev1},
			{Kind: quad.Chebyshev2},
			{Kind: quad.Hermite},
			{Kind: quad.Jacobi, A: 2, B: 0.25},
			{Kind: quad.Laguerre, A: 0.5},
		}

		It("produce ascending nodes, positive weights and exact moments", func() {
			for _, f := range families {
				for n := 1; n <= 10; n++ {
					r, err := d.Rule(f, n)
					Expect(err).NotTo(HaveOccurred(), "%v n=%d", f, n)

					for i := 1; i < n; i++ {
						Expect(r.X[i]).To(BeNumerically(">", r.X[i-1]), "%v n=%d", f, n)
					}
					for _, w := range r.W {
						Expect(w).To(BeNumerically(">", 0), "%v n=%d", f, n)
					}

					e, err := metrics.MomentError(r, f, 2*n-1)
					Expect(err).NotTo(HaveOccurred())
					Expect(e).To(BeNumerically("<", 1e-11), "%v n=%d", f, n)

					mu0, _ := metrics.Moment(f, 0)
					Expect(r.Mass()).To(BeNumerically("~", mu0, 1e-12*mu0))
				}
			}
		})
	})

	Describe("GQN", func() {
		It("fills only the first n slots", func() {
			x := []float64{5, 5, 5, 5}
			w := []float64{5, 5, 5, 5}
			Expect(d.GQN(quad.Legendre, 2, 0, 0, x, w)).To(Succeed())
			Expect(x[0]).To(BeNumerically("~", -1/math.Sqrt(3), 1e-15))
			Expect(x[2:]).To(Equal([]float64{5, 5}))
			Expect(w[0]).To(BeNumerically("~", 1, 1e-14))
			Expect(w[1]).To(BeNumerically("~", 1, 1e-14))
		})

		It("rejects short buffers and non-positive orders", func() {
			Expect(d.GQN(quad.Legendre, 3, 0, 0, make([]float64, 2), make([]float64, 3))).
				To(MatchError(quad.ErrConfiguration))
			Expect(d.GQN(quad.Legendre, 0, 0, 0, nil, nil)).To(MatchError(quad.ErrConfiguration))
			Expect(d.GQN(quad.Legendre, -3, 0, 0, nil, nil)).To(MatchError(quad.ErrConfiguration))
		})
	})

	Describe("GQGen", func() {
		It("reproduces the dispatcher's rule from the recursion table", func() {
			for _, f := range []quad.Family{{Kind: quad.Legendre}, {Kind: quad.Jacobi, A: 1, B: 3}, {Kind: quad.Laguerre}} {
				rec, err := recursion.Table(f, 7)
				Expect(err).NotTo(HaveOccurred())

				x, w := array.New[float64](0), array.New[float64](0)
				Expect(d.GQGen(array.From(rec.Alpha), array.From(rec.Beta), rec.Mu0, x, w)).To(Succeed())

				xs, ws := array.New[float64](7), array.New[float64](7)
				Expect(d.GQ(f.Kind, f.A, f.B, xs, ws)).To(Succeed())

				Expect(x.Data()).To(Equal(xs.Data()))
				Expect(w.Data()).To(Equal(ws.Data()))
			}
		})

		It("does not modify the recursion", func() {
			alpha := array.From([]float64{0, 0, 0})
			beta := array.From([]float64{2, 1.0 / 3, 4.0 / 15})
			Expect(d.GQGen(alpha, beta, 2, array.New[float64](0), array.New[float64](0))).To(Succeed())
			Expect(alpha.Data()).To(Equal([]float64{0, 0, 0}))
			Expect(beta.Data()).To(Equal([]float64{2, 1.0 / 3, 4.0 / 15}))
		})

		It("surfaces eigensolver failure as a numerical error", func() {
			starved := gq.New(gq.WithSolver(tridiag.NewQL(0)))
			rec, _ := recursion.Table(quad.Family{Kind: quad.Legendre}, 20)
			x, w := array.From([]float64{1}), array.From([]float64{1})

			err := starved.GQGen(array.From(rec.Alpha), array.From(rec.Beta), rec.Mu0, x, w)
			Expect(err).To(MatchError(quad.ErrNumerical))
			Expect(x.Data()).To(Equal([]float64{1}))
		})
	})

	Describe("VandermondeGQ", func() {
		It("returns trapezoid weights for the moments of [0,1]", func() {
			w := array.New[float64](0)
			Expect(d.VandermondeGQ(array.From([]float64{0, 1}), w, array.From([]float64{1, 0.5}))).To(Succeed())
			Expect(w.Data()[0]).To(BeNumerically("~", 0.5, 1e-15))
			Expect(w.Data()[1]).To(BeNumerically("~", 0.5, 1e-15))
		})

		It("reports duplicate nodes as a singular system", func() {
			w := array.From([]float64{3, 3})
			err := d.VandermondeGQ(array.From([]float64{0.5, 0.5}), w, array.From([]float64{1, 0.5}))
			Expect(err).To(MatchError(quad.ErrSingularSystem))
			Expect(w.Data()).To(Equal([]float64{3, 3}))
		})

		It("requires as many nodes as moments", func() {
			err := d.VandermondeGQ(array.From([]float64{0, 1, 2}), array.New[float64](0), array.From([]float64{1, 0.5}))
			Expect(err).To(MatchError(quad.ErrConfiguration))
		})
	})

	Describe("GCHB", func() {
		It("agrees with GQ for both Chebyshev kinds", func() {
			for kind, k := range map[int]quad.Kind{1: quad.Chebyshev1, 2: quad.Chebyshev2} {
				x, w := make([]float64, 6), make([]float64, 6)
				Expect(d.GCHB(kind, 6, x, w)).To(Succeed())

				xs, ws := array.New[float64](6), array.New[float64](6)
				Expect(d.GQ(k, 0, 0, xs, ws)).To(Succeed())
				Expect(x).To(Equal(xs.Data()))
				Expect(w).To(Equal(ws.Data()))
			}
		})

		It("rejects kinds other than 1 and 2", func() {
			Expect(d.GCHB(3, 4, make([]float64, 4), make([]float64, 4))).To(MatchError(quad.ErrConfiguration))
		})
	})

	Describe("Table", func() {
		It("builds each order independently", func() {
			f := quad.Family{Kind: quad.Laguerre, A: 1}
			orders := []int{1, 3, 8, 2, 15, 4}
			rules, err := d.Table(f, orders)
			Expect(err).NotTo(HaveOccurred())
			Expect(rules).To(HaveLen(len(orders)))

			for i, n := range orders {
				single, err := d.Rule(f, n)
				Expect(err).NotTo(HaveOccurred())
				Expect(rules[i].X).To(Equal(single.X))
				Expect(rules[i].W).To(Equal(single.W))
			}
		})

		It("reports the first invalid order", func() {
			_, err := d.Table(quad.Family{Kind: quad.Legendre}, []int{2, 0, -1})
			Expect(err).To(MatchError(ContainSubstring("order 0")))
			Expect(errors.Is(err, quad.ErrConfiguration)).To(BeTrue())
		})
	})

	Describe("package-level functions", func() {
		It("use the default dispatcher", func() {
			x, w := make([]float64, 3), make([]float64, 3)
			Expect(gq.GQN(quad.Legendre, 3, 0, 0, x, w)).To(Succeed())
			Expect(x[1]).To(Equal(0.0))
			Expect(w[1]).To(BeNumerically("~", 8.0/9, 1e-15))
			Expect(gq.Default.Solver().Name()).To(Equal("ql"))
		})
	})
})
