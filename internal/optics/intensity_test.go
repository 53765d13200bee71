package optics

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Calculate", func() {
	setups := []Params{
		{SlitSeparation: 0.5e-3, ScreenDistance: 2.0, Wavelength: 632e-9},
		{SlitSeparation: 0.1e-3, ScreenDistance: 0.5, Wavelength: 400e-9},
		{SlitSeparation: 2.0e-3, ScreenDistance: 5.0, Wavelength: 700e-9},
		{SlitSeparation: 1.0e-3, ScreenDistance: 1.0, Wavelength: 550e-9},
		{SlitSeparation: 2.0e-3, ScreenDistance: 0.5, Wavelength: 400e-9},
	}

	Describe("sample grid", func() {
		It("should align x and intensity by index", func() {
			p := Calculate(0.5e-3, 2.0, 632e-9, 10e-9)
			Expect(p.X).To(HaveLen(Samples))
			Expect(p.Intensity).To(HaveLen(Samples))
		})

		It("should span the fixed screen range", func() {
			p := Calculate(0.5e-3, 2.0, 632e-9, 0)
			lo, hi := p.Range()
			Expect(lo).To(Equal(-ScreenHalfWidth))
			Expect(hi).To(Equal(ScreenHalfWidth))
			for i := 1; i < len(p.X); i++ {
				Expect(p.X[i]).To(BeNumerically(">", p.X[i-1]))
			}
		})

		It("should keep every intensity inside [0, 4]", func() {
			for _, s := range setups {
				p := Calculate(s.SlitSeparation, s.ScreenDistance, s.Wavelength, 20e-9)
				for _, v := range p.Intensity {
					Expect(v).To(BeNumerically(">=", 0))
					Expect(v).To(BeNumerically("<=", PeakIntensity+1e-12))
				}
			}
		})

		It("should not depend on previous calls", func() {
			a := Calculate(0.5e-3, 2.0, 632e-9, 0)
			_ = Calculate(1.5e-3, 4.0, 450e-9, 30e-9)
			b := Calculate(0.5e-3, 2.0, 632e-9, 0)
			Expect(b).To(Equal(a))
		})
	})

	Describe("monochromatic source", func() {
		It("should reach 4 at normal incidence", func() {
			for _, s := range setups {
				Expect(IntensityAt(s, 0)).To(BeNumerically("~", PeakIntensity, 1e-12))
			}
		})

		It("should match the closed form on the grid", func() {
			s := setups[0]
			p := s.Calculate()
			for i := 0; i < len(p.X); i += 97 {
				theta := math.Atan(p.X[i] / s.ScreenDistance)
				c := math.Cos(math.Pi * s.SlitSeparation * math.Sin(theta) / s.Wavelength)
				Expect(p.Intensity[i]).To(BeNumerically("~", 4*c*c, 1e-12))
			}
		})

		It("should place a maximum at every reported fringe", func() {
			s := setups[0]
			p := s.Calculate()
			// kλL/d drifts off the exact sin θ maxima by O(θ²), so stay near the center
			for _, f := range p.Labels(21) {
				Expect(IntensityAt(s, f.Position)).To(BeNumerically(">", 3.99))
			}
		})
	})

	Describe("fringe spacing", func() {
		It("should equal λL/d", func() {
			for _, s := range setups {
				p := s.Calculate()
				want := s.Wavelength * s.ScreenDistance / s.SlitSeparation
				Expect(p.FringeSpacing).To(BeNumerically("~", want, want*1e-12))
			}
		})

		It("should match the He-Ne example", func() {
			p := Calculate(0.5e-3, 2.0, 632e-9, 0)
			Expect(p.FringeSpacing * 1e3).To(BeNumerically("~", 2.528, 1e-9))
			Expect(IntensityAt(p.Params, 0)).To(BeNumerically("~", 4.0, 1e-12))
		})
	})

	Describe("bright fringes", func() {
		It("should report exactly the orders inside the screen range", func() {
			for _, s := range setups {
				p := s.Calculate()
				lo, hi := p.Range()
				dx := s.Wavelength * s.ScreenDistance / s.SlitSeparation

				var want []Fringe
				kmax := int(math.Ceil(hi/dx)) + 1
				for k := -kmax; k <= kmax; k++ {
					pos := float64(k) * s.Wavelength * s.ScreenDistance / s.SlitSeparation
					if pos >= lo && pos <= hi {
						want = append(want, Fringe{Order: k, Position: pos})
					}
				}
				Expect(p.Fringes).To(Equal(want))
			}
		})

		It("should be centered on k = 0", func() {
			p := Calculate(0.5e-3, 2.0, 632e-9, 0)
			Expect(p.Fringes).To(ContainElement(Fringe{Order: 0, Position: 0}))
			first, last := p.Fringes[0], p.Fringes[len(p.Fringes)-1]
			Expect(first.Order).To(Equal(-last.Order))
			Expect(p.MaxOrder).To(Equal(39))
		})
	})

	Describe("finite bandwidth", func() {
		It("should never raise the peak as bandwidth grows", func() {
			bandwidths := []float64{0, 1e-9, 5e-9, 10e-9, 20e-9, 30e-9, 50e-9}
			for _, s := range setups {
				prev := math.Inf(1)
				for _, bw := range bandwidths {
					peak := Calculate(s.SlitSeparation, s.ScreenDistance, s.Wavelength, bw).Peak()
					Expect(peak).To(BeNumerically("<=", prev+1e-9))
					prev = peak
				}
			}
		})

		It("should average the wavelengths across the band", func() {
			s := Params{SlitSeparation: 0.5e-3, ScreenDistance: 2.0, Wavelength: 632e-9, Bandwidth: 40e-9}
			x := 0.03
			sum := 0.0
			for i := 0; i < BandwidthSamples; i++ {
				lam := s.Wavelength - s.Bandwidth/2 + float64(i)*s.Bandwidth/float64(BandwidthSamples-1)
				c := math.Cos(math.Pi * s.SlitSeparation * math.Sin(math.Atan(x/s.ScreenDistance)) / lam)
				sum += 4 * c * c
			}
			Expect(IntensityAt(s, x)).To(BeNumerically("~", sum/BandwidthSamples, 1e-12))
		})

		It("should keep the spacing at the center wavelength", func() {
			a := Calculate(0.5e-3, 2.0, 632e-9, 0)
			b := Calculate(0.5e-3, 2.0, 632e-9, 50e-9)
			Expect(b.FringeSpacing).To(Equal(a.FringeSpacing))
			Expect(b.Fringes).To(Equal(a.Fringes))
		})
	})

	Describe("zero slit separation", func() {
		It("should fall back instead of failing", func() {
			var p Pattern
			Expect(func() { p = Calculate(0, 2.0, 632e-9, 10e-9) }).NotTo(Panic())
			Expect(p.FringeSpacing).To(Equal(0.0))
			Expect(p.MaxOrder).To(Equal(FallbackMaxOrder))
			Expect(p.Fringes).To(BeEmpty())
		})

		It("should leave a uniform screen", func() {
			p := Calculate(0, 2.0, 632e-9, 0)
			for _, v := range p.Intensity {
				Expect(v).To(Equal(PeakIntensity))
			}
		})
	})
})

var _ = Describe("Pattern", func() {
	Describe("Labels", func() {
		It("should return all fringes under the cap", func() {
			p := Calculate(2.0e-3, 5.0, 700e-9, 0)
			Expect(p.Labels(len(p.Fringes))).To(Equal(p.Fringes))
		})

		It("should keep the orders nearest the center", func() {
			p := Calculate(0.5e-3, 2.0, 632e-9, 0)
			labels := p.Labels(7)
			Expect(labels).To(HaveLen(7))
			for i, f := range labels {
				Expect(f.Order).To(Equal(i - 3))
			}
		})

		It("should never exceed the cap", func() {
			p := Calculate(0.5e-3, 2.0, 632e-9, 0)
			Expect(len(p.Labels(6))).To(BeNumerically("<=", 6))
			Expect(p.Labels(0)).To(BeNil())
		})

		It("should not alias the fringe slice", func() {
			p := Calculate(2.0e-3, 5.0, 700e-9, 0)
			labels := p.Labels(100)
			labels[0].Order = 999
			Expect(p.Fringes[0].Order).NotTo(Equal(999))
		})
	})

	It("should report monochromaticity", func() {
		Expect(Monochromaticity(10e-9, 500e-9)).To(BeNumerically("~", 0.02, 1e-15))
		Expect(Monochromaticity(10e-9, 0)).To(Equal(0.0))
	})
})

var _ = Describe("Params", func() {
	It("should accept the default setup", func() {
		Expect(NewParams().Validate()).To(Succeed())
	})

	DescribeTable("Validate rejects",
		func(p Params) {
			Expect(p.Validate()).To(MatchError(ErrInvalidParams))
		},
		Entry("NaN wavelength", Params{SlitSeparation: 1e-3, ScreenDistance: 1, Wavelength: math.NaN()}),
		Entry("infinite distance", Params{SlitSeparation: 1e-3, ScreenDistance: math.Inf(1), Wavelength: 5e-7}),
		Entry("negative separation", Params{SlitSeparation: -1e-3, ScreenDistance: 1, Wavelength: 5e-7}),
		Entry("zero distance", Params{SlitSeparation: 1e-3, ScreenDistance: 0, Wavelength: 5e-7}),
		Entry("zero wavelength", Params{SlitSeparation: 1e-3, ScreenDistance: 1, Wavelength: 0}),
		Entry("band wider than the wavelength", Params{SlitSeparation: 1e-3, ScreenDistance: 1, Wavelength: 5e-7, Bandwidth: 1e-6}),
	)

	It("should set parameters by name", func() {
		p := NewParams()
		Expect(p.SetParam("bandwidth", 5e-9)).To(Succeed())
		Expect(p.SetParam("lambda", 5e-7)).To(Succeed())
		Expect(p.GetParams()).To(HaveKeyWithValue("bandwidth", 5e-9))
		Expect(p.Wavelength).To(Equal(5e-7))
		Expect(p.SetParam("mass", 1)).To(MatchError(ErrUnknownParam))
	})
})
