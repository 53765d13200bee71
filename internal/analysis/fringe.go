package analysis

import (
	"math"

	"github.com/san-kum/twoslit/internal/optics"
)

// spectrumPadding zero-pads the sampled curve so the spectral peak lands
// between finer bins.
const spectrumPadding = 4

// Visibility is the fringe contrast (Imax-Imin)/(Imax+Imin) over the sampled screen.
func Visibility(p optics.Pattern) float64 {
	if len(p.Intensity) == 0 {
		return 0
	}
	lo, hi := p.Intensity[0], p.Intensity[0]
	for _, v := range p.Intensity {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	if hi+lo == 0 {
		return 0
	}
	return (hi - lo) / (hi + lo)
}

// MeasuredSpacing estimates the fringe period from the sampled intensity
// alone. It returns 0 when the curve has no periodic component, or when the
// predicted period is shorter than two grid steps and aliases.
func MeasuredSpacing(p optics.Pattern) float64 {
	if len(p.X) < 2 || len(p.X) != len(p.Intensity) {
		return 0
	}
	step := p.X[1] - p.X[0]
	if p.FringeSpacing != 0 && math.Abs(p.FringeSpacing) < 2*step {
		return 0
	}

	mean := 0.0
	for _, v := range p.Intensity {
		mean += v
	}
	mean /= float64(len(p.Intensity))

	// a power-of-2 length keeps the transform on its radix-2 path
	n := NextPow2(len(p.Intensity)) * spectrumPadding
	padded := make([]float64, n)
	for i, v := range p.Intensity {
		padded[i] = v - mean
	}

	ps := PowerSpectrum(padded)
	peak := 0
	for i := 1; i < len(ps); i++ {
		if ps[i] > ps[peak] || peak == 0 {
			peak = i
		}
	}
	if peak == 0 || ps[peak] < 1e-9 {
		return 0
	}

	// parabolic refinement between neighbouring bins
	bin := float64(peak)
	if peak > 1 && peak < len(ps)-1 {
		a, b, c := ps[peak-1], ps[peak], ps[peak+1]
		if den := a - 2*b + c; den != 0 {
			bin += 0.5 * (a - c) / den
		}
	}

	return float64(n) * step / bin
}
