package optics

import "math"

// Calculate evaluates the two-slit pattern for slit separation d, screen
// distance L, center wavelength lambda and bandwidth, all in meters.
// It never fails: d = 0 yields a zero fringe spacing, MaxOrder set to
// FallbackMaxOrder and no fringe positions.
func Calculate(d, L, lambda, bandwidth float64) Pattern {
	x := linspace(-ScreenHalfWidth, ScreenHalfWidth, Samples)
	wavelengths := sourceWavelengths(lambda, bandwidth)

	intensity := make([]float64, len(x))
	for i, xi := range x {
		intensity[i] = intensityAt(d, L, wavelengths, xi)
	}

	spacing := FringeSpacing(lambda, L, d)
	maxOrder, fringes := brightFringes(d, L, lambda, spacing, x[0], x[len(x)-1])

	return Pattern{
		Params:        Params{SlitSeparation: d, ScreenDistance: L, Wavelength: lambda, Bandwidth: bandwidth},
		X:             x,
		Intensity:     intensity,
		FringeSpacing: spacing,
		MaxOrder:      maxOrder,
		Fringes:       fringes,
	}
}

func (p Params) Calculate() Pattern {
	return Calculate(p.SlitSeparation, p.ScreenDistance, p.Wavelength, p.Bandwidth)
}

// IntensityAt evaluates the same formula as Calculate at a single screen position.
func IntensityAt(p Params, x float64) float64 {
	return intensityAt(p.SlitSeparation, p.ScreenDistance, sourceWavelengths(p.Wavelength, p.Bandwidth), x)
}

// FringeSpacing returns λL/d, or 0 when d is 0.
func FringeSpacing(lambda, L, d float64) float64 {
	if d == 0 {
		return 0
	}
	return lambda * L / d
}

// Monochromaticity returns bandwidth/λ, or 0 when λ is 0.
func Monochromaticity(bandwidth, lambda float64) float64 {
	if lambda == 0 {
		return 0
	}
	return bandwidth / lambda
}

// sourceWavelengths spreads BandwidthSamples wavelengths across
// [λ - Δλ/2, λ + Δλ/2]; a zero bandwidth is the single center wavelength.
func sourceWavelengths(lambda, bandwidth float64) []float64 {
	if bandwidth == 0 {
		return []float64{lambda}
	}
	return linspace(lambda-bandwidth/2, lambda+bandwidth/2, BandwidthSamples)
}

func intensityAt(d, L float64, wavelengths []float64, x float64) float64 {
	sinTheta := math.Sin(math.Atan(x / L))
	total, n := 0.0, 0
	for _, lam := range wavelengths {
		if lam <= 0 {
			continue
		}
		c := math.Cos(math.Pi * d * sinTheta / lam)
		total += PeakIntensity * c * c
		n++
	}
	if n == 0 {
		return 0
	}
	return total / float64(n)
}

// brightFringes enumerates orders k with x_k = kλL/d inside [xmin, xmax].
func brightFringes(d, L, lambda, spacing, xmin, xmax float64) (int, []Fringe) {
	if spacing == 0 {
		return FallbackMaxOrder, nil
	}

	halfRange := math.Max(math.Abs(xmin), math.Abs(xmax))
	maxOrder := int(halfRange / math.Abs(spacing))

	// one extra order each side absorbs rounding in halfRange/spacing
	fringes := make([]Fringe, 0, 2*maxOrder+1)
	for k := -maxOrder - 1; k <= maxOrder+1; k++ {
		pos := float64(k) * lambda * L / d
		if pos < xmin || pos > xmax {
			continue
		}
		fringes = append(fringes, Fringe{Order: k, Position: pos})
	}
	return maxOrder, fringes
}

func linspace(start, stop float64, n int) []float64 {
	out := make([]float64, n)
	if n == 1 {
		out[0] = start
		return out
	}
	step := (stop - start) / float64(n-1)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	out[n-1] = stop
	return out
}
