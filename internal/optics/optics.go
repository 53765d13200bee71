package optics

import (
	"fmt"
	"math"
)

const (
	// Samples is the number of screen positions in every Pattern.
	Samples = 1000
	// ScreenHalfWidth bounds the displayed screen range [-ScreenHalfWidth, ScreenHalfWidth] in meters.
	ScreenHalfWidth = 0.1
	// BandwidthSamples is the number of wavelengths averaged for a non-monochromatic source.
	BandwidthSamples = 5
	// PeakIntensity is the normalized maximum of ideal two-beam interference.
	PeakIntensity = 4.0
	// FallbackMaxOrder is the order bound used when the fringe spacing is undefined (d = 0).
	FallbackMaxOrder = 3
)

// Params describes a two-slit setup. All lengths are in meters.
type Params struct {
	SlitSeparation float64 `json:"slit_separation" yaml:"slit_separation"`
	ScreenDistance float64 `json:"screen_distance" yaml:"screen_distance"`
	Wavelength     float64 `json:"wavelength" yaml:"wavelength"`
	Bandwidth      float64 `json:"bandwidth" yaml:"bandwidth"`
}

// NewParams returns the He-Ne setup the explorer opens with.
func NewParams() Params {
	return Params{
		SlitSeparation: 0.5e-3,
		ScreenDistance: 2.0,
		Wavelength:     632e-9,
		Bandwidth:      0,
	}
}

func (p Params) Validate() error {
	fields := []struct {
		name string
		val  float64
	}{
		{"slit_separation", p.SlitSeparation},
		{"screen_distance", p.ScreenDistance},
		{"wavelength", p.Wavelength},
		{"bandwidth", p.Bandwidth},
	}
	for _, f := range fields {
		if math.IsNaN(f.val) || math.IsInf(f.val, 0) {
			return fmt.Errorf("%w: %s is %v", ErrInvalidParams, f.name, f.val)
		}
		if f.val < 0 {
			return fmt.Errorf("%w: %s must not be negative, got %g", ErrInvalidParams, f.name, f.val)
		}
	}
	if p.ScreenDistance == 0 {
		return fmt.Errorf("%w: screen_distance must be positive", ErrInvalidParams)
	}
	if p.Wavelength == 0 {
		return fmt.Errorf("%w: wavelength must be positive", ErrInvalidParams)
	}
	if p.Bandwidth/2 >= p.Wavelength {
		return fmt.Errorf("%w: bandwidth %g too wide for wavelength %g", ErrInvalidParams, p.Bandwidth, p.Wavelength)
	}
	return nil
}

func (p Params) GetParams() map[string]float64 {
	return map[string]float64{
		"slit_separation": p.SlitSeparation,
		"screen_distance": p.ScreenDistance,
		"wavelength":      p.Wavelength,
		"bandwidth":       p.Bandwidth,
	}
}

func (p *Params) SetParam(name string, value float64) error {
	switch name {
	case "slit_separation", "d":
		p.SlitSeparation = value
	case "screen_distance", "L":
		p.ScreenDistance = value
	case "wavelength", "lambda":
		p.Wavelength = value
	case "bandwidth":
		p.Bandwidth = value
	default:
		return fmt.Errorf("%w: %s", ErrUnknownParam, name)
	}
	return nil
}

// Fringe is a predicted bright-fringe maximum.
type Fringe struct {
	Order    int     `json:"order"`
	Position float64 `json:"position"`
}

// Pattern is one evaluation of the screen intensity. X and Intensity align by index.
type Pattern struct {
	Params        Params    `json:"params"`
	X             []float64 `json:"x"`
	Intensity     []float64 `json:"intensity"`
	FringeSpacing float64   `json:"fringe_spacing"`
	MaxOrder      int       `json:"max_order"`
	Fringes       []Fringe  `json:"fringes"`
}

func (p Pattern) Range() (float64, float64) {
	if len(p.X) == 0 {
		return -ScreenHalfWidth, ScreenHalfWidth
	}
	return p.X[0], p.X[len(p.X)-1]
}

// Peak returns the largest sampled intensity.
func (p Pattern) Peak() float64 {
	peak := 0.0
	for _, v := range p.Intensity {
		if v > peak {
			peak = v
		}
	}
	return peak
}

// Labels returns at most max fringes, nearest orders to k = 0 first and then
// sorted by order. Fringes is never modified.
func (p Pattern) Labels(max int) []Fringe {
	if max <= 0 || len(p.Fringes) == 0 {
		return nil
	}
	if len(p.Fringes) <= max {
		out := make([]Fringe, len(p.Fringes))
		copy(out, p.Fringes)
		return out
	}

	limit := 0
	for {
		n := 0
		for _, f := range p.Fringes {
			if absInt(f.Order) <= limit+1 {
				n++
			}
		}
		if n > max {
			break
		}
		limit++
	}

	out := make([]Fringe, 0, max)
	for _, f := range p.Fringes {
		if absInt(f.Order) <= limit {
			out = append(out, f)
		}
	}
	return out
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
