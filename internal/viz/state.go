package viz

import (
	"math"

	"github.com/san-kum/twoslit/internal/analysis"
	"github.com/san-kum/twoslit/internal/config"
	"github.com/san-kum/twoslit/internal/export"
	"github.com/san-kum/twoslit/internal/optics"
)

// Slider indices in AppState.Sliders.
const (
	SliderSeparation = iota
	SliderDistance
	SliderWavelength
	SliderBandwidth
	numSliders
)

// coarseSteps is how many fine steps H/L move at once.
const coarseSteps = 10

// Slider is one continuous input control in display units.
type Slider struct {
	Label   string
	Unit    string
	Format  string
	Min     float64
	Max     float64
	Step    float64
	Value   float64
	Initial float64
}

func NewSlider(label, unit, format string, s config.Slider, steps int) Slider {
	if steps <= 0 {
		steps = config.DefaultSteps
	}
	sl := Slider{
		Label:  label,
		Unit:   unit,
		Format: format,
		Min:    s.Min,
		Max:    s.Max,
		Step:   (s.Max - s.Min) / float64(steps),
	}
	sl.Set(s.Value)
	sl.Initial = sl.Value
	return sl
}

// Set stores v clamped to [Min, Max].
func (s *Slider) Set(v float64) {
	s.Value = math.Max(s.Min, math.Min(s.Max, v))
}

// Inc moves the slider n steps; negative n moves it down.
func (s *Slider) Inc(n int) {
	s.Set(s.Value + float64(n)*s.Step)
}

func (s *Slider) Dec(n int) {
	s.Inc(-n)
}

func (s *Slider) Reset() {
	s.Value = s.Initial
}

// Fraction is the slider position in [0, 1].
func (s Slider) Fraction() float64 {
	if s.Max == s.Min {
		return 0
	}
	return (s.Value - s.Min) / (s.Max - s.Min)
}

// Label is an on-screen fringe order annotation.
type Label struct {
	Order    int
	Position float64
	Text     string
}

// AppState is everything the display shows, owned by the UI loop and
// rebuilt by Update after every control change.
type AppState struct {
	Sliders    [numSliders]Slider
	Pattern    optics.Pattern
	Labels     []Label
	Visibility float64
	MaxLabels  int
	Focus      int
	Theme      Theme
	Updates    int
}

func NewAppState(cfg *config.Config) *AppState {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	s := &AppState{
		MaxLabels: cfg.MaxLabels,
		Theme:     GetTheme(cfg.Theme),
	}
	s.Sliders[SliderSeparation] = NewSlider("Slit separation", "mm", "%.2f", cfg.SlitSeparation, cfg.Steps)
	s.Sliders[SliderDistance] = NewSlider("Screen distance", "m", "%.2f", cfg.ScreenDistance, cfg.Steps)
	s.Sliders[SliderWavelength] = NewSlider("Wavelength", "nm", "%.0f", cfg.Wavelength, cfg.Steps)
	s.Sliders[SliderBandwidth] = NewSlider("Bandwidth", "nm", "%.1f", cfg.Bandwidth, cfg.Steps)
	Update(s)
	return s
}

// Params converts the slider values to SI units.
func (s *AppState) Params() optics.Params {
	return optics.Params{
		SlitSeparation: s.Sliders[SliderSeparation].Value * 1e-3,
		ScreenDistance: s.Sliders[SliderDistance].Value,
		Wavelength:     s.Sliders[SliderWavelength].Value * 1e-9,
		Bandwidth:      s.Sliders[SliderBandwidth].Value * 1e-9,
	}
}

// Update recomputes the pattern from the sliders and rebuilds the labels
// from scratch.
func Update(s *AppState) {
	s.Pattern = s.Params().Calculate()
	s.Visibility = analysis.Visibility(s.Pattern)

	fringes := s.Pattern.Labels(s.MaxLabels)
	s.Labels = make([]Label, 0, len(fringes))
	for _, f := range fringes {
		s.Labels = append(s.Labels, Label{Order: f.Order, Position: f.Position, Text: export.OrderLabel(f.Order)})
	}
	s.Updates++
}

// Adjust moves the focused slider n steps and updates.
func (s *AppState) Adjust(n int) {
	s.Sliders[s.Focus].Inc(n)
	Update(s)
}

// Reset restores every slider to its initial value and updates.
func (s *AppState) Reset() {
	for i := range s.Sliders {
		s.Sliders[i].Reset()
	}
	Update(s)
}

func (s *AppState) FocusNext() {
	s.Focus = (s.Focus + 1) % numSliders
}

func (s *AppState) FocusPrev() {
	s.Focus = (s.Focus + numSliders - 1) % numSliders
}

func (s *AppState) Monochromaticity() float64 {
	p := s.Params()
	return optics.Monochromaticity(p.Bandwidth, p.Wavelength)
}
