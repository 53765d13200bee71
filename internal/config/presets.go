package config

import (
	"errors"
	"sort"
)

var ErrUnknownPreset = errors.New("config: unknown preset")

// Preset is a named light source and geometry, in display units.
type Preset struct {
	Description    string
	SlitSeparation float64 // mm
	ScreenDistance float64 // m
	Wavelength     float64 // nm
	Bandwidth      float64 // nm
}

var Presets = map[string]Preset{
	"hene": {
		Description:    "helium-neon laser, the classroom default",
		SlitSeparation: 0.5, ScreenDistance: 2.0, Wavelength: 632, Bandwidth: 0,
	},
	"sodium": {
		Description:    "sodium D lines through a filter",
		SlitSeparation: 0.5, ScreenDistance: 2.0, Wavelength: 589, Bandwidth: 1,
	},
	"green": {
		Description:    "green laser pointer",
		SlitSeparation: 0.25, ScreenDistance: 3.0, Wavelength: 532, Bandwidth: 0,
	},
	"led": {
		Description:    "red LED, broad band and washed-out outer fringes",
		SlitSeparation: 1.0, ScreenDistance: 2.0, Wavelength: 630, Bandwidth: 20,
	},
	"wide": {
		Description:    "wide slit separation, dense fringes",
		SlitSeparation: 2.0, ScreenDistance: 1.0, Wavelength: 450, Bandwidth: 0,
	},
	"violet": {
		Description:    "violet diode at the short end of the range",
		SlitSeparation: 0.3, ScreenDistance: 4.0, Wavelength: 405, Bandwidth: 2,
	},
}

func GetPreset(name string) *Preset {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	return &p
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Apply copies the preset values into cfg, leaving ranges untouched.
func (p *Preset) Apply(cfg *Config) {
	cfg.SlitSeparation.Value = p.SlitSeparation
	cfg.ScreenDistance.Value = p.ScreenDistance
	cfg.Wavelength.Value = p.Wavelength
	cfg.Bandwidth.Value = p.Bandwidth
}
