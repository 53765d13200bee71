package config

import "fmt"

// Overrides are explicitly set values in display units. Nil fields are unset.
type Overrides struct {
	SlitSeparation *float64
	ScreenDistance *float64
	Wavelength     *float64
	Bandwidth      *float64
}

// Resolve layers defaults, the named preset, the config file at path and the
// overrides, each over the last, and validates the result. Empty preset or
// path skip that layer.
func Resolve(preset, path string, o Overrides) (*Config, error) {
	cfg := DefaultConfig()

	if preset != "" {
		p := GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("%w: %s (available: %v)", ErrUnknownPreset, preset, ListPresets())
		}
		p.Apply(cfg)
	}

	if path != "" {
		loaded, err := LoadOver(path, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if o.SlitSeparation != nil {
		cfg.SlitSeparation.Value = *o.SlitSeparation
	}
	if o.ScreenDistance != nil {
		cfg.ScreenDistance.Value = *o.ScreenDistance
	}
	if o.Wavelength != nil {
		cfg.Wavelength.Value = *o.Wavelength
	}
	if o.Bandwidth != nil {
		cfg.Bandwidth.Value = *o.Bandwidth
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
