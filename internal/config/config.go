package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/san-kum/twoslit/internal/optics"
	"gopkg.in/yaml.v3"
)

const (
	DefaultSlitSeparation = 0.5   // mm
	DefaultScreenDistance = 2.0   // m
	DefaultWavelength     = 632.0 // nm
	DefaultBandwidth      = 0.0   // nm
	DefaultSteps          = 100
	DefaultMaxLabels      = 9
	DefaultTheme          = "cyberpunk"
)

// ErrInvalidConfig indicates a config whose slider ranges or values are inconsistent.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds the explorer's initial values and slider ranges in display
// units: millimeters, meters and nanometers.
type Config struct {
	SlitSeparation Slider `yaml:"slit_separation_mm"`
	ScreenDistance Slider `yaml:"screen_distance_m"`
	Wavelength     Slider `yaml:"wavelength_nm"`
	Bandwidth      Slider `yaml:"bandwidth_nm"`
	Steps          int    `yaml:"steps"`
	MaxLabels      int    `yaml:"max_labels"`
	Theme          string `yaml:"theme"`
}

type Slider struct {
	Value float64 `yaml:"value"`
	Min   float64 `yaml:"min"`
	Max   float64 `yaml:"max"`
}

func DefaultConfig() *Config {
	return &Config{
		SlitSeparation: Slider{Value: DefaultSlitSeparation, Min: 0.1, Max: 2.0},
		ScreenDistance: Slider{Value: DefaultScreenDistance, Min: 0.5, Max: 5.0},
		Wavelength:     Slider{Value: DefaultWavelength, Min: 400, Max: 700},
		Bandwidth:      Slider{Value: DefaultBandwidth, Min: 0, Max: 50},
		Steps:          DefaultSteps,
		MaxLabels:      DefaultMaxLabels,
		Theme:          DefaultTheme,
	}
}

func Load(path string) (*Config, error) {
	return LoadOver(path, DefaultConfig())
}

// LoadOver reads path on top of a copy of base, so keys missing from the
// file keep base's values.
func LoadOver(path string, base *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := *base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Params converts the slider values to SI units.
func (c *Config) Params() optics.Params {
	return optics.Params{
		SlitSeparation: c.SlitSeparation.Value * 1e-3,
		ScreenDistance: c.ScreenDistance.Value,
		Wavelength:     c.Wavelength.Value * 1e-9,
		Bandwidth:      c.Bandwidth.Value * 1e-9,
	}
}

func (c *Config) Validate() error {
	sliders := []struct {
		name string
		s    Slider
	}{
		{"slit_separation_mm", c.SlitSeparation},
		{"screen_distance_m", c.ScreenDistance},
		{"wavelength_nm", c.Wavelength},
		{"bandwidth_nm", c.Bandwidth},
	}
	for _, sl := range sliders {
		if sl.s.Min >= sl.s.Max {
			return fmt.Errorf("%w: %s range [%g, %g] is empty", ErrInvalidConfig, sl.name, sl.s.Min, sl.s.Max)
		}
		if sl.s.Value < sl.s.Min || sl.s.Value > sl.s.Max {
			return fmt.Errorf("%w: %s value %g outside [%g, %g]", ErrInvalidConfig, sl.name, sl.s.Value, sl.s.Min, sl.s.Max)
		}
	}
	if c.Steps <= 0 {
		return fmt.Errorf("%w: steps must be positive, got %d", ErrInvalidConfig, c.Steps)
	}
	if c.MaxLabels < 0 {
		return fmt.Errorf("%w: max_labels must not be negative, got %d", ErrInvalidConfig, c.MaxLabels)
	}
	if err := c.Params().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}
