package export

import (
	"encoding/json"
	"io"

	"github.com/san-kum/twoslit/internal/optics"
)

type ExportData struct {
	Params           optics.Params   `json:"params"`
	FringeSpacing    float64         `json:"fringe_spacing"`
	Monochromaticity float64         `json:"monochromaticity"`
	Peak             float64         `json:"peak"`
	Samples          int             `json:"samples"`
	MaxOrder         int             `json:"max_order"`
	Fringes          []optics.Fringe `json:"fringes"`
	X                []float64       `json:"x"`
	Intensity        []float64       `json:"intensity"`
}

func NewExportData(p optics.Pattern) ExportData {
	fringes := p.Fringes
	if fringes == nil {
		fringes = []optics.Fringe{}
	}
	return ExportData{
		Params:           p.Params,
		FringeSpacing:    p.FringeSpacing,
		Monochromaticity: optics.Monochromaticity(p.Params.Bandwidth, p.Params.Wavelength),
		Peak:             p.Peak(),
		Samples:          len(p.X),
		MaxOrder:         p.MaxOrder,
		Fringes:          fringes,
		X:                p.X,
		Intensity:        p.Intensity,
	}
}

func WriteJSON(w io.Writer, p optics.Pattern) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(NewExportData(p))
}
