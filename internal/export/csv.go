package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/san-kum/twoslit/internal/optics"
)

// WriteCSV writes one x,intensity row per sample, positions in meters.
func WriteCSV(out io.Writer, p optics.Pattern) error {
	w := csv.NewWriter(out)

	if err := w.Write([]string{"x", "intensity"}); err != nil {
		return err
	}

	for i := range p.X {
		row := []string{
			strconv.FormatFloat(p.X[i], 'g', 10, 64),
			strconv.FormatFloat(p.Intensity[i], 'f', 6, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}
