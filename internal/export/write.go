package export

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/san-kum/twoslit/internal/optics"
)

var ErrUnknownFormat = errors.New("export: unknown format")

// Formats lists the names accepted by Write and WriteFile.
var Formats = []string{"csv", "json", "svg"}

const (
	svgWidth  = 800
	svgHeight = 400
)

// Write renders p to w in the named format.
func Write(w io.Writer, format string, p optics.Pattern, maxLabels int) error {
	var err error
	switch format {
	case "csv":
		err = WriteCSV(w, p)
	case "json":
		err = WriteJSON(w, p)
	case "svg":
		_, err = io.WriteString(w, PatternToSVG(p, svgWidth, svgHeight, maxLabels))
	default:
		return fmt.Errorf("%w: %s (available: %v)", ErrUnknownFormat, format, Formats)
	}
	if err != nil {
		return fmt.Errorf("export %s: %w", format, err)
	}
	return nil
}

// WriteFile writes p to path, reporting a failed close as an error. Nothing
// is created for an unknown format.
func WriteFile(path, format string, p optics.Pattern, maxLabels int) (err error) {
	if !knownFormat(format) {
		return fmt.Errorf("%w: %s (available: %v)", ErrUnknownFormat, format, Formats)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()
	return Write(f, format, p, maxLabels)
}

func knownFormat(format string) bool {
	for _, f := range Formats {
		if f == format {
			return true
		}
	}
	return false
}
