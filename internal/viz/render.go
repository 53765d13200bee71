package viz

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/twoslit/internal/optics"
)

const (
	stripRows        = 4
	curveRows        = 10
	panelWidth       = 46
	minPlotWidth     = 40
	defaultPlotWidth = 72
	gutter           = 2
	curveTop         = optics.PeakIntensity + 0.2
)

// ZoomLevels are the selectable screen half-widths in meters. The pattern is
// always computed over the full optics.ScreenHalfWidth range.
var ZoomLevels = []float64{optics.ScreenHalfWidth, 0.05, 0.025, 0.01}

const defaultZoom = 2

var shadeRamp = []rune{' ', '░', '▒', '▓', '█'}

// window maps a screen interval onto cols character columns.
type window struct {
	lo, hi float64
	cols   int
}

func newWindow(halfWidth float64, cols int) window {
	return window{lo: -halfWidth, hi: halfWidth, cols: cols}
}

// column returns the character column holding x, or -1 outside the window.
func (w window) column(x float64) int {
	if x < w.lo || x > w.hi {
		return -1
	}
	col := int((x - w.lo) / (w.hi - w.lo) * float64(w.cols))
	if col >= w.cols {
		col = w.cols - 1
	}
	return col
}

// binIntensity averages the samples in [lo, hi), interpolating the grid when
// the bin is narrower than the sample spacing.
func binIntensity(p optics.Pattern, lo, hi float64) float64 {
	n := len(p.X)
	if n < 2 {
		return 0
	}
	x0, step := p.X[0], p.X[1]-p.X[0]

	first := int(math.Ceil((lo - x0) / step))
	last := int(math.Ceil((hi-x0)/step)) - 1
	if first < 0 {
		first = 0
	}
	if last > n-1 {
		last = n - 1
	}
	if last >= first {
		sum := 0.0
		for i := first; i <= last; i++ {
			sum += p.Intensity[i]
		}
		return sum / float64(last-first+1)
	}

	mid := (lo + hi) / 2
	pos := (mid - x0) / step
	i := int(math.Floor(pos))
	if i < 0 {
		return p.Intensity[0]
	}
	if i >= n-1 {
		return p.Intensity[n-1]
	}
	frac := pos - float64(i)
	return p.Intensity[i]*(1-frac) + p.Intensity[i+1]*frac
}

// renderStrip draws the vertical fringes as seen on the screen, tinted by the
// center wavelength.
func renderStrip(s *AppState, st Styles, w window) string {
	nm := s.Sliders[SliderWavelength].Value
	span := (w.hi - w.lo) / float64(w.cols)
	ref := w.column(0)

	var row strings.Builder
	row.WriteString(strings.Repeat(" ", gutter))
	for col := 0; col < w.cols; col++ {
		if col == ref {
			row.WriteString(st.Reference.Render("┆"))
			continue
		}
		lo := w.lo + float64(col)*span
		level := binIntensity(s.Pattern, lo, lo+span) / optics.PeakIntensity
		idx := int(level * float64(len(shadeRamp)-1))
		if idx >= len(shadeRamp) {
			idx = len(shadeRamp) - 1
		}
		if idx < 0 {
			idx = 0
		}
		style := lipgloss.NewStyle().Foreground(WavelengthColor(nm, 0.25+0.75*level))
		row.WriteString(style.Render(string(shadeRamp[idx])))
	}

	line := row.String()
	rows := make([]string, stripRows)
	for i := range rows {
		rows[i] = line
	}
	return strings.Join(rows, "\n")
}

// drawCurve plots intensity against screen position on a fresh canvas and
// returns it with the sub-pixel column of the k = 0 line (-1 if hidden).
func drawCurve(p optics.Pattern, w window) (*Canvas, int) {
	c := NewCanvas(w.cols, curveRows)
	subW, subH := w.cols*2, curveRows*4
	span := (w.hi - w.lo) / float64(subW)

	prevX, prevY := -1, -1
	for sx := 0; sx < subW; sx++ {
		lo := w.lo + float64(sx)*span
		v := binIntensity(p, lo, lo+span)
		sy := int(math.Round((1 - v/curveTop) * float64(subH-1)))
		if prevX >= 0 {
			c.Line(prevX, prevY, sx, sy)
		} else {
			c.Set(sx, sy)
		}
		prevX, prevY = sx, sy
	}

	ref := -1
	if w.lo <= 0 && w.hi >= 0 {
		ref = int((0 - w.lo) / (w.hi - w.lo) * float64(subW))
		if ref >= subW {
			ref = subW - 1
		}
		c.DashedVLine(ref, 2)
	}
	return c, ref
}

func renderCurve(s *AppState, st Styles, w window) string {
	c, ref := drawCurve(s.Pattern, w)
	refCol := -1
	if ref >= 0 {
		refCol = ref / 2
	}

	lines := make([]string, 0, c.Height)
	for r := 0; r < c.Height; r++ {
		row := c.Row(r)
		axis := "  "
		switch r {
		case 0:
			axis = "4┤"
		case c.Height - 1:
			axis = "0┤"
		}

		var b strings.Builder
		b.WriteString(st.Subtle.Render(axis))
		if refCol < 0 {
			b.WriteString(st.Curve.Render(string(row)))
		} else {
			b.WriteString(st.Curve.Render(string(row[:refCol])))
			b.WriteString(st.Reference.Render(string(row[refCol])))
			b.WriteString(st.Curve.Render(string(row[refCol+1:])))
		}
		lines = append(lines, b.String())
	}
	return strings.Join(lines, "\n")
}

// placeLabels lays the order labels out on one row of w.cols cells, centered
// on their fringe columns. A label that would overlap its left neighbour is
// dropped; the central label shortens to "k0" before it is dropped.
func placeLabels(labels []Label, w window) []placedLabel {
	placed := make([]placedLabel, 0, len(labels))
	next := 0
	for _, l := range labels {
		col := w.column(l.Position)
		if col < 0 {
			continue
		}
		text, start, ok := fitLabel(l.Text, col, next, w.cols)
		if !ok && l.Order == 0 {
			text, start, ok = fitLabel("k0", col, next, w.cols)
		}
		if !ok {
			continue
		}
		placed = append(placed, placedLabel{Label: l, start: start, text: text})
		next = start + utf8.RuneCountInString(text) + 1
	}
	return placed
}

// fitLabel centers text on col and reports whether it starts at or after next
// and ends inside cols.
func fitLabel(text string, col, next, cols int) (string, int, bool) {
	n := utf8.RuneCountInString(text)
	start := col - n/2
	return text, start, start >= next && start+n <= cols
}

type placedLabel struct {
	Label
	start int
	text  string
}

func renderLabels(s *AppState, st Styles, w window) string {
	var b strings.Builder
	b.WriteString(strings.Repeat(" ", gutter))
	pos := 0
	for _, pl := range placeLabels(s.Labels, w) {
		b.WriteString(strings.Repeat(" ", pl.start-pos))
		style := st.Label
		if pl.Order == 0 {
			style = st.Reference.Bold(true)
		}
		b.WriteString(style.Render(pl.text))
		pos = pl.start + utf8.RuneCountInString(pl.text)
	}
	return b.String()
}

func renderAxis(st Styles, w window) string {
	left := fmt.Sprintf("%+.1f mm", w.lo*1e3)
	right := fmt.Sprintf("%+.1f mm", w.hi*1e3)
	mid := "x"
	pad := w.cols - len(left) - len(right) - len(mid)
	if pad < 2 {
		return strings.Repeat(" ", gutter) + st.Subtle.Render(left+" "+right)
	}
	lp := pad / 2
	return strings.Repeat(" ", gutter) + st.Subtle.Render(left+strings.Repeat(" ", lp)+mid+strings.Repeat(" ", pad-lp)+right)
}

func sliderBar(t Theme, focused bool, width int, frac float64) string {
	fill := t.Curve
	if focused {
		fill = t.Highlight
	}
	bar := progress.New(
		progress.WithSolidFill(string(fill)),
		progress.WithoutPercentage(),
		progress.WithWidth(width),
	)
	bar.EmptyColor = string(t.Track)
	return bar.ViewAs(frac)
}

func renderPanel(s *AppState, st Styles) string {
	var b strings.Builder
	inner := panelWidth - 4

	b.WriteString(st.Title.Render("YOUNG'S DOUBLE SLIT") + "\n")
	b.WriteString(st.Separator(inner) + "\n\n")

	for i, sl := range s.Sliders {
		value := fmt.Sprintf(sl.Format+" %s", sl.Value, sl.Unit)
		name := fmt.Sprintf("%-16s", sl.Label)
		if i == s.Focus {
			b.WriteString(st.Active.Render("▸ "+name) + st.MetricValue.Render(value) + "\n")
		} else {
			b.WriteString(st.Subtle.Render("  "+name) + st.MetricValue.Render(value) + "\n")
		}
		b.WriteString("  " + sliderBar(s.Theme, i == s.Focus, inner-2, sl.Fraction()) + "\n")
	}

	b.WriteString("\n" + st.Title.Render("RESULTS") + "\n")
	metric := func(label, value string) {
		b.WriteString(st.MetricLabel.Render(label) + st.MetricValue.Render(value) + "\n")
	}
	metric("Fringe spacing Δx", fmt.Sprintf("%.3f mm", s.Pattern.FringeSpacing*1e3))
	metric("Monochromaticity", fmt.Sprintf("%.6f", s.Monochromaticity()))
	metric("Visibility", fmt.Sprintf("%.3f", s.Visibility))
	metric("Peak intensity", fmt.Sprintf("%.3f", s.Pattern.Peak()))
	metric("Bright fringes", fmt.Sprintf("%d", len(s.Pattern.Fringes)))

	b.WriteString("\n" + st.Subtle.Render(wrap(bandwidthNote, inner)) + "\n")
	b.WriteString("\n" + st.KeyHint.Render("tab:focus h/l:adjust H/L:coarse\nz/x:zoom r:reset t:theme ?:help q:quit"))

	return st.Panel.Width(panelWidth).Render(b.String())
}

const bandwidthNote = "Bandwidth is the spread of wavelengths in the source; 0 is ideal monochromatic light. " +
	"A wider band means poorer monochromaticity and the fringes wash out away from the center."

func wrap(text string, width int) string {
	var lines []string
	var line strings.Builder
	for _, word := range strings.Fields(text) {
		if line.Len() > 0 && line.Len()+1+len([]rune(word)) > width {
			lines = append(lines, line.String())
			line.Reset()
		}
		if line.Len() > 0 {
			line.WriteByte(' ')
		}
		line.WriteString(word)
	}
	if line.Len() > 0 {
		lines = append(lines, line.String())
	}
	return strings.Join(lines, "\n")
}

const helpText = `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  Tab/J    - Focus next slider        ║
║  S-Tab/K  - Focus previous slider    ║
║  H/L      - Fine adjust (←/→)        ║
║  Shift+HL - Coarse adjust            ║
║  Z/X      - Zoom in/out              ║
║  R        - Reset all parameters     ║
║  T        - Cycle themes             ║
║  ?        - Toggle this help         ║
║  Q        - Quit                     ║
╚══════════════════════════════════════╝
`
