package viz

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles derived from the current theme.
type Styles struct {
	Panel       lipgloss.Style
	Title       lipgloss.Style
	Subtle      lipgloss.Style
	MetricLabel lipgloss.Style
	MetricValue lipgloss.Style
	Active      lipgloss.Style
	Curve       lipgloss.Style
	Reference   lipgloss.Style
	Label       lipgloss.Style
	KeyHint     lipgloss.Style
}

func NewStyles(t Theme) Styles {
	return Styles{
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Muted).
			Padding(0, 1),
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Title),
		Subtle:      lipgloss.NewStyle().Foreground(t.Muted),
		MetricLabel: lipgloss.NewStyle().Foreground(t.Muted).Width(18),
		MetricValue: lipgloss.NewStyle().Foreground(t.Text).Bold(true),
		Active:      lipgloss.NewStyle().Foreground(t.Highlight).Bold(true),
		Curve:       lipgloss.NewStyle().Foreground(t.Curve),
		Reference:   lipgloss.NewStyle().Foreground(t.Reference),
		Label:       lipgloss.NewStyle().Foreground(t.Label),
		KeyHint:     lipgloss.NewStyle().Foreground(t.Muted).Italic(true),
	}
}

// Separator draws a decorated horizontal rule.
func (s Styles) Separator(width int) string {
	mid := width / 2
	if mid < 3 {
		return s.Subtle.Render(strings.Repeat("─", width))
	}
	left := strings.Repeat("─", mid-3)
	right := strings.Repeat("─", width-mid-3)
	return s.Subtle.Render(left + " ◆ " + right)
}

// WavelengthColor approximates the perceived color of light at nm
// nanometers, scaled by brightness in [0, 1]. Outside 380-780 nm it is black.
func WavelengthColor(nm, brightness float64) lipgloss.Color {
	var r, g, b float64
	switch {
	case nm >= 380 && nm < 440:
		r, g, b = -(nm-440)/(440-380), 0, 1
	case nm >= 440 && nm < 490:
		r, g, b = 0, (nm-440)/(490-440), 1
	case nm >= 490 && nm < 510:
		r, g, b = 0, 1, -(nm-510)/(510-490)
	case nm >= 510 && nm < 580:
		r, g, b = (nm-510)/(580-510), 1, 0
	case nm >= 580 && nm < 645:
		r, g, b = 1, -(nm-645)/(645-580), 0
	case nm >= 645 && nm <= 780:
		r, g, b = 1, 0, 0
	}

	// intensity falls off toward the edges of vision
	factor := 0.0
	switch {
	case nm >= 380 && nm < 420:
		factor = 0.3 + 0.7*(nm-380)/(420-380)
	case nm >= 420 && nm < 701:
		factor = 1
	case nm >= 701 && nm <= 780:
		factor = 0.3 + 0.7*(780-nm)/(780-700)
	}

	brightness = math.Max(0, math.Min(1, brightness))
	scale := func(c float64) int {
		return int(math.Round(255 * c * factor * brightness))
	}
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", scale(r), scale(g), scale(b)))
}
