package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/twoslit/internal/optics"
)

// PatternToSVG draws the intensity curve over the screen range with a dashed
// k = 0 reference line and the labeled fringe orders.
func PatternToSVG(p optics.Pattern, width, height, maxLabels int) string {
	if len(p.X) < 2 || len(p.X) != len(p.Intensity) {
		return ""
	}

	minX, maxX := p.Range()
	rangeX := maxX - minX
	if rangeX == 0 {
		rangeX = 1
	}

	// fixed vertical scale so curves stay comparable across parameters
	const minY, maxY = -0.1, optics.PeakIntensity + 0.6
	const rangeY = maxY - minY

	px := func(x float64) float64 { return (x - minX) / rangeX * float64(width) }
	py := func(y float64) float64 { return float64(height) - (y-minY)/rangeY*float64(height) }

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, "#00aaff"))

	for i := range p.X {
		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", px(p.X[i]), py(p.Intensity[i])))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", px(p.X[i]), py(p.Intensity[i])))
		}
	}
	sb.WriteString("\"/>\n")

	cx := px(0)
	sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="0" x2="%.1f" y2="%d" stroke="#ff3333" stroke-width="2" stroke-dasharray="6,4" opacity="0.8"/>
`, cx, cx, height))

	sb.WriteString(`<g fill="#ffffff" font-family="monospace" font-size="10" text-anchor="middle">
`)
	labelY := py(optics.PeakIntensity + 0.3)
	for _, f := range p.Labels(maxLabels) {
		sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f">%s</text>
`, px(f.Position), labelY, OrderLabel(f.Order)))
	}
	sb.WriteString("</g>\n</svg>")
	return sb.String()
}

// OrderLabel names a fringe order; the central order is spelled out.
func OrderLabel(k int) string {
	if k == 0 {
		return "k0 (central)"
	}
	return fmt.Sprintf("k%d", k)
}
