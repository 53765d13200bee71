package viz

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/twoslit/internal/config"
	"github.com/san-kum/twoslit/internal/optics"
)

func TestCanvas_SetAndRow(t *testing.T) {
	c := NewCanvas(2, 1)
	assert.Equal(t, "⠀⠀\n", c.String())

	c.Set(0, 0)
	c.Set(3, 3)
	c.Set(-1, 0)
	c.Set(4, 0)
	c.Set(0, 4)

	row := c.Row(0)
	assert.Equal(t, '⠁', row[0])
	assert.Equal(t, '⢀', row[1])
}

func TestCanvas_Line(t *testing.T) {
	c := NewCanvas(4, 1)
	c.Line(0, 0, 7, 0)
	assert.Equal(t, strings.Repeat("⠉", 4), string(c.Row(0)))

	c = NewCanvas(1, 2)
	c.Line(0, 7, 0, 0)
	assert.Equal(t, "⡇\n⡇\n", c.String())
}

func TestCanvas_DashedVLine(t *testing.T) {
	c := NewCanvas(1, 1)
	c.DashedVLine(1, 2)
	assert.Equal(t, '⠈'|'⠐', c.Row(0)[0])
}

func TestWindow_Column(t *testing.T) {
	w := newWindow(0.01, 40)
	assert.Equal(t, 0, w.column(-0.01))
	assert.Equal(t, 20, w.column(0))
	assert.Equal(t, 39, w.column(0.01))
	assert.Equal(t, -1, w.column(0.02))
	assert.Equal(t, -1, w.column(-0.011))
}

func TestBinIntensity(t *testing.T) {
	p := optics.Pattern{
		X:         []float64{0, 1, 2, 3},
		Intensity: []float64{0, 2, 4, 2},
	}
	assert.InDelta(t, 3.0, binIntensity(p, 0.5, 2.5), 1e-12)
	assert.InDelta(t, 3.0, binIntensity(p, 1.4, 1.6), 1e-12)
	assert.Equal(t, 0.0, binIntensity(p, -5, -4))
	assert.Equal(t, 2.0, binIntensity(p, 9, 10))
	assert.Equal(t, 0.0, binIntensity(optics.Pattern{}, 0, 1))
}

func TestPlaceLabels_NoOverlap(t *testing.T) {
	s := NewAppState(config.DefaultConfig())
	s.MaxLabels = 81
	Update(s)

	w := newWindow(optics.ScreenHalfWidth, 60)
	placed := placeLabels(s.Labels, w)
	require.NotEmpty(t, placed)
	assert.Less(t, len(placed), len(s.Labels))

	end := -1
	for _, pl := range placed {
		assert.Greater(t, pl.start, end)
		assert.LessOrEqual(t, pl.start+len(pl.text), w.cols)
		end = pl.start + len(pl.text)
	}
}

func TestPlaceLabels_CentralText(t *testing.T) {
	tests := []struct {
		name      string
		halfWidth float64
		want      string
	}{
		{"spelled out when it fits", 0.01, "k0 (central)"},
		{"shortened when crowded", 0.025, "k0"},
	}

	s := NewAppState(config.DefaultConfig())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			placed := placeLabels(s.Labels, newWindow(tt.halfWidth, 72))

			var central *placedLabel
			for i := range placed {
				if placed[i].Order == 0 {
					central = &placed[i]
				}
			}
			require.NotNil(t, central)
			assert.Equal(t, tt.want, central.text)
		})
	}
}

func TestDrawCurve_ReferenceColumn(t *testing.T) {
	s := NewAppState(config.DefaultConfig())

	_, ref := drawCurve(s.Pattern, newWindow(0.025, 72))
	assert.Equal(t, 72, ref)

	_, ref = drawCurve(s.Pattern, window{lo: 0.01, hi: 0.02, cols: 40})
	assert.Equal(t, -1, ref)
}

func TestWavelengthColor(t *testing.T) {
	assert.Equal(t, "#ff3300", string(WavelengthColor(632, 1)))
	assert.Equal(t, "#000000", string(WavelengthColor(900, 1)))
	assert.Equal(t, "#000000", string(WavelengthColor(532, 0)))
	assert.Equal(t, "#00ff00", string(WavelengthColor(510, 2)))
}

func TestWrap(t *testing.T) {
	out := wrap(bandwidthNote, 30)
	for _, line := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, utf8.RuneCountInString(line), 30)
	}
	assert.Equal(t, strings.Fields(bandwidthNote), strings.Fields(out))
}

func TestThemes(t *testing.T) {
	names := ThemeNames()
	require.NotEmpty(t, names)

	th := GetTheme(names[0])
	for range names {
		th = NextTheme(th)
	}
	assert.Equal(t, names[0], th.Name)
	assert.Equal(t, "cyberpunk", GetTheme("no-such-theme").Name)
}
