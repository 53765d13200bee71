package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines the color scheme for the explorer.
type Theme struct {
	Name      string
	Curve     lipgloss.Color
	Reference lipgloss.Color
	Label     lipgloss.Color
	Title     lipgloss.Color
	Text      lipgloss.Color
	Muted     lipgloss.Color
	Highlight lipgloss.Color
	Track     lipgloss.Color
}

// Available themes
var (
	ThemeCyberpunk = Theme{
		Name:      "cyberpunk",
		Curve:     lipgloss.Color("#00ffff"),
		Reference: lipgloss.Color("#ff3333"),
		Label:     lipgloss.Color("#ffff00"),
		Title:     lipgloss.Color("#ff00ff"),
		Text:      lipgloss.Color("#ffffff"),
		Muted:     lipgloss.Color("#666666"),
		Highlight: lipgloss.Color("#ff00ff"),
		Track:     lipgloss.Color("#333344"),
	}

	ThemeRetroGreen = Theme{
		Name:      "retro",
		Curve:     lipgloss.Color("#00ff00"), // green phosphor
		Reference: lipgloss.Color("#ff0000"),
		Label:     lipgloss.Color("#88ff88"),
		Title:     lipgloss.Color("#00ff00"),
		Text:      lipgloss.Color("#00ff00"),
		Muted:     lipgloss.Color("#005500"),
		Highlight: lipgloss.Color("#88ff88"),
		Track:     lipgloss.Color("#003300"),
	}

	ThemeMinimal = Theme{
		Name:      "minimal",
		Curve:     lipgloss.Color("#ffffff"),
		Reference: lipgloss.Color("#ff0000"),
		Label:     lipgloss.Color("#cccccc"),
		Title:     lipgloss.Color("#ffffff"),
		Text:      lipgloss.Color("#ffffff"),
		Muted:     lipgloss.Color("#888888"),
		Highlight: lipgloss.Color("#0088ff"),
		Track:     lipgloss.Color("#444444"),
	}

	ThemeOcean = Theme{
		Name:      "ocean",
		Curve:     lipgloss.Color("#00a8cc"),
		Reference: lipgloss.Color("#ff4444"),
		Label:     lipgloss.Color("#ffd700"),
		Title:     lipgloss.Color("#0077be"),
		Text:      lipgloss.Color("#e0f0ff"),
		Muted:     lipgloss.Color("#4488aa"),
		Highlight: lipgloss.Color("#ffd700"),
		Track:     lipgloss.Color("#002244"),
	}

	ThemeSunset = Theme{
		Name:      "sunset",
		Curve:     lipgloss.Color("#feca57"),
		Reference: lipgloss.Color("#ff4757"),
		Label:     lipgloss.Color("#ff9ff3"),
		Title:     lipgloss.Color("#ff6b6b"), // coral
		Text:      lipgloss.Color("#fff5f5"),
		Muted:     lipgloss.Color("#8b6b8c"),
		Highlight: lipgloss.Color("#ff9ff3"),
		Track:     lipgloss.Color("#3d2b3e"),
	}

	// All available themes
	Themes = []Theme{
		ThemeCyberpunk,
		ThemeRetroGreen,
		ThemeMinimal,
		ThemeOcean,
		ThemeSunset,
	}
)

// GetTheme returns a theme by name, falling back to cyberpunk.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeCyberpunk
}

// NextTheme returns the theme after t in Themes, wrapping around.
func NextTheme(t Theme) Theme {
	for i, th := range Themes {
		if th.Name == t.Name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
