package internal

import (
	"fmt"
	"strings"

	"sweep/internal/anim"
)

// Theme bundles the ordered running palettes, cycled by elapsed minute, with
// the fixed alert palette used while counting down.
type Theme struct {
	Name     string
	Palettes []anim.Palette
	Alert    anim.Palette
}

// Built-in themes. The default follows the Tokyo Night palette used across
// the rest of the UI; additional entries exist mostly to exercise the
// minute-by-minute palette cycling.
var themes = []Theme{
	{
		Name: "tokyo-night",
		Palettes: []anim.Palette{
			{Name: "blue", Start: "#7aa2f7", End: "#7dcfff"},
			{Name: "green", Start: "#9ece6a", End: "#73daca"},
			{Name: "violet", Start: "#bb9af7", End: "#7aa2f7"},
		},
		Alert: anim.Palette{Name: "alert", Start: "#f7768e", End: "#e0af68"},
	},
	{
		Name: "ember",
		Palettes: []anim.Palette{
			{Name: "amber", Start: "#e0af68", End: "#ff9e64"},
			{Name: "rose", Start: "#f7768e", End: "#bb9af7"},
		},
		Alert: anim.Palette{Name: "alert", Start: "#f7768e", End: "#db4b4b"},
	},
	{
		Name: "mono",
		Palettes: []anim.Palette{
			{Name: "ice", Start: "#c0caf5", End: "#565f89"},
		},
		Alert: anim.Palette{Name: "alert", Start: "#e0af68", End: "#565f89"},
	},
}

// DefaultTheme is the theme used when no preference is configured.
const DefaultTheme = "tokyo-night"

// ThemeByName looks up a built-in theme, case-insensitively.
func ThemeByName(name string) (Theme, error) {
	for _, th := range themes {
		if strings.EqualFold(th.Name, name) {
			return th, nil
		}
	}
	return Theme{}, fmt.Errorf("unknown theme %q (available: %s)", name, strings.Join(ThemeNames(), ", "))
}

// ThemeNames returns the names of all built-in themes in order.
func ThemeNames() []string {
	names := make([]string, len(themes))
	for i, th := range themes {
		names[i] = th.Name
	}
	return names
}

// NextTheme returns the theme following name in the built-in order, wrapping
// around at the end. Unknown names restart at the first theme.
func NextTheme(name string) Theme {
	for i, th := range themes {
		if strings.EqualFold(th.Name, name) {
			return themes[(i+1)%len(themes)]
		}
	}
	return themes[0]
}
