package web

import (
	"github.com/Zachkp/folio/internal/content"
	"github.com/Zachkp/folio/internal/prefs"
)

// Palette is the set of utility classes a theme renders with.
type Palette struct {
	Page       string
	Card       string
	Body       string
	Toggle     string
	ToggleIcon string
	Footer     string
	TabActive  string
	TabIdle    string
}

var palettes = map[prefs.Theme]Palette{
	prefs.ThemeDark: {
		Page:       "bg-gradient-to-br from-yellow-900 via-amber-800 to-yellow-700 text-white",
		Card:       "bg-white/10",
		Body:       "text-gray-300",
		Toggle:     "bg-white/10 hover:bg-white/20",
		ToggleIcon: "🌙",
		Footer:     "text-gray-400",
		TabActive:  "bg-white text-yellow-900 shadow-lg transform -translate-y-1",
		TabIdle:    "text-white hover:bg-white/10",
	},
	prefs.ThemeLight: {
		Page:       "bg-gradient-to-br from-yellow-50 via-amber-100 to-yellow-100 text-gray-900",
		Card:       "bg-white/60",
		Body:       "text-gray-600",
		Toggle:     "bg-gray-200 hover:bg-gray-300",
		ToggleIcon: "☀️",
		Footer:     "text-gray-500",
		TabActive:  "bg-white text-yellow-900 shadow-lg transform -translate-y-1",
		TabIdle:    "text-gray-900 hover:bg-white/40",
	},
}

func PaletteFor(t prefs.Theme) Palette {
	if p, ok := palettes[t]; ok {
		return p
	}
	return palettes[prefs.DefaultTheme]
}

// Tab returns the classes for a navigation button.
func (p Palette) Tab(active bool) string {
	if active {
		return p.TabActive
	}
	return p.TabIdle
}

func buttonClass(k content.LinkKind) string {
	switch k {
	case content.KindAppStore:
		return "bg-gradient-to-r from-blue-500 to-blue-600"
	case content.KindPlayStore:
		return "bg-gradient-to-r from-green-500 to-green-600"
	default:
		return "bg-gradient-to-r from-yellow-500 to-amber-500"
	}
}
