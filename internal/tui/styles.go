package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Zachkp/folio/internal/content"
	"github.com/Zachkp/folio/internal/prefs"
)

// Styles is the terminal rendition of a theme.
type Styles struct {
	Title     lipgloss.Style
	Subtitle  lipgloss.Style
	Section   lipgloss.Style
	Body      lipgloss.Style
	Muted     lipgloss.Style
	Card      lipgloss.Style
	Chip      lipgloss.Style
	TabActive lipgloss.Style
	TabIdle   lipgloss.Style
	Hint      lipgloss.Style
	Icon      string
}

type colors struct {
	accent, text, muted, chip, tabFg, tabBg lipgloss.Color
}

var themeColors = map[prefs.Theme]colors{
	prefs.ThemeDark: {
		accent: "#F59E0B",
		text:   "#F9FAFB",
		muted:  "#9CA3AF",
		chip:   "#78350F",
		tabFg:  "#78350F",
		tabBg:  "#FFFFFF",
	},
	prefs.ThemeLight: {
		accent: "#B45309",
		text:   "#111827",
		muted:  "#6B7280",
		chip:   "#FDE68A",
		tabFg:  "#FFFFFF",
		tabBg:  "#B45309",
	},
}

func StylesFor(t prefs.Theme) Styles {
	c, ok := themeColors[t]
	if !ok {
		c = themeColors[prefs.DefaultTheme]
	}
	icon := "🌙"
	if !t.IsDark() {
		icon = "☀️"
	}
	return Styles{
		Title:     lipgloss.NewStyle().Bold(true).Foreground(c.accent),
		Subtitle:  lipgloss.NewStyle().Foreground(c.text),
		Section:   lipgloss.NewStyle().Bold(true).Foreground(c.accent).MarginBottom(1),
		Body:      lipgloss.NewStyle().Foreground(c.text),
		Muted:     lipgloss.NewStyle().Foreground(c.muted),
		Card:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(c.accent).Padding(0, 1),
		Chip:      lipgloss.NewStyle().Background(c.chip).Foreground(c.text).Padding(0, 1),
		TabActive: lipgloss.NewStyle().Bold(true).Foreground(c.tabFg).Background(c.tabBg).Padding(0, 2),
		TabIdle:   lipgloss.NewStyle().Foreground(c.text).Padding(0, 2),
		Hint:      lipgloss.NewStyle().Foreground(c.muted).Italic(true),
		Icon:      icon,
	}
}

func linkLabel(b content.Button) string {
	return b.Label + ": " + b.Href
}
