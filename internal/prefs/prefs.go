// Package prefs owns the page's UI state (theme, view and active tab) and
// bridges the theme to a durable key-value store.
package prefs

import "context"

// ThemeKey is the durable-store key the theme is persisted under.
const ThemeKey = "theme"

type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// DefaultTheme is adopted when neither the store nor the host has a preference.
const DefaultTheme = ThemeDark

// ParseTheme accepts only the literal strings "dark" and "light".
func ParseTheme(s string) (Theme, bool) {
	switch Theme(s) {
	case ThemeDark, ThemeLight:
		return Theme(s), true
	}
	return "", false
}

func (t Theme) Opposite() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

func (t Theme) IsDark() bool { return t == ThemeDark }

func (t Theme) String() string { return string(t) }

type View string

const (
	ViewMain     View = "main"
	ViewProjects View = "projects"
)

func (v View) String() string { return string(v) }

type Tab string

const (
	TabAbout    Tab = "about"
	TabProjects Tab = "projects"
	TabSkills   Tab = "skills"
)

func (t Tab) String() string { return string(t) }

// TabItem is one entry of the navigation bar.
type TabItem struct {
	ID    Tab
	Label string
}

var tabs = []TabItem{
	{ID: TabAbout, Label: "About"},
	{ID: TabProjects, Label: "Projects"},
	{ID: TabSkills, Label: "Skills"},
}

// Tabs returns the navigation entries in display order.
func Tabs() []TabItem {
	out := make([]TabItem, len(tabs))
	copy(out, tabs)
	return out
}

// ParseTab maps an anchor id from a request onto a Tab.
func ParseTab(s string) (Tab, bool) {
	for _, item := range tabs {
		if string(item.ID) == s {
			return item.ID, true
		}
	}
	return "", false
}

// State is the snapshot handed to rendering surfaces.
type State struct {
	Theme Theme `json:"theme"`
	View  View  `json:"view"`
	Tab   Tab   `json:"tab"`
}

// Store is the durable key-value store. ok is false when the key is absent.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
}

// AmbientSignal reports the host's color-scheme preference. ok is false
// when the host exposes no signal.
type AmbientSignal interface {
	PrefersDark(ctx context.Context) (dark bool, ok bool)
}

// Scroller brings the element with the given anchor id into view. It
// returns false when no such element exists.
type Scroller interface {
	ScrollTo(anchor string) bool
}
