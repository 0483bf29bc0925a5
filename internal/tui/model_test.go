package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zachkp/folio/internal/content"
	"github.com/Zachkp/folio/internal/prefs"
	"github.com/Zachkp/folio/internal/prefs/signal"
	"github.com/Zachkp/folio/internal/prefs/store"
)

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestModel(t *testing.T, detector prefs.AmbientSignal) (*Model, *store.Memory) {
	t.Helper()
	p, err := content.Default()
	require.NoError(t, err)
	mem := store.NewMemory()
	m := New(context.Background(), p, store.Bind(mem, "local"), detector, zerolog.Nop())
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 12})
	return m, mem
}

// initialize runs the detector command the way the program would.
func initialize(m *Model) {
	m.Update(m.Init()())
}

func TestModel_DefaultBeforeInitialize(t *testing.T) {
	m, _ := newTestModel(t, signal.FixedLight())

	assert.Equal(t, prefs.ThemeDark, m.State().Theme)

	initialize(m)
	assert.Equal(t, prefs.ThemeLight, m.State().Theme)
}

func TestModel_NoDetector(t *testing.T) {
	m, _ := newTestModel(t, nil)

	initialize(m)

	assert.Equal(t, prefs.ThemeDark, m.State().Theme)
}

func TestModel_StoredThemeWins(t *testing.T) {
	p, err := content.Default()
	require.NoError(t, err)
	mem := store.NewMemory()
	require.NoError(t, mem.Set(context.Background(), "local", prefs.ThemeKey, "light"))
	m := New(context.Background(), p, store.Bind(mem, "local"), signal.FixedDark(), zerolog.Nop())

	initialize(m)

	assert.Equal(t, prefs.ThemeLight, m.State().Theme)
}

func TestModel_ToggleThemePersists(t *testing.T) {
	m, mem := newTestModel(t, signal.FixedDark())
	initialize(m)

	m.Update(key("t"))

	assert.Equal(t, prefs.ThemeLight, m.State().Theme)
	v, ok, err := mem.Get(context.Background(), "local", prefs.ThemeKey)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "light", v)
	assert.Contains(t, m.View(), "☀️")
}

func TestModel_ToggleBeforeAmbientAnswerSticks(t *testing.T) {
	p, err := content.Default()
	require.NoError(t, err)
	m := New(context.Background(), p, nil, signal.FixedDark(), zerolog.Nop())

	m.Update(key("t"))
	require.Equal(t, prefs.ThemeLight, m.State().Theme)
	initialize(m)

	assert.Equal(t, prefs.ThemeLight, m.State().Theme)
	assert.Contains(t, m.View(), "☀️")
}

func TestModel_SelectTabScrolls(t *testing.T) {
	m, _ := newTestModel(t, signal.FixedDark())
	initialize(m)

	m.Update(key("3"))

	assert.Equal(t, prefs.TabSkills, m.State().Tab)
	anchor, ok := m.page.anchors["skills"]
	require.True(t, ok)
	require.Positive(t, anchor)
	maxOffset := max(0, m.viewport.TotalLineCount()-m.viewport.Height)
	assert.Equal(t, min(anchor, maxOffset), m.viewport.YOffset)
}

func TestModel_SelectTabOnProjectsViewIsNoopScroll(t *testing.T) {
	m, _ := newTestModel(t, signal.FixedDark())
	initialize(m)

	m.Update(key("p"))
	m.Update(key("3"))

	assert.Equal(t, prefs.ViewProjects, m.State().View)
	assert.Equal(t, prefs.TabSkills, m.State().Tab)
	assert.Equal(t, 0, m.viewport.YOffset)
}

func TestModel_Views(t *testing.T) {
	m, _ := newTestModel(t, signal.FixedDark())
	initialize(m)

	m.Update(key("p"))
	assert.Equal(t, prefs.ViewProjects, m.State().View)
	assert.Contains(t, m.page.body, "Microsoft Store")

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, prefs.ViewMain, m.State().View)
	assert.Contains(t, m.page.body, "About Me")
}

func TestModel_Quit(t *testing.T) {
	m, _ := newTestModel(t, nil)

	_, cmd := m.Update(key("q"))

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestWrapInline(t *testing.T) {
	assert.Equal(t, "aa bb\ncc", wrapInline([]string{"aa", "bb", "cc"}, 5))
	assert.Empty(t, wrapInline(nil, 10))
}
