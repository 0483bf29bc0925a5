// Package tui renders the portfolio in the terminal with the same state
// controller the web server uses.
package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/Zachkp/folio/internal/content"
	"github.com/Zachkp/folio/internal/prefs"
)

// chromeHeight is the header (name, nav) plus the help line.
const chromeHeight = 3

// ambientMsg carries the host color-scheme answer back onto the event loop.
type ambientMsg struct {
	dark bool
	ok   bool
}

type Model struct {
	ctx       context.Context
	ctrl      *prefs.Controller
	portfolio *content.Portfolio
	detector  prefs.AmbientSignal

	ambient  ambientMsg
	viewport viewport.Model
	page     page
	styles   Styles
	width    int
	height   int
}

var _ tea.Model = (*Model)(nil)

// New builds the model. detector is queried once, off the event loop,
// after the first frame; until it answers the default theme is shown.
func New(ctx context.Context, p *content.Portfolio, store prefs.Store, detector prefs.AmbientSignal, log zerolog.Logger) *Model {
	m := &Model{
		ctx:       ctx,
		portfolio: p,
		detector:  detector,
		viewport:  viewport.New(80, 20),
		width:     80,
		height:    20 + chromeHeight,
	}
	m.ctrl = prefs.NewController(store, m, m, prefs.WithLogger(log))
	m.refresh()
	return m
}

// PrefersDark hands the detector's cached answer to the controller.
func (m *Model) PrefersDark(context.Context) (bool, bool) {
	return m.ambient.dark, m.ambient.ok
}

// ScrollTo moves the viewport to the first line of the anchored section.
func (m *Model) ScrollTo(anchor string) bool {
	line, ok := m.page.anchors[anchor]
	if !ok {
		return false
	}
	m.viewport.SetYOffset(line)
	return true
}

func (m *Model) Init() tea.Cmd {
	detector, ctx := m.detector, m.ctx
	return func() tea.Msg {
		if detector == nil {
			return ambientMsg{}
		}
		dark, ok := detector.PrefersDark(ctx)
		return ambientMsg{dark: dark, ok: ok}
	}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ambientMsg:
		m.ambient = msg
		m.ctrl.Initialize(m.ctx)
		m.refresh()
		return m, nil

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.viewport.Width = msg.Width
		m.viewport.Height = max(1, msg.Height-chromeHeight)
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "t":
			m.ctrl.ToggleTheme(m.ctx)
			m.refresh()
			return m, nil
		case "p":
			m.selectView(prefs.ViewProjects)
			return m, nil
		case "esc", "m", "backspace":
			m.selectView(prefs.ViewMain)
			return m, nil
		case "1", "2", "3":
			tabs := prefs.Tabs()
			m.ctrl.SelectTab(tabs[msg.String()[0]-'1'].ID)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *Model) selectView(v prefs.View) {
	if m.ctrl.View() == v {
		return
	}
	m.ctrl.SelectView(v)
	m.refresh()
	m.viewport.GotoTop()
}

// refresh re-renders the visible view after any state change.
func (m *Model) refresh() {
	m.styles = StylesFor(m.ctrl.Theme())
	if m.ctrl.View() == prefs.ViewProjects {
		m.page = renderProjects(m.portfolio, m.styles, m.width)
	} else {
		m.page = renderMain(m.portfolio, m.styles, m.width)
	}
	offset := m.viewport.YOffset
	m.viewport.SetContent(m.page.body)
	m.viewport.SetYOffset(offset)
}

func (m *Model) header() string {
	prof := m.portfolio.Profile()
	title := m.styles.Title.Render(prof.Name) + "  " + m.styles.Muted.Render(prof.Title)

	var nav []string
	nav = append(nav, m.styles.Body.Render(m.styles.Icon))
	for i, item := range prefs.Tabs() {
		label := string(rune('1'+i)) + " " + item.Label
		if m.ctrl.View() == prefs.ViewMain && item.ID == m.ctrl.Tab() {
			nav = append(nav, m.styles.TabActive.Render(label))
		} else {
			nav = append(nav, m.styles.TabIdle.Render(label))
		}
	}
	return title + "\n" + lipgloss.JoinHorizontal(lipgloss.Top, nav...)
}

func (m *Model) View() string {
	help := m.styles.Hint.Render("t theme · p projects · esc home · 1-3 sections · ↑/↓ scroll · q quit")
	return strings.Join([]string{m.header(), m.viewport.View(), help}, "\n")
}

// State exposes the controller snapshot.
func (m *Model) State() prefs.State { return m.ctrl.State() }
