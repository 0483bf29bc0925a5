package prefs

import (
	"context"

	"github.com/rs/zerolog"
)

// Controller holds the UI state of one session. It is not safe for
// concurrent use; every mutation happens inside a single event handler.
type Controller struct {
	store    Store
	signal   AmbientSignal
	scroller Scroller
	log      zerolog.Logger

	theme       Theme
	view        View
	tab         Tab
	initialized bool
	// chosen is set once the user toggles; Initialize then keeps their theme.
	chosen bool
}

type Option func(*Controller)

func WithLogger(l zerolog.Logger) Option {
	return func(c *Controller) { c.log = l }
}

// NewController returns a controller in its pre-initialization state
// (dark, main, about). Any collaborator may be nil, which is treated as
// unavailable.
func NewController(store Store, signal AmbientSignal, scroller Scroller, opts ...Option) *Controller {
	c := &Controller{
		store:    store,
		signal:   signal,
		scroller: scroller,
		log:      zerolog.Nop(),
		theme:    DefaultTheme,
		view:     ViewMain,
		tab:      TabAbout,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Initialize resolves the theme once per session: a valid stored value
// wins, then the ambient signal, then the dark default. A theme the user
// toggled before Initialize ran is kept. Later calls are no-ops.
func (c *Controller) Initialize(ctx context.Context) {
	if c.initialized {
		return
	}
	c.initialized = true
	if c.chosen {
		return
	}

	if t, ok := c.storedTheme(ctx); ok {
		c.theme = t
		return
	}

	c.theme = ThemeDark
	if c.signal != nil {
		if dark, ok := c.signal.PrefersDark(ctx); ok && !dark {
			c.theme = ThemeLight
		}
	}
}

func (c *Controller) storedTheme(ctx context.Context) (Theme, bool) {
	if c.store == nil {
		return "", false
	}
	raw, ok, err := c.store.Get(ctx, ThemeKey)
	if err != nil {
		c.log.Debug().Err(err).Msg("theme read failed, falling back to ambient signal")
		return "", false
	}
	if !ok {
		return "", false
	}
	t, valid := ParseTheme(raw)
	if !valid {
		c.log.Debug().Str("value", raw).Msg("ignoring invalid stored theme")
	}
	return t, valid
}

// ToggleTheme flips the theme and writes it through to the store. A
// failed write leaves the new in-memory theme in place.
func (c *Controller) ToggleTheme(ctx context.Context) Theme {
	c.theme = c.theme.Opposite()
	c.chosen = true
	if c.store != nil {
		if err := c.store.Set(ctx, ThemeKey, c.theme.String()); err != nil {
			c.log.Debug().Err(err).Str("theme", c.theme.String()).Msg("theme not persisted")
		}
	}
	return c.theme
}

func (c *Controller) SelectView(v View) {
	c.view = v
}

// SelectTab marks the tab active and scrolls its anchor into view. A
// missing anchor is not an error.
func (c *Controller) SelectTab(t Tab) {
	c.tab = t
	if c.scroller != nil && !c.scroller.ScrollTo(string(t)) {
		c.log.Debug().Str("tab", string(t)).Msg("no anchor to scroll to")
	}
}

func (c *Controller) Theme() Theme { return c.theme }

func (c *Controller) View() View { return c.view }

func (c *Controller) Tab() Tab { return c.tab }

func (c *Controller) Initialized() bool { return c.initialized }

func (c *Controller) State() State {
	return State{Theme: c.theme, View: c.view, Tab: c.tab}
}
