// Package signal implements the host color-scheme preference signals.
package signal

import (
	"context"
	"net/http"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Zachkp/folio/internal/prefs"
)

// ClientHintHeader is the user-agent client hint carrying the
// prefers-color-scheme media feature.
const ClientHintHeader = "Sec-CH-Prefers-Color-Scheme"

// ClientHint reads the color-scheme client hint from a request.
type ClientHint struct {
	Header http.Header
}

func FromRequest(r *http.Request) ClientHint {
	return ClientHint{Header: r.Header}
}

func (h ClientHint) PrefersDark(context.Context) (bool, bool) {
	v := strings.Trim(strings.TrimSpace(h.Header.Get(ClientHintHeader)), `"`)
	switch strings.ToLower(v) {
	case "dark":
		return true, true
	case "light":
		return false, true
	}
	return false, false
}

// Terminal asks the terminal for its background color. The query writes
// to and reads from the tty, so resolve it before a program takes over
// the terminal.
type Terminal struct{}

func (Terminal) PrefersDark(context.Context) (bool, bool) {
	return lipgloss.HasDarkBackground(), true
}

// Fixed always reports the same preference. A nil Dark means no signal.
type Fixed struct {
	Dark *bool
}

func FixedDark() Fixed  { d := true; return Fixed{Dark: &d} }
func FixedLight() Fixed { d := false; return Fixed{Dark: &d} }

func (f Fixed) PrefersDark(context.Context) (bool, bool) {
	if f.Dark == nil {
		return false, false
	}
	return *f.Dark, true
}

// Resolve asks sig once and returns the answer as a Fixed.
func Resolve(ctx context.Context, sig prefs.AmbientSignal) Fixed {
	if sig == nil {
		return Fixed{}
	}
	dark, ok := sig.PrefersDark(ctx)
	if !ok {
		return Fixed{}
	}
	return Fixed{Dark: &dark}
}
