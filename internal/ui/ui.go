// Package ui handles terminal styling for human-readable output.
package ui

import (
	"context"
	"os"

	"github.com/muesli/termenv"
)

type contextKey struct{}

// UI styles strings according to the terminal's color capabilities and the
// user's --color preference.
type UI struct {
	profile termenv.Profile
}

// New builds a UI for the given color mode: auto|always|never.
func New(mode string) *UI {
	profile := termenv.Ascii
	switch mode {
	case "always":
		profile = termenv.ANSI256
	case "never":
		// stays Ascii
	default:
		if os.Getenv("NO_COLOR") == "" {
			profile = termenv.ColorProfile()
		}
	}
	return &UI{profile: profile}
}

// WithUI returns a context carrying u.
func WithUI(ctx context.Context, u *UI) context.Context {
	return context.WithValue(ctx, contextKey{}, u)
}

// FromContext returns the context's UI, or an uncolored default.
func FromContext(ctx context.Context) *UI {
	if u, ok := ctx.Value(contextKey{}).(*UI); ok {
		return u
	}
	return &UI{profile: termenv.Ascii}
}

func (u *UI) Green(s string) string {
	return u.profile.String(s).Foreground(u.profile.Color("2")).String()
}

func (u *UI) Yellow(s string) string {
	return u.profile.String(s).Foreground(u.profile.Color("3")).String()
}

func (u *UI) Faint(s string) string {
	return u.profile.String(s).Faint().String()
}

func (u *UI) Bold(s string) string {
	return u.profile.String(s).Bold().String()
}
