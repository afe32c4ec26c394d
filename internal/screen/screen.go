package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/escriba/internal/ui/layout"
)

// Screen is one full-window view managed by the router: home, session,
// drill, progress, and so on.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content. The frame (header and footer)
	// is drawn by the app around it.
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider lets a screen replace the default footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}
