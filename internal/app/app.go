package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/escriba/internal/lang"
	"github.com/abhisek/escriba/internal/progress"
	"github.com/abhisek/escriba/internal/round"
	"github.com/abhisek/escriba/internal/router"
	"github.com/abhisek/escriba/internal/screen"
	"github.com/abhisek/escriba/internal/screens/home"
	"github.com/abhisek/escriba/internal/store"
	"github.com/abhisek/escriba/internal/ui/layout"
)

// Options carries the services the TUI needs. Finalizer must be
// non-nil; build it with a nil grader for offline-only marking.
type Options struct {
	EventRepo store.EventRepo
	SnapRepo  store.SnapshotRepo
	Finalizer *round.Finalizer
	Lang      lang.Code
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	state  *progress.State
	width  int
	height int
}

// newAppModel restores learner state from the latest snapshot and
// mounts the home screen.
func newAppModel(opts Options) AppModel {
	state := progress.NewState()
	history := make(map[string][]string)

	if opts.SnapRepo != nil {
		if snap, err := opts.SnapRepo.Latest(context.Background()); err == nil && snap != nil {
			p := snap.Data.Progress
			if p.Level > 0 {
				state.Level = p.Level
			}
			if p.BestScores != nil {
				state.BestScores = p.BestScores
			}
			if p.Stars != nil {
				state.Stars = p.Stars
			}
			if snap.Data.SamplerHistory != nil {
				history = snap.Data.SamplerHistory
			}
		}
	}

	code := opts.Lang
	if code == "" {
		code = lang.CodeSpanish
	}

	homeScreen := home.New(opts.Finalizer, opts.EventRepo, opts.SnapRepo, state, history, code)
	return AppModel{
		router: router.New(homeScreen),
		state:  state,
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		// Esc is screen-local (the session uses it for its quit
		// confirmation), so only ctrl+c is global.
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	totalStars := 0
	for _, s := range m.state.Stars {
		totalStars += s
	}
	header := layout.RenderHeader(title, m.state.Level, totalStars, m.width)

	footer := layout.RenderFooter(m.footerHints(active), m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if provider, ok := active.(screen.KeyHintProvider); ok {
		if hints := provider.KeyHints(); len(hints) > 0 {
			return append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Salir"})
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navegar"},
		{Key: "Enter", Description: "Elegir"},
		{Key: "Ctrl+C", Description: "Salir"},
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
