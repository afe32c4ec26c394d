package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/escriba/internal/content"
	"github.com/abhisek/escriba/internal/lang"
	"github.com/abhisek/escriba/internal/progress"
	"github.com/abhisek/escriba/internal/round"
	"github.com/abhisek/escriba/internal/router"
	"github.com/abhisek/escriba/internal/screen"
	sessionscreen "github.com/abhisek/escriba/internal/screens/session"
	"github.com/abhisek/escriba/internal/store"
	"github.com/abhisek/escriba/internal/ui/components"
	"github.com/abhisek/escriba/internal/ui/theme"
)

var themeLabels = map[content.Theme]string{
	content.ThemeFamilia: "MI FAMILIA",
	content.ThemeCasa:    "MI CASA",
	content.ThemeRutina:  "MI RUTINA",
	content.ThemeComida:  "LA COMIDA",
}

// HomeScreen is the theme picker and entry point.
type HomeScreen struct {
	menu  components.Menu
	state *progress.State
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the home screen. State and history are caller-owned and
// shared with the sessions it launches.
func New(fin *round.Finalizer, eventRepo store.EventRepo, snapRepo store.SnapshotRepo, state *progress.State, history map[string][]string, code lang.Code) *HomeScreen {
	var items []components.MenuItem
	for _, th := range content.Themes() {
		th := th
		items = append(items, components.MenuItem{
			Label: themeLabels[th],
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{
						Screen: sessionscreen.New(sessionscreen.Deps{
							Finalizer: fin,
							Events:    eventRepo,
							Snapshots: snapRepo,
							State:     state,
							History:   history,
							Theme:     th,
							Lang:      code,
						}),
					}
				}
			},
		})
	}
	items = append(items, components.MenuItem{
		Label: "SALIR",
		Action: func() tea.Cmd {
			return tea.Quit
		},
	})

	return &HomeScreen{
		menu:  components.NewMenu(items),
		state: state,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) Title() string {
	return "Escriba"
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	title := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("E S C R I B A")
	subtitle := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("Escribe un poco cada día")
	sections = append(sections, title+"\n"+subtitle)

	sections = append(sections, h.renderStats())
	sections = append(sections, h.menu.View())

	body := strings.Join(sections, "\n\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}

func (h *HomeScreen) renderStats() string {
	totalStars := 0
	for _, s := range h.state.Stars {
		totalStars += s
	}
	best := h.state.BestScores[h.state.Level]

	line := fmt.Sprintf("Nivel %d   ★ %d   Mejor: %d", h.state.Level, totalStars, best)
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 2).
		Foreground(theme.Text).
		Render(line)
}
