package home

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/RandintRayquaza/FocusLab/internal/config"
	"github.com/RandintRayquaza/FocusLab/internal/model"
	"github.com/RandintRayquaza/FocusLab/internal/router"
	"github.com/RandintRayquaza/FocusLab/internal/screen"
	"github.com/RandintRayquaza/FocusLab/internal/screens/checkin"
	"github.com/RandintRayquaza/FocusLab/internal/screens/dashboard"
	"github.com/RandintRayquaza/FocusLab/internal/screens/history"
	"github.com/RandintRayquaza/FocusLab/internal/screens/subjects"
	timerscreen "github.com/RandintRayquaza/FocusLab/internal/screens/timer"
	"github.com/RandintRayquaza/FocusLab/internal/store"
	"github.com/RandintRayquaza/FocusLab/internal/ui/components"
	"github.com/RandintRayquaza/FocusLab/internal/ui/theme"
)

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	store *store.Store
	menu  components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(st *store.Store, cfg config.Config) *HomeScreen {
	items := []components.MenuItem{
		{Label: "START SESSION", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: timerscreen.New(st, cfg)}
			}
		}},
		{Label: "DAILY CHECK-IN", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: checkin.New(st)}
			}
		}},
		{Label: "DASHBOARD", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: dashboard.New(st)}
			}
		}},
		{Label: "HISTORY", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(st)}
			}
		}},
		{Label: "SUBJECTS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: subjects.New(st)}
			}
		}},
		{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		store: st,
		menu:  components.NewMenu(items),
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

func (h *HomeScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")

	profile := h.store.Profile()
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render(fmt.Sprintf("Welcome back, %s", profile.Name)))
	b.WriteString("\n")

	today := time.Now().Format(model.DateLayout)
	checked := false
	for _, c := range h.store.DailyChecks() {
		if c.Date == today {
			checked = true
			break
		}
	}
	if !checked {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Warning).
			Render("You haven't checked in today."))
	}
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, h.menu.View()))

	return b.String()
}

func (h *HomeScreen) Title() string {
	return "Home"
}
