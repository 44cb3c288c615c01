package app

import (
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/RandintRayquaza/FocusLab/internal/config"
	"github.com/RandintRayquaza/FocusLab/internal/model"
	"github.com/RandintRayquaza/FocusLab/internal/router"
	"github.com/RandintRayquaza/FocusLab/internal/screen"
	"github.com/RandintRayquaza/FocusLab/internal/screens/home"
	"github.com/RandintRayquaza/FocusLab/internal/store"
	"github.com/RandintRayquaza/FocusLab/internal/ui/layout"
)

// AppModel is the root Bubble Tea model.
type AppModel struct {
	store  *store.Store
	router *router.Router
	width  int
	height int

	streakDays int
	todayMins  int
}

// newAppModel creates a new AppModel with the home screen.
func newAppModel(st *store.Store, cfg config.Config) AppModel {
	homeScreen := home.New(st, cfg)
	m := AppModel{
		store:  st,
		router: router.New(homeScreen),
	}
	m.refreshHeaderStats()
	return m
}

// refreshHeaderStats reloads the streak and today's study minutes.
func (m *AppModel) refreshHeaderStats() {
	m.streakDays = m.store.Streak().Current

	today := time.Now().Format(model.DateLayout)
	total := 0
	for _, s := range m.store.Sessions() {
		if s.Date() == today {
			total += s.DurationMins
		}
	}
	m.todayMins = total
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

	case screen.RefreshHeaderMsg:
		m.refreshHeaderStats()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if interceptor, ok := m.router.Active().(screen.EscInterceptor); ok && interceptor.InterceptEsc() {
				break
			}
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
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

	header := layout.RenderHeader(title, m.streakDays, m.todayMins, m.width)

	var footerHints []layout.KeyHint
	if provider, ok := active.(screen.KeyHintProvider); ok {
		footerHints = provider.KeyHints()
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	} else {
		footerHints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

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

// Run starts the Bubble Tea program.
func Run(st *store.Store, cfg config.Config) error {
	p := tea.NewProgram(newAppModel(st, cfg))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
