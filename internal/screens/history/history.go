// Package history lists past study sessions and the current week's
// per-subject breakdown.
package history

import (
	"fmt"
	"sort"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/RandintRayquaza/FocusLab/internal/model"
	"github.com/RandintRayquaza/FocusLab/internal/screen"
	"github.com/RandintRayquaza/FocusLab/internal/store"
	"github.com/RandintRayquaza/FocusLab/internal/ui/layout"
	"github.com/RandintRayquaza/FocusLab/internal/ui/theme"
)

const maxListed = 50

// HistoryScreen shows recent sessions newest-first.
type HistoryScreen struct {
	sessions []model.Session // capped at maxListed
	weekly   []subjectTotal
	offset   int
}

type subjectTotal struct {
	Subject string
	Mins    int
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New loads session history from the store.
func New(st *store.Store) *HistoryScreen {
	sessions := st.Sessions()

	weekAgo := time.Now().AddDate(0, 0, -7)
	totals := make(map[string]int)
	for _, s := range sessions {
		if s.StartTime.After(weekAgo) {
			totals[s.Subject] += s.DurationMins
		}
	}
	weekly := make([]subjectTotal, 0, len(totals))
	for subject, mins := range totals {
		weekly = append(weekly, subjectTotal{Subject: subject, Mins: mins})
	}
	sort.Slice(weekly, func(i, j int) bool {
		if weekly[i].Mins != weekly[j].Mins {
			return weekly[i].Mins > weekly[j].Mins
		}
		return weekly[i].Subject < weekly[j].Subject
	})

	if len(sessions) > maxListed {
		sessions = sessions[:maxListed]
	}

	return &HistoryScreen{
		sessions: sessions,
		weekly:   weekly,
	}
}

func (h *HistoryScreen) Init() tea.Cmd {
	return nil
}

func (h *HistoryScreen) Title() string {
	return "History"
}

func (h *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Esc", Description: "Back"},
	}
}

func (h *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return h, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if h.offset > 0 {
			h.offset--
		}
	case "down", "j":
		if h.offset < len(h.sessions)-1 {
			h.offset++
		}
	}
	return h, nil
}

func (h *HistoryScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")

	if len(h.sessions) == 0 {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("No sessions yet. Start one from the home screen."))
		return b.String()
	}

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, h.renderWeekly()))
	b.WriteString("\n\n")

	// The weekly card and chrome eat roughly half the content area.
	visible := height - len(h.weekly) - 8
	if visible < 3 {
		visible = 3
	}

	var list strings.Builder
	list.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(
		fmt.Sprintf("%-11s %-18s %7s %7s %7s", "Date", "Subject", "Mins", "Breaks", "Score")))
	list.WriteString("\n")

	end := h.offset + visible
	if end > len(h.sessions) {
		end = len(h.sessions)
	}
	for _, s := range h.sessions[h.offset:end] {
		scoreStyle := theme.Good
		if s.FocusScore < 50 {
			scoreStyle = theme.Bad
		}
		list.WriteString(fmt.Sprintf("%-11s %-18s %7d %7d %s\n",
			s.Date(),
			truncate(s.Subject, 18),
			s.DurationMins,
			s.Breaks,
			scoreStyle.Render(fmt.Sprintf("%7d", s.FocusScore)),
		))
	}
	if end < len(h.sessions) {
		list.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(
			fmt.Sprintf("… %d more", len(h.sessions)-end)))
	}

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, strings.TrimRight(list.String(), "\n")))

	return b.String()
}

func (h *HistoryScreen) renderWeekly() string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render("This week by subject"))
	b.WriteString("\n")

	if len(h.weekly) == 0 {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render("No study time in the last 7 days."))
	}
	for _, w := range h.weekly {
		b.WriteString(fmt.Sprintf("%s %s\n",
			lipgloss.NewStyle().Foreground(theme.Text).Render(fmt.Sprintf("%-18s", truncate(w.Subject, 18))),
			lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(fmt.Sprintf("%dm", w.Mins)),
		))
	}

	return theme.Card.Render(strings.TrimRight(b.String(), "\n"))
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}
