// Package dashboard renders study KPIs, a 7-day trend, and the derived
// insight report.
package dashboard

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/RandintRayquaza/FocusLab/internal/insight"
	"github.com/RandintRayquaza/FocusLab/internal/model"
	"github.com/RandintRayquaza/FocusLab/internal/screen"
	"github.com/RandintRayquaza/FocusLab/internal/store"
	"github.com/RandintRayquaza/FocusLab/internal/ui/theme"
)

// DashboardScreen shows aggregate stats and insights.
type DashboardScreen struct {
	totalMins    int
	avgScore     int
	sessionCount int
	streakDays   int
	trend        []dayTotal // oldest first, 7 entries
	report       insight.Report
}

type dayTotal struct {
	Label string
	Mins  int
}

var _ screen.Screen = (*DashboardScreen)(nil)

// New loads stats from the store and computes the insight report.
func New(st *store.Store) *DashboardScreen {
	sessions := st.Sessions()
	checks := st.DailyChecks()

	d := &DashboardScreen{
		sessionCount: len(sessions),
		streakDays:   st.Streak().Current,
		report: insight.ComputeInsights(insight.History{
			Sessions:    sessions,
			DailyChecks: checks,
		}),
	}

	scoreSum := 0
	for _, s := range sessions {
		d.totalMins += s.DurationMins
		scoreSum += s.FocusScore
	}
	if len(sessions) > 0 {
		d.avgScore = scoreSum / len(sessions)
	}

	byDate := make(map[string]int, len(sessions))
	for _, s := range sessions {
		byDate[s.Date()] += s.DurationMins
	}
	now := time.Now()
	for i := 6; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		d.trend = append(d.trend, dayTotal{
			Label: day.Format("Mon"),
			Mins:  byDate[day.Format(model.DateLayout)],
		})
	}

	return d
}

func (d *DashboardScreen) Init() tea.Cmd {
	return nil
}

func (d *DashboardScreen) Title() string {
	return "Dashboard"
}

func (d *DashboardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return d, nil
}

func (d *DashboardScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")

	// KPI row.
	kpis := lipgloss.JoinHorizontal(lipgloss.Top,
		kpiCard("Total study", fmt.Sprintf("%.1f h", float64(d.totalMins)/60)),
		" ",
		kpiCard("Avg focus", fmt.Sprintf("%d", d.avgScore)),
		" ",
		kpiCard("Sessions", fmt.Sprintf("%d", d.sessionCount)),
		" ",
		kpiCard("Streak", fmt.Sprintf("%d days", d.streakDays)),
	)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, kpis))
	b.WriteString("\n\n")

	// 7-day trend.
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, d.renderTrend()))
	b.WriteString("\n\n")

	// Insight report.
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, d.renderInsights(width)))

	return b.String()
}

func kpiCard(label, value string) string {
	content := lipgloss.NewStyle().Foreground(theme.TextDim).Render(label) + "\n" +
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(value)
	return theme.Card.Render(content)
}

// renderTrend draws the last 7 days as horizontal minute bars.
func (d *DashboardScreen) renderTrend() string {
	maxMins := 0
	for _, t := range d.trend {
		if t.Mins > maxMins {
			maxMins = t.Mins
		}
	}

	const barWidth = 30
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render("Last 7 days"))
	b.WriteString("\n")
	for _, t := range d.trend {
		filled := 0
		if maxMins > 0 {
			filled = t.Mins * barWidth / maxMins
		}
		bar := lipgloss.NewStyle().Foreground(theme.Primary).Render(strings.Repeat("█", filled)) +
			lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("░", barWidth-filled))
		b.WriteString(fmt.Sprintf("%s  %s %4dm\n",
			lipgloss.NewStyle().Foreground(theme.Text).Render(t.Label), bar, t.Mins))
	}
	return strings.TrimRight(b.String(), "\n")
}

func (d *DashboardScreen) renderInsights(width int) string {
	wrap := min(width-8, 70)
	line := func(icon, text string) string {
		return lipgloss.NewStyle().Foreground(theme.Primary).Render(icon+" ") +
			lipgloss.NewStyle().Width(wrap).Foreground(theme.Text).Render(text)
	}

	var rows []string
	rows = append(rows, line("◆", d.report.PeakFocus))
	rows = append(rows, line("◆", d.report.SleepCorrelation))
	if d.report.StressWarning != "" {
		rows = append(rows, lipgloss.NewStyle().Foreground(theme.Warning).Render("▲ ")+
			lipgloss.NewStyle().Width(wrap).Foreground(theme.Warning).Render(d.report.StressWarning))
	}
	rows = append(rows, line("◆", fmt.Sprintf("Recommended pomodoro: %d minutes", d.report.RecommendedMinutes)))

	content := lipgloss.NewStyle().Foreground(theme.TextDim).Render("Insights") + "\n" +
		strings.Join(rows, "\n")
	return theme.Card.Render(content)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
