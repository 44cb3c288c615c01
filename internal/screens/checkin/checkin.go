// Package checkin implements the daily wellness check-in form. One check
// per calendar day; re-submitting replaces that day's entry.
package checkin

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/RandintRayquaza/FocusLab/internal/model"
	"github.com/RandintRayquaza/FocusLab/internal/router"
	"github.com/RandintRayquaza/FocusLab/internal/screen"
	"github.com/RandintRayquaza/FocusLab/internal/store"
	"github.com/RandintRayquaza/FocusLab/internal/ui/components"
	"github.com/RandintRayquaza/FocusLab/internal/ui/layout"
	"github.com/RandintRayquaza/FocusLab/internal/ui/theme"
)

const (
	fieldMood = iota
	fieldSleep
	fieldStress
	fieldCount
)

// CheckinScreen collects mood, sleep, and stress for today.
type CheckinScreen struct {
	store *store.Store

	mood    components.Slider
	sleep   components.Slider
	stress  components.Slider
	focused int

	saved   bool
	saveErr string
}

var _ screen.Screen = (*CheckinScreen)(nil)
var _ screen.KeyHintProvider = (*CheckinScreen)(nil)

// New creates the check-in screen, prefilled from today's existing check
// if one was already submitted.
func New(st *store.Store) *CheckinScreen {
	mood, sleepHalfHours, stress := 3, 14, 2 // 7.0h sleep default

	today := time.Now().Format(model.DateLayout)
	for _, c := range st.DailyChecks() {
		if c.Date == today {
			mood = c.Mood
			sleepHalfHours = int(c.Sleep * 2)
			stress = c.Stress
			break
		}
	}

	moodSlider := components.NewSlider("How's your mood?", 1, 5, mood)
	moodSlider.Focused = true

	sleepSlider := components.NewSlider("Hours of sleep last night?", 0, 24, sleepHalfHours)
	sleepSlider.FormatValue = func(v int) string {
		return fmt.Sprintf("%.1f h", float64(v)/2)
	}

	stressSlider := components.NewSlider("Stress level?", 1, 5, stress)

	return &CheckinScreen{
		store:  st,
		mood:   moodSlider,
		sleep:  sleepSlider,
		stress: stressSlider,
	}
}

func (c *CheckinScreen) Init() tea.Cmd {
	return nil
}

func (c *CheckinScreen) Title() string {
	return "Daily Check-in"
}

func (c *CheckinScreen) KeyHints() []layout.KeyHint {
	if c.saved {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Done"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Field"},
		{Key: "←→", Description: "Adjust"},
		{Key: "Enter", Description: "Save"},
		{Key: "Esc", Description: "Back"},
	}
}

func (c *CheckinScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	if c.saved {
		if kmsg.String() == "enter" {
			return c, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return c, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if c.focused > 0 {
			c.focused--
		}
		c.syncFocus()
		return c, nil
	case "down", "j", "tab":
		if c.focused < fieldCount-1 {
			c.focused++
		} else if kmsg.String() == "tab" {
			c.focused = 0
		}
		c.syncFocus()
		return c, nil
	case "enter":
		return c.save()
	}

	var cmd tea.Cmd
	switch c.focused {
	case fieldMood:
		c.mood, cmd = c.mood.Update(msg)
	case fieldSleep:
		c.sleep, cmd = c.sleep.Update(msg)
	case fieldStress:
		c.stress, cmd = c.stress.Update(msg)
	}
	return c, cmd
}

func (c *CheckinScreen) syncFocus() {
	c.mood.Focused = c.focused == fieldMood
	c.sleep.Focused = c.focused == fieldSleep
	c.stress.Focused = c.focused == fieldStress
}

func (c *CheckinScreen) save() (screen.Screen, tea.Cmd) {
	check := model.DailyCheck{
		Date:   time.Now().Format(model.DateLayout),
		Mood:   c.mood.Value,
		Sleep:  float64(c.sleep.Value) / 2,
		Stress: c.stress.Value,
	}

	if err := c.store.UpsertDailyCheck(check); err != nil {
		c.saveErr = err.Error()
		return c, nil
	}

	c.saved = true
	c.saveErr = ""
	return c, nil
}

func (c *CheckinScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")

	if c.saved {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Success).
			Bold(true).
			Render("Check-in saved. See you tomorrow!"))
		return b.String()
	}

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("How are you doing today?"))
	b.WriteString("\n\n")

	form := c.mood.View() + "\n\n" + c.sleep.View() + "\n\n" + c.stress.View()
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, form))

	if c.saveErr != "" {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Danger).
			Render(c.saveErr))
	}

	return b.String()
}
