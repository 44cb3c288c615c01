package timer

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	enginepkg "github.com/RandintRayquaza/FocusLab/internal/timer"
	"github.com/RandintRayquaza/FocusLab/internal/ui/components"
	"github.com/RandintRayquaza/FocusLab/internal/ui/layout"
	"github.com/RandintRayquaza/FocusLab/internal/ui/theme"
)

func (t *TimerScreen) View(width, height int) string {
	switch t.mode {
	case modeSetup:
		return t.renderSetup(width, height)
	case modeConfirmEnd:
		return renderEndConfirm(width, height)
	case modeSummary:
		return t.renderSummary(width, height)
	}

	if t.engine.GateOpen() {
		return t.renderGate(width, height)
	}
	if t.engine.State() == enginepkg.StateResting {
		return t.renderRest(width, height)
	}
	return t.renderCountdown(width, height)
}

// renderSetup renders the subject and duration form.
func (t *TimerScreen) renderSetup(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("New Study Session"))
	b.WriteString("\n\n")

	subjectHeader := "  Subject"
	if !t.onMinutes {
		subjectHeader = "▸ Subject"
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(subjectHeader)))
	b.WriteString("\n")

	var subjectList strings.Builder
	for i, subject := range t.subjects {
		if i == t.subjectIdx {
			subjectList.WriteString(lipgloss.NewStyle().
				Foreground(theme.Primary).
				Bold(true).
				Render("  ▸ " + subject))
		} else {
			subjectList.WriteString(lipgloss.NewStyle().
				Foreground(theme.Text).
				Render("    " + subject))
		}
		subjectList.WriteString("\n")
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, subjectList.String()))
	b.WriteString("\n")

	minutesHeader := "  Duration (minutes)"
	if t.onMinutes {
		minutesHeader = "▸ Duration (minutes)"
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(minutesHeader)))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, t.minutesInput.View()))
	b.WriteString("\n")

	if t.setupErr != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Danger).
			Render(t.setupErr))
	}

	return b.String()
}

// renderCountdown renders the running or paused study view.
func (t *TimerScreen) renderCountdown(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Studying %s", t.engine.Subject())))
	b.WriteString("\n\n")

	clock := layout.FormatClock(t.engine.Countdown())
	clockStyle := theme.Countdown
	stateLabel := ""
	if t.engine.State() == enginepkg.StatePaused {
		clockStyle = lipgloss.NewStyle().Bold(true).Foreground(theme.TextDim)
		stateLabel = "PAUSED"
	}

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		clockStyle.Render(bigClock(clock))))
	b.WriteString("\n")

	if stateLabel != "" {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Warning).
			Bold(true).
			Render(stateLabel))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	total := t.engine.ConfiguredMinutes() * 60
	percent := 0.0
	if total > 0 {
		elapsed := total - t.engine.Countdown()
		if elapsed < 0 {
			elapsed = 0
		}
		percent = float64(elapsed) / float64(total)
		if percent > 1 {
			percent = 1
		}
	}
	bar := components.NewProgressBar("", percent, true, min(width-8, 60))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Breaks: %d   Distractions: %d",
			t.engine.Breaks(), t.engine.Distractions())))

	return b.String()
}

// renderGate renders the pause challenge overlay.
func (t *TimerScreen) renderGate(width, height int) string {
	ch := t.engine.GateChallenge()

	var card strings.Builder
	card.WriteString(lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("Prove you deserve a pause"))
	card.WriteString("\n\n")
	card.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(ch.Question))
	card.WriteString("\n\n")
	card.WriteString(t.gateInput.View())

	if t.gateErr != "" {
		card.WriteString("\n\n")
		card.WriteString(lipgloss.NewStyle().Foreground(theme.Danger).Bold(true).Render(t.gateErr))
	}

	box := theme.Card.Render(card.String())

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Still counting down: %s", layout.FormatClock(t.engine.Countdown()))))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, box))

	return b.String()
}

// renderRest renders the rest countdown.
func (t *TimerScreen) renderRest(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Success).
		Bold(true).
		Render("Rest time"))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.RestCountdown.Render(bigClock(layout.FormatClock(t.engine.RestCountdown())))))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Study resumes with %s on the clock", layout.FormatClock(t.engine.Countdown()))))

	return b.String()
}

// renderEndConfirm renders the end-session confirmation dialog.
func renderEndConfirm(width, height int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("End this session?"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("The clock keeps running until you decide."))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Success).
		Render("[Y] Yes, end session"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Render("[N] No, keep going"))

	return b.String()
}

// renderSummary renders the end-of-session summary.
func (t *TimerScreen) renderSummary(width, height int) string {
	var b strings.Builder
	b.WriteString("\n\n")

	if t.outcome == nil || t.outcome.Session == nil {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("Too short to count. Nothing was recorded."))
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("Press Enter to go back, N for a new session."))
		return b.String()
	}

	sess := t.outcome.Session

	headline := "Session complete!"
	if t.outcome.Reason == enginepkg.EndTerminated {
		headline = "Session ended"
	}
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Success).
		Bold(true).
		Render(headline))
	b.WriteString("\n\n")

	var card strings.Builder
	card.WriteString(summaryRow("Subject", sess.Subject))
	card.WriteString(summaryRow("Studied", fmt.Sprintf("%d min", sess.DurationMins)))
	card.WriteString(summaryRow("Breaks", fmt.Sprintf("%d", sess.Breaks)))
	card.WriteString(summaryRow("Distractions", fmt.Sprintf("%d", sess.DistractionCount)))
	card.WriteString(summaryRow("Focus score", fmt.Sprintf("%d / 100", sess.FocusScore)))

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.Card.Render(strings.TrimRight(card.String(), "\n"))))
	b.WriteString("\n\n")

	if t.outcome.WriteErr != nil {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Danger).
			Bold(true).
			Render("This session could not be saved to your history."))
		b.WriteString("\n\n")
	}

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Press Enter to go back, N for a new session."))

	return b.String()
}

func summaryRow(label, value string) string {
	return lipgloss.NewStyle().Foreground(theme.TextDim).Render(fmt.Sprintf("%-14s", label)) +
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(value) + "\n"
}

// bigClock pads the clock string so it reads as the focal point.
func bigClock(clock string) string {
	spaced := strings.Join(strings.Split(clock, ""), " ")
	return "  " + spaced + "  "
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
