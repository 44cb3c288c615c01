package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/RandintRayquaza/FocusLab/internal/ui/theme"
)

// Slider is a discrete left/right slider for small integer scales.
type Slider struct {
	Label   string
	Min     int
	Max     int
	Value   int
	Step    int
	Focused bool

	// FormatValue overrides the "value/max" readout when set.
	FormatValue func(value int) string
}

// NewSlider creates a slider over [min, max] starting at value.
func NewSlider(label string, min, max, value int) Slider {
	if value < min {
		value = min
	}
	if value > max {
		value = max
	}
	return Slider{
		Label: label,
		Min:   min,
		Max:   max,
		Value: value,
		Step:  1,
	}
}

// Update handles left/right adjustment when focused.
func (s Slider) Update(msg tea.Msg) (Slider, tea.Cmd) {
	if !s.Focused {
		return s, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "left", "h":
		if s.Value-s.Step >= s.Min {
			s.Value -= s.Step
		}
	case "right", "l":
		if s.Value+s.Step <= s.Max {
			s.Value += s.Step
		}
	}

	return s, nil
}

// View renders the slider as a row of notches with the current value.
func (s Slider) View() string {
	labelStyle := lipgloss.NewStyle().Foreground(theme.Text)
	if s.Focused {
		labelStyle = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	}

	var track strings.Builder
	for v := s.Min; v <= s.Max; v++ {
		if v == s.Value {
			if s.Focused {
				track.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("●"))
			} else {
				track.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render("●"))
			}
		} else {
			track.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render("─"))
		}
		if v < s.Max {
			track.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render("──"))
		}
	}

	readout := fmt.Sprintf("%d/%d", s.Value, s.Max)
	if s.FormatValue != nil {
		readout = s.FormatValue(s.Value)
	}
	value := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("  " + readout)

	return labelStyle.Render(s.Label) + "\n  " + track.String() + value
}
