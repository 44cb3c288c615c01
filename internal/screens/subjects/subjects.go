// Package subjects manages the study subject list. Names are deduplicated
// case-insensitively and the last subject cannot be deleted.
package subjects

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/RandintRayquaza/FocusLab/internal/screen"
	"github.com/RandintRayquaza/FocusLab/internal/store"
	"github.com/RandintRayquaza/FocusLab/internal/ui/components"
	"github.com/RandintRayquaza/FocusLab/internal/ui/layout"
	"github.com/RandintRayquaza/FocusLab/internal/ui/theme"
)

// SubjectsScreen lets the user add and remove subjects.
type SubjectsScreen struct {
	store    *store.Store
	subjects []string
	selected int

	adding bool
	input  components.TextInput
	errMsg string
}

var _ screen.Screen = (*SubjectsScreen)(nil)
var _ screen.KeyHintProvider = (*SubjectsScreen)(nil)

// New loads the subject list from the store.
func New(st *store.Store) *SubjectsScreen {
	return &SubjectsScreen{
		store:    st,
		subjects: st.Subjects(),
		input:    components.NewTextInput("New subject name...", false, 30),
	}
}

func (s *SubjectsScreen) Init() tea.Cmd {
	return nil
}

func (s *SubjectsScreen) Title() string {
	return "Subjects"
}

func (s *SubjectsScreen) KeyHints() []layout.KeyHint {
	if s.adding {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Add"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Select"},
		{Key: "A", Description: "Add"},
		{Key: "X", Description: "Delete"},
		{Key: "Esc", Description: "Back"},
	}
}

// InterceptEsc keeps Esc local while the add form is open.
func (s *SubjectsScreen) InterceptEsc() bool {
	return s.adding
}

var _ screen.EscInterceptor = (*SubjectsScreen)(nil)

func (s *SubjectsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if s.adding {
			var cmd tea.Cmd
			s.input, cmd = s.input.Update(msg)
			return s, cmd
		}
		return s, nil
	}

	if s.adding {
		switch kmsg.String() {
		case "enter":
			return s.addSubject()
		case "esc":
			s.adding = false
			s.errMsg = ""
			s.input.Reset()
			return s, nil
		}
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}

	switch kmsg.String() {
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.selected < len(s.subjects)-1 {
			s.selected++
		}
	case "a":
		s.adding = true
		s.errMsg = ""
		return s, s.input.Init()
	case "x", "d":
		return s.deleteSelected()
	}
	return s, nil
}

func (s *SubjectsScreen) addSubject() (screen.Screen, tea.Cmd) {
	name := strings.TrimSpace(s.input.Value())
	if name == "" {
		s.errMsg = "Subject name cannot be empty."
		return s, nil
	}

	for _, existing := range s.subjects {
		if strings.EqualFold(existing, name) {
			s.errMsg = "That subject already exists."
			return s, nil
		}
	}

	updated := append(append([]string{}, s.subjects...), name)
	if err := s.store.SaveSubjects(updated); err != nil {
		s.errMsg = err.Error()
		return s, nil
	}

	s.subjects = updated
	s.selected = len(updated) - 1
	s.adding = false
	s.errMsg = ""
	s.input.Reset()
	return s, nil
}

func (s *SubjectsScreen) deleteSelected() (screen.Screen, tea.Cmd) {
	if len(s.subjects) <= 1 {
		s.errMsg = "Keep at least one subject."
		return s, nil
	}
	if s.selected < 0 || s.selected >= len(s.subjects) {
		return s, nil
	}

	updated := append([]string{}, s.subjects[:s.selected]...)
	updated = append(updated, s.subjects[s.selected+1:]...)
	if err := s.store.SaveSubjects(updated); err != nil {
		s.errMsg = err.Error()
		return s, nil
	}

	s.subjects = updated
	if s.selected >= len(updated) {
		s.selected = len(updated) - 1
	}
	s.errMsg = ""
	return s, nil
}

func (s *SubjectsScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Your Subjects"))
	b.WriteString("\n\n")

	var list strings.Builder
	for i, subject := range s.subjects {
		if i == s.selected && !s.adding {
			list.WriteString(theme.Selected.Render("  ▸ " + subject))
		} else {
			list.WriteString(theme.Unselected.Render("    " + subject))
		}
		list.WriteString("\n")
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, list.String()))

	if s.adding {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Card.Render("Add subject\n\n"+s.input.View())))
	}

	if s.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Danger).
			Render(s.errMsg))
	}

	return b.String()
}
