package timer

import (
	"strconv"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/RandintRayquaza/FocusLab/internal/challenge"
	"github.com/RandintRayquaza/FocusLab/internal/config"
	"github.com/RandintRayquaza/FocusLab/internal/router"
	"github.com/RandintRayquaza/FocusLab/internal/screen"
	"github.com/RandintRayquaza/FocusLab/internal/store"
	"github.com/RandintRayquaza/FocusLab/internal/streak"
	enginepkg "github.com/RandintRayquaza/FocusLab/internal/timer"
	"github.com/RandintRayquaza/FocusLab/internal/ui/components"
	"github.com/RandintRayquaza/FocusLab/internal/ui/layout"
)

const wrongAnswerMsg = "Incorrect answer. The timer is still running!"

type uiMode int

const (
	modeSetup uiMode = iota
	modeActive
	modeConfirmEnd
	modeSummary
)

// TimerScreen drives one study session from setup through summary.
type TimerScreen struct {
	store  *store.Store
	engine *enginepkg.Engine

	mode uiMode

	// Setup form.
	subjects     []string
	subjectIdx   int
	minutesInput components.TextInput
	onMinutes    bool
	setupErr     string

	// Pause gate.
	gateInput components.TextInput
	gateErr   string

	// Tick stream identity; stale ticks are dropped.
	tickSeq int

	outcome *enginepkg.Outcome
}

var _ screen.Screen = (*TimerScreen)(nil)
var _ screen.KeyHintProvider = (*TimerScreen)(nil)
var _ screen.EscInterceptor = (*TimerScreen)(nil)

// New creates the timer screen with a fresh engine.
func New(st *store.Store, cfg config.Config) *TimerScreen {
	settings := st.Settings()

	restMins := settings.DefaultRestMinutes
	if restMins <= 0 {
		restMins = cfg.DefaultRestMinutes
	}
	sessionMins := settings.DefaultSessionMinutes
	if sessionMins <= 0 {
		sessionMins = cfg.DefaultSessionMinutes
	}

	eng := enginepkg.New(st, challenge.NewProvider(), restMins, st.MoodForDate)

	minutesInput := components.NewTextInput("minutes", true, 3)
	minutesInput.Model.SetValue(strconv.Itoa(sessionMins))

	return &TimerScreen{
		store:        st,
		engine:       eng,
		subjects:     st.Subjects(),
		minutesInput: minutesInput,
		gateInput:    components.NewTextInput("Your answer...", false, 40),
	}
}

func (t *TimerScreen) Init() tea.Cmd {
	return nil
}

func (t *TimerScreen) Title() string {
	return "Session"
}

// InterceptEsc keeps Esc inside the screen while a session is active so
// the stack pop cannot abandon a running timer.
func (t *TimerScreen) InterceptEsc() bool {
	return t.mode == modeActive || t.mode == modeConfirmEnd
}

func (t *TimerScreen) KeyHints() []layout.KeyHint {
	switch t.mode {
	case modeSetup:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Subject"},
			{Key: "Tab", Description: "Minutes"},
			{Key: "Enter", Description: "Start"},
			{Key: "Esc", Description: "Back"},
		}
	case modeConfirmEnd:
		return []layout.KeyHint{
			{Key: "Y", Description: "End session"},
			{Key: "N", Description: "Keep going"},
		}
	case modeSummary:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Done"},
			{Key: "N", Description: "New session"},
		}
	}

	if t.engine.GateOpen() {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Answer"},
			{Key: "Tab", Description: "Take a break"},
			{Key: "Esc", Description: "Keep studying"},
		}
	}

	switch t.engine.State() {
	case enginepkg.StatePaused:
		return []layout.KeyHint{
			{Key: "R", Description: "Resume"},
			{Key: "B", Description: "Take a break"},
			{Key: "E", Description: "+5 min"},
			{Key: "Q", Description: "End"},
		}
	case enginepkg.StateResting:
		return []layout.KeyHint{
			{Key: "S", Description: "Skip rest"},
			{Key: "Q", Description: "End"},
		}
	default:
		return []layout.KeyHint{
			{Key: "P", Description: "Pause"},
			{Key: "D", Description: "Distracted"},
			{Key: "E", Description: "+5 min"},
			{Key: "Q", Description: "End"},
		}
	}
}

func (t *TimerScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case timerTickMsg:
		return t.handleTick(msg)
	case tea.KeyMsg:
		return t.handleKey(msg)
	}

	if t.mode == modeSetup && t.onMinutes {
		var cmd tea.Cmd
		t.minutesInput, cmd = t.minutesInput.Update(msg)
		return t, cmd
	}
	if t.mode == modeActive && t.engine.GateOpen() {
		var cmd tea.Cmd
		t.gateInput, cmd = t.gateInput.Update(msg)
		return t, cmd
	}

	return t, nil
}

// startTicks begins a new tick stream, invalidating any previous one.
func (t *TimerScreen) startTicks() tea.Cmd {
	t.tickSeq++
	return t.tickCmd(t.tickSeq)
}

func (t *TimerScreen) tickCmd(seq int) tea.Cmd {
	return tea.Tick(time.Second, func(at time.Time) tea.Msg {
		return timerTickMsg{Seq: seq, At: at}
	})
}

func (t *TimerScreen) handleTick(msg timerTickMsg) (screen.Screen, tea.Cmd) {
	if msg.Seq != t.tickSeq || t.mode != modeActive && t.mode != modeConfirmEnd {
		return t, nil
	}

	// The countdown keeps running under the end-confirm dialog and the
	// pause gate; only a correct gate answer freezes it.
	state, outcome := t.engine.Tick(1)
	if outcome != nil {
		return t, t.finishSession(outcome)
	}

	switch state {
	case enginepkg.StateRunning, enginepkg.StateResting:
		return t, t.tickCmd(msg.Seq)
	default:
		return t, nil
	}
}

func (t *TimerScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch t.mode {
	case modeSetup:
		return t.handleSetupKey(msg)
	case modeConfirmEnd:
		return t.handleConfirmKey(msg)
	case modeSummary:
		return t.handleSummaryKey(msg)
	}

	if t.engine.GateOpen() {
		return t.handleGateKey(msg)
	}
	return t.handleActiveKey(msg)
}

func (t *TimerScreen) handleSetupKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if !t.onMinutes && t.subjectIdx > 0 {
			t.subjectIdx--
		}
		return t, nil
	case "down", "j":
		if !t.onMinutes && t.subjectIdx < len(t.subjects)-1 {
			t.subjectIdx++
		}
		return t, nil
	case "tab":
		t.onMinutes = !t.onMinutes
		return t, nil
	case "enter":
		return t.startSession()
	}

	if t.onMinutes {
		var cmd tea.Cmd
		t.minutesInput, cmd = t.minutesInput.Update(msg)
		return t, cmd
	}
	return t, nil
}

func (t *TimerScreen) startSession() (screen.Screen, tea.Cmd) {
	subject := ""
	if t.subjectIdx >= 0 && t.subjectIdx < len(t.subjects) {
		subject = t.subjects[t.subjectIdx]
	}

	minutes, err := t.minutesInput.NumericValue()
	if err != nil {
		t.setupErr = enginepkg.ErrDurationRange.Error()
		return t, nil
	}

	if err := t.engine.Configure(subject, minutes); err != nil {
		t.setupErr = err.Error()
		return t, nil
	}
	if _, err := t.engine.Start(); err != nil {
		t.setupErr = err.Error()
		return t, nil
	}

	t.setupErr = ""
	t.mode = modeActive
	return t, t.startTicks()
}

// handleActiveKey accepts only the keys advertised for the engine's
// current state; everything else is ignored.
func (t *TimerScreen) handleActiveKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	state := t.engine.State()

	switch msg.String() {
	case "p":
		if state != enginepkg.StateRunning {
			return t, nil
		}
		if _, err := t.engine.RequestPause(); err == nil {
			t.gateErr = ""
			t.gateInput.Reset()
		}
		return t, nil
	case "r":
		if state != enginepkg.StatePaused {
			return t, nil
		}
		// The paused state has no live tick stream; resuming starts one.
		if next, err := t.engine.Resume(); err == nil && next == enginepkg.StateRunning {
			return t, t.startTicks()
		}
		return t, nil
	case "b":
		if state != enginepkg.StatePaused {
			return t, nil
		}
		if _, err := t.engine.TakeRest(); err == nil {
			return t, t.startTicks()
		}
		return t, nil
	case "s":
		if state == enginepkg.StateResting {
			_, _ = t.engine.EndRestEarly()
		}
		return t, nil
	case "d":
		if state == enginepkg.StateRunning {
			_ = t.engine.RecordDistraction()
		}
		return t, nil
	case "e":
		if state == enginepkg.StateRunning || state == enginepkg.StatePaused {
			_, _ = t.engine.ExtendFiveMinutes()
		}
		return t, nil
	case "q", "esc":
		t.mode = modeConfirmEnd
		return t, nil
	}
	return t, nil
}

func (t *TimerScreen) handleGateKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "enter":
		correct, err := t.engine.SubmitPauseAnswer(t.gateInput.Value())
		if err != nil {
			return t, nil
		}
		if !correct {
			t.gateErr = wrongAnswerMsg
			t.gateInput.Reset()
			return t, nil
		}
		t.gateErr = ""
		t.gateInput.Reset()
		return t, nil
	case "tab":
		// The break path skips the challenge entirely.
		_, _ = t.engine.TakeRest()
		t.gateErr = ""
		t.gateInput.Reset()
		return t, nil
	case "esc":
		t.engine.CancelPauseRequest()
		t.gateErr = ""
		t.gateInput.Reset()
		return t, nil
	}

	var cmd tea.Cmd
	t.gateInput, cmd = t.gateInput.Update(msg)
	return t, cmd
}

func (t *TimerScreen) handleConfirmKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "y":
		outcome, err := t.engine.Terminate()
		if err != nil {
			t.mode = modeActive
			return t, nil
		}
		return t, t.finishSession(outcome)
	case "n", "esc":
		t.mode = modeActive
		return t, nil
	}
	return t, nil
}

func (t *TimerScreen) handleSummaryKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "n":
		t.mode = modeSetup
		t.outcome = nil
		return t, nil
	case "enter", "esc":
		return t, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return t, nil
}

// finishSession records the outcome, advances the streak for recorded
// sessions, and switches to the summary view.
func (t *TimerScreen) finishSession(outcome *enginepkg.Outcome) tea.Cmd {
	t.outcome = outcome
	t.mode = modeSummary
	t.tickSeq++ // kill the live tick stream

	// A failed write means nothing reached the history; the streak must
	// not advance on a lost record.
	if outcome.Session == nil || outcome.WriteErr != nil {
		return nil
	}

	updated := streak.Advance(t.store.Streak(), outcome.Session.Date())
	_ = t.store.SaveStreak(updated)

	return func() tea.Msg { return screen.RefreshHeaderMsg{} }
}
