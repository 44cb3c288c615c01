// Package timer implements the session timer state machine. The engine is a
// plain state object advanced by Tick(deltaSeconds); scheduling belongs to
// whoever drives it (the timer screen runs a 1 Hz tea.Tick loop).
package timer

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/RandintRayquaza/FocusLab/internal/challenge"
	"github.com/RandintRayquaza/FocusLab/internal/insight"
	"github.com/RandintRayquaza/FocusLab/internal/model"
)

// State is the timer's lifecycle phase.
type State int

const (
	StateIdle State = iota
	StateRunning
	StatePaused
	StateResting
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateResting:
		return "resting"
	}
	return "unknown"
}

// EndReason distinguishes how a session left the running states.
type EndReason int

const (
	// EndTerminated means the user stopped the session manually.
	EndTerminated EndReason = iota
	// EndCompleted means the study countdown reached zero.
	EndCompleted
)

const (
	// MinSessionMinutes and MaxSessionMinutes bound the configuration form.
	MinSessionMinutes = 1
	MaxSessionMinutes = 300

	// ExtendSeconds is the fixed study-time increment.
	ExtendSeconds = 300

	// MinStudySeconds is the finalization threshold: runs accruing this
	// much elapsed study time or less are discarded without a record.
	MinStudySeconds = 5
)

// Validation and transition rejections. All are recoverable; none change
// the engine's state.
var (
	ErrSubjectRequired = errors.New("select a subject before starting")
	ErrDurationRange   = errors.New("duration must be between 1 and 300 minutes")
	ErrNotConfigured   = errors.New("configure a subject and duration first")
	ErrNotIdle         = errors.New("a session is already in progress")
	ErrNotRunning      = errors.New("timer is not running")
	ErrNotPaused       = errors.New("timer is not paused")
	ErrNotResting      = errors.New("no rest in progress")
	ErrAlreadyResting  = errors.New("already taking a rest")
	ErrNotActive       = errors.New("no session in progress")
	ErrGateClosed      = errors.New("no pause challenge is pending")
)

// SessionWriter appends a finalized session record to the store.
type SessionWriter interface {
	AppendSession(model.Session) error
}

// ChallengeProvider supplies the pause-gate question for a subject.
type ChallengeProvider interface {
	GetChallenge(subject string) challenge.Challenge
}

// Outcome describes a finalized run. Session is nil when the run was too
// short to record. WriteErr carries a store failure: the session record is
// still returned so it can be shown, but it is not in the history.
type Outcome struct {
	Reason   EndReason
	Session  *model.Session
	WriteErr error
}

// Engine owns one in-progress session's lifecycle. It is not safe for
// concurrent use; transitions are applied one event at a time.
type Engine struct {
	writer      SessionWriter
	challenges  ChallengeProvider
	moodForDate func(date string) (int, bool)
	now         func() time.Time

	state          State
	subject        string
	configuredMins int
	restSeconds    int

	countdown     int // study seconds remaining
	restCountdown int // rest seconds remaining
	elapsedStudy  int // study seconds accrued
	breaks        int
	distractions  int
	startedAt     time.Time

	gateOpen bool
	gate     challenge.Challenge
}

// New creates an idle engine. moodForDate looks up the mood recorded in the
// same-day daily check at finalization time; it may be nil.
func New(writer SessionWriter, challenges ChallengeProvider, restMinutes int, moodForDate func(string) (int, bool)) *Engine {
	if restMinutes <= 0 {
		restMinutes = 5
	}
	if moodForDate == nil {
		moodForDate = func(string) (int, bool) { return 0, false }
	}
	return &Engine{
		writer:      writer,
		challenges:  challenges,
		moodForDate: moodForDate,
		now:         time.Now,
		restSeconds: restMinutes * 60,
	}
}

// State returns the current lifecycle phase.
func (e *Engine) State() State { return e.state }

// Subject returns the configured subject.
func (e *Engine) Subject() string { return e.subject }

// ConfiguredMinutes returns the configured session length.
func (e *Engine) ConfiguredMinutes() int { return e.configuredMins }

// Countdown returns the study seconds remaining.
func (e *Engine) Countdown() int { return e.countdown }

// RestCountdown returns the rest seconds remaining.
func (e *Engine) RestCountdown() int { return e.restCountdown }

// ElapsedStudy returns the study seconds accrued so far.
func (e *Engine) ElapsedStudy() int { return e.elapsedStudy }

// Breaks returns the number of rests taken.
func (e *Engine) Breaks() int { return e.breaks }

// Distractions returns the number of distractions logged this run.
func (e *Engine) Distractions() int { return e.distractions }

// RecordDistraction logs a self-reported distraction. Legal while running;
// each one costs focus score at finalization.
func (e *Engine) RecordDistraction() error {
	if e.state != StateRunning {
		return ErrNotRunning
	}
	e.distractions++
	return nil
}

// GateOpen reports whether a pause challenge is pending.
func (e *Engine) GateOpen() bool { return e.gateOpen }

// GateChallenge returns the pending pause challenge.
func (e *Engine) GateChallenge() challenge.Challenge { return e.gate }

// Configure validates and stores the session parameters. Legal only while
// idle; rejections leave the engine unchanged.
func (e *Engine) Configure(subject string, minutes int) error {
	if e.state != StateIdle {
		return ErrNotIdle
	}
	if subject == "" {
		return ErrSubjectRequired
	}
	if minutes < MinSessionMinutes || minutes > MaxSessionMinutes {
		return ErrDurationRange
	}
	e.subject = subject
	e.configuredMins = minutes
	return nil
}

// Start transitions idle → running with a fresh countdown.
func (e *Engine) Start() (State, error) {
	if e.state != StateIdle {
		return e.state, ErrNotIdle
	}
	if e.subject == "" || e.configuredMins <= 0 {
		return e.state, ErrNotConfigured
	}

	e.countdown = e.configuredMins * 60
	e.elapsedStudy = 0
	e.breaks = 0
	e.distractions = 0
	e.restCountdown = 0
	e.gateOpen = false
	e.startedAt = e.now()
	e.state = StateRunning
	return e.state, nil
}

// Tick advances the active countdown by delta seconds. While running, study
// time accrues even if the pause gate is open — requesting a pause does not
// stop time. A study countdown reaching zero finalizes the session as a
// natural completion; a rest countdown reaching zero resumes running.
func (e *Engine) Tick(delta int) (State, *Outcome) {
	if delta <= 0 {
		return e.state, nil
	}

	switch e.state {
	case StateRunning:
		e.countdown -= delta
		e.elapsedStudy += delta
		if e.countdown <= 0 {
			e.countdown = 0
			return StateIdle, e.finalize(EndCompleted)
		}
	case StateResting:
		e.restCountdown -= delta
		if e.restCountdown <= 0 {
			e.restCountdown = 0
			e.state = StateRunning
		}
	}
	return e.state, nil
}

// RequestPause opens the pause gate and returns the challenge to answer.
// The study countdown keeps ticking while the gate is open.
func (e *Engine) RequestPause() (challenge.Challenge, error) {
	if e.state != StateRunning {
		return challenge.Challenge{}, ErrNotRunning
	}
	if !e.gateOpen {
		e.gate = e.challenges.GetChallenge(e.subject)
		e.gateOpen = true
	}
	return e.gate, nil
}

// SubmitPauseAnswer checks a free-text answer against the pending
// challenge. A correct answer transitions to paused and freezes the
// countdown; an incorrect one leaves the gate open and the timer running —
// lost seconds are never refunded.
func (e *Engine) SubmitPauseAnswer(text string) (bool, error) {
	if e.state != StateRunning || !e.gateOpen {
		return false, ErrGateClosed
	}
	if !challenge.CheckAnswer(text, e.gate) {
		return false, nil
	}
	e.gateOpen = false
	e.state = StatePaused
	return true, nil
}

// CancelPauseRequest closes the gate without pausing.
func (e *Engine) CancelPauseRequest() {
	e.gateOpen = false
}

// Resume transitions paused → running. No gate is required to resume.
func (e *Engine) Resume() (State, error) {
	if e.state != StatePaused {
		return e.state, ErrNotPaused
	}
	e.state = StateRunning
	return e.state, nil
}

// TakeRest starts the rest countdown and counts a break. Legal from running
// or paused; rest time never consumes study time.
func (e *Engine) TakeRest() (State, error) {
	switch e.state {
	case StateResting:
		return e.state, ErrAlreadyResting
	case StateRunning, StatePaused:
	default:
		return e.state, ErrNotActive
	}
	e.gateOpen = false
	e.breaks++
	e.restCountdown = e.restSeconds
	e.state = StateResting
	return e.state, nil
}

// EndRestEarly cuts the rest short and resumes the study countdown.
func (e *Engine) EndRestEarly() (State, error) {
	if e.state != StateResting {
		return e.state, ErrNotResting
	}
	e.restCountdown = 0
	e.state = StateRunning
	return e.state, nil
}

// ExtendFiveMinutes adds a fixed increment to the study countdown without
// changing state. Legal while running or paused.
func (e *Engine) ExtendFiveMinutes() (State, error) {
	switch e.state {
	case StateRunning, StatePaused:
		e.countdown += ExtendSeconds
		return e.state, nil
	default:
		return e.state, ErrNotActive
	}
}

// Terminate ends the session from any active state and finalizes it.
func (e *Engine) Terminate() (*Outcome, error) {
	switch e.state {
	case StateRunning, StatePaused, StateResting:
		return e.finalize(EndTerminated), nil
	default:
		return nil, ErrNotActive
	}
}

// finalize builds and persists the session record when enough study time
// accrued, then returns the engine to idle. The store append happens
// synchronously within the terminating transition.
func (e *Engine) finalize(reason EndReason) *Outcome {
	out := &Outcome{Reason: reason}

	if e.elapsedStudy > MinStudySeconds {
		now := e.now()
		sess := model.Session{
			ID:               uuid.New().String(),
			Subject:          e.subject,
			StartTime:        e.startedAt,
			EndTime:          now,
			DurationMins:     e.elapsedStudy / 60,
			Breaks:           e.breaks,
			DistractionCount: e.distractions,
			PomodoroUsed:     e.configuredMins == insight.DefaultPomodoroMinutes,
			CreatedAt:        now,
		}
		if mood, ok := e.moodForDate(sess.Date()); ok {
			sess.Mood = mood
		}
		// Score once at creation; never recomputed afterward.
		sess.FocusScore = insight.CalculateFocusScore(sess.DurationMins, sess.Breaks, sess.DistractionCount, sess.Mood)
		if e.writer != nil {
			out.WriteErr = e.writer.AppendSession(sess)
		}
		out.Session = &sess
	}

	e.reset()
	return out
}

// reset returns the engine to idle, keeping the configured subject and
// duration for the next run.
func (e *Engine) reset() {
	e.state = StateIdle
	e.countdown = 0
	e.restCountdown = 0
	e.elapsedStudy = 0
	e.breaks = 0
	e.distractions = 0
	e.gateOpen = false
	e.gate = challenge.Challenge{}
}
