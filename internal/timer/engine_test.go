package timer

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RandintRayquaza/FocusLab/internal/challenge"
	"github.com/RandintRayquaza/FocusLab/internal/model"
)

type captureWriter struct {
	sessions []model.Session
	err      error
}

func (w *captureWriter) AppendSession(s model.Session) error {
	if w.err != nil {
		return w.err
	}
	w.sessions = append(w.sessions, s)
	return nil
}

type stubChallenges struct {
	ch challenge.Challenge
}

func (s stubChallenges) GetChallenge(string) challenge.Challenge { return s.ch }

func newTestEngine(w *captureWriter) *Engine {
	e := New(w, stubChallenges{ch: challenge.Challenge{Question: "2+2?", Answer: "4"}}, 5, nil)
	e.now = func() time.Time {
		return time.Date(2026, time.August, 30, 14, 0, 0, 0, time.Local)
	}
	return e
}

func startedEngine(t *testing.T, w *captureWriter, subject string, minutes int) *Engine {
	t.Helper()
	e := newTestEngine(w)
	require.NoError(t, e.Configure(subject, minutes))
	state, err := e.Start()
	require.NoError(t, err)
	require.Equal(t, StateRunning, state)
	return e
}

func TestConfigureValidation(t *testing.T) {
	tests := []struct {
		name    string
		subject string
		minutes int
		wantErr error
	}{
		{"valid", "Math", 25, nil},
		{"empty subject", "", 25, ErrSubjectRequired},
		{"zero minutes", "Math", 0, ErrDurationRange},
		{"too long", "Math", 301, ErrDurationRange},
		{"lower bound", "Math", 1, nil},
		{"upper bound", "Math", 300, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEngine(&captureWriter{})
			err := e.Configure(tt.subject, tt.minutes)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestConfigureRejectedWhileRunning(t *testing.T) {
	e := startedEngine(t, &captureWriter{}, "Math", 25)
	assert.ErrorIs(t, e.Configure("Physics", 30), ErrNotIdle)
}

func TestStartRequiresConfiguration(t *testing.T) {
	e := newTestEngine(&captureWriter{})
	_, err := e.Start()
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestTickAdvancesCountdown(t *testing.T) {
	e := startedEngine(t, &captureWriter{}, "Math", 25)

	state, outcome := e.Tick(1)
	assert.Equal(t, StateRunning, state)
	assert.Nil(t, outcome)
	assert.Equal(t, 25*60-1, e.Countdown())
	assert.Equal(t, 1, e.ElapsedStudy())
}

func TestCountdownCompletionRecordsSession(t *testing.T) {
	w := &captureWriter{}
	e := startedEngine(t, w, "Math", 1)

	var outcome *Outcome
	for i := 0; i < 60; i++ {
		_, outcome = e.Tick(1)
	}

	require.NotNil(t, outcome)
	assert.Equal(t, EndCompleted, outcome.Reason)
	require.NotNil(t, outcome.Session)
	assert.Equal(t, 1, outcome.Session.DurationMins)
	assert.Equal(t, "Math", outcome.Session.Subject)
	assert.Equal(t, StateIdle, e.State())

	require.Len(t, w.sessions, 1)
	assert.Equal(t, outcome.Session.ID, w.sessions[0].ID)
}

func TestPauseGateKeepsClockRunning(t *testing.T) {
	e := startedEngine(t, &captureWriter{}, "Math", 25)

	ch, err := e.RequestPause()
	require.NoError(t, err)
	assert.Equal(t, "2+2?", ch.Question)
	assert.True(t, e.GateOpen())

	// Time keeps draining while the gate is open.
	before := e.Countdown()
	e.Tick(1)
	assert.Equal(t, before-1, e.Countdown())
	assert.Equal(t, StateRunning, e.State())

	// Wrong answer: still running, gate still open, seconds lost.
	correct, err := e.SubmitPauseAnswer("5")
	require.NoError(t, err)
	assert.False(t, correct)
	assert.True(t, e.GateOpen())
	assert.Equal(t, StateRunning, e.State())

	e.Tick(3)
	assert.Equal(t, before-4, e.Countdown())

	// Correct answer pauses and freezes the countdown.
	correct, err = e.SubmitPauseAnswer(" 4 ")
	require.NoError(t, err)
	assert.True(t, correct)
	assert.False(t, e.GateOpen())
	assert.Equal(t, StatePaused, e.State())

	frozen := e.Countdown()
	e.Tick(10)
	assert.Equal(t, frozen, e.Countdown())
}

func TestCancelPauseRequest(t *testing.T) {
	e := startedEngine(t, &captureWriter{}, "Math", 25)

	_, err := e.RequestPause()
	require.NoError(t, err)

	e.CancelPauseRequest()
	assert.False(t, e.GateOpen())
	assert.Equal(t, StateRunning, e.State())

	_, err = e.SubmitPauseAnswer("4")
	assert.ErrorIs(t, err, ErrGateClosed)
}

func TestResume(t *testing.T) {
	e := startedEngine(t, &captureWriter{}, "Math", 25)

	_, err := e.Resume()
	assert.ErrorIs(t, err, ErrNotPaused)

	_, _ = e.RequestPause()
	_, _ = e.SubmitPauseAnswer("4")
	require.Equal(t, StatePaused, e.State())

	state, err := e.Resume()
	require.NoError(t, err)
	assert.Equal(t, StateRunning, state)
}

func TestRestCycle(t *testing.T) {
	e := startedEngine(t, &captureWriter{}, "Math", 25)
	e.Tick(30)
	studyLeft := e.Countdown()

	state, err := e.TakeRest()
	require.NoError(t, err)
	assert.Equal(t, StateResting, state)
	assert.Equal(t, 1, e.Breaks())
	assert.Equal(t, 5*60, e.RestCountdown())

	_, err = e.TakeRest()
	assert.ErrorIs(t, err, ErrAlreadyResting)

	// Rest ticks drain the rest clock, not the study clock.
	e.Tick(10)
	assert.Equal(t, 5*60-10, e.RestCountdown())
	assert.Equal(t, studyLeft, e.Countdown())
	assert.Equal(t, 30, e.ElapsedStudy())

	// Rest running out resumes the study countdown.
	e.Tick(5*60 - 10)
	assert.Equal(t, StateRunning, e.State())
	assert.Equal(t, studyLeft, e.Countdown())
}

func TestEndRestEarly(t *testing.T) {
	e := startedEngine(t, &captureWriter{}, "Math", 25)

	_, err := e.EndRestEarly()
	assert.ErrorIs(t, err, ErrNotResting)

	_, _ = e.TakeRest()
	state, err := e.EndRestEarly()
	require.NoError(t, err)
	assert.Equal(t, StateRunning, state)
	assert.Equal(t, 0, e.RestCountdown())
}

func TestExtendFiveMinutes(t *testing.T) {
	e := newTestEngine(&captureWriter{})
	_, err := e.ExtendFiveMinutes()
	assert.ErrorIs(t, err, ErrNotActive)

	e = startedEngine(t, &captureWriter{}, "Math", 25)
	before := e.Countdown()
	_, err = e.ExtendFiveMinutes()
	require.NoError(t, err)
	assert.Equal(t, before+ExtendSeconds, e.Countdown())
}

func TestTerminateShortRunDiscarded(t *testing.T) {
	w := &captureWriter{}
	e := startedEngine(t, w, "Math", 25)
	e.Tick(5) // exactly the threshold, still too short

	outcome, err := e.Terminate()
	require.NoError(t, err)
	assert.Equal(t, EndTerminated, outcome.Reason)
	assert.Nil(t, outcome.Session)
	assert.Empty(t, w.sessions)
	assert.Equal(t, StateIdle, e.State())
}

func TestTerminateRecordsSession(t *testing.T) {
	w := &captureWriter{}
	e := New(w, stubChallenges{ch: challenge.Challenge{Question: "q", Answer: "a"}}, 5,
		func(string) (int, bool) { return 4, true })
	e.now = func() time.Time {
		return time.Date(2026, time.August, 30, 14, 0, 0, 0, time.Local)
	}
	require.NoError(t, e.Configure("Physics", 25))
	_, err := e.Start()
	require.NoError(t, err)

	e.Tick(95) // 1 minute 35 seconds

	_ = e.RecordDistraction()
	_ = e.RecordDistraction()

	outcome, err := e.Terminate()
	require.NoError(t, err)
	require.NotNil(t, outcome.Session)

	sess := outcome.Session
	assert.Equal(t, 1, sess.DurationMins) // floor of 95s
	assert.Equal(t, "Physics", sess.Subject)
	assert.Equal(t, 2, sess.DistractionCount)
	assert.Equal(t, 4, sess.Mood)
	assert.True(t, sess.PomodoroUsed)
	assert.NotEmpty(t, sess.ID)
	require.Len(t, w.sessions, 1)
}

func TestTerminateWithNoSession(t *testing.T) {
	e := newTestEngine(&captureWriter{})
	_, err := e.Terminate()
	assert.ErrorIs(t, err, ErrNotActive)
}

func TestWriteFailureSurfacedInOutcome(t *testing.T) {
	writeErr := errors.New("disk full")
	w := &captureWriter{err: writeErr}
	e := startedEngine(t, w, "Math", 25)
	e.Tick(120)

	outcome, err := e.Terminate()
	require.NoError(t, err)

	// The record is still returned for display, with the failure attached.
	require.NotNil(t, outcome.Session)
	assert.Equal(t, 2, outcome.Session.DurationMins)
	assert.ErrorIs(t, outcome.WriteErr, writeErr)
	assert.Empty(t, w.sessions)
	assert.Equal(t, StateIdle, e.State())
}

func TestRecordDistractionOnlyWhileRunning(t *testing.T) {
	e := newTestEngine(&captureWriter{})
	assert.ErrorIs(t, e.RecordDistraction(), ErrNotRunning)

	e = startedEngine(t, &captureWriter{}, "Math", 25)
	require.NoError(t, e.RecordDistraction())
	assert.Equal(t, 1, e.Distractions())

	_, _ = e.TakeRest()
	assert.ErrorIs(t, e.RecordDistraction(), ErrNotRunning)
}

func TestReconfigureAfterCompletion(t *testing.T) {
	w := &captureWriter{}
	e := startedEngine(t, w, "Math", 1)
	for i := 0; i < 60; i++ {
		e.Tick(1)
	}
	require.Equal(t, StateIdle, e.State())

	// Subject and duration survive the reset for a quick restart.
	assert.Equal(t, "Math", e.Subject())
	assert.Equal(t, 1, e.ConfiguredMinutes())

	state, err := e.Start()
	require.NoError(t, err)
	assert.Equal(t, StateRunning, state)
	assert.Equal(t, 60, e.Countdown())
}
