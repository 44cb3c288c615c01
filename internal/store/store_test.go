package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RandintRayquaza/FocusLab/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// injectRaw writes an arbitrary value under key, bypassing the codec.
func injectRaw(t *testing.T, s *Store, key Key, raw string) {
	t.Helper()
	_, err := s.db.Exec(
		`INSERT INTO documents (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		string(key), raw,
	)
	require.NoError(t, err)
}

func testSession(id, subject string, day int) model.Session {
	start := time.Date(2026, time.August, day, 10, 0, 0, 0, time.Local)
	return model.Session{
		ID:           id,
		Subject:      subject,
		StartTime:    start,
		EndTime:      start.Add(30 * time.Minute),
		DurationMins: 30,
		FocusScore:   75,
		CreatedAt:    start.Add(30 * time.Minute),
	}
}

func TestSessionsEmptyByDefault(t *testing.T) {
	s := openTestStore(t)
	assert.Empty(t, s.Sessions())
}

func TestAppendSessionPrepends(t *testing.T) {
	s := openTestStore(t)

	require.NoError(t, s.AppendSession(testSession("a", "Math", 1)))
	require.NoError(t, s.AppendSession(testSession("b", "Physics", 2)))

	sessions := s.Sessions()
	require.Len(t, sessions, 2)
	assert.Equal(t, "b", sessions[0].ID)
	assert.Equal(t, "a", sessions[1].ID)
}

func TestSessionRoundTrip(t *testing.T) {
	s := openTestStore(t)

	want := testSession("rt", "Chemistry", 5)
	want.Breaks = 2
	want.DistractionCount = 1
	want.Mood = 4
	want.PomodoroUsed = true
	require.NoError(t, s.AppendSession(want))

	sessions := s.Sessions()
	require.Len(t, sessions, 1)
	got := sessions[0]
	assert.Equal(t, want.ID, got.ID)
	assert.Equal(t, want.Subject, got.Subject)
	assert.Equal(t, want.DurationMins, got.DurationMins)
	assert.Equal(t, want.Breaks, got.Breaks)
	assert.Equal(t, want.DistractionCount, got.DistractionCount)
	assert.Equal(t, want.Mood, got.Mood)
	assert.Equal(t, want.FocusScore, got.FocusScore)
	assert.True(t, got.PomodoroUsed)
	assert.True(t, want.StartTime.Equal(got.StartTime))
}

func TestCorruptSessionsFallBackToEmpty(t *testing.T) {
	s := openTestStore(t)

	injectRaw(t, s, KeySessions, `{"not":"an array"}`)
	assert.Empty(t, s.Sessions())

	injectRaw(t, s, KeySessions, `not json at all`)
	assert.Empty(t, s.Sessions())
}

func TestUpsertDailyCheckReplacesSameDate(t *testing.T) {
	s := openTestStore(t)

	require.NoError(t, s.UpsertDailyCheck(model.DailyCheck{Date: "2026-08-29", Mood: 2, Sleep: 6, Stress: 4}))
	require.NoError(t, s.UpsertDailyCheck(model.DailyCheck{Date: "2026-08-30", Mood: 4, Sleep: 8, Stress: 1}))
	require.NoError(t, s.UpsertDailyCheck(model.DailyCheck{Date: "2026-08-29", Mood: 5, Sleep: 7.5, Stress: 2}))

	checks := s.DailyChecks()
	require.Len(t, checks, 2)

	// Newest first, and the re-submitted day holds the new values.
	assert.Equal(t, "2026-08-30", checks[0].Date)
	assert.Equal(t, "2026-08-29", checks[1].Date)
	assert.Equal(t, 5, checks[1].Mood)
	assert.Equal(t, 7.5, checks[1].Sleep)
	assert.Equal(t, 2, checks[1].Stress)
}

func TestMoodForDate(t *testing.T) {
	s := openTestStore(t)
	require.NoError(t, s.UpsertDailyCheck(model.DailyCheck{Date: "2026-08-30", Mood: 3, Sleep: 7, Stress: 2}))

	mood, ok := s.MoodForDate("2026-08-30")
	assert.True(t, ok)
	assert.Equal(t, 3, mood)

	_, ok = s.MoodForDate("2026-08-01")
	assert.False(t, ok)
}

func TestSubjectsDefaults(t *testing.T) {
	s := openTestStore(t)
	assert.Equal(t, DefaultSubjects(), s.Subjects())

	require.NoError(t, s.SaveSubjects([]string{"Biology"}))
	assert.Equal(t, []string{"Biology"}, s.Subjects())

	// An empty saved list also falls back to defaults.
	require.NoError(t, s.SaveSubjects([]string{}))
	assert.Equal(t, DefaultSubjects(), s.Subjects())
}

func TestStreakRoundTrip(t *testing.T) {
	s := openTestStore(t)
	assert.Equal(t, model.Streak{}, s.Streak())

	want := model.Streak{Current: 3, Longest: 9, LastStudyDate: "2026-08-30"}
	require.NoError(t, s.SaveStreak(want))
	assert.Equal(t, want, s.Streak())
}

func TestSettingsZeroFilled(t *testing.T) {
	s := openTestStore(t)
	assert.Equal(t, DefaultSettings(), s.Settings())

	require.NoError(t, s.SaveSettings(model.Settings{DefaultSessionMinutes: 50}))
	got := s.Settings()
	assert.Equal(t, 50, got.DefaultSessionMinutes)
	assert.Equal(t, DefaultSettings().DefaultRestMinutes, got.DefaultRestMinutes)
}

func TestProfileDefault(t *testing.T) {
	s := openTestStore(t)
	assert.Equal(t, "FocusLab User", s.Profile().Name)

	require.NoError(t, s.SaveProfile(model.UserProfile{Name: "Ada", JoinedAt: time.Now()}))
	assert.Equal(t, "Ada", s.Profile().Name)
}

func TestReset(t *testing.T) {
	s := openTestStore(t)

	require.NoError(t, s.AppendSession(testSession("x", "Math", 1)))
	require.NoError(t, s.SaveStreak(model.Streak{Current: 5, Longest: 5}))

	require.NoError(t, s.Reset())
	assert.Empty(t, s.Sessions())
	assert.Equal(t, model.Streak{}, s.Streak())
}
