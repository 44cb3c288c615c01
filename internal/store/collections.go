package store

import (
	"slices"
	"strings"
	"time"

	"github.com/RandintRayquaza/FocusLab/internal/model"
)

// DefaultSubjects seeds the subject list for fresh databases.
func DefaultSubjects() []string {
	return []string{"Math", "Physics", "Chemistry"}
}

// DefaultSettings are used when the settings document is absent or corrupt.
func DefaultSettings() model.Settings {
	return model.Settings{
		DefaultRestMinutes:    5,
		DefaultSessionMinutes: 25,
	}
}

// Sessions returns the full session history, newest first. Missing or
// corrupt data yields an empty history.
func (s *Store) Sessions() []model.Session {
	var sessions []model.Session
	if err := s.readDoc(KeySessions, &sessions); err != nil {
		return []model.Session{}
	}
	return sessions
}

// SaveSessions replaces the full session collection.
func (s *Store) SaveSessions(sessions []model.Session) error {
	return s.writeDoc(KeySessions, sessions)
}

// AppendSession prepends a finalized session, keeping newest-first order.
func (s *Store) AppendSession(sess model.Session) error {
	sessions := s.Sessions()
	sessions = append([]model.Session{sess}, sessions...)
	return s.writeDoc(KeySessions, sessions)
}

// DailyChecks returns all daily check-ins, newest first.
func (s *Store) DailyChecks() []model.DailyCheck {
	var checks []model.DailyCheck
	if err := s.readDoc(KeyDailyChecks, &checks); err != nil {
		return []model.DailyCheck{}
	}
	return checks
}

// UpsertDailyCheck records a check-in for its date, replacing any earlier
// record for the same date. The collection stays sorted date-descending.
func (s *Store) UpsertDailyCheck(check model.DailyCheck) error {
	checks := s.DailyChecks()
	filtered := checks[:0:0]
	for _, c := range checks {
		if c.Date != check.Date {
			filtered = append(filtered, c)
		}
	}
	filtered = append([]model.DailyCheck{check}, filtered...)
	slices.SortStableFunc(filtered, func(a, b model.DailyCheck) int {
		return strings.Compare(b.Date, a.Date)
	})
	return s.writeDoc(KeyDailyChecks, filtered)
}

// SaveDailyChecks replaces the full check-in collection.
func (s *Store) SaveDailyChecks(checks []model.DailyCheck) error {
	return s.writeDoc(KeyDailyChecks, checks)
}

// MoodForDate returns the mood recorded in the daily check for the given
// date, if one exists.
func (s *Store) MoodForDate(date string) (int, bool) {
	for _, c := range s.DailyChecks() {
		if c.Date == date {
			return c.Mood, true
		}
	}
	return 0, false
}

// Subjects returns the subject list, or the defaults if absent/corrupt.
func (s *Store) Subjects() []string {
	var subjects []string
	if err := s.readDoc(KeySubjects, &subjects); err != nil || len(subjects) == 0 {
		return DefaultSubjects()
	}
	return subjects
}

// SaveSubjects replaces the subject list.
func (s *Store) SaveSubjects(subjects []string) error {
	return s.writeDoc(KeySubjects, subjects)
}

// Streak returns the current streak record, zeroed if absent/corrupt.
func (s *Store) Streak() model.Streak {
	var st model.Streak
	if err := s.readDoc(KeyStreak, &st); err != nil {
		return model.Streak{}
	}
	return st
}

// SaveStreak replaces the streak record.
func (s *Store) SaveStreak(st model.Streak) error {
	return s.writeDoc(KeyStreak, st)
}

// Settings returns the stored settings, or defaults if absent/corrupt.
func (s *Store) Settings() model.Settings {
	var settings model.Settings
	if err := s.readDoc(KeySettings, &settings); err != nil {
		return DefaultSettings()
	}
	if settings.DefaultRestMinutes <= 0 {
		settings.DefaultRestMinutes = DefaultSettings().DefaultRestMinutes
	}
	if settings.DefaultSessionMinutes <= 0 {
		settings.DefaultSessionMinutes = DefaultSettings().DefaultSessionMinutes
	}
	return settings
}

// SaveSettings replaces the settings document. Unset fields are filled
// with defaults so the stored document always validates.
func (s *Store) SaveSettings(settings model.Settings) error {
	if settings.DefaultRestMinutes <= 0 {
		settings.DefaultRestMinutes = DefaultSettings().DefaultRestMinutes
	}
	if settings.DefaultSessionMinutes <= 0 {
		settings.DefaultSessionMinutes = DefaultSettings().DefaultSessionMinutes
	}
	return s.writeDoc(KeySettings, settings)
}

// Profile returns the user profile, creating a default for fresh databases.
func (s *Store) Profile() model.UserProfile {
	var profile model.UserProfile
	if err := s.readDoc(KeyUserProfile, &profile); err != nil {
		return model.UserProfile{Name: "FocusLab User", JoinedAt: time.Now()}
	}
	return profile
}

// SaveProfile replaces the user profile.
func (s *Store) SaveProfile(profile model.UserProfile) error {
	return s.writeDoc(KeyUserProfile, profile)
}
