package model

import "time"

// DateLayout is the calendar-date key format used by daily checks and
// streak tracking.
const DateLayout = "2006-01-02"

// Session is one completed or terminated timed study interval. Sessions are
// immutable once written to the store.
type Session struct {
	ID               string    `json:"id"`
	Subject          string    `json:"subject"`
	StartTime        time.Time `json:"startTime"`
	EndTime          time.Time `json:"endTime"`
	DurationMins     int       `json:"duration"`
	Breaks           int       `json:"breaks"`
	DistractionCount int       `json:"distractionCount"`
	Mood             int       `json:"mood,omitempty"`
	FocusScore       int       `json:"focusScore"`
	PomodoroUsed     bool      `json:"pomodoroUsed"`
	CreatedAt        time.Time `json:"createdAt"`
}

// Date returns the local calendar date the session started on.
func (s Session) Date() string {
	return s.StartTime.Local().Format(DateLayout)
}

// DailyCheck is one self-reported wellbeing record. At most one exists per
// calendar date; a later write for the same date replaces the earlier one.
type DailyCheck struct {
	Date   string  `json:"date"`
	Mood   int     `json:"mood"`
	Sleep  float64 `json:"sleep"`
	Stress int     `json:"stress"`
}

// Streak tracks consecutive study days. Display-only; the update rule lives
// in the streak package.
type Streak struct {
	Current       int    `json:"current"`
	Longest       int    `json:"longest"`
	LastStudyDate string `json:"lastStudyDate"`
}

// Settings holds user-tunable defaults consumed by the timer's
// configuration phase.
type Settings struct {
	DefaultRestMinutes    int `json:"defaultRestMinutes"`
	DefaultSessionMinutes int `json:"defaultSessionMinutes"`
}

// UserProfile identifies the local user. Informational only.
type UserProfile struct {
	Name     string    `json:"name"`
	JoinedAt time.Time `json:"joinedAt"`
}
