// Package streak implements the consecutive-study-day counter. The streak is
// advisory display state; nothing in the timer or insight engine reads it.
package streak

import (
	"time"

	"github.com/RandintRayquaza/FocusLab/internal/model"
)

// Advance folds one finalized study day into the streak. Studying again on
// the same calendar day is a no-op, the next calendar day extends the
// streak, and any gap resets it to 1. Longest tracks the all-time maximum.
func Advance(s model.Streak, studyDate string) model.Streak {
	if studyDate == s.LastStudyDate {
		return s
	}

	if isNextDay(s.LastStudyDate, studyDate) {
		s.Current++
	} else {
		s.Current = 1
	}
	s.LastStudyDate = studyDate

	if s.Current > s.Longest {
		s.Longest = s.Current
	}
	return s
}

// isNextDay reports whether b is exactly one calendar day after a.
func isNextDay(a, b string) bool {
	if a == "" {
		return false
	}
	ta, errA := time.ParseInLocation(model.DateLayout, a, time.Local)
	tb, errB := time.ParseInLocation(model.DateLayout, b, time.Local)
	if errA != nil || errB != nil {
		return false
	}
	return ta.AddDate(0, 0, 1).Equal(tb)
}
