package insight

import (
	"fmt"
	"testing"
	"time"

	"github.com/RandintRayquaza/FocusLab/internal/model"
)

// sessionAt builds a session starting at the given local day/hour.
func sessionAt(day, hour, score, mins int) model.Session {
	start := time.Date(2026, time.August, day, hour, 0, 0, 0, time.Local)
	return model.Session{
		ID:           fmt.Sprintf("s-%d-%d-%d", day, hour, score),
		Subject:      "Math",
		StartTime:    start,
		EndTime:      start.Add(time.Duration(mins) * time.Minute),
		DurationMins: mins,
		FocusScore:   score,
	}
}

func dateOf(day int) string {
	return time.Date(2026, time.August, day, 12, 0, 0, 0, time.Local).Format(model.DateLayout)
}

func TestDetectPeakFocusTime(t *testing.T) {
	t.Run("too few sessions", func(t *testing.T) {
		sessions := []model.Session{
			sessionAt(1, 9, 80, 30),
			sessionAt(2, 9, 80, 30),
		}
		if got := DetectPeakFocusTime(sessions); got != MsgNeedMoreSessions {
			t.Errorf("got %q, want fallback", got)
		}
	})

	t.Run("no hour with two sessions", func(t *testing.T) {
		sessions := []model.Session{
			sessionAt(1, 8, 90, 30),
			sessionAt(1, 10, 90, 30),
			sessionAt(1, 12, 90, 30),
			sessionAt(1, 14, 90, 30),
			sessionAt(1, 16, 90, 30),
		}
		if got := DetectPeakFocusTime(sessions); got != MsgStillAnalyzing {
			t.Errorf("got %q, want analyzing fallback", got)
		}
	})

	t.Run("afternoon peak", func(t *testing.T) {
		sessions := []model.Session{
			sessionAt(1, 15, 90, 45),
			sessionAt(2, 15, 92, 45),
			sessionAt(3, 15, 88, 45),
			sessionAt(1, 9, 70, 30),
			sessionAt(2, 9, 72, 30),
			sessionAt(3, 11, 95, 30), // single session, never qualifies
		}
		want := "Your peak cognitive performance occurs between 3 PM and 5 PM."
		if got := DetectPeakFocusTime(sessions); got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("tie goes to earliest hour", func(t *testing.T) {
		sessions := []model.Session{
			sessionAt(1, 9, 80, 30),
			sessionAt(2, 9, 80, 30),
			sessionAt(1, 14, 80, 30),
			sessionAt(2, 14, 80, 30),
			sessionAt(3, 20, 10, 30),
			sessionAt(4, 20, 10, 30),
		}
		want := "Your peak cognitive performance occurs between 9 AM and 11 AM."
		if got := DetectPeakFocusTime(sessions); got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})
}

func TestAnalyzeSleepCorrelation(t *testing.T) {
	sessions := []model.Session{
		sessionAt(1, 10, 90, 45),
		sessionAt(2, 10, 90, 45),
		sessionAt(3, 10, 45, 45),
	}

	t.Run("too little data", func(t *testing.T) {
		checks := []model.DailyCheck{{Date: dateOf(1), Sleep: 8}}
		if got := AnalyzeSleepCorrelation(sessions, checks); got != MsgLogMoreSleep {
			t.Errorf("got %q, want log-more fallback", got)
		}
	})

	t.Run("no check matches a study day", func(t *testing.T) {
		checks := []model.DailyCheck{
			{Date: dateOf(20), Sleep: 8},
			{Date: dateOf(21), Sleep: 5},
			{Date: dateOf(22), Sleep: 8},
		}
		if got := AnalyzeSleepCorrelation(sessions, checks); got != MsgLogMoreSleep {
			t.Errorf("got %q, want log-more fallback", got)
		}
	})

	t.Run("all healthy sleep", func(t *testing.T) {
		checks := []model.DailyCheck{
			{Date: dateOf(1), Sleep: 8},
			{Date: dateOf(2), Sleep: 7.5},
			{Date: dateOf(3), Sleep: 7},
		}
		if got := AnalyzeSleepCorrelation(sessions, checks); got != MsgHealthySleep {
			t.Errorf("got %q, want healthy-sleep message", got)
		}
	})

	t.Run("chronic deficit", func(t *testing.T) {
		checks := []model.DailyCheck{
			{Date: dateOf(1), Sleep: 5},
			{Date: dateOf(2), Sleep: 6},
			{Date: dateOf(3), Sleep: 4.5},
		}
		if got := AnalyzeSleepCorrelation(sessions, checks); got != MsgSleepDeficit {
			t.Errorf("got %q, want deficit warning", got)
		}
	})

	t.Run("measurable drop", func(t *testing.T) {
		// Normal days average 90, the low-sleep day averages 45.
		checks := []model.DailyCheck{
			{Date: dateOf(1), Sleep: 8},
			{Date: dateOf(2), Sleep: 7.5},
			{Date: dateOf(3), Sleep: 5},
		}
		want := "Low sleep (<6.5h) reduces your focus capacity by approximately 50%."
		if got := AnalyzeSleepCorrelation(sessions, checks); got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("resilient to low sleep", func(t *testing.T) {
		resilient := []model.Session{
			sessionAt(1, 10, 85, 45),
			sessionAt(2, 10, 84, 45),
			sessionAt(3, 10, 86, 45),
		}
		checks := []model.DailyCheck{
			{Date: dateOf(1), Sleep: 8},
			{Date: dateOf(2), Sleep: 5},
			{Date: dateOf(3), Sleep: 8},
		}
		if got := AnalyzeSleepCorrelation(resilient, checks); got != MsgSleepResilient {
			t.Errorf("got %q, want resilient message", got)
		}
	})
}

func TestPredictSmartPomodoro(t *testing.T) {
	t.Run("too few sessions", func(t *testing.T) {
		sessions := []model.Session{
			sessionAt(1, 10, 90, 60),
			sessionAt(2, 10, 90, 60),
		}
		if got := PredictSmartPomodoro(sessions); got != DefaultPomodoroMinutes {
			t.Errorf("got %d, want default %d", got, DefaultPomodoroMinutes)
		}
	})

	t.Run("high scores extend", func(t *testing.T) {
		var sessions []model.Session
		for i := 1; i <= 6; i++ {
			sessions = append(sessions, sessionAt(i, 10, 90, 40))
		}
		if got := PredictSmartPomodoro(sessions); got != 45 {
			t.Errorf("got %d, want 45", got)
		}
	})

	t.Run("low scores shorten", func(t *testing.T) {
		var sessions []model.Session
		for i := 1; i <= 6; i++ {
			sessions = append(sessions, sessionAt(i, 10, 40, 30))
		}
		if got := PredictSmartPomodoro(sessions); got != 25 {
			t.Errorf("got %d, want 25", got)
		}
	})

	t.Run("clamped to the ceiling", func(t *testing.T) {
		var sessions []model.Session
		for i := 1; i <= 6; i++ {
			sessions = append(sessions, sessionAt(i, 10, 95, 90))
		}
		if got := PredictSmartPomodoro(sessions); got != 60 {
			t.Errorf("got %d, want 60", got)
		}
	})

	t.Run("clamped to the floor", func(t *testing.T) {
		var sessions []model.Session
		for i := 1; i <= 6; i++ {
			sessions = append(sessions, sessionAt(i, 10, 30, 12))
		}
		if got := PredictSmartPomodoro(sessions); got != 15 {
			t.Errorf("got %d, want 15", got)
		}
	})

	t.Run("only ten most recent count", func(t *testing.T) {
		var sessions []model.Session
		for i := 1; i <= 10; i++ {
			sessions = append(sessions, sessionAt(i, 10, 60, 30))
		}
		// Older padding that would pull the average way up if counted.
		for i := 11; i <= 20; i++ {
			sessions = append(sessions, sessionAt(i, 10, 60, 300))
		}
		if got := PredictSmartPomodoro(sessions); got != 30 {
			t.Errorf("got %d, want 30", got)
		}
	})
}

func TestMonitorStress(t *testing.T) {
	t.Run("too few checks", func(t *testing.T) {
		checks := []model.DailyCheck{{Stress: 5}, {Stress: 5}}
		if got := MonitorStress(checks); got != "" {
			t.Errorf("got %q, want empty", got)
		}
	})

	t.Run("high recent stress warns", func(t *testing.T) {
		checks := []model.DailyCheck{{Stress: 4}, {Stress: 3}, {Stress: 4}}
		if got := MonitorStress(checks); got != MsgHighStress {
			t.Errorf("got %q, want warning", got)
		}
	})

	t.Run("moderate stress stays quiet", func(t *testing.T) {
		checks := []model.DailyCheck{{Stress: 2}, {Stress: 2}, {Stress: 3}}
		if got := MonitorStress(checks); got != "" {
			t.Errorf("got %q, want empty", got)
		}
	})

	t.Run("only three most recent count", func(t *testing.T) {
		checks := []model.DailyCheck{{Stress: 1}, {Stress: 1}, {Stress: 1}, {Stress: 5}, {Stress: 5}}
		if got := MonitorStress(checks); got != "" {
			t.Errorf("got %q, want empty", got)
		}
	})
}

func TestComputeInsights(t *testing.T) {
	report := ComputeInsights(History{})
	if report.PeakFocus != MsgNeedMoreSessions {
		t.Errorf("PeakFocus = %q", report.PeakFocus)
	}
	if report.SleepCorrelation != MsgLogMoreSleep {
		t.Errorf("SleepCorrelation = %q", report.SleepCorrelation)
	}
	if report.StressWarning != "" {
		t.Errorf("StressWarning = %q, want empty", report.StressWarning)
	}
	if report.RecommendedMinutes != DefaultPomodoroMinutes {
		t.Errorf("RecommendedMinutes = %d", report.RecommendedMinutes)
	}
}
