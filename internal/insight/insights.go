package insight

import (
	"fmt"
	"math"

	"github.com/RandintRayquaza/FocusLab/internal/model"
)

// Thresholds for the narrative insight functions. Sessions and checks below
// the minimums produce informational fallback strings, never errors.
const (
	minSessionsForPeak     = 5
	minSessionsForSleep    = 3
	minChecksForSleep      = 3
	minSessionsForPomodoro = 5
	minChecksForStress     = 3

	lowSleepHours   = 6.5
	stressThreshold = 3.5

	// DefaultPomodoroMinutes is recommended until enough history exists.
	DefaultPomodoroMinutes = 25

	pomodoroMinMinutes = 15
	pomodoroMaxMinutes = 60
)

// Fallback and status messages shared with the presentation layer.
const (
	MsgNeedMoreSessions = "Need more sessions to calculate peak focus time."
	MsgStillAnalyzing   = "Keep studying! System is analyzing your schedule."
	MsgLogMoreSleep     = "Consistently log sleep for personalized insights."
	MsgHealthySleep     = "Great job maintaining healthy sleep habits!"
	MsgSleepDeficit     = "Warning: chronic sleep deficit detected. Please rest."
	MsgSleepResilient   = "Your focus remains resilient regardless of sleep, but aim for 7+ hours for memory consolidation."
	MsgHighStress       = "High cognitive load detected. Consider lighter study sessions today and prioritize recovery."
)

// History is the in-memory snapshot the insight functions consume. Sessions
// and daily checks are ordered newest first, matching the store.
type History struct {
	Sessions    []model.Session
	DailyChecks []model.DailyCheck
}

// Report is the full set of derived insights for a dashboard render.
type Report struct {
	PeakFocus          string
	SleepCorrelation   string
	StressWarning      string // empty when stress is under control
	RecommendedMinutes int
}

// ComputeInsights reapplies every insight function to the given history.
// Safe to call on every render; nothing is cached or mutated.
func ComputeInsights(h History) Report {
	return Report{
		PeakFocus:          DetectPeakFocusTime(h.Sessions),
		SleepCorrelation:   AnalyzeSleepCorrelation(h.Sessions, h.DailyChecks),
		StressWarning:      MonitorStress(h.DailyChecks),
		RecommendedMinutes: PredictSmartPomodoro(h.Sessions),
	}
}

// DetectPeakFocusTime buckets sessions by start hour and reports the 2-hour
// window with the best average focus score. Only hours with at least two
// sessions qualify; ties go to the earliest hour.
func DetectPeakFocusTime(sessions []model.Session) string {
	if len(sessions) < minSessionsForPeak {
		return MsgNeedMoreSessions
	}

	var buckets [24]struct {
		totalScore int
		count      int
	}
	for _, s := range sessions {
		h := s.StartTime.Local().Hour()
		buckets[h].totalScore += s.FocusScore
		buckets[h].count++
	}

	bestHour := -1
	maxAvg := 0.0
	for hour, b := range buckets {
		if b.count < 2 {
			continue
		}
		avg := float64(b.totalScore) / float64(b.count)
		if avg > maxAvg {
			maxAvg = avg
			bestHour = hour
		}
	}

	if bestHour == -1 {
		return MsgStillAnalyzing
	}

	return fmt.Sprintf("Your peak cognitive performance occurs between %s and %s.",
		hourLabel(bestHour), hourLabel(bestHour+2))
}

// hourLabel formats an hour-of-day as a 12-hour clock label.
func hourLabel(hour int) string {
	if hour > 12 {
		return fmt.Sprintf("%d PM", hour-12)
	}
	if hour == 0 {
		return "12 AM"
	}
	return fmt.Sprintf("%d AM", hour)
}

// AnalyzeSleepCorrelation compares average daily focus between low-sleep
// (<6.5h) and normal-sleep days. Check dates with no sessions are skipped.
func AnalyzeSleepCorrelation(sessions []model.Session, checks []model.DailyCheck) string {
	if len(checks) < minChecksForSleep || len(sessions) < minSessionsForSleep {
		return MsgLogMoreSleep
	}

	type acc struct {
		sum   int
		count int
	}
	focusByDate := make(map[string]*acc)
	for _, s := range sessions {
		a := focusByDate[s.Date()]
		if a == nil {
			a = &acc{}
			focusByDate[s.Date()] = a
		}
		a.sum += s.FocusScore
		a.count++
	}

	var lowDays, normalDays int
	var lowSum, normalSum float64
	for _, c := range checks {
		a := focusByDate[c.Date]
		if a == nil {
			continue
		}
		dailyAvg := float64(a.sum) / float64(a.count)
		if c.Sleep < lowSleepHours {
			lowDays++
			lowSum += dailyAvg
		} else {
			normalDays++
			normalSum += dailyAvg
		}
	}

	if lowDays == 0 && normalDays == 0 {
		return MsgLogMoreSleep
	}
	if lowDays == 0 {
		return MsgHealthySleep
	}
	if normalDays == 0 {
		return MsgSleepDeficit
	}

	lowAvg := lowSum / float64(lowDays)
	normalAvg := normalSum / float64(normalDays)

	if normalAvg > lowAvg*1.1 {
		drop := int(math.Round((normalAvg - lowAvg) / normalAvg * 100))
		return fmt.Sprintf("Low sleep (<6.5h) reduces your focus capacity by approximately %d%%.", drop)
	}
	return MsgSleepResilient
}

// PredictSmartPomodoro recommends a session length from the 10 most recent
// sessions, nudging the average duration by the average focus score and
// clamping to [15, 60] minutes.
func PredictSmartPomodoro(sessions []model.Session) int {
	if len(sessions) < minSessionsForPomodoro {
		return DefaultPomodoroMinutes
	}

	recent := sessions
	if len(recent) > 10 {
		recent = recent[:10]
	}

	var totalMins, totalScore int
	for _, s := range recent {
		totalMins += s.DurationMins
		totalScore += s.FocusScore
	}
	avgDuration := float64(totalMins) / float64(len(recent))
	avgScore := float64(totalScore) / float64(len(recent))

	recommendation := avgDuration
	switch {
	case avgScore > 80:
		recommendation += 5 // can sustain longer sessions
	case avgScore < 50:
		recommendation -= 5 // overloaded
	}

	rounded := int(math.Round(recommendation))
	if rounded < pomodoroMinMinutes {
		return pomodoroMinMinutes
	}
	if rounded > pomodoroMaxMinutes {
		return pomodoroMaxMinutes
	}
	return rounded
}

// MonitorStress averages stress over the 3 most recent checks and returns a
// warning when the average reaches 3.5, or the empty string otherwise.
func MonitorStress(checks []model.DailyCheck) string {
	if len(checks) < minChecksForStress {
		return ""
	}

	sum := 0
	for _, c := range checks[:3] {
		sum += c.Stress
	}
	if float64(sum)/3 >= stressThreshold {
		return MsgHighStress
	}
	return ""
}
