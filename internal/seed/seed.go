// Package seed generates a synthetic 30-day history for demos and local
// experimentation with the insight engine.
package seed

import (
	"fmt"
	"math"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/RandintRayquaza/FocusLab/internal/model"
)

// Subjects used by the generated history.
var Subjects = []string{"Calculus", "Physics", "Computer Science", "Literature", "History"}

// Data is one generated demo history.
type Data struct {
	Sessions    []model.Session
	DailyChecks []model.DailyCheck
	Streak      model.Streak
}

// Generate builds 30 days of daily checks and 1-5 study sessions per day
// between 09:00 and 20:59, with focus scores loosely correlated to time of
// day so peak-time detection has something to find.
func Generate(now time.Time, rng *rand.Rand) Data {
	checks := make([]model.DailyCheck, 0, 30)
	checkMood := make(map[string]int, 30)
	for i := 0; i < 30; i++ {
		day := now.AddDate(0, 0, -i)
		date := day.Format(model.DateLayout)
		mood := randInt(rng, 2, 5) // slight bias to positive
		checks = append(checks, model.DailyCheck{
			Date:   date,
			Mood:   mood,
			Sleep:  math.Round(randFloat(rng, 5.5, 9.0)*10) / 10,
			Stress: randInt(rng, 1, 4),
		})
		checkMood[date] = mood
	}

	var sessions []model.Session
	id := 1
	for i := 0; i < 30; i++ {
		day := now.AddDate(0, 0, -i)
		date := day.Format(model.DateLayout)

		for j := 0; j < randInt(rng, 1, 5); j++ {
			hour := randInt(rng, 9, 20)
			start := time.Date(day.Year(), day.Month(), day.Day(), hour, randInt(rng, 0, 59), 0, 0, day.Location())
			durationMins := randInt(rng, 15, 120)
			end := start.Add(time.Duration(durationMins) * time.Minute)

			// Simulate a late-afternoon peak and groggy mornings.
			scoreBase := 70
			if hour >= 15 && hour <= 18 {
				scoreBase += 15
			}
			if hour < 10 {
				scoreBase -= 10
			}

			sessions = append(sessions, model.Session{
				ID:               fmt.Sprintf("demo_session_%d", id),
				Subject:          Subjects[rng.IntN(len(Subjects))],
				StartTime:        start,
				EndTime:          end,
				DurationMins:     durationMins,
				Breaks:           durationMins / 30,
				DistractionCount: randInt(rng, 0, durationMins/15),
				Mood:             checkMood[date],
				FocusScore:       clamp(scoreBase+randInt(rng, -15, 15), 10, 100),
				PomodoroUsed:     rng.Float64() > 0.3,
				CreatedAt:        end,
			})
			id++
		}
	}

	slices.SortFunc(sessions, func(a, b model.Session) int {
		return b.StartTime.Compare(a.StartTime)
	})

	return Data{
		Sessions:    sessions,
		DailyChecks: checks,
		Streak: model.Streak{
			Current:       4,
			Longest:       12,
			LastStudyDate: now.Format(model.DateLayout),
		},
	}
}

func randInt(rng *rand.Rand, min, max int) int {
	return min + rng.IntN(max-min+1)
}

func randFloat(rng *rand.Rand, min, max float64) float64 {
	return min + rng.Float64()*(max-min)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
