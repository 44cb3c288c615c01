package seed

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/RandintRayquaza/FocusLab/internal/model"
)

func TestGenerate(t *testing.T) {
	now := time.Date(2026, time.August, 30, 12, 0, 0, 0, time.Local)
	rng := rand.New(rand.NewPCG(1, 2))

	data := Generate(now, rng)

	if len(data.DailyChecks) != 30 {
		t.Fatalf("expected 30 daily checks, got %d", len(data.DailyChecks))
	}
	if len(data.Sessions) < 30 {
		t.Fatalf("expected at least one session per day, got %d", len(data.Sessions))
	}

	for _, c := range data.DailyChecks {
		if c.Mood < 1 || c.Mood > 5 {
			t.Errorf("check %s mood out of range: %d", c.Date, c.Mood)
		}
		if c.Sleep < 5.5 || c.Sleep > 9.0 {
			t.Errorf("check %s sleep out of range: %v", c.Date, c.Sleep)
		}
		if c.Stress < 1 || c.Stress > 5 {
			t.Errorf("check %s stress out of range: %d", c.Date, c.Stress)
		}
	}

	seen := make(map[string]bool)
	for _, s := range data.Sessions {
		if seen[s.ID] {
			t.Errorf("duplicate session ID %s", s.ID)
		}
		seen[s.ID] = true

		if s.DurationMins < 15 || s.DurationMins > 120 {
			t.Errorf("session %s duration out of range: %d", s.ID, s.DurationMins)
		}
		if s.FocusScore < 10 || s.FocusScore > 100 {
			t.Errorf("session %s score out of range: %d", s.ID, s.FocusScore)
		}
		h := s.StartTime.Hour()
		if h < 9 || h > 20 {
			t.Errorf("session %s starts outside 09-20: %d", s.ID, h)
		}
	}

	// Newest first.
	for i := 1; i < len(data.Sessions); i++ {
		if data.Sessions[i].StartTime.After(data.Sessions[i-1].StartTime) {
			t.Fatalf("sessions not sorted newest-first at index %d", i)
		}
	}

	if data.Streak.LastStudyDate != now.Format(model.DateLayout) {
		t.Errorf("streak last study date = %q", data.Streak.LastStudyDate)
	}
	if data.Streak.Current <= 0 || data.Streak.Longest < data.Streak.Current {
		t.Errorf("implausible streak: %+v", data.Streak)
	}
}

func TestGenerateDeterministicWithSameSeed(t *testing.T) {
	now := time.Date(2026, time.August, 30, 12, 0, 0, 0, time.Local)

	a := Generate(now, rand.New(rand.NewPCG(7, 7)))
	b := Generate(now, rand.New(rand.NewPCG(7, 7)))

	if len(a.Sessions) != len(b.Sessions) {
		t.Fatalf("session counts differ: %d vs %d", len(a.Sessions), len(b.Sessions))
	}
	for i := range a.Sessions {
		if a.Sessions[i] != b.Sessions[i] {
			t.Fatalf("sessions differ at index %d", i)
		}
	}
}
