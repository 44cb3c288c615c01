package insight

import "math"

const (
	// MinScore and MaxScore bound every computed focus score.
	MinScore = 10
	MaxScore = 100

	// optimalMinutes is the session length that earns full duration credit.
	optimalMinutes = 45

	// breakCostMinutes is the assumed study time lost per rest taken.
	breakCostMinutes = 5
)

// CalculateFocusScore derives a 10-100 focus score from a session's shape.
// Duration earns up to 40 points with diminishing credit past 45 minutes,
// a low break-time fraction earns up to 40, distractions cost 5 each out of
// a 20-point pool, and mood at the extremes scales the whole thing by ±10%.
//
// The function is total: a duration below one minute floors to MinScore
// rather than dividing by zero.
func CalculateFocusScore(durationMins, breaks, distractions, mood int) int {
	if durationMins < 1 {
		return MinScore
	}

	durationScore := math.Min(40, float64(durationMins)/optimalMinutes*40)
	breakRatioScore := math.Min(40, float64(durationMins-breaks*breakCostMinutes)/float64(durationMins)*40)
	distractionScore := math.Max(0, 20-float64(distractions*5))

	score := durationScore + breakRatioScore + distractionScore

	multiplier := 1.0
	switch {
	case mood >= 5:
		multiplier = 1.1
	case mood <= 2 && mood >= 1:
		multiplier = 0.9
	}

	return clampScore(int(math.Round(score * multiplier)))
}

func clampScore(v int) int {
	if v < MinScore {
		return MinScore
	}
	if v > MaxScore {
		return MaxScore
	}
	return v
}
