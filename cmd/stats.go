package cmd

import (
	"fmt"

	"github.com/RandintRayquaza/FocusLab/internal/insight"
	"github.com/RandintRayquaza/FocusLab/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print study statistics and insights",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		sessions := st.Sessions()
		checks := st.DailyChecks()
		streak := st.Streak()

		totalMins, scoreSum := 0, 0
		for _, s := range sessions {
			totalMins += s.DurationMins
			scoreSum += s.FocusScore
		}
		avgScore := 0
		if len(sessions) > 0 {
			avgScore = scoreSum / len(sessions)
		}

		fmt.Printf("Sessions:        %d\n", len(sessions))
		fmt.Printf("Total study:     %.1f h\n", float64(totalMins)/60)
		fmt.Printf("Avg focus score: %d\n", avgScore)
		fmt.Printf("Current streak:  %d days (longest %d)\n", streak.Current, streak.Longest)
		fmt.Println()

		report := insight.ComputeInsights(insight.History{
			Sessions:    sessions,
			DailyChecks: checks,
		})
		fmt.Println(report.PeakFocus)
		fmt.Println(report.SleepCorrelation)
		if report.StressWarning != "" {
			fmt.Println(report.StressWarning)
		}
		fmt.Printf("Recommended pomodoro: %d minutes\n", report.RecommendedMinutes)

		return nil
	},
}
