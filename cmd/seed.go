package cmd

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"
	"time"

	"github.com/RandintRayquaza/FocusLab/internal/seed"
	"github.com/RandintRayquaza/FocusLab/internal/store"
	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Fill the database with 30 days of demo data",
	Long:  "Generates a month of synthetic sessions and daily checks so the dashboard and insights have something to show. Replaces existing sessions and checks.",
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

		rng := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
		data := seed.Generate(time.Now(), rng)

		if err := st.SaveSessions(data.Sessions); err != nil {
			return fmt.Errorf("save sessions: %w", err)
		}
		if err := st.SaveDailyChecks(data.DailyChecks); err != nil {
			return fmt.Errorf("save daily checks: %w", err)
		}
		if err := st.SaveStreak(data.Streak); err != nil {
			return fmt.Errorf("save streak: %w", err)
		}

		// Merge demo subjects into the existing list.
		subjects := st.Subjects()
		for _, s := range seed.Subjects {
			exists := slices.ContainsFunc(subjects, func(existing string) bool {
				return strings.EqualFold(existing, s)
			})
			if !exists {
				subjects = append(subjects, s)
			}
		}
		if err := st.SaveSubjects(subjects); err != nil {
			return fmt.Errorf("save subjects: %w", err)
		}

		fmt.Printf("Seeded %d sessions and %d daily checks.\n", len(data.Sessions), len(data.DailyChecks))
		return nil
	},
}
