package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jeevibe/jeevibe/internal/progress"
	"github.com/jeevibe/jeevibe/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print progress from the local event log",
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

		report, err := progress.BuildReport(cmd.Context(), st.EventRepo(), time.Now())
		if err != nil {
			return err
		}

		fmt.Printf("Streak: %d day(s), best %d, next milestone at %d\n",
			report.Streak, report.BestStreak, report.NextMilestone)

		if len(report.Subjects) > 0 {
			fmt.Println("\nAccuracy by subject:")
			for _, s := range report.Subjects {
				fmt.Printf("  %-12s %3.0f%%  (%d/%d)\n",
					s.Subject, s.Accuracy()*100, s.Correct, s.Attempted)
			}
		}

		if len(report.Recent) > 0 {
			fmt.Println("\nRecent sessions:")
			for _, r := range report.Recent {
				verdict := "failed"
				if r.Passed {
					verdict = "passed"
				}
				fmt.Printf("  %s  %-17s %d/%d  %s\n",
					r.Timestamp.Format("2006-01-02"), r.Kind,
					r.CorrectAnswers, r.TotalQuestions, verdict)
			}
		} else {
			fmt.Println("\nNo completed sessions yet.")
		}

		return nil
	},
}
