package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jeevibe/jeevibe/internal/app"
	"github.com/jeevibe/jeevibe/internal/quiz"
	quizscreen "github.com/jeevibe/jeevibe/internal/screens/quiz"
)

var practiceCmd = &cobra.Command{
	Use:   "practice",
	Short: "Practice a specific chapter",
	RunE: func(cmd *cobra.Command, args []string) error {
		subject, _ := cmd.Flags().GetString("subject")
		chapter, _ := cmd.Flags().GetString("chapter")
		count, _ := cmd.Flags().GetInt("count")

		subject = strings.ToLower(strings.TrimSpace(subject))
		switch subject {
		case "physics", "chemistry", "mathematics":
		default:
			return fmt.Errorf("unknown subject %q (want physics, chemistry, or mathematics)", subject)
		}
		if strings.TrimSpace(chapter) == "" {
			return fmt.Errorf("--chapter is required")
		}

		deps, cleanup, err := buildDeps(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		deps.Initial = quizscreen.New(deps.Client, deps.Events, deps.TutorProvider, deps.TutorConfig,
			quizscreen.Request{
				Kind:    quiz.SessionChapterPractice,
				Subject: subject,
				Chapter: chapter,
				Count:   count,
			})
		return app.Run(*deps)
	},
}

func init() {
	practiceCmd.Flags().String("subject", "", "Subject: physics, chemistry, or mathematics")
	practiceCmd.Flags().String("chapter", "", "Chapter to practice, e.g. Kinematics")
	practiceCmd.Flags().Int("count", 0, "Number of questions (0 = server default)")
	_ = practiceCmd.MarkFlagRequired("subject")
	_ = practiceCmd.MarkFlagRequired("chapter")
}
