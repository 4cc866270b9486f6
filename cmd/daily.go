package cmd

import (
	"github.com/spf13/cobra"

	"github.com/jeevibe/jeevibe/internal/app"
	"github.com/jeevibe/jeevibe/internal/quiz"
	quizscreen "github.com/jeevibe/jeevibe/internal/screens/quiz"
)

var dailyCmd = &cobra.Command{
	Use:   "daily",
	Short: "Jump straight into today's quiz",
	RunE: func(cmd *cobra.Command, args []string) error {
		deps, cleanup, err := buildDeps(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		deps.Initial = quizscreen.New(deps.Client, deps.Events, deps.TutorProvider, deps.TutorConfig,
			quizscreen.Request{Kind: quiz.SessionDaily})
		return app.Run(*deps)
	},
}
