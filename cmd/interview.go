package cmd

import (
	"fmt"

	"github.com/prdy/prdy/internal/app"
	"github.com/prdy/prdy/internal/enrich"
	"github.com/prdy/prdy/internal/screen"
	interviewscreen "github.com/prdy/prdy/internal/screens/interview"
	summaryscreen "github.com/prdy/prdy/internal/screens/summary"
	"github.com/prdy/prdy/internal/store"
	"github.com/spf13/cobra"
)

var interviewCmd = &cobra.Command{
	Use:   "interview <session>",
	Short: "Resume a session's questionnaire",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer st.Close()

		sess, err := findSession(ctx, st, args[0])
		if err != nil {
			return err
		}

		mgr, err := loadSettings()
		if err != nil {
			return err
		}
		provider, name := resolveProvider(ctx, mgr, st.Events())
		svc := enrich.NewService(provider, name)

		// Finished sessions open on their summary instead.
		var initial screen.Screen
		if sess.Status == store.StatusInProgress {
			initial = interviewscreen.New(st, mgr, svc, sess)
		} else {
			initial = summaryscreen.New(st, mgr, svc, sess.ID)
		}
		return app.RunFrom(st, mgr, svc, name, initial)
	},
}
