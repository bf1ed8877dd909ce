package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/prdy/prdy/internal/store"
	"github.com/spf13/cobra"
)

var tasksCmd = &cobra.Command{
	Use:   "tasks <session>",
	Short: "Show a session's delivery plan",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		done, _ := cmd.Flags().GetString("done")
		start, _ := cmd.Flags().GetString("start")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		sess, err := findSession(ctx, s, args[0])
		if err != nil {
			return err
		}

		if done != "" {
			if err := s.Tasks().UpdateStatus(ctx, done, store.TaskCompleted); err != nil {
				return fmt.Errorf("complete task %s: %w", done, err)
			}
			fmt.Println("Completed", done)
		}
		if start != "" {
			if err := s.Tasks().UpdateStatus(ctx, start, store.TaskInProgress); err != nil {
				return fmt.Errorf("start task %s: %w", start, err)
			}
			fmt.Println("Started", start)
		}

		tasks, err := s.Tasks().BySession(ctx, sess.ID)
		if err != nil {
			return fmt.Errorf("load tasks: %w", err)
		}

		if len(tasks) == 0 {
			fmt.Println("No tasks for this session.")
			return nil
		}

		fmt.Printf("%-18s  %-4s  %-40s  %-11s  %5s  %s\n",
			"Identifier", "", "Title", "Status", "Hours", "Depends on")
		fmt.Println(strings.Repeat("─", 100))

		for _, t := range tasks {
			mark := "[ ]"
			switch t.Status {
			case store.TaskCompleted:
				mark = "[x]"
			case store.TaskInProgress:
				mark = "[~]"
			case store.TaskBlocked:
				mark = "[!]"
			}
			fmt.Printf("%-18s  %-4s  %-40s  %-11s  %5d  %s\n",
				t.Identifier,
				mark,
				truncate(t.Title, 40),
				t.Status,
				t.EstimatedHours,
				strings.Join(t.Dependencies, ", "),
			)
		}
		return nil
	},
}

func init() {
	tasksCmd.Flags().String("done", "", "Mark a task identifier completed before listing")
	tasksCmd.Flags().String("start", "", "Mark a task identifier in progress before listing")
}
