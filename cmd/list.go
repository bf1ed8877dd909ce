package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/prdy/prdy/internal/store"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		sessions, err := s.Sessions().List(context.Background())
		if err != nil {
			return fmt.Errorf("list sessions: %w", err)
		}

		if len(sessions) == 0 {
			fmt.Println("No sessions found.")
			return nil
		}

		fmt.Printf("%-10s  %-24s  %-20s  %-12s  %-11s  %5s\n",
			"ID", "Name", "Product", "Industry", "Status", "Done")
		fmt.Println(strings.Repeat("─", 92))

		for _, sess := range sessions {
			fmt.Printf("%-10s  %-24s  %-20s  %-12s  %-11s  %4d%%\n",
				shortID(sess.ID),
				truncate(sess.Name, 24),
				sess.Product,
				sess.Industry,
				sess.Status,
				sess.Completion,
			)
		}
		return nil
	},
}

// shortID returns the first UUID segment, which the other commands
// accept as a session reference.
func shortID(id string) string {
	if i := strings.IndexByte(id, '-'); i > 0 {
		return id[:i]
	}
	return id
}

// findSession resolves a full ID or unique ID prefix to a session.
func findSession(ctx context.Context, s *store.Store, ref string) (*store.Session, error) {
	if sess, err := s.Sessions().Get(ctx, ref); err == nil {
		return sess, nil
	}

	sessions, err := s.Sessions().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}

	var match *store.Session
	for _, sess := range sessions {
		if strings.HasPrefix(sess.ID, ref) {
			if match != nil {
				return nil, fmt.Errorf("session reference %q is ambiguous", ref)
			}
			match = sess
		}
	}
	if match == nil {
		return nil, fmt.Errorf("no session matches %q", ref)
	}
	return match, nil
}
