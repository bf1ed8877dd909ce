package cmd

import (
	"context"
	"fmt"

	"github.com/prdy/prdy/internal/enrich"
	"github.com/prdy/prdy/internal/prd"
	"github.com/prdy/prdy/internal/store"
	"github.com/spf13/cobra"
)

var aiCmd = &cobra.Command{
	Use:   "ai",
	Short: "AI analysis of a session's PRD",
}

var aiAnalyzeCmd = &cobra.Command{
	Use:   "analyze <session>",
	Short: "Analyze the PRD for gaps and risks",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAI(cmd, args[0], func(ctx context.Context, svc *enrich.Service, content *prd.Content) (*enrich.Result, error) {
			return svc.AnalyzeGaps(ctx, content)
		})
	},
}

var aiEnhanceCmd = &cobra.Command{
	Use:   "enhance <session>",
	Short: "Attach AI enhancement notes to the PRD",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAI(cmd, args[0], func(ctx context.Context, svc *enrich.Service, content *prd.Content) (*enrich.Result, error) {
			return svc.Enhance(ctx, content)
		})
	},
}

var aiTechCmd = &cobra.Command{
	Use:   "tech <session>",
	Short: "Suggest technical requirements for the PRD",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAI(cmd, args[0], func(ctx context.Context, svc *enrich.Service, content *prd.Content) (*enrich.Result, error) {
			return svc.SuggestTechnicalRequirements(ctx, content)
		})
	},
}

// runAI loads the session content, runs one enrichment operation, and
// prints the result. Enhancement notes are persisted when applied.
func runAI(cmd *cobra.Command, ref string, op func(context.Context, *enrich.Service, *prd.Content) (*enrich.Result, error)) error {
	ctx := cmd.Context()

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve database path: %w", err)
	}

	s, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer s.Close()

	sess, err := findSession(ctx, s, ref)
	if err != nil {
		return err
	}

	mgr, err := loadSettings()
	if err != nil {
		return err
	}
	provider, name := resolveProvider(ctx, mgr, s.Events())
	svc := enrich.NewService(provider, name)

	content := sess.Content
	if content == nil {
		content = prd.Build(sess.Classification(), sess.Answers)
	}

	res, err := op(ctx, svc, content)
	if err != nil {
		return err
	}

	if res.Applied && content.EnrichmentNotes != "" {
		if err := s.Sessions().SaveContent(ctx, sess.ID, content); err != nil {
			return fmt.Errorf("save enriched content: %w", err)
		}
	}

	fmt.Printf("Provider: %s\n\n", res.Provider)
	fmt.Println(res.Content)
	return nil
}

func init() {
	aiCmd.AddCommand(aiAnalyzeCmd)
	aiCmd.AddCommand(aiEnhanceCmd)
	aiCmd.AddCommand(aiTechCmd)
}
