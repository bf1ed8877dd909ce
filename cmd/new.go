package cmd

import (
	"context"
	"fmt"

	"github.com/prdy/prdy/internal/catalog"
	"github.com/prdy/prdy/internal/store"
	"github.com/prdy/prdy/internal/tasks"
	"github.com/spf13/cobra"
)

var newCmd = &cobra.Command{
	Use:   "new <name>",
	Short: "Create a new PRD session",
	Long:  "Create a session with the given classification and seed its initial task plan. Run 'prdy interview' afterwards to answer the questionnaire.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		productFlag, _ := cmd.Flags().GetString("product")
		industryFlag, _ := cmd.Flags().GetString("industry")
		complexityFlag, _ := cmd.Flags().GetString("complexity")

		product, err := catalog.ParseProductType(productFlag)
		if err != nil {
			return err
		}
		industry, err := catalog.ParseIndustryType(industryFlag)
		if err != nil {
			return err
		}
		complexity, err := catalog.ParseComplexityLevel(complexityFlag)
		if err != nil {
			return err
		}

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
		sess := &store.Session{
			Name:       args[0],
			Product:    product,
			Industry:   industry,
			Complexity: complexity,
		}
		if err := s.Sessions().Create(ctx, sess); err != nil {
			return fmt.Errorf("create session: %w", err)
		}
		if err := s.Tasks().CreateAll(ctx, tasks.InitialPlan(sess.ID, complexity)); err != nil {
			return fmt.Errorf("seed task plan: %w", err)
		}

		questions := catalog.QuestionsForProduct(product, industry, complexity)
		fmt.Printf("Created session %s (%s)\n", shortID(sess.ID), sess.Name)
		fmt.Printf("%d questions queued. Start with: prdy interview %s\n",
			len(questions), shortID(sess.ID))
		return nil
	},
}

func init() {
	newCmd.Flags().StringP("product", "p", "web_app", "Product type (e.g. web_app, mobile_app, api_service)")
	newCmd.Flags().StringP("industry", "i", "general", "Industry (e.g. general, healthcare, finance)")
	newCmd.Flags().StringP("complexity", "c", "moderate", "Complexity: simple, moderate, complex, or enterprise")
}
