package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/prdy/prdy/internal/export"
	"github.com/prdy/prdy/internal/prd"
	"github.com/prdy/prdy/internal/store"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export <session>",
	Short: "Export a session's PRD to a file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		formatFlag, _ := cmd.Flags().GetString("format")
		outDir, _ := cmd.Flags().GetString("out")

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

		mgr, err := loadSettings()
		if err != nil {
			return err
		}
		cur, err := mgr.Current()
		if err != nil {
			return err
		}

		if formatFlag == "" {
			formatFlag = cur.DefaultExportFormat
		}
		format, err := export.ParseFormat(formatFlag)
		if err != nil {
			return err
		}
		if outDir == "" {
			outDir = cur.ExportDirectory
		}

		content := sess.Content
		if content == nil {
			content = prd.Build(sess.Classification(), sess.Answers)
			if err := s.Sessions().SaveContent(ctx, sess.ID, content); err != nil {
				return fmt.Errorf("save generated content: %w", err)
			}
		}

		path, err := export.WriteFile(content, sess.Name, format, outDir, time.Now())
		if err != nil {
			return err
		}
		fmt.Println("Exported", path)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringP("format", "f", "", "Export format: markdown, text, or pdf (default from settings)")
	exportCmd.Flags().StringP("out", "o", "", "Output directory (default from settings)")
}
