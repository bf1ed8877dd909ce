package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/prdy/prdy/internal/app"
	"github.com/prdy/prdy/internal/enrich"
	"github.com/prdy/prdy/internal/llm"
	"github.com/prdy/prdy/internal/settings"
	"github.com/prdy/prdy/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	mgr, err := loadSettings()
	if err != nil {
		return err
	}

	provider, name := resolveProvider(ctx, mgr, st.Events())
	svc := enrich.NewService(provider, name)

	return app.Run(st, mgr, svc, name)
}

// loadSettings loads preferences from the default config path.
func loadSettings() (*settings.Manager, error) {
	path, err := settings.DefaultConfigPath()
	if err != nil {
		return nil, fmt.Errorf("resolve config path: %w", err)
	}
	mgr, err := settings.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	return mgr, nil
}

// resolveProvider builds the LLM provider from settings and environment.
// The PRDY_LLM_PROVIDER env var wins over the saved setting; if neither
// names a provider, standard API key env vars are probed. A nil provider
// means AI features degrade to templates, never an error.
func resolveProvider(ctx context.Context, mgr *settings.Manager, eventRepo store.EventRepo) (llm.Provider, string) {
	cfg := llm.ConfigFromEnv()

	if os.Getenv("PRDY_LLM_PROVIDER") == "" {
		saved := "none"
		var ollamaModel string
		if mgr != nil {
			if cur, err := mgr.Current(); err == nil {
				saved = cur.AIProvider
				ollamaModel = cur.OllamaModel
			}
		}
		if saved == "" || saved == "none" {
			discovered, ok := llm.DiscoverConfig()
			if !ok {
				return nil, "none"
			}
			cfg = discovered
		} else {
			cfg.Provider = saved
			if saved == "ollama" && ollamaModel != "" && os.Getenv("PRDY_OLLAMA_MODEL") == "" {
				cfg.Ollama.Model = ollamaModel
			}
		}
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "AI features will be unavailable.")
		return nil, "none"
	}

	provider, err := llm.NewProvider(ctx, cfg, eventRepo)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "AI features will be unavailable.")
		return nil, "none"
	}
	return provider, cfg.Provider
}
