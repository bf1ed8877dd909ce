// Package enrich runs AI analysis over synthesized documents.
package enrich

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/prdy/prdy/internal/llm"
	"github.com/prdy/prdy/internal/prd"
)

// Result is the outcome of one enrichment operation. Enrichment never
// fails the caller: when no provider is configured or the provider
// errors, Applied is false and Content carries an explanatory note.
type Result struct {
	// Content is the AI's analysis text, or an explanatory note when
	// no analysis ran.
	Content string

	// Provider names the provider that served the request, or "none".
	Provider string

	// Applied reports whether an AI provider actually contributed.
	Applied bool
}

// Service runs enrichment operations against an LLM provider.
type Service struct {
	provider llm.Provider
	name     string
}

// NewService creates an enrichment service. A nil provider is valid and
// means every operation degrades to a no-op with a note.
func NewService(provider llm.Provider, providerName string) *Service {
	if providerName == "" {
		providerName = "none"
	}
	return &Service{provider: provider, name: providerName}
}

// AnalyzeGaps asks the provider to review the document for missing
// information, risks, and follow-up questions.
func (s *Service) AnalyzeGaps(ctx context.Context, content *prd.Content) (*Result, error) {
	if s.provider == nil {
		return &Result{
			Content:  "No AI provider configured. PRD generated with basic templates.",
			Provider: "none",
		}, nil
	}

	ctx = llm.WithPurpose(ctx, "analyze_gaps")
	resp, err := s.provider.Generate(ctx, llm.Request{
		System:    analystSystemPrompt,
		Messages:  []llm.Message{{Role: llm.RoleUser, Content: gapAnalysisPrompt(content)}},
		Schema:    gapAnalysisSchema(),
		MaxTokens: 2048,
	})
	if err != nil {
		return s.degraded(err), nil
	}

	var analysis gapAnalysis
	if err := json.Unmarshal(resp.Content, &analysis); err != nil {
		return s.degraded(fmt.Errorf("parse analysis: %w", err)), nil
	}

	return &Result{
		Content:  analysis.Render(),
		Provider: s.name,
		Applied:  true,
	}, nil
}

// Enhance asks the provider for improvement notes and attaches them to
// the document's enrichment section. The document is unmodified when no
// provider is available.
func (s *Service) Enhance(ctx context.Context, content *prd.Content) (*Result, error) {
	if s.provider == nil {
		return &Result{
			Content:  "No enhancements applied - no AI provider configured.",
			Provider: "none",
		}, nil
	}

	ctx = llm.WithPurpose(ctx, "enhance")
	resp, err := s.provider.Generate(ctx, llm.Request{
		System:    analystSystemPrompt,
		Messages:  []llm.Message{{Role: llm.RoleUser, Content: enhancementPrompt(content)}},
		MaxTokens: 2048,
	})
	if err != nil {
		return s.degraded(err), nil
	}

	notes := rawText(resp.Content)
	content.EnrichmentNotes = notes

	return &Result{
		Content:  notes,
		Provider: s.name,
		Applied:  true,
	}, nil
}

// SuggestTechnicalRequirements asks the provider for technical
// requirements tailored to the product type and industry.
func (s *Service) SuggestTechnicalRequirements(ctx context.Context, content *prd.Content) (*Result, error) {
	if s.provider == nil {
		return &Result{
			Content:  "Basic technical requirements generated from templates.",
			Provider: "none",
		}, nil
	}

	ctx = llm.WithPurpose(ctx, "suggest_technical")
	resp, err := s.provider.Generate(ctx, llm.Request{
		System:    analystSystemPrompt,
		Messages:  []llm.Message{{Role: llm.RoleUser, Content: technicalRequirementsPrompt(content)}},
		MaxTokens: 2048,
	})
	if err != nil {
		return s.degraded(err), nil
	}

	return &Result{
		Content:  rawText(resp.Content),
		Provider: s.name,
		Applied:  true,
	}, nil
}

func (s *Service) degraded(err error) *Result {
	return &Result{
		Content:  fmt.Sprintf("AI analysis unavailable: %v", err),
		Provider: s.name,
	}
}

// rawText unwraps a response that may arrive as a JSON string.
func rawText(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return strings.TrimSpace(string(raw))
}
