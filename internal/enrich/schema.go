package enrich

import (
	"fmt"
	"strings"

	"github.com/prdy/prdy/internal/llm"
)

// gapAnalysis is the structured shape requested from the provider.
type gapAnalysis struct {
	MissingInformation []string `json:"missing_information"`
	SuggestedQuestions []string `json:"suggested_questions"`
	Risks              []string `json:"risks"`
	Recommendations    []string `json:"recommendations"`
}

// Render formats the analysis as readable sections.
func (g gapAnalysis) Render() string {
	var b strings.Builder
	section := func(title string, items []string) {
		if len(items) == 0 {
			return
		}
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString(title + ":\n")
		for _, item := range items {
			fmt.Fprintf(&b, "- %s\n", item)
		}
	}
	section("Missing information", g.MissingInformation)
	section("Suggested questions", g.SuggestedQuestions)
	section("Risks", g.Risks)
	section("Recommendations", g.Recommendations)
	return b.String()
}

func gapAnalysisSchema() *llm.Schema {
	stringList := map[string]any{
		"type":  "array",
		"items": map[string]any{"type": "string"},
	}
	return &llm.Schema{
		Name:        "gap-analysis",
		Description: "Gap analysis of a product requirements document",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"missing_information": stringList,
				"suggested_questions": stringList,
				"risks":               stringList,
				"recommendations":     stringList,
			},
			"required": []any{"missing_information", "suggested_questions", "risks", "recommendations"},
		},
	}
}
