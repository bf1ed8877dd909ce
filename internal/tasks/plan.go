// Package tasks builds the initial delivery plan for a new session.
package tasks

import (
	"fmt"
	"strings"

	"github.com/prdy/prdy/internal/catalog"
	"github.com/prdy/prdy/internal/store"
)

// InitialPlan returns the starting task set for a session. Complex and
// enterprise sessions get additional specification and compliance tasks.
func InitialPlan(sessionID string, complexity catalog.ComplexityLevel) []*store.Task {
	prefix := identifierPrefix(sessionID)
	id := func(n int) string { return fmt.Sprintf("%s-%03d", prefix, n) }

	plan := []*store.Task{
		{
			SessionID:      sessionID,
			Identifier:     id(1),
			Title:          "Conduct comprehensive interview",
			Description:    "Complete all required questions for PRD generation",
			Difficulty:     store.DifficultyEasy,
			Priority:       "high",
			EstimatedHours: 2,
		},
		{
			SessionID:      sessionID,
			Identifier:     id(2),
			Title:          "Generate initial PRD content",
			Description:    "Create comprehensive PRD document from interview data",
			Difficulty:     store.DifficultyMedium,
			Priority:       "high",
			EstimatedHours: 4,
			Dependencies:   []string{id(1)},
		},
		{
			SessionID:      sessionID,
			Identifier:     id(3),
			Title:          "Review and refine PRD",
			Description:    "Review generated PRD for completeness and accuracy",
			Difficulty:     store.DifficultyEasy,
			Priority:       "medium",
			EstimatedHours: 2,
			Dependencies:   []string{id(2)},
		},
	}

	if complexity.IsDetailed() {
		plan = append(plan,
			&store.Task{
				SessionID:      sessionID,
				Identifier:     id(4),
				Title:          "Create detailed technical specifications",
				Description:    "Develop comprehensive technical requirements and architecture",
				Difficulty:     store.DifficultyHard,
				Priority:       "high",
				EstimatedHours: 8,
				Dependencies:   []string{id(2)},
			},
			&store.Task{
				SessionID:      sessionID,
				Identifier:     id(5),
				Title:          "Develop compliance framework",
				Description:    "Create detailed compliance and regulatory requirements",
				Difficulty:     store.DifficultyExpert,
				Priority:       "medium",
				EstimatedHours: 6,
				Dependencies:   []string{id(2)},
			},
		)
	}

	return plan
}

// identifierPrefix derives the human-readable task prefix from the
// session UUID's first segment.
func identifierPrefix(sessionID string) string {
	short := sessionID
	if i := strings.IndexByte(sessionID, '-'); i > 0 {
		short = sessionID[:i]
	}
	return "PRD-" + short
}
