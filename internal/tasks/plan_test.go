package tasks

import (
	"testing"

	"github.com/prdy/prdy/internal/catalog"
	"github.com/prdy/prdy/internal/store"
)

const sessionID = "1a2b3c4d-0000-0000-0000-000000000000"

func TestInitialPlan_Simple(t *testing.T) {
	plan := InitialPlan(sessionID, catalog.ComplexitySimple)
	if len(plan) != 3 {
		t.Fatalf("got %d tasks, want 3", len(plan))
	}

	if plan[0].Identifier != "PRD-1a2b3c4d-001" {
		t.Errorf("identifier = %q", plan[0].Identifier)
	}
	if len(plan[0].Dependencies) != 0 {
		t.Errorf("interview task should have no dependencies, got %v", plan[0].Dependencies)
	}
	if plan[1].Dependencies[0] != plan[0].Identifier {
		t.Errorf("generation depends on interview, got %v", plan[1].Dependencies)
	}
	if plan[2].Dependencies[0] != plan[1].Identifier {
		t.Errorf("review depends on generation, got %v", plan[2].Dependencies)
	}
}

func TestInitialPlan_ComplexityGating(t *testing.T) {
	tests := []struct {
		complexity catalog.ComplexityLevel
		want       int
	}{
		{catalog.ComplexitySimple, 3},
		{catalog.ComplexityModerate, 3},
		{catalog.ComplexityComplex, 5},
		{catalog.ComplexityEnterprise, 5},
	}
	for _, tt := range tests {
		if got := len(InitialPlan(sessionID, tt.complexity)); got != tt.want {
			t.Errorf("%s: got %d tasks, want %d", tt.complexity, got, tt.want)
		}
	}
}

func TestInitialPlan_ExtendedTasks(t *testing.T) {
	plan := InitialPlan(sessionID, catalog.ComplexityEnterprise)

	spec := plan[3]
	if spec.Difficulty != store.DifficultyHard {
		t.Errorf("technical spec difficulty = %q", spec.Difficulty)
	}
	if spec.Dependencies[0] != plan[1].Identifier {
		t.Errorf("technical spec depends on generation, got %v", spec.Dependencies)
	}

	compliance := plan[4]
	if compliance.Difficulty != store.DifficultyExpert {
		t.Errorf("compliance difficulty = %q", compliance.Difficulty)
	}

	seen := map[string]bool{}
	for _, task := range plan {
		if seen[task.Identifier] {
			t.Errorf("duplicate identifier %s", task.Identifier)
		}
		seen[task.Identifier] = true
		if task.SessionID != sessionID {
			t.Errorf("task %s has session %q", task.Identifier, task.SessionID)
		}
	}
}
