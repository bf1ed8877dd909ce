package catalog

import (
	"strings"
	"testing"
)

func TestValidateQuestions_Valid(t *testing.T) {
	qs := []Question{
		{ID: "a", Prompt: "A", Type: TypeConfirm},
		{ID: "b", Prompt: "B", Type: TypeText, DependsOn: []Dependency{{QuestionID: "a", Answer: "yes"}}},
	}
	if err := validateQuestions(qs); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestValidateQuestions_DuplicateID(t *testing.T) {
	qs := []Question{
		{ID: "a", Prompt: "A", Type: TypeText},
		{ID: "a", Prompt: "A again", Type: TypeText},
	}
	err := validateQuestions(qs)
	if err == nil {
		t.Fatal("expected error for duplicate ID")
	}
	if !strings.Contains(err.Error(), "duplicate") {
		t.Errorf("error should mention duplicate, got: %v", err)
	}
}

func TestValidateQuestions_SelfReference(t *testing.T) {
	qs := []Question{
		{ID: "a", Prompt: "A", Type: TypeText, DependsOn: []Dependency{{QuestionID: "a", Answer: "x"}}},
	}
	err := validateQuestions(qs)
	if err == nil {
		t.Fatal("expected error for self-reference")
	}
	if !strings.Contains(err.Error(), "depends on itself") {
		t.Errorf("error should mention self-dependency, got: %v", err)
	}
}

func TestValidateQuestions_DanglingReference(t *testing.T) {
	qs := []Question{
		{ID: "a", Prompt: "A", Type: TypeText, DependsOn: []Dependency{{QuestionID: "missing", Answer: "x"}}},
	}
	err := validateQuestions(qs)
	if err == nil {
		t.Fatal("expected error for dangling reference")
	}
	if !strings.Contains(err.Error(), "nonexistent") {
		t.Errorf("error should mention nonexistent reference, got: %v", err)
	}
}

func TestValidateQuestions_Cycle(t *testing.T) {
	qs := []Question{
		{ID: "a", Prompt: "A", Type: TypeText, DependsOn: []Dependency{{QuestionID: "b", Answer: "x"}}},
		{ID: "b", Prompt: "B", Type: TypeText, DependsOn: []Dependency{{QuestionID: "a", Answer: "y"}}},
	}
	err := validateQuestions(qs)
	if err == nil {
		t.Fatal("expected error for dependency cycle")
	}
	if !strings.Contains(err.Error(), "cycle") {
		t.Errorf("error should mention the cycle, got: %v", err)
	}
}

func TestValidateQuestions_ChoicesPresence(t *testing.T) {
	tests := []struct {
		name    string
		q       Question
		wantErr bool
	}{
		{"choice with choices", Question{ID: "a", Prompt: "A", Type: TypeChoice, Choices: []string{"x"}}, false},
		{"choice without choices", Question{ID: "a", Prompt: "A", Type: TypeChoice}, true},
		{"multiselect without choices", Question{ID: "a", Prompt: "A", Type: TypeMultiselect}, true},
		{"text with choices", Question{ID: "a", Prompt: "A", Type: TypeText, Choices: []string{"x"}}, true},
		{"confirm without choices", Question{ID: "a", Prompt: "A", Type: TypeConfirm}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateQuestions([]Question{tt.q})
			if (err != nil) != tt.wantErr {
				t.Errorf("got err=%v, wantErr=%v", err, tt.wantErr)
			}
		})
	}
}

func TestEligible(t *testing.T) {
	q := Question{
		ID:   "c",
		Type: TypeText,
		DependsOn: []Dependency{
			{QuestionID: "a", Answer: "yes"},
			{QuestionID: "b", Answer: "Subscription"},
		},
	}

	tests := []struct {
		name    string
		answers map[string]string
		want    bool
	}{
		{"all matched", map[string]string{"a": "yes", "b": "Subscription"}, true},
		{"one mismatched", map[string]string{"a": "yes", "b": "Free"}, false},
		{"one unanswered", map[string]string{"a": "yes"}, false},
		{"none answered", map[string]string{}, false},
		{"nil answers", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := q.Eligible(tt.answers); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEligible_NoDependencies(t *testing.T) {
	q := Question{ID: "a", Type: TypeText}
	if !q.Eligible(nil) {
		t.Error("question without dependencies must always be eligible")
	}
}
