package interview

import (
	"testing"

	"github.com/prdy/prdy/internal/catalog"
)

func TestCoerce_Text(t *testing.T) {
	q := catalog.Question{ID: "problem_statement", Type: catalog.TypeText}
	got, err := Coerce(q, "  users lose track of requirements  ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "users lose track of requirements" {
		t.Errorf("got %q", got)
	}
}

func TestCoerce_Choice(t *testing.T) {
	q := catalog.Question{ID: "timeline", Type: catalog.TypeChoice, Choices: []string{"2-4 weeks", "1-3 months"}}

	got, err := Coerce(q, "1-3 months")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "1-3 months" {
		t.Errorf("got %q", got)
	}

	if _, err := Coerce(q, "next year"); err == nil {
		t.Error("expected error for answer outside choices")
	}
}

func TestCoerce_Multiselect(t *testing.T) {
	q := catalog.Question{ID: "platforms", Type: catalog.TypeMultiselect, Choices: []string{"iOS", "Android", "Both"}}

	got, err := Coerce(q, "ios, android")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "iOS, Android" {
		t.Errorf("got %q, want canonical casing", got)
	}

	if _, err := Coerce(q, "iOS, Windows Phone"); err == nil {
		t.Error("expected error for option outside choices")
	}
}

func TestCoerce_Confirm(t *testing.T) {
	q := catalog.Question{ID: "offline_functionality", Type: catalog.TypeConfirm}

	tests := []struct {
		raw  string
		want string
	}{
		{"yes", ConfirmYes},
		{"Y", ConfirmYes},
		{"true", ConfirmYes},
		{"no", ConfirmNo},
		{"n", ConfirmNo},
		{"", ConfirmNo},
	}
	for _, tt := range tests {
		got, err := Coerce(q, tt.raw)
		if err != nil {
			t.Errorf("Coerce(%q): unexpected error: %v", tt.raw, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Coerce(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}

	if _, err := Coerce(q, "maybe"); err == nil {
		t.Error("expected error for non-boolean confirm answer")
	}
}

func TestCoerce_ConfirmDefault(t *testing.T) {
	q := catalog.Question{ID: "responsive_design", Type: catalog.TypeConfirm, Default: "yes"}
	got, err := Coerce(q, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != ConfirmYes {
		t.Errorf("empty input should take the default, got %q", got)
	}
}

func TestCoerce_Integer(t *testing.T) {
	q := catalog.Question{ID: "team_size", Type: catalog.TypeInteger}

	if got, err := Coerce(q, "7"); err != nil || got != "7" {
		t.Errorf("got (%q, %v)", got, err)
	}
	if _, err := Coerce(q, "several"); err == nil {
		t.Error("expected error for non-integer answer")
	}
}

func TestCoerce_IntegerDefault(t *testing.T) {
	q := catalog.Question{ID: "subscription_tiers", Type: catalog.TypeInteger, Default: "3"}
	got, err := Coerce(q, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "3" {
		t.Errorf("got %q, want default 3", got)
	}
}

func TestCoerce_Float(t *testing.T) {
	q := catalog.Question{ID: "budget", Type: catalog.TypeFloat}
	if got, err := Coerce(q, "12.5"); err != nil || got != "12.5" {
		t.Errorf("got (%q, %v)", got, err)
	}
	if _, err := Coerce(q, "a lot"); err == nil {
		t.Error("expected error for non-numeric answer")
	}
}

func TestAnswers_SetAndAccessors(t *testing.T) {
	a := Answers{}

	if err := a.Set(catalog.Question{ID: "ok", Type: catalog.TypeConfirm}, "yes"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !a.Bool("ok") {
		t.Error("Bool should report yes")
	}

	if err := a.Set(catalog.Question{ID: "n", Type: catalog.TypeInteger}, "4"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Int("n") != 4 {
		t.Errorf("Int = %d, want 4", a.Int("n"))
	}

	if err := a.Set(catalog.Question{ID: "ms", Type: catalog.TypeMultiselect, Choices: []string{"A", "B"}}, "A, B"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := a.List("ms")
	if len(got) != 2 || got[0] != "A" || got[1] != "B" {
		t.Errorf("List = %v", got)
	}
}

func TestNextQuestion_DrivesDependencyFlow(t *testing.T) {
	questions := catalog.QuestionsForProduct(catalog.ProductMobileApp, catalog.IndustryGeneral, catalog.ComplexityModerate)
	answers := Answers{}

	// Answer everything; user_feedback must surface only after
	// user_research_done is answered yes.
	sawFeedback := false
	for i := 0; i < len(questions)+5; i++ {
		q, ok := NextQuestion(questions, answers)
		if !ok {
			break
		}
		if q.ID == "user_feedback" {
			if answers["user_research_done"] != ConfirmYes {
				t.Fatal("user_feedback surfaced before its dependency was satisfied")
			}
			sawFeedback = true
		}

		raw := "answer"
		switch q.Type {
		case catalog.TypeChoice, catalog.TypeMultiselect:
			raw = q.Choices[0]
		case catalog.TypeConfirm:
			raw = "yes"
		case catalog.TypeInteger:
			raw = "2"
		case catalog.TypeFloat:
			raw = "1.5"
		}
		if err := answers.Set(q, raw); err != nil {
			t.Fatalf("answer %s: %v", q.ID, err)
		}
	}

	if !sawFeedback {
		t.Error("user_feedback never surfaced even though user_research_done was yes")
	}
	if _, ok := NextQuestion(questions, answers); ok {
		t.Error("interview should be complete")
	}
	if got := Completion(questions, answers); got != 100 {
		t.Errorf("Completion = %d, want 100", got)
	}
}

func TestCompletion(t *testing.T) {
	questions := []catalog.Question{
		{ID: "a", Type: catalog.TypeText},
		{ID: "b", Type: catalog.TypeText},
		{ID: "c", Type: catalog.TypeText, DependsOn: []catalog.Dependency{{QuestionID: "a", Answer: "x"}}},
	}

	if got := Completion(questions, Answers{}); got != 0 {
		t.Errorf("empty answers: got %d, want 0", got)
	}
	// c is not eligible (a != "x"), so 1 of 2 eligible answered.
	if got := Completion(questions, Answers{"b": "done"}); got != 50 {
		t.Errorf("got %d, want 50", got)
	}
	// Answering a with "x" makes c eligible: 2 of 3 answered.
	if got := Completion(questions, Answers{"a": "x", "b": "done"}); got != 66 {
		t.Errorf("got %d, want 66", got)
	}
	if got := Completion(nil, Answers{}); got != 100 {
		t.Errorf("no questions: got %d, want 100", got)
	}
}

func TestRemaining(t *testing.T) {
	questions := catalog.QuestionsForProduct(catalog.ProductDesktopApp, catalog.IndustryGeneral, catalog.ComplexitySimple)
	answers := Answers{}
	if got := Remaining(questions, answers); got != len(questions) {
		t.Errorf("got %d, want %d", got, len(questions))
	}
	answers["project_name"] = "Prdy"
	if got := Remaining(questions, answers); got != len(questions)-1 {
		t.Errorf("got %d, want %d", got, len(questions)-1)
	}
}
