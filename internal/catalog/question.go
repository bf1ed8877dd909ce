package catalog

// QuestionType determines how a question is asked and how its answer
// is validated.
type QuestionType string

const (
	TypeText        QuestionType = "text"        // Free-form text
	TypeChoice      QuestionType = "choice"      // Single choice from Choices
	TypeMultiselect QuestionType = "multiselect" // Any subset of Choices
	TypeConfirm     QuestionType = "confirm"     // Yes/no
	TypeInteger     QuestionType = "integer"
	TypeFloat       QuestionType = "float"
)

// Dependency is one entry of a question's dependency predicate: the
// referenced question must already be answered with exactly Answer.
type Dependency struct {
	QuestionID string
	Answer     string
}

// Question is an immutable question definition. IDs are stable across
// sessions: they key the answer map and are the targets of dependencies.
type Question struct {
	ID       string
	Prompt   string
	Type     QuestionType
	Required bool
	Choices  []string // Present only for choice/multiselect
	Default  string
	HelpText string

	// DependsOn is an AND-of-equalities predicate over prior answers.
	// Empty means unconditionally eligible.
	DependsOn []Dependency
}

// Eligible reports whether every dependency entry matches the given
// answers exactly. An unanswered referenced question means not eligible.
func (q Question) Eligible(answers map[string]string) bool {
	for _, dep := range q.DependsOn {
		got, ok := answers[dep.QuestionID]
		if !ok || got != dep.Answer {
			return false
		}
	}
	return true
}
