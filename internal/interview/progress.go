package interview

import "github.com/prdy/prdy/internal/catalog"

// NextQuestion returns the first currently-eligible question that has no
// recorded answer, re-evaluating dependency eligibility against the
// answers gathered so far. It returns false when the pass is complete.
// Because eligibility is re-derived on every call, questions whose
// dependencies were just satisfied surface on the next iteration.
func NextQuestion(questions []catalog.Question, answers Answers) (catalog.Question, bool) {
	for _, q := range catalog.FilterByDependencies(questions, answers) {
		if _, answered := answers[q.ID]; !answered {
			return q, true
		}
	}
	return catalog.Question{}, false
}

// Remaining returns how many eligible questions are still unanswered.
func Remaining(questions []catalog.Question, answers Answers) int {
	n := 0
	for _, q := range catalog.FilterByDependencies(questions, answers) {
		if _, answered := answers[q.ID]; !answered {
			n++
		}
	}
	return n
}

// Completion returns the interview completion percentage: answered
// eligible questions over all currently-eligible questions. An empty
// eligible set counts as complete; an empty question list is a valid
// state, not an error.
func Completion(questions []catalog.Question, answers Answers) int {
	eligible := catalog.FilterByDependencies(questions, answers)
	if len(eligible) == 0 {
		return 100
	}
	answered := 0
	for _, q := range eligible {
		if v, ok := answers[q.ID]; ok && v != "" {
			answered++
		}
	}
	pct := answered * 100 / len(eligible)
	if pct > 100 {
		pct = 100
	}
	return pct
}
