package catalog

import (
	"fmt"
	"strings"
)

// validateQuestions performs all structural checks on the given question
// set. Returns a combined error describing all problems found, or nil.
//
// A dependency cycle would otherwise be silent at runtime: the filter
// treats an unanswered dependency as "not yet eligible", so cyclic
// questions would simply never be asked. Catching that here turns a
// catalog authoring bug into a startup failure.
func validateQuestions(questions []Question) error {
	var errs []string

	idSet := make(map[string]bool, len(questions))
	for _, q := range questions {
		if idSet[q.ID] {
			errs = append(errs, fmt.Sprintf("duplicate question ID: %q", q.ID))
		}
		idSet[q.ID] = true
	}

	for _, q := range questions {
		for _, dep := range q.DependsOn {
			if dep.QuestionID == q.ID {
				errs = append(errs, fmt.Sprintf("question %q depends on itself", q.ID))
				continue
			}
			if !idSet[dep.QuestionID] {
				errs = append(errs, fmt.Sprintf("question %q references nonexistent question %q", q.ID, dep.QuestionID))
			}
		}
	}

	// Choices must be present exactly for choice/multiselect questions.
	for _, q := range questions {
		switch q.Type {
		case TypeChoice, TypeMultiselect:
			if len(q.Choices) == 0 {
				errs = append(errs, fmt.Sprintf("question %q has type %s but no choices", q.ID, q.Type))
			}
		default:
			if len(q.Choices) > 0 {
				errs = append(errs, fmt.Sprintf("question %q has type %s but declares choices", q.ID, q.Type))
			}
		}
	}

	// Cycle check over dependency edges using Kahn's algorithm.
	inDegree := make(map[string]int, len(questions))
	adjList := make(map[string][]string)
	for _, q := range questions {
		inDegree[q.ID] = len(q.DependsOn)
		for _, dep := range q.DependsOn {
			adjList[dep.QuestionID] = append(adjList[dep.QuestionID], q.ID)
		}
	}

	var queue []string
	for _, q := range questions {
		if inDegree[q.ID] == 0 {
			queue = append(queue, q.ID)
		}
	}

	visited := 0
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		visited++
		for _, depID := range adjList[id] {
			inDegree[depID]--
			if inDegree[depID] == 0 {
				queue = append(queue, depID)
			}
		}
	}

	if visited < len(questions) {
		var cycleNodes []string
		for _, q := range questions {
			if inDegree[q.ID] > 0 {
				cycleNodes = append(cycleNodes, q.ID)
			}
		}
		errs = append(errs, fmt.Sprintf("dependency cycle involving questions: %s", strings.Join(cycleNodes, ", ")))
	}

	if len(errs) > 0 {
		return fmt.Errorf("question catalog validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
