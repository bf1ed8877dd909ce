package interview

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/prdy/prdy/internal/catalog"
)

// Answers is the session-scoped answer map, keyed by question ID.
// Values are canonical strings: confirm answers are "yes"/"no",
// multiselect answers are the chosen options joined with ", ".
// The map is append-only during an interview pass.
type Answers map[string]string

// ConfirmYes and ConfirmNo are the canonical confirm answer values.
// Dependency predicates in the catalog match against these.
const (
	ConfirmYes = "yes"
	ConfirmNo  = "no"
)

// Set validates raw input against the question's type, coerces it to
// canonical form, and records it. Empty input falls back to the
// question's default when one is declared.
func (a Answers) Set(q catalog.Question, raw string) error {
	value, err := Coerce(q, raw)
	if err != nil {
		return err
	}
	a[q.ID] = value
	return nil
}

// Get returns the recorded answer for a question ID.
func (a Answers) Get(id string) (string, bool) {
	v, ok := a[id]
	return v, ok
}

// Bool interprets a confirm answer.
func (a Answers) Bool(id string) bool {
	return a[id] == ConfirmYes
}

// Int parses an integer answer, returning 0 when absent or malformed.
func (a Answers) Int(id string) int {
	n, err := strconv.Atoi(a[id])
	if err != nil {
		return 0
	}
	return n
}

// List splits a multiselect answer back into its options.
func (a Answers) List(id string) []string {
	v := a[id]
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ", ")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Coerce validates raw input for a question and returns the canonical
// stored form.
func Coerce(q catalog.Question, raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" && q.Default != "" {
		raw = q.Default
	}

	switch q.Type {
	case catalog.TypeText:
		return raw, nil

	case catalog.TypeChoice:
		for _, c := range q.Choices {
			if strings.EqualFold(c, raw) {
				return c, nil
			}
		}
		return "", fmt.Errorf("answer %q is not one of the choices for %s", raw, q.ID)

	case catalog.TypeMultiselect:
		if raw == "" {
			return "", nil
		}
		var chosen []string
		for _, part := range strings.Split(raw, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			matched := ""
			for _, c := range q.Choices {
				if strings.EqualFold(c, part) {
					matched = c
					break
				}
			}
			if matched == "" {
				return "", fmt.Errorf("answer %q is not one of the choices for %s", part, q.ID)
			}
			chosen = append(chosen, matched)
		}
		return strings.Join(chosen, ", "), nil

	case catalog.TypeConfirm:
		switch strings.ToLower(raw) {
		case "yes", "y", "true", "1":
			return ConfirmYes, nil
		case "no", "n", "false", "0", "":
			return ConfirmNo, nil
		}
		return "", fmt.Errorf("answer %q for %s must be yes or no", raw, q.ID)

	case catalog.TypeInteger:
		if raw == "" {
			return "", nil
		}
		if _, err := strconv.Atoi(raw); err != nil {
			return "", fmt.Errorf("answer for %s must be an integer: %w", q.ID, err)
		}
		return raw, nil

	case catalog.TypeFloat:
		if raw == "" {
			return "", nil
		}
		if _, err := strconv.ParseFloat(raw, 64); err != nil {
			return "", fmt.Errorf("answer for %s must be a number: %w", q.ID, err)
		}
		return raw, nil
	}

	return "", fmt.Errorf("unknown question type %q", q.Type)
}
