package catalog

import "slices"

// engine holds the static question catalog, partitioned by category.
// Category slices keep their declared order; axis-keyed categories map
// an axis variant to its slice.
type engine struct {
	basic             []Question
	businessBasic     []Question
	businessDetailed  []Question // Superset extending businessBasic
	technical         map[ProductType][]Question
	userResearch      []Question
	features          map[ProductType][]Question
	compliance        map[IndustryType][]Question
	projectManagement []Question

	all  []Question // Every question once, in catalog declaration order
	byID map[string]*Question
}

// e is the package-level engine singleton, set by init() in seed.go.
var e *engine

// buildEngine assembles the lookup indices. The category slices come
// from seed.go and are never mutated afterwards. businessBasic is a
// prefix of businessDetailed, so only the detailed slice contributes to
// the flat list; every other declaration is included as-is so that
// validation sees duplicate IDs instead of silently deduplicating them.
func buildEngine(en *engine) *engine {
	en.all = append(en.all, en.basic...)
	en.all = append(en.all, en.businessDetailed...)
	for _, p := range AllProductTypes() {
		en.all = append(en.all, en.technical[p]...)
	}
	en.all = append(en.all, en.userResearch...)
	for _, p := range AllProductTypes() {
		en.all = append(en.all, en.features[p]...)
	}
	for _, i := range AllIndustryTypes() {
		en.all = append(en.all, en.compliance[i]...)
	}
	en.all = append(en.all, en.projectManagement...)

	en.byID = make(map[string]*Question, len(en.all))
	for i := range en.all {
		if _, seen := en.byID[en.all[i].ID]; !seen {
			en.byID[en.all[i].ID] = &en.all[i]
		}
	}

	return en
}

// QuestionsForProduct assembles the ordered question list for a
// classification triple. Categories are concatenated in a fixed order;
// within each category the catalog's declared order is preserved.
// Unregistered axis values degrade to empty slices rather than failing:
// an unknown combination must never abort an interview.
func QuestionsForProduct(product ProductType, industry IndustryType, complexity ComplexityLevel) []Question {
	var questions []Question

	// Universal basic questions always come first.
	questions = append(questions, e.basic...)

	if complexity.IsDetailed() {
		questions = append(questions, e.businessDetailed...)
	} else {
		questions = append(questions, e.businessBasic...)
	}

	questions = append(questions, e.technical[product]...)

	if complexity != ComplexitySimple {
		questions = append(questions, e.userResearch...)
	}

	questions = append(questions, e.features[product]...)

	if industry != IndustryGeneral {
		questions = append(questions, e.compliance[industry]...)
	}

	if complexity.IsDetailed() {
		questions = append(questions, e.projectManagement...)
	}

	return questions
}

// FilterByDependencies returns the order-preserving subsequence of
// questions whose dependency predicate holds against the given answers.
// Questions without dependencies are always included. A dependency on a
// question that has no answer yet excludes the dependent question, so
// callers can re-filter after every new answer and newly-eligible
// questions surface on the next pass. Neither argument is mutated.
func FilterByDependencies(questions []Question, answers map[string]string) []Question {
	filtered := make([]Question, 0, len(questions))
	for _, q := range questions {
		if q.Eligible(answers) {
			filtered = append(filtered, q)
		}
	}
	return filtered
}

// Get returns a question by ID from the catalog.
func Get(id string) (Question, bool) {
	q, ok := e.byID[id]
	if !ok {
		return Question{}, false
	}
	return *q, true
}

// AllQuestions returns every catalog question once, in declaration order.
func AllQuestions() []Question {
	return slices.Clone(e.all)
}

// Validate checks the catalog for structural issues. It runs at init;
// exported so tests can assert the startup invariant directly.
func Validate() error {
	return validateQuestions(e.all)
}
