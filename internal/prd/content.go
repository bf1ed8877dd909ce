package prd

import "github.com/prdy/prdy/internal/catalog"

// Persona describes one user persona in the document.
type Persona struct {
	Name               string         `json:"name"`
	Role               string         `json:"role"`
	Goals              []string       `json:"goals"`
	PainPoints         []string       `json:"pain_points"`
	TechnicalExpertise string         `json:"technical_expertise"`
	Demographics       map[string]any `json:"demographics,omitempty"`
}

// Feature is one product feature specification.
type Feature struct {
	Name               string   `json:"name"`
	Description        string   `json:"description"`
	Priority           string   `json:"priority"` // high, medium, low
	Complexity         string   `json:"complexity"`
	AcceptanceCriteria []string `json:"acceptance_criteria"`
	Dependencies       []string `json:"dependencies,omitempty"`
	UserStories        []string `json:"user_stories,omitempty"`
}

// TechnicalRequirement is a measurable technical constraint.
type TechnicalRequirement struct {
	Category           string `json:"category"` // performance, security, functionality, ...
	Requirement        string `json:"requirement"`
	MeasurableCriteria string `json:"measurable_criteria"`
	Priority           string `json:"priority"`
}

// BusinessRequirement is a business-level constraint with an owner.
type BusinessRequirement struct {
	Category        string `json:"category"` // revenue, financial, compliance, ...
	Requirement     string `json:"requirement"`
	SuccessCriteria string `json:"success_criteria"`
	Stakeholder     string `json:"stakeholder"`
}

// Milestone is a named project checkpoint.
type Milestone struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Content is the complete synthesized PRD structure. It is what the
// export renderers and the AI enrichment step consume; it carries no
// reference to how questions were selected.
type Content struct {
	ProjectName      string                  `json:"project_name"`
	ExecutiveSummary string                  `json:"executive_summary"`
	ProductType      catalog.ProductType     `json:"product_type"`
	IndustryType     catalog.IndustryType    `json:"industry_type"`
	ComplexityLevel  catalog.ComplexityLevel `json:"complexity_level"`

	ProblemStatement     string                 `json:"problem_statement"`
	TargetMarket         string                 `json:"target_market"`
	ValueProposition     string                 `json:"value_proposition"`
	SuccessMetrics       []string               `json:"success_metrics"`
	BusinessRequirements []BusinessRequirement  `json:"business_requirements,omitempty"`

	Personas []Persona `json:"personas,omitempty"`

	Features              []Feature              `json:"features,omitempty"`
	TechnicalRequirements []TechnicalRequirement `json:"technical_requirements,omitempty"`

	Timeline   map[string]string `json:"timeline,omitempty"`
	Milestones []Milestone       `json:"milestones,omitempty"`

	ComplianceRequirements []string `json:"compliance_requirements,omitempty"`

	// EnrichmentNotes holds AI-generated analysis appended after
	// synthesis. Empty when no AI provider is configured.
	EnrichmentNotes string `json:"enrichment_notes,omitempty"`
}
