package prd

import (
	"fmt"
	"strings"

	"github.com/prdy/prdy/internal/catalog"
	"github.com/prdy/prdy/internal/interview"
)

// Classification carries the session's three axis values into synthesis.
type Classification struct {
	Name        string
	ProductType catalog.ProductType
	Industry    catalog.IndustryType
	Complexity  catalog.ComplexityLevel
}

// Build synthesizes a complete Content from the collected answers.
// It is a pure function: unanswered fields produce empty sections, not
// errors, and it does not care which questions were actually asked.
func Build(class Classification, answers interview.Answers) *Content {
	name := answers["project_name"]
	if name == "" {
		name = class.Name
	}

	c := &Content{
		ProjectName:      name,
		ProductType:      class.ProductType,
		IndustryType:     class.Industry,
		ComplexityLevel:  class.Complexity,
		ProblemStatement: answers["problem_statement"],
		TargetMarket:     answers["target_audience"],
		ValueProposition: answers["value_proposition"],
		SuccessMetrics:   ParseListField(answers["success_metrics"]),
	}
	c.ExecutiveSummary = buildExecutiveSummary(class, name, answers)
	c.BusinessRequirements = buildBusinessRequirements(answers)
	c.Personas = buildPersonas(answers)
	c.Features = buildFeatures(answers)
	c.TechnicalRequirements = buildTechnicalRequirements(class, answers)
	c.ComplianceRequirements = buildComplianceRequirements(class.Industry)
	c.Timeline = buildTimeline(answers)
	c.Milestones = standardMilestones()

	return c
}

func buildExecutiveSummary(class Classification, name string, answers interview.Answers) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s is a %s solution", name, strings.ReplaceAll(string(class.ProductType), "_", " "))

	if problem := answers["problem_statement"]; problem != "" {
		fmt.Fprintf(&b, " that addresses %s.", strings.ToLower(problem))
	} else {
		b.WriteString(".")
	}

	if vp := answers["value_proposition"]; vp != "" {
		fmt.Fprintf(&b, " Our unique value proposition is %s.", strings.ToLower(vp))
	}

	fmt.Fprintf(&b, " This is %s targeted at the %s industry.",
		complexityDescription(class.Complexity),
		strings.ReplaceAll(string(class.Industry), "_", " "))

	return b.String()
}

func complexityDescription(c catalog.ComplexityLevel) string {
	switch c {
	case catalog.ComplexitySimple:
		return "a streamlined solution designed for rapid deployment"
	case catalog.ComplexityModerate:
		return "a comprehensive solution with standard features"
	case catalog.ComplexityComplex:
		return "an advanced solution with sophisticated capabilities"
	case catalog.ComplexityEnterprise:
		return "an enterprise-grade solution with comprehensive features"
	default:
		return "a solution"
	}
}

func buildBusinessRequirements(answers interview.Answers) []BusinessRequirement {
	var reqs []BusinessRequirement

	if model := answers["business_model"]; model != "" {
		reqs = append(reqs, BusinessRequirement{
			Category:        "revenue",
			Requirement:     fmt.Sprintf("Implement %s business model", strings.ToLower(model)),
			SuccessCriteria: "Revenue model successfully integrated and operational",
			Stakeholder:     "Business Development",
		})
	}

	if goals := answers["revenue_goals"]; goals != "" {
		reqs = append(reqs, BusinessRequirement{
			Category:        "financial",
			Requirement:     fmt.Sprintf("Achieve revenue targets: %s", goals),
			SuccessCriteria: "Meet or exceed stated revenue goals",
			Stakeholder:     "Finance",
		})
	}

	return reqs
}

func buildPersonas(answers interview.Answers) []Persona {
	primary := answers["primary_users"]
	if primary == "" {
		return nil
	}

	return []Persona{{
		Name:               "Primary User",
		Role:               "End User",
		Goals:              ParseListField(answers["user_journey"]),
		PainPoints:         ParseListField(answers["problem_statement"]),
		TechnicalExpertise: "Varies",
		Demographics:       map[string]any{"description": primary},
	}}
}

func buildFeatures(answers interview.Answers) []Feature {
	list := ParseListField(answers["key_features"])
	features := make([]Feature, 0, len(list))

	for i, f := range list {
		priority := "medium"
		if i < 3 {
			priority = "high"
		}
		features = append(features, Feature{
			Name:               fmt.Sprintf("Feature %d", i+1),
			Description:        f,
			Priority:           priority,
			Complexity:         string(catalog.ComplexityModerate),
			AcceptanceCriteria: []string{fmt.Sprintf("User can %s", strings.ToLower(f))},
			UserStories:        []string{fmt.Sprintf("As a user, I want to %s", strings.ToLower(f))},
		})
	}

	return features
}

func buildTechnicalRequirements(class Classification, answers interview.Answers) []TechnicalRequirement {
	reqs := []TechnicalRequirement{
		{
			Category:           "performance",
			Requirement:        "Page load time under 3 seconds",
			MeasurableCriteria: "95% of pages load within 3 seconds",
			Priority:           "high",
		},
		{
			Category:           "security",
			Requirement:        "Secure data transmission and storage",
			MeasurableCriteria: "All data encrypted in transit and at rest",
			Priority:           "high",
		},
	}

	if class.ProductType == catalog.ProductMobileApp && answers.Bool("offline_functionality") {
		reqs = append(reqs, TechnicalRequirement{
			Category:           "functionality",
			Requirement:        "Offline functionality support",
			MeasurableCriteria: "Core features work without internet connection",
			Priority:           "medium",
		})
	}

	return reqs
}

func buildComplianceRequirements(industry catalog.IndustryType) []string {
	var reqs []string

	switch industry {
	case catalog.IndustryHealthcare:
		reqs = append(reqs,
			"HIPAA compliance for protected health information",
			"Patient data encryption and access controls",
			"Audit trail for all data access",
		)
	case catalog.IndustryFinance:
		reqs = append(reqs,
			"PCI DSS compliance for payment processing",
			"SOX compliance for financial reporting",
			"Know Your Customer (KYC) procedures",
		)
	}

	// Applies to any product with EU users.
	reqs = append(reqs, "GDPR compliance for EU users")

	return reqs
}

var timelinePhases = map[string]map[string]string{
	"2-4 weeks":   {"planning": "1 week", "development": "2-3 weeks", "testing": "1 week"},
	"1-3 months":  {"planning": "2 weeks", "development": "6-10 weeks", "testing": "2 weeks"},
	"3-6 months":  {"planning": "1 month", "development": "3-4 months", "testing": "1 month"},
	"6-12 months": {"planning": "2 months", "development": "6-8 months", "testing": "2 months"},
	"12+ months":  {"planning": "3 months", "development": "9+ months", "testing": "3 months"},
}

func buildTimeline(answers interview.Answers) map[string]string {
	selected := answers["timeline"]
	if phases, ok := timelinePhases[selected]; ok {
		return phases
	}
	return timelinePhases["3-6 months"]
}

func standardMilestones() []Milestone {
	return []Milestone{
		{Name: "Requirements Complete", Description: "All requirements gathered and documented"},
		{Name: "Design Complete", Description: "UI/UX design finalized and approved"},
		{Name: "Development Phase 1", Description: "Core features implemented"},
		{Name: "Testing Phase", Description: "Comprehensive testing completed"},
		{Name: "Launch", Description: "Product launched to production"},
	}
}
