package prd

import (
	"strings"
	"testing"

	"github.com/prdy/prdy/internal/catalog"
	"github.com/prdy/prdy/internal/interview"
)

func sampleClassification() Classification {
	return Classification{
		Name:        "TrackIt",
		ProductType: catalog.ProductMobileApp,
		Industry:    catalog.IndustryHealthcare,
		Complexity:  catalog.ComplexityComplex,
	}
}

func TestBuild_CoreFields(t *testing.T) {
	answers := interview.Answers{
		"project_name":      "TrackIt",
		"problem_statement": "Patients forget their medication schedule",
		"target_audience":   "Chronically ill patients",
		"value_proposition": "Automatic reminders tied to prescriptions",
		"success_metrics":   "daily active users\nretention after 30 days",
	}

	c := Build(sampleClassification(), answers)

	if c.ProjectName != "TrackIt" {
		t.Errorf("ProjectName = %q", c.ProjectName)
	}
	if c.ProblemStatement != answers["problem_statement"] {
		t.Errorf("ProblemStatement = %q", c.ProblemStatement)
	}
	if len(c.SuccessMetrics) != 2 {
		t.Errorf("SuccessMetrics = %v, want 2 entries", c.SuccessMetrics)
	}
	if !strings.Contains(c.ExecutiveSummary, "TrackIt is a mobile app solution") {
		t.Errorf("ExecutiveSummary = %q", c.ExecutiveSummary)
	}
	if !strings.Contains(c.ExecutiveSummary, "healthcare industry") {
		t.Errorf("ExecutiveSummary should mention the industry, got %q", c.ExecutiveSummary)
	}
}

func TestBuild_FallsBackToSessionName(t *testing.T) {
	c := Build(sampleClassification(), interview.Answers{})
	if c.ProjectName != "TrackIt" {
		t.Errorf("ProjectName = %q, want session name fallback", c.ProjectName)
	}
}

func TestBuild_Features(t *testing.T) {
	answers := interview.Answers{
		"key_features": "Medication reminders\nRefill tracking\nDoctor sharing\nExport history",
	}
	c := Build(sampleClassification(), answers)

	if len(c.Features) != 4 {
		t.Fatalf("got %d features, want 4", len(c.Features))
	}
	for i, f := range c.Features[:3] {
		if f.Priority != "high" {
			t.Errorf("feature %d priority = %q, want high", i, f.Priority)
		}
	}
	if c.Features[3].Priority != "medium" {
		t.Errorf("feature 4 priority = %q, want medium", c.Features[3].Priority)
	}
}

func TestBuild_BusinessRequirements(t *testing.T) {
	answers := interview.Answers{
		"business_model": "Subscription",
		"revenue_goals":  "$100k ARR",
	}
	c := Build(sampleClassification(), answers)

	if len(c.BusinessRequirements) != 2 {
		t.Fatalf("got %d business requirements, want 2", len(c.BusinessRequirements))
	}
	if c.BusinessRequirements[0].Category != "revenue" {
		t.Errorf("first requirement category = %q", c.BusinessRequirements[0].Category)
	}
	if !strings.Contains(c.BusinessRequirements[1].Requirement, "$100k ARR") {
		t.Errorf("second requirement = %q", c.BusinessRequirements[1].Requirement)
	}
}

func TestBuild_OfflineRequirementForMobile(t *testing.T) {
	answers := interview.Answers{"offline_functionality": interview.ConfirmYes}
	c := Build(sampleClassification(), answers)

	found := false
	for _, r := range c.TechnicalRequirements {
		if r.Category == "functionality" {
			found = true
		}
	}
	if !found {
		t.Error("offline answered yes on mobile should add a functionality requirement")
	}

	c = Build(sampleClassification(), interview.Answers{"offline_functionality": interview.ConfirmNo})
	for _, r := range c.TechnicalRequirements {
		if r.Category == "functionality" {
			t.Error("offline answered no should not add a functionality requirement")
		}
	}
}

func TestBuild_ComplianceByIndustry(t *testing.T) {
	c := Build(sampleClassification(), interview.Answers{})
	joined := strings.Join(c.ComplianceRequirements, "\n")
	if !strings.Contains(joined, "HIPAA") {
		t.Errorf("healthcare compliance should mention HIPAA, got %v", c.ComplianceRequirements)
	}
	if !strings.Contains(joined, "GDPR") {
		t.Errorf("GDPR applies to every industry, got %v", c.ComplianceRequirements)
	}

	class := sampleClassification()
	class.Industry = catalog.IndustryGeneral
	c = Build(class, interview.Answers{})
	if len(c.ComplianceRequirements) != 1 || !strings.Contains(c.ComplianceRequirements[0], "GDPR") {
		t.Errorf("general industry should only carry GDPR, got %v", c.ComplianceRequirements)
	}
}

func TestBuild_Timeline(t *testing.T) {
	c := Build(sampleClassification(), interview.Answers{"timeline": "2-4 weeks"})
	if c.Timeline["development"] != "2-3 weeks" {
		t.Errorf("Timeline = %v", c.Timeline)
	}

	// Unknown or unanswered timeline falls back to the middle option.
	c = Build(sampleClassification(), interview.Answers{})
	if c.Timeline["development"] != "3-4 months" {
		t.Errorf("fallback Timeline = %v", c.Timeline)
	}
}

func TestBuild_Personas(t *testing.T) {
	c := Build(sampleClassification(), interview.Answers{})
	if len(c.Personas) != 0 {
		t.Errorf("no primary_users answer should produce no personas, got %d", len(c.Personas))
	}

	c = Build(sampleClassification(), interview.Answers{
		"primary_users": "Nurses at small clinics",
		"user_journey":  "discover, evaluate, adopt",
	})
	if len(c.Personas) != 1 {
		t.Fatalf("got %d personas, want 1", len(c.Personas))
	}
	if len(c.Personas[0].Goals) != 3 {
		t.Errorf("persona goals = %v", c.Personas[0].Goals)
	}
}

func TestParseListField(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", nil},
		{"newlines", "a\nb\nc", []string{"a", "b", "c"}},
		{"commas", "a, b, c", []string{"a", "b", "c"}},
		{"bullets", "• first\n- second\n* third", []string{"first", "second", "third"}},
		{"numbered", "1. first\n2. second", []string{"first", "second"}},
		{"mixed", "- a, b\nc", []string{"a", "b", "c"}},
		{"blank lines", "a\n\n\nb", []string{"a", "b"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseListField(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("item %d: got %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}
