package enrich

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/prdy/prdy/internal/catalog"
	"github.com/prdy/prdy/internal/llm"
	"github.com/prdy/prdy/internal/prd"
)

func sampleContent() *prd.Content {
	return &prd.Content{
		ProjectName:      "TrackIt",
		ProductType:      catalog.ProductMobileApp,
		IndustryType:     catalog.IndustryHealthcare,
		ComplexityLevel:  catalog.ComplexityModerate,
		ProblemStatement: "Patients forget medication",
	}
}

func TestAnalyzeGaps_NoProvider(t *testing.T) {
	svc := NewService(nil, "")
	res, err := svc.AnalyzeGaps(context.Background(), sampleContent())
	if err != nil {
		t.Fatalf("no provider must not error: %v", err)
	}
	if res.Applied {
		t.Error("Applied should be false without a provider")
	}
	if res.Provider != "none" {
		t.Errorf("provider = %q, want none", res.Provider)
	}
	if !strings.Contains(res.Content, "No AI provider configured") {
		t.Errorf("content = %q", res.Content)
	}
}

func TestAnalyzeGaps_StructuredResponse(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{
			"missing_information": ["No pricing model"],
			"suggested_questions": ["What is the revenue model?"],
			"risks": ["HIPAA audit scope unclear"],
			"recommendations": ["Define success metrics early"]
		}`),
	})
	svc := NewService(mock, "mock")

	res, err := svc.AnalyzeGaps(context.Background(), sampleContent())
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if !res.Applied {
		t.Fatal("Applied should be true")
	}
	for _, want := range []string{
		"Missing information:\n- No pricing model",
		"Risks:\n- HIPAA audit scope unclear",
	} {
		if !strings.Contains(res.Content, want) {
			t.Errorf("rendered analysis missing %q\n%s", want, res.Content)
		}
	}

	// The request carried the structured-output schema.
	if mock.Calls[0].Schema == nil || mock.Calls[0].Schema.Name != "gap-analysis" {
		t.Error("gap analysis should request the gap-analysis schema")
	}
}

func TestAnalyzeGaps_ProviderFailureDegrades(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{},
	})
	svc := NewService(mock, "mock")

	res, err := svc.AnalyzeGaps(context.Background(), sampleContent())
	if err != nil {
		t.Fatalf("provider failure must not propagate: %v", err)
	}
	if res.Applied {
		t.Error("Applied should be false on provider failure")
	}
	if !strings.Contains(res.Content, "AI analysis unavailable") {
		t.Errorf("content = %q", res.Content)
	}
}

func TestEnhance_NoProviderLeavesContentUnmodified(t *testing.T) {
	svc := NewService(nil, "")
	content := sampleContent()

	res, err := svc.Enhance(context.Background(), content)
	if err != nil {
		t.Fatalf("no provider must not error: %v", err)
	}
	if res.Applied {
		t.Error("Applied should be false")
	}
	if content.EnrichmentNotes != "" {
		t.Error("content must stay unmodified without a provider")
	}
}

func TestEnhance_AttachesNotes(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`"Consider adding offline sync details."`),
	})
	svc := NewService(mock, "mock")
	content := sampleContent()

	res, err := svc.Enhance(context.Background(), content)
	if err != nil {
		t.Fatalf("enhance: %v", err)
	}
	if !res.Applied {
		t.Fatal("Applied should be true")
	}
	if content.EnrichmentNotes != "Consider adding offline sync details." {
		t.Errorf("notes = %q", content.EnrichmentNotes)
	}
}

func TestSuggestTechnicalRequirements(t *testing.T) {
	svc := NewService(nil, "")
	res, err := svc.SuggestTechnicalRequirements(context.Background(), sampleContent())
	if err != nil {
		t.Fatalf("no provider must not error: %v", err)
	}
	if !strings.Contains(res.Content, "Basic technical requirements") {
		t.Errorf("content = %q", res.Content)
	}

	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`"99.9% uptime; TLS everywhere."`),
	})
	svc = NewService(mock, "mock")
	res, err = svc.SuggestTechnicalRequirements(context.Background(), sampleContent())
	if err != nil {
		t.Fatalf("suggest: %v", err)
	}
	if !res.Applied || !strings.Contains(res.Content, "99.9% uptime") {
		t.Errorf("result = %+v", res)
	}

	prompt := mock.Calls[0].Messages[0].Content
	if !strings.Contains(prompt, "mobile_app") || !strings.Contains(prompt, "healthcare") {
		t.Error("prompt should name the product type and industry")
	}
}
