package export

import (
	"fmt"
	"strings"

	"github.com/prdy/prdy/internal/prd"
)

// Text renders the document as plain text.
func Text(c *prd.Content) string {
	var b strings.Builder

	b.WriteString(c.ProjectName + "\n")
	b.WriteString(strings.Repeat("=", len(c.ProjectName)) + "\n\n")

	fmt.Fprintf(&b, "EXECUTIVE SUMMARY\n%s\n\n", c.ExecutiveSummary)
	fmt.Fprintf(&b, "PROBLEM STATEMENT\n%s\n\n", c.ProblemStatement)
	fmt.Fprintf(&b, "TARGET MARKET\n%s\n\n", c.TargetMarket)
	fmt.Fprintf(&b, "VALUE PROPOSITION\n%s\n\n", c.ValueProposition)

	b.WriteString("SUCCESS METRICS\n")
	for _, m := range c.SuccessMetrics {
		fmt.Fprintf(&b, "• %s\n", m)
	}
	b.WriteString("\n")

	b.WriteString("KEY FEATURES\n")
	for _, f := range c.Features {
		fmt.Fprintf(&b, "%s: %s\n", f.Name, f.Description)
	}
	b.WriteString("\n")

	b.WriteString("TECHNICAL REQUIREMENTS\n")
	for _, r := range c.TechnicalRequirements {
		fmt.Fprintf(&b, "• %s: %s\n", strings.ToUpper(r.Category), r.Requirement)
	}
	b.WriteString("\n")

	b.WriteString("TIMELINE\n")
	for _, phase := range timelineOrder(c.Timeline) {
		fmt.Fprintf(&b, "• %s: %s\n", strings.ToUpper(phase), c.Timeline[phase])
	}
	b.WriteString("\n")

	b.WriteString("COMPLIANCE REQUIREMENTS\n")
	for _, r := range c.ComplianceRequirements {
		fmt.Fprintf(&b, "• %s\n", r)
	}

	if c.EnrichmentNotes != "" {
		fmt.Fprintf(&b, "\nAI ANALYSIS\n%s\n", c.EnrichmentNotes)
	}

	return b.String()
}
