package export

import (
	"fmt"
	"strings"

	"github.com/prdy/prdy/internal/prd"
)

// Markdown renders the document as a Markdown string.
func Markdown(c *prd.Content) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", c.ProjectName)

	fmt.Fprintf(&b, "## Executive Summary\n%s\n\n", c.ExecutiveSummary)
	fmt.Fprintf(&b, "## Problem Statement\n%s\n\n", c.ProblemStatement)
	fmt.Fprintf(&b, "## Target Market\n%s\n\n", c.TargetMarket)
	fmt.Fprintf(&b, "## Value Proposition\n%s\n\n", c.ValueProposition)

	b.WriteString("## Success Metrics\n")
	for _, m := range c.SuccessMetrics {
		fmt.Fprintf(&b, "- %s\n", m)
	}
	b.WriteString("\n")

	b.WriteString("## Key Features\n")
	for _, f := range c.Features {
		fmt.Fprintf(&b, "### %s\n%s\n\n", f.Name, f.Description)
	}

	b.WriteString("## Technical Requirements\n")
	for _, r := range c.TechnicalRequirements {
		fmt.Fprintf(&b, "- **%s**: %s\n", titleCase(r.Category), r.Requirement)
	}
	b.WriteString("\n")

	b.WriteString("## Timeline\n")
	for _, phase := range timelineOrder(c.Timeline) {
		fmt.Fprintf(&b, "- **%s**: %s\n", titleCase(phase), c.Timeline[phase])
	}
	b.WriteString("\n")

	b.WriteString("## Compliance Requirements\n")
	for _, r := range c.ComplianceRequirements {
		fmt.Fprintf(&b, "- %s\n", r)
	}

	if c.EnrichmentNotes != "" {
		fmt.Fprintf(&b, "\n## AI Analysis\n%s\n", c.EnrichmentNotes)
	}

	return b.String()
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// timelineOrder keeps the phases in lifecycle order rather than map order.
func timelineOrder(timeline map[string]string) []string {
	var phases []string
	for _, p := range []string{"planning", "development", "testing"} {
		if _, ok := timeline[p]; ok {
			phases = append(phases, p)
		}
	}
	for p := range timeline {
		switch p {
		case "planning", "development", "testing":
		default:
			phases = append(phases, p)
		}
	}
	return phases
}
