package enrich

import (
	"encoding/json"
	"fmt"

	"github.com/prdy/prdy/internal/prd"
)

const analystSystemPrompt = "You are an experienced product manager reviewing product requirements documents. Be specific and actionable."

func gapAnalysisPrompt(content *prd.Content) string {
	return fmt.Sprintf(`Analyze the following PRD for completeness and suggest improvements:

PRD CONTENT:
%s

Identify missing critical information, questions that should still be asked, areas needing more detail, potential risks, and best practices for this type of project.`, contentJSON(content))
}

func enhancementPrompt(content *prd.Content) string {
	return fmt.Sprintf(`Review and enhance the following PRD content:

PRD CONTENT:
%s

Provide enhanced descriptions for unclear sections, additional features or requirements that might be missing, more detailed acceptance criteria, risk mitigation strategies, and implementation recommendations. Respond with prose notes, not JSON.`, contentJSON(content))
}

func technicalRequirementsPrompt(content *prd.Content) string {
	return fmt.Sprintf(`Generate comprehensive technical requirements for a %s in the %s industry.

PROJECT CONTEXT:
%s

Cover performance, security, infrastructure, integration, reliability, and platform-specific requirements. Give measurable criteria for each.`, content.ProductType, content.IndustryType, contentJSON(content))
}

func contentJSON(content *prd.Content) string {
	data, err := json.MarshalIndent(content, "", "  ")
	if err != nil {
		return "{}"
	}
	return string(data)
}
