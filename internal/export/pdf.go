package export

import (
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"

	"github.com/prdy/prdy/internal/prd"
)

// PDF renders the document as a PDF to w.
func PDF(c *prd.Content, w io.Writer) error {
	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()

	// Core fonts are cp1252; translate so bullets and accents survive.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 24)
	pdf.MultiCell(0, 12, tr(c.ProjectName), "", "L", false)
	pdf.Ln(6)

	section := func(title, body string) {
		if body == "" {
			return
		}
		pdf.SetFont("Helvetica", "B", 14)
		pdf.MultiCell(0, 8, tr(title), "", "L", false)
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 6, tr(body), "", "L", false)
		pdf.Ln(4)
	}
	bullets := func(title string, items []string) {
		if len(items) == 0 {
			return
		}
		pdf.SetFont("Helvetica", "B", 14)
		pdf.MultiCell(0, 8, tr(title), "", "L", false)
		pdf.SetFont("Helvetica", "", 11)
		for _, item := range items {
			pdf.MultiCell(0, 6, tr("• "+item), "", "L", false)
		}
		pdf.Ln(4)
	}

	section("Executive Summary", c.ExecutiveSummary)
	section("Problem Statement", c.ProblemStatement)
	section("Target Market", c.TargetMarket)
	section("Value Proposition", c.ValueProposition)
	bullets("Success Metrics", c.SuccessMetrics)

	if len(c.Features) > 0 {
		pdf.SetFont("Helvetica", "B", 14)
		pdf.MultiCell(0, 8, "Key Features", "", "L", false)
		for _, f := range c.Features {
			pdf.SetFont("Helvetica", "B", 11)
			pdf.MultiCell(0, 6, tr(f.Name), "", "L", false)
			pdf.SetFont("Helvetica", "", 11)
			pdf.MultiCell(0, 6, tr(f.Description), "", "L", false)
			pdf.Ln(2)
		}
		pdf.Ln(4)
	}

	var techItems []string
	for _, r := range c.TechnicalRequirements {
		techItems = append(techItems, fmt.Sprintf("%s: %s", titleCase(r.Category), r.Requirement))
	}
	bullets("Technical Requirements", techItems)

	var phases []string
	for _, p := range timelineOrder(c.Timeline) {
		phases = append(phases, fmt.Sprintf("%s: %s", titleCase(p), c.Timeline[p]))
	}
	bullets("Timeline", phases)
	bullets("Compliance Requirements", c.ComplianceRequirements)
	section("AI Analysis", c.EnrichmentNotes)

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("render pdf: %w", err)
	}
	return nil
}
