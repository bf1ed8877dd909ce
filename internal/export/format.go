// Package export renders synthesized documents to files.
package export

import "fmt"

// Format is an output document format.
type Format string

const (
	FormatMarkdown Format = "markdown"
	FormatText     Format = "text"
	FormatPDF      Format = "pdf"
)

// AllFormats in display order.
func AllFormats() []Format {
	return []Format{FormatMarkdown, FormatText, FormatPDF}
}

// ParseFormat accepts format names and common aliases.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "markdown", "md":
		return FormatMarkdown, nil
	case "text", "txt", "plain":
		return FormatText, nil
	case "pdf":
		return FormatPDF, nil
	}
	return "", fmt.Errorf("unknown export format %q (want markdown, text, or pdf)", s)
}

// Ext returns the file extension for the format, dot included.
func (f Format) Ext() string {
	switch f {
	case FormatMarkdown:
		return ".md"
	case FormatText:
		return ".txt"
	case FormatPDF:
		return ".pdf"
	}
	return ".txt"
}
