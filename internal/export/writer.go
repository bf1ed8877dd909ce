package export

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/prdy/prdy/internal/prd"
)

// Filename builds the export filename: sanitized session name plus a
// timestamp plus the format extension.
func Filename(name string, f Format, now time.Time) string {
	return sanitizeName(name) + "_" + now.Format("20060102_150405") + f.Ext()
}

func sanitizeName(name string) string {
	var b strings.Builder
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == ' ' || r == '-' || r == '_' {
			b.WriteRune(r)
		}
	}
	s := strings.TrimRight(b.String(), " ")
	s = strings.ReplaceAll(s, " ", "_")
	if s == "" {
		s = "untitled"
	}
	return s
}

// WriteFile renders the document in the given format and writes it under
// dir, creating the directory if needed. If the PDF renderer fails the
// document is written as plain text instead. Returns the written path.
func WriteFile(c *prd.Content, name string, f Format, dir string, now time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create export directory: %w", err)
	}

	var data []byte
	switch f {
	case FormatMarkdown:
		data = []byte(Markdown(c))
	case FormatText:
		data = []byte(Text(c))
	case FormatPDF:
		var buf bytes.Buffer
		if err := PDF(c, &buf); err != nil {
			f = FormatText
			data = []byte(Text(c))
		} else {
			data = buf.Bytes()
		}
	default:
		return "", fmt.Errorf("unknown export format %q", f)
	}

	path := filepath.Join(dir, Filename(name, f, now))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write export: %w", err)
	}
	return path, nil
}
