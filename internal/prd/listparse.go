package prd

import "strings"

// ParseListField splits a free-text answer into list items. Answers
// arrive as comma-separated, newline-separated, or bulleted text;
// bullet markers and list numbering are stripped.
func ParseListField(value string) []string {
	if value == "" {
		return nil
	}

	var items []string
	for _, line := range strings.Split(value, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		line = strings.TrimLeft(line, "•-*123456789. ")
		if line == "" {
			continue
		}
		if strings.Contains(line, ",") {
			for _, item := range strings.Split(line, ",") {
				if item = strings.TrimSpace(item); item != "" {
					items = append(items, item)
				}
			}
		} else {
			items = append(items, line)
		}
	}
	return items
}
