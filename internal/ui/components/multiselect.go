package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/prdy/prdy/internal/ui/theme"
)

// MultiSelect is a checkbox-style option list. Space toggles the
// highlighted option, Enter submits the checked set.
type MultiSelect struct {
	Options   []string
	Cursor    int
	Checked   map[int]bool
	Submitted bool
}

// NewMultiSelect creates a multi-select list. Preselected holds
// previously chosen values to start checked.
func NewMultiSelect(options []string, preselected []string) MultiSelect {
	checked := make(map[int]bool)
	for i, opt := range options {
		for _, pre := range preselected {
			if opt == pre {
				checked[i] = true
			}
		}
	}
	return MultiSelect{
		Options: options,
		Checked: checked,
	}
}

// Init returns nil.
func (m MultiSelect) Init() tea.Cmd {
	return nil
}

// Update handles navigation, toggling, and submission.
func (m MultiSelect) Update(msg tea.Msg) (MultiSelect, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j":
		if m.Cursor < len(m.Options)-1 {
			m.Cursor++
		}
	case "space", " ":
		if m.Cursor >= 0 && m.Cursor < len(m.Options) {
			m.Checked[m.Cursor] = !m.Checked[m.Cursor]
		}
	case "enter":
		m.Submitted = true
	}

	return m, nil
}

// Values returns the checked options in display order.
func (m MultiSelect) Values() []string {
	var out []string
	for i, opt := range m.Options {
		if m.Checked[i] {
			out = append(out, opt)
		}
	}
	return out
}

// Value returns the checked options joined with ", ", the canonical
// stored form of a multi-select answer.
func (m MultiSelect) Value() string {
	return strings.Join(m.Values(), ", ")
}

// View renders the checkbox list.
func (m MultiSelect) View() string {
	var s string
	for i, opt := range m.Options {
		box := "[ ]"
		if m.Checked[i] {
			box = "[x]"
		}
		line := box + " " + opt
		if i == m.Cursor {
			s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("  ▸ "+line) + "\n"
		} else {
			s += lipgloss.NewStyle().Foreground(theme.Text).Render("    "+line) + "\n"
		}
	}
	return s
}
