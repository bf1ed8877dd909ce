package components

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/prdy/prdy/internal/ui/theme"
)

// Choice is a single-select option list. Enter submits the highlighted
// option; the chosen value is read back with Value().
type Choice struct {
	Options   []string
	Selected  int
	Submitted bool
}

// NewChoice creates a single-select list over the given options. An
// optional preselected value (a previous answer) starts highlighted.
func NewChoice(options []string, preselected string) Choice {
	c := Choice{Options: options}
	for i, opt := range options {
		if opt == preselected {
			c.Selected = i
			break
		}
	}
	return c
}

// Init returns nil.
func (c Choice) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation and selection.
func (c Choice) Update(msg tea.Msg) (Choice, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if c.Selected > 0 {
			c.Selected--
		}
	case "down", "j":
		if c.Selected < len(c.Options)-1 {
			c.Selected++
		}
	case "enter":
		if len(c.Options) > 0 {
			c.Submitted = true
		}
	}

	return c, nil
}

// Value returns the highlighted option, or "" when the list is empty.
func (c Choice) Value() string {
	if c.Selected < 0 || c.Selected >= len(c.Options) {
		return ""
	}
	return c.Options[c.Selected]
}

// View renders the option list.
func (c Choice) View() string {
	var s string
	for i, opt := range c.Options {
		if i == c.Selected {
			s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("  ▸ "+opt) + "\n"
		} else {
			s += lipgloss.NewStyle().Foreground(theme.Text).Render("    "+opt) + "\n"
		}
	}
	return s
}
