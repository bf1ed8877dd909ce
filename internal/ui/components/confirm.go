package components

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/prdy/prdy/internal/ui/theme"
)

// Confirm is a yes/no toggle. Left/right (or y/n) move the selection,
// Enter submits.
type Confirm struct {
	Yes       bool
	Submitted bool
}

// NewConfirm creates a confirm toggle with the given starting value.
func NewConfirm(yes bool) Confirm {
	return Confirm{Yes: yes}
}

// Init returns nil.
func (c Confirm) Init() tea.Cmd {
	return nil
}

// Update handles toggling and submission.
func (c Confirm) Update(msg tea.Msg) (Confirm, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch kmsg.String() {
	case "left", "h", "y", "Y":
		c.Yes = true
	case "right", "l", "n", "N":
		c.Yes = false
	case "up", "down", "k", "j", "tab":
		c.Yes = !c.Yes
	case "enter":
		c.Submitted = true
	}

	return c, nil
}

// Value returns the stored answer form: "yes" or "no".
func (c Confirm) Value() string {
	if c.Yes {
		return "yes"
	}
	return "no"
}

// View renders the two options side by side.
func (c Confirm) View() string {
	render := func(label string, active bool) string {
		if active {
			return lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("▸ " + label)
		}
		return lipgloss.NewStyle().Foreground(theme.TextDim).Render("  " + label)
	}
	return "  " + render("Yes", c.Yes) + "      " + render("No", !c.Yes)
}
