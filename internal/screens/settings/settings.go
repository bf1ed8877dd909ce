// Package settings is the preferences screen.
package settings

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/prdy/prdy/internal/router"
	"github.com/prdy/prdy/internal/screen"
	"github.com/prdy/prdy/internal/settings"
	"github.com/prdy/prdy/internal/ui/components"
	"github.com/prdy/prdy/internal/ui/layout"
	"github.com/prdy/prdy/internal/ui/theme"
)

// Cyclable option sets.
var (
	providerOptions = []string{"none", "anthropic", "openai", "gemini", "openrouter", "ollama"}
	formatOptions   = []string{"markdown", "text", "pdf"}
)

// SettingsScreen edits persistent preferences. Enumerated settings cycle
// on Enter; the export directory opens a text editor row.
type SettingsScreen struct {
	mgr *settings.Manager

	current  *settings.Settings
	selected int
	editing  bool
	dirInput components.TextInput
	errMsg   string
}

var _ screen.Screen = (*SettingsScreen)(nil)
var _ screen.KeyHintProvider = (*SettingsScreen)(nil)

// Setting rows, in display order.
const (
	rowProvider = iota
	rowFormat
	rowExportDir
	rowCheckUpdates
	rowReset
	rowCount
)

// New creates the settings screen.
func New(mgr *settings.Manager) *SettingsScreen {
	s := &SettingsScreen{mgr: mgr}
	s.reload()
	return s
}

func (s *SettingsScreen) reload() {
	cur, err := s.mgr.Current()
	if err != nil {
		s.errMsg = err.Error()
		return
	}
	s.current = cur
}

func (s *SettingsScreen) Init() tea.Cmd {
	return nil
}

func (s *SettingsScreen) Title() string {
	return "Settings"
}

func (s *SettingsScreen) KeyHints() []layout.KeyHint {
	if s.editing {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Save"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Change"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *SettingsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if s.editing {
			var cmd tea.Cmd
			s.dirInput, cmd = s.dirInput.Update(msg)
			return s, cmd
		}
		return s, nil
	}

	if s.editing {
		if kmsg.String() == "enter" {
			dir := strings.TrimSpace(s.dirInput.Value())
			if dir != "" {
				s.set("export_directory", dir)
			}
			s.editing = false
			return s, nil
		}
		var cmd tea.Cmd
		s.dirInput, cmd = s.dirInput.Update(msg)
		return s, cmd
	}

	switch kmsg.String() {
	case "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.selected < rowCount-1 {
			s.selected++
		}
	case "enter":
		return s.activate()
	}
	return s, nil
}

func (s *SettingsScreen) activate() (screen.Screen, tea.Cmd) {
	if s.current == nil {
		return s, nil
	}
	switch s.selected {
	case rowProvider:
		s.set("ai_provider", cycle(providerOptions, s.current.AIProvider))
	case rowFormat:
		s.set("default_export_format", cycle(formatOptions, s.current.DefaultExportFormat))
	case rowExportDir:
		s.editing = true
		s.dirInput = components.NewTextInput(s.current.ExportDirectory, false, 0)
		return s, s.dirInput.Init()
	case rowCheckUpdates:
		s.set("check_updates", !s.current.CheckUpdates)
	case rowReset:
		if err := s.mgr.Reset(); err != nil {
			s.errMsg = err.Error()
		} else {
			s.errMsg = "Defaults restored. Restart to apply."
		}
	}
	return s, nil
}

func (s *SettingsScreen) set(key string, value any) {
	if err := s.mgr.Set(key, value); err != nil {
		s.errMsg = err.Error()
		return
	}
	s.errMsg = ""
	s.reload()
}

// cycle returns the option after current, wrapping around.
func cycle(options []string, current string) string {
	for i, opt := range options {
		if opt == current {
			return options[(i+1)%len(options)]
		}
	}
	return options[0]
}

func (s *SettingsScreen) View(width, height int) string {
	if s.current == nil {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render("\n\nError: " + s.errMsg)
	}

	rows := []struct {
		label string
		value string
	}{
		{"AI provider", s.current.AIProvider},
		{"Export format", s.current.DefaultExportFormat},
		{"Export directory", s.current.ExportDirectory},
		{"Check for updates", fmt.Sprintf("%t", s.current.CheckUpdates)},
		{"Reset to defaults", ""},
	}

	var b strings.Builder
	b.WriteString("\n\n")

	for i, row := range rows {
		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		value := row.value
		if i == rowExportDir && s.editing {
			value = s.dirInput.View()
		}

		line := fmt.Sprintf("%s%-20s %s", prefix, row.label, value)
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}

	if s.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Accent).
			Render(s.errMsg))
	}

	return b.String()
}
