// Package tasks shows a session's delivery plan and lets the user move
// tasks through their lifecycle.
package tasks

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/prdy/prdy/internal/router"
	"github.com/prdy/prdy/internal/screen"
	"github.com/prdy/prdy/internal/store"
	"github.com/prdy/prdy/internal/ui/layout"
	"github.com/prdy/prdy/internal/ui/theme"
)

type tasksLoadedMsg struct {
	Tasks []*store.Task
	Err   error
}

type statusSavedMsg struct {
	Err error
}

// TasksScreen lists a session's tasks.
type TasksScreen struct {
	st        *store.Store
	sessionID string

	tasks    []*store.Task
	selected int
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*TasksScreen)(nil)
var _ screen.KeyHintProvider = (*TasksScreen)(nil)

// New creates the tasks screen for a session.
func New(st *store.Store, sessionID string) *TasksScreen {
	return &TasksScreen{st: st, sessionID: sessionID}
}

func (s *TasksScreen) Init() tea.Cmd {
	return s.load()
}

func (s *TasksScreen) load() tea.Cmd {
	st, id := s.st, s.sessionID
	return func() tea.Msg {
		tasks, err := st.Tasks().BySession(context.Background(), id)
		return tasksLoadedMsg{Tasks: tasks, Err: err}
	}
}

func (s *TasksScreen) Title() string {
	return "Tasks"
}

func (s *TasksScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Advance status"},
		{Key: "B", Description: "Block"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *TasksScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tasksLoadedMsg:
		s.loaded = true
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.tasks = msg.Tasks
			if s.selected >= len(s.tasks) && len(s.tasks) > 0 {
				s.selected = len(s.tasks) - 1
			}
		}
		return s, nil

	case statusSavedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		return s, s.load()

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.tasks)-1 {
				s.selected++
			}
		case "enter":
			if t := s.current(); t != nil {
				return s, s.setStatus(t.Identifier, nextStatus(t.Status))
			}
		case "b", "B":
			if t := s.current(); t != nil && t.Status != store.TaskCompleted {
				return s, s.setStatus(t.Identifier, store.TaskBlocked)
			}
		}
	}
	return s, nil
}

func (s *TasksScreen) current() *store.Task {
	if s.selected < 0 || s.selected >= len(s.tasks) {
		return nil
	}
	return s.tasks[s.selected]
}

func (s *TasksScreen) setStatus(identifier string, status store.TaskStatus) tea.Cmd {
	st := s.st
	return func() tea.Msg {
		err := st.Tasks().UpdateStatus(context.Background(), identifier, status)
		return statusSavedMsg{Err: err}
	}
}

// nextStatus advances the lifecycle; completed wraps back to pending so
// a mis-click is recoverable.
func nextStatus(status store.TaskStatus) store.TaskStatus {
	switch status {
	case store.TaskPending, store.TaskBlocked:
		return store.TaskInProgress
	case store.TaskInProgress:
		return store.TaskCompleted
	default:
		return store.TaskPending
	}
}

func (s *TasksScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render("\n\nError: " + s.errMsg)
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading tasks...")
	}
	if len(s.tasks) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No tasks for this session.")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, t := range s.tasks {
		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		deps := ""
		if len(t.Dependencies) > 0 {
			deps = "  needs " + strings.Join(t.Dependencies, ", ")
		}

		line := fmt.Sprintf("%s%s  [%s]  %s  %dh%s",
			prefix, t.Identifier, statusGlyph(t.Status), t.Title, t.EstimatedHours, deps)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		switch {
		case i == s.selected:
			style = style.Foreground(theme.Primary).Bold(true)
		case t.Status == store.TaskCompleted:
			style = style.Foreground(theme.Success)
		case t.Status == store.TaskBlocked:
			style = style.Foreground(theme.Error)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")

		if i == s.selected {
			detail := fmt.Sprintf("    %s  ·  %s priority  ·  %s",
				t.Description, t.Priority, t.Difficulty)
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.TextDim).Render(detail)))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func statusGlyph(status store.TaskStatus) string {
	switch status {
	case store.TaskCompleted:
		return "x"
	case store.TaskInProgress:
		return "~"
	case store.TaskBlocked:
		return "!"
	default:
		return " "
	}
}
