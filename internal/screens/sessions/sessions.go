// Package sessions lists saved sessions and routes into them.
package sessions

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/prdy/prdy/internal/catalog"
	"github.com/prdy/prdy/internal/enrich"
	"github.com/prdy/prdy/internal/router"
	"github.com/prdy/prdy/internal/screen"
	interviewscreen "github.com/prdy/prdy/internal/screens/interview"
	summaryscreen "github.com/prdy/prdy/internal/screens/summary"
	"github.com/prdy/prdy/internal/settings"
	"github.com/prdy/prdy/internal/store"
	"github.com/prdy/prdy/internal/ui/layout"
	"github.com/prdy/prdy/internal/ui/theme"
)

type sessionsLoadedMsg struct {
	Sessions []*store.Session
	Err      error
}

type deletedMsg struct {
	Err error
}

// SessionsScreen lists saved sessions, most recently updated first.
type SessionsScreen struct {
	st  *store.Store
	mgr *settings.Manager
	svc *enrich.Service

	sessions   []*store.Session
	selected   int
	confirming bool // pending delete confirmation
	loaded     bool
	errMsg     string
}

var _ screen.Screen = (*SessionsScreen)(nil)
var _ screen.KeyHintProvider = (*SessionsScreen)(nil)

// New creates the sessions list screen.
func New(st *store.Store, mgr *settings.Manager, svc *enrich.Service) *SessionsScreen {
	return &SessionsScreen{st: st, mgr: mgr, svc: svc}
}

func (s *SessionsScreen) Init() tea.Cmd {
	return s.load()
}

func (s *SessionsScreen) load() tea.Cmd {
	st := s.st
	return func() tea.Msg {
		sessions, err := st.Sessions().List(context.Background())
		return sessionsLoadedMsg{Sessions: sessions, Err: err}
	}
}

func (s *SessionsScreen) Title() string {
	return "Sessions"
}

func (s *SessionsScreen) KeyHints() []layout.KeyHint {
	if s.confirming {
		return []layout.KeyHint{
			{Key: "Y", Description: "Delete"},
			{Key: "N", Description: "Keep"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Open"},
		{Key: "D", Description: "Delete"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *SessionsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionsLoadedMsg:
		s.loaded = true
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.sessions = msg.Sessions
			if s.selected >= len(s.sessions) && len(s.sessions) > 0 {
				s.selected = len(s.sessions) - 1
			}
		}
		return s, nil

	case deletedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		return s, s.load()

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *SessionsScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.confirming {
		switch key {
		case "y", "Y":
			s.confirming = false
			if sess := s.current(); sess != nil {
				st, id := s.st, sess.ID
				return s, func() tea.Msg {
					return deletedMsg{Err: st.Sessions().Delete(context.Background(), id)}
				}
			}
		case "n", "N", "esc":
			s.confirming = false
		}
		return s, nil
	}

	switch key {
	case "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.selected < len(s.sessions)-1 {
			s.selected++
		}
	case "enter":
		if sess := s.current(); sess != nil {
			return s, s.open(sess)
		}
	case "d", "D":
		if s.current() != nil {
			s.confirming = true
		}
	}
	return s, nil
}

func (s *SessionsScreen) current() *store.Session {
	if s.selected < 0 || s.selected >= len(s.sessions) {
		return nil
	}
	return s.sessions[s.selected]
}

// open resumes an unfinished interview or shows the summary for a
// finished one.
func (s *SessionsScreen) open(sess *store.Session) tea.Cmd {
	if sess.Status == store.StatusInProgress {
		return func() tea.Msg {
			return router.PushScreenMsg{
				Screen: interviewscreen.New(s.st, s.mgr, s.svc, sess),
			}
		}
	}
	return func() tea.Msg {
		return router.PushScreenMsg{
			Screen: summaryscreen.New(s.st, s.mgr, s.svc, sess.ID),
		}
	}
}

func (s *SessionsScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render("\n\nError: " + s.errMsg)
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading sessions...")
	}
	if len(s.sessions) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No sessions yet. Create one from the home menu!")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, sess := range s.sessions {
		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s  %s  %s  %d%%  %s",
			prefix,
			sess.UpdatedAt.Format("Jan 02, 2006"),
			sess.Name,
			catalog.ProductDisplayName(sess.Product),
			sess.Completion,
			sess.Status)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		switch {
		case i == s.selected:
			style = style.Foreground(theme.Primary).Bold(true)
		case sess.Status == store.StatusGenerated:
			style = style.Foreground(theme.Success)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}

	if s.confirming {
		if sess := s.current(); sess != nil {
			b.WriteString("\n")
			b.WriteString(lipgloss.NewStyle().
				Width(width).Align(lipgloss.Center).Foreground(theme.Error).Bold(true).
				Render(fmt.Sprintf("Delete %q and its tasks? (y/n)", sess.Name)))
		}
	}

	return b.String()
}
