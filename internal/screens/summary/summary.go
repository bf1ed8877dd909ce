// Package summary shows a finished (or paused) session and hosts the
// generate, export, and AI analysis actions.
package summary

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/prdy/prdy/internal/catalog"
	"github.com/prdy/prdy/internal/enrich"
	"github.com/prdy/prdy/internal/export"
	"github.com/prdy/prdy/internal/prd"
	"github.com/prdy/prdy/internal/router"
	"github.com/prdy/prdy/internal/screen"
	tasksscreen "github.com/prdy/prdy/internal/screens/tasks"
	"github.com/prdy/prdy/internal/settings"
	"github.com/prdy/prdy/internal/store"
	"github.com/prdy/prdy/internal/ui/components"
	"github.com/prdy/prdy/internal/ui/layout"
	"github.com/prdy/prdy/internal/ui/theme"
)

type sessionLoadedMsg struct {
	Session *store.Session
	Err     error
}

type generatedMsg struct {
	Session *store.Session
	Err     error
}

type exportedMsg struct {
	Path string
	Err  error
}

type analysisMsg struct {
	Result *enrich.Result
	Err    error
}

// SummaryScreen displays one session and its actions.
type SummaryScreen struct {
	st        *store.Store
	mgr       *settings.Manager
	svc       *enrich.Service
	sessionID string

	session *store.Session
	menu    components.Menu
	busy    string // label of the in-flight action, "" when idle
	notice  string
	pane    string // output of the last AI action
	errMsg  string
	loaded  bool
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates the summary screen for a session ID. The session itself is
// loaded in Init so callers never hand over stale state.
func New(st *store.Store, mgr *settings.Manager, svc *enrich.Service, sessionID string) *SummaryScreen {
	s := &SummaryScreen{
		st:        st,
		mgr:       mgr,
		svc:       svc,
		sessionID: sessionID,
	}
	s.menu = components.NewMenu(s.menuItems())
	return s
}

func (s *SummaryScreen) menuItems() []components.MenuItem {
	return []components.MenuItem{
		{Label: "GENERATE PRD", Action: func() tea.Cmd {
			s.busy = "Generating PRD..."
			return s.generate()
		}},
		{Label: "EXPORT", Action: func() tea.Cmd {
			s.busy = "Exporting..."
			return s.export()
		}},
		{Label: "AI GAP ANALYSIS", Action: func() tea.Cmd {
			s.busy = "Analyzing gaps..."
			return s.analyze()
		}},
		{Label: "AI ENHANCEMENT", Action: func() tea.Cmd {
			s.busy = "Enhancing PRD..."
			return s.enhance()
		}},
		{Label: "TASKS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: tasksscreen.New(s.st, s.sessionID)}
			}
		}},
		{Label: "BACK", Action: func() tea.Cmd {
			return func() tea.Msg { return router.PopScreenMsg{} }
		}},
	}
}

func (s *SummaryScreen) Init() tea.Cmd {
	st, id := s.st, s.sessionID
	return func() tea.Msg {
		sess, err := st.Sessions().Get(context.Background(), id)
		return sessionLoadedMsg{Session: sess, Err: err}
	}
}

func (s *SummaryScreen) Title() string {
	return "Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionLoadedMsg:
		s.loaded = true
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.session = msg.Session
		}
		return s, nil

	case generatedMsg:
		s.busy = ""
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.session = msg.Session
			s.errMsg = ""
			s.notice = "PRD generated"
		}
		return s, nil

	case exportedMsg:
		s.busy = ""
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.errMsg = ""
			s.notice = "Exported to " + msg.Path
		}
		return s, nil

	case analysisMsg:
		s.busy = ""
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.errMsg = ""
			s.notice = fmt.Sprintf("Provider: %s", msg.Result.Provider)
			s.pane = msg.Result.Content
		}
		return s, nil

	case tea.KeyMsg:
		if s.busy != "" {
			return s, nil
		}
	}

	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

// content returns the session's document, synthesizing it on the fly
// when it has not been generated yet.
func (s *SummaryScreen) content() *prd.Content {
	if s.session.Content != nil {
		return s.session.Content
	}
	return prd.Build(s.session.Classification(), s.session.Answers)
}

func (s *SummaryScreen) generate() tea.Cmd {
	st, sess := s.st, s.session
	return func() tea.Msg {
		if sess == nil {
			return generatedMsg{Err: fmt.Errorf("session not loaded")}
		}
		ctx := context.Background()
		content := prd.Build(sess.Classification(), sess.Answers)
		if err := st.Sessions().SaveContent(ctx, sess.ID, content); err != nil {
			return generatedMsg{Err: err}
		}
		fresh, err := st.Sessions().Get(ctx, sess.ID)
		if err != nil {
			return generatedMsg{Err: err}
		}
		return generatedMsg{Session: fresh}
	}
}

func (s *SummaryScreen) export() tea.Cmd {
	mgr, sess := s.mgr, s.session
	var content *prd.Content
	if sess != nil {
		content = s.content()
	}
	return func() tea.Msg {
		if content == nil {
			return exportedMsg{Err: fmt.Errorf("session not loaded")}
		}
		format, dir := export.FormatMarkdown, "./exports"
		if mgr != nil {
			if cur, err := mgr.Current(); err == nil {
				if f, err := export.ParseFormat(cur.DefaultExportFormat); err == nil {
					format = f
				}
				if cur.ExportDirectory != "" {
					dir = cur.ExportDirectory
				}
			}
		}
		path, err := export.WriteFile(content, sess.Name, format, dir, time.Now())
		return exportedMsg{Path: path, Err: err}
	}
}

func (s *SummaryScreen) analyze() tea.Cmd {
	svc, sess := s.svc, s.session
	var content *prd.Content
	if sess != nil {
		content = s.content()
	}
	return func() tea.Msg {
		if content == nil {
			return analysisMsg{Err: fmt.Errorf("session not loaded")}
		}
		res, err := svc.AnalyzeGaps(context.Background(), content)
		return analysisMsg{Result: res, Err: err}
	}
}

func (s *SummaryScreen) enhance() tea.Cmd {
	st, svc, sess := s.st, s.svc, s.session
	var content *prd.Content
	if sess != nil {
		content = s.content()
	}
	return func() tea.Msg {
		if content == nil {
			return analysisMsg{Err: fmt.Errorf("session not loaded")}
		}
		ctx := context.Background()
		res, err := svc.Enhance(ctx, content)
		if err != nil {
			return analysisMsg{Err: err}
		}
		if res.Applied {
			if err := st.Sessions().SaveContent(ctx, sess.ID, content); err != nil {
				return analysisMsg{Err: err}
			}
		}
		return analysisMsg{Result: res}
	}
}

func (s *SummaryScreen) View(width, height int) string {
	if s.errMsg != "" && s.session == nil {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render("\n\nError: " + s.errMsg)
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading session...")
	}

	sess := s.session
	var b strings.Builder
	b.WriteString("\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).Foreground(theme.Primary).Bold(true).
		Render(sess.Name))
	b.WriteString("\n")

	info := fmt.Sprintf("%s  ·  %s  ·  %s",
		catalog.ProductDisplayName(sess.Product),
		catalog.IndustryDisplayName(sess.Industry),
		catalog.ComplexityDisplayName(sess.Complexity))
	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
		Render(info))
	b.WriteString("\n")

	status := fmt.Sprintf("Status: %s    Completion: %d%%", sess.Status, sess.Completion)
	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).Foreground(theme.Text).
		Render(status))
	b.WriteString("\n\n")

	if s.busy != "" {
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Accent).
			Render(s.busy))
		b.WriteString("\n\n")
	} else {
		if s.notice != "" {
			b.WriteString(lipgloss.NewStyle().
				Width(width).Align(lipgloss.Center).Foreground(theme.Success).
				Render(s.notice))
			b.WriteString("\n\n")
		}
		if s.errMsg != "" {
			b.WriteString(lipgloss.NewStyle().
				Width(width).Align(lipgloss.Center).Foreground(theme.Error).
				Render(s.errMsg))
			b.WriteString("\n\n")
		}
	}

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.menu.View()))

	if s.pane != "" {
		b.WriteString("\n")
		pane := lipgloss.NewStyle().
			Foreground(theme.Text).
			Width(min(width-8, 76)).
			Render(truncateLines(s.pane, height-lipgloss.Height(b.String())-2))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, pane))
	}

	return b.String()
}

// truncateLines trims text to at most n lines to keep the pane inside
// the content area.
func truncateLines(text string, n int) string {
	if n <= 0 {
		return ""
	}
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	if len(lines) <= n {
		return strings.Join(lines, "\n")
	}
	return strings.Join(lines[:n-1], "\n") + "\n…"
}
