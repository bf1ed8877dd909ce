package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/prdy/prdy/internal/enrich"
	"github.com/prdy/prdy/internal/router"
	"github.com/prdy/prdy/internal/screen"
	"github.com/prdy/prdy/internal/screens/newsession"
	"github.com/prdy/prdy/internal/screens/placeholder"
	sessionsscreen "github.com/prdy/prdy/internal/screens/sessions"
	settingsscreen "github.com/prdy/prdy/internal/screens/settings"
	"github.com/prdy/prdy/internal/settings"
	"github.com/prdy/prdy/internal/store"
	"github.com/prdy/prdy/internal/ui/components"
	"github.com/prdy/prdy/internal/ui/theme"
)

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	menu         components.Menu
	sessionCount int
	generated    int
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the home screen with injected dependencies. A nil store
// degrades menu entries to placeholders instead of crashing.
func New(st *store.Store, mgr *settings.Manager, svc *enrich.Service) *HomeScreen {
	var sessionCount, generated int
	if st != nil {
		if list, err := st.Sessions().List(context.Background()); err == nil {
			sessionCount = len(list)
			for _, s := range list {
				if s.Status == store.StatusGenerated {
					generated++
				}
			}
		}
	}

	items := []components.MenuItem{
		{Label: "NEW PRD", Action: func() tea.Cmd {
			if st == nil {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: placeholder.New("New PRD")}
				}
			}
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: newsession.New(st, mgr, svc)}
			}
		}},
		{Label: "SESSIONS", Action: func() tea.Cmd {
			if st == nil {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: placeholder.New("Sessions")}
				}
			}
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: sessionsscreen.New(st, mgr, svc)}
			}
		}},
		{Label: "SETTINGS", Action: func() tea.Cmd {
			if mgr == nil {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: placeholder.New("Settings")}
				}
			}
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: settingsscreen.New(mgr)}
			}
		}},
		{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu:         components.NewMenu(items),
		sessionCount: sessionCount,
		generated:    generated,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("P R D Y"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Interview-driven product requirements"))
	b.WriteString("\n\n")

	stats := fmt.Sprintf("%d sessions   %d PRDs generated", h.sessionCount, h.generated)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(stats))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, h.menu.View()))

	return b.String()
}

func (h *HomeScreen) Title() string {
	return "Home"
}
