package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/prdy/prdy/internal/enrich"
	"github.com/prdy/prdy/internal/router"
	"github.com/prdy/prdy/internal/screen"
	"github.com/prdy/prdy/internal/screens/home"
	"github.com/prdy/prdy/internal/settings"
	"github.com/prdy/prdy/internal/store"
	"github.com/prdy/prdy/internal/ui/layout"
)

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router   *router.Router
	provider string
	initCmd  tea.Cmd
	width    int
	height   int
}

// newAppModel creates a new AppModel with the home screen at the bottom
// of the stack and, when initial is non-nil, that screen on top so Esc
// still leads back home.
func newAppModel(st *store.Store, mgr *settings.Manager, svc *enrich.Service, provider string, initial screen.Screen) AppModel {
	r := router.New(home.New(st, mgr, svc))
	var initCmd tea.Cmd
	if initial != nil {
		initCmd = r.Push(initial)
	}
	return AppModel{
		router:   r,
		provider: provider,
		initCmd:  initCmd,
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.initCmd
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	// Screens that handle Esc themselves (confirm dialogs, list screens)
	// return their own command; the router only pops when the active
	// screen ignored the key.
	cmd := m.router.Update(msg)
	if cmd == nil {
		if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "esc" && m.router.Depth() > 1 {
			return m, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	status := "AI: " + m.provider
	header := layout.RenderHeader(title, status, m.width)

	footerHints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if hp, ok := active.(screen.KeyHintProvider); ok {
		if hints := hp.KeyHints(); len(hints) > 0 {
			footerHints = hints
		}
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program on the home screen.
func Run(st *store.Store, mgr *settings.Manager, svc *enrich.Service, provider string) error {
	return run(newAppModel(st, mgr, svc, provider, nil))
}

// RunFrom starts the program with the given screen already open.
func RunFrom(st *store.Store, mgr *settings.Manager, svc *enrich.Service, provider string, initial screen.Screen) error {
	return run(newAppModel(st, mgr, svc, provider, initial))
}

func run(m AppModel) error {
	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
