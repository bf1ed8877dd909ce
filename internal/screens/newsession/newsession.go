// Package newsession collects the classification triple for a new
// questionnaire session and creates it with its starting task plan.
package newsession

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/prdy/prdy/internal/catalog"
	"github.com/prdy/prdy/internal/enrich"
	"github.com/prdy/prdy/internal/router"
	"github.com/prdy/prdy/internal/screen"
	interviewscreen "github.com/prdy/prdy/internal/screens/interview"
	"github.com/prdy/prdy/internal/settings"
	"github.com/prdy/prdy/internal/store"
	"github.com/prdy/prdy/internal/tasks"
	"github.com/prdy/prdy/internal/ui/components"
	"github.com/prdy/prdy/internal/ui/layout"
	"github.com/prdy/prdy/internal/ui/theme"
)

// Wizard steps, in order.
const (
	stepName = iota
	stepProduct
	stepIndustry
	stepComplexity
)

type sessionCreatedMsg struct {
	Session *store.Session
	Err     error
}

// NewSessionScreen walks through naming and classifying a session.
type NewSessionScreen struct {
	st  *store.Store
	mgr *settings.Manager
	svc *enrich.Service

	step       int
	nameInput  components.TextInput
	picker     components.Choice
	name       string
	product    catalog.ProductType
	industry   catalog.IndustryType
	complexity catalog.ComplexityLevel
	errMsg     string
	creating   bool
}

var _ screen.Screen = (*NewSessionScreen)(nil)
var _ screen.KeyHintProvider = (*NewSessionScreen)(nil)

// New creates the new-session wizard.
func New(st *store.Store, mgr *settings.Manager, svc *enrich.Service) *NewSessionScreen {
	return &NewSessionScreen{
		st:        st,
		mgr:       mgr,
		svc:       svc,
		nameInput: components.NewTextInput("Project name...", false, 60),
	}
}

func (s *NewSessionScreen) Init() tea.Cmd {
	return s.nameInput.Init()
}

func (s *NewSessionScreen) Title() string {
	return "New PRD"
}

func (s *NewSessionScreen) KeyHints() []layout.KeyHint {
	if s.step == stepName {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Next"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Next"},
		{Key: "Esc", Description: "Cancel"},
	}
}

func (s *NewSessionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionCreatedMsg:
		if msg.Err != nil {
			s.creating = false
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		return s, func() tea.Msg {
			return router.ReplaceScreenMsg{
				Screen: interviewscreen.New(s.st, s.mgr, s.svc, msg.Session),
			}
		}

	case tea.KeyMsg:
		if s.creating {
			return s, nil
		}
		if msg.String() == "enter" {
			return s.advance()
		}
	}

	if s.creating {
		return s, nil
	}

	var cmd tea.Cmd
	if s.step == stepName {
		s.nameInput, cmd = s.nameInput.Update(msg)
	} else {
		s.picker, cmd = s.picker.Update(msg)
	}
	return s, cmd
}

// advance moves to the next wizard step, creating the session after the
// complexity pick.
func (s *NewSessionScreen) advance() (screen.Screen, tea.Cmd) {
	switch s.step {
	case stepName:
		name := strings.TrimSpace(s.nameInput.Value())
		if name == "" {
			s.errMsg = "Give the project a name first"
			return s, nil
		}
		s.name = name
		s.errMsg = ""
		s.step = stepProduct
		s.picker = components.NewChoice(productLabels(), "")
		return s, nil

	case stepProduct:
		s.product = catalog.AllProductTypes()[s.picker.Selected]
		s.step = stepIndustry
		s.picker = components.NewChoice(industryLabels(), "")
		return s, nil

	case stepIndustry:
		s.industry = catalog.AllIndustryTypes()[s.picker.Selected]
		s.step = stepComplexity
		s.picker = components.NewChoice(complexityLabels(), "")
		return s, nil

	case stepComplexity:
		s.complexity = catalog.AllComplexityLevels()[s.picker.Selected]
		s.creating = true
		return s, s.createSession()
	}
	return s, nil
}

// createSession persists the session and its initial delivery plan.
func (s *NewSessionScreen) createSession() tea.Cmd {
	name, product, industry, complexity := s.name, s.product, s.industry, s.complexity
	st := s.st
	return func() tea.Msg {
		ctx := context.Background()
		sess := &store.Session{
			Name:       name,
			Product:    product,
			Industry:   industry,
			Complexity: complexity,
			Answers:    make(map[string]string),
		}
		if err := st.Sessions().Create(ctx, sess); err != nil {
			return sessionCreatedMsg{Err: err}
		}
		if err := st.Tasks().CreateAll(ctx, tasks.InitialPlan(sess.ID, complexity)); err != nil {
			return sessionCreatedMsg{Err: err}
		}
		return sessionCreatedMsg{Session: sess}
	}
}

func (s *NewSessionScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n\n")

	prompt := map[int]string{
		stepName:       "What are we building?",
		stepProduct:    "What kind of product is it?",
		stepIndustry:   "Which industry does it serve?",
		stepComplexity: "How complex is the project?",
	}[s.step]

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(prompt))
	b.WriteString("\n\n")

	if s.creating {
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("Creating session..."))
		return b.String()
	}

	if s.step == stepName {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.nameInput.View()))
	} else {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.picker.View()))
	}

	if s.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(s.errMsg))
	}

	// Show the picks so far below the active step.
	if s.step > stepName {
		summary := s.name
		if s.step > stepProduct {
			summary += "  ·  " + catalog.ProductDisplayName(s.product)
		}
		if s.step > stepIndustry {
			summary += "  ·  " + catalog.IndustryDisplayName(s.industry)
		}
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render(summary))
	}

	return b.String()
}

func productLabels() []string {
	types := catalog.AllProductTypes()
	out := make([]string, len(types))
	for i, p := range types {
		out[i] = catalog.ProductDisplayName(p)
	}
	return out
}

func industryLabels() []string {
	industries := catalog.AllIndustryTypes()
	out := make([]string, len(industries))
	for i, ind := range industries {
		out[i] = catalog.IndustryDisplayName(ind)
	}
	return out
}

func complexityLabels() []string {
	levels := catalog.AllComplexityLevels()
	out := make([]string, len(levels))
	for i, c := range levels {
		out[i] = catalog.ComplexityDisplayName(c)
	}
	return out
}
