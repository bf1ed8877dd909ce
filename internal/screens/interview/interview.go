// Package interview runs the adaptive questionnaire for one session.
package interview

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/prdy/prdy/internal/catalog"
	"github.com/prdy/prdy/internal/enrich"
	itv "github.com/prdy/prdy/internal/interview"
	"github.com/prdy/prdy/internal/router"
	"github.com/prdy/prdy/internal/screen"
	summaryscreen "github.com/prdy/prdy/internal/screens/summary"
	"github.com/prdy/prdy/internal/settings"
	"github.com/prdy/prdy/internal/store"
	"github.com/prdy/prdy/internal/ui/components"
	"github.com/prdy/prdy/internal/ui/layout"
	"github.com/prdy/prdy/internal/ui/theme"
)

type answersSavedMsg struct {
	Err error
}

type interviewDoneMsg struct {
	Err error
}

// InterviewScreen asks the session's eligible questions one at a time,
// re-filtering dependencies after every answer.
type InterviewScreen struct {
	st      *store.Store
	mgr     *settings.Manager
	svc     *enrich.Service
	session *store.Session

	questions []catalog.Question
	answers   itv.Answers
	current   catalog.Question
	active    bool // a question is on screen

	textInput   components.TextInput
	choice      components.Choice
	multiselect components.MultiSelect
	confirm     components.Confirm

	errMsg    string
	finishing bool
}

var _ screen.Screen = (*InterviewScreen)(nil)
var _ screen.KeyHintProvider = (*InterviewScreen)(nil)

// New creates the interview screen for a session. Previously saved
// answers are honored, so a resumed session picks up where it left off.
func New(st *store.Store, mgr *settings.Manager, svc *enrich.Service, session *store.Session) *InterviewScreen {
	answers := session.Answers
	if answers == nil {
		answers = make(itv.Answers)
	}
	s := &InterviewScreen{
		st:        st,
		mgr:       mgr,
		svc:       svc,
		session:   session,
		questions: catalog.QuestionsForProduct(session.Product, session.Industry, session.Complexity),
		answers:   answers,
	}
	s.nextQuestion()
	return s
}

func (s *InterviewScreen) Init() tea.Cmd {
	if s.active && s.current.Type == catalog.TypeText {
		return s.textInput.Init()
	}
	if !s.active {
		return s.finish()
	}
	return nil
}

func (s *InterviewScreen) Title() string {
	return "Interview"
}

func (s *InterviewScreen) KeyHints() []layout.KeyHint {
	if !s.active {
		return nil
	}
	switch s.current.Type {
	case catalog.TypeMultiselect:
		return []layout.KeyHint{
			{Key: "Space", Description: "Toggle"},
			{Key: "Enter", Description: "Submit"},
			{Key: "Esc", Description: "Pause"},
		}
	case catalog.TypeChoice, catalog.TypeConfirm:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Submit"},
			{Key: "Esc", Description: "Pause"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Submit"},
		{Key: "Esc", Description: "Pause"},
	}
}

func (s *InterviewScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case answersSavedMsg:
		if msg.Err != nil {
			s.errMsg = "Save failed: " + msg.Err.Error()
		}
		return s, nil

	case interviewDoneMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		return s, func() tea.Msg {
			return router.ReplaceScreenMsg{
				Screen: summaryscreen.New(s.st, s.mgr, s.svc, s.session.ID),
			}
		}

	case tea.KeyMsg:
		if s.finishing {
			return s, nil
		}
		if msg.String() == "enter" && s.active {
			return s.submit()
		}
	}

	if !s.active || s.finishing {
		return s, nil
	}

	var cmd tea.Cmd
	switch s.current.Type {
	case catalog.TypeChoice:
		s.choice, cmd = s.choice.Update(msg)
	case catalog.TypeMultiselect:
		s.multiselect, cmd = s.multiselect.Update(msg)
	case catalog.TypeConfirm:
		s.confirm, cmd = s.confirm.Update(msg)
	default:
		s.textInput, cmd = s.textInput.Update(msg)
	}
	return s, cmd
}

// submit coerces the current input, records the answer, persists, and
// moves to the next eligible question.
func (s *InterviewScreen) submit() (screen.Screen, tea.Cmd) {
	var raw string
	switch s.current.Type {
	case catalog.TypeChoice:
		raw = s.choice.Value()
	case catalog.TypeMultiselect:
		raw = s.multiselect.Value()
	case catalog.TypeConfirm:
		raw = s.confirm.Value()
	default:
		raw = s.textInput.Value()
	}

	if s.current.Required && strings.TrimSpace(raw) == "" && s.current.Default == "" {
		s.errMsg = "This question is required"
		return s, nil
	}

	if err := s.answers.Set(s.current, raw); err != nil {
		s.errMsg = err.Error()
		return s, nil
	}
	s.errMsg = ""

	save := s.saveAnswers()

	// Re-filtering here is what makes follow-up questions whose
	// dependencies were just satisfied appear in the same pass.
	s.nextQuestion()
	if !s.active {
		s.finishing = true
		return s, tea.Batch(save, s.finish())
	}

	var initCmd tea.Cmd
	if s.current.Type == catalog.TypeText || s.current.Type == catalog.TypeInteger || s.current.Type == catalog.TypeFloat {
		initCmd = s.textInput.Init()
	}
	return s, tea.Batch(save, initCmd)
}

// nextQuestion advances to the first unanswered eligible question and
// sets up its input component.
func (s *InterviewScreen) nextQuestion() {
	q, ok := itv.NextQuestion(s.questions, s.answers)
	if !ok {
		s.active = false
		return
	}
	s.current = q
	s.active = true

	switch q.Type {
	case catalog.TypeChoice:
		s.choice = components.NewChoice(q.Choices, q.Default)
	case catalog.TypeMultiselect:
		s.multiselect = components.NewMultiSelect(q.Choices, nil)
	case catalog.TypeConfirm:
		s.confirm = components.NewConfirm(q.Default != itv.ConfirmNo)
	case catalog.TypeInteger:
		s.textInput = components.NewTextInput(q.Default, true, 10)
	default:
		placeholder := q.Default
		if placeholder == "" {
			placeholder = "Type your answer..."
		}
		s.textInput = components.NewTextInput(placeholder, false, 0)
	}
}

// saveAnswers persists the answer set with the current completion.
func (s *InterviewScreen) saveAnswers() tea.Cmd {
	st, id := s.st, s.session.ID
	answers := make(itv.Answers, len(s.answers))
	for k, v := range s.answers {
		answers[k] = v
	}
	completion := itv.Completion(s.questions, answers)
	return func() tea.Msg {
		err := st.Sessions().SaveAnswers(context.Background(), id, answers, completion)
		return answersSavedMsg{Err: err}
	}
}

// finish marks the session completed once every eligible question is
// answered.
func (s *InterviewScreen) finish() tea.Cmd {
	st, id := s.st, s.session.ID
	return func() tea.Msg {
		err := st.Sessions().SetStatus(context.Background(), id, store.StatusCompleted)
		return interviewDoneMsg{Err: err}
	}
}

func (s *InterviewScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")

	eligible := catalog.FilterByDependencies(s.questions, s.answers)
	answered := len(eligible) - itv.Remaining(s.questions, s.answers)

	bar := components.NewProgressBar(
		fmt.Sprintf("Question %d of %d", min(answered+1, len(eligible)), len(eligible)),
		float64(itv.Completion(s.questions, s.answers))/100,
		true,
		min(width-8, 70),
	)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n\n")

	if s.finishing || !s.active {
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Success).Bold(true).
			Render("Interview complete!"))
		return b.String()
	}

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(s.current.Prompt))
	b.WriteString("\n")

	if s.current.HelpText != "" {
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render(s.current.HelpText))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	var input string
	switch s.current.Type {
	case catalog.TypeChoice:
		input = s.choice.View()
	case catalog.TypeMultiselect:
		input = s.multiselect.View()
	case catalog.TypeConfirm:
		input = s.confirm.View()
	default:
		input = s.textInput.View()
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, input))

	if s.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(s.errMsg))
	}

	return b.String()
}
