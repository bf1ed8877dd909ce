package newsession

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/prdy/prdy/internal/catalog"
	"github.com/prdy/prdy/internal/router"
	"github.com/prdy/prdy/internal/store"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func enterKey() tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: tea.KeyEnter}
}

func openTestStore(t *testing.T) *store.Store {
	t.Helper()
	st, err := store.Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func typeText(s *NewSessionScreen, text string) {
	for _, r := range text {
		s.Update(keyPress(r))
	}
}

func TestEmptyNameRejected(t *testing.T) {
	s := New(openTestStore(t), nil, nil)
	s.Update(enterKey())
	if s.errMsg == "" {
		t.Error("empty name should set an error")
	}
	if s.step != stepName {
		t.Error("wizard should stay on the name step")
	}
}

func TestWizardCreatesSessionAndPlan(t *testing.T) {
	st := openTestStore(t)
	s := New(st, nil, nil)

	typeText(s, "TrackIt")
	s.Update(enterKey()) // name -> product

	if s.step != stepProduct {
		t.Fatalf("step = %d, want product", s.step)
	}

	// Pick the second product type (mobile app).
	s.Update(keyPress('j'))
	s.Update(enterKey()) // product -> industry

	s.Update(enterKey()) // industry (general) -> complexity

	// Pick enterprise to get the extended task plan.
	for i := 0; i < 3; i++ {
		s.Update(keyPress('j'))
	}
	_, cmd := s.Update(enterKey())
	if cmd == nil {
		t.Fatal("submitting complexity should create the session")
	}

	msg := cmd()
	created, ok := msg.(sessionCreatedMsg)
	if !ok {
		t.Fatalf("expected sessionCreatedMsg, got %T", msg)
	}
	if created.Err != nil {
		t.Fatalf("create: %v", created.Err)
	}

	sess := created.Session
	if sess.Name != "TrackIt" {
		t.Errorf("name = %q", sess.Name)
	}
	if sess.Product != catalog.ProductMobileApp {
		t.Errorf("product = %q, want mobile_app", sess.Product)
	}
	if sess.Complexity != catalog.ComplexityEnterprise {
		t.Errorf("complexity = %q, want enterprise", sess.Complexity)
	}

	tasks, err := st.Tasks().BySession(context.Background(), sess.ID)
	if err != nil {
		t.Fatalf("load tasks: %v", err)
	}
	if len(tasks) != 5 {
		t.Errorf("enterprise sessions should get 5 initial tasks, got %d", len(tasks))
	}

	// The created message routes into the interview.
	_, replaceCmd := s.Update(created)
	if replaceCmd == nil {
		t.Fatal("expected a replace command")
	}
	if _, ok := replaceCmd().(router.ReplaceScreenMsg); !ok {
		t.Error("session creation should replace the wizard with the interview")
	}
}
