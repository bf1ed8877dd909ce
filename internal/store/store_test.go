package store

import (
	"context"
	"errors"
	"testing"

	"github.com/prdy/prdy/internal/catalog"
	"github.com/prdy/prdy/internal/interview"
	"github.com/prdy/prdy/internal/prd"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func newTestSession(t *testing.T, s *Store) *Session {
	t.Helper()
	sess := &Session{
		Name:       "TrackIt",
		Product:    catalog.ProductMobileApp,
		Industry:   catalog.IndustryHealthcare,
		Complexity: catalog.ComplexityModerate,
	}
	if err := s.Sessions().Create(context.Background(), sess); err != nil {
		t.Fatalf("create session: %v", err)
	}
	return sess
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSessionCreateAndGet(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	sess := newTestSession(t, s)
	if sess.ID == "" {
		t.Fatal("create should assign an ID")
	}
	if sess.Status != StatusInProgress {
		t.Errorf("status = %q, want %q", sess.Status, StatusInProgress)
	}

	got, err := s.Sessions().Get(ctx, sess.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "TrackIt" || got.Product != catalog.ProductMobileApp {
		t.Errorf("got %+v", got)
	}
	if got.Answers == nil {
		t.Error("answers should round-trip as an empty map, not nil")
	}
	if got.Content != nil {
		t.Error("content should be nil before generation")
	}
}

func TestSessionGetMissing(t *testing.T) {
	s := openTestStore(t)
	if _, err := s.Sessions().Get(context.Background(), "nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound", err)
	}
}

func TestSessionSaveAnswers(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	sess := newTestSession(t, s)

	answers := interview.Answers{"project_name": "TrackIt", "offline_functionality": interview.ConfirmYes}
	if err := s.Sessions().SaveAnswers(ctx, sess.ID, answers, 40); err != nil {
		t.Fatalf("save answers: %v", err)
	}

	got, err := s.Sessions().Get(ctx, sess.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Completion != 40 {
		t.Errorf("completion = %d, want 40", got.Completion)
	}
	if got.Answers["project_name"] != "TrackIt" || !got.Answers.Bool("offline_functionality") {
		t.Errorf("answers = %v", got.Answers)
	}
}

func TestSessionSaveContent(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	sess := newTestSession(t, s)

	content := prd.Build(sess.Classification(), interview.Answers{"problem_statement": "forgetting meds"})
	if err := s.Sessions().SaveContent(ctx, sess.ID, content); err != nil {
		t.Fatalf("save content: %v", err)
	}

	got, err := s.Sessions().Get(ctx, sess.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Status != StatusGenerated || got.Completion != 100 {
		t.Errorf("status = %q completion = %d", got.Status, got.Completion)
	}
	if got.Content == nil || got.Content.ProblemStatement != "forgetting meds" {
		t.Errorf("content = %+v", got.Content)
	}
}

func TestSessionList(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	first := newTestSession(t, s)
	second := newTestSession(t, s)

	// Touch the first so it sorts to the front.
	if err := s.Sessions().SaveAnswers(ctx, first.ID, interview.Answers{"a": "b"}, 10); err != nil {
		t.Fatalf("save answers: %v", err)
	}

	list, err := s.Sessions().List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("got %d sessions, want 2", len(list))
	}
	if list[0].ID != first.ID || list[1].ID != second.ID {
		t.Error("sessions should order by most recently updated first")
	}
}

func TestSessionDeleteCascadesTasks(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	sess := newTestSession(t, s)

	tasks := []*Task{{
		SessionID:  sess.ID,
		Identifier: "PRD-abc-001",
		Title:      "Conduct comprehensive interview",
		Difficulty: DifficultyEasy,
		Priority:   "high",
	}}
	if err := s.Tasks().CreateAll(ctx, tasks); err != nil {
		t.Fatalf("create tasks: %v", err)
	}

	if err := s.Sessions().Delete(ctx, sess.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	left, err := s.Tasks().BySession(ctx, sess.ID)
	if err != nil {
		t.Fatalf("list tasks: %v", err)
	}
	if len(left) != 0 {
		t.Errorf("tasks should cascade on session delete, got %d", len(left))
	}

	if err := s.Sessions().Delete(ctx, sess.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("second delete: got %v, want ErrNotFound", err)
	}
}

func TestTaskLifecycle(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	sess := newTestSession(t, s)

	tasks := []*Task{
		{SessionID: sess.ID, Identifier: "PRD-abc-001", Title: "Interview", Difficulty: DifficultyEasy, Priority: "high", EstimatedHours: 2},
		{SessionID: sess.ID, Identifier: "PRD-abc-002", Title: "Generate", Difficulty: DifficultyMedium, Priority: "high", EstimatedHours: 4, Dependencies: []string{"PRD-abc-001"}},
	}
	if err := s.Tasks().CreateAll(ctx, tasks); err != nil {
		t.Fatalf("create tasks: %v", err)
	}
	if tasks[0].ID == 0 || tasks[1].ID == 0 {
		t.Error("create should assign IDs")
	}

	got, err := s.Tasks().BySession(ctx, sess.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d tasks, want 2", len(got))
	}
	if got[0].Status != TaskPending {
		t.Errorf("status = %q, want pending", got[0].Status)
	}
	if len(got[1].Dependencies) != 1 || got[1].Dependencies[0] != "PRD-abc-001" {
		t.Errorf("dependencies = %v", got[1].Dependencies)
	}

	if err := s.Tasks().UpdateStatus(ctx, "PRD-abc-001", TaskCompleted); err != nil {
		t.Fatalf("update status: %v", err)
	}
	got, err = s.Tasks().BySession(ctx, sess.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if got[0].Status != TaskCompleted || got[0].CompletedAt == nil {
		t.Errorf("completed task = %+v", got[0])
	}
	if got[1].CompletedAt != nil {
		t.Error("pending task should have no completion time")
	}

	if err := s.Tasks().UpdateStatus(ctx, "PRD-xyz-999", TaskCompleted); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown identifier: got %v, want ErrNotFound", err)
	}
}

func TestLLMEvents(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.Events()

	stats, err := repo.LLMStats(ctx)
	if err != nil {
		t.Fatalf("stats (empty): %v", err)
	}
	if stats.Requests != 0 {
		t.Errorf("empty stats = %+v", stats)
	}

	events := []LLMEventData{
		{Provider: "anthropic", Model: "claude", Purpose: "analyze_gaps", InputTokens: 100, OutputTokens: 50, LatencyMs: 200, Success: true},
		{Provider: "anthropic", Model: "claude", Purpose: "enhance", InputTokens: 300, OutputTokens: 150, LatencyMs: 400, Success: false, ErrorMessage: "rate limited"},
	}
	for _, e := range events {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	list, err := repo.ListLLMRequests(ctx, 10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("got %d events, want 2", len(list))
	}
	if list[0].Purpose != "enhance" {
		t.Errorf("newest first: got %q", list[0].Purpose)
	}

	stats, err = repo.LLMStats(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.Requests != 2 || stats.Failures != 1 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.InputTokens != 400 || stats.OutputTokens != 200 {
		t.Errorf("token totals = %+v", stats)
	}
	if stats.AvgLatencyMs != 300 {
		t.Errorf("avg latency = %d, want 300", stats.AvgLatencyMs)
	}
}
