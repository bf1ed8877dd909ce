package store

import (
	"context"
	"errors"
	"time"

	"github.com/prdy/prdy/internal/catalog"
	"github.com/prdy/prdy/internal/interview"
	"github.com/prdy/prdy/internal/prd"
)

// ErrNotFound is returned when a session or task does not exist.
var ErrNotFound = errors.New("not found")

// Session status values.
const (
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
	StatusGenerated  = "generated"
)

// Session is one questionnaire session and its collected state.
type Session struct {
	ID         string
	Name       string
	Product    catalog.ProductType
	Industry   catalog.IndustryType
	Complexity catalog.ComplexityLevel
	Status     string
	Completion int
	Answers    interview.Answers
	// Content is the synthesized document, nil until generated.
	Content   *prd.Content
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Classification returns the session's axis values for synthesis.
func (s *Session) Classification() prd.Classification {
	return prd.Classification{
		Name:        s.Name,
		ProductType: s.Product,
		Industry:    s.Industry,
		Complexity:  s.Complexity,
	}
}

// SessionRepo manages questionnaire sessions.
type SessionRepo interface {
	// Create stores a new session, assigning ID and timestamps.
	Create(ctx context.Context, s *Session) error

	// Get returns the session by ID, or ErrNotFound.
	Get(ctx context.Context, id string) (*Session, error)

	// List returns all sessions, most recently updated first.
	List(ctx context.Context) ([]*Session, error)

	// SaveAnswers persists the answer set and completion percentage.
	SaveAnswers(ctx context.Context, id string, answers interview.Answers, completion int) error

	// SaveContent persists the synthesized document and marks the
	// session generated.
	SaveContent(ctx context.Context, id string, content *prd.Content) error

	// SetStatus updates the session status.
	SetStatus(ctx context.Context, id string, status string) error

	// Delete removes the session and its tasks.
	Delete(ctx context.Context, id string) error
}

// Task status values.
type TaskStatus string

const (
	TaskPending    TaskStatus = "pending"
	TaskInProgress TaskStatus = "in_progress"
	TaskCompleted  TaskStatus = "completed"
	TaskBlocked    TaskStatus = "blocked"
)

// Task difficulty values.
type TaskDifficulty string

const (
	DifficultyEasy   TaskDifficulty = "easy"
	DifficultyMedium TaskDifficulty = "medium"
	DifficultyHard   TaskDifficulty = "hard"
	DifficultyExpert TaskDifficulty = "expert"
)

// Task is one work item in a session's delivery plan.
type Task struct {
	ID             int64
	SessionID      string
	Identifier     string
	Title          string
	Description    string
	Status         TaskStatus
	Difficulty     TaskDifficulty
	Priority       string
	EstimatedHours int
	Dependencies   []string
	CreatedAt      time.Time
	UpdatedAt      time.Time
	CompletedAt    *time.Time
}

// TaskRepo manages session tasks.
type TaskRepo interface {
	// CreateAll stores tasks in order, assigning IDs and timestamps.
	CreateAll(ctx context.Context, tasks []*Task) error

	// BySession returns the session's tasks in creation order.
	BySession(ctx context.Context, sessionID string) ([]*Task, error)

	// UpdateStatus sets the task status by identifier, recording the
	// completion time when the status is completed.
	UpdateStatus(ctx context.Context, identifier string, status TaskStatus) error
}

// LLMEventData captures the data for a single LLM request event.
type LLMEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// LLMEvent is a stored LLM request record.
type LLMEvent struct {
	ID        int64
	Timestamp time.Time
	LLMEventData
}

// LLMStats aggregates stored LLM request events.
type LLMStats struct {
	Requests     int
	Failures     int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// EventRepo provides append and query access to LLM request events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMEventData) error

	// ListLLMRequests returns the most recent events, newest first.
	ListLLMRequests(ctx context.Context, limit int) ([]*LLMEvent, error)

	// LLMStats aggregates all stored events.
	LLMStats(ctx context.Context) (*LLMStats, error)
}
