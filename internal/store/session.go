package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/prdy/prdy/internal/catalog"
	"github.com/prdy/prdy/internal/interview"
	"github.com/prdy/prdy/internal/prd"
)

type sessionRepo struct {
	db *sql.DB
}

func (r *sessionRepo) Create(ctx context.Context, s *Session) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	if s.Status == "" {
		s.Status = StatusInProgress
	}
	if s.Answers == nil {
		s.Answers = interview.Answers{}
	}
	now := time.Now().UTC()
	s.CreatedAt = now
	s.UpdatedAt = now

	answers, err := json.Marshal(s.Answers)
	if err != nil {
		return fmt.Errorf("marshal answers: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO sessions (id, name, product_type, industry_type, complexity_level,
			status, completion, answers, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		s.ID, s.Name, string(s.Product), string(s.Industry), string(s.Complexity),
		s.Status, s.Completion, string(answers), s.CreatedAt, s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert session: %w", err)
	}
	return nil
}

func (r *sessionRepo) Get(ctx context.Context, id string) (*Session, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, product_type, industry_type, complexity_level,
			status, completion, answers, generated_prd, created_at, updated_at
		FROM sessions WHERE id = ?`, id)
	s, err := scanSession(row)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (r *sessionRepo) List(ctx context.Context) ([]*Session, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, product_type, industry_type, complexity_level,
			status, completion, answers, generated_prd, created_at, updated_at
		FROM sessions ORDER BY updated_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []*Session
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}

func (r *sessionRepo) SaveAnswers(ctx context.Context, id string, answers interview.Answers, completion int) error {
	data, err := json.Marshal(answers)
	if err != nil {
		return fmt.Errorf("marshal answers: %w", err)
	}
	return r.update(ctx, id, `UPDATE sessions SET answers = ?, completion = ?, updated_at = ? WHERE id = ?`,
		string(data), completion, time.Now().UTC(), id)
}

func (r *sessionRepo) SaveContent(ctx context.Context, id string, content *prd.Content) error {
	data, err := json.Marshal(content)
	if err != nil {
		return fmt.Errorf("marshal content: %w", err)
	}
	return r.update(ctx, id, `UPDATE sessions SET generated_prd = ?, status = ?, completion = 100, updated_at = ? WHERE id = ?`,
		string(data), StatusGenerated, time.Now().UTC(), id)
}

func (r *sessionRepo) SetStatus(ctx context.Context, id string, status string) error {
	return r.update(ctx, id, `UPDATE sessions SET status = ?, updated_at = ? WHERE id = ?`,
		status, time.Now().UTC(), id)
}

func (r *sessionRepo) Delete(ctx context.Context, id string) error {
	// Tasks cascade via the foreign key.
	res, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *sessionRepo) update(ctx context.Context, id, query string, args ...any) error {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update session %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSession(row rowScanner) (*Session, error) {
	var (
		s        Session
		product  string
		industry string
		level    string
		answers  string
		content  sql.NullString
	)
	err := row.Scan(&s.ID, &s.Name, &product, &industry, &level,
		&s.Status, &s.Completion, &answers, &content, &s.CreatedAt, &s.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan session: %w", err)
	}

	s.Product = catalog.ProductType(product)
	s.Industry = catalog.IndustryType(industry)
	s.Complexity = catalog.ComplexityLevel(level)

	if err := json.Unmarshal([]byte(answers), &s.Answers); err != nil {
		return nil, fmt.Errorf("unmarshal answers: %w", err)
	}
	if content.Valid && content.String != "" {
		s.Content = &prd.Content{}
		if err := json.Unmarshal([]byte(content.String), s.Content); err != nil {
			return nil, fmt.Errorf("unmarshal generated content: %w", err)
		}
	}
	return &s, nil
}
