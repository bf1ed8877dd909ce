package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"
)

type taskRepo struct {
	db *sql.DB
}

func (r *taskRepo) CreateAll(ctx context.Context, tasks []*Task) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC()
	for _, t := range tasks {
		if t.Status == "" {
			t.Status = TaskPending
		}
		t.CreatedAt = now
		t.UpdatedAt = now

		deps, err := json.Marshal(t.Dependencies)
		if err != nil {
			return fmt.Errorf("marshal dependencies: %w", err)
		}

		res, err := tx.ExecContext(ctx, `
			INSERT INTO tasks (session_id, identifier, title, description, status,
				difficulty, priority, estimated_hours, dependencies, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			t.SessionID, t.Identifier, t.Title, t.Description, string(t.Status),
			string(t.Difficulty), t.Priority, t.EstimatedHours, string(deps), t.CreatedAt, t.UpdatedAt)
		if err != nil {
			return fmt.Errorf("insert task %s: %w", t.Identifier, err)
		}
		t.ID, err = res.LastInsertId()
		if err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (r *taskRepo) BySession(ctx context.Context, sessionID string) ([]*Task, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, session_id, identifier, title, description, status,
			difficulty, priority, estimated_hours, dependencies,
			created_at, updated_at, completed_at
		FROM tasks WHERE session_id = ? ORDER BY id`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	var tasks []*Task
	for rows.Next() {
		var (
			t         Task
			status    string
			diff      string
			deps      string
			completed sql.NullTime
		)
		if err := rows.Scan(&t.ID, &t.SessionID, &t.Identifier, &t.Title, &t.Description,
			&status, &diff, &t.Priority, &t.EstimatedHours, &deps,
			&t.CreatedAt, &t.UpdatedAt, &completed); err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		t.Status = TaskStatus(status)
		t.Difficulty = TaskDifficulty(diff)
		if err := json.Unmarshal([]byte(deps), &t.Dependencies); err != nil {
			return nil, fmt.Errorf("unmarshal dependencies: %w", err)
		}
		if completed.Valid {
			t.CompletedAt = &completed.Time
		}
		tasks = append(tasks, &t)
	}
	return tasks, rows.Err()
}

func (r *taskRepo) UpdateStatus(ctx context.Context, identifier string, status TaskStatus) error {
	now := time.Now().UTC()
	var completed any
	if status == TaskCompleted {
		completed = now
	}

	res, err := r.db.ExecContext(ctx, `
		UPDATE tasks SET status = ?, updated_at = ?, completed_at = ? WHERE identifier = ?`,
		string(status), now, completed, identifier)
	if err != nil {
		return fmt.Errorf("update task %s: %w", identifier, err)
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
