package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

type eventRepo struct {
	db *sql.DB
}

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMEventData) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO llm_events (timestamp, provider, model, purpose,
			input_tokens, output_tokens, latency_ms, success, error_message)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		time.Now().UTC(), data.Provider, data.Model, data.Purpose,
		data.InputTokens, data.OutputTokens, data.LatencyMs, data.Success, data.ErrorMessage)
	if err != nil {
		return fmt.Errorf("save LLM request event: %w", err)
	}
	return nil
}

func (r *eventRepo) ListLLMRequests(ctx context.Context, limit int) ([]*LLMEvent, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, timestamp, provider, model, purpose,
			input_tokens, output_tokens, latency_ms, success, error_message
		FROM llm_events ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list LLM events: %w", err)
	}
	defer rows.Close()

	var events []*LLMEvent
	for rows.Next() {
		var e LLMEvent
		if err := rows.Scan(&e.ID, &e.Timestamp, &e.Provider, &e.Model, &e.Purpose,
			&e.InputTokens, &e.OutputTokens, &e.LatencyMs, &e.Success, &e.ErrorMessage); err != nil {
			return nil, fmt.Errorf("scan LLM event: %w", err)
		}
		events = append(events, &e)
	}
	return events, rows.Err()
}

func (r *eventRepo) LLMStats(ctx context.Context) (*LLMStats, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*),
			COALESCE(SUM(CASE WHEN success = 0 THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(input_tokens), 0),
			COALESCE(SUM(output_tokens), 0),
			COALESCE(AVG(latency_ms), 0)
		FROM llm_events`)

	var (
		stats LLMStats
		avg   sql.NullFloat64
	)
	if err := row.Scan(&stats.Requests, &stats.Failures,
		&stats.InputTokens, &stats.OutputTokens, &avg); err != nil {
		return nil, fmt.Errorf("aggregate LLM events: %w", err)
	}
	if avg.Valid {
		stats.AvgLatencyMs = int64(avg.Float64)
	}
	return &stats, nil
}
