package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/reshmailfatima/Text2SQL/internal/history"
)

type Repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) HealthCheck(ctx context.Context) error {
	if err := r.db.PingContext(ctx); err != nil {
		return fmt.Errorf("ping history db: %w", err)
	}
	return nil
}

func (r *Repository) Insert(ctx context.Context, in history.InsertInput) (history.Record, error) {
	query := `
INSERT INTO query_history (trace_id, question, generated_sql, operation_kind, is_valid, error_message, row_count, duration_ms)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING history_id, created_at`

	record := history.Record{
		TraceID:      in.TraceID,
		Question:     in.Question,
		GeneratedSQL: in.GeneratedSQL,
		Kind:         in.Kind,
		Valid:        in.Valid,
		ErrorMessage: in.ErrorMessage,
		RowCount:     in.RowCount,
		DurationMS:   in.DurationMS,
	}
	if err := r.db.QueryRowContext(ctx, query,
		in.TraceID,
		in.Question,
		in.GeneratedSQL,
		in.Kind,
		in.Valid,
		in.ErrorMessage,
		in.RowCount,
		in.DurationMS,
	).Scan(&record.ID, &record.CreatedAt); err != nil {
		return history.Record{}, fmt.Errorf("insert history record: %w", err)
	}
	return record, nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (history.Record, error) {
	query := `
SELECT history_id, trace_id, question, generated_sql, operation_kind, is_valid, error_message, row_count, duration_ms, created_at
FROM query_history
WHERE history_id = $1`

	var record history.Record
	if err := r.db.QueryRowContext(ctx, query, id).Scan(
		&record.ID,
		&record.TraceID,
		&record.Question,
		&record.GeneratedSQL,
		&record.Kind,
		&record.Valid,
		&record.ErrorMessage,
		&record.RowCount,
		&record.DurationMS,
		&record.CreatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return history.Record{}, history.ErrNotFound
		}
		return history.Record{}, fmt.Errorf("get history record: %w", err)
	}
	return record, nil
}

func (r *Repository) ListRecent(ctx context.Context, limit int) ([]history.Record, error) {
	query := `
SELECT history_id, trace_id, question, generated_sql, operation_kind, is_valid, error_message, row_count, duration_ms, created_at
FROM query_history
ORDER BY history_id DESC`

	var rows *sql.Rows
	var err error
	if limit > 0 {
		rows, err = r.db.QueryContext(ctx, query+`
LIMIT $1`, limit)
	} else {
		rows, err = r.db.QueryContext(ctx, query)
	}
	if err != nil {
		return nil, fmt.Errorf("list history records: %w", err)
	}
	defer func() { _ = rows.Close() }()

	records := make([]history.Record, 0)
	for rows.Next() {
		var record history.Record
		if err := rows.Scan(
			&record.ID,
			&record.TraceID,
			&record.Question,
			&record.GeneratedSQL,
			&record.Kind,
			&record.Valid,
			&record.ErrorMessage,
			&record.RowCount,
			&record.DurationMS,
			&record.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan history row: %w", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate history rows: %w", err)
	}
	return records, nil
}

func (r *Repository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	result, err := r.db.ExecContext(ctx, `
DELETE FROM query_history
WHERE created_at < $1`, cutoff.UTC())
	if err != nil {
		return 0, fmt.Errorf("delete history records: %w", err)
	}
	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete history rows affected: %w", err)
	}
	return deleted, nil
}
