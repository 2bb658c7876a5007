package store

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/reshmailfatima/Text2SQL/internal/sqlnorm"
)

// AckMessage is the single-record payload returned for statements that do
// not produce a result set.
const AckMessage = "Query executed successfully"

type ExecutorConfig struct {
	// QueryTimeout bounds each statement when positive.
	QueryTimeout time.Duration
}

// SQLExecutor runs statements against any database/sql driver. Statements
// are sanitized on the way in so vendor-flavored SQL from the generator
// still executes.
type SQLExecutor struct {
	db           *sql.DB
	pipeline     *sqlnorm.Pipeline
	log          *slog.Logger
	queryTimeout time.Duration
}

func NewSQLExecutor(db *sql.DB, pipeline *sqlnorm.Pipeline, logger *slog.Logger, cfg ExecutorConfig) *SQLExecutor {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if pipeline == nil {
		pipeline = sqlnorm.New(logger, sqlnorm.Config{})
	}
	return &SQLExecutor{
		db:           db,
		pipeline:     pipeline,
		log:          logger,
		queryTimeout: cfg.QueryTimeout,
	}
}

func (e *SQLExecutor) Execute(ctx context.Context, query string) (Result, error) {
	sanitized := e.pipeline.Sanitize(query)
	if strings.TrimSpace(sanitized) == "" {
		return Result{}, fmt.Errorf("sql is required")
	}

	if e.queryTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.queryTimeout)
		defer cancel()
	}

	start := time.Now()
	kind := sqlnorm.Classify(sanitized)
	if kind == sqlnorm.KindSelect {
		result, err := e.queryRows(ctx, sanitized)
		if err != nil {
			e.log.Error("query failed", slog.String("sql", sanitized), slog.Any("error", err))
			executionsTotal.WithLabelValues(string(kind), "failed").Inc()
			return Result{}, err
		}
		result.Duration = time.Since(start)
		executionsTotal.WithLabelValues(string(kind), "completed").Inc()
		executionLatencyMs.WithLabelValues(string(kind)).Observe(float64(result.Duration.Milliseconds()))
		return result, nil
	}

	res, err := e.db.ExecContext(ctx, sanitized)
	if err != nil {
		e.log.Error("statement failed", slog.String("sql", sanitized), slog.Any("error", err))
		executionsTotal.WithLabelValues(string(kind), "failed").Inc()
		return Result{}, fmt.Errorf("execute statement: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		executionsTotal.WithLabelValues(string(kind), "failed").Inc()
		return Result{}, fmt.Errorf("statement rows affected: %w", err)
	}

	duration := time.Since(start)
	executionsTotal.WithLabelValues(string(kind), "completed").Inc()
	executionLatencyMs.WithLabelValues(string(kind)).Observe(float64(duration.Milliseconds()))
	return Result{
		Columns:      []string{"message"},
		Rows:         []map[string]any{{"message": AckMessage}},
		RowsAffected: affected,
		Command:      true,
		Duration:     duration,
	}, nil
}

func (e *SQLExecutor) queryRows(ctx context.Context, query string) (Result, error) {
	rows, err := e.db.QueryContext(ctx, query)
	if err != nil {
		return Result{}, fmt.Errorf("execute query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	columns, err := rows.Columns()
	if err != nil {
		return Result{}, fmt.Errorf("query columns: %w", err)
	}

	records := make([]map[string]any, 0)
	for rows.Next() {
		values := make([]any, len(columns))
		scanTargets := make([]any, len(columns))
		for i := range values {
			scanTargets[i] = &values[i]
		}
		if err := rows.Scan(scanTargets...); err != nil {
			return Result{}, fmt.Errorf("scan row: %w", err)
		}
		record := make(map[string]any, len(columns))
		for i, column := range columns {
			record[column] = normalizeValue(values[i])
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return Result{}, fmt.Errorf("iterate rows: %w", err)
	}

	return Result{Columns: columns, Rows: records}, nil
}

// normalizeValue applies the wire conventions clients rely on: byte slices
// become text and temporal values collapse to a date-only form.
func normalizeValue(value any) any {
	switch typed := value.(type) {
	case []byte:
		return string(typed)
	case time.Time:
		return typed.Format("2006-01-02")
	default:
		return value
	}
}
