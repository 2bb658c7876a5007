package store

import (
	"context"
	"time"
)

// Result is the outcome of one executed statement. Row-producing statements
// fill Columns and Rows; everything else yields a single acknowledgement
// record with Command set.
type Result struct {
	Columns      []string
	Rows         []map[string]any
	RowsAffected int64
	Command      bool
	Duration     time.Duration
}

type Executor interface {
	Execute(ctx context.Context, query string) (Result, error)
}
