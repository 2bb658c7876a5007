package history

import (
	"context"
	"errors"
	"time"
)

var ErrNotFound = errors.New("history: not found")

// Record is one persisted query round trip.
type Record struct {
	ID           int64
	TraceID      string
	Question     string
	GeneratedSQL string
	Kind         string
	Valid        bool
	ErrorMessage *string
	RowCount     int64
	DurationMS   int64
	CreatedAt    time.Time
}

type InsertInput struct {
	TraceID      string
	Question     string
	GeneratedSQL string
	Kind         string
	Valid        bool
	ErrorMessage *string
	RowCount     int64
	DurationMS   int64
}

type Repository interface {
	Insert(ctx context.Context, in InsertInput) (Record, error)
	GetByID(ctx context.Context, id int64) (Record, error)
	ListRecent(ctx context.Context, limit int) ([]Record, error)
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}
