package history

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

type RetentionConfig struct {
	Interval time.Duration
	MaxAge   time.Duration
}

// RetentionService prunes old history records on a fixed cadence.
type RetentionService struct {
	Repo   Repository
	Config RetentionConfig
	Logger *slog.Logger
	Clock  func() time.Time
}

type RetentionSummary struct {
	Cutoff         time.Time `json:"cutoff"`
	RecordsDeleted int64     `json:"records_deleted"`
}

func (s *RetentionService) Run(ctx context.Context) error {
	s.ensureDefaults()

	ticker := time.NewTicker(s.Config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			summary, err := s.RunRetentionOnce(ctx)
			if err != nil {
				if s.Logger != nil {
					s.Logger.ErrorContext(ctx, "history retention cycle failed", slog.Any("error", err))
				}
				continue
			}
			if s.Logger != nil {
				s.Logger.InfoContext(ctx, "history retention cycle completed", slog.Any("summary", summary))
			}
		}
	}
}

func (s *RetentionService) RunRetentionOnce(ctx context.Context) (RetentionSummary, error) {
	s.ensureDefaults()
	if s.Repo == nil {
		return RetentionSummary{}, fmt.Errorf("repository is required")
	}

	cutoff := s.Clock().Add(-s.Config.MaxAge)
	deleted, err := s.Repo.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		return RetentionSummary{Cutoff: cutoff}, fmt.Errorf("delete history before %s: %w", cutoff.Format(time.RFC3339), err)
	}

	if deleted > 0 {
		recordsPrunedTotal.Add(float64(deleted))
	}
	return RetentionSummary{Cutoff: cutoff, RecordsDeleted: deleted}, nil
}

func (s *RetentionService) ensureDefaults() {
	if s.Clock == nil {
		s.Clock = time.Now
	}
	if s.Config.Interval <= 0 {
		s.Config.Interval = time.Hour
	}
	if s.Config.MaxAge <= 0 {
		s.Config.MaxAge = 30 * 24 * time.Hour
	}
}
