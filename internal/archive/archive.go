package archive

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/parquet-go/parquet-go"

	"github.com/reshmailfatima/Text2SQL/internal/storage"
)

// resultRow is the parquet layout for one archived record. Result sets have
// no fixed schema, so each record is stored as its JSON rendering.
type resultRow struct {
	RowIndex int64  `parquet:"row_index"`
	RowJSON  string `parquet:"row_json,zstd"`
}

// Archiver writes query result sets to the object store as parquet files
// keyed by trace id.
type Archiver struct {
	Store  storage.ObjectStore
	Logger *slog.Logger
	Clock  func() time.Time
}

type Summary struct {
	Key         string `json:"key"`
	RecordCount int64  `json:"record_count"`
	SizeBytes   int64  `json:"size_bytes"`
}

func (a *Archiver) Archive(ctx context.Context, traceID string, rows []map[string]any) (Summary, error) {
	a.ensureDefaults()
	if a.Store == nil {
		return Summary{}, fmt.Errorf("object store is required")
	}
	if len(rows) == 0 {
		return Summary{}, fmt.Errorf("rows are required")
	}

	key, err := storage.BuildResultKey(traceID, a.Clock())
	if err != nil {
		return Summary{}, err
	}

	encoded := make([]resultRow, 0, len(rows))
	for i, row := range rows {
		rowJSON, err := json.Marshal(row)
		if err != nil {
			return Summary{}, fmt.Errorf("marshal result row %d: %w", i, err)
		}
		encoded = append(encoded, resultRow{RowIndex: int64(i), RowJSON: string(rowJSON)})
	}

	buf := bytes.NewBuffer(nil)
	writer := parquet.NewGenericWriter[resultRow](buf)
	if _, err := writer.Write(encoded); err != nil {
		resultsArchivedTotal.WithLabelValues("failed").Inc()
		return Summary{}, fmt.Errorf("write parquet rows: %w", err)
	}
	if err := writer.Close(); err != nil {
		resultsArchivedTotal.WithLabelValues("failed").Inc()
		return Summary{}, fmt.Errorf("close parquet writer: %w", err)
	}

	info, err := a.Store.Put(ctx, key, bytes.NewReader(buf.Bytes()), int64(buf.Len()), storage.PutOptions{ContentType: "application/octet-stream"})
	if err != nil {
		resultsArchivedTotal.WithLabelValues("failed").Inc()
		return Summary{}, fmt.Errorf("upload result archive: %w", err)
	}

	resultsArchivedTotal.WithLabelValues("completed").Inc()
	if a.Logger != nil {
		a.Logger.InfoContext(ctx, "result set archived",
			slog.String("key", key),
			slog.Int("records", len(rows)),
			slog.Int64("size_bytes", info.Size),
		)
	}
	return Summary{Key: key, RecordCount: int64(len(rows)), SizeBytes: info.Size}, nil
}

func (a *Archiver) ensureDefaults() {
	if a.Clock == nil {
		a.Clock = time.Now
	}
}
