package migrations

import (
	"strings"
	"testing"
)

func TestHistoryMigrationContainsRequiredTableAndIndexes(t *testing.T) {
	body, err := embeddedFS.ReadFile("sql/0001_query_history.up.sql")
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}

	sql := string(body)
	requiredSnippets := []string{
		"CREATE TABLE IF NOT EXISTS query_history",
		"history_id BIGSERIAL PRIMARY KEY",
		"trace_id TEXT",
		"question TEXT NOT NULL",
		"generated_sql TEXT",
		"operation_kind TEXT",
		"is_valid BOOLEAN",
		"error_message TEXT",
		"row_count BIGINT",
		"duration_ms BIGINT",
		"created_at TIMESTAMPTZ",
		"CREATE INDEX IF NOT EXISTS idx_query_history_created_at",
		"CREATE INDEX IF NOT EXISTS idx_query_history_trace_id",
	}

	for _, snippet := range requiredSnippets {
		if !strings.Contains(sql, snippet) {
			t.Fatalf("migration missing required snippet: %s", snippet)
		}
	}
}
