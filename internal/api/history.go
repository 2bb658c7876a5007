package api

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/reshmailfatima/Text2SQL/internal/history"
)

func handleHistoryList(deps Dependencies, w http.ResponseWriter, r *http.Request) {
	if deps.History == nil {
		writeError(r.Context(), w, http.StatusNotImplemented, "HISTORY_NOT_CONFIGURED", "history repository is not configured", false, nil)
		return
	}

	limit := deps.HistoryLimit
	if raw := strings.TrimSpace(r.URL.Query().Get("limit")); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			writeError(r.Context(), w, http.StatusBadRequest, "INVALID_LIMIT", "limit must be a positive integer", false, nil)
			return
		}
		limit = parsed
	}

	records, err := deps.History.ListRecent(r.Context(), limit)
	if err != nil {
		writeError(r.Context(), w, http.StatusInternalServerError, "HISTORY_ERROR", "failed to list history", true, map[string]any{"details": err.Error()})
		return
	}

	items := make([]map[string]any, 0, len(records))
	for _, record := range records {
		items = append(items, historyItem(record))
	}
	writeJSON(w, http.StatusOK, map[string]any{"history": items})
}

func handleHistoryGet(deps Dependencies, w http.ResponseWriter, r *http.Request) {
	if deps.History == nil {
		writeError(r.Context(), w, http.StatusNotImplemented, "HISTORY_NOT_CONFIGURED", "history repository is not configured", false, nil)
		return
	}

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		writeError(r.Context(), w, http.StatusBadRequest, "INVALID_HISTORY_ID", "history id must be a positive integer", false, nil)
		return
	}

	record, err := deps.History.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, history.ErrNotFound) {
			writeError(r.Context(), w, http.StatusNotFound, "HISTORY_NOT_FOUND", "history record was not found", false, nil)
			return
		}
		writeError(r.Context(), w, http.StatusInternalServerError, "HISTORY_ERROR", "failed to get history record", true, map[string]any{"details": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, historyItem(record))
}

func historyItem(record history.Record) map[string]any {
	item := map[string]any{
		"history_id":     record.ID,
		"trace_id":       record.TraceID,
		"question":       record.Question,
		"generated_sql":  record.GeneratedSQL,
		"operation_kind": record.Kind,
		"is_valid":       record.Valid,
		"row_count":      record.RowCount,
		"duration_ms":    record.DurationMS,
		"created_at":     record.CreatedAt,
	}
	if record.ErrorMessage != nil {
		item["error"] = *record.ErrorMessage
	}
	return item
}
