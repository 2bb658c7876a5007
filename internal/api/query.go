package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/reshmailfatima/Text2SQL/internal/history"
	"github.com/reshmailfatima/Text2SQL/internal/nl2sql"
	"github.com/reshmailfatima/Text2SQL/internal/observability"
	"github.com/reshmailfatima/Text2SQL/internal/schema"
	"github.com/reshmailfatima/Text2SQL/internal/sqlnorm"
)

// generationFailedMessage is the client-facing error for requests where the
// generator produced no usable statement. The request itself still succeeds.
const generationFailedMessage = "Failed to generate valid SQL query"

type queryRequest struct {
	Query string `json:"query"`
}

type queryResponse struct {
	SQLQuery      string           `json:"sql_query"`
	IsValid       bool             `json:"is_valid"`
	OperationKind string           `json:"operation_kind"`
	Results       []map[string]any `json:"results,omitempty"`
	Error         string           `json:"error,omitempty"`
}

func handleQuery(deps Dependencies, w http.ResponseWriter, r *http.Request) {
	if deps.Translator == nil || deps.Executor == nil {
		writeError(r.Context(), w, http.StatusNotImplemented, "QUERY_NOT_CONFIGURED", "query dependencies are not configured", false, nil)
		return
	}

	var request queryRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&request); err != nil {
		writeError(r.Context(), w, http.StatusBadRequest, "INVALID_JSON", "invalid query request body", false, map[string]any{"details": err.Error()})
		return
	}
	question := strings.TrimSpace(request.Query)
	if question == "" {
		writeError(r.Context(), w, http.StatusBadRequest, "QUERY_REQUIRED", "query is required", false, nil)
		return
	}

	started := time.Now()
	statement, ok := generateStatement(deps, r, question)
	if !ok {
		response := queryResponse{
			OperationKind: string(sqlnorm.KindUnknown),
			Error:         generationFailedMessage,
		}
		recordOutcome(deps, r, question, response, 0, time.Since(started))
		writeJSON(w, http.StatusOK, response)
		return
	}

	kind := sqlnorm.Classify(statement)
	result, err := deps.Executor.Execute(r.Context(), statement)
	if err != nil {
		response := queryResponse{
			SQLQuery:      statement,
			OperationKind: string(kind),
			Error:         "Database error: " + err.Error(),
		}
		recordOutcome(deps, r, question, response, 0, time.Since(started))
		writeJSON(w, http.StatusOK, response)
		return
	}

	results := result.Rows
	if len(results) == 0 && kind != sqlnorm.KindSelect {
		results = []map[string]any{{"message": fmt.Sprintf("%s operation completed successfully", kind)}}
	}

	response := queryResponse{
		SQLQuery:      statement,
		IsValid:       true,
		OperationKind: string(kind),
		Results:       results,
	}
	rowCount := int64(len(result.Rows))
	if result.Command {
		rowCount = result.RowsAffected
	}
	recordOutcome(deps, r, question, response, rowCount, time.Since(started))

	if kind == sqlnorm.KindSelect && len(result.Rows) > 0 {
		archiveResult(deps, r, result.Rows)
	}

	writeJSON(w, http.StatusOK, response)
}

// generateStatement runs the read side of the pipeline: schema description,
// generation, extraction, and intent reconciliation. A missing or failing
// schema source degrades the prompt but never the request.
func generateStatement(deps Dependencies, r *http.Request, question string) (string, bool) {
	var tables []schema.Table
	if deps.SchemaSource != nil {
		described, err := deps.SchemaSource.Describe(r.Context())
		if err != nil {
			if deps.Logger != nil {
				deps.Logger.WarnContext(r.Context(), "schema description failed, continuing without schema context", slog.Any("error", err))
			}
		} else {
			tables = described
		}
	}

	generated, err := deps.Translator.Translate(r.Context(), nl2sql.Request{Question: question, Schema: tables})
	if err != nil {
		if deps.Logger != nil {
			deps.Logger.WarnContext(r.Context(), "sql generation failed", slog.Any("error", err))
		}
		return "", false
	}

	statement, ok := deps.Pipeline.Extract(generated.Text)
	if !ok {
		return "", false
	}
	return deps.Pipeline.Reconcile(question, statement), true
}

// recordOutcome persists the round trip when history is configured. Failures
// are logged and swallowed so bookkeeping never breaks the request.
func recordOutcome(deps Dependencies, r *http.Request, question string, response queryResponse, rowCount int64, elapsed time.Duration) {
	if deps.History == nil {
		return
	}
	input := history.InsertInput{
		TraceID:      observability.TraceIDFromContext(r.Context()),
		Question:     question,
		GeneratedSQL: response.SQLQuery,
		Kind:         response.OperationKind,
		Valid:        response.IsValid,
		RowCount:     rowCount,
		DurationMS:   elapsed.Milliseconds(),
	}
	if response.Error != "" {
		message := response.Error
		input.ErrorMessage = &message
	}
	if _, err := deps.History.Insert(r.Context(), input); err != nil {
		if deps.Logger != nil {
			deps.Logger.ErrorContext(r.Context(), "history insert failed", slog.Any("error", err))
		}
	}
}

// archiveResult uploads a result set when archiving is configured. Failures
// are logged and swallowed.
func archiveResult(deps Dependencies, r *http.Request, rows []map[string]any) {
	if deps.Archiver == nil {
		return
	}
	traceID := observability.TraceIDFromContext(r.Context())
	if _, err := deps.Archiver.Archive(r.Context(), traceID, rows); err != nil {
		if deps.Logger != nil {
			deps.Logger.ErrorContext(r.Context(), "result archive failed", slog.Any("error", err))
		}
	}
}
