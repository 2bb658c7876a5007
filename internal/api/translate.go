package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/reshmailfatima/Text2SQL/internal/sqlnorm"
)

type translateRequest struct {
	Query string `json:"query"`
}

type translateResponse struct {
	SQLQuery      string `json:"sql_query"`
	IsValid       bool   `json:"is_valid"`
	OperationKind string `json:"operation_kind"`
	Error         string `json:"error,omitempty"`
}

func handleTranslate(deps Dependencies, w http.ResponseWriter, r *http.Request) {
	if deps.Translator == nil {
		writeError(r.Context(), w, http.StatusNotImplemented, "TRANSLATE_NOT_CONFIGURED", "translator dependency is not configured", false, nil)
		return
	}

	var request translateRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&request); err != nil {
		writeError(r.Context(), w, http.StatusBadRequest, "INVALID_JSON", "invalid translate request body", false, map[string]any{"details": err.Error()})
		return
	}
	question := strings.TrimSpace(request.Query)
	if question == "" {
		writeError(r.Context(), w, http.StatusBadRequest, "QUERY_REQUIRED", "query is required", false, nil)
		return
	}

	statement, ok := generateStatement(deps, r, question)
	if !ok {
		writeJSON(w, http.StatusOK, translateResponse{
			OperationKind: string(sqlnorm.KindUnknown),
			Error:         generationFailedMessage,
		})
		return
	}

	writeJSON(w, http.StatusOK, translateResponse{
		SQLQuery:      statement,
		IsValid:       true,
		OperationKind: string(sqlnorm.Classify(statement)),
	})
}
