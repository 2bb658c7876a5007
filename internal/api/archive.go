package api

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/reshmailfatima/Text2SQL/internal/storage"
)

func handleArchiveGet(deps Dependencies, w http.ResponseWriter, r *http.Request) {
	if deps.ObjectStore == nil {
		writeError(r.Context(), w, http.StatusNotImplemented, "ARCHIVE_NOT_CONFIGURED", "object store is not configured", false, nil)
		return
	}

	key := strings.TrimSpace(r.PathValue("key"))
	if key == "" {
		writeError(r.Context(), w, http.StatusBadRequest, "KEY_REQUIRED", "archive key path parameter is required", false, nil)
		return
	}

	body, err := deps.ObjectStore.Get(r.Context(), key)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) {
			writeError(r.Context(), w, http.StatusNotFound, "ARCHIVE_NOT_FOUND", "archived result was not found", false, nil)
			return
		}
		writeError(r.Context(), w, http.StatusInternalServerError, "ARCHIVE_ERROR", "failed to fetch archived result", true, map[string]any{"details": err.Error()})
		return
	}
	defer func() { _ = body.Close() }()

	w.Header().Set("Content-Type", "application/octet-stream")
	w.WriteHeader(http.StatusOK)
	_, _ = io.Copy(w, body)
}

func handleArchiveDelete(deps Dependencies, w http.ResponseWriter, r *http.Request) {
	if deps.ObjectStore == nil {
		writeError(r.Context(), w, http.StatusNotImplemented, "ARCHIVE_NOT_CONFIGURED", "object store is not configured", false, nil)
		return
	}

	key := strings.TrimSpace(r.PathValue("key"))
	if key == "" {
		writeError(r.Context(), w, http.StatusBadRequest, "KEY_REQUIRED", "archive key path parameter is required", false, nil)
		return
	}

	if err := deps.ObjectStore.Delete(r.Context(), key); err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) {
			writeError(r.Context(), w, http.StatusNotFound, "ARCHIVE_NOT_FOUND", "archived result was not found", false, nil)
			return
		}
		writeError(r.Context(), w, http.StatusInternalServerError, "ARCHIVE_ERROR", "failed to delete archived result", true, map[string]any{"details": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"status": "deleted", "key": key})
}
