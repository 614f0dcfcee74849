package handlers

import (
	"ChatVault/internal/repo"
	"ChatVault/internal/service"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError переводит ошибку ядра в HTTP-статус.
func writeError(w http.ResponseWriter, logger *zap.SugaredLogger, op string, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, service.ErrValidation), errors.Is(err, service.ErrMalformedImport):
		status = http.StatusBadRequest
	case errors.Is(err, repo.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, repo.ErrNotPDF):
		status = http.StatusUnprocessableEntity
	}
	if status == http.StatusInternalServerError {
		logger.Errorw(op+": failed", "error", err)
		writeJSON(w, status, errorResponse{Error: "internal error"})
		return
	}
	logger.Warnw(op+": rejected", "status", status, "error", err)
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

// idParam разбирает {id} из пути.
func idParam(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
