package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/rocketscienceinc/tictactoe-stats/internal/apperror"
)

type errorResponse struct {
	Error string `json:"error"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

const (
	messageStorageUnavailable = "storage unavailable"
	messageInternalError      = "internal server error"
)

// writeError - client errors carry the error text, server errors only a fixed message.
func writeError(w http.ResponseWriter, log *slog.Logger, err error) {
	status := statusFor(err)

	switch status {
	case http.StatusServiceUnavailable:
		log.Error("request failed", "status", status, "error", err)
		writeJSON(w, status, errorResponse{Error: messageStorageUnavailable})
	case http.StatusInternalServerError:
		log.Error("request failed", "status", status, "error", err)
		writeJSON(w, status, errorResponse{Error: messageInternalError})
	default:
		writeJSON(w, status, errorResponse{Error: err.Error()})
	}
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, apperror.ErrInvalidSize),
		errors.Is(err, apperror.ErrInvalidResult),
		errors.Is(err, errBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, apperror.ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperror.ErrStorageUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
