package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/skevingreen/ims-server/internal/services"
	"github.com/skevingreen/ims-server/internal/validation"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}

// respondError maps the service error taxonomy onto HTTP statuses:
// validation 400, not-found 404, conflict 409, everything else 500.
func respondError(logger *slog.Logger, w http.ResponseWriter, err error, notFoundMessage string) {
	var verr *validation.Error
	var cerr *services.ConflictError
	switch {
	case errors.As(err, &verr):
		writeMessage(w, http.StatusBadRequest, verr.Error())
	case errors.Is(err, services.ErrNotFound):
		writeMessage(w, http.StatusNotFound, notFoundMessage)
	case errors.As(err, &cerr):
		writeMessage(w, http.StatusConflict, cerr.Error())
	default:
		logger.Error("request failed", "error", err)
		writeMessage(w, http.StatusInternalServerError, "Database error")
	}
}
