package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gracechapel/api/internal/db"
	"github.com/gracechapel/api/internal/pagination"
	"github.com/gracechapel/api/internal/service"
)

// envelope is the uniform JSON response shape shared by all resource handlers.
type envelope struct {
	Success bool             `json:"success"`
	Data    any              `json:"data,omitempty"`
	Message string           `json:"message,omitempty"`
	Meta    *pagination.Meta `json:"meta,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(v)
	if err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func respondData(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, envelope{Success: true, Data: data})
}

func respondList(w http.ResponseWriter, data any, meta pagination.Meta) {
	writeJSON(w, http.StatusOK, envelope{Success: true, Data: data, Meta: &meta})
}

func respondMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, envelope{Success: true, Message: message})
}

func respondError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, envelope{Success: false, Message: message})
}

// respondFailure maps a service or repository error onto the envelope.
// Validation → 400, the entity's not-found sentinel → 404, store capacity →
// 503 with a retry hint, everything else → 500 with no internal detail.
func respondFailure(w http.ResponseWriter, err error, notFound error, resource string) {
	var ve *service.ValidationError
	switch {
	case errors.As(err, &ve):
		respondError(w, http.StatusBadRequest, ve.Message)
	case notFound != nil && errors.Is(err, notFound):
		respondError(w, http.StatusNotFound, resource+" not found")
	case db.IsCapacityError(err):
		respondError(w, http.StatusServiceUnavailable, "service is temporarily busy, please try again shortly")
	default:
		slog.Error("request failed", "resource", resource, "error", err)
		respondError(w, http.StatusInternalServerError, "something went wrong")
	}
}
