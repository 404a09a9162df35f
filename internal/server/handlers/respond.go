// Package handlers implements the HTTP handlers of the admin API.
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/thaedal/thaedal-admin/pkg/api"
)

func sendJSON(w http.ResponseWriter, payload any, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}

func sendError(w http.ResponseWriter, code, message string, status int) {
	sendJSON(w, api.ErrorResponse{Error: code, Message: message}, status)
}

// sendValidation reports field-level failures with 422 so clients can
// attach messages to form fields.
func sendValidation(w http.ResponseWriter, fields map[string]string) {
	sendJSON(w, api.ErrorResponse{
		Error:   "validation",
		Message: "validation failed",
		Fields:  fields,
	}, http.StatusUnprocessableEntity)
}

func decodeJSON(w http.ResponseWriter, r *http.Request, logger *slog.Logger, dest any) bool {
	if err := json.NewDecoder(r.Body).Decode(dest); err != nil {
		logger.WarnContext(r.Context(), "failed to decode request body", "error", err)
		sendError(w, "bad_request", "invalid request body", http.StatusBadRequest)
		return false
	}
	return true
}
