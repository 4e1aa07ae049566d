package httpapi

import (
	"encoding/json"
	"net/http"
)

// ErrorEnvelope is the error shape consumed by the dashboard:
// a single human-readable message under "error".
type ErrorEnvelope struct {
	Error string `json:"error"`
}

func WriteJSON(w http.ResponseWriter, status int, payload any) error {
	if w == nil {
		return nil
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return nil
	}
	return json.NewEncoder(w).Encode(payload)
}

func WriteError(w http.ResponseWriter, status int, message string) error {
	return WriteJSON(w, status, &ErrorEnvelope{Error: message})
}
