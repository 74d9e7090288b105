package transport

import (
	"encoding/json"
	"net/http"
)

// FieldError reports a single schema violation on a submitted payload.
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

type Response struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
}

func WriteJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func WriteSuccess(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, Response{Success: true, Message: message})
}

func WriteError(w http.ResponseWriter, status int, message string, errs []FieldError) {
	WriteJSON(w, status, Response{
		Success: false,
		Message: message,
		Errors:  errs,
	})
}
