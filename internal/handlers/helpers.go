package handlers

import (
	"encoding/json"
	"net/http"

	"nvlaw-backend/internal/httpx"
	"nvlaw-backend/internal/transport"
)

func decodeJSON(r *http.Request, v interface{}) error {
	return httpx.DecodeJSON(r.Body, v)
}

func fieldErrors(s *Server, err error) []transport.FieldError {
	return httpx.FieldErrors(s.Val.ValidationErrors(err))
}

func writeCachedJSON(w http.ResponseWriter, status int, payload []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(payload)
}

func encodeJSON(payload interface{}) ([]byte, error) {
	return json.Marshal(payload)
}
