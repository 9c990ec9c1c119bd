package httpx

import (
	"encoding/json"
	"net/http"
)

type errorEnvelope struct {
	Error string `json:"error"`
}

type fieldErrorsEnvelope struct {
	Errors map[string][]string `json:"errors"`
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// ErrorJSON writes {"error": message} with the given status.
func ErrorJSON(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, errorEnvelope{Error: message})
}

// FieldErrors writes {"errors": {field: [messages...]}} with the given status.
func FieldErrors(w http.ResponseWriter, status int, errs map[string][]string) {
	WriteJSON(w, status, fieldErrorsEnvelope{Errors: errs})
}
