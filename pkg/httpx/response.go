package httpx

import (
	"encoding/json"
	"net/http"
)

// Envelope is the body shape of every JSON response the service writes.
type Envelope struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// WriteJSON writes a JSON response with the given status code.
// It automatically sets the Content-Type header and Cache-Control headers.
func WriteJSON(w http.ResponseWriter, code int, v any) {
	NoCache(w)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteSuccess writes a success envelope. data may be nil.
func WriteSuccess(w http.ResponseWriter, code int, message string, data any) {
	WriteJSON(w, code, Envelope{Status: StatusSuccess, Message: message, Data: data})
}

// WriteError writes an error envelope.
func WriteError(w http.ResponseWriter, code int, message string) {
	WriteJSON(w, code, Envelope{Status: StatusError, Message: message})
}

// NoCache sets the Cache-Control and Pragma headers to prevent caching.
// Every response may carry a token or account data.
func NoCache(w http.ResponseWriter) {
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Pragma", "no-cache")
}
