// Package response owns the JSON envelope every handler reply is wrapped in.
// pkg/ctx renders through it for handler code; middleware that runs outside a
// Context (e.g. panic recovery) calls Error directly.
package response

import (
	"encoding/json"
	"net/http"
)

// Envelope is the uniform response body:
//
//	{"status": 200, "message": "...", "data": ..., "errors": {...}}
//
// Empty fields are omitted.
type Envelope struct {
	Status  int         `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Errors  interface{} `json:"errors,omitempty"`
}

// Write serializes body as JSON with the given HTTP status.
func Write(w http.ResponseWriter, status int, body Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body) //nolint:errcheck
}

// Error sends a JSON error envelope.
func Error(w http.ResponseWriter, status int, message string) {
	Write(w, status, Envelope{Status: status, Message: message})
}
