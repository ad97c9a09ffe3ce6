package utils

import (
	"encoding/json"
	"net/http"
)

type Payload struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// JSONResponse sends a JSON response with given status, success flag, and payload
func JSONResponse(w http.ResponseWriter, status int, payload Payload) {
	WriteJSON(w, status, payload)
}

// WriteJSON sends v as the bare response body. Resource endpoints answer
// with the record itself; failures go through JSONResponse.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Fail is shorthand for an unsuccessful Payload.
func Fail(w http.ResponseWriter, status int, message string) {
	JSONResponse(w, status, Payload{
		Success: false,
		Message: message,
	})
}
