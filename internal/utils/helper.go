package utils

import (
	"encoding/json"
	"net/http"
	"strconv"
)

func ToUint(id string) (uint, error) {
	n, err := strconv.ParseUint(id, 10, 64)
	return uint(n), err
}

func WriteJSON(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(body)
}

type ErrorBody struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// WriteJSONError writes {"error": {"kind": ..., "message": ...}}.
func WriteJSONError(w http.ResponseWriter, kind, message string, code int) {
	WriteJSON(w, code, map[string]ErrorBody{
		"error": {Kind: kind, Message: message},
	})
}
