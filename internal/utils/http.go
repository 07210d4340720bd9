package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// marshalFailureBody is sent when the payload itself cannot be encoded.
const marshalFailureBody = `{"success":false,"error":"Internal Server Error"}`

// WriteJSON encodes data and writes it with statusCode. API responses may
// carry account data, so they are marked non-cacheable.
//
// When data cannot be marshaled the client gets a 500 error envelope and the
// marshal error is returned. The int result is the number of body bytes
// written.
//
//	utils.WriteJSON(w, models.Response{Success: true}, http.StatusOK)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	body, err := json.Marshal(data)

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")

	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(marshalFailureBody))
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.WriteHeader(statusCode)
	return w.Write(body)
}
