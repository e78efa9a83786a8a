package utils

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/starwars-api/models"
)

// WriteJSON serializes data and writes it with the given status code and
// a Content-Type of application/json.
//
// If marshaling fails, it responds with 500 Internal Server Error
// and returns a wrapped error.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// WriteError writes {"error": msg}.
func WriteError(w http.ResponseWriter, msg string, statusCode int) (int, error) {
	return WriteJSON(w, models.ErrorResponse{Error: msg}, statusCode)
}

// WriteMessage writes {"msg": msg}.
func WriteMessage(w http.ResponseWriter, msg string, statusCode int) (int, error) {
	return WriteJSON(w, models.MessageResponse{Msg: msg}, statusCode)
}
