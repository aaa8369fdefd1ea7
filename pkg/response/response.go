// Package response writes the JSON shapes the MangaMart frontend
// expects. Errors are always {"error": message}; the delete route
// additionally carries a success flag.
package response

import (
	"encoding/json"
	"net/http"
)

// JSON writes v with the given status code.
func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

// OK writes v with a 200.
func OK(w http.ResponseWriter, v interface{}) {
	JSON(w, http.StatusOK, v)
}

// Error writes {"error": message} with the given status.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]string{"error": message})
}

// DeleteError writes {"success": false, "error": message}. The delete
// route is the only one whose error body carries the success flag.
func DeleteError(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]interface{}{"success": false, "error": message})
}

// Deleted writes {"success": true, "message": message}.
func Deleted(w http.ResponseWriter, message string) {
	JSON(w, http.StatusOK, map[string]interface{}{"success": true, "message": message})
}
