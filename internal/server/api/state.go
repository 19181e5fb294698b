// Package api provides HTTP API handlers for the Ganita gesture calculator.
package api

import (
	"encoding/json"
	"net/http"

	"github.com/ayusman/ganita/internal/app"
)

// StateHandler serves the current calculator state.
type StateHandler struct {
	app *app.App
}

// NewStateHandler creates a new StateHandler backed by the given app.
func NewStateHandler(a *app.App) *StateHandler {
	return &StateHandler{app: a}
}

// ServeHTTP handles GET /api/state and returns the latest snapshot.
func (h *StateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	writeJSON(w, http.StatusOK, h.app.Snapshot())
}

type errorResponse struct {
	Error string `json:"error"`
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}
