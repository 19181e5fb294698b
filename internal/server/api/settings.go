// Package api provides HTTP API handlers for the Ganita gesture calculator.
package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/ayusman/ganita/internal/app"
	"github.com/ayusman/ganita/internal/store"
)

// SettingsHandler handles reading and updating runtime settings.
type SettingsHandler struct {
	app   *app.App
	store *store.Store
}

// NewSettingsHandler creates a new SettingsHandler. The store may be
// nil, in which case updates apply to the running app only.
func NewSettingsHandler(a *app.App, s *store.Store) *SettingsHandler {
	return &SettingsHandler{app: a, store: s}
}

type settingsResponse struct {
	HoldTime     float64 `json:"hold_time"`
	HistoryLimit int     `json:"history_limit"`
	CameraID     int     `json:"camera_id"`
}

// updateSettingsRequest carries a partial update. Pointer fields
// distinguish "absent" from zero values.
type updateSettingsRequest struct {
	HoldTime     *float64 `json:"hold_time"`
	HistoryLimit *int     `json:"history_limit"`
	CameraID     *int     `json:"camera_id"`
}

// ServeHTTP routes settings requests by method.
func (h *SettingsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.get(w, r)
	case http.MethodPut:
		h.update(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// get handles GET /api/settings and returns the effective settings.
func (h *SettingsHandler) get(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.current())
}

// update handles PUT /api/settings. Hold time and history limit take
// effect immediately; the camera id only applies on the next start.
func (h *SettingsHandler) update(w http.ResponseWriter, r *http.Request) {
	var req updateSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.HoldTime != nil {
		if *req.HoldTime <= 0 {
			writeError(w, http.StatusBadRequest, "hold_time must be positive")
			return
		}
		d := time.Duration(*req.HoldTime * float64(time.Second))
		if err := h.app.SetHoldTime(d); err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to save hold time")
			return
		}
	}

	if req.HistoryLimit != nil {
		if *req.HistoryLimit <= 0 {
			writeError(w, http.StatusBadRequest, "history_limit must be positive")
			return
		}
		if err := h.app.SetHistoryLimit(*req.HistoryLimit); err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to save history limit")
			return
		}
	}

	if req.CameraID != nil {
		if *req.CameraID < 0 {
			writeError(w, http.StatusBadRequest, "camera_id must not be negative")
			return
		}
		if h.store != nil {
			if err := h.store.Settings().SetCameraID(*req.CameraID); err != nil {
				writeError(w, http.StatusInternalServerError, "Failed to save camera id")
				return
			}
		}
	}

	writeJSON(w, http.StatusOK, h.current())
}

// current assembles the effective settings from the running app and,
// for the camera id, the store.
func (h *SettingsHandler) current() settingsResponse {
	resp := settingsResponse{
		HoldTime:     h.app.HoldTime().Seconds(),
		HistoryLimit: h.app.HistoryLimit(),
		CameraID:     store.DefaultCameraID,
	}
	if h.store != nil {
		resp.CameraID = h.store.Settings().CameraID()
	}
	return resp
}
