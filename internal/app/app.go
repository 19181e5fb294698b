// Package app wires the capture, detection, recognition and calculator
// components into the per-frame processing loop.
package app

import (
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ayusman/ganita/internal/calc"
	"github.com/ayusman/ganita/internal/capture"
	"github.com/ayusman/ganita/internal/detector"
	"github.com/ayusman/ganita/internal/gesture"
	"github.com/ayusman/ganita/internal/render"
	"github.com/ayusman/ganita/internal/store"
)

// Pipeline timing constants.
const (
	// IdleFPS is the frame rate while waiting for motion.
	IdleFPS = 5
	// ActiveFPS is the frame rate while a hand is being tracked.
	ActiveFPS = 15
	// IdleTimeout is how long the pipeline stays active after the last
	// hand sighting before dropping back to idle.
	IdleTimeout = 2 * time.Second
)

// Config holds configuration options for the application.
type Config struct {
	Store        *store.Store
	CameraID     int
	HoldTime     time.Duration
	HistoryLimit int
	MotionThresh float64
}

// Snapshot is the read-only view of calculator state published after
// every processed frame. Presentation surfaces consume it; nothing
// feeds back through it.
type Snapshot struct {
	SessionID     string   `json:"session_id"`
	Display       string   `json:"display"`
	Gesture       string   `json:"gesture"`
	Progress      float64  `json:"progress"`
	Confirmations int      `json:"confirmations"`
	History       []string `json:"history"`
}

// App owns the processing loop. The stabilizer and calculator engine
// are mutated only by the pipeline goroutine; everything published to
// other goroutines goes through guarded snapshots.
type App struct {
	config     Config
	sessionID  string
	camera     capture.Camera
	motion     *capture.MotionDetector
	detector   detector.Detector
	stabilizer *gesture.Stabilizer
	engine     *calc.Engine
	overlay    *render.Overlay

	enabled bool
	mu      sync.RWMutex
	stopCh  chan struct{}

	// Pipeline-owned state, only touched from the loop goroutine.
	activeMode    bool
	lastHandSeen  time.Time
	confirmations int

	snapMu    sync.RWMutex
	snapshot  Snapshot
	frameJPEG []byte
}

// New creates a new App instance with the given configuration.
func New(config Config) *App {
	if config.HoldTime <= 0 {
		config.HoldTime = gesture.DefaultHoldTime
	}
	if config.HistoryLimit <= 0 {
		config.HistoryLimit = calc.DefaultHistoryLimit
	}
	if config.MotionThresh <= 0 {
		config.MotionThresh = 1.0 // 1% pixel change wakes the pipeline
	}

	a := &App{
		config:     config,
		sessionID:  uuid.New().String(),
		camera:     capture.NewCamera(config.CameraID),
		motion:     capture.NewMotionDetector(config.MotionThresh),
		stabilizer: gesture.NewStabilizer(config.HoldTime),
		engine:     calc.NewEngine(),
		overlay:    render.NewOverlay(),
		enabled:    true,
	}

	// Try MediaPipe first, fall back to the mock detector.
	if mp, err := detector.NewMediaPipeDetector(detector.DefaultConfig()); err == nil {
		a.detector = mp
		log.Println("Using MediaPipe hand detection")
	} else {
		log.Printf("MediaPipe not available (%v), using mock detector", err)
		a.detector = detector.NewMockDetector()
	}

	a.snapshot = a.buildSnapshot(gesture.None, 0)

	return a
}

// SessionID returns this run's identifier.
func (a *App) SessionID() string {
	return a.sessionID
}

// SetEnabled enables or disables gesture recognition. While disabled
// the loop keeps ticking but frames are not processed.
func (a *App) SetEnabled(enabled bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.enabled = enabled
}

// IsEnabled returns whether gesture recognition is currently enabled.
func (a *App) IsEnabled() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.enabled
}

// SetDetector sets the hand detector implementation to use.
func (a *App) SetDetector(d detector.Detector) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.detector = d
}

// SetCamera replaces the camera. Only valid before Start.
func (a *App) SetCamera(c capture.Camera) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.camera = c
}

// SetHoldTime applies a new hold duration to the running stabilizer
// and persists it when a store is configured.
func (a *App) SetHoldTime(d time.Duration) error {
	a.stabilizer.SetHoldTime(d)
	if a.config.Store == nil {
		return nil
	}
	return a.config.Store.Settings().SetHoldTime(d)
}

// HoldTime returns the stabilizer's current hold duration.
func (a *App) HoldTime() time.Duration {
	return a.stabilizer.HoldTime()
}

// HistoryLimit returns the configured history retrieval limit.
func (a *App) HistoryLimit() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.config.HistoryLimit
}

// SetHistoryLimit changes the history retrieval limit and persists it
// when a store is configured.
func (a *App) SetHistoryLimit(limit int) error {
	if limit <= 0 {
		return nil
	}
	a.mu.Lock()
	a.config.HistoryLimit = limit
	a.mu.Unlock()
	if a.config.Store == nil {
		return nil
	}
	return a.config.Store.Settings().SetHistoryLimit(limit)
}

// Snapshot returns the most recently published calculator state.
func (a *App) Snapshot() Snapshot {
	a.snapMu.RLock()
	defer a.snapMu.RUnlock()

	snap := a.snapshot
	snap.History = append([]string(nil), a.snapshot.History...)
	return snap
}

// LatestFrame returns the most recent annotated frame as JPEG bytes,
// or nil when no frame has been processed yet.
func (a *App) LatestFrame() []byte {
	a.snapMu.RLock()
	defer a.snapMu.RUnlock()

	if a.frameJPEG == nil {
		return nil
	}
	return append([]byte(nil), a.frameJPEG...)
}

// Start opens the camera, records the session and begins the pipeline.
func (a *App) Start() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.stopCh != nil {
		return nil
	}

	if err := a.camera.Open(); err != nil {
		return err
	}

	a.camera.SetFPS(IdleFPS)

	if a.config.Store != nil {
		if err := a.config.Store.Sessions().Start(a.sessionID, time.Now()); err != nil {
			log.Printf("Failed to record session start: %v", err)
		}
	}

	a.stopCh = make(chan struct{})
	go a.runPipeline()

	log.Println("Recognition pipeline started")
	return nil
}

// Stop halts the pipeline, releases resources and finishes the
// session record.
func (a *App) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.stopCh != nil {
		close(a.stopCh)
		a.stopCh = nil
	}

	if err := a.camera.Close(); err != nil {
		log.Printf("Error closing camera: %v", err)
	}

	a.motion.Close()

	if a.detector != nil {
		if err := a.detector.Close(); err != nil {
			log.Printf("Error closing detector: %v", err)
		}
	}

	if a.config.Store != nil {
		a.snapMu.RLock()
		confirmations := a.snapshot.Confirmations
		a.snapMu.RUnlock()

		if err := a.config.Store.Sessions().Finish(a.sessionID, time.Now(), confirmations); err != nil {
			log.Printf("Failed to record session end: %v", err)
		}
	}

	log.Println("Recognition pipeline stopped")
}

// Camera returns the camera instance.
func (a *App) Camera() capture.Camera {
	return a.camera
}

// Detector returns the hand detector.
func (a *App) Detector() detector.Detector {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.detector
}
