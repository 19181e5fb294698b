package gesture

import (
	"sync"
	"time"
)

// Default hold and cooldown windows.
const (
	// DefaultHoldTime is how long a gesture must be held continuously
	// before it is confirmed.
	DefaultHoldTime = 3 * time.Second
	// CooldownTime is the dead zone after a confirmation during which
	// no gesture, same or different, can begin confirming.
	CooldownTime = time.Second
)

// Result is the stabilizer output for one frame.
type Result struct {
	// Symbol is the gesture currently being tracked, or None.
	Symbol Symbol
	// Progress is how far the current hold has advanced, 0.0 to 1.0.
	Progress float64
	// Confirmed is true on exactly the frame the hold completes.
	Confirmed bool
}

// Stabilizer gates classified gestures behind a continuous hold so
// transient hand motion never reaches the calculator. Timestamps are
// injected by the caller; the only requirement is that they are
// monotonically non-decreasing between calls. A confirmation clears
// the tracked gesture and opens a cooldown window, so each continuous
// hold confirms at most once.
type Stabilizer struct {
	mu            sync.Mutex
	holdTime      time.Duration
	active        Symbol
	holdStart     time.Time
	lastConfirmed time.Time
}

// NewStabilizer creates a Stabilizer with the given hold duration.
// Non-positive values fall back to DefaultHoldTime.
func NewStabilizer(holdTime time.Duration) *Stabilizer {
	if holdTime <= 0 {
		holdTime = DefaultHoldTime
	}
	return &Stabilizer{holdTime: holdTime}
}

// SetHoldTime changes the hold duration. It applies from the next
// update; an in-flight hold keeps its start time.
func (s *Stabilizer) SetHoldTime(holdTime time.Duration) {
	if holdTime <= 0 {
		return
	}
	s.mu.Lock()
	s.holdTime = holdTime
	s.mu.Unlock()
}

// HoldTime returns the current hold duration.
func (s *Stabilizer) HoldTime() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.holdTime
}

// Update advances the state machine by one frame.
//
// Transitions, in order:
//   - inside the cooldown window: input is ignored entirely;
//   - symbol None: tracking resets;
//   - same symbol as tracked: progress advances, confirming once the
//     hold time elapses and stamping the cooldown;
//   - new symbol: tracking restarts from now.
func (s *Stabilizer) Update(symbol Symbol, now time.Time) Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.lastConfirmed.IsZero() && now.Sub(s.lastConfirmed) < CooldownTime {
		return Result{Symbol: None}
	}

	if symbol == None {
		s.active = None
		s.holdStart = time.Time{}
		return Result{Symbol: None}
	}

	if symbol == s.active {
		elapsed := now.Sub(s.holdStart)
		if elapsed >= s.holdTime {
			s.lastConfirmed = now
			s.active = None
			s.holdStart = time.Time{}
			return Result{Symbol: symbol, Progress: 1.0, Confirmed: true}
		}
		progress := float64(elapsed) / float64(s.holdTime)
		if progress > 1.0 {
			progress = 1.0
		}
		return Result{Symbol: symbol, Progress: progress}
	}

	s.active = symbol
	s.holdStart = now
	return Result{Symbol: symbol}
}

// Reset drops all tracking state, including the cooldown stamp.
func (s *Stabilizer) Reset() {
	s.mu.Lock()
	s.active = None
	s.holdStart = time.Time{}
	s.lastConfirmed = time.Time{}
	s.mu.Unlock()
}
