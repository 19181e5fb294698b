package app

import (
	"log"
	"time"

	"gocv.io/x/gocv"

	"github.com/ayusman/ganita/internal/gesture"
	"github.com/ayusman/ganita/internal/render"
)

// runPipeline is the frame loop. One iteration is one capture, at most
// one stabilizer update and at most one calculator transition.
//
// The loop idles at IdleFPS running only motion detection; motion
// wakes it to ActiveFPS for hand detection. Unlike motion, a visible
// hand keeps the pipeline active even when perfectly still - a held
// gesture is motionless by design - so the idle fallback is driven by
// hand absence, not by motion absence.
func (a *App) runPipeline() {
	interval := time.Second / time.Duration(IdleFPS)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-a.stopCh:
			return
		case <-ticker.C:
			if !a.IsEnabled() {
				continue
			}

			wasActive := a.activeMode
			a.step(time.Now())

			if a.activeMode != wasActive {
				if a.activeMode {
					interval = time.Second / time.Duration(ActiveFPS)
				} else {
					interval = time.Second / time.Duration(IdleFPS)
				}
				ticker.Reset(interval)
			}
		}
	}
}

// step processes one frame at the injected timestamp. It is the whole
// pipeline for a single iteration, separated from the ticker loop so
// tests can drive it with synthetic time.
func (a *App) step(now time.Time) {
	frame, err := a.camera.ReadFrame()
	if err != nil {
		log.Printf("Error reading frame: %v", err)
		return
	}
	defer frame.Close()

	if !a.activeMode {
		motionDetected, _ := a.motion.Detect(frame)
		if !motionDetected {
			a.publish(frame, gesture.Result{})
			return
		}
		a.activeMode = true
		a.lastHandSeen = now
		a.camera.SetFPS(ActiveFPS)
		log.Println("Switched to active mode")
	}

	symbol := gesture.None

	hands, err := a.Detector().Detect(frame)
	if err != nil {
		log.Printf("Error detecting hands: %v", err)
	} else if len(hands) > 0 {
		// Only the first hand is consulted.
		symbol = gesture.Classify(hands[0].Points[:])
		a.lastHandSeen = now
	}

	if len(hands) == 0 && now.Sub(a.lastHandSeen) > IdleTimeout {
		a.activeMode = false
		a.camera.SetFPS(IdleFPS)
		a.motion.Reset()
		log.Println("Switched to idle mode")
	}

	result := a.stabilizer.Update(symbol, now)

	if result.Confirmed {
		changed := a.engine.Process(result.Symbol)
		a.confirmations++
		log.Printf("Gesture confirmed: %s -> %s (changed=%v)",
			result.Symbol, a.engine.DisplayText(), changed)
	}

	a.publish(frame, result)
}

// publish renders the overlay onto the frame and swaps in the new
// snapshot and JPEG under the snapshot lock.
func (a *App) publish(frame *gocv.Mat, result gesture.Result) {
	snap := a.buildSnapshot(result.Symbol, result.Progress)

	a.overlay.Draw(frame, render.State{
		Display:  snap.Display,
		Gesture:  result.Symbol,
		Progress: result.Progress,
		History:  snap.History,
	})

	var jpeg []byte
	if buf, err := gocv.IMEncode(".jpg", *frame); err == nil {
		jpeg = append([]byte(nil), buf.GetBytes()...)
		buf.Close()
	} else {
		log.Printf("Error encoding frame: %v", err)
	}

	a.snapMu.Lock()
	a.snapshot = snap
	if jpeg != nil {
		a.frameJPEG = jpeg
	}
	a.snapMu.Unlock()
}

// buildSnapshot assembles the published view of the calculator state.
func (a *App) buildSnapshot(symbol gesture.Symbol, progress float64) Snapshot {
	return Snapshot{
		SessionID:     a.sessionID,
		Display:       a.engine.DisplayText(),
		Gesture:       string(symbol),
		Progress:      progress,
		Confirmations: a.confirmations,
		History:       a.engine.History(a.HistoryLimit()),
	}
}
