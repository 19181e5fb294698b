// Package render draws the calculator state onto video frames. It is
// purely observational: it consumes read-only snapshots and never
// feeds back into the recognition pipeline.
package render

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"gocv.io/x/gocv"

	"github.com/ayusman/ganita/internal/gesture"
)

// State is the per-frame snapshot the overlay renders.
type State struct {
	Display  string
	Gesture  gesture.Symbol
	Progress float64
	History  []string
}

// Display panel geometry.
const (
	panelWidth  = 280
	panelHeight = 150
	panelMargin = 20
	barWidth    = 200
	barHeight   = 18
)

// Overlay renders the calculator UI onto frames.
type Overlay struct {
	textColor    color.RGBA
	panelColor   color.RGBA
	accentColor  color.RGBA
	gestureColor color.RGBA
	errorColor   color.RGBA
}

// NewOverlay creates an Overlay with the default color scheme.
func NewOverlay() *Overlay {
	return &Overlay{
		textColor:    color.RGBA{255, 255, 255, 0},
		panelColor:   color.RGBA{60, 60, 60, 0},
		accentColor:  color.RGBA{0, 165, 255, 0},
		gestureColor: color.RGBA{100, 255, 100, 0},
		errorColor:   color.RGBA{255, 0, 0, 0},
	}
}

// Draw renders the display panel, hold progress, history and gesture
// legend onto the frame in place.
func (o *Overlay) Draw(frame *gocv.Mat, st State) {
	if frame == nil || frame.Empty() {
		return
	}

	w := frame.Cols()

	o.drawPanel(frame, w, st)
	o.drawGesture(frame, st)
	o.drawHistory(frame, w, st.History)
	o.drawLegend(frame)
}

// drawPanel draws the calculator display in the top-right corner.
func (o *Overlay) drawPanel(frame *gocv.Mat, frameWidth int, st State) {
	x := frameWidth - panelWidth - panelMargin
	rect := image.Rect(x, panelMargin, x+panelWidth, panelMargin+panelHeight)

	gocv.Rectangle(frame, rect, o.panelColor, -1)
	gocv.Rectangle(frame, rect, o.accentColor, 2)

	// Shrink long text so it stays inside the panel.
	scale := 1.5
	if len(st.Display) >= 10 {
		scale = 1.0
	}

	textColor := o.textColor
	if strings.HasPrefix(st.Display, "Error") {
		textColor = o.errorColor
	}

	size := gocv.GetTextSize(st.Display, gocv.FontHersheySimplex, scale, 2)
	textX := x + (panelWidth-size.X)/2
	textY := panelMargin + panelHeight - 40

	gocv.PutText(frame, st.Display, image.Pt(textX, textY),
		gocv.FontHersheySimplex, scale, textColor, 2)
}

// drawGesture draws the currently tracked gesture and its hold
// progress bar in the bottom-left corner.
func (o *Overlay) drawGesture(frame *gocv.Mat, st State) {
	if st.Gesture == gesture.None {
		return
	}

	h := frame.Rows()
	label := fmt.Sprintf("Gesture: %s", st.Gesture)
	gocv.PutText(frame, label, image.Pt(panelMargin, h-60),
		gocv.FontHersheySimplex, 0.8, o.gestureColor, 2)

	barRect := image.Rect(panelMargin, h-45, panelMargin+barWidth, h-45+barHeight)
	gocv.Rectangle(frame, barRect, o.textColor, 1)

	fill := int(st.Progress * float64(barWidth))
	if fill > 0 {
		fillRect := image.Rect(panelMargin, h-45, panelMargin+fill, h-45+barHeight)
		gocv.Rectangle(frame, fillRect, o.gestureColor, -1)
	}
}

// drawHistory lists recent calculations under the display panel.
func (o *Overlay) drawHistory(frame *gocv.Mat, frameWidth int, history []string) {
	x := frameWidth - panelWidth - panelMargin
	y := panelMargin + panelHeight + 25

	for i, entry := range history {
		gocv.PutText(frame, entry, image.Pt(x, y+i*22),
			gocv.FontHersheySimplex, 0.5, o.textColor, 1)
	}
}

// drawLegend lists the gesture controls down the left edge.
func (o *Overlay) drawLegend(frame *gocv.Mat) {
	lines := []string{
		"0-5: fingers",
		"+: thumbs up",
		"-: thumbs down",
		"*: peace sign",
		"/: point up",
		"=: flat palm",
	}

	for i, line := range lines {
		gocv.PutText(frame, line, image.Pt(panelMargin, 40+i*22),
			gocv.FontHersheySimplex, 0.5, o.textColor, 1)
	}
}
