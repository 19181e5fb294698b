package detector

import (
	"gocv.io/x/gocv"
)

// MockDetector is a test implementation of the Detector interface.
// It allows tests to control the detection results.
type MockDetector struct {
	hands []HandLandmarks
	err   error
}

// NewMockDetector creates a new MockDetector instance.
func NewMockDetector() *MockDetector {
	return &MockDetector{}
}

// SetHands sets the hands that will be returned by Detect.
func (m *MockDetector) SetHands(hands []HandLandmarks) {
	m.hands = hands
}

// SetError sets the error that will be returned by Detect.
func (m *MockDetector) SetError(err error) {
	m.err = err
}

// Detect returns the pre-configured hands or error.
func (m *MockDetector) Detect(frame *gocv.Mat) ([]HandLandmarks, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.hands, nil
}

// Close is a no-op for the mock detector.
func (m *MockDetector) Close() error {
	return nil
}

// Pose fixtures for the calculator gesture alphabet. All poses use a
// right hand with the wrist at (0.5, 0.8) in normalized coordinates,
// built from a fully curled base hand with selected fingers extended.

// curledHand returns a hand with the thumb tucked and all four fingers
// curled (every tip below its PIP joint).
func curledHand() HandLandmarks {
	h := HandLandmarks{
		Handedness: "Right",
		Score:      0.95,
	}

	h.Points[Wrist] = Point3D{X: 0.50, Y: 0.80, Z: 0.0}

	// Thumb tucked against the palm: tip-to-IP horizontal span is
	// smaller than IP-to-MCP, so the thumb does not count as extended.
	h.Points[ThumbCMC] = Point3D{X: 0.55, Y: 0.75, Z: 0.0}
	h.Points[ThumbMCP] = Point3D{X: 0.56, Y: 0.70, Z: 0.0}
	h.Points[ThumbIP] = Point3D{X: 0.58, Y: 0.66, Z: 0.0}
	h.Points[ThumbTip] = Point3D{X: 0.59, Y: 0.64, Z: 0.0}

	h.Points[IndexMCP] = Point3D{X: 0.55, Y: 0.70, Z: -0.02}
	h.Points[IndexPIP] = Point3D{X: 0.55, Y: 0.68, Z: -0.05}
	h.Points[IndexDIP] = Point3D{X: 0.52, Y: 0.70, Z: -0.04}
	h.Points[IndexTip] = Point3D{X: 0.50, Y: 0.72, Z: -0.02}

	h.Points[MiddleMCP] = Point3D{X: 0.50, Y: 0.68, Z: -0.02}
	h.Points[MiddlePIP] = Point3D{X: 0.50, Y: 0.66, Z: -0.05}
	h.Points[MiddleDIP] = Point3D{X: 0.47, Y: 0.68, Z: -0.04}
	h.Points[MiddleTip] = Point3D{X: 0.45, Y: 0.70, Z: -0.02}

	h.Points[RingMCP] = Point3D{X: 0.45, Y: 0.70, Z: -0.02}
	h.Points[RingPIP] = Point3D{X: 0.45, Y: 0.68, Z: -0.05}
	h.Points[RingDIP] = Point3D{X: 0.42, Y: 0.70, Z: -0.04}
	h.Points[RingTip] = Point3D{X: 0.40, Y: 0.72, Z: -0.02}

	h.Points[PinkyMCP] = Point3D{X: 0.40, Y: 0.72, Z: -0.02}
	h.Points[PinkyPIP] = Point3D{X: 0.40, Y: 0.70, Z: -0.05}
	h.Points[PinkyDIP] = Point3D{X: 0.37, Y: 0.72, Z: -0.04}
	h.Points[PinkyTip] = Point3D{X: 0.35, Y: 0.74, Z: -0.02}

	return h
}

// extendFinger straightens a non-thumb finger toward (tipX, tipY).
// mcp is the finger's MCP landmark index; PIP/DIP/TIP follow it.
func extendFinger(h *HandLandmarks, mcp int, tipX, tipY float64) {
	base := h.Points[mcp]
	h.Points[mcp+1] = Point3D{X: base.X + (tipX-base.X)/3, Y: base.Y + (tipY-base.Y)/3, Z: 0.0}
	h.Points[mcp+2] = Point3D{X: base.X + 2*(tipX-base.X)/3, Y: base.Y + 2*(tipY-base.Y)/3, Z: 0.0}
	h.Points[mcp+3] = Point3D{X: tipX, Y: tipY, Z: 0.0}
}

// extendThumb spreads the thumb sideways so the tip-to-IP horizontal
// span exceeds IP-to-MCP, which is the thumb extension test.
func extendThumb(h *HandLandmarks, tipY float64) {
	h.Points[ThumbMCP] = Point3D{X: 0.62, Y: 0.70, Z: 0.0}
	h.Points[ThumbIP] = Point3D{X: 0.68, Y: (0.70 + tipY) / 2, Z: 0.0}
	h.Points[ThumbTip] = Point3D{X: 0.75, Y: tipY, Z: 0.0}
}

// FistLandmarks returns a closed fist: zero extended fingers.
func FistLandmarks() HandLandmarks {
	return curledHand()
}

// OneFingerLandmarks returns a hand with only the index finger
// extended at a slant, so it reads as the digit 1 rather than a
// vertical point.
func OneFingerLandmarks() HandLandmarks {
	h := curledHand()
	extendFinger(&h, IndexMCP, 0.70, 0.50)
	return h
}

// TwoFingerLandmarks returns index and middle fingers extended close
// together: the digit 2.
func TwoFingerLandmarks() HandLandmarks {
	h := curledHand()
	extendFinger(&h, IndexMCP, 0.53, 0.40)
	extendFinger(&h, MiddleMCP, 0.50, 0.41)
	return h
}

// ThreeFingerLandmarks returns index, middle and ring extended: 3.
func ThreeFingerLandmarks() HandLandmarks {
	h := curledHand()
	extendFinger(&h, IndexMCP, 0.58, 0.38)
	extendFinger(&h, MiddleMCP, 0.50, 0.35)
	extendFinger(&h, RingMCP, 0.43, 0.38)
	return h
}

// FourFingerLandmarks returns all four fingers extended, thumb tucked: 4.
func FourFingerLandmarks() HandLandmarks {
	h := ThreeFingerLandmarks()
	extendFinger(&h, PinkyMCP, 0.37, 0.44)
	return h
}

// FiveFingerLandmarks returns an open hand with fingers spread wide,
// so it reads as the digit 5 rather than a flat palm.
func FiveFingerLandmarks() HandLandmarks {
	h := curledHand()
	extendThumb(&h, 0.60)
	extendFinger(&h, IndexMCP, 0.68, 0.40)
	extendFinger(&h, MiddleMCP, 0.52, 0.32)
	extendFinger(&h, RingMCP, 0.40, 0.38)
	extendFinger(&h, PinkyMCP, 0.30, 0.48)
	return h
}

// PointingUpLandmarks returns an index finger pointing straight up,
// which the classifier reads as division.
func PointingUpLandmarks() HandLandmarks {
	h := curledHand()
	extendFinger(&h, IndexMCP, 0.56, 0.38)
	return h
}

// PeaceSignLandmarks returns a V of index and middle fingers spread
// apart, which the classifier reads as multiplication.
func PeaceSignLandmarks() HandLandmarks {
	h := curledHand()
	extendFinger(&h, IndexMCP, 0.60, 0.36)
	extendFinger(&h, MiddleMCP, 0.48, 0.34)
	return h
}

// FlatPalmLandmarks returns an open palm with fingers together and the
// palm flat to the camera, which the classifier reads as equals.
func FlatPalmLandmarks() HandLandmarks {
	h := curledHand()
	extendThumb(&h, 0.60)
	extendFinger(&h, IndexMCP, 0.57, 0.38)
	extendFinger(&h, MiddleMCP, 0.50, 0.35)
	extendFinger(&h, RingMCP, 0.44, 0.38)
	extendFinger(&h, PinkyMCP, 0.40, 0.44)
	return h
}

// ThumbsUpLandmarks returns a thumbs-up: thumb spread and raised above
// its MCP, all fingers curled. The classifier reads it as plus.
func ThumbsUpLandmarks() HandLandmarks {
	h := curledHand()
	h.Points[ThumbMCP] = Point3D{X: 0.56, Y: 0.65, Z: 0.0}
	h.Points[ThumbIP] = Point3D{X: 0.60, Y: 0.50, Z: 0.0}
	h.Points[ThumbTip] = Point3D{X: 0.66, Y: 0.35, Z: 0.0}
	return h
}

// ThumbsDownLandmarks returns a thumbs-down: thumb spread and dropped
// below its MCP, all fingers curled. The classifier reads it as minus.
func ThumbsDownLandmarks() HandLandmarks {
	h := curledHand()
	h.Points[ThumbMCP] = Point3D{X: 0.56, Y: 0.60, Z: 0.0}
	h.Points[ThumbIP] = Point3D{X: 0.60, Y: 0.72, Z: 0.0}
	h.Points[ThumbTip] = Point3D{X: 0.66, Y: 0.85, Z: 0.0}
	return h
}
