package gesture

import (
	"math"

	"github.com/ayusman/ganita/internal/detector"
)

// Classification thresholds, in normalized device coordinates.
const (
	// peaceSpread is the minimum index-tip to middle-tip distance for
	// a spread V to read as multiplication instead of the digit 2.
	peaceSpread = 0.05
	// palmWidth is the maximum index-tip to pinky-tip horizontal
	// distance for an open hand to read as equals instead of 5.
	palmWidth = 0.25
	// palmDepth is the maximum wrist to middle-MCP depth difference
	// for a palm to count as flat to the camera.
	palmDepth = 0.1
)

// Classify maps one frame of hand landmarks to a calculator symbol.
// It is a pure function: anything other than exactly 21 points
// degrades to None, never an error.
//
// The extended-finger count picks a base digit 0-5; pose checks then
// override it ('/' for a vertical index, '*' for a spread V, '=' for a
// flat palm). The thumbs-up/down check runs last and unconditionally,
// so it can override an already chosen '/' or '1'. That precedence is
// deliberate and matches the observed recognizer behavior; a
// simultaneous point-up plus thumb-up pose resolves to the thumb.
func Classify(points []detector.Point3D) Symbol {
	if len(points) != detector.NumLandmarks {
		return None
	}

	symbol := None

	switch countExtended(points) {
	case 0:
		symbol = Zero
	case 1:
		if isPointingUp(points) {
			symbol = Divide
		} else {
			symbol = One
		}
	case 2:
		if isPeaceSign(points) {
			symbol = Multiply
		} else {
			symbol = Two
		}
	case 3:
		symbol = Three
	case 4:
		symbol = Four
	case 5:
		if isFlatPalm(points) {
			symbol = Equals
		} else {
			symbol = Five
		}
	}

	if isThumbsUp(points) {
		symbol = Add
	} else if isThumbsDown(points) {
		symbol = Subtract
	}

	return symbol
}

// countExtended returns how many digits are extended, 0-5.
func countExtended(points []detector.Point3D) int {
	count := 0
	if thumbExtended(points) {
		count++
	}
	for finger := 0; finger < 4; finger++ {
		if fingerExtended(points, finger) {
			count++
		}
	}
	return count
}

// fingerExtended reports whether a non-thumb finger is extended.
// finger is 0-3 for index, middle, ring, pinky. A finger counts as
// extended iff its tip sits above its PIP joint (smaller y is higher).
func fingerExtended(points []detector.Point3D, finger int) bool {
	tip := points[detector.IndexTip+finger*4]
	pip := points[detector.IndexPIP+finger*4]
	return tip.Y < pip.Y
}

// thumbExtended reports sideways thumb extension: the horizontal
// tip-to-IP span exceeds the IP-to-MCP span. This catches the thumb
// regardless of whether it points up or down.
func thumbExtended(points []detector.Point3D) bool {
	tip := points[detector.ThumbTip]
	ip := points[detector.ThumbIP]
	mcp := points[detector.ThumbMCP]
	return math.Abs(tip.X-ip.X) > math.Abs(ip.X-mcp.X)
}

// isPointingUp reports an index finger pointing straight up with the
// middle finger retracted: the division gesture.
func isPointingUp(points []detector.Point3D) bool {
	indexTip := points[detector.IndexTip]
	indexPIP := points[detector.IndexPIP]
	middleTip := points[detector.MiddleTip]
	middlePIP := points[detector.MiddlePIP]

	indexUp := indexTip.Y < indexPIP.Y
	middleDown := middleTip.Y > middlePIP.Y

	horizontal := math.Abs(indexTip.X - indexPIP.X)
	vertical := math.Abs(indexTip.Y - indexPIP.Y)

	return indexUp && middleDown && horizontal < vertical*0.5
}

// isPeaceSign reports a spread V of index and middle fingers with the
// ring retracted: the multiplication gesture.
func isPeaceSign(points []detector.Point3D) bool {
	indexTip := points[detector.IndexTip]
	middleTip := points[detector.MiddleTip]

	indexUp := indexTip.Y < points[detector.IndexPIP].Y
	middleUp := middleTip.Y < points[detector.MiddlePIP].Y
	ringDown := points[detector.RingTip].Y > points[detector.RingPIP].Y

	spread := math.Hypot(indexTip.X-middleTip.X, indexTip.Y-middleTip.Y)

	return indexUp && middleUp && ringDown && spread > peaceSpread
}

// isFlatPalm reports an open palm held flat to the camera with the
// fingers together: the equals gesture.
func isFlatPalm(points []detector.Point3D) bool {
	if countExtended(points) != 5 {
		return false
	}

	width := math.Abs(points[detector.IndexTip].X - points[detector.PinkyTip].X)
	depth := math.Abs(points[detector.Wrist].Z - points[detector.MiddleMCP].Z)

	return width < palmWidth && depth < palmDepth
}

// isThumbsUp reports a raised thumb as the only extended digit with
// the index curled: the plus gesture.
func isThumbsUp(points []detector.Point3D) bool {
	if countExtended(points) != 1 {
		return false
	}

	thumbUp := points[detector.ThumbTip].Y < points[detector.ThumbMCP].Y
	indexDown := points[detector.IndexTip].Y > points[detector.IndexMCP].Y

	return thumbUp && indexDown
}

// isThumbsDown is the vertical mirror of isThumbsUp: the minus gesture.
func isThumbsDown(points []detector.Point3D) bool {
	if countExtended(points) != 1 {
		return false
	}

	thumbDown := points[detector.ThumbTip].Y > points[detector.ThumbMCP].Y
	indexDown := points[detector.IndexTip].Y > points[detector.IndexMCP].Y

	return thumbDown && indexDown
}
