package gesture

import (
	"testing"

	"github.com/ayusman/ganita/internal/detector"
)

func TestClassify_Digits(t *testing.T) {
	cases := []struct {
		name string
		hand detector.HandLandmarks
		want Symbol
	}{
		{"fist is zero", detector.FistLandmarks(), Zero},
		{"one slanted finger is one", detector.OneFingerLandmarks(), One},
		{"two close fingers is two", detector.TwoFingerLandmarks(), Two},
		{"three fingers is three", detector.ThreeFingerLandmarks(), Three},
		{"four fingers is four", detector.FourFingerLandmarks(), Four},
		{"spread open hand is five", detector.FiveFingerLandmarks(), Five},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Classify(tc.hand.Points[:])
			if got != tc.want {
				t.Errorf("Classify() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestClassify_Operators(t *testing.T) {
	cases := []struct {
		name string
		hand detector.HandLandmarks
		want Symbol
	}{
		{"thumbs up is plus", detector.ThumbsUpLandmarks(), Add},
		{"thumbs down is minus", detector.ThumbsDownLandmarks(), Subtract},
		{"peace sign is multiply", detector.PeaceSignLandmarks(), Multiply},
		{"pointing up is divide", detector.PointingUpLandmarks(), Divide},
		{"flat palm is equals", detector.FlatPalmLandmarks(), Equals},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Classify(tc.hand.Points[:])
			if got != tc.want {
				t.Errorf("Classify() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestClassify_PeaceSignNeedsSpread(t *testing.T) {
	// Index and middle extended with ring retracted reads as
	// multiplication only when the tips are spread apart.
	spread := detector.PeaceSignLandmarks()
	if got := Classify(spread.Points[:]); got != Multiply {
		t.Errorf("spread V: Classify() = %q, want %q", got, Multiply)
	}

	together := detector.TwoFingerLandmarks()
	if got := Classify(together.Points[:]); got != Two {
		t.Errorf("tips together: Classify() = %q, want %q", got, Two)
	}
}

func TestClassify_ThumbOverridesPoint(t *testing.T) {
	// A pose that satisfies both the vertical-index test and the
	// thumbs-up test resolves to the thumb: the thumb check runs last.
	hand := detector.PointingUpLandmarks()

	// Spread the thumb upward while keeping the index vertical. The
	// index is still up, so the thumbs-up index-down condition fails
	// and the pose stays division.
	hand.Points[detector.ThumbMCP] = detector.Point3D{X: 0.56, Y: 0.65}
	hand.Points[detector.ThumbIP] = detector.Point3D{X: 0.60, Y: 0.50}
	hand.Points[detector.ThumbTip] = detector.Point3D{X: 0.66, Y: 0.35}

	// Two extended digits now (thumb + index), so neither branch fires.
	if got := Classify(hand.Points[:]); got != Two {
		t.Errorf("thumb+index: Classify() = %q, want %q", got, Two)
	}

	// Curl the index back down: pure thumbs-up wins over any digit.
	curled := detector.ThumbsUpLandmarks()
	if got := Classify(curled.Points[:]); got != Add {
		t.Errorf("thumbs up: Classify() = %q, want %q", got, Add)
	}
}

func TestClassify_MalformedFrame(t *testing.T) {
	t.Run("nil points", func(t *testing.T) {
		if got := Classify(nil); got != None {
			t.Errorf("Classify(nil) = %q, want None", got)
		}
	})

	t.Run("wrong point count", func(t *testing.T) {
		hand := detector.FistLandmarks()
		if got := Classify(hand.Points[:20]); got != None {
			t.Errorf("Classify(20 points) = %q, want None", got)
		}
	})
}

func TestSymbol_Predicates(t *testing.T) {
	for _, s := range []Symbol{Zero, One, Five, "9"} {
		if !s.IsDigit() {
			t.Errorf("%q should be a digit", s)
		}
	}
	for _, s := range []Symbol{Add, Subtract, Multiply, Divide} {
		if !s.IsOperator() {
			t.Errorf("%q should be an operator", s)
		}
		if s.IsDigit() {
			t.Errorf("%q should not be a digit", s)
		}
	}
	if Equals.IsOperator() || Clear.IsOperator() || None.IsDigit() {
		t.Error("equals, clear and none are neither digits nor operators")
	}
}
