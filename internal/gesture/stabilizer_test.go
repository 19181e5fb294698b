package gesture

import (
	"testing"
	"time"
)

// fakeClock hands out timestamps advanced manually, so hold and
// cooldown behavior is tested without real delays.
type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) advance(d time.Duration) time.Time {
	c.now = c.now.Add(d)
	return c.now
}

func TestStabilizer_ConfirmsAfterHold(t *testing.T) {
	s := NewStabilizer(3 * time.Second)
	clock := newFakeClock()

	// First sighting starts tracking at zero progress.
	res := s.Update(Five, clock.now)
	if res.Symbol != Five || res.Progress != 0 || res.Confirmed {
		t.Fatalf("first frame: got %+v, want tracking start", res)
	}

	// Halfway through the hold.
	res = s.Update(Five, clock.advance(1500*time.Millisecond))
	if res.Confirmed {
		t.Fatal("confirmed before hold time elapsed")
	}
	if res.Progress < 0.49 || res.Progress > 0.51 {
		t.Errorf("progress = %f, want ~0.5", res.Progress)
	}

	// Hold complete.
	res = s.Update(Five, clock.advance(1500*time.Millisecond))
	if !res.Confirmed || res.Symbol != Five || res.Progress != 1.0 {
		t.Fatalf("after full hold: got %+v, want confirmation", res)
	}
}

func TestStabilizer_ConfirmsOncePerHold(t *testing.T) {
	s := NewStabilizer(time.Second)
	clock := newFakeClock()

	s.Update(Two, clock.now)
	res := s.Update(Two, clock.advance(time.Second))
	if !res.Confirmed {
		t.Fatal("expected confirmation after hold time")
	}

	// Continuing to hold the same pose must not re-confirm: the
	// confirmation cleared tracking and opened the cooldown.
	for i := 0; i < 5; i++ {
		res = s.Update(Two, clock.advance(100*time.Millisecond))
		if res.Confirmed {
			t.Fatalf("frame %d: re-confirmed during cooldown", i)
		}
		if res.Symbol != None {
			t.Fatalf("frame %d: input not ignored during cooldown, got %q", i, res.Symbol)
		}
	}
}

func TestStabilizer_CooldownBlocksDifferentSymbol(t *testing.T) {
	s := NewStabilizer(time.Second)
	clock := newFakeClock()

	s.Update(Add, clock.now)
	if res := s.Update(Add, clock.advance(time.Second)); !res.Confirmed {
		t.Fatal("expected confirmation")
	}

	// A different gesture shown immediately is ignored entirely.
	res := s.Update(Equals, clock.advance(500*time.Millisecond))
	if res.Symbol != None || res.Progress != 0 || res.Confirmed {
		t.Fatalf("during cooldown: got %+v, want ignored input", res)
	}

	// Once the cooldown elapses, the new gesture starts tracking fresh.
	res = s.Update(Equals, clock.advance(600*time.Millisecond))
	if res.Symbol != Equals || res.Progress != 0 || res.Confirmed {
		t.Fatalf("after cooldown: got %+v, want tracking start", res)
	}
}

func TestStabilizer_SymbolChangeRestartsHold(t *testing.T) {
	s := NewStabilizer(2 * time.Second)
	clock := newFakeClock()

	s.Update(Three, clock.now)
	s.Update(Three, clock.advance(1900*time.Millisecond))

	// Switching poses just before confirmation restarts the hold.
	res := s.Update(Four, clock.advance(50*time.Millisecond))
	if res.Symbol != Four || res.Progress != 0 {
		t.Fatalf("after switch: got %+v, want fresh tracking of 4", res)
	}

	res = s.Update(Four, clock.advance(1999*time.Millisecond))
	if res.Confirmed {
		t.Fatal("confirmed before the restarted hold completed")
	}
	res = s.Update(Four, clock.advance(time.Millisecond))
	if !res.Confirmed || res.Symbol != Four {
		t.Fatalf("got %+v, want confirmation of 4", res)
	}
}

func TestStabilizer_NoneResetsTracking(t *testing.T) {
	s := NewStabilizer(time.Second)
	clock := newFakeClock()

	s.Update(One, clock.now)
	s.Update(One, clock.advance(900*time.Millisecond))

	// Hand leaves the frame; tracking resets.
	res := s.Update(None, clock.advance(50*time.Millisecond))
	if res.Symbol != None || res.Confirmed {
		t.Fatalf("got %+v, want reset", res)
	}

	// Re-showing the pose starts over rather than resuming.
	res = s.Update(One, clock.advance(100*time.Millisecond))
	if res.Progress != 0 {
		t.Errorf("progress = %f, want 0 after reset", res.Progress)
	}
	res = s.Update(One, clock.advance(999*time.Millisecond))
	if res.Confirmed {
		t.Fatal("confirmed from a stale hold start")
	}
}

func TestStabilizer_SetHoldTime(t *testing.T) {
	s := NewStabilizer(0)
	if s.HoldTime() != DefaultHoldTime {
		t.Errorf("HoldTime() = %v, want default %v", s.HoldTime(), DefaultHoldTime)
	}

	s.SetHoldTime(500 * time.Millisecond)
	clock := newFakeClock()
	s.Update(Zero, clock.now)
	if res := s.Update(Zero, clock.advance(500*time.Millisecond)); !res.Confirmed {
		t.Error("expected confirmation with shortened hold time")
	}

	s.SetHoldTime(0)
	if s.HoldTime() != 500*time.Millisecond {
		t.Error("non-positive hold time should be ignored")
	}
}
