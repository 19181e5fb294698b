package store

import (
	"errors"
	"testing"
	"time"
)

func TestSettings_GetSet(t *testing.T) {
	s := newTestStore(t)
	settings := s.Settings()

	t.Run("missing key returns ErrNotFound", func(t *testing.T) {
		_, err := settings.Get("nonexistent")
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("round trip", func(t *testing.T) {
		if err := settings.Set(KeyHoldTime, "2.5"); err != nil {
			t.Fatalf("set: %v", err)
		}
		value, err := settings.Get(KeyHoldTime)
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if value != "2.5" {
			t.Errorf("value = %q, want \"2.5\"", value)
		}
	})

	t.Run("set replaces existing value", func(t *testing.T) {
		if err := settings.Set(KeyHoldTime, "4"); err != nil {
			t.Fatalf("set: %v", err)
		}
		value, _ := settings.Get(KeyHoldTime)
		if value != "4" {
			t.Errorf("value = %q, want \"4\"", value)
		}
	})

	t.Run("all returns stored pairs", func(t *testing.T) {
		if err := settings.Set(KeyHistoryLimit, "3"); err != nil {
			t.Fatalf("set: %v", err)
		}
		all, err := settings.All()
		if err != nil {
			t.Fatalf("all: %v", err)
		}
		if all[KeyHoldTime] != "4" || all[KeyHistoryLimit] != "3" {
			t.Errorf("all = %v, missing expected pairs", all)
		}
	})
}

func TestSettings_TypedAccessors(t *testing.T) {
	s := newTestStore(t)
	settings := s.Settings()

	t.Run("defaults when unset", func(t *testing.T) {
		if got := settings.HoldTime(); got != DefaultHoldTime {
			t.Errorf("HoldTime() = %v, want %v", got, DefaultHoldTime)
		}
		if got := settings.HistoryLimit(); got != DefaultHistoryLimit {
			t.Errorf("HistoryLimit() = %d, want %d", got, DefaultHistoryLimit)
		}
		if got := settings.CameraID(); got != DefaultCameraID {
			t.Errorf("CameraID() = %d, want %d", got, DefaultCameraID)
		}
	})

	t.Run("hold time round trip", func(t *testing.T) {
		if err := settings.SetHoldTime(1500 * time.Millisecond); err != nil {
			t.Fatalf("set: %v", err)
		}
		if got := settings.HoldTime(); got != 1500*time.Millisecond {
			t.Errorf("HoldTime() = %v, want 1.5s", got)
		}
	})

	t.Run("defaults on bad values", func(t *testing.T) {
		settings.Set(KeyHoldTime, "not-a-number")
		if got := settings.HoldTime(); got != DefaultHoldTime {
			t.Errorf("HoldTime() = %v, want default for garbage", got)
		}

		settings.Set(KeyHistoryLimit, "-2")
		if got := settings.HistoryLimit(); got != DefaultHistoryLimit {
			t.Errorf("HistoryLimit() = %d, want default for negative", got)
		}
	})

	t.Run("history limit and camera id round trip", func(t *testing.T) {
		if err := settings.SetHistoryLimit(3); err != nil {
			t.Fatalf("set: %v", err)
		}
		if got := settings.HistoryLimit(); got != 3 {
			t.Errorf("HistoryLimit() = %d, want 3", got)
		}

		if err := settings.SetCameraID(2); err != nil {
			t.Fatalf("set: %v", err)
		}
		if got := settings.CameraID(); got != 2 {
			t.Errorf("CameraID() = %d, want 2", got)
		}
	})
}

func TestSessions_Lifecycle(t *testing.T) {
	s := newTestStore(t)
	sessions := s.Sessions()

	started := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	if err := sessions.Start("session-1", started); err != nil {
		t.Fatalf("start: %v", err)
	}

	session, err := sessions.GetByID("session-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if session.EndedAt != nil {
		t.Error("new session should not have an end time")
	}
	if session.Confirmations != 0 {
		t.Errorf("confirmations = %d, want 0", session.Confirmations)
	}

	ended := started.Add(10 * time.Minute)
	if err := sessions.Finish("session-1", ended, 42); err != nil {
		t.Fatalf("finish: %v", err)
	}

	session, err = sessions.GetByID("session-1")
	if err != nil {
		t.Fatalf("get after finish: %v", err)
	}
	if session.EndedAt == nil {
		t.Fatal("finished session should have an end time")
	}
	if session.Confirmations != 42 {
		t.Errorf("confirmations = %d, want 42", session.Confirmations)
	}

	t.Run("finish of unknown session", func(t *testing.T) {
		err := sessions.Finish("no-such-session", ended, 0)
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("list newest first", func(t *testing.T) {
		sessions.Start("session-2", started.Add(time.Hour))

		list, err := sessions.List(10)
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(list) != 2 {
			t.Fatalf("len = %d, want 2", len(list))
		}
		if list[0].ID != "session-2" {
			t.Errorf("first = %q, want newest session", list[0].ID)
		}
	})
}
