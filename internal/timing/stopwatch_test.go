package timing

import (
	"testing"
	"time"
)

var t0 = time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

func at(secs int) time.Time { return t0.Add(time.Duration(secs) * time.Second) }

func TestStopwatch_NoPauses(t *testing.T) {
	sw := NewStopwatch(t0)
	if got := sw.Elapsed(at(42)); got != 42*time.Second {
		t.Errorf("Elapsed = %v, want 42s", got)
	}
}

func TestStopwatch_SinglePause(t *testing.T) {
	// Pause at t=10 for 5s, submit at t=30: elapsed = 30 - 5 = 25s.
	sw := NewStopwatch(t0)
	sw.Pause(at(10))
	sw.Resume(at(15))
	if got := sw.Finalize(at(30)); got != 25*time.Second {
		t.Errorf("Finalize = %v, want 25s", got)
	}
}

func TestStopwatch_MultiplePauseCycles(t *testing.T) {
	sw := NewStopwatch(t0)
	sw.Pause(at(5))
	sw.Resume(at(8)) // 3s
	sw.Pause(at(20))
	sw.Resume(at(27)) // 7s
	sw.Pause(at(40))
	sw.Resume(at(41)) // 1s
	if got := sw.Finalize(at(60)); got != 49*time.Second {
		t.Errorf("Finalize = %v, want 49s (60 - 11 paused)", got)
	}
}

func TestStopwatch_SubmitWhilePaused(t *testing.T) {
	// An open pause at submit time is finalized first.
	sw := NewStopwatch(t0)
	sw.Pause(at(10))
	if got := sw.Finalize(at(30)); got != 10*time.Second {
		t.Errorf("Finalize = %v, want 10s", got)
	}
	if sw.Paused() {
		t.Error("stopwatch still paused after Finalize")
	}
}

func TestStopwatch_ElapsedDuringOpenPause(t *testing.T) {
	sw := NewStopwatch(t0)
	sw.Pause(at(10))
	// Clock advances but elapsed must not.
	if got := sw.Elapsed(at(25)); got != 10*time.Second {
		t.Errorf("Elapsed = %v, want 10s", got)
	}
}

func TestStopwatch_DoubleTransitionsAreNoOps(t *testing.T) {
	sw := NewStopwatch(t0)
	sw.Resume(at(1)) // resume while running
	sw.Pause(at(10))
	sw.Pause(at(12)) // pause while paused keeps the original pauseStart
	sw.Resume(at(15))
	sw.Resume(at(16))
	if got := sw.Finalize(at(30)); got != 25*time.Second {
		t.Errorf("Finalize = %v, want 25s", got)
	}
}

func TestCountdown_TickAndExpiry(t *testing.T) {
	c := NewCountdown(2)
	if c.Tick(false) {
		t.Error("tick 1 expired early")
	}
	if got := c.Remaining(); got != 1 {
		t.Errorf("Remaining = %d, want 1", got)
	}
	if c.Tick(false) {
		t.Error("tick 2 expired early")
	}
	if !c.Tick(false) {
		t.Error("tick 3 should expire")
	}
	if c.Tick(false) {
		t.Error("expiry must fire exactly once")
	}
	if got := c.Remaining(); got != 0 {
		t.Errorf("Remaining after expiry = %d, want 0", got)
	}
}

func TestCountdown_PausedTicksAreSkipped(t *testing.T) {
	c := NewCountdown(600)
	for i := 0; i < 10; i++ {
		c.Tick(false)
	}
	for i := 0; i < 5; i++ {
		c.Tick(true) // paused: skipped, not decremented
	}
	for i := 0; i < 15; i++ {
		c.Tick(false)
	}
	// 25 active seconds consumed out of 600.
	if got := c.Remaining(); got != 575 {
		t.Errorf("Remaining = %d, want 575", got)
	}
}

func TestFormatClock(t *testing.T) {
	cases := []struct {
		secs int
		want string
	}{
		{0, "00:00"},
		{575, "09:35"},
		{3599, "59:59"},
		{3600, "1:00:00"},
		{7325, "2:02:05"},
		{-3, "00:00"},
	}
	for _, c := range cases {
		if got := FormatClock(c.secs); got != c.want {
			t.Errorf("FormatClock(%d) = %q, want %q", c.secs, got, c.want)
		}
	}
}

func TestFormatTaken(t *testing.T) {
	if got := FormatTaken(25); got != "0m 25s" {
		t.Errorf("FormatTaken(25) = %q", got)
	}
	if got := FormatTaken(150); got != "2m 30s" {
		t.Errorf("FormatTaken(150) = %q", got)
	}
}
