package timing

import "fmt"

// Countdown is a per-second remaining-time counter for the test timer.
// Ticks arrive from the scheduler once per wall-clock second; a tick
// received while paused is skipped, not counted, so paused seconds never
// drain the budget. Expiry fires exactly once, on the tick that would
// take the counter negative.
type Countdown struct {
	remaining int
	expired   bool
}

// NewCountdown creates a countdown with the given budget in seconds.
func NewCountdown(durationSeconds int) *Countdown {
	return &Countdown{remaining: durationSeconds}
}

// Tick advances the countdown by one second. Returns true exactly once,
// when the countdown expires. Ticks while paused or after expiry are
// no-ops.
func (c *Countdown) Tick(paused bool) bool {
	if paused || c.expired {
		return false
	}
	c.remaining--
	if c.remaining < 0 {
		c.expired = true
		return true
	}
	return false
}

// Remaining returns the seconds left, clamped at zero for display.
func (c *Countdown) Remaining() int {
	if c.remaining < 0 {
		return 0
	}
	return c.remaining
}

// Expired reports whether the countdown has run out.
func (c *Countdown) Expired() bool { return c.expired }

// FormatClock renders seconds as M:SS, or H:MM:SS past the hour.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}

// FormatTaken renders a duration in seconds as "Xm Ys" for the results
// screen.
func FormatTaken(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%dm %ds", seconds/60, seconds%60)
}
