package timing

import "time"

// Stopwatch tracks elapsed test time with pause/resume accounting.
// Elapsed time excludes every paused interval, including one still open
// when the stopwatch is finalized.
//
// Invariant: pauseStart is set iff paused.
type Stopwatch struct {
	start      time.Time
	accumPause time.Duration
	pauseStart time.Time
	paused     bool
}

// NewStopwatch starts a stopwatch at now.
func NewStopwatch(now time.Time) *Stopwatch {
	return &Stopwatch{start: now}
}

// Paused reports whether the stopwatch is currently paused.
func (s *Stopwatch) Paused() bool { return s.paused }

// Pause records the start of a paused interval. Calling Pause while
// already paused is a no-op; callers are not expected to double-call,
// but the transition is guarded anyway.
func (s *Stopwatch) Pause(now time.Time) {
	if s.paused {
		return
	}
	s.paused = true
	s.pauseStart = now
}

// Resume closes the open paused interval and adds it to the accumulated
// pause total. A no-op when not paused.
func (s *Stopwatch) Resume(now time.Time) {
	if !s.paused {
		return
	}
	s.accumPause += now.Sub(s.pauseStart)
	s.paused = false
	s.pauseStart = time.Time{}
}

// Elapsed returns the active (non-paused) time since start. If a pause
// is open, the interval up to now is excluded as well.
func (s *Stopwatch) Elapsed(now time.Time) time.Duration {
	paused := s.accumPause
	if s.paused {
		paused += now.Sub(s.pauseStart)
	}
	return now.Sub(s.start) - paused
}

// Finalize closes any open pause interval and returns the elapsed
// active time. Used at submission, which may happen while paused.
func (s *Stopwatch) Finalize(now time.Time) time.Duration {
	s.Resume(now)
	return s.Elapsed(now)
}
