package timing

import "time"

// Clock abstracts wall-clock reads so timing logic is testable without
// real waiting. The Bubble Tea layer drives ticks; this package only
// does the accounting.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns a Clock backed by time.Now.
func SystemClock() Clock { return systemClock{} }
