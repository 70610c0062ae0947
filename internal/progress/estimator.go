// Package progress drives the loading display shown while question
// generation is in flight. The estimate is decoupled from true
// completion: the estimator by itself never claims more than 95% (98%
// once the estimate has run out), and only an explicit Complete call
// from the caller commits the jump to 100%.
package progress

import (
	"fmt"

	"github.com/arulmurugan/vidhai/internal/timing"
)

// Mode selects how the progress bar advances.
type Mode int

const (
	// ModeSimulated fills the bar from elapsed/estimate each tick.
	// Used for single-request generation where there is no better signal.
	ModeSimulated Mode = iota

	// ModeTaskCount advances the bar only on TaskDone calls; the tick
	// timer drives the textual ETA alone. Used for the mock-test
	// pipeline where completed subtasks are the honest signal.
	ModeTaskCount
)

// simulatedCap keeps the bar from looking finished before data arrives.
const simulatedCap = 95.0

// finalizingPercent is shown once the estimate has fully elapsed.
const finalizingPercent = 98.0

// Estimator produces a best-effort percentage and ETA label for a
// long-running generation call.
type Estimator struct {
	mode       Mode
	message    string
	total      int // estimated seconds
	remaining  int
	tasksTotal int
	tasksDone  int
	percent    float64
	stopped    bool
	finalizing bool
}

// NewSimulated creates a time-simulated estimator for a single request
// expected to take about estimateSeconds.
func NewSimulated(estimateSeconds int, message string) *Estimator {
	return &Estimator{
		mode:      ModeSimulated,
		message:   message,
		total:     estimateSeconds,
		remaining: estimateSeconds,
	}
}

// NewTaskCount creates a task-count estimator for tasks sequential
// subtasks with a per-task estimate of perTaskSeconds.
func NewTaskCount(tasks, perTaskSeconds int, message string) *Estimator {
	total := tasks * perTaskSeconds
	return &Estimator{
		mode:       ModeTaskCount,
		message:    message,
		total:      total,
		remaining:  total,
		tasksTotal: tasks,
	}
}

// Tick advances the estimator by one second. Once the estimate has
// elapsed the internal timer stops and the display freezes in the
// finalizing state; further ticks are no-ops.
func (e *Estimator) Tick() {
	if e.stopped || e.finalizing {
		return
	}
	e.remaining--
	if e.remaining < 0 {
		e.finalizing = true
		if e.mode == ModeSimulated {
			e.percent = finalizingPercent
		}
		return
	}
	if e.mode == ModeSimulated && e.total > 0 {
		pct := float64(e.total-e.remaining) / float64(e.total) * 100
		e.percent = min(simulatedCap, pct)
	}
}

// TaskDone records one completed subtask and advances the bar to the
// completed fraction. Only meaningful in ModeTaskCount.
func (e *Estimator) TaskDone() {
	if e.mode != ModeTaskCount || e.tasksTotal == 0 {
		return
	}
	if e.tasksDone < e.tasksTotal {
		e.tasksDone++
	}
	e.percent = float64(int(float64(e.tasksDone)/float64(e.tasksTotal)*100 + 0.5))
}

// Complete commits the bar to 100% and stops the estimator. Called by
// the owner of the request when data has actually arrived.
func (e *Estimator) Complete() {
	e.percent = 100
	e.stopped = true
}

// Fail stops the estimator without touching the percentage, so no timer
// keeps running after a hard failure.
func (e *Estimator) Fail() {
	e.stopped = true
}

// Running reports whether the internal tick timer should keep going.
func (e *Estimator) Running() bool { return !e.stopped && !e.finalizing }

// Percent returns the current bar percentage in [0,100].
func (e *Estimator) Percent() float64 { return e.percent }

// TasksDone returns the completed subtask count.
func (e *Estimator) TasksDone() int { return e.tasksDone }

// Label returns the loading text with the ETA, or the finalizing text
// once the estimate has run out.
func (e *Estimator) Label() string {
	if e.finalizing || e.remaining < 0 {
		return fmt.Sprintf("%s (Finalizing...)", e.message)
	}
	return fmt.Sprintf("%s (Est. time remaining: %s)", e.message, timing.FormatClock(e.remaining))
}
