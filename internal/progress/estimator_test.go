package progress

import (
	"math"
	"strings"
	"testing"
)

func TestSimulated_PercentAtTenOfFifteen(t *testing.T) {
	e := NewSimulated(15, "Generating your custom test with VidhAI...")
	for i := 0; i < 10; i++ {
		e.Tick()
	}
	want := 10.0 / 15.0 * 100
	if math.Abs(e.Percent()-want) > 1e-9 {
		t.Errorf("Percent = %f, want %f", e.Percent(), want)
	}
}

func TestSimulated_CapsAt95(t *testing.T) {
	e := NewSimulated(15, "Generating...")
	for i := 0; i < 15; i++ {
		e.Tick()
	}
	if e.Percent() != 95 {
		t.Errorf("Percent at full estimate = %f, want 95 (capped)", e.Percent())
	}
}

func TestSimulated_FreezesAtFinalizing(t *testing.T) {
	e := NewSimulated(15, "Generating...")
	for i := 0; i < 20; i++ {
		e.Tick()
	}
	if e.Percent() != 98 {
		t.Errorf("Percent past estimate = %f, want 98", e.Percent())
	}
	if !strings.Contains(e.Label(), "Finalizing") {
		t.Errorf("Label = %q, want finalizing text", e.Label())
	}
	if e.Running() {
		t.Error("internal timer should stop in finalizing state")
	}
	// Only the explicit completion signal reaches 100%.
	e.Complete()
	if e.Percent() != 100 {
		t.Errorf("Percent after Complete = %f, want 100", e.Percent())
	}
}

func TestSimulated_Label(t *testing.T) {
	e := NewSimulated(75, "Generating General Tamil Mock Test...")
	e.Tick()
	want := "Generating General Tamil Mock Test... (Est. time remaining: 01:14)"
	if e.Label() != want {
		t.Errorf("Label = %q, want %q", e.Label(), want)
	}
}

func TestTaskCount_BarFollowsCompletedTasks(t *testing.T) {
	e := NewTaskCount(8, 5, "Generating...")
	// Ticks must not move the bar in task-count mode.
	for i := 0; i < 12; i++ {
		e.Tick()
	}
	if e.Percent() != 0 {
		t.Errorf("Percent after ticks only = %f, want 0", e.Percent())
	}
	e.TaskDone()
	if e.Percent() != 13 { // round(100/8)
		t.Errorf("Percent after 1 task = %f, want 13", e.Percent())
	}
	for i := 0; i < 7; i++ {
		e.TaskDone()
	}
	if e.Percent() != 100 {
		t.Errorf("Percent after all tasks = %f, want 100", e.Percent())
	}
	if e.TasksDone() != 8 {
		t.Errorf("TasksDone = %d, want 8", e.TasksDone())
	}
}

func TestTaskCount_ETAUsesTotalEstimate(t *testing.T) {
	e := NewTaskCount(12, 5, "Generating...")
	if !strings.Contains(e.Label(), "01:00") {
		t.Errorf("Label = %q, want 60s estimate", e.Label())
	}
}

func TestFail_StopsTimer(t *testing.T) {
	e := NewSimulated(15, "Generating...")
	e.Tick()
	before := e.Percent()
	e.Fail()
	if e.Running() {
		t.Error("Running after Fail")
	}
	e.Tick()
	if e.Percent() != before {
		t.Error("tick after Fail changed state")
	}
}
