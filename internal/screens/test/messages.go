package test

import "time"

// timerTickMsg is sent every second to advance the countdown.
type timerTickMsg time.Time

// advanceMsg fires after the selection highlight delay to move to the
// next question.
type advanceMsg struct {
	FromQuestion int
}

// chatReplyMsg delivers the tutor's hint, or the failure to get one.
type chatReplyMsg struct {
	Question int
	Reply    string
	Err      error
}
