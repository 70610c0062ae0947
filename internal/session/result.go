package session

// Result is the scored outcome of a submitted attempt.
type Result struct {
	Title        string
	Score        int
	Total        int
	Percent      float64
	Unanswered   int
	TakenSeconds int // active time, paused intervals excluded
}
