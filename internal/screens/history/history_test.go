package history

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/arulmurugan/vidhai/internal/screen"
	"github.com/arulmurugan/vidhai/internal/store"
)

// mockAttemptRepo implements store.AttemptRepo for testing.
type mockAttemptRepo struct {
	rows []store.AttemptRow
	err  error

	limit int
}

func (m *mockAttemptRepo) Append(_ context.Context, _ store.AttemptData) error {
	return nil
}

func (m *mockAttemptRepo) Recent(_ context.Context, limit int) ([]store.AttemptRow, error) {
	m.limit = limit
	return m.rows, m.err
}

func sampleRows() []store.AttemptRow {
	return []store.AttemptRow{
		{
			TakenAt:       time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC),
			TestType:      "topic-wise",
			Subject:       "General Studies",
			Topic:         "indian_polity",
			TotalQs:       10,
			Score:         7,
			TimeTakenSecs: 480,
		},
		{
			TakenAt:  time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC),
			TestType: "mock",
			Subject:  "General Tamil",
			TotalQs:  100,
			Score:    61,
		},
	}
}

func TestLoadsRecentAttempts(t *testing.T) {
	repo := &mockAttemptRepo{rows: sampleRows()}
	h := New(repo)

	var scr screen.Screen = h
	scr.Update(h.Init()())

	if repo.limit != recentLimit {
		t.Errorf("limit = %d, want %d", repo.limit, recentLimit)
	}
	if len(h.rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(h.rows))
	}

	view := h.View(120, 30)
	if !strings.Contains(view, "7/10") {
		t.Errorf("view missing topic-wise score:\n%s", view)
	}
	if !strings.Contains(view, "General Tamil") {
		t.Errorf("view missing mock subject:\n%s", view)
	}
}

func TestLoadErrorShown(t *testing.T) {
	repo := &mockAttemptRepo{err: errors.New("locked")}
	h := New(repo)

	var scr screen.Screen = h
	scr.Update(h.Init()())

	view := h.View(120, 30)
	if !strings.Contains(view, "locked") {
		t.Errorf("view missing error:\n%s", view)
	}
}

func TestNilRepoDegrades(t *testing.T) {
	h := New(nil)
	if h.Init() != nil {
		t.Error("expected no load command without a store")
	}
	if !strings.Contains(h.View(120, 30), "unavailable") {
		t.Errorf("view should say history is unavailable")
	}
}

func TestEmptyState(t *testing.T) {
	h := New(&mockAttemptRepo{})

	var scr screen.Screen = h
	scr.Update(h.Init()())

	if !strings.Contains(h.View(120, 30), "No attempts yet") {
		t.Error("expected the empty-state message")
	}
}
