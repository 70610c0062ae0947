package store

import (
	"context"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestAttemptAppendAndRecent(t *testing.T) {
	s := openTestStore(t)
	repo := s.Attempts()
	ctx := context.Background()

	rows, err := repo.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("recent (empty): %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("expected no rows, got %d", len(rows))
	}

	first := AttemptData{
		TestType:      "topic-wise",
		Subject:       "General Tamil",
		Unit:          "unit_1",
		Topic:         "sangam_literature",
		Language:      "Tamil",
		TotalQs:       10,
		Score:         7,
		Unanswered:    1,
		DurationSecs:  600,
		TimeTakenSecs: 415,
	}
	if err := repo.Append(ctx, first); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := repo.Append(ctx, AttemptData{
		TestType:      "mock",
		Subject:       "General Studies",
		Language:      "English",
		TotalQs:       100,
		Score:         61,
		Unanswered:    12,
		DurationSecs:  7200,
		TimeTakenSecs: 6100,
	}); err != nil {
		t.Fatalf("append: %v", err)
	}

	rows, err = repo.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}

	// Newest first.
	if rows[0].TestType != "mock" {
		t.Fatalf("expected mock attempt first, got %q", rows[0].TestType)
	}
	got := rows[1]
	if got.Subject != first.Subject || got.Topic != first.Topic || got.Score != first.Score {
		t.Fatalf("round-trip mismatch: %+v", got)
	}
	if got.TakenAt.IsZero() {
		t.Fatal("expected taken_at to be set")
	}

	rows, err = repo.Recent(ctx, 1)
	if err != nil {
		t.Fatalf("recent with limit: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected limit to apply, got %d rows", len(rows))
	}
}
