package store

import (
	"context"
	"fmt"
	"time"

	"github.com/arulmurugan/vidhai/ent"
	"github.com/arulmurugan/vidhai/ent/attempt"
)

// AttemptData is the summary row persisted after a test is submitted.
type AttemptData struct {
	TestType      string
	Subject       string
	Unit          string
	Topic         string
	Language      string
	TotalQs       int
	Score         int
	Unanswered    int
	DurationSecs  int
	TimeTakenSecs int
}

// AttemptRow is a persisted attempt as read back for the history view.
type AttemptRow struct {
	TakenAt       time.Time
	TestType      string
	Subject       string
	Unit          string
	Topic         string
	Language      string
	TotalQs       int
	Score         int
	Unanswered    int
	DurationSecs  int
	TimeTakenSecs int
}

// AttemptRepo stores and lists completed test attempts.
type AttemptRepo interface {
	Append(ctx context.Context, data AttemptData) error
	Recent(ctx context.Context, limit int) ([]AttemptRow, error)
}

type attemptRepo struct {
	client *ent.Client
}

func (r *attemptRepo) Append(ctx context.Context, data AttemptData) error {
	_, err := r.client.Attempt.Create().
		SetTestType(data.TestType).
		SetSubject(data.Subject).
		SetUnit(data.Unit).
		SetTopic(data.Topic).
		SetLanguage(data.Language).
		SetTotalQuestions(data.TotalQs).
		SetScore(data.Score).
		SetUnanswered(data.Unanswered).
		SetDurationSecs(data.DurationSecs).
		SetTimeTakenSecs(data.TimeTakenSecs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save attempt: %w", err)
	}
	return nil
}

func (r *attemptRepo) Recent(ctx context.Context, limit int) ([]AttemptRow, error) {
	rows, err := r.client.Attempt.Query().
		Order(ent.Desc(attempt.FieldTakenAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query attempts: %w", err)
	}

	out := make([]AttemptRow, len(rows))
	for i, a := range rows {
		out[i] = AttemptRow{
			TakenAt:       a.TakenAt,
			TestType:      a.TestType,
			Subject:       a.Subject,
			Unit:          a.Unit,
			Topic:         a.Topic,
			Language:      a.Language,
			TotalQs:       a.TotalQuestions,
			Score:         a.Score,
			Unanswered:    a.Unanswered,
			DurationSecs:  a.DurationSecs,
			TimeTakenSecs: a.TimeTakenSecs,
		}
	}
	return out, nil
}
