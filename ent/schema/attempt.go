package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Attempt records one completed test: what was selected and how it was
// scored. Individual answers are not persisted; review lives only in
// the session that produced them.
type Attempt struct {
	ent.Schema
}

func (Attempt) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable(),
		field.Time("taken_at").
			Default(time.Now).
			Immutable().
			Comment("UTC wall-clock time of submission"),
		field.String("test_type").
			NotEmpty().
			Comment("topic-wise or mock"),
		field.String("subject").
			NotEmpty(),
		field.String("unit").
			Optional().
			Comment("Empty for mock tests"),
		field.String("topic").
			Optional().
			Comment("Empty for mock tests"),
		field.String("language").
			NotEmpty(),
		field.Int("total_questions"),
		field.Int("score").
			Comment("Correct answers"),
		field.Int("unanswered"),
		field.Int("duration_secs").
			Comment("Configured test duration"),
		field.Int("time_taken_secs").
			Comment("Active time excluding pauses"),
	}
}

func (Attempt) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("taken_at"),
		index.Fields("subject"),
	}
}
