// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AttemptsColumns holds the columns for the "attempts" table.
	AttemptsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "taken_at", Type: field.TypeTime},
		{Name: "test_type", Type: field.TypeString},
		{Name: "subject", Type: field.TypeString},
		{Name: "unit", Type: field.TypeString, Nullable: true},
		{Name: "topic", Type: field.TypeString, Nullable: true},
		{Name: "language", Type: field.TypeString},
		{Name: "total_questions", Type: field.TypeInt},
		{Name: "score", Type: field.TypeInt},
		{Name: "unanswered", Type: field.TypeInt},
		{Name: "duration_secs", Type: field.TypeInt},
		{Name: "time_taken_secs", Type: field.TypeInt},
	}
	// AttemptsTable holds the schema information for the "attempts" table.
	AttemptsTable = &schema.Table{
		Name:       "attempts",
		Columns:    AttemptsColumns,
		PrimaryKey: []*schema.Column{AttemptsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "attempt_taken_at",
				Unique:  false,
				Columns: []*schema.Column{AttemptsColumns[1]},
			},
			{
				Name:    "attempt_subject",
				Unique:  false,
				Columns: []*schema.Column{AttemptsColumns[3]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AttemptsTable,
	}
)

func init() {
}
