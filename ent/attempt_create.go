// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/arulmurugan/vidhai/ent/attempt"
	"github.com/google/uuid"
)

// AttemptCreate is the builder for creating a Attempt entity.
type AttemptCreate struct {
	config
	mutation *AttemptMutation
	hooks    []Hook
}

// SetTakenAt sets the "taken_at" field.
func (_c *AttemptCreate) SetTakenAt(v time.Time) *AttemptCreate {
	_c.mutation.SetTakenAt(v)
	return _c
}

// SetNillableTakenAt sets the "taken_at" field if the given value is not nil.
func (_c *AttemptCreate) SetNillableTakenAt(v *time.Time) *AttemptCreate {
	if v != nil {
		_c.SetTakenAt(*v)
	}
	return _c
}

// SetTestType sets the "test_type" field.
func (_c *AttemptCreate) SetTestType(v string) *AttemptCreate {
	_c.mutation.SetTestType(v)
	return _c
}

// SetSubject sets the "subject" field.
func (_c *AttemptCreate) SetSubject(v string) *AttemptCreate {
	_c.mutation.SetSubject(v)
	return _c
}

// SetUnit sets the "unit" field.
func (_c *AttemptCreate) SetUnit(v string) *AttemptCreate {
	_c.mutation.SetUnit(v)
	return _c
}

// SetNillableUnit sets the "unit" field if the given value is not nil.
func (_c *AttemptCreate) SetNillableUnit(v *string) *AttemptCreate {
	if v != nil {
		_c.SetUnit(*v)
	}
	return _c
}

// SetTopic sets the "topic" field.
func (_c *AttemptCreate) SetTopic(v string) *AttemptCreate {
	_c.mutation.SetTopic(v)
	return _c
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_c *AttemptCreate) SetNillableTopic(v *string) *AttemptCreate {
	if v != nil {
		_c.SetTopic(*v)
	}
	return _c
}

// SetLanguage sets the "language" field.
func (_c *AttemptCreate) SetLanguage(v string) *AttemptCreate {
	_c.mutation.SetLanguage(v)
	return _c
}

// SetTotalQuestions sets the "total_questions" field.
func (_c *AttemptCreate) SetTotalQuestions(v int) *AttemptCreate {
	_c.mutation.SetTotalQuestions(v)
	return _c
}

// SetScore sets the "score" field.
func (_c *AttemptCreate) SetScore(v int) *AttemptCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetUnanswered sets the "unanswered" field.
func (_c *AttemptCreate) SetUnanswered(v int) *AttemptCreate {
	_c.mutation.SetUnanswered(v)
	return _c
}

// SetDurationSecs sets the "duration_secs" field.
func (_c *AttemptCreate) SetDurationSecs(v int) *AttemptCreate {
	_c.mutation.SetDurationSecs(v)
	return _c
}

// SetTimeTakenSecs sets the "time_taken_secs" field.
func (_c *AttemptCreate) SetTimeTakenSecs(v int) *AttemptCreate {
	_c.mutation.SetTimeTakenSecs(v)
	return _c
}

// SetID sets the "id" field.
func (_c *AttemptCreate) SetID(v uuid.UUID) *AttemptCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *AttemptCreate) SetNillableID(v *uuid.UUID) *AttemptCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the AttemptMutation object of the builder.
func (_c *AttemptCreate) Mutation() *AttemptMutation {
	return _c.mutation
}

// Save creates the Attempt in the database.
func (_c *AttemptCreate) Save(ctx context.Context) (*Attempt, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AttemptCreate) SaveX(ctx context.Context) *Attempt {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AttemptCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AttemptCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AttemptCreate) defaults() {
	if _, ok := _c.mutation.TakenAt(); !ok {
		v := attempt.DefaultTakenAt()
		_c.mutation.SetTakenAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := attempt.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AttemptCreate) check() error {
	if _, ok := _c.mutation.TakenAt(); !ok {
		return &ValidationError{Name: "taken_at", err: errors.New(`ent: missing required field "Attempt.taken_at"`)}
	}
	if _, ok := _c.mutation.TestType(); !ok {
		return &ValidationError{Name: "test_type", err: errors.New(`ent: missing required field "Attempt.test_type"`)}
	}
	if v, ok := _c.mutation.TestType(); ok {
		if err := attempt.TestTypeValidator(v); err != nil {
			return &ValidationError{Name: "test_type", err: fmt.Errorf(`ent: validator failed for field "Attempt.test_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Subject(); !ok {
		return &ValidationError{Name: "subject", err: errors.New(`ent: missing required field "Attempt.subject"`)}
	}
	if v, ok := _c.mutation.Subject(); ok {
		if err := attempt.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`ent: validator failed for field "Attempt.subject": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Language(); !ok {
		return &ValidationError{Name: "language", err: errors.New(`ent: missing required field "Attempt.language"`)}
	}
	if v, ok := _c.mutation.Language(); ok {
		if err := attempt.LanguageValidator(v); err != nil {
			return &ValidationError{Name: "language", err: fmt.Errorf(`ent: validator failed for field "Attempt.language": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TotalQuestions(); !ok {
		return &ValidationError{Name: "total_questions", err: errors.New(`ent: missing required field "Attempt.total_questions"`)}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "Attempt.score"`)}
	}
	if _, ok := _c.mutation.Unanswered(); !ok {
		return &ValidationError{Name: "unanswered", err: errors.New(`ent: missing required field "Attempt.unanswered"`)}
	}
	if _, ok := _c.mutation.DurationSecs(); !ok {
		return &ValidationError{Name: "duration_secs", err: errors.New(`ent: missing required field "Attempt.duration_secs"`)}
	}
	if _, ok := _c.mutation.TimeTakenSecs(); !ok {
		return &ValidationError{Name: "time_taken_secs", err: errors.New(`ent: missing required field "Attempt.time_taken_secs"`)}
	}
	return nil
}

func (_c *AttemptCreate) sqlSave(ctx context.Context) (*Attempt, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AttemptCreate) createSpec() (*Attempt, *sqlgraph.CreateSpec) {
	var (
		_node = &Attempt{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(attempt.Table, sqlgraph.NewFieldSpec(attempt.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.TakenAt(); ok {
		_spec.SetField(attempt.FieldTakenAt, field.TypeTime, value)
		_node.TakenAt = value
	}
	if value, ok := _c.mutation.TestType(); ok {
		_spec.SetField(attempt.FieldTestType, field.TypeString, value)
		_node.TestType = value
	}
	if value, ok := _c.mutation.Subject(); ok {
		_spec.SetField(attempt.FieldSubject, field.TypeString, value)
		_node.Subject = value
	}
	if value, ok := _c.mutation.Unit(); ok {
		_spec.SetField(attempt.FieldUnit, field.TypeString, value)
		_node.Unit = value
	}
	if value, ok := _c.mutation.Topic(); ok {
		_spec.SetField(attempt.FieldTopic, field.TypeString, value)
		_node.Topic = value
	}
	if value, ok := _c.mutation.Language(); ok {
		_spec.SetField(attempt.FieldLanguage, field.TypeString, value)
		_node.Language = value
	}
	if value, ok := _c.mutation.TotalQuestions(); ok {
		_spec.SetField(attempt.FieldTotalQuestions, field.TypeInt, value)
		_node.TotalQuestions = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(attempt.FieldScore, field.TypeInt, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.Unanswered(); ok {
		_spec.SetField(attempt.FieldUnanswered, field.TypeInt, value)
		_node.Unanswered = value
	}
	if value, ok := _c.mutation.DurationSecs(); ok {
		_spec.SetField(attempt.FieldDurationSecs, field.TypeInt, value)
		_node.DurationSecs = value
	}
	if value, ok := _c.mutation.TimeTakenSecs(); ok {
		_spec.SetField(attempt.FieldTimeTakenSecs, field.TypeInt, value)
		_node.TimeTakenSecs = value
	}
	return _node, _spec
}

// AttemptCreateBulk is the builder for creating many Attempt entities in bulk.
type AttemptCreateBulk struct {
	config
	err      error
	builders []*AttemptCreate
}

// Save creates the Attempt entities in the database.
func (_c *AttemptCreateBulk) Save(ctx context.Context) ([]*Attempt, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Attempt, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AttemptMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *AttemptCreateBulk) SaveX(ctx context.Context) []*Attempt {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AttemptCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AttemptCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
