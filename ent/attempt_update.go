// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/arulmurugan/vidhai/ent/attempt"
	"github.com/arulmurugan/vidhai/ent/predicate"
)

// AttemptUpdate is the builder for updating Attempt entities.
type AttemptUpdate struct {
	config
	hooks    []Hook
	mutation *AttemptMutation
}

// Where appends a list predicates to the AttemptUpdate builder.
func (_u *AttemptUpdate) Where(ps ...predicate.Attempt) *AttemptUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTestType sets the "test_type" field.
func (_u *AttemptUpdate) SetTestType(v string) *AttemptUpdate {
	_u.mutation.SetTestType(v)
	return _u
}

// SetNillableTestType sets the "test_type" field if the given value is not nil.
func (_u *AttemptUpdate) SetNillableTestType(v *string) *AttemptUpdate {
	if v != nil {
		_u.SetTestType(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *AttemptUpdate) SetSubject(v string) *AttemptUpdate {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *AttemptUpdate) SetNillableSubject(v *string) *AttemptUpdate {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetUnit sets the "unit" field.
func (_u *AttemptUpdate) SetUnit(v string) *AttemptUpdate {
	_u.mutation.SetUnit(v)
	return _u
}

// SetNillableUnit sets the "unit" field if the given value is not nil.
func (_u *AttemptUpdate) SetNillableUnit(v *string) *AttemptUpdate {
	if v != nil {
		_u.SetUnit(*v)
	}
	return _u
}

// ClearUnit clears the value of the "unit" field.
func (_u *AttemptUpdate) ClearUnit() *AttemptUpdate {
	_u.mutation.ClearUnit()
	return _u
}

// SetTopic sets the "topic" field.
func (_u *AttemptUpdate) SetTopic(v string) *AttemptUpdate {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *AttemptUpdate) SetNillableTopic(v *string) *AttemptUpdate {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// ClearTopic clears the value of the "topic" field.
func (_u *AttemptUpdate) ClearTopic() *AttemptUpdate {
	_u.mutation.ClearTopic()
	return _u
}

// SetLanguage sets the "language" field.
func (_u *AttemptUpdate) SetLanguage(v string) *AttemptUpdate {
	_u.mutation.SetLanguage(v)
	return _u
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_u *AttemptUpdate) SetNillableLanguage(v *string) *AttemptUpdate {
	if v != nil {
		_u.SetLanguage(*v)
	}
	return _u
}

// SetTotalQuestions sets the "total_questions" field.
func (_u *AttemptUpdate) SetTotalQuestions(v int) *AttemptUpdate {
	_u.mutation.ResetTotalQuestions()
	_u.mutation.SetTotalQuestions(v)
	return _u
}

// SetNillableTotalQuestions sets the "total_questions" field if the given value is not nil.
func (_u *AttemptUpdate) SetNillableTotalQuestions(v *int) *AttemptUpdate {
	if v != nil {
		_u.SetTotalQuestions(*v)
	}
	return _u
}

// AddTotalQuestions adds value to the "total_questions" field.
func (_u *AttemptUpdate) AddTotalQuestions(v int) *AttemptUpdate {
	_u.mutation.AddTotalQuestions(v)
	return _u
}

// SetScore sets the "score" field.
func (_u *AttemptUpdate) SetScore(v int) *AttemptUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *AttemptUpdate) SetNillableScore(v *int) *AttemptUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *AttemptUpdate) AddScore(v int) *AttemptUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetUnanswered sets the "unanswered" field.
func (_u *AttemptUpdate) SetUnanswered(v int) *AttemptUpdate {
	_u.mutation.ResetUnanswered()
	_u.mutation.SetUnanswered(v)
	return _u
}

// SetNillableUnanswered sets the "unanswered" field if the given value is not nil.
func (_u *AttemptUpdate) SetNillableUnanswered(v *int) *AttemptUpdate {
	if v != nil {
		_u.SetUnanswered(*v)
	}
	return _u
}

// AddUnanswered adds value to the "unanswered" field.
func (_u *AttemptUpdate) AddUnanswered(v int) *AttemptUpdate {
	_u.mutation.AddUnanswered(v)
	return _u
}

// SetDurationSecs sets the "duration_secs" field.
func (_u *AttemptUpdate) SetDurationSecs(v int) *AttemptUpdate {
	_u.mutation.ResetDurationSecs()
	_u.mutation.SetDurationSecs(v)
	return _u
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_u *AttemptUpdate) SetNillableDurationSecs(v *int) *AttemptUpdate {
	if v != nil {
		_u.SetDurationSecs(*v)
	}
	return _u
}

// AddDurationSecs adds value to the "duration_secs" field.
func (_u *AttemptUpdate) AddDurationSecs(v int) *AttemptUpdate {
	_u.mutation.AddDurationSecs(v)
	return _u
}

// SetTimeTakenSecs sets the "time_taken_secs" field.
func (_u *AttemptUpdate) SetTimeTakenSecs(v int) *AttemptUpdate {
	_u.mutation.ResetTimeTakenSecs()
	_u.mutation.SetTimeTakenSecs(v)
	return _u
}

// SetNillableTimeTakenSecs sets the "time_taken_secs" field if the given value is not nil.
func (_u *AttemptUpdate) SetNillableTimeTakenSecs(v *int) *AttemptUpdate {
	if v != nil {
		_u.SetTimeTakenSecs(*v)
	}
	return _u
}

// AddTimeTakenSecs adds value to the "time_taken_secs" field.
func (_u *AttemptUpdate) AddTimeTakenSecs(v int) *AttemptUpdate {
	_u.mutation.AddTimeTakenSecs(v)
	return _u
}

// Mutation returns the AttemptMutation object of the builder.
func (_u *AttemptUpdate) Mutation() *AttemptMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AttemptUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AttemptUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AttemptUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AttemptUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AttemptUpdate) check() error {
	if v, ok := _u.mutation.TestType(); ok {
		if err := attempt.TestTypeValidator(v); err != nil {
			return &ValidationError{Name: "test_type", err: fmt.Errorf(`ent: validator failed for field "Attempt.test_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Subject(); ok {
		if err := attempt.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`ent: validator failed for field "Attempt.subject": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Language(); ok {
		if err := attempt.LanguageValidator(v); err != nil {
			return &ValidationError{Name: "language", err: fmt.Errorf(`ent: validator failed for field "Attempt.language": %w`, err)}
		}
	}
	return nil
}

func (_u *AttemptUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(attempt.Table, attempt.Columns, sqlgraph.NewFieldSpec(attempt.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TestType(); ok {
		_spec.SetField(attempt.FieldTestType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(attempt.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.Unit(); ok {
		_spec.SetField(attempt.FieldUnit, field.TypeString, value)
	}
	if _u.mutation.UnitCleared() {
		_spec.ClearField(attempt.FieldUnit, field.TypeString)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(attempt.FieldTopic, field.TypeString, value)
	}
	if _u.mutation.TopicCleared() {
		_spec.ClearField(attempt.FieldTopic, field.TypeString)
	}
	if value, ok := _u.mutation.Language(); ok {
		_spec.SetField(attempt.FieldLanguage, field.TypeString, value)
	}
	if value, ok := _u.mutation.TotalQuestions(); ok {
		_spec.SetField(attempt.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalQuestions(); ok {
		_spec.AddField(attempt.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(attempt.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(attempt.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Unanswered(); ok {
		_spec.SetField(attempt.FieldUnanswered, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUnanswered(); ok {
		_spec.AddField(attempt.FieldUnanswered, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DurationSecs(); ok {
		_spec.SetField(attempt.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationSecs(); ok {
		_spec.AddField(attempt.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TimeTakenSecs(); ok {
		_spec.SetField(attempt.FieldTimeTakenSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeTakenSecs(); ok {
		_spec.AddField(attempt.FieldTimeTakenSecs, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attempt.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AttemptUpdateOne is the builder for updating a single Attempt entity.
type AttemptUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AttemptMutation
}

// SetTestType sets the "test_type" field.
func (_u *AttemptUpdateOne) SetTestType(v string) *AttemptUpdateOne {
	_u.mutation.SetTestType(v)
	return _u
}

// SetNillableTestType sets the "test_type" field if the given value is not nil.
func (_u *AttemptUpdateOne) SetNillableTestType(v *string) *AttemptUpdateOne {
	if v != nil {
		_u.SetTestType(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *AttemptUpdateOne) SetSubject(v string) *AttemptUpdateOne {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *AttemptUpdateOne) SetNillableSubject(v *string) *AttemptUpdateOne {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetUnit sets the "unit" field.
func (_u *AttemptUpdateOne) SetUnit(v string) *AttemptUpdateOne {
	_u.mutation.SetUnit(v)
	return _u
}

// SetNillableUnit sets the "unit" field if the given value is not nil.
func (_u *AttemptUpdateOne) SetNillableUnit(v *string) *AttemptUpdateOne {
	if v != nil {
		_u.SetUnit(*v)
	}
	return _u
}

// ClearUnit clears the value of the "unit" field.
func (_u *AttemptUpdateOne) ClearUnit() *AttemptUpdateOne {
	_u.mutation.ClearUnit()
	return _u
}

// SetTopic sets the "topic" field.
func (_u *AttemptUpdateOne) SetTopic(v string) *AttemptUpdateOne {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *AttemptUpdateOne) SetNillableTopic(v *string) *AttemptUpdateOne {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// ClearTopic clears the value of the "topic" field.
func (_u *AttemptUpdateOne) ClearTopic() *AttemptUpdateOne {
	_u.mutation.ClearTopic()
	return _u
}

// SetLanguage sets the "language" field.
func (_u *AttemptUpdateOne) SetLanguage(v string) *AttemptUpdateOne {
	_u.mutation.SetLanguage(v)
	return _u
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_u *AttemptUpdateOne) SetNillableLanguage(v *string) *AttemptUpdateOne {
	if v != nil {
		_u.SetLanguage(*v)
	}
	return _u
}

// SetTotalQuestions sets the "total_questions" field.
func (_u *AttemptUpdateOne) SetTotalQuestions(v int) *AttemptUpdateOne {
	_u.mutation.ResetTotalQuestions()
	_u.mutation.SetTotalQuestions(v)
	return _u
}

// SetNillableTotalQuestions sets the "total_questions" field if the given value is not nil.
func (_u *AttemptUpdateOne) SetNillableTotalQuestions(v *int) *AttemptUpdateOne {
	if v != nil {
		_u.SetTotalQuestions(*v)
	}
	return _u
}

// AddTotalQuestions adds value to the "total_questions" field.
func (_u *AttemptUpdateOne) AddTotalQuestions(v int) *AttemptUpdateOne {
	_u.mutation.AddTotalQuestions(v)
	return _u
}

// SetScore sets the "score" field.
func (_u *AttemptUpdateOne) SetScore(v int) *AttemptUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *AttemptUpdateOne) SetNillableScore(v *int) *AttemptUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *AttemptUpdateOne) AddScore(v int) *AttemptUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetUnanswered sets the "unanswered" field.
func (_u *AttemptUpdateOne) SetUnanswered(v int) *AttemptUpdateOne {
	_u.mutation.ResetUnanswered()
	_u.mutation.SetUnanswered(v)
	return _u
}

// SetNillableUnanswered sets the "unanswered" field if the given value is not nil.
func (_u *AttemptUpdateOne) SetNillableUnanswered(v *int) *AttemptUpdateOne {
	if v != nil {
		_u.SetUnanswered(*v)
	}
	return _u
}

// AddUnanswered adds value to the "unanswered" field.
func (_u *AttemptUpdateOne) AddUnanswered(v int) *AttemptUpdateOne {
	_u.mutation.AddUnanswered(v)
	return _u
}

// SetDurationSecs sets the "duration_secs" field.
func (_u *AttemptUpdateOne) SetDurationSecs(v int) *AttemptUpdateOne {
	_u.mutation.ResetDurationSecs()
	_u.mutation.SetDurationSecs(v)
	return _u
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_u *AttemptUpdateOne) SetNillableDurationSecs(v *int) *AttemptUpdateOne {
	if v != nil {
		_u.SetDurationSecs(*v)
	}
	return _u
}

// AddDurationSecs adds value to the "duration_secs" field.
func (_u *AttemptUpdateOne) AddDurationSecs(v int) *AttemptUpdateOne {
	_u.mutation.AddDurationSecs(v)
	return _u
}

// SetTimeTakenSecs sets the "time_taken_secs" field.
func (_u *AttemptUpdateOne) SetTimeTakenSecs(v int) *AttemptUpdateOne {
	_u.mutation.ResetTimeTakenSecs()
	_u.mutation.SetTimeTakenSecs(v)
	return _u
}

// SetNillableTimeTakenSecs sets the "time_taken_secs" field if the given value is not nil.
func (_u *AttemptUpdateOne) SetNillableTimeTakenSecs(v *int) *AttemptUpdateOne {
	if v != nil {
		_u.SetTimeTakenSecs(*v)
	}
	return _u
}

// AddTimeTakenSecs adds value to the "time_taken_secs" field.
func (_u *AttemptUpdateOne) AddTimeTakenSecs(v int) *AttemptUpdateOne {
	_u.mutation.AddTimeTakenSecs(v)
	return _u
}

// Mutation returns the AttemptMutation object of the builder.
func (_u *AttemptUpdateOne) Mutation() *AttemptMutation {
	return _u.mutation
}

// Where appends a list predicates to the AttemptUpdate builder.
func (_u *AttemptUpdateOne) Where(ps ...predicate.Attempt) *AttemptUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AttemptUpdateOne) Select(field string, fields ...string) *AttemptUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Attempt entity.
func (_u *AttemptUpdateOne) Save(ctx context.Context) (*Attempt, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AttemptUpdateOne) SaveX(ctx context.Context) *Attempt {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AttemptUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AttemptUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AttemptUpdateOne) check() error {
	if v, ok := _u.mutation.TestType(); ok {
		if err := attempt.TestTypeValidator(v); err != nil {
			return &ValidationError{Name: "test_type", err: fmt.Errorf(`ent: validator failed for field "Attempt.test_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Subject(); ok {
		if err := attempt.SubjectValidator(v); err != nil {
			return &ValidationError{Name: "subject", err: fmt.Errorf(`ent: validator failed for field "Attempt.subject": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Language(); ok {
		if err := attempt.LanguageValidator(v); err != nil {
			return &ValidationError{Name: "language", err: fmt.Errorf(`ent: validator failed for field "Attempt.language": %w`, err)}
		}
	}
	return nil
}

func (_u *AttemptUpdateOne) sqlSave(ctx context.Context) (_node *Attempt, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(attempt.Table, attempt.Columns, sqlgraph.NewFieldSpec(attempt.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Attempt.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, attempt.FieldID)
		for _, f := range fields {
			if !attempt.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != attempt.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TestType(); ok {
		_spec.SetField(attempt.FieldTestType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(attempt.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.Unit(); ok {
		_spec.SetField(attempt.FieldUnit, field.TypeString, value)
	}
	if _u.mutation.UnitCleared() {
		_spec.ClearField(attempt.FieldUnit, field.TypeString)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(attempt.FieldTopic, field.TypeString, value)
	}
	if _u.mutation.TopicCleared() {
		_spec.ClearField(attempt.FieldTopic, field.TypeString)
	}
	if value, ok := _u.mutation.Language(); ok {
		_spec.SetField(attempt.FieldLanguage, field.TypeString, value)
	}
	if value, ok := _u.mutation.TotalQuestions(); ok {
		_spec.SetField(attempt.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalQuestions(); ok {
		_spec.AddField(attempt.FieldTotalQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(attempt.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(attempt.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Unanswered(); ok {
		_spec.SetField(attempt.FieldUnanswered, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUnanswered(); ok {
		_spec.AddField(attempt.FieldUnanswered, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DurationSecs(); ok {
		_spec.SetField(attempt.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationSecs(); ok {
		_spec.AddField(attempt.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TimeTakenSecs(); ok {
		_spec.SetField(attempt.FieldTimeTakenSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeTakenSecs(); ok {
		_spec.AddField(attempt.FieldTimeTakenSecs, field.TypeInt, value)
	}
	_node = &Attempt{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attempt.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
