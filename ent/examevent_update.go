// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/patenteapp/patente/ent/examevent"
	"github.com/patenteapp/patente/ent/predicate"
	"github.com/patenteapp/patente/ent/schema"
)

// ExamEventUpdate is the builder for updating ExamEvent entities.
type ExamEventUpdate struct {
	config
	hooks    []Hook
	mutation *ExamEventMutation
}

// Where appends a list predicates to the ExamEventUpdate builder.
func (_u *ExamEventUpdate) Where(ps ...predicate.ExamEvent) *ExamEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetExamID sets the "exam_id" field.
func (_u *ExamEventUpdate) SetExamID(v string) *ExamEventUpdate {
	_u.mutation.SetExamID(v)
	return _u
}

// SetNillableExamID sets the "exam_id" field if the given value is not nil.
func (_u *ExamEventUpdate) SetNillableExamID(v *string) *ExamEventUpdate {
	if v != nil {
		_u.SetExamID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ExamEventUpdate) SetUserID(v string) *ExamEventUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ExamEventUpdate) SetNillableUserID(v *string) *ExamEventUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *ExamEventUpdate) SetScore(v int) *ExamEventUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *ExamEventUpdate) SetNillableScore(v *int) *ExamEventUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *ExamEventUpdate) AddScore(v int) *ExamEventUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetTotal sets the "total" field.
func (_u *ExamEventUpdate) SetTotal(v int) *ExamEventUpdate {
	_u.mutation.ResetTotal()
	_u.mutation.SetTotal(v)
	return _u
}

// SetNillableTotal sets the "total" field if the given value is not nil.
func (_u *ExamEventUpdate) SetNillableTotal(v *int) *ExamEventUpdate {
	if v != nil {
		_u.SetTotal(*v)
	}
	return _u
}

// AddTotal adds value to the "total" field.
func (_u *ExamEventUpdate) AddTotal(v int) *ExamEventUpdate {
	_u.mutation.AddTotal(v)
	return _u
}

// SetPassed sets the "passed" field.
func (_u *ExamEventUpdate) SetPassed(v bool) *ExamEventUpdate {
	_u.mutation.SetPassed(v)
	return _u
}

// SetNillablePassed sets the "passed" field if the given value is not nil.
func (_u *ExamEventUpdate) SetNillablePassed(v *bool) *ExamEventUpdate {
	if v != nil {
		_u.SetPassed(*v)
	}
	return _u
}

// SetTimeSpentSecs sets the "time_spent_secs" field.
func (_u *ExamEventUpdate) SetTimeSpentSecs(v int) *ExamEventUpdate {
	_u.mutation.ResetTimeSpentSecs()
	_u.mutation.SetTimeSpentSecs(v)
	return _u
}

// SetNillableTimeSpentSecs sets the "time_spent_secs" field if the given value is not nil.
func (_u *ExamEventUpdate) SetNillableTimeSpentSecs(v *int) *ExamEventUpdate {
	if v != nil {
		_u.SetTimeSpentSecs(*v)
	}
	return _u
}

// AddTimeSpentSecs adds value to the "time_spent_secs" field.
func (_u *ExamEventUpdate) AddTimeSpentSecs(v int) *ExamEventUpdate {
	_u.mutation.AddTimeSpentSecs(v)
	return _u
}

// SetAnswers sets the "answers" field.
func (_u *ExamEventUpdate) SetAnswers(v []schema.ExamAnswer) *ExamEventUpdate {
	_u.mutation.SetAnswers(v)
	return _u
}

// AppendAnswers appends value to the "answers" field.
func (_u *ExamEventUpdate) AppendAnswers(v []schema.ExamAnswer) *ExamEventUpdate {
	_u.mutation.AppendAnswers(v)
	return _u
}

// Mutation returns the ExamEventMutation object of the builder.
func (_u *ExamEventUpdate) Mutation() *ExamEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExamEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExamEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExamEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExamEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExamEventUpdate) check() error {
	if v, ok := _u.mutation.ExamID(); ok {
		if err := examevent.ExamIDValidator(v); err != nil {
			return &ValidationError{Name: "exam_id", err: fmt.Errorf(`ent: validator failed for field "ExamEvent.exam_id": %w`, err)}
		}
	}
	return nil
}

func (_u *ExamEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(examevent.Table, examevent.Columns, sqlgraph.NewFieldSpec(examevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ExamID(); ok {
		_spec.SetField(examevent.FieldExamID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(examevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(examevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(examevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Total(); ok {
		_spec.SetField(examevent.FieldTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotal(); ok {
		_spec.AddField(examevent.FieldTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Passed(); ok {
		_spec.SetField(examevent.FieldPassed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.TimeSpentSecs(); ok {
		_spec.SetField(examevent.FieldTimeSpentSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeSpentSecs(); ok {
		_spec.AddField(examevent.FieldTimeSpentSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Answers(); ok {
		_spec.SetField(examevent.FieldAnswers, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAnswers(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, examevent.FieldAnswers, value)
		})
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{examevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExamEventUpdateOne is the builder for updating a single ExamEvent entity.
type ExamEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExamEventMutation
}

// SetExamID sets the "exam_id" field.
func (_u *ExamEventUpdateOne) SetExamID(v string) *ExamEventUpdateOne {
	_u.mutation.SetExamID(v)
	return _u
}

// SetNillableExamID sets the "exam_id" field if the given value is not nil.
func (_u *ExamEventUpdateOne) SetNillableExamID(v *string) *ExamEventUpdateOne {
	if v != nil {
		_u.SetExamID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ExamEventUpdateOne) SetUserID(v string) *ExamEventUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ExamEventUpdateOne) SetNillableUserID(v *string) *ExamEventUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *ExamEventUpdateOne) SetScore(v int) *ExamEventUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *ExamEventUpdateOne) SetNillableScore(v *int) *ExamEventUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *ExamEventUpdateOne) AddScore(v int) *ExamEventUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetTotal sets the "total" field.
func (_u *ExamEventUpdateOne) SetTotal(v int) *ExamEventUpdateOne {
	_u.mutation.ResetTotal()
	_u.mutation.SetTotal(v)
	return _u
}

// SetNillableTotal sets the "total" field if the given value is not nil.
func (_u *ExamEventUpdateOne) SetNillableTotal(v *int) *ExamEventUpdateOne {
	if v != nil {
		_u.SetTotal(*v)
	}
	return _u
}

// AddTotal adds value to the "total" field.
func (_u *ExamEventUpdateOne) AddTotal(v int) *ExamEventUpdateOne {
	_u.mutation.AddTotal(v)
	return _u
}

// SetPassed sets the "passed" field.
func (_u *ExamEventUpdateOne) SetPassed(v bool) *ExamEventUpdateOne {
	_u.mutation.SetPassed(v)
	return _u
}

// SetNillablePassed sets the "passed" field if the given value is not nil.
func (_u *ExamEventUpdateOne) SetNillablePassed(v *bool) *ExamEventUpdateOne {
	if v != nil {
		_u.SetPassed(*v)
	}
	return _u
}

// SetTimeSpentSecs sets the "time_spent_secs" field.
func (_u *ExamEventUpdateOne) SetTimeSpentSecs(v int) *ExamEventUpdateOne {
	_u.mutation.ResetTimeSpentSecs()
	_u.mutation.SetTimeSpentSecs(v)
	return _u
}

// SetNillableTimeSpentSecs sets the "time_spent_secs" field if the given value is not nil.
func (_u *ExamEventUpdateOne) SetNillableTimeSpentSecs(v *int) *ExamEventUpdateOne {
	if v != nil {
		_u.SetTimeSpentSecs(*v)
	}
	return _u
}

// AddTimeSpentSecs adds value to the "time_spent_secs" field.
func (_u *ExamEventUpdateOne) AddTimeSpentSecs(v int) *ExamEventUpdateOne {
	_u.mutation.AddTimeSpentSecs(v)
	return _u
}

// SetAnswers sets the "answers" field.
func (_u *ExamEventUpdateOne) SetAnswers(v []schema.ExamAnswer) *ExamEventUpdateOne {
	_u.mutation.SetAnswers(v)
	return _u
}

// AppendAnswers appends value to the "answers" field.
func (_u *ExamEventUpdateOne) AppendAnswers(v []schema.ExamAnswer) *ExamEventUpdateOne {
	_u.mutation.AppendAnswers(v)
	return _u
}

// Mutation returns the ExamEventMutation object of the builder.
func (_u *ExamEventUpdateOne) Mutation() *ExamEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the ExamEventUpdate builder.
func (_u *ExamEventUpdateOne) Where(ps ...predicate.ExamEvent) *ExamEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExamEventUpdateOne) Select(field string, fields ...string) *ExamEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ExamEvent entity.
func (_u *ExamEventUpdateOne) Save(ctx context.Context) (*ExamEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExamEventUpdateOne) SaveX(ctx context.Context) *ExamEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExamEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExamEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExamEventUpdateOne) check() error {
	if v, ok := _u.mutation.ExamID(); ok {
		if err := examevent.ExamIDValidator(v); err != nil {
			return &ValidationError{Name: "exam_id", err: fmt.Errorf(`ent: validator failed for field "ExamEvent.exam_id": %w`, err)}
		}
	}
	return nil
}

func (_u *ExamEventUpdateOne) sqlSave(ctx context.Context) (_node *ExamEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(examevent.Table, examevent.Columns, sqlgraph.NewFieldSpec(examevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ExamEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, examevent.FieldID)
		for _, f := range fields {
			if !examevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != examevent.FieldID {
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
	if value, ok := _u.mutation.ExamID(); ok {
		_spec.SetField(examevent.FieldExamID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(examevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(examevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(examevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Total(); ok {
		_spec.SetField(examevent.FieldTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotal(); ok {
		_spec.AddField(examevent.FieldTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Passed(); ok {
		_spec.SetField(examevent.FieldPassed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.TimeSpentSecs(); ok {
		_spec.SetField(examevent.FieldTimeSpentSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeSpentSecs(); ok {
		_spec.AddField(examevent.FieldTimeSpentSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Answers(); ok {
		_spec.SetField(examevent.FieldAnswers, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAnswers(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, examevent.FieldAnswers, value)
		})
	}
	_node = &ExamEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{examevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
