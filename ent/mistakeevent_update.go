// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/patenteapp/patente/ent/mistakeevent"
	"github.com/patenteapp/patente/ent/predicate"
)

// MistakeEventUpdate is the builder for updating MistakeEvent entities.
type MistakeEventUpdate struct {
	config
	hooks    []Hook
	mutation *MistakeEventMutation
}

// Where appends a list predicates to the MistakeEventUpdate builder.
func (_u *MistakeEventUpdate) Where(ps ...predicate.MistakeEvent) *MistakeEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *MistakeEventUpdate) SetQuestionID(v string) *MistakeEventUpdate {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *MistakeEventUpdate) SetNillableQuestionID(v *string) *MistakeEventUpdate {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *MistakeEventUpdate) SetAction(v string) *MistakeEventUpdate {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *MistakeEventUpdate) SetNillableAction(v *string) *MistakeEventUpdate {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// Mutation returns the MistakeEventMutation object of the builder.
func (_u *MistakeEventUpdate) Mutation() *MistakeEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MistakeEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MistakeEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MistakeEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MistakeEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MistakeEventUpdate) check() error {
	if v, ok := _u.mutation.QuestionID(); ok {
		if err := mistakeevent.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "MistakeEvent.question_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := mistakeevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "MistakeEvent.action": %w`, err)}
		}
	}
	return nil
}

func (_u *MistakeEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(mistakeevent.Table, mistakeevent.Columns, sqlgraph.NewFieldSpec(mistakeevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(mistakeevent.FieldQuestionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(mistakeevent.FieldAction, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{mistakeevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MistakeEventUpdateOne is the builder for updating a single MistakeEvent entity.
type MistakeEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MistakeEventMutation
}

// SetQuestionID sets the "question_id" field.
func (_u *MistakeEventUpdateOne) SetQuestionID(v string) *MistakeEventUpdateOne {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *MistakeEventUpdateOne) SetNillableQuestionID(v *string) *MistakeEventUpdateOne {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *MistakeEventUpdateOne) SetAction(v string) *MistakeEventUpdateOne {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *MistakeEventUpdateOne) SetNillableAction(v *string) *MistakeEventUpdateOne {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// Mutation returns the MistakeEventMutation object of the builder.
func (_u *MistakeEventUpdateOne) Mutation() *MistakeEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the MistakeEventUpdate builder.
func (_u *MistakeEventUpdateOne) Where(ps ...predicate.MistakeEvent) *MistakeEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MistakeEventUpdateOne) Select(field string, fields ...string) *MistakeEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MistakeEvent entity.
func (_u *MistakeEventUpdateOne) Save(ctx context.Context) (*MistakeEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MistakeEventUpdateOne) SaveX(ctx context.Context) *MistakeEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MistakeEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MistakeEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MistakeEventUpdateOne) check() error {
	if v, ok := _u.mutation.QuestionID(); ok {
		if err := mistakeevent.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "MistakeEvent.question_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := mistakeevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "MistakeEvent.action": %w`, err)}
		}
	}
	return nil
}

func (_u *MistakeEventUpdateOne) sqlSave(ctx context.Context) (_node *MistakeEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(mistakeevent.Table, mistakeevent.Columns, sqlgraph.NewFieldSpec(mistakeevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MistakeEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, mistakeevent.FieldID)
		for _, f := range fields {
			if !mistakeevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != mistakeevent.FieldID {
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
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(mistakeevent.FieldQuestionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(mistakeevent.FieldAction, field.TypeString, value)
	}
	_node = &MistakeEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{mistakeevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
