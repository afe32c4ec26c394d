// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/escriba/ent/drillevent"
	"github.com/abhisek/escriba/ent/predicate"
)

// DrillEventUpdate is the builder for updating DrillEvent entities.
type DrillEventUpdate struct {
	config
	hooks    []Hook
	mutation *DrillEventMutation
}

// Where appends a list predicates to the DrillEventUpdate builder.
func (_u *DrillEventUpdate) Where(ps ...predicate.DrillEvent) *DrillEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRoundID sets the "round_id" field.
func (_u *DrillEventUpdate) SetRoundID(v string) *DrillEventUpdate {
	_u.mutation.SetRoundID(v)
	return _u
}

// SetNillableRoundID sets the "round_id" field if the given value is not nil.
func (_u *DrillEventUpdate) SetNillableRoundID(v *string) *DrillEventUpdate {
	if v != nil {
		_u.SetRoundID(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *DrillEventUpdate) SetKind(v string) *DrillEventUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *DrillEventUpdate) SetNillableKind(v *string) *DrillEventUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetVariant sets the "variant" field.
func (_u *DrillEventUpdate) SetVariant(v string) *DrillEventUpdate {
	_u.mutation.SetVariant(v)
	return _u
}

// SetNillableVariant sets the "variant" field if the given value is not nil.
func (_u *DrillEventUpdate) SetNillableVariant(v *string) *DrillEventUpdate {
	if v != nil {
		_u.SetVariant(*v)
	}
	return _u
}

// SetPrompt sets the "prompt" field.
func (_u *DrillEventUpdate) SetPrompt(v string) *DrillEventUpdate {
	_u.mutation.SetPrompt(v)
	return _u
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (_u *DrillEventUpdate) SetNillablePrompt(v *string) *DrillEventUpdate {
	if v != nil {
		_u.SetPrompt(*v)
	}
	return _u
}

// SetResponse sets the "response" field.
func (_u *DrillEventUpdate) SetResponse(v string) *DrillEventUpdate {
	_u.mutation.SetResponse(v)
	return _u
}

// SetNillableResponse sets the "response" field if the given value is not nil.
func (_u *DrillEventUpdate) SetNillableResponse(v *string) *DrillEventUpdate {
	if v != nil {
		_u.SetResponse(*v)
	}
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *DrillEventUpdate) SetCorrect(v bool) *DrillEventUpdate {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *DrillEventUpdate) SetNillableCorrect(v *bool) *DrillEventUpdate {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetStreakAfter sets the "streak_after" field.
func (_u *DrillEventUpdate) SetStreakAfter(v int) *DrillEventUpdate {
	_u.mutation.ResetStreakAfter()
	_u.mutation.SetStreakAfter(v)
	return _u
}

// SetNillableStreakAfter sets the "streak_after" field if the given value is not nil.
func (_u *DrillEventUpdate) SetNillableStreakAfter(v *int) *DrillEventUpdate {
	if v != nil {
		_u.SetStreakAfter(*v)
	}
	return _u
}

// AddStreakAfter adds value to the "streak_after" field.
func (_u *DrillEventUpdate) AddStreakAfter(v int) *DrillEventUpdate {
	_u.mutation.AddStreakAfter(v)
	return _u
}

// SetTarget sets the "target" field.
func (_u *DrillEventUpdate) SetTarget(v int) *DrillEventUpdate {
	_u.mutation.ResetTarget()
	_u.mutation.SetTarget(v)
	return _u
}

// SetNillableTarget sets the "target" field if the given value is not nil.
func (_u *DrillEventUpdate) SetNillableTarget(v *int) *DrillEventUpdate {
	if v != nil {
		_u.SetTarget(*v)
	}
	return _u
}

// AddTarget adds value to the "target" field.
func (_u *DrillEventUpdate) AddTarget(v int) *DrillEventUpdate {
	_u.mutation.AddTarget(v)
	return _u
}

// SetCleared sets the "cleared" field.
func (_u *DrillEventUpdate) SetCleared(v bool) *DrillEventUpdate {
	_u.mutation.SetCleared(v)
	return _u
}

// SetNillableCleared sets the "cleared" field if the given value is not nil.
func (_u *DrillEventUpdate) SetNillableCleared(v *bool) *DrillEventUpdate {
	if v != nil {
		_u.SetCleared(*v)
	}
	return _u
}

// Mutation returns the DrillEventMutation object of the builder.
func (_u *DrillEventUpdate) Mutation() *DrillEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DrillEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DrillEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DrillEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DrillEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DrillEventUpdate) check() error {
	if v, ok := _u.mutation.RoundID(); ok {
		if err := drillevent.RoundIDValidator(v); err != nil {
			return &ValidationError{Name: "round_id", err: fmt.Errorf(`ent: validator failed for field "DrillEvent.round_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Kind(); ok {
		if err := drillevent.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "DrillEvent.kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Variant(); ok {
		if err := drillevent.VariantValidator(v); err != nil {
			return &ValidationError{Name: "variant", err: fmt.Errorf(`ent: validator failed for field "DrillEvent.variant": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Prompt(); ok {
		if err := drillevent.PromptValidator(v); err != nil {
			return &ValidationError{Name: "prompt", err: fmt.Errorf(`ent: validator failed for field "DrillEvent.prompt": %w`, err)}
		}
	}
	return nil
}

func (_u *DrillEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(drillevent.Table, drillevent.Columns, sqlgraph.NewFieldSpec(drillevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RoundID(); ok {
		_spec.SetField(drillevent.FieldRoundID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(drillevent.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Variant(); ok {
		_spec.SetField(drillevent.FieldVariant, field.TypeString, value)
	}
	if value, ok := _u.mutation.Prompt(); ok {
		_spec.SetField(drillevent.FieldPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.Response(); ok {
		_spec.SetField(drillevent.FieldResponse, field.TypeString, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(drillevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.StreakAfter(); ok {
		_spec.SetField(drillevent.FieldStreakAfter, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStreakAfter(); ok {
		_spec.AddField(drillevent.FieldStreakAfter, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Target(); ok {
		_spec.SetField(drillevent.FieldTarget, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTarget(); ok {
		_spec.AddField(drillevent.FieldTarget, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Cleared(); ok {
		_spec.SetField(drillevent.FieldCleared, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{drillevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DrillEventUpdateOne is the builder for updating a single DrillEvent entity.
type DrillEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DrillEventMutation
}

// SetRoundID sets the "round_id" field.
func (_u *DrillEventUpdateOne) SetRoundID(v string) *DrillEventUpdateOne {
	_u.mutation.SetRoundID(v)
	return _u
}

// SetNillableRoundID sets the "round_id" field if the given value is not nil.
func (_u *DrillEventUpdateOne) SetNillableRoundID(v *string) *DrillEventUpdateOne {
	if v != nil {
		_u.SetRoundID(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *DrillEventUpdateOne) SetKind(v string) *DrillEventUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *DrillEventUpdateOne) SetNillableKind(v *string) *DrillEventUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetVariant sets the "variant" field.
func (_u *DrillEventUpdateOne) SetVariant(v string) *DrillEventUpdateOne {
	_u.mutation.SetVariant(v)
	return _u
}

// SetNillableVariant sets the "variant" field if the given value is not nil.
func (_u *DrillEventUpdateOne) SetNillableVariant(v *string) *DrillEventUpdateOne {
	if v != nil {
		_u.SetVariant(*v)
	}
	return _u
}

// SetPrompt sets the "prompt" field.
func (_u *DrillEventUpdateOne) SetPrompt(v string) *DrillEventUpdateOne {
	_u.mutation.SetPrompt(v)
	return _u
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (_u *DrillEventUpdateOne) SetNillablePrompt(v *string) *DrillEventUpdateOne {
	if v != nil {
		_u.SetPrompt(*v)
	}
	return _u
}

// SetResponse sets the "response" field.
func (_u *DrillEventUpdateOne) SetResponse(v string) *DrillEventUpdateOne {
	_u.mutation.SetResponse(v)
	return _u
}

// SetNillableResponse sets the "response" field if the given value is not nil.
func (_u *DrillEventUpdateOne) SetNillableResponse(v *string) *DrillEventUpdateOne {
	if v != nil {
		_u.SetResponse(*v)
	}
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *DrillEventUpdateOne) SetCorrect(v bool) *DrillEventUpdateOne {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *DrillEventUpdateOne) SetNillableCorrect(v *bool) *DrillEventUpdateOne {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetStreakAfter sets the "streak_after" field.
func (_u *DrillEventUpdateOne) SetStreakAfter(v int) *DrillEventUpdateOne {
	_u.mutation.ResetStreakAfter()
	_u.mutation.SetStreakAfter(v)
	return _u
}

// SetNillableStreakAfter sets the "streak_after" field if the given value is not nil.
func (_u *DrillEventUpdateOne) SetNillableStreakAfter(v *int) *DrillEventUpdateOne {
	if v != nil {
		_u.SetStreakAfter(*v)
	}
	return _u
}

// AddStreakAfter adds value to the "streak_after" field.
func (_u *DrillEventUpdateOne) AddStreakAfter(v int) *DrillEventUpdateOne {
	_u.mutation.AddStreakAfter(v)
	return _u
}

// SetTarget sets the "target" field.
func (_u *DrillEventUpdateOne) SetTarget(v int) *DrillEventUpdateOne {
	_u.mutation.ResetTarget()
	_u.mutation.SetTarget(v)
	return _u
}

// SetNillableTarget sets the "target" field if the given value is not nil.
func (_u *DrillEventUpdateOne) SetNillableTarget(v *int) *DrillEventUpdateOne {
	if v != nil {
		_u.SetTarget(*v)
	}
	return _u
}

// AddTarget adds value to the "target" field.
func (_u *DrillEventUpdateOne) AddTarget(v int) *DrillEventUpdateOne {
	_u.mutation.AddTarget(v)
	return _u
}

// SetCleared sets the "cleared" field.
func (_u *DrillEventUpdateOne) SetCleared(v bool) *DrillEventUpdateOne {
	_u.mutation.SetCleared(v)
	return _u
}

// SetNillableCleared sets the "cleared" field if the given value is not nil.
func (_u *DrillEventUpdateOne) SetNillableCleared(v *bool) *DrillEventUpdateOne {
	if v != nil {
		_u.SetCleared(*v)
	}
	return _u
}

// Mutation returns the DrillEventMutation object of the builder.
func (_u *DrillEventUpdateOne) Mutation() *DrillEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the DrillEventUpdate builder.
func (_u *DrillEventUpdateOne) Where(ps ...predicate.DrillEvent) *DrillEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DrillEventUpdateOne) Select(field string, fields ...string) *DrillEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DrillEvent entity.
func (_u *DrillEventUpdateOne) Save(ctx context.Context) (*DrillEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DrillEventUpdateOne) SaveX(ctx context.Context) *DrillEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DrillEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DrillEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DrillEventUpdateOne) check() error {
	if v, ok := _u.mutation.RoundID(); ok {
		if err := drillevent.RoundIDValidator(v); err != nil {
			return &ValidationError{Name: "round_id", err: fmt.Errorf(`ent: validator failed for field "DrillEvent.round_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Kind(); ok {
		if err := drillevent.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "DrillEvent.kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Variant(); ok {
		if err := drillevent.VariantValidator(v); err != nil {
			return &ValidationError{Name: "variant", err: fmt.Errorf(`ent: validator failed for field "DrillEvent.variant": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Prompt(); ok {
		if err := drillevent.PromptValidator(v); err != nil {
			return &ValidationError{Name: "prompt", err: fmt.Errorf(`ent: validator failed for field "DrillEvent.prompt": %w`, err)}
		}
	}
	return nil
}

func (_u *DrillEventUpdateOne) sqlSave(ctx context.Context) (_node *DrillEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(drillevent.Table, drillevent.Columns, sqlgraph.NewFieldSpec(drillevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DrillEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, drillevent.FieldID)
		for _, f := range fields {
			if !drillevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != drillevent.FieldID {
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
	if value, ok := _u.mutation.RoundID(); ok {
		_spec.SetField(drillevent.FieldRoundID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(drillevent.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Variant(); ok {
		_spec.SetField(drillevent.FieldVariant, field.TypeString, value)
	}
	if value, ok := _u.mutation.Prompt(); ok {
		_spec.SetField(drillevent.FieldPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.Response(); ok {
		_spec.SetField(drillevent.FieldResponse, field.TypeString, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(drillevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.StreakAfter(); ok {
		_spec.SetField(drillevent.FieldStreakAfter, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStreakAfter(); ok {
		_spec.AddField(drillevent.FieldStreakAfter, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Target(); ok {
		_spec.SetField(drillevent.FieldTarget, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTarget(); ok {
		_spec.AddField(drillevent.FieldTarget, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Cleared(); ok {
		_spec.SetField(drillevent.FieldCleared, field.TypeBool, value)
	}
	_node = &DrillEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{drillevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
